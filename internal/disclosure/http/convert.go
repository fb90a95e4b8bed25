package http

import (
	"github.com/aussiebroadwan/disclosure/internal/disclosure/domain"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/service"
	"github.com/aussiebroadwan/disclosure/pkg/disclosuresdk"
)

func toUser(u domain.User) disclosuresdk.User {
	return disclosuresdk.User{
		ID:        u.ID,
		OrgID:     u.OrgID,
		Email:     u.Email,
		Name:      u.Name,
		Roles:     u.Roles.Labels(),
		CreatedAt: u.CreatedAt,
	}
}

func toProperty(p domain.Property) disclosuresdk.Property {
	return disclosuresdk.Property{
		ID:        p.ID,
		OrgID:     p.OrgID,
		Title:     p.Title,
		Address:   p.Address,
		Type:      p.Type,
		AgentID:   p.AgentID,
		SellerID:  p.SellerID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toChecklistItems(items []domain.ChecklistItem) []disclosuresdk.ChecklistItem {
	out := make([]disclosuresdk.ChecklistItem, 0, len(items))
	for _, it := range items {
		out = append(out, disclosuresdk.ChecklistItem{
			ID:       it.ID,
			Label:    it.Label,
			Required: it.Required,
			Complete: it.Complete,
		})
	}
	return out
}

func toChecklist(c service.ChecklistView) disclosuresdk.Checklist {
	return disclosuresdk.Checklist{
		Items:     toChecklistItems(c.Items),
		Completed: c.Completed,
		Total:     c.Total,
	}
}

func toDocument(d domain.Document) disclosuresdk.Document {
	return disclosuresdk.Document{
		ID:          d.ID,
		PropertyID:  d.PropertyID,
		Kind:        d.Kind,
		Filename:    d.Filename,
		ContentType: d.ContentType,
		Size:        d.Size,
		SHA:         d.SHA,
		CreatedAt:   d.CreatedAt,
	}
}

func toForm2(v domain.Form2Version) disclosuresdk.Form2Version {
	return disclosuresdk.Form2Version{
		ID:          v.ID,
		PropertyID:  v.PropertyID,
		Version:     v.Version,
		ContentType: v.ContentType,
		Filename:    service.Form2Filename(v),
		Checklist:   toChecklistItems(v.Snapshot.Checklist),
		CreatedAt:   v.CreatedAt,
	}
}

func toServePack(sp domain.ServePack) disclosuresdk.ServePack {
	docs := make([]disclosuresdk.ManifestDocument, 0, len(sp.Manifest.Documents))
	for _, d := range sp.Manifest.Documents {
		docs = append(docs, disclosuresdk.ManifestDocument{ID: d.ID, Kind: d.Kind, Filename: d.Filename})
	}
	kinds := sp.Manifest.IncludedKinds
	if kinds == nil {
		kinds = []string{}
	}
	return disclosuresdk.ServePack{
		ID:         sp.ID,
		PropertyID: sp.PropertyID,
		Version:    sp.Version,
		Filename:   service.ServePackFilename(sp),
		Manifest: disclosuresdk.ServePackManifest{
			IncludedKinds: kinds,
			Documents:     docs,
			Form2Version:  sp.Manifest.Form2Version,
		},
		CreatedAt: sp.CreatedAt,
	}
}

func toWarnings(ws []service.Warning) []disclosuresdk.Warning {
	if len(ws) == 0 {
		return nil
	}
	out := make([]disclosuresdk.Warning, 0, len(ws))
	for _, w := range ws {
		out = append(out, disclosuresdk.Warning{Code: w.Code, Message: w.Message})
	}
	return out
}

func toSummary(s service.Summary) disclosuresdk.DashboardSummary {
	props := make([]disclosuresdk.PropertyProgress, 0, len(s.Properties))
	for _, p := range s.Properties {
		props = append(props, disclosuresdk.PropertyProgress{
			ID:        p.ID,
			Title:     p.Title,
			Address:   p.Address,
			Type:      p.Type,
			Completed: p.Completed,
			Total:     p.Total,
		})
	}
	return disclosuresdk.DashboardSummary{
		Properties: props,
		Totals: disclosuresdk.DashboardTotals{
			Properties: s.Totals.Properties,
			Completed:  s.Totals.Completed,
			Total:      s.Totals.Total,
		},
	}
}
