package service

import (
	"context"
	"fmt"

	"github.com/aussiebroadwan/disclosure/internal/disclosure/access"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/checklist"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/domain"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/store"
)

type DashboardService struct {
	Store  store.Store
	Access *AccessService
	Rules  checklist.RuleSets
}

type PropertyProgress struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Address   string `json:"address"`
	Type      string `json:"type"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
}

type DashboardTotals struct {
	Properties int `json:"properties"`
	Completed  int `json:"completed"`
	Total      int `json:"total"`
}

type Summary struct {
	Properties []PropertyProgress `json:"properties"`
	Totals     DashboardTotals    `json:"totals"`
}

// Summary reports checklist progress across every property the caller can
// see.
func (s *DashboardService) Summary(ctx context.Context, id domain.Identity) (Summary, error) {
	_, caller, err := s.Access.Principal(ctx, id)
	if err != nil {
		return Summary{}, err
	}

	out := Summary{Properties: []PropertyProgress{}}
	f := access.Filter(caller)
	if f.None() {
		return out, nil
	}

	props, err := s.Store.Properties().ListProperties(ctx, storeFilter(f))
	if err != nil {
		return Summary{}, fmt.Errorf("list properties: %w", err)
	}

	for _, p := range props {
		view, err := checklistFor(ctx, s.Store, s.Rules, p)
		if err != nil {
			return Summary{}, err
		}
		out.Properties = append(out.Properties, PropertyProgress{
			ID:        p.ID,
			Title:     p.Title,
			Address:   p.Address,
			Type:      p.Type,
			Completed: view.Completed,
			Total:     view.Total,
		})
		out.Totals.Completed += view.Completed
		out.Totals.Total += view.Total
	}
	out.Totals.Properties = len(out.Properties)
	return out, nil
}
