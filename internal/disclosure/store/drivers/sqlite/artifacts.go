package sqlite

import (
	"context"
	"encoding/json"

	"github.com/aussiebroadwan/disclosure/internal/disclosure/domain"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/store/drivers/sqlite/gen"
)

type form2VersionsRepo struct {
	q *gen.Queries
}

func (r *form2VersionsRepo) CreateForm2Version(ctx context.Context, v domain.Form2Version) error {
	snapshot, err := json.Marshal(v.Snapshot)
	if err != nil {
		return err
	}
	err = r.q.CreateForm2Version(ctx, gen.CreateForm2VersionParams{
		ID:                v.ID,
		PropertyID:        v.PropertyID,
		Version:           v.Version,
		ChecklistSnapshot: string(snapshot),
		StorageKey:        v.StorageKey,
		ContentType:       v.ContentType,
		CreatedAt:         v.CreatedAt.UTC(),
	})
	return mapConstraint(err)
}

func (r *form2VersionsRepo) GetLatest(ctx context.Context, propertyID string) (domain.Form2Version, error) {
	row, err := r.q.GetLatestForm2Version(ctx, propertyID)
	if err != nil {
		return domain.Form2Version{}, mapNotFound(err)
	}
	return mapForm2Version(row)
}

func (r *form2VersionsRepo) MaxVersion(ctx context.Context, propertyID string) (int64, error) {
	return r.q.GetMaxForm2Version(ctx, propertyID)
}

func (r *form2VersionsRepo) ListByProperty(ctx context.Context, propertyID string) ([]domain.Form2Version, error) {
	rows, err := r.q.ListForm2VersionsByProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Form2Version, 0, len(rows))
	for _, row := range rows {
		v, err := mapForm2Version(row)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (r *form2VersionsRepo) ListKeysByProperty(ctx context.Context, propertyID string) ([]string, error) {
	return r.q.ListForm2KeysByProperty(ctx, propertyID)
}

func (r *form2VersionsRepo) DeleteByProperty(ctx context.Context, propertyID string) error {
	return r.q.DeleteForm2VersionsByProperty(ctx, propertyID)
}

type servePacksRepo struct {
	q *gen.Queries
}

func (r *servePacksRepo) CreateServePack(ctx context.Context, sp domain.ServePack) error {
	manifest, err := json.Marshal(sp.Manifest)
	if err != nil {
		return err
	}
	err = r.q.CreateServePack(ctx, gen.CreateServePackParams{
		ID:         sp.ID,
		PropertyID: sp.PropertyID,
		Version:    sp.Version,
		Manifest:   string(manifest),
		StorageKey: sp.StorageKey,
		CreatedAt:  sp.CreatedAt.UTC(),
	})
	return mapConstraint(err)
}

func (r *servePacksRepo) GetLatest(ctx context.Context, propertyID string) (domain.ServePack, error) {
	row, err := r.q.GetLatestServePack(ctx, propertyID)
	if err != nil {
		return domain.ServePack{}, mapNotFound(err)
	}
	return mapServePack(row)
}

func (r *servePacksRepo) MaxVersion(ctx context.Context, propertyID string) (int64, error) {
	return r.q.GetMaxServePackVersion(ctx, propertyID)
}

func (r *servePacksRepo) ListByProperty(ctx context.Context, propertyID string) ([]domain.ServePack, error) {
	rows, err := r.q.ListServePacksByProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ServePack, 0, len(rows))
	for _, row := range rows {
		sp, err := mapServePack(row)
		if err != nil {
			return nil, err
		}
		out = append(out, sp)
	}
	return out, nil
}

func (r *servePacksRepo) ListKeysByProperty(ctx context.Context, propertyID string) ([]string, error) {
	return r.q.ListServePackKeysByProperty(ctx, propertyID)
}

func (r *servePacksRepo) DeleteByProperty(ctx context.Context, propertyID string) error {
	return r.q.DeleteServePacksByProperty(ctx, propertyID)
}
