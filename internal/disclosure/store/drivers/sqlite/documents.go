package sqlite

import (
	"context"

	"github.com/aussiebroadwan/disclosure/internal/disclosure/domain"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/store"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/store/drivers/sqlite/gen"
)

type documentsRepo struct {
	q *gen.Queries
}

func (r *documentsRepo) CreateDocument(ctx context.Context, d domain.Document) error {
	err := r.q.CreateDocument(ctx, gen.CreateDocumentParams{
		ID:          d.ID,
		PropertyID:  d.PropertyID,
		Kind:        d.Kind,
		Filename:    d.Filename,
		ContentType: d.ContentType,
		Size:        d.Size,
		Sha:         d.SHA,
		StorageKey:  d.StorageKey,
		CreatedAt:   d.CreatedAt.UTC(),
	})
	return mapConstraint(err)
}

func (r *documentsRepo) GetDocumentByID(ctx context.Context, id string) (domain.Document, error) {
	row, err := r.q.GetDocumentByID(ctx, id)
	if err != nil {
		return domain.Document{}, mapNotFound(err)
	}
	return mapDocument(row), nil
}

func (r *documentsRepo) ListByProperty(ctx context.Context, propertyID string) ([]domain.Document, error) {
	rows, err := r.q.ListDocumentsByProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Document, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapDocument(row))
	}
	return out, nil
}

func (r *documentsRepo) ListKeysByProperty(ctx context.Context, propertyID string) ([]string, error) {
	return r.q.ListDocumentKeysByProperty(ctx, propertyID)
}

func (r *documentsRepo) DeleteDocument(ctx context.Context, id string) error {
	n, err := r.q.DeleteDocument(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *documentsRepo) DeleteByProperty(ctx context.Context, propertyID string) error {
	return r.q.DeleteDocumentsByProperty(ctx, propertyID)
}
