package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/disclosure/internal/disclosure/domain"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/store"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/store/drivers/sqlite/gen"
)

type propertiesRepo struct {
	q *gen.Queries
}

func (r *propertiesRepo) CreateProperty(ctx context.Context, p domain.Property) error {
	err := r.q.CreateProperty(ctx, gen.CreatePropertyParams{
		ID:        p.ID,
		OrgID:     p.OrgID,
		Type:      p.Type,
		Title:     p.Title,
		Address:   p.Address,
		SellerID:  mapOptionalString(p.SellerID),
		AgentID:   p.AgentID,
		CreatedAt: p.CreatedAt.UTC(),
		UpdatedAt: p.UpdatedAt.UTC(),
	})
	return mapConstraint(err)
}

func (r *propertiesRepo) GetPropertyByID(ctx context.Context, id string) (domain.Property, error) {
	row, err := r.q.GetPropertyByID(ctx, id)
	if err != nil {
		return domain.Property{}, mapNotFound(err)
	}
	return mapProperty(row), nil
}

func (r *propertiesRepo) ListProperties(ctx context.Context, f store.PropertyFilter) ([]domain.Property, error) {
	var all int64
	if f.All {
		all = 1
	}
	rows, err := r.q.ListProperties(ctx, gen.ListPropertiesParams{
		OrgID:         f.OrgID,
		AllProperties: all,
		AgentID:       f.AgentID,
		SellerID:      f.SellerID,
	})
	if err != nil {
		return nil, err
	}
	out := make([]domain.Property, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapProperty(row))
	}
	return out, nil
}

func (r *propertiesRepo) UpdateDetails(ctx context.Context, p domain.Property) error {
	return r.q.UpdatePropertyDetails(ctx, gen.UpdatePropertyDetailsParams{
		Type:      p.Type,
		Title:     p.Title,
		Address:   p.Address,
		UpdatedAt: p.UpdatedAt.UTC(),
		ID:        p.ID,
	})
}

func (r *propertiesRepo) SetSeller(ctx context.Context, propertyID, sellerID string, at time.Time) error {
	return r.q.SetPropertySeller(ctx, gen.SetPropertySellerParams{
		SellerID:  sql.NullString{String: sellerID, Valid: sellerID != ""},
		UpdatedAt: at.UTC(),
		ID:        propertyID,
	})
}

func (r *propertiesRepo) SetAgent(ctx context.Context, propertyID, agentID string, at time.Time) error {
	return r.q.SetPropertyAgent(ctx, gen.SetPropertyAgentParams{
		AgentID:   agentID,
		UpdatedAt: at.UTC(),
		ID:        propertyID,
	})
}

func (r *propertiesRepo) DeleteProperty(ctx context.Context, id string) error {
	n, err := r.q.DeleteProperty(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
