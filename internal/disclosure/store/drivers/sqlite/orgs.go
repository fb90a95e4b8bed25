package sqlite

import (
	"context"

	"github.com/aussiebroadwan/disclosure/internal/disclosure/domain"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/store/drivers/sqlite/gen"
)

type orgsRepo struct {
	q *gen.Queries
}

func (r *orgsRepo) CreateOrg(ctx context.Context, o domain.Org) error {
	err := r.q.CreateOrg(ctx, gen.CreateOrgParams{
		ID:        o.ID,
		Name:      o.Name,
		CreatedAt: o.CreatedAt.UTC(),
	})
	return mapConstraint(err)
}

func (r *orgsRepo) GetOrgByID(ctx context.Context, id string) (domain.Org, error) {
	row, err := r.q.GetOrgByID(ctx, id)
	if err != nil {
		return domain.Org{}, mapNotFound(err)
	}
	return mapOrg(row), nil
}

func (r *orgsRepo) ListOrgs(ctx context.Context) ([]domain.Org, error) {
	rows, err := r.q.ListOrgs(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Org, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapOrg(row))
	}
	return out, nil
}
