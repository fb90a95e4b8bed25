package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/disclosure/internal/disclosure/domain"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/store/drivers/sqlite/gen"
)

type invitesRepo struct {
	q *gen.Queries
}

func (r *invitesRepo) CreateInvite(ctx context.Context, inv domain.Invite) error {
	err := r.q.CreateInvite(ctx, gen.CreateInviteParams{
		ID:         inv.ID,
		OrgID:      inv.OrgID,
		PropertyID: inv.PropertyID,
		TokenHash:  inv.TokenHash,
		Email:      inv.Email,
		Role:       inv.Role.String(),
		CreatedBy:  inv.CreatedBy,
		ExpiresAt:  inv.ExpiresAt.UTC(),
		CreatedAt:  inv.CreatedAt.UTC(),
	})
	return mapConstraint(err)
}

func (r *invitesRepo) GetInviteByTokenHash(ctx context.Context, hash string) (domain.Invite, error) {
	row, err := r.q.GetInviteByTokenHash(ctx, hash)
	if err != nil {
		return domain.Invite{}, mapNotFound(err)
	}
	return mapInvite(row), nil
}

func (r *invitesRepo) MarkAccepted(ctx context.Context, inviteID, userID string, at time.Time) (bool, error) {
	n, err := r.q.AcceptInvite(ctx, gen.AcceptInviteParams{
		AcceptedAt: mapTimeNull(at),
		AcceptedBy: sql.NullString{String: userID, Valid: userID != ""},
		ID:         inviteID,
	})
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *invitesRepo) ListByProperty(ctx context.Context, propertyID string) ([]domain.Invite, error) {
	rows, err := r.q.ListInvitesByProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Invite, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapInvite(row))
	}
	return out, nil
}

func (r *invitesRepo) DeleteByProperty(ctx context.Context, propertyID string) error {
	return r.q.DeleteInvitesByProperty(ctx, propertyID)
}
