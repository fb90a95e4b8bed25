package sqlite

import (
	"context"
	"strings"

	"github.com/aussiebroadwan/disclosure/internal/disclosure/domain"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/store/drivers/sqlite/gen"
)

type usersRepo struct {
	q *gen.Queries
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row, err := r.q.GetUserByID(ctx, id)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) GetUserBySubject(ctx context.Context, subject string) (domain.User, error) {
	row, err := r.q.GetUserBySubject(ctx, subject)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, orgID, email string) (domain.User, error) {
	row, err := r.q.GetUserByOrgEmail(ctx, gen.GetUserByOrgEmailParams{
		OrgID: orgID,
		Lower: email,
	})
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	err := r.q.CreateUser(ctx, gen.CreateUserParams{
		ID:              u.ID,
		OrgID:           u.OrgID,
		ExternalSubject: u.ExternalSubject,
		Email:           u.Email,
		Name:            u.Name,
		Roles:           strings.Join(u.Roles.Labels(), " "),
		CreatedAt:       u.CreatedAt.UTC(),
		UpdatedAt:       u.UpdatedAt.UTC(),
	})
	return mapConstraint(err)
}

func (r *usersRepo) UpdateProfile(ctx context.Context, u domain.User) error {
	return r.q.UpdateUserProfile(ctx, gen.UpdateUserProfileParams{
		Email:     u.Email,
		Name:      u.Name,
		Roles:     strings.Join(u.Roles.Labels(), " "),
		UpdatedAt: u.UpdatedAt.UTC(),
		ID:        u.ID,
	})
}
