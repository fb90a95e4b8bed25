package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/disclosure/internal/disclosure/access"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/domain"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/store"
	"github.com/aussiebroadwan/disclosure/pkg/idx"
	"github.com/aussiebroadwan/disclosure/pkg/slogx"
)

// AccessService resolves identity claims into local users and applies the
// access rules to properties.
type AccessService struct {
	Store store.Store
	Now   func() time.Time
}

// EnsureUser returns the local user for the claim, creating it on first
// sight. Email, name and roles are refreshed from the claim every time; the
// org is fixed at creation.
func (s *AccessService) EnsureUser(ctx context.Context, id domain.Identity) (domain.User, error) {
	log := slogx.FromContext(ctx)

	if strings.TrimSpace(id.Subject) == "" {
		return domain.User{}, ErrUnauthenticated
	}

	roles := domain.ParseRoleSet(id.Roles)
	email := strings.TrimSpace(id.Email)
	now := clock(s.Now)

	// 1. Known subject: refresh the profile if the provider changed it.
	u, err := s.Store.Users().GetUserBySubject(ctx, id.Subject)
	switch {
	case err == nil:
		return s.refresh(ctx, u, email, id.Name, roles, now)
	case !errors.Is(err, store.ErrNotFound):
		log.Error("failed to load user", slog.Any("error", err))
		return domain.User{}, fmt.Errorf("load user: %w", err)
	}

	// 2. New subject: the claim must name an existing org.
	if id.OrgID == "" {
		return domain.User{}, ErrMissingOrgContext
	}
	if _, err := s.Store.Orgs().GetOrgByID(ctx, id.OrgID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("identity names unknown org", slog.String("org_id", id.OrgID))
			return domain.User{}, ErrMissingOrgContext
		}
		return domain.User{}, fmt.Errorf("load org: %w", err)
	}

	u = domain.User{
		ID:              idx.NewAt(now).String(),
		OrgID:           id.OrgID,
		ExternalSubject: id.Subject,
		Email:           email,
		Name:            id.Name,
		Roles:           roles,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	// 3. Create. A concurrent first request for the same subject wins the
	// unique constraint; refresh its row from this claim.
	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			winner, err := s.Store.Users().GetUserBySubject(ctx, id.Subject)
			if err != nil {
				return domain.User{}, fmt.Errorf("load user: %w", err)
			}
			return s.refresh(ctx, winner, email, id.Name, roles, now)
		}
		log.Error("failed to create user", slog.Any("error", err))
		return domain.User{}, unavailable("create user", err)
	}

	log.Info("user created",
		slog.String("user_id", u.ID),
		slog.String("org_id", u.OrgID),
		slog.Any("roles", roles.Labels()),
	)
	return u, nil
}

// refresh writes the claim's profile onto u when it differs.
func (s *AccessService) refresh(ctx context.Context, u domain.User, email, name string, roles domain.RoleSet, now time.Time) (domain.User, error) {
	if u.Email == email && u.Name == name && u.Roles == roles {
		return u, nil
	}
	u.Email, u.Name, u.Roles, u.UpdatedAt = email, name, roles, now
	if err := s.Store.Users().UpdateProfile(ctx, u); err != nil {
		slogx.FromContext(ctx).Error("failed to refresh user profile", slog.String("user_id", u.ID), slog.Any("error", err))
		return domain.User{}, unavailable("refresh user", err)
	}
	return u, nil
}

// Authorize ensures the caller's user, loads the property and checks action.
func (s *AccessService) Authorize(
	ctx context.Context,
	id domain.Identity,
	propertyID string,
	action access.Action,
) (domain.User, domain.Property, error) {
	log := slogx.FromContext(ctx)

	u, err := s.EnsureUser(ctx, id)
	if err != nil {
		return domain.User{}, domain.Property{}, err
	}

	p, err := s.Store.Properties().GetPropertyByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, domain.Property{}, fmt.Errorf("property %s: %w", propertyID, ErrNotFound)
		}
		return domain.User{}, domain.Property{}, fmt.Errorf("load property: %w", err)
	}

	decision, reason := access.Decide(access.PrincipalOf(u), p, action)
	if !decision.Allowed() {
		log.Warn("access denied",
			slog.String("user_id", u.ID),
			slog.String("property_id", p.ID),
			slog.String("action", action.String()),
			slog.String("reason", string(reason)),
		)
		return domain.User{}, domain.Property{}, ErrForbidden
	}

	return u, p, nil
}

// Principal is EnsureUser followed by access.PrincipalOf.
func (s *AccessService) Principal(ctx context.Context, id domain.Identity) (domain.User, access.Principal, error) {
	u, err := s.EnsureUser(ctx, id)
	if err != nil {
		return domain.User{}, access.Principal{}, err
	}
	return u, access.PrincipalOf(u), nil
}

func storeFilter(f access.ListFilter) store.PropertyFilter {
	return store.PropertyFilter{OrgID: f.OrgID, All: f.All, AgentID: f.AgentID, SellerID: f.SellerID}
}

func clock(now func() time.Time) time.Time {
	if now == nil {
		return time.Now().UTC()
	}
	return now().UTC()
}
