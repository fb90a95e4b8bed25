package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/aussiebroadwan/disclosure/internal/disclosure/access"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/domain"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/mail"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/store"
	"github.com/aussiebroadwan/disclosure/pkg/cryptox"
	"github.com/aussiebroadwan/disclosure/pkg/idx"
	"github.com/aussiebroadwan/disclosure/pkg/slogx"
)

// DefaultInviteTTL is how long an invite link stays valid.
const DefaultInviteTTL = 7 * 24 * time.Hour

type InviteService struct {
	Store  store.Store
	Access *AccessService
	Mailer mail.Mailer
	Origin string // Base URL invite links point at
	TTL    time.Duration
	Now    func() time.Time
}

type IssueInviteInput struct {
	Email string
	Role  string // Defaults to Seller
}

type IssuedInvite struct {
	Invite    domain.Invite
	Token     string
	Link      string
	EmailSent bool
	Warnings  []Warning
}

// InviteInfo is what an unauthenticated holder of a token may learn.
type InviteInfo struct {
	Email      string
	Role       domain.Role
	PropertyID string
	OrgID      string
	ExpiresAt  time.Time
}

type AcceptedInvite struct {
	Invite domain.Invite
	User   domain.User
}

// Issue creates an invite to a property and emails the link. The insert is
// authoritative; a failed email is reported as a warning.
func (s *InviteService) Issue(ctx context.Context, id domain.Identity, propertyID string, in IssueInviteInput) (IssuedInvite, error) {
	log := slogx.FromContext(ctx)

	// 1. Authorize.
	me, p, err := s.Access.Authorize(ctx, id, propertyID, access.ActionInvite)
	if err != nil {
		return IssuedInvite{}, err
	}

	// 2. Validate.
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" {
		return IssuedInvite{}, validationf("email is required")
	}
	role := domain.RoleSeller
	if strings.TrimSpace(in.Role) != "" {
		r, ok := domain.ParseRole(in.Role)
		if !ok {
			return IssuedInvite{}, validationf("unknown role %q", in.Role)
		}
		role = r
	}

	// 3. Mint the token; only its fingerprint is stored.
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate invite token", slog.Any("error", err))
		return IssuedInvite{}, fmt.Errorf("generate token: %w", err)
	}

	ttl := s.TTL
	if ttl <= 0 {
		ttl = DefaultInviteTTL
	}
	now := clock(s.Now)
	inv := domain.Invite{
		ID:         idx.NewAt(now).String(),
		OrgID:      p.OrgID,
		PropertyID: p.ID,
		TokenHash:  cryptox.FingerprintToken(token),
		Email:      email,
		Role:       role,
		CreatedBy:  me.ID,
		ExpiresAt:  now.Add(ttl),
		CreatedAt:  now,
	}

	// 4. Store.
	if err := s.Store.Invites().CreateInvite(ctx, inv); err != nil {
		log.Error("failed to create invite", slog.String("property_id", p.ID), slog.Any("error", err))
		return IssuedInvite{}, unavailable("create invite", err)
	}

	out := IssuedInvite{
		Invite: inv,
		Token:  token,
		Link:   strings.TrimRight(s.Origin, "/") + "/invite/" + token,
	}

	// 5. Deliver.
	if s.Mailer != nil {
		err := s.Mailer.SendInvite(ctx, mail.Invitation{
			To:            email,
			InviterName:   me.Name,
			PropertyTitle: p.Title,
			Role:          role.String(),
			Link:          out.Link,
			ExpiresAt:     inv.ExpiresAt,
		})
		if err != nil {
			log.Error("failed to send invite email", slog.String("invite_id", inv.ID), slog.Any("error", err))
			out.Warnings = append(out.Warnings, Warning{
				Code:    WarnEmailDeliveryFailed,
				Message: "the invite was created but the email could not be sent; share the link directly",
			})
		} else {
			out.EmailSent = true
		}
	}

	log.Info("invite issued",
		slog.String("invite_id", inv.ID),
		slog.String("property_id", p.ID),
		slog.String("role", role.String()),
		slog.Bool("email_sent", out.EmailSent),
	)
	return out, nil
}

// Inspect describes a pending invite to an unauthenticated caller.
func (s *InviteService) Inspect(ctx context.Context, token string) (InviteInfo, error) {
	inv, err := s.lookup(ctx, token)
	if err != nil {
		return InviteInfo{}, err
	}
	if inv.Accepted() {
		return InviteInfo{}, ErrAlreadyAccepted
	}
	if inv.Expired(clock(s.Now)) {
		return InviteInfo{}, ErrExpired
	}
	return InviteInfo{
		Email:      inv.Email,
		Role:       inv.Role,
		PropertyID: inv.PropertyID,
		OrgID:      inv.OrgID,
		ExpiresAt:  inv.ExpiresAt,
	}, nil
}

// Accept redeems an invite for the caller. An invite is single use even
// under concurrent accepts; a Seller invite also makes the caller the
// property's seller.
func (s *InviteService) Accept(ctx context.Context, id domain.Identity, token string) (AcceptedInvite, error) {
	log := slogx.FromContext(ctx)

	// 1. Claim present.
	if strings.TrimSpace(id.Subject) == "" {
		return AcceptedInvite{}, ErrUnauthenticated
	}

	// 2. Invite state.
	inv, err := s.lookup(ctx, token)
	if err != nil {
		return AcceptedInvite{}, err
	}
	now := clock(s.Now)
	if inv.Accepted() {
		return AcceptedInvite{}, ErrAlreadyAccepted
	}
	if inv.Expired(now) {
		return AcceptedInvite{}, ErrExpired
	}

	// 3. Caller matches the invite.
	u, err := s.Access.EnsureUser(ctx, id)
	if err != nil {
		return AcceptedInvite{}, err
	}
	if u.OrgID != inv.OrgID {
		log.Warn("invite accepted from another org",
			slog.String("invite_id", inv.ID),
			slog.String("user_id", u.ID),
		)
		return AcceptedInvite{}, ErrWrongOrg
	}
	if !sameEmail(u.Email, inv.Email) {
		log.Warn("invite accepted by a different email",
			slog.String("invite_id", inv.ID),
			slog.String("user_id", u.ID),
		)
		return AcceptedInvite{}, ErrEmailMismatch
	}

	// 4. Stamp and link atomically.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		ok, err := tx.Invites().MarkAccepted(ctx, inv.ID, u.ID, now)
		if err != nil {
			return fmt.Errorf("mark accepted: %w", err)
		}
		if !ok {
			return ErrAlreadyAccepted
		}
		if inv.Role == domain.RoleSeller {
			if err := tx.Properties().SetSeller(ctx, inv.PropertyID, u.ID, now); err != nil {
				return fmt.Errorf("set seller: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrAlreadyAccepted) {
			return AcceptedInvite{}, err
		}
		log.Error("failed to accept invite", slog.String("invite_id", inv.ID), slog.Any("error", err))
		return AcceptedInvite{}, unavailable("accept invite", err)
	}

	inv.AcceptedAt = &now
	inv.AcceptedBy = &u.ID

	log.Info("invite accepted",
		slog.String("invite_id", inv.ID),
		slog.String("property_id", inv.PropertyID),
		slog.String("user_id", u.ID),
		slog.String("role", inv.Role.String()),
	)
	return AcceptedInvite{Invite: inv, User: u}, nil
}

func (s *InviteService) lookup(ctx context.Context, token string) (domain.Invite, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.Invite{}, ErrNotFound
	}
	inv, err := s.Store.Invites().GetInviteByTokenHash(ctx, cryptox.FingerprintToken(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invite{}, fmt.Errorf("invite: %w", ErrNotFound)
		}
		return domain.Invite{}, fmt.Errorf("load invite: %w", err)
	}
	return inv, nil
}

// sameEmail compares addresses under Unicode case folding. Casers are not
// safe for concurrent use so one is made per call.
func sameEmail(a, b string) bool {
	fold := cases.Fold()
	return fold.String(strings.TrimSpace(a)) == fold.String(strings.TrimSpace(b))
}
