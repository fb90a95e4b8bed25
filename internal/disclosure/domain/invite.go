package domain

import "time"

type Invite struct {
	ID         string
	OrgID      string
	PropertyID string
	TokenHash  string // Fingerprint of the opaque token
	Email      string // Lower-cased
	Role       Role
	CreatedBy  string
	ExpiresAt  time.Time
	AcceptedAt *time.Time
	AcceptedBy *string
	CreatedAt  time.Time
}

// Expired reports whether the invite is past its expiry at now.
func (i Invite) Expired(now time.Time) bool {
	return !now.Before(i.ExpiresAt)
}

func (i Invite) Accepted() bool { return i.AcceptedAt != nil }
