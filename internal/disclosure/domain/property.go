package domain

import "time"

const DefaultPropertyType = "house"

type Property struct {
	ID        string
	OrgID     string
	Type      string // Lower-cased; unknown types use the default checklist
	Title     string
	Address   string
	SellerID  *string // Set once a seller invite is accepted
	AgentID   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
