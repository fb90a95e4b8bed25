package domain

import "time"

type User struct {
	ID              string
	OrgID           string // Immutable once set
	ExternalSubject string // Subject claim from the identity provider
	Email           string
	Name            string
	Roles           RoleSet
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
