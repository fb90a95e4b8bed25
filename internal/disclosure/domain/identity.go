package domain

// Identity is the verified claim attached to a caller's session.
type Identity struct {
	Subject string
	Email   string
	Name    string
	Roles   []string
	OrgID   string // Optional; only consulted when the user is first seen
}
