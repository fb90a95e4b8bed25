package domain

import "strings"

// Role is a single role label carried by an identity claim.
type Role uint8

const (
	RoleAdmin Role = 1 << iota
	RoleAgent
	RoleSeller
)

var roleNames = []struct {
	role Role
	name string
}{
	{RoleAdmin, "Admin"},
	{RoleAgent, "Agent"},
	{RoleSeller, "Seller"},
}

func (r Role) String() string {
	for _, rn := range roleNames {
		if rn.role == r {
			return rn.name
		}
	}
	return ""
}

// ParseRole matches a role label case-insensitively.
func ParseRole(s string) (Role, bool) {
	s = strings.TrimSpace(s)
	for _, rn := range roleNames {
		if strings.EqualFold(rn.name, s) {
			return rn.role, true
		}
	}
	return 0, false
}

// RoleSet is a set of roles. Roles are not mutually exclusive.
type RoleSet uint8

// ParseRoleSet builds a set from claim labels. Unknown labels are ignored.
func ParseRoleSet(labels []string) RoleSet {
	var set RoleSet
	for _, label := range labels {
		if r, ok := ParseRole(label); ok {
			set |= RoleSet(r)
		}
	}
	return set
}

func (s RoleSet) Has(r Role) bool { return s&RoleSet(r) != 0 }

func (s RoleSet) With(r Role) RoleSet { return s | RoleSet(r) }

// Labels returns the role names in a stable order.
func (s RoleSet) Labels() []string {
	out := make([]string, 0, len(roleNames))
	for _, rn := range roleNames {
		if s.Has(rn.role) {
			out = append(out, rn.name)
		}
	}
	return out
}
