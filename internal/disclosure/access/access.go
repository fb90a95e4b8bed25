// Package access decides whether a caller may act on a property.
//
// Every entry point that touches a property goes through Decide, and every
// listing goes through Filter, so the precedence rules live in one place.
package access

import "github.com/aussiebroadwan/disclosure/internal/disclosure/domain"

type Action uint8

const (
	ActionRead Action = iota
	ActionUpdate
	ActionDelete
	ActionGenerate
	ActionUpload
	ActionInvite
	ActionAssignAgent
)

var actionNames = [...]string{
	ActionRead:        "read",
	ActionUpdate:      "update",
	ActionDelete:      "delete",
	ActionGenerate:    "generate",
	ActionUpload:      "upload",
	ActionInvite:      "invite",
	ActionAssignAgent: "assign_agent",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// Mutating reports whether the action changes state.
func (a Action) Mutating() bool { return a != ActionRead }

// AdminOnly reports whether only an Admin may perform the action.
func (a Action) AdminOnly() bool { return a == ActionAssignAgent }

// Principal is the resolved caller.
type Principal struct {
	UserID string
	OrgID  string
	Roles  domain.RoleSet
}

// PrincipalOf builds a Principal from a local user record.
func PrincipalOf(u domain.User) Principal {
	return Principal{UserID: u.ID, OrgID: u.OrgID, Roles: u.Roles}
}

type Decision uint8

const (
	Deny Decision = iota
	Allow
)

func (d Decision) Allowed() bool { return d == Allow }

// Reason names the rule that produced a decision. It is only used for logs.
type Reason string

const (
	ReasonCrossOrg    Reason = "cross_org"
	ReasonAdmin       Reason = "admin"
	ReasonAgentOwner  Reason = "assigned_agent"
	ReasonSellerOwner Reason = "owning_seller"
	ReasonNoMatch     Reason = "no_matching_rule"
)

// Decide evaluates the rules in order:
//  1. a property in another org is always denied
//  2. Admin may do anything within its org
//  3. Agent may act on properties assigned to it
//  4. Seller may read the property it owns
//  5. everything else is denied
func Decide(caller Principal, p domain.Property, action Action) (Decision, Reason) {
	if caller.OrgID == "" || caller.OrgID != p.OrgID {
		return Deny, ReasonCrossOrg
	}
	if caller.Roles.Has(domain.RoleAdmin) {
		return Allow, ReasonAdmin
	}
	if caller.Roles.Has(domain.RoleAgent) && p.AgentID == caller.UserID && !action.AdminOnly() {
		return Allow, ReasonAgentOwner
	}
	if caller.Roles.Has(domain.RoleSeller) &&
		!caller.Roles.Has(domain.RoleAgent) &&
		p.SellerID != nil && *p.SellerID == caller.UserID &&
		!action.Mutating() {
		return Allow, ReasonSellerOwner
	}
	return Deny, ReasonNoMatch
}

// CanCreateProperty reports whether the caller may create properties.
func CanCreateProperty(caller Principal) bool {
	return caller.Roles.Has(domain.RoleAdmin) || caller.Roles.Has(domain.RoleAgent)
}

// ListFilter restricts a property listing to what the caller may read.
// When both AgentID and SellerID are set a property matching either is
// visible.
type ListFilter struct {
	OrgID    string
	All      bool
	AgentID  string
	SellerID string
}

// None reports whether the filter cannot match anything.
func (f ListFilter) None() bool {
	return f.OrgID == "" || (!f.All && f.AgentID == "" && f.SellerID == "")
}

// Filter returns the listing predicate equivalent to Decide(ActionRead).
func Filter(caller Principal) ListFilter {
	f := ListFilter{OrgID: caller.OrgID}
	switch {
	case caller.Roles.Has(domain.RoleAdmin):
		f.All = true
	case caller.Roles.Has(domain.RoleAgent):
		f.AgentID = caller.UserID
	case caller.Roles.Has(domain.RoleSeller):
		f.SellerID = caller.UserID
	}
	return f
}

// Matches applies the filter to a single property.
func (f ListFilter) Matches(p domain.Property) bool {
	if f.None() || p.OrgID != f.OrgID {
		return false
	}
	if f.All {
		return true
	}
	if f.AgentID != "" && p.AgentID == f.AgentID {
		return true
	}
	return f.SellerID != "" && p.SellerID != nil && *p.SellerID == f.SellerID
}
