package access_test

import (
	"testing"

	"github.com/aussiebroadwan/disclosure/internal/disclosure/access"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/domain"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func roles(rs ...domain.Role) domain.RoleSet {
	var set domain.RoleSet
	for _, r := range rs {
		set = set.With(r)
	}
	return set
}

var allActions = []access.Action{
	access.ActionRead,
	access.ActionUpdate,
	access.ActionDelete,
	access.ActionGenerate,
	access.ActionUpload,
	access.ActionInvite,
	access.ActionAssignAgent,
}

func TestDecide(t *testing.T) {
	t.Parallel()

	property := domain.Property{
		ID:       "prop-1",
		OrgID:    "org-1",
		AgentID:  "agent-1",
		SellerID: ptr("seller-1"),
	}

	tests := []struct {
		name    string
		caller  access.Principal
		allowed map[access.Action]bool
		reason  access.Reason
	}{
		{
			name:   "admin in another org",
			caller: access.Principal{UserID: "admin-2", OrgID: "org-2", Roles: roles(domain.RoleAdmin)},
			reason: access.ReasonCrossOrg,
		},
		{
			name:   "assigned agent in another org",
			caller: access.Principal{UserID: "agent-1", OrgID: "org-2", Roles: roles(domain.RoleAgent)},
			reason: access.ReasonCrossOrg,
		},
		{
			name:   "admin",
			caller: access.Principal{UserID: "admin-1", OrgID: "org-1", Roles: roles(domain.RoleAdmin)},
			allowed: map[access.Action]bool{
				access.ActionRead: true, access.ActionUpdate: true, access.ActionDelete: true,
				access.ActionGenerate: true, access.ActionUpload: true, access.ActionInvite: true,
				access.ActionAssignAgent: true,
			},
			reason: access.ReasonAdmin,
		},
		{
			name:   "assigned agent",
			caller: access.Principal{UserID: "agent-1", OrgID: "org-1", Roles: roles(domain.RoleAgent)},
			allowed: map[access.Action]bool{
				access.ActionRead: true, access.ActionUpdate: true, access.ActionDelete: true,
				access.ActionGenerate: true, access.ActionUpload: true, access.ActionInvite: true,
			},
			reason: access.ReasonAgentOwner,
		},
		{
			name:   "other agent",
			caller: access.Principal{UserID: "agent-2", OrgID: "org-1", Roles: roles(domain.RoleAgent)},
			reason: access.ReasonNoMatch,
		},
		{
			name:    "owning seller",
			caller:  access.Principal{UserID: "seller-1", OrgID: "org-1", Roles: roles(domain.RoleSeller)},
			allowed: map[access.Action]bool{access.ActionRead: true},
			reason:  access.ReasonSellerOwner,
		},
		{
			name:   "other seller",
			caller: access.Principal{UserID: "seller-2", OrgID: "org-1", Roles: roles(domain.RoleSeller)},
			reason: access.ReasonNoMatch,
		},
		{
			name:   "owning seller who is also an unassigned agent",
			caller: access.Principal{UserID: "seller-1", OrgID: "org-1", Roles: roles(domain.RoleSeller, domain.RoleAgent)},
			reason: access.ReasonNoMatch,
		},
		{
			name:   "no roles",
			caller: access.Principal{UserID: "agent-1", OrgID: "org-1"},
			reason: access.ReasonNoMatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			for _, action := range allActions {
				decision, _ := access.Decide(tt.caller, property, action)
				require.Equal(t, tt.allowed[action], decision.Allowed(), "action %s", action)
			}
			_, reason := access.Decide(tt.caller, property, access.ActionRead)
			require.Equal(t, tt.reason, reason)
		})
	}
}

func TestDecideSellerlessProperty(t *testing.T) {
	t.Parallel()

	p := domain.Property{OrgID: "org-1", AgentID: "agent-1"}
	seller := access.Principal{UserID: "seller-1", OrgID: "org-1", Roles: roles(domain.RoleSeller)}

	decision, _ := access.Decide(seller, p, access.ActionRead)
	require.False(t, decision.Allowed())
}

// The listing filter must agree with Decide for reads.
func TestFilterMatchesDecide(t *testing.T) {
	t.Parallel()

	properties := []domain.Property{
		{ID: "p1", OrgID: "org-1", AgentID: "agent-1", SellerID: ptr("seller-1")},
		{ID: "p2", OrgID: "org-1", AgentID: "agent-2"},
		{ID: "p3", OrgID: "org-1", AgentID: "agent-2", SellerID: ptr("seller-2")},
		{ID: "p4", OrgID: "org-2", AgentID: "agent-1", SellerID: ptr("seller-1")},
	}

	var callers []access.Principal
	for _, id := range []string{"agent-1", "agent-2", "seller-1", "seller-2", "admin-1"} {
		for _, org := range []string{"org-1", "org-2", ""} {
			for set := domain.RoleSet(0); set < 8; set++ {
				callers = append(callers, access.Principal{UserID: id, OrgID: org, Roles: set})
			}
		}
	}

	for _, c := range callers {
		f := access.Filter(c)
		for _, p := range properties {
			decision, _ := access.Decide(c, p, access.ActionRead)
			require.Equal(t, decision.Allowed(), f.Matches(p),
				"caller %+v property %s", c, p.ID)
		}
	}
}

func TestCanCreateProperty(t *testing.T) {
	t.Parallel()

	require.True(t, access.CanCreateProperty(access.Principal{Roles: roles(domain.RoleAgent)}))
	require.True(t, access.CanCreateProperty(access.Principal{Roles: roles(domain.RoleAdmin)}))
	require.False(t, access.CanCreateProperty(access.Principal{Roles: roles(domain.RoleSeller)}))
	require.False(t, access.CanCreateProperty(access.Principal{}))
}
