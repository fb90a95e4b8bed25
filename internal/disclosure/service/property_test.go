package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPropertyCreate(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	agent := h.identity("agent", "Agent")
	other := h.identity("other-agent", "Agent")
	admin := h.identity("admin", "Admin")
	seller := h.identity("seller", "Seller")
	h.ensure(t, other)
	sellerUser := h.ensure(t, seller)

	t.Run("agent owns what it creates", func(t *testing.T) {
		p, err := h.props.Create(h.ctx(), agent, CreatePropertyInput{
			Title: "  1 Gum Rd ", Address: "1 Gum Rd", Type: " UNIT ",
			SellerEmail: "SELLER@acme.test",
		})
		require.NoError(t, err)
		require.Equal(t, "1 Gum Rd", p.Title)
		require.Equal(t, "unit", p.Type)
		require.Equal(t, h.ensure(t, agent).ID, p.AgentID)
		require.NotNil(t, p.SellerID)
		require.Equal(t, sellerUser.ID, *p.SellerID)
	})

	t.Run("type defaults to house", func(t *testing.T) {
		p := h.createProperty(t, agent, "")
		require.Equal(t, "house", p.Type)
	})

	t.Run("admin assigns agent by email", func(t *testing.T) {
		p, err := h.props.Create(h.ctx(), admin, CreatePropertyInput{
			Title: "2 Gum Rd", Address: "2 Gum Rd", AgentEmail: "other-agent@acme.test",
		})
		require.NoError(t, err)
		require.Equal(t, h.ensure(t, other).ID, p.AgentID)
	})

	t.Run("agent may not pick another agent", func(t *testing.T) {
		_, err := h.props.Create(h.ctx(), agent, CreatePropertyInput{
			Title: "3 Gum Rd", Address: "3 Gum Rd", AgentEmail: "other-agent@acme.test",
		})
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("unknown emails are rejected", func(t *testing.T) {
		_, err := h.props.Create(h.ctx(), admin, CreatePropertyInput{
			Title: "4 Gum Rd", Address: "4 Gum Rd", AgentEmail: "nobody@acme.test",
		})
		require.ErrorIs(t, err, ErrValidation)

		_, err = h.props.Create(h.ctx(), agent, CreatePropertyInput{
			Title: "4 Gum Rd", Address: "4 Gum Rd", SellerEmail: "nobody@acme.test",
		})
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("seller cannot create", func(t *testing.T) {
		_, err := h.props.Create(h.ctx(), seller, CreatePropertyInput{Title: "x", Address: "y"})
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("title and address required", func(t *testing.T) {
		_, err := h.props.Create(h.ctx(), agent, CreatePropertyInput{Title: " ", Address: "y"})
		require.ErrorIs(t, err, ErrValidation)
	})
}

func TestPropertyListAndGet(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	agent := h.identity("agent", "Agent")
	other := h.identity("other-agent", "Agent")
	admin := h.identity("admin", "Admin")
	nobody := h.identity("nobody")

	first := h.createProperty(t, agent, "house")
	second := h.createProperty(t, agent, "unit")
	theirs := h.createProperty(t, other, "house")

	t.Run("agent sees own newest first", func(t *testing.T) {
		props, err := h.props.List(h.ctx(), agent)
		require.NoError(t, err)
		require.Len(t, props, 2)
		require.Equal(t, second.ID, props[0].ID)
		require.Equal(t, first.ID, props[1].ID)
	})

	t.Run("admin sees all", func(t *testing.T) {
		props, err := h.props.List(h.ctx(), admin)
		require.NoError(t, err)
		require.Len(t, props, 3)
	})

	t.Run("no roles sees nothing", func(t *testing.T) {
		props, err := h.props.List(h.ctx(), nobody)
		require.NoError(t, err)
		require.Empty(t, props)
	})

	t.Run("get includes checklist", func(t *testing.T) {
		h.upload(t, agent, first.ID, "title_search", "title.pdf")

		d, err := h.props.Get(h.ctx(), agent, first.ID)
		require.NoError(t, err)
		require.Equal(t, first.ID, d.Property.ID)
		require.Equal(t, 3, d.Checklist.Total)
		require.Equal(t, 1, d.Checklist.Completed)
		require.Equal(t, "title_search", d.Checklist.Items[0].ID)
		require.True(t, d.Checklist.Items[0].Complete)
	})

	t.Run("get on someone else's property", func(t *testing.T) {
		_, err := h.props.Get(h.ctx(), agent, theirs.ID)
		require.ErrorIs(t, err, ErrForbidden)
	})
}

func TestPropertyUpdateAndAssign(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	agent := h.identity("agent", "Agent")
	other := h.identity("other-agent", "Agent")
	admin := h.identity("admin", "Admin")
	seller := h.identity("seller", "Seller")
	h.ensure(t, other)
	h.ensure(t, seller)
	p := h.createProperty(t, agent, "house")

	t.Run("update fields", func(t *testing.T) {
		title, typ := "New title", "Unit"
		got, err := h.props.Update(h.ctx(), agent, p.ID, UpdatePropertyInput{Title: &title, Type: &typ})
		require.NoError(t, err)
		require.Equal(t, "New title", got.Title)
		require.Equal(t, "unit", got.Type)
		require.Equal(t, p.Address, got.Address)

		view, err := h.props.Checklist(h.ctx(), agent, p.ID)
		require.NoError(t, err)
		require.Equal(t, 3, view.Total)
		require.Equal(t, "body_corporate", view.Items[1].ID)
	})

	t.Run("blank title rejected", func(t *testing.T) {
		blank := " "
		_, err := h.props.Update(h.ctx(), agent, p.ID, UpdatePropertyInput{Title: &blank})
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("only admin assigns", func(t *testing.T) {
		_, err := h.props.AssignAgent(h.ctx(), agent, p.ID, "other-agent@acme.test")
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("assignee must be an agent", func(t *testing.T) {
		_, err := h.props.AssignAgent(h.ctx(), admin, p.ID, "seller@acme.test")
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("admin reassigns", func(t *testing.T) {
		got, err := h.props.AssignAgent(h.ctx(), admin, p.ID, "other-agent@acme.test")
		require.NoError(t, err)
		require.Equal(t, h.ensure(t, other).ID, got.AgentID)

		// The previous agent loses access.
		_, err = h.props.Get(h.ctx(), agent, p.ID)
		require.ErrorIs(t, err, ErrForbidden)
		_, err = h.props.Get(h.ctx(), other, p.ID)
		require.NoError(t, err)
	})
}
