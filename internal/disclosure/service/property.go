package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/disclosure/internal/disclosure/access"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/checklist"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/domain"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/store"
	"github.com/aussiebroadwan/disclosure/pkg/idx"
	"github.com/aussiebroadwan/disclosure/pkg/slogx"
)

type PropertyService struct {
	Store  store.Store
	Access *AccessService
	Rules  checklist.RuleSets
	Now    func() time.Time
}

type CreatePropertyInput struct {
	Title       string
	Address     string
	Type        string
	SellerEmail string
	AgentEmail  string
}

// UpdatePropertyInput holds optional changes; nil fields are left alone.
type UpdatePropertyInput struct {
	Title   *string
	Address *string
	Type    *string
}

// ChecklistView is a property's derived checklist.
type ChecklistView struct {
	Items     []domain.ChecklistItem
	Completed int
	Total     int
}

type PropertyDetail struct {
	Property  domain.Property
	Checklist ChecklistView
}

// Create adds a property to the caller's org. Agents own what they create;
// an Admin may hand it to another agent by email.
func (s *PropertyService) Create(ctx context.Context, id domain.Identity, in CreatePropertyInput) (domain.Property, error) {
	log := slogx.FromContext(ctx)

	// 1. Resolve caller and check capability.
	me, caller, err := s.Access.Principal(ctx, id)
	if err != nil {
		return domain.Property{}, err
	}
	if !access.CanCreateProperty(caller) {
		return domain.Property{}, ErrForbidden
	}

	// 2. Validate input.
	title := strings.TrimSpace(in.Title)
	address := strings.TrimSpace(in.Address)
	if title == "" || address == "" {
		return domain.Property{}, validationf("title and address are required")
	}
	typ := checklist.NormalizeType(in.Type)
	if typ == "" {
		typ = domain.DefaultPropertyType
	}

	// 3. Resolve seller and agent within the org.
	var sellerID *string
	if email := strings.TrimSpace(in.SellerEmail); email != "" {
		seller, err := s.userInOrg(ctx, me.OrgID, email)
		if err != nil {
			return domain.Property{}, err
		}
		sellerID = &seller.ID
	}

	agentID := me.ID
	if email := strings.TrimSpace(in.AgentEmail); email != "" {
		if !caller.Roles.Has(domain.RoleAdmin) {
			return domain.Property{}, fmt.Errorf("%w: only an admin may assign another agent", ErrForbidden)
		}
		agent, err := s.userInOrg(ctx, me.OrgID, email)
		if err != nil {
			return domain.Property{}, err
		}
		agentID = agent.ID
	}

	now := clock(s.Now)
	p := domain.Property{
		ID:        idx.NewAt(now).String(),
		OrgID:     me.OrgID,
		Type:      typ,
		Title:     title,
		Address:   address,
		SellerID:  sellerID,
		AgentID:   agentID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// 4. Persist.
	if err := s.Store.Properties().CreateProperty(ctx, p); err != nil {
		log.Error("failed to create property", slog.Any("error", err))
		return domain.Property{}, unavailable("create property", err)
	}

	log.Info("property created",
		slog.String("property_id", p.ID),
		slog.String("agent_id", p.AgentID),
		slog.String("type", p.Type),
	)
	return p, nil
}

// Get returns the property with its checklist.
func (s *PropertyService) Get(ctx context.Context, id domain.Identity, propertyID string) (PropertyDetail, error) {
	_, p, err := s.Access.Authorize(ctx, id, propertyID, access.ActionRead)
	if err != nil {
		return PropertyDetail{}, err
	}

	view, err := checklistFor(ctx, s.Store, s.Rules, p)
	if err != nil {
		return PropertyDetail{}, err
	}
	return PropertyDetail{Property: p, Checklist: view}, nil
}

// Checklist returns only the derived checklist for a property.
func (s *PropertyService) Checklist(ctx context.Context, id domain.Identity, propertyID string) (ChecklistView, error) {
	d, err := s.Get(ctx, id, propertyID)
	if err != nil {
		return ChecklistView{}, err
	}
	return d.Checklist, nil
}

// List returns the properties the caller may read, newest first.
func (s *PropertyService) List(ctx context.Context, id domain.Identity) ([]domain.Property, error) {
	_, caller, err := s.Access.Principal(ctx, id)
	if err != nil {
		return nil, err
	}

	f := access.Filter(caller)
	if f.None() {
		return []domain.Property{}, nil
	}

	props, err := s.Store.Properties().ListProperties(ctx, storeFilter(f))
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	return props, nil
}

// Update changes the descriptive fields of a property.
func (s *PropertyService) Update(
	ctx context.Context,
	id domain.Identity,
	propertyID string,
	in UpdatePropertyInput,
) (domain.Property, error) {
	_, p, err := s.Access.Authorize(ctx, id, propertyID, access.ActionUpdate)
	if err != nil {
		return domain.Property{}, err
	}

	if in.Title != nil {
		if p.Title = strings.TrimSpace(*in.Title); p.Title == "" {
			return domain.Property{}, validationf("title cannot be blank")
		}
	}
	if in.Address != nil {
		if p.Address = strings.TrimSpace(*in.Address); p.Address == "" {
			return domain.Property{}, validationf("address cannot be blank")
		}
	}
	if in.Type != nil {
		if p.Type = checklist.NormalizeType(*in.Type); p.Type == "" {
			p.Type = domain.DefaultPropertyType
		}
	}
	p.UpdatedAt = clock(s.Now)

	if err := s.Store.Properties().UpdateDetails(ctx, p); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Property{}, ErrNotFound
		}
		return domain.Property{}, unavailable("update property", err)
	}
	return p, nil
}

// AssignAgent hands a property to another agent in the same org.
func (s *PropertyService) AssignAgent(
	ctx context.Context,
	id domain.Identity,
	propertyID, agentEmail string,
) (domain.Property, error) {
	log := slogx.FromContext(ctx)

	_, p, err := s.Access.Authorize(ctx, id, propertyID, access.ActionAssignAgent)
	if err != nil {
		return domain.Property{}, err
	}

	email := strings.TrimSpace(agentEmail)
	if email == "" {
		return domain.Property{}, validationf("agent email is required")
	}
	agent, err := s.userInOrg(ctx, p.OrgID, email)
	if err != nil {
		return domain.Property{}, err
	}
	if !agent.Roles.Has(domain.RoleAgent) {
		return domain.Property{}, validationf("%s is not an agent", email)
	}

	now := clock(s.Now)
	if err := s.Store.Properties().SetAgent(ctx, p.ID, agent.ID, now); err != nil {
		return domain.Property{}, unavailable("assign agent", err)
	}
	p.AgentID, p.UpdatedAt = agent.ID, now

	log.Info("agent assigned", slog.String("property_id", p.ID), slog.String("agent_id", agent.ID))
	return p, nil
}

func (s *PropertyService) userInOrg(ctx context.Context, orgID, email string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByEmail(ctx, orgID, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, validationf("no user with email %s in your organisation", email)
		}
		return domain.User{}, fmt.Errorf("lookup user: %w", err)
	}
	return u, nil
}

// checklistFor derives the checklist of p from its current documents.
func checklistFor(ctx context.Context, st store.Store, rules checklist.RuleSets, p domain.Property) (ChecklistView, error) {
	docs, err := st.Documents().ListByProperty(ctx, p.ID)
	if err != nil {
		return ChecklistView{}, fmt.Errorf("list documents: %w", err)
	}
	return buildChecklist(rules, p, docs), nil
}

func buildChecklist(rules checklist.RuleSets, p domain.Property, docs []domain.Document) ChecklistView {
	kinds := make([]string, 0, len(docs))
	for _, d := range docs {
		kinds = append(kinds, d.Kind)
	}
	items := rules.Build(p.Type, kinds)
	done, total := checklist.Progress(items)
	return ChecklistView{Items: items, Completed: done, Total: total}
}
