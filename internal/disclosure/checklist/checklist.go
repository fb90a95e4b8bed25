// Package checklist derives document checklists for properties.
//
// A checklist is computed on every read from the property type and the set
// of document kinds uploaded so far. Nothing here is stored.
package checklist

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/aussiebroadwan/disclosure/internal/disclosure/domain"
	"gopkg.in/yaml.v3"
)

// DefaultType names the rule set used for unknown property types.
const DefaultType = "default"

var (
	ErrNoDefault       = errors.New("checklist: rule sets must define a default set")
	ErrMissingBaseline = errors.New("checklist: default set must include title_search and smoke_alarm")
	ErrDuplicateItem   = errors.New("checklist: duplicate item id")
	ErrEmptyItem       = errors.New("checklist: item id and label are required")
)

//go:embed rules.yaml
var embeddedRules []byte

// Rule is a single checklist entry.
type Rule struct {
	ID       string `yaml:"id"`
	Label    string `yaml:"label"`
	Required bool   `yaml:"required"`
}

// RuleSets maps a normalized property type to its ordered rules.
type RuleSets map[string][]Rule

// Parse decodes and validates YAML rule sets.
func Parse(data []byte) (RuleSets, error) {
	var sets RuleSets
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sets); err != nil {
		return nil, fmt.Errorf("checklist: decode rules: %w", err)
	}

	normalized := make(RuleSets, len(sets))
	for typ, rules := range sets {
		key := NormalizeType(typ)
		seen := make(map[string]struct{}, len(rules))
		for _, r := range rules {
			if r.ID == "" || r.Label == "" {
				return nil, fmt.Errorf("%w (set %q)", ErrEmptyItem, key)
			}
			if _, ok := seen[r.ID]; ok {
				return nil, fmt.Errorf("%w: %q in set %q", ErrDuplicateItem, r.ID, key)
			}
			seen[r.ID] = struct{}{}
		}
		normalized[key] = rules
	}

	def, ok := normalized[DefaultType]
	if !ok {
		return nil, ErrNoDefault
	}
	if !hasRule(def, "title_search") || !hasRule(def, "smoke_alarm") {
		return nil, ErrMissingBaseline
	}
	return normalized, nil
}

// Load returns the embedded rule sets, or the rule sets in path when set.
func Load(path string) (RuleSets, error) {
	if path == "" {
		return Parse(embeddedRules)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("checklist: read %s: %w", path, err)
	}
	return Parse(data)
}

// Default returns the embedded rule sets and panics if they are invalid.
func Default() RuleSets {
	sets, err := Parse(embeddedRules)
	if err != nil {
		panic(err)
	}
	return sets
}

// NormalizeType lower-cases and trims a property type.
func NormalizeType(propertyType string) string {
	return strings.ToLower(strings.TrimSpace(propertyType))
}

// Rules returns the rule set for a property type, falling back to default.
func (s RuleSets) Rules(propertyType string) []Rule {
	if rules, ok := s[NormalizeType(propertyType)]; ok {
		return rules
	}
	return s[DefaultType]
}

// Build computes the checklist for a property type and the document kinds
// present. Output order follows the rule set.
func (s RuleSets) Build(propertyType string, presentKinds []string) []domain.ChecklistItem {
	rules := s.Rules(propertyType)
	items := make([]domain.ChecklistItem, 0, len(rules))
	for _, r := range rules {
		items = append(items, domain.ChecklistItem{
			ID:       r.ID,
			Label:    r.Label,
			Required: r.Required,
			Complete: slices.Contains(presentKinds, r.ID),
		})
	}
	return items
}

// RequiredKinds returns the ids of required items in declared order.
func (s RuleSets) RequiredKinds(propertyType string) []string {
	var out []string
	for _, r := range s.Rules(propertyType) {
		if r.Required {
			out = append(out, r.ID)
		}
	}
	return out
}

// Progress counts completed items against the total.
func Progress(items []domain.ChecklistItem) (complete, total int) {
	for _, it := range items {
		if it.Complete {
			complete++
		}
	}
	return complete, len(items)
}

func hasRule(rules []Rule, id string) bool {
	return slices.ContainsFunc(rules, func(r Rule) bool { return r.ID == id })
}
