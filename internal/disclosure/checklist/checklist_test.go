package checklist_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/disclosure/internal/disclosure/checklist"
	"github.com/aussiebroadwan/disclosure/internal/disclosure/domain"
	"github.com/stretchr/testify/require"
)

func ids(items []domain.ChecklistItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestBuild(t *testing.T) {
	t.Parallel()
	rules := checklist.Default()

	t.Run("unit with title and smoke alarm", func(t *testing.T) {
		t.Parallel()
		items := rules.Build("unit", []string{"title_search", "smoke_alarm"})
		require.Equal(t, []domain.ChecklistItem{
			{ID: "title_search", Label: "Title Search", Required: true, Complete: true},
			{ID: "body_corporate", Label: "Body Corporate Disclosure", Required: true, Complete: false},
			{ID: "smoke_alarm", Label: "Smoke Alarm Compliance", Required: true, Complete: true},
		}, items)

		done, total := checklist.Progress(items)
		require.Equal(t, 2, done)
		require.Equal(t, 3, total)
	})

	t.Run("type is normalized", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, rules.Build("house", nil), rules.Build("  HOUSE ", nil))
	})

	t.Run("unknown type falls back to default", func(t *testing.T) {
		t.Parallel()
		items := rules.Build("warehouse", []string{"title_search"})
		require.Equal(t, []string{"title_search", "smoke_alarm"}, ids(items))
		require.True(t, items[0].Complete)
		require.False(t, items[1].Complete)
	})

	t.Run("order follows rule set not uploads", func(t *testing.T) {
		t.Parallel()
		a := rules.Build("house", []string{"pool_safety", "smoke_alarm", "title_search"})
		b := rules.Build("house", []string{"title_search", "smoke_alarm", "pool_safety"})
		require.Equal(t, a, b)
		require.Equal(t, []string{"title_search", "smoke_alarm", "pool_safety"}, ids(a))
	})

	t.Run("unrelated kinds are ignored", func(t *testing.T) {
		t.Parallel()
		items := rules.Build("house", []string{"supporting", "floor_plan"})
		done, _ := checklist.Progress(items)
		require.Zero(t, done)
	})
}

func TestBuildMonotonic(t *testing.T) {
	t.Parallel()
	rules := checklist.Default()
	all := []string{"title_search", "body_corporate", "smoke_alarm", "pool_safety", "supporting"}

	for _, typ := range []string{"house", "unit", "other"} {
		var present []string
		prev := rules.Build(typ, present)
		for _, kind := range all {
			present = append(present, kind)
			next := rules.Build(typ, present)
			require.Len(t, next, len(prev))
			for i := range next {
				if prev[i].Complete {
					require.True(t, next[i].Complete, "type %s item %s regressed", typ, next[i].ID)
				}
			}
			prev = next
		}
	}
}

func TestRequiredKinds(t *testing.T) {
	t.Parallel()
	rules := checklist.Default()
	require.Equal(t, []string{"title_search", "smoke_alarm"}, rules.RequiredKinds("house"))
	require.Equal(t, []string{"title_search", "body_corporate", "smoke_alarm"}, rules.RequiredKinds("Unit"))
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{
			name:    "missing default",
			yaml:    "house:\n  - {id: title_search, label: Title}\n",
			wantErr: checklist.ErrNoDefault,
		},
		{
			name:    "default without baseline",
			yaml:    "default:\n  - {id: title_search, label: Title}\n",
			wantErr: checklist.ErrMissingBaseline,
		},
		{
			name:    "duplicate id",
			yaml:    "default:\n  - {id: title_search, label: A}\n  - {id: title_search, label: B}\n",
			wantErr: checklist.ErrDuplicateItem,
		},
		{
			name:    "empty label",
			yaml:    "default:\n  - {id: title_search}\n",
			wantErr: checklist.ErrEmptyItem,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := checklist.Parse([]byte(tt.yaml))
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadOverride(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "rules.yaml")
	data := `
DEFAULT:
  - {id: title_search, label: Title Search, required: true}
  - {id: smoke_alarm, label: Smoke Alarm, required: true}
Acreage:
  - {id: bore_water, label: Bore Water Test, required: true}
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	rules, err := checklist.Load(path)
	require.NoError(t, err)
	require.Equal(t, []string{"bore_water"}, ids(rules.Build("acreage", nil)))
	require.Equal(t, []string{"title_search", "smoke_alarm"}, ids(rules.Build("house", nil)))
}
