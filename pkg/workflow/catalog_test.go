package workflow

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListStepsIsStableAndDetached(t *testing.T) {
	first := ListSteps()
	second := ListSteps()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("ListSteps not restartable (-first +second):\n%s", diff)
	}

	first[0].Title = "mutated"
	first[0].TemplateRefs[0] = "mutated"

	again := ListSteps()
	assert.NotEqual(t, "mutated", again[0].Title)
	assert.NotEqual(t, "mutated", again[0].TemplateRefs[0])
}

func TestDefaultCatalogShape(t *testing.T) {
	c := DefaultCatalog()
	require.Equal(t, 13, c.Len())
	assert.Equal(t, []string{
		PhasePreparation,
		PhaseStrategicPlanning,
		PhaseContentGeneration,
		PhaseRefinement,
		PhaseFinalization,
	}, c.Phases())

	seen := map[string]bool{}
	for _, s := range c.ListSteps() {
		assert.False(t, seen[s.ID], "duplicate id %s", s.ID)
		seen[s.ID] = true
		assert.NotEmpty(t, s.Title)
		assert.NotEmpty(t, s.EstimatedTime)
	}
	assert.True(t, seen["research-setup"])
	assert.True(t, seen["budget-justification"])
}

func TestNewCatalogDropsDuplicateIDs(t *testing.T) {
	c := NewCatalog([]StepDefinition{
		{ID: "a", Title: "first", Phase: "P"},
		{ID: "a", Title: "second", Phase: "P"},
		{ID: "b", Title: "third", Phase: "Q"},
	})
	require.Equal(t, 2, c.Len())
	step, ok := c.Step("a")
	require.True(t, ok)
	assert.Equal(t, "first", step.Title)

	_, ok = c.Step("missing")
	assert.False(t, ok)
}

func TestGroupByPhase(t *testing.T) {
	steps := []StepDefinition{
		{ID: "1", Phase: "B"},
		{ID: "2", Phase: "A"},
		{ID: "3", Phase: "B"},
		{ID: "4", Phase: "C"},
		{ID: "5", Phase: "A"},
	}

	groups := GroupByPhase(steps)

	want := []PhaseGroup[StepDefinition]{
		{Phase: "B", Steps: []StepDefinition{{ID: "1", Phase: "B"}, {ID: "3", Phase: "B"}}},
		{Phase: "A", Steps: []StepDefinition{{ID: "2", Phase: "A"}, {ID: "5", Phase: "A"}}},
		{Phase: "C", Steps: []StepDefinition{{ID: "4", Phase: "C"}}},
	}
	if diff := cmp.Diff(want, groups); diff != "" {
		t.Errorf("GroupByPhase mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupByPhaseEmpty(t *testing.T) {
	groups := GroupByPhase([]StepDefinition{})
	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}
