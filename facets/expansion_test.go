package facets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrillDownSingleSlot(t *testing.T) {
	var drill DrillDown
	assert.Nil(t, drill.Current())

	drill.Expand(KeyCategory, "parent-x")
	require.NotNil(t, drill.Current())
	assert.True(t, drill.IsExpanded(KeyCategory, "parent-x"))

	// Expanding Y closes X; only one expansion is live at a time.
	drill.Expand(KeyCategory, "parent-y")
	assert.False(t, drill.IsExpanded(KeyCategory, "parent-x"))
	assert.True(t, drill.IsExpanded(KeyCategory, "parent-y"))

	// Expansions in another hierarchical facet also displace the slot.
	drill.Expand(KeyCollection, "coll-z")
	assert.False(t, drill.IsExpanded(KeyCategory, "parent-y"))
	assert.True(t, drill.IsExpanded(KeyCollection, "coll-z"))
}

func TestDrillDownCollapse(t *testing.T) {
	var drill DrillDown
	drill.Expand(KeyCategory, "parent-x")

	drill.Collapse()
	assert.Nil(t, drill.Current())
	assert.False(t, drill.IsExpanded(KeyCategory, "parent-x"))

	// Collapsing an already-closed slot is a no-op.
	drill.Collapse()
	assert.Nil(t, drill.Current())
}

func TestDrillDownSurvivesChildSelection(t *testing.T) {
	var drill DrillDown
	drill.Expand(KeyCategory, "parent-x")

	// Selecting a child option mutates only the selection, never the slot.
	sel := NewSelection()
	sel.Toggle(KeySubCategory, "child-of-x")

	assert.True(t, drill.IsExpanded(KeyCategory, "parent-x"))
}
