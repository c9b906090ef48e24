package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cascade/core"
)

// TestGroup_AddAndOrder verifies insertion order, duplicate rejection and First.
func TestGroup_AddAndOrder(t *testing.T) {
	g := core.NewGroup(3, 1, 3, 2)
	assert.Equal(t, 3, g.Len())
	assert.Equal(t, []int{3, 1, 2}, g.Members())

	first, ok := g.First()
	require.True(t, ok)
	assert.Equal(t, 3, first)

	assert.False(t, g.Add(1), "duplicate must be rejected")
	assert.True(t, g.Add(7))
	assert.True(t, g.Contains(7))
	assert.False(t, g.Contains(8))
}

// TestGroup_ZeroValue ensures the zero Group and a nil *Group are usable.
func TestGroup_ZeroValue(t *testing.T) {
	var g core.Group[string]
	_, ok := g.First()
	assert.False(t, ok)
	assert.True(t, g.Add("a"))
	assert.Equal(t, 1, g.Len())

	var nilGroup *core.Group[string]
	assert.Equal(t, 0, nilGroup.Len())
	assert.False(t, nilGroup.Contains("a"))
	assert.Nil(t, nilGroup.Members())
}

// TestGroup_Merge checks that Merge appends the other group's members in order.
func TestGroup_Merge(t *testing.T) {
	g := core.NewGroup(1, 2)
	g.Merge(core.NewGroup(2, 5, 4))
	g.Merge(nil)
	assert.Equal(t, []int{1, 2, 5, 4}, g.Members())
}

// TestGroup_MembersIsCopy ensures callers cannot mutate a group through Members.
func TestGroup_MembersIsCopy(t *testing.T) {
	g := core.NewGroup(1, 2)
	m := g.Members()
	m[0] = 99
	assert.Equal(t, []int{1, 2}, g.Members())
}

// TestGroups_Extract removes the first group holding a handle and keeps the
// rest in order.
func TestGroups_Extract(t *testing.T) {
	var gs core.Groups[int]
	a, b, c := core.NewGroup(1, 2), core.NewGroup(3), core.NewGroup(4, 5)
	gs.Push(a)
	gs.Push(b)
	gs.Push(c)

	got := gs.Extract(3)
	assert.Same(t, b, got)
	assert.Equal(t, 2, gs.Len())
	assert.Equal(t, []*core.Group[int]{a, c}, gs.All())

	assert.Nil(t, gs.Extract(3), "already extracted")
	assert.Nil(t, gs.Extract(42), "never present")
}

// TestGroups_ViewSurvivesExtract ensures a view taken earlier is not disturbed
// by later changes to the collection.
func TestGroups_ViewSurvivesExtract(t *testing.T) {
	var gs core.Groups[int]
	gs.Push(core.NewGroup(1))
	gs.Push(core.NewGroup(2))
	v := gs.View()

	gs.Extract(1)
	require.Equal(t, 2, v.Len())
	assert.True(t, v.Contains(1))
	assert.True(t, v.Contains(2))
}

// TestView_Queries covers Find, Contains, TileCount and Append.
func TestView_Queries(t *testing.T) {
	a, b := core.NewGroup("a1", "a2"), core.NewGroup("b1")
	v := core.NewView(a, nil, b)
	assert.Equal(t, 2, v.Len(), "nil entries are skipped")
	assert.Equal(t, 3, v.TileCount())
	assert.Same(t, a, v.Find("a2"))
	assert.Nil(t, v.Find("zz"))
	assert.True(t, v.Contains("b1"))

	w := v.Append(core.NewGroup("c1"))
	assert.Equal(t, 2, v.Len(), "Append must not modify the receiver")
	assert.Equal(t, 3, w.Len())
	assert.Equal(t, 4, w.TileCount())
	assert.True(t, w.Contains("c1"))
}
