package core

// Group is an insertion-ordered set of handles: one maximal connected
// component of a board. The zero value is an empty group ready for use.
//
// Members keep the order they were added in, so First is deterministic for
// a deterministic board.
type Group[H comparable] struct {
	members []H
	index   map[H]struct{}
}

// NewGroup returns a group holding hs, duplicates dropped.
// Complexity: O(len(hs)).
func NewGroup[H comparable](hs ...H) *Group[H] {
	g := &Group[H]{
		members: make([]H, 0, len(hs)),
		index:   make(map[H]struct{}, len(hs)),
	}
	for _, h := range hs {
		g.Add(h)
	}

	return g
}

// Add inserts h and reports whether it was new.
// Complexity: O(1) amortized.
func (g *Group[H]) Add(h H) bool {
	if g.index == nil {
		g.index = make(map[H]struct{})
	}
	if _, ok := g.index[h]; ok {
		return false
	}
	g.index[h] = struct{}{}
	g.members = append(g.members, h)

	return true
}

// Merge adds every member of other to g, keeping other's order.
// Complexity: O(other.Len()).
func (g *Group[H]) Merge(other *Group[H]) {
	if other == nil {
		return
	}
	for _, h := range other.members {
		g.Add(h)
	}
}

// Contains reports whether h is a member of g.
// Complexity: O(1).
func (g *Group[H]) Contains(h H) bool {
	if g == nil {
		return false
	}
	_, ok := g.index[h]

	return ok
}

// Len returns the number of members.
func (g *Group[H]) Len() int {
	if g == nil {
		return 0
	}

	return len(g.members)
}

// First returns the earliest added member.
func (g *Group[H]) First() (h H, ok bool) {
	if g.Len() == 0 {
		return h, false
	}

	return g.members[0], true
}

// Members returns a copy of the members in insertion order.
func (g *Group[H]) Members() []H {
	if g == nil {
		return nil
	}
	out := make([]H, len(g.members))
	copy(out, g.members)

	return out
}

// Groups is the ordered collection built by one grouping pass. It owns its
// groups; callers read them through a View.
type Groups[H comparable] struct {
	groups []*Group[H]
}

// Push appends g to the collection.
func (gs *Groups[H]) Push(g *Group[H]) {
	gs.groups = append(gs.groups, g)
}

// Extract removes and returns the first group containing h, or nil.
// Order of the remaining groups is preserved.
// Complexity: O(number of groups).
func (gs *Groups[H]) Extract(h H) *Group[H] {
	for i, g := range gs.groups {
		if g.Contains(h) {
			gs.groups = append(gs.groups[:i], gs.groups[i+1:]...)
			return g
		}
	}

	return nil
}

// Len returns the number of groups.
func (gs *Groups[H]) Len() int {
	if gs == nil {
		return 0
	}

	return len(gs.groups)
}

// All returns the groups in order. The slice is a copy; the groups are not.
func (gs *Groups[H]) All() []*Group[H] {
	if gs == nil {
		return nil
	}
	out := make([]*Group[H], len(gs.groups))
	copy(out, gs.groups)

	return out
}

// View borrows every group of the collection.
func (gs *Groups[H]) View() View[H] {
	return NewView(gs.All()...)
}

// View is a read-only, ordered list of groups. Entries may point into a
// Groups collection or at groups created by a later stage (e.g. nuisance
// singletons); consumers never mutate them.
type View[H comparable] struct {
	groups []*Group[H]
}

// NewView wraps gs. Nil entries are skipped.
func NewView[H comparable](gs ...*Group[H]) View[H] {
	out := make([]*Group[H], 0, len(gs))
	for _, g := range gs {
		if g != nil {
			out = append(out, g)
		}
	}

	return View[H]{groups: out}
}

// Groups returns the entries in order.
func (v View[H]) Groups() []*Group[H] {
	out := make([]*Group[H], len(v.groups))
	copy(out, v.groups)

	return out
}

// Len returns the number of groups in the view.
func (v View[H]) Len() int { return len(v.groups) }

// TileCount returns the sum of group sizes.
func (v View[H]) TileCount() int {
	n := 0
	for _, g := range v.groups {
		n += g.Len()
	}

	return n
}

// Find returns the first group containing h, or nil.
func (v View[H]) Find(h H) *Group[H] {
	for _, g := range v.groups {
		if g.Contains(h) {
			return g
		}
	}

	return nil
}

// Contains reports whether any group in the view holds h.
func (v View[H]) Contains(h H) bool {
	return v.Find(h) != nil
}

// Append returns a new view with gs after v's entries. v is left untouched.
func (v View[H]) Append(gs ...*Group[H]) View[H] {
	out := make([]*Group[H], 0, len(v.groups)+len(gs))
	out = append(out, v.groups...)
	for _, g := range gs {
		if g != nil {
			out = append(out, g)
		}
	}

	return View[H]{groups: out}
}
