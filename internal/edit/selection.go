package edit

import (
	"slices"

	"mapedit/internal/geom"
)

// hilightRadius is the pick radius in screen units; map units are this
// divided by the view's distance scale.
const hilightRadius = 32

// Selection holds the hilighted item, the ordered selection and the change
// set of the last selection operation.
type Selection struct {
	ctx Context

	hilight Item
	locked  bool
	items   []Item
	changes ChangeSet
}

func NewSelection(ctx Context) *Selection {
	return &Selection{ctx: ctx, hilight: NoItem, changes: ChangeSet{}}
}

func (s *Selection) Hilight() Item { return s.hilight }

// Items returns the selection in the order items were selected.
func (s *Selection) Items() []Item { return slices.Clone(s.items) }

func (s *Selection) Len() int { return len(s.items) }

// Changes is the change set of the most recent operation.
func (s *Selection) Changes() ChangeSet { return s.changes }

func (s *Selection) IsSelected(item Item) bool { return slices.Contains(s.items, item) }

// LockHilight suppresses UpdateHilight, e.g. while drawing.
func (s *Selection) LockHilight(lock bool) { s.locked = lock }

func (s *Selection) HilightLocked() bool { return s.locked }

// SetHilight replaces the hilight and reports whether it changed.
func (s *Selection) SetHilight(item Item) bool {
	if same(item, s.hilight) {
		return false
	}
	s.hilight = item
	if s.ctx != nil {
		s.ctx.ResetLastUndoMarker()
	}
	return true
}

// SetHilightIndex hilights index as the current mode's entity type.
func (s *Selection) SetHilightIndex(index int) bool {
	typ := s.hilight.Type
	if s.ctx != nil {
		if t, ok := ItemTypeFor(s.ctx.Mode()); ok {
			typ = t
		}
	}
	return s.SetHilight(Item{Index: index, Type: typ})
}

// UpdateHilight picks the entity under pos for the current mode.
// Visual mode hilights are driven by the 3D view, not the cursor.
func (s *Selection) UpdateHilight(pos geom.Point, distScale float64) bool {
	if s.locked || s.ctx == nil {
		return false
	}
	m := s.ctx.Map()
	if m == nil {
		return false
	}
	radius := hilightRadius / distScale
	var next Item
	switch s.ctx.Mode() {
	case ModeVertices:
		next = Item{m.NearestVertex(pos, radius), ItemVertex}
	case ModeLines:
		next = Item{m.NearestLine(pos, radius), ItemLine}
	case ModeSectors:
		next = Item{m.SectorAt(pos), ItemSector}
	case ModeThings:
		// the last candidate in range wins, not the closest
		next = Item{-1, ItemThing}
		for _, t := range m.ThingsNear(pos) {
			if geom.Dist(pos, m.ThingPos(t)) <= s.ctx.ThingRadius(m.ThingType(t))+radius {
				next.Index = t
			}
		}
	case ModeVisual:
		return false
	}
	if !s.SetHilight(next) {
		return false
	}
	if len(s.items) == 0 {
		s.ctx.OpenObjectProperties(s.hilight)
	}
	s.ctx.RecomputeTaggedItems()
	return true
}

func (s *Selection) toggle(item Item, selected bool) {
	if !item.Valid() {
		return
	}
	i := slices.Index(s.items, item)
	switch {
	case selected && i < 0:
		s.items = append(s.items, item)
		s.changes[item] = true
	case !selected && i >= 0:
		s.items = slices.Delete(s.items, i, i+1)
		s.changes[item] = false
	}
}

func (s *Selection) notify() {
	if s.ctx != nil {
		s.ctx.NotifySelectionChanged()
	}
}

// Select adds or removes item. Without newChangeSet the change is folded into
// the current change set, so a drag can build one batch over many calls.
func (s *Selection) Select(item Item, selected, newChangeSet bool) {
	s.SelectItems([]Item{item}, selected, newChangeSet)
}

func (s *Selection) SelectItems(items []Item, selected, newChangeSet bool) {
	if newChangeSet {
		s.changes = ChangeSet{}
	}
	for _, it := range items {
		s.toggle(it, selected)
	}
	s.notify()
}

func (s *Selection) deselectAll() {
	for _, it := range s.items {
		s.changes[it] = false
	}
	s.items = nil
}

// Clear deselects everything in a new change set.
func (s *Selection) Clear() {
	s.changes = ChangeSet{}
	s.deselectAll()
	s.notify()
}

// SelectAll selects every entity of the current mode's type.
func (s *Selection) SelectAll() {
	s.changes = ChangeSet{}
	if s.ctx == nil || s.ctx.Map() == nil {
		return
	}
	m := s.ctx.Map()
	var n int
	typ, ok := ItemTypeFor(s.ctx.Mode())
	if !ok {
		return
	}
	switch typ {
	case ItemVertex:
		n = m.NumVertices()
	case ItemLine:
		n = m.NumLines()
	case ItemSector:
		n = m.NumSectors()
	case ItemThing:
		n = m.NumThings()
	}
	for i := 0; i < n; i++ {
		s.toggle(Item{i, typ}, true)
	}
	s.notify()
}

// ToggleCurrent toggles the hilighted item. With nothing hilighted it clears
// the selection when clearIfNone is set and reports false.
func (s *Selection) ToggleCurrent(clearIfNone bool) bool {
	if !s.hilight.Valid() {
		if clearIfNone {
			s.Clear()
		}
		return false
	}
	s.Select(s.hilight, !s.IsSelected(s.hilight), true)
	return true
}

// SelectWithin selects what lies inside rect for the current mode: vertices
// and things by position, lines by both ends, sectors by their whole bounding
// box. It reports whether anything was selected.
func (s *Selection) SelectWithin(rect geom.BBox, add bool) bool {
	s.changes = ChangeSet{}
	if !add {
		s.deselectAll()
	}
	if s.ctx == nil || s.ctx.Map() == nil {
		return false
	}
	m := s.ctx.Map()
	switch s.ctx.Mode() {
	case ModeVertices:
		for i := 0; i < m.NumVertices(); i++ {
			if rect.Contains(m.VertexPos(i)) {
				s.toggle(Item{i, ItemVertex}, true)
			}
		}
	case ModeLines:
		for i := 0; i < m.NumLines(); i++ {
			v1, v2 := m.LineVertices(i)
			if rect.Contains(m.VertexPos(v1)) && rect.Contains(m.VertexPos(v2)) {
				s.toggle(Item{i, ItemLine}, true)
			}
		}
	case ModeSectors:
		for i := 0; i < m.NumSectors(); i++ {
			if rect.ContainsBox(m.SectorBBox(i)) {
				s.toggle(Item{i, ItemSector}, true)
			}
		}
	case ModeThings:
		for i := 0; i < m.NumThings(); i++ {
			if rect.Contains(m.ThingPos(i)) {
				s.toggle(Item{i, ItemThing}, true)
			}
		}
	}
	s.notify()
	for _, added := range s.changes {
		if added {
			return true
		}
	}
	return false
}

func (s *Selection) selectedOf(typ ItemType, tryHilight bool) []int {
	out := []int{}
	for _, it := range s.items {
		if it.Type == typ {
			out = append(out, it.Index)
		}
	}
	if len(s.items) == 0 && tryHilight && s.hilight.Valid() && s.hilight.Type == typ {
		out = append(out, s.hilight.Index)
	}
	return out
}

// SelectedVertices returns the selected vertices. With an empty selection
// and tryHilight set it falls back to the hilight, if it is a vertex.
func (s *Selection) SelectedVertices(tryHilight bool) []int {
	return s.selectedOf(ItemVertex, tryHilight)
}

func (s *Selection) SelectedLines(tryHilight bool) []int {
	return s.selectedOf(ItemLine, tryHilight)
}

func (s *Selection) SelectedSectors(tryHilight bool) []int {
	return s.selectedOf(ItemSector, tryHilight)
}

func (s *Selection) SelectedThings(tryHilight bool) []int {
	return s.selectedOf(ItemThing, tryHilight)
}

// SelectionOrHilight returns the selection, or the hilight alone when
// nothing is selected.
func (s *Selection) SelectionOrHilight() []Item {
	if len(s.items) > 0 {
		return s.Items()
	}
	if s.hilight.Valid() {
		return []Item{s.hilight}
	}
	return nil
}
