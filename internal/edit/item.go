// Package edit implements the editing state that sits between input events
// and the map: what is hilighted, what is selected, and the line/shape
// drawing tool.
package edit

import "fmt"

// ItemType tags which arena an Item.Index points into.
type ItemType int

const (
	ItemVertex ItemType = iota
	ItemLine
	ItemSide
	ItemSector
	ItemThing

	// 3D parts. Floor and Ceiling address a sector; the wall parts address a
	// side, not a line.
	ItemFloor
	ItemCeiling
	ItemWallTop
	ItemWallMiddle
	ItemWallBottom
)

func (t ItemType) String() string {
	switch t {
	case ItemVertex:
		return "vertex"
	case ItemLine:
		return "line"
	case ItemSide:
		return "side"
	case ItemSector:
		return "sector"
	case ItemThing:
		return "thing"
	case ItemFloor:
		return "floor"
	case ItemCeiling:
		return "ceiling"
	case ItemWallTop:
		return "upper wall"
	case ItemWallMiddle:
		return "middle wall"
	case ItemWallBottom:
		return "lower wall"
	}
	return fmt.Sprintf("ItemType(%d)", int(t))
}

// IsWall reports whether t addresses a side's wall part.
func (t ItemType) IsWall() bool {
	return t == ItemWallTop || t == ItemWallMiddle || t == ItemWallBottom
}

// IsFlat reports whether t addresses a sector's floor or ceiling.
func (t ItemType) IsFlat() bool {
	return t == ItemFloor || t == ItemCeiling
}

// Item references a map entity by index. Index -1 means no item.
type Item struct {
	Index int
	Type  ItemType
}

var NoItem = Item{Index: -1}

func (i Item) Valid() bool { return i.Index >= 0 }

func (i Item) String() string {
	if !i.Valid() {
		return "none"
	}
	return fmt.Sprintf("%s #%d", i.Type, i.Index)
}

// same treats every invalid item as equal regardless of its type tag.
func same(a, b Item) bool {
	return a == b || (!a.Valid() && !b.Valid())
}

// Mode is the edit mode, which decides the kind of entity being edited.
type Mode int

const (
	ModeVertices Mode = iota
	ModeLines
	ModeSectors
	ModeThings
	ModeVisual
)

func (m Mode) String() string {
	switch m {
	case ModeVertices:
		return "vertices"
	case ModeLines:
		return "lines"
	case ModeSectors:
		return "sectors"
	case ModeThings:
		return "things"
	case ModeVisual:
		return "visual"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ItemTypeFor returns the entity type edited in a 2D mode. Visual mode has
// no single type.
func ItemTypeFor(m Mode) (ItemType, bool) {
	switch m {
	case ModeVertices:
		return ItemVertex, true
	case ModeLines:
		return ItemLine, true
	case ModeSectors:
		return ItemSector, true
	case ModeThings:
		return ItemThing, true
	case ModeVisual:
		return 0, false
	}
	return 0, false
}

// ChangeSet records the net effect of one selection operation:
// true for items added, false for items removed.
type ChangeSet map[Item]bool

func must(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("edit: "+format, args...))
	}
}
