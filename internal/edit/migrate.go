package edit

import (
	"slices"

	"mapedit/internal/mapdata"
)

// Migrate replaces the selection with its equivalent in mode to. The
// hilight is left alone and the change set is cleared; callers refresh both.
//
// Pairs without a translation (including sectors to things) leave the
// selection empty. Migrating to the same mode keeps it.
func (s *Selection) Migrate(from, to Mode) {
	if from == to {
		s.changes = ChangeSet{}
		s.notify()
		return
	}
	var out []Item
	add := func(it Item) {
		if it.Valid() && !slices.Contains(out, it) {
			out = append(out, it)
		}
	}
	var m Map
	if s.ctx != nil {
		m = s.ctx.Map()
	}
	if m != nil {
		switch {
		case from == ModeVisual:
			for _, it := range s.items {
				switch {
				case to == ModeThings && it.Type == ItemThing:
					add(it)
				case to == ModeSectors && it.Type.IsFlat():
					add(Item{it.Index, ItemSector})
				case to == ModeLines && it.Type.IsWall():
					add(Item{m.SideLine(it.Index), ItemLine})
				}
			}
		case to == ModeVisual:
			for _, it := range s.items {
				switch it.Type {
				case ItemSector:
					add(Item{it.Index, ItemFloor})
					add(Item{it.Index, ItemCeiling})
				case ItemLine:
					front, back := m.LineSides(it.Index)
					for _, side := range []int{front, back} {
						if side < 0 {
							continue
						}
						needs := m.SideNeedsTexture(side)
						if needs&mapdata.TexUpper != 0 {
							add(Item{side, ItemWallTop})
						}
						if tex := m.SideMiddleTexture(side); needs&mapdata.TexMiddle != 0 || (tex != "" && tex != mapdata.NoTexture) {
							add(Item{side, ItemWallMiddle})
						}
						if needs&mapdata.TexLower != 0 {
							add(Item{side, ItemWallBottom})
						}
					}
				case ItemThing:
					add(it)
				}
			}
		case from == ModeSectors && to == ModeLines:
			for _, it := range s.items {
				if it.Type == ItemSector {
					for _, l := range m.SectorLines(it.Index) {
						add(Item{l, ItemLine})
					}
				}
			}
		case from == ModeSectors && to == ModeVertices:
			for _, it := range s.items {
				if it.Type == ItemSector {
					for _, v := range m.SectorVertices(it.Index) {
						add(Item{v, ItemVertex})
					}
				}
			}
		case from == ModeLines && to == ModeVertices:
			for _, it := range s.items {
				if it.Type == ItemLine {
					v1, v2 := m.LineVertices(it.Index)
					add(Item{v1, ItemVertex})
					add(Item{v2, ItemVertex})
				}
			}
		}
	}
	s.items = out
	s.changes = ChangeSet{}
	s.notify()
}
