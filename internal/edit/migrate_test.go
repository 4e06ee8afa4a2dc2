package edit

import (
	"testing"

	"mapedit/internal/geom"
)

func TestMigrateSectorToLinesToVertices(t *testing.T) {
	r := newRecorder(ModeSectors)
	r.importSquares(t, square(0, 0, 64), square(64, 0, 64))
	s := NewSelection(r)
	sector := r.m.SectorAt(geom.Pt(32, 32))
	s.Select(Item{sector, ItemSector}, true, true)

	s.Migrate(ModeSectors, ModeLines)
	if s.Len() != 4 {
		t.Fatalf("lines after migration = %v", s.Items())
	}
	s.Migrate(ModeLines, ModeVertices)

	var want []Item
	for _, v := range r.m.SectorVertices(sector) {
		want = append(want, Item{v, ItemVertex})
	}
	if !sameSet(s.Items(), want) {
		t.Fatalf("vertices = %v, want %v", s.Items(), want)
	}
	if len(s.Changes()) != 0 {
		t.Fatalf("migration should clear the change set")
	}
}

func TestMigrateSectorsToVertices(t *testing.T) {
	r := newRecorder(ModeSectors)
	r.importSquares(t, square(0, 0, 64), square(64, 0, 64))
	s := NewSelection(r)
	s.SelectAll()
	s.Migrate(ModeSectors, ModeVertices)
	if s.Len() != 6 {
		t.Fatalf("shared vertices should be deduplicated, got %d", s.Len())
	}
}

func TestMigrateUnsupportedPairsEmpty(t *testing.T) {
	cases := []struct {
		name     string
		from, to Mode
		item     Item
	}{
		{"sectors to things", ModeSectors, ModeThings, Item{0, ItemSector}},
		{"vertices to lines", ModeVertices, ModeLines, Item{0, ItemVertex}},
		{"lines to sectors", ModeLines, ModeSectors, Item{0, ItemLine}},
		{"visual to vertices", ModeVisual, ModeVertices, Item{0, ItemFloor}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := newRecorder(c.from)
			r.importSquares(t, square(0, 0, 64))
			s := NewSelection(r)
			s.Select(c.item, true, true)
			s.Migrate(c.from, c.to)
			if s.Len() != 0 {
				t.Fatalf("selection = %v, want empty", s.Items())
			}
		})
	}
}

func TestMigrateToVisual(t *testing.T) {
	r := newRecorder(ModeLines)
	r.importSquares(t, square(0, 0, 64), square(64, 0, 64))
	shared := r.m.NearestLine(geom.Pt(64, 32), 1)
	outer := r.m.NearestLine(geom.Pt(0, 32), 1)
	front, back := r.m.LineSides(shared)
	r.m.Sectors[r.m.Sides[front].Sector].Ceiling = 128
	r.m.Sectors[r.m.Sides[back].Sector].Ceiling = 96
	thing := r.m.AddThing(geom.Pt(10, 10), 1, 0)

	s := NewSelection(r)
	s.SelectItems([]Item{
		{shared, ItemLine},
		{outer, ItemLine},
		{0, ItemSector},
		{thing, ItemThing},
		{0, ItemVertex},
	}, true, true)
	s.Migrate(ModeLines, ModeVisual)

	outerFront, _ := r.m.LineSides(outer)
	want := []Item{
		{front, ItemWallTop},
		{outerFront, ItemWallMiddle},
		{0, ItemFloor},
		{0, ItemCeiling},
		{thing, ItemThing},
	}
	if !sameSet(s.Items(), want) {
		t.Fatalf("visual selection = %v, want %v", s.Items(), want)
	}
}

func TestMigrateFromVisual(t *testing.T) {
	r := newRecorder(ModeVisual)
	r.importSquares(t, square(0, 0, 64))
	line := r.m.NearestLine(geom.Pt(0, 32), 1)
	side, _ := r.m.LineSides(line)
	visual := []Item{
		{side, ItemWallTop},
		{side, ItemWallMiddle},
		{0, ItemFloor},
		{0, ItemCeiling},
		{0, ItemThing},
	}
	cases := []struct {
		to   Mode
		want []Item
	}{
		{ModeLines, []Item{{line, ItemLine}}},
		{ModeSectors, []Item{{0, ItemSector}}},
		{ModeThings, []Item{{0, ItemThing}}},
	}
	for _, c := range cases {
		t.Run(c.to.String(), func(t *testing.T) {
			s := NewSelection(r)
			s.SelectItems(visual, true, true)
			s.Migrate(ModeVisual, c.to)
			if !sameSet(s.Items(), c.want) {
				t.Fatalf("got %v, want %v", s.Items(), c.want)
			}
		})
	}
}

func TestMigrateSameModeKeepsSelection(t *testing.T) {
	r := newRecorder(ModeLines)
	r.importSquares(t, square(0, 0, 64))
	s := NewSelection(r)
	s.Select(Item{1, ItemLine}, true, true)
	notified := r.selChanged

	s.Migrate(ModeLines, ModeLines)
	if !sameSet(s.Items(), []Item{{1, ItemLine}}) {
		t.Fatalf("selection = %v, want line 1", s.Items())
	}
	if len(s.Changes()) != 0 {
		t.Fatalf("change set = %v, want cleared", s.Changes())
	}
	if r.selChanged != notified+1 {
		t.Fatalf("notifications = %d, want %d", r.selChanged, notified+1)
	}
}
