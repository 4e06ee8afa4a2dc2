package edit

import (
	"slices"
	"testing"

	"mapedit/internal/geom"
	"mapedit/internal/mapdata"
)

func TestBeginSetsStateAndHelp(t *testing.T) {
	r := newRecorder(ModeLines)
	d := NewLineDraw(r)

	d.Begin(false)
	if d.State() != DrawLine || r.input != InputLineDraw || r.shapePanel {
		t.Fatalf("line begin: state=%v input=%v panel=%v", d.State(), r.input, r.shapePanel)
	}
	if !slices.Contains(r.help, "shift+click: snap to nearest vertex") {
		t.Fatalf("line help lacks the snap hint: %v", r.help)
	}
	d.End(false)

	d.Begin(true)
	if d.State() != DrawShapeOrigin || !r.shapePanel {
		t.Fatalf("shape begin: state=%v panel=%v", d.State(), r.shapePanel)
	}
	if slices.Contains(r.help, "shift+click: snap to nearest vertex") {
		t.Fatalf("shape help should not offer snapping: %v", r.help)
	}
}

func TestAddPointClosesOnFirstPoint(t *testing.T) {
	r := newRecorder(ModeLines)
	d := NewLineDraw(r)
	d.Begin(false)

	p0, p1, p2 := geom.Pt(0, 0), geom.Pt(64, 0), geom.Pt(0, 64)
	for i, p := range []geom.Point{p0, p1, p2} {
		if d.AddPoint(p, false) {
			t.Fatalf("point %d finished the drawing", i)
		}
	}
	if !d.AddPoint(p0, false) {
		t.Fatalf("re-clicking the first point should finish")
	}
	if d.NumPoints() != 0 || d.Active() {
		t.Fatalf("buffer not cleared: %v", d.Points())
	}
	if r.m.NumLines() != 3 || r.m.NumSectors() != 1 {
		t.Fatalf("lines=%d sectors=%d, want a closed triangle", r.m.NumLines(), r.m.NumSectors())
	}
	for l := 0; l < r.m.NumLines(); l++ {
		if !r.m.LineHasFront(l) {
			t.Fatalf("line %d has no front side", l)
		}
	}
	if !slices.Equal(r.undoNames, []string{"Line Draw"}) || !slices.Equal(r.undoResults, []bool{true}) {
		t.Fatalf("undo levels %v %v", r.undoNames, r.undoResults)
	}
	if r.help != nil || r.shapePanel || r.input != InputNormal {
		t.Fatalf("end did not reset the UI: help=%v panel=%v input=%v", r.help, r.shapePanel, r.input)
	}
}

func TestAddPointTwoPointLoop(t *testing.T) {
	r := newRecorder(ModeLines)
	d := NewLineDraw(r)
	d.Begin(false)
	p0, p1 := geom.Pt(0, 0), geom.Pt(32, 0)
	d.AddPoint(p0, false)
	d.AddPoint(p1, false)
	if !d.AddPoint(p0, false) {
		t.Fatalf("third click should finish")
	}
	if d.NumPoints() != 0 {
		t.Fatalf("buffer not cleared")
	}
	if r.m.NumLines() != 1 {
		t.Fatalf("p0->p1->p0 should leave one line, got %d", r.m.NumLines())
	}
}

func TestAddPointRepeatLastFinishes(t *testing.T) {
	r := newRecorder(ModeLines)
	d := NewLineDraw(r)
	d.Begin(false)
	d.AddPoint(geom.Pt(0, 0), false)
	d.AddPoint(geom.Pt(32, 0), false)
	d.AddPoint(geom.Pt(32, 32), false)
	if !d.AddPoint(geom.Pt(32, 32), false) {
		t.Fatalf("repeating the last point should finish")
	}
	if r.m.NumLines() != 2 || r.m.NumSectors() != 0 {
		t.Fatalf("lines=%d sectors=%d", r.m.NumLines(), r.m.NumSectors())
	}
}

func TestAddPointSnapping(t *testing.T) {
	r := newRecorder(ModeLines)
	r.snap = true
	r.m.CreateVertex(geom.Pt(1000, 1000))
	d := NewLineDraw(r)
	d.Begin(false)

	d.AddPoint(geom.Pt(7, 9), false)
	d.AddPoint(geom.Pt(5, 5), true)
	got := d.Points()
	want := []geom.Point{geom.Pt(0, 16), geom.Pt(1000, 1000)}
	if !slices.Equal(got, want) {
		t.Fatalf("points = %v, want %v", got, want)
	}
}

func TestSnapNearestWithNoVertices(t *testing.T) {
	r := newRecorder(ModeLines)
	r.snap = true
	d := NewLineDraw(r)
	d.Begin(false)
	d.AddPoint(geom.Pt(7, 9), true)
	if got := d.Points(); !slices.Equal(got, []geom.Point{geom.Pt(7, 9)}) {
		t.Fatalf("points = %v, want the raw point", got)
	}
}

func TestRemovePoint(t *testing.T) {
	r := newRecorder(ModeLines)
	d := NewLineDraw(r)
	d.Begin(true)
	d.SetState(DrawShapeEdge)
	d.AddPoint(geom.Pt(0, 0), false)
	d.RemovePoint()
	if d.NumPoints() != 0 || !d.Active() {
		t.Fatalf("pop: points=%d active=%v", d.NumPoints(), d.Active())
	}
	d.RemovePoint()
	if d.Active() || r.shapePanel || len(r.undoNames) != 0 {
		t.Fatalf("cancel: active=%v panel=%v undo=%v", d.Active(), r.shapePanel, r.undoNames)
	}
	if d.State() != DrawShapeEdge {
		t.Fatalf("End should leave the state alone, got %v", d.State())
	}
}

func TestEndWithoutBeginPanics(t *testing.T) {
	d := NewLineDraw(newRecorder(ModeLines))
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	d.End(true)
}

func TestUpdateShape(t *testing.T) {
	cases := []struct {
		name     string
		opts     ShapeOptions
		origin   geom.Point
		point    geom.Point
		wantTL   geom.Point
		wantBR   geom.Point
		wantSize int
	}{
		{"rectangle", ShapeOptions{Kind: ShapeRectangle}, geom.Pt(0, 0), geom.Pt(10, 4), geom.Pt(0, 0), geom.Pt(10, 4), 5},
		{"centered", ShapeOptions{Kind: ShapeRectangle, Centered: true}, geom.Pt(0, 0), geom.Pt(10, 4), geom.Pt(-10, -4), geom.Pt(10, 4), 5},
		{"lock ratio", ShapeOptions{Kind: ShapeRectangle, LockRatio: true}, geom.Pt(0, 0), geom.Pt(10, 4), geom.Pt(0, 0), geom.Pt(10, 10), 5},
		{"lock ratio backwards", ShapeOptions{Kind: ShapeRectangle, LockRatio: true}, geom.Pt(0, 0), geom.Pt(-4, -10), geom.Pt(-10, -10), geom.Pt(0, 0), 5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := newRecorder(ModeLines)
			r.shape = c.opts
			d := NewLineDraw(r)
			d.Begin(true)
			d.SetShapeOrigin(c.origin, false)
			d.SetState(DrawShapeEdge)
			d.UpdateShape(c.point)
			pts := d.Points()
			if len(pts) != c.wantSize {
				t.Fatalf("points = %d, want %d", len(pts), c.wantSize)
			}
			if pts[0] != c.wantTL || pts[2] != c.wantBR || pts[4] != pts[0] {
				t.Fatalf("rectangle = %v, want tl=%v br=%v", pts, c.wantTL, c.wantBR)
			}
			if pts[1] != geom.Pt(c.wantTL.X, c.wantBR.Y) || pts[3] != geom.Pt(c.wantBR.X, c.wantTL.Y) {
				t.Fatalf("rectangle corners = %v", pts)
			}
		})
	}
}

func TestUpdateShapeReplacesPoints(t *testing.T) {
	r := newRecorder(ModeLines)
	d := NewLineDraw(r)
	d.Begin(true)
	d.SetShapeOrigin(geom.Pt(0, 0), false)
	d.UpdateShape(geom.Pt(10, 10))
	d.UpdateShape(geom.Pt(20, 20))
	if d.NumPoints() != 5 {
		t.Fatalf("points = %d, want 5", d.NumPoints())
	}
}

func TestUpdateShapeEllipse(t *testing.T) {
	r := newRecorder(ModeLines)
	r.shape = ShapeOptions{Kind: ShapeEllipse, Sides: 16}
	d := NewLineDraw(r)
	d.Begin(true)
	d.SetShapeOrigin(geom.Pt(0, 0), false)
	d.UpdateShape(geom.Pt(64, 32))

	pts := d.Points()
	if len(pts) != 17 {
		t.Fatalf("points = %d, want 17", len(pts))
	}
	if pts[16] != pts[0] {
		t.Fatalf("ellipse not closed: first %v last %v", pts[0], pts[16])
	}
	if pts[0] != geom.Pt(32, 0) {
		t.Fatalf("first ellipse point = %v, want (32,0)", pts[0])
	}
	for i, p := range pts {
		if p.X != float64(int(p.X)) || p.Y != float64(int(p.Y)) {
			t.Fatalf("point %d not rounded: %v", i, p)
		}
	}
	if !slices.Contains(pts, geom.Pt(32, 32)) {
		t.Fatalf("ellipse should reach the far side: %v", pts)
	}
}

func TestShapeCommitMakesSector(t *testing.T) {
	r := newRecorder(ModeLines)
	d := NewLineDraw(r)
	d.Begin(true)
	d.SetShapeOrigin(geom.Pt(0, 0), false)
	d.SetState(DrawShapeEdge)
	d.UpdateShape(geom.Pt(64, 64))
	d.End(true)
	if r.m.NumLines() != 4 || r.m.NumSectors() != 1 {
		t.Fatalf("lines=%d sectors=%d", r.m.NumLines(), r.m.NumSectors())
	}
}

func TestEndSplitsAtExistingVertices(t *testing.T) {
	r := newRecorder(ModeLines)
	r.m.CreateVertex(geom.Pt(32, 0))
	r.m.CreateVertex(geom.Pt(16, 0))
	d := NewLineDraw(r)
	d.Begin(false)
	d.AddPoint(geom.Pt(0, 0), false)
	d.AddPoint(geom.Pt(64, 0), false)
	d.End(true)
	if r.m.NumLines() != 3 {
		t.Fatalf("lines = %d, want 3 (split at both vertices)", r.m.NumLines())
	}
	if r.m.NumVertices() != 4 {
		t.Fatalf("vertices = %d, want 4", r.m.NumVertices())
	}
}

func TestEndCutsExistingLines(t *testing.T) {
	r := newRecorder(ModeLines)
	r.m.CreateLine(geom.Pt(32, -32), geom.Pt(32, 32))
	r.m.CreateLine(geom.Pt(48, -32), geom.Pt(48, 32))
	d := NewLineDraw(r)
	d.Begin(false)
	d.AddPoint(geom.Pt(0, 0), false)
	d.AddPoint(geom.Pt(64, 0), false)
	d.End(true)
	// two crossed lines split in half, plus the drawn line in three pieces
	if r.m.NumLines() != 7 {
		t.Fatalf("lines = %d, want 7", r.m.NumLines())
	}
	for _, p := range []geom.Point{geom.Pt(32, 0), geom.Pt(48, 0)} {
		if v := r.m.NearestVertex(p, 0.01); v < 0 {
			t.Fatalf("no vertex at cut point %v", p)
		}
	}
}

func TestDrawAcrossSectorSplitsIt(t *testing.T) {
	r := newRecorder(ModeLines)
	r.importSquares(t, square(0, 0, 64))
	d := NewLineDraw(r)
	d.Begin(false)
	d.AddPoint(geom.Pt(0, 32), false)
	d.AddPoint(geom.Pt(64, 32), false)
	d.End(true)
	if r.m.NumSectors() != 2 {
		t.Fatalf("sectors = %d, want 2", r.m.NumSectors())
	}
}

func TestEndSelfCrossingFacesInward(t *testing.T) {
	r := newRecorder(ModeLines)
	d := NewLineDraw(r)
	d.Begin(false)
	// the last segment cuts the first one at (32,0), closing a square
	for _, p := range []geom.Point{geom.Pt(0, 0), geom.Pt(64, 0), geom.Pt(64, 64), geom.Pt(32, 64), geom.Pt(32, -32)} {
		d.AddPoint(p, false)
	}
	d.End(true)

	if r.m.NumSectors() != 1 {
		t.Fatalf("sectors = %d, want 1", r.m.NumSectors())
	}
	walls := 0
	for l := 0; l < r.m.NumLines(); l++ {
		front, back := r.m.LineSides(l)
		if (front < 0) == (back < 0) {
			continue
		}
		walls++
		a, b := r.m.LineEnds(l)
		if front < 0 {
			t.Fatalf("line %d %v->%v has only a back side", l, a, b)
		}
		if tex := r.m.SideMiddleTexture(front); tex == "" || tex == mapdata.NoTexture {
			t.Fatalf("line %d %v->%v has no middle texture", l, a, b)
		}
	}
	if walls != 4 {
		t.Fatalf("one-sided lines = %d, want 4", walls)
	}
}

func TestUpdateShapeEllipseRoundsHalvesAwayFromZero(t *testing.T) {
	r := newRecorder(ModeLines)
	r.shape = ShapeOptions{Kind: ShapeEllipse, Sides: 16}
	d := NewLineDraw(r)
	d.Begin(true)
	d.SetShapeOrigin(geom.Pt(0, 0), false)
	d.UpdateShape(geom.Pt(-5, -8))
	// the box centre is (-2.5,-4)
	if pts := d.Points(); pts[0] != geom.Pt(-3, -8) {
		t.Fatalf("first ellipse point = %v, want (-3,-8)", pts[0])
	}
}
