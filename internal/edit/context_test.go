package edit

import (
	"testing"

	"mapedit/internal/geom"
	"mapedit/internal/mapdata"
)

// recorder is an in-memory Context that records every notification.
type recorder struct {
	mode   Mode
	m      *mapdata.Map
	grid   float64
	snap   bool
	shape  ShapeOptions
	radius map[int]float64

	undoOpen     bool
	undoNames    []string
	undoResults  []bool
	markerResets int

	input      InputMode
	shapePanel bool
	help       []string
	props      []Item
	tagged     int
	selChanged int
}

func newRecorder(mode Mode) *recorder {
	return &recorder{
		mode:   mode,
		m:      mapdata.New(mapdata.DefaultProps()),
		grid:   16,
		shape:  ShapeOptions{Kind: ShapeRectangle, Sides: 16},
		radius: map[int]float64{},
	}
}

func (r *recorder) Mode() Mode { return r.mode }

func (r *recorder) Map() Map {
	if r.m == nil {
		return nil
	}
	return r.m
}

func (r *recorder) GridSnap() bool                     { return r.snap }
func (r *recorder) SnapToGrid(p geom.Point) geom.Point { return geom.SnapToGrid(p, r.grid) }
func (r *recorder) Shape() ShapeOptions                { return r.shape }

func (r *recorder) ThingRadius(thingType int) float64 {
	if rad, ok := r.radius[thingType]; ok {
		return rad
	}
	return 20
}

func (r *recorder) BeginUndo(name string) {
	if r.undoOpen {
		panic("BeginUndo while open")
	}
	r.undoOpen = true
	r.undoNames = append(r.undoNames, name)
}

func (r *recorder) EndUndo(success bool) {
	if !r.undoOpen {
		panic("EndUndo without BeginUndo")
	}
	r.undoOpen = false
	r.undoResults = append(r.undoResults, success)
}

func (r *recorder) ResetLastUndoMarker() { r.markerResets++ }

func (r *recorder) SetInputMode(mode InputMode)      { r.input = mode }
func (r *recorder) ShowShapeDrawPanel(show bool)     { r.shapePanel = show }
func (r *recorder) SetContextualHelp(lines []string) { r.help = lines }
func (r *recorder) OpenObjectProperties(item Item)   { r.props = append(r.props, item) }
func (r *recorder) RecomputeTaggedItems()            { r.tagged++ }
func (r *recorder) NotifySelectionChanged()          { r.selChanged++ }

func square(x0, y0, size float64) [][]geom.Point {
	return [][]geom.Point{{
		{X: x0, Y: y0},
		{X: x0 + size, Y: y0},
		{X: x0 + size, Y: y0 + size},
		{X: x0, Y: y0 + size},
	}}
}

func (r *recorder) importSquares(t *testing.T, squares ...[][]geom.Point) {
	t.Helper()
	r.m.ImportOutlines(geom.Data{Polygons: squares}, 1)
	if r.m.NumSectors() != len(squares) {
		t.Fatalf("imported %d sectors, want %d", r.m.NumSectors(), len(squares))
	}
}

func sameSet(a, b []Item) bool {
	if len(a) != len(b) {
		return false
	}
	seen := map[Item]int{}
	for _, it := range a {
		seen[it]++
	}
	for _, it := range b {
		if seen[it] == 0 {
			return false
		}
		seen[it]--
	}
	return true
}
