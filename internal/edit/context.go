package edit

import (
	"mapedit/internal/geom"
	"mapedit/internal/mapdata"
)

// Map is the level being edited. Absent results are -1 or empty slices.
type Map interface {
	NumVertices() int
	NumLines() int
	NumSides() int
	NumSectors() int
	NumThings() int

	VertexPos(v int) geom.Point
	LineVertices(l int) (v1, v2 int)
	LineSides(l int) (front, back int)
	LineHasFront(l int) bool
	SideLine(side int) int
	SideMiddleTexture(side int) string
	SectorBBox(s int) geom.BBox
	ThingPos(t int) geom.Point
	ThingType(t int) int

	NearestVertex(p geom.Point, maxDist float64) int
	NearestLine(p geom.Point, maxDist float64) int
	SectorAt(p geom.Point) int
	ThingsNear(p geom.Point) []int
	FirstCrossingVertex(a, b geom.Point) int
	CutPoints(a, b geom.Point) []geom.Point
	SectorLines(s int) []int
	SectorVertices(s int) []int
	SideNeedsTexture(side int) mapdata.TexPart

	CreateVertex(p geom.Point) int
	CreateLine(p1, p2 geom.Point) int
	FlipLine(l int)
	RebuildSectors(lines []int)
}

var _ Map = (*mapdata.Map)(nil)

type ShapeKind int

const (
	ShapeRectangle ShapeKind = iota
	ShapeEllipse
)

func (k ShapeKind) String() string {
	if k == ShapeEllipse {
		return "ellipse"
	}
	return "rectangle"
}

// ShapeOptions control UpdateShape.
type ShapeOptions struct {
	Kind      ShapeKind
	Sides     int
	LockRatio bool
	Centered  bool
}

// InputMode is the input state the editor routes events through.
type InputMode int

const (
	InputNormal InputMode = iota
	InputLineDraw
)

// Notifier receives fire-and-forget UI notifications.
type Notifier interface {
	SetInputMode(mode InputMode)
	ShowShapeDrawPanel(show bool)
	SetContextualHelp(lines []string)
	OpenObjectProperties(item Item)
	RecomputeTaggedItems()
	NotifySelectionChanged()
}

// Context is the editing session a Selection and LineDraw work within.
// Undo levels are not reentrant: every BeginUndo pairs with one EndUndo.
type Context interface {
	Notifier

	Mode() Mode
	Map() Map
	GridSnap() bool
	SnapToGrid(p geom.Point) geom.Point
	Shape() ShapeOptions
	ThingRadius(thingType int) float64

	BeginUndo(name string)
	EndUndo(success bool)
	ResetLastUndoMarker()
}
