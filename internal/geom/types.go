package geom

import "math"

// Epsilon is the tolerance used for "exactly on" tests in map units.
const Epsilon = 0.0001

// Point is a position in map units.
type Point struct {
	X float64
	Y float64
}

func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Eq reports whether p and q are the same map position.
func (p Point) Eq(q Point) bool {
	return math.Abs(p.X-q.X) < Epsilon && math.Abs(p.Y-q.Y) < Epsilon
}

func Dist(a, b Point) float64 { return math.Hypot(a.X-b.X, a.Y-b.Y) }

type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// RectFrom returns the normalized box spanned by two corners.
func RectFrom(a, b Point) BBox {
	return BBox{
		MinX: math.Min(a.X, b.X),
		MinY: math.Min(a.Y, b.Y),
		MaxX: math.Max(a.X, b.X),
		MaxY: math.Max(a.Y, b.Y),
	}
}

// Extend grows the box to include p, or resets it to p when first is set.
func (b *BBox) Extend(p Point, first bool) {
	if first {
		*b = BBox{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
		return
	}
	if p.X < b.MinX {
		b.MinX = p.X
	}
	if p.Y < b.MinY {
		b.MinY = p.Y
	}
	if p.X > b.MaxX {
		b.MaxX = p.X
	}
	if p.Y > b.MaxY {
		b.MaxY = p.Y
	}
}

func (b BBox) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// ContainsBox reports whether o lies fully inside b.
func (b BBox) ContainsBox(o BBox) bool {
	return o.MinX >= b.MinX && o.MaxX <= b.MaxX && o.MinY >= b.MinY && o.MaxY <= b.MaxY
}

func (b BBox) Valid() bool { return b.MaxX > b.MinX && b.MaxY > b.MinY }

// Data is a minimal geometry container for importing outlines.
type Data struct {
	Points   []Point
	Lines    [][]Point
	Polygons [][][]Point // polygons with rings (first outer, following holes)
	BBox     BBox

	bboxSet bool
}

func (d *Data) empty() bool {
	return len(d.Points)+len(d.Lines)+len(d.Polygons) == 0
}
