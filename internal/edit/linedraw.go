package edit

import (
	"math"
	"slices"

	"mapedit/internal/geom"
)

// DrawState is the step the line draw tool is at.
type DrawState int

const (
	DrawLine DrawState = iota
	DrawShapeOrigin
	DrawShapeEdge
)

func (s DrawState) String() string {
	switch s {
	case DrawShapeOrigin:
		return "shape origin"
	case DrawShapeEdge:
		return "shape edge"
	}
	return "line"
}

var (
	lineDrawHelp = []string{
		"Line Drawing",
		"enter: accept",
		"esc: cancel",
		"left click: draw point",
		"backspace: undo previous point",
		"shift+click: snap to nearest vertex",
	}
	shapeDrawHelp = []string{
		"Shape Drawing",
		"enter: accept",
		"esc: cancel",
		"left click: draw point",
		"backspace: undo previous point",
	}
)

// LineDraw collects points for a new chain of lines or a shape, and turns
// them into map geometry on End.
//
// End clears the points but not the state; call Begin before drawing again.
type LineDraw struct {
	ctx    Context
	points []geom.Point
	origin geom.Point
	state  DrawState
	active bool
}

func NewLineDraw(ctx Context) *LineDraw {
	return &LineDraw{ctx: ctx}
}

func (d *LineDraw) State() DrawState         { return d.state }
func (d *LineDraw) SetState(state DrawState) { d.state = state }
func (d *LineDraw) Origin() geom.Point       { return d.origin }
func (d *LineDraw) NumPoints() int           { return len(d.points) }
func (d *LineDraw) Active() bool             { return d.active }

// Points returns a copy of the collected points.
func (d *LineDraw) Points() []geom.Point { return slices.Clone(d.points) }

// Begin starts drawing lines, or a shape when isShape is set.
func (d *LineDraw) Begin(isShape bool) {
	d.points = nil
	d.active = true
	d.state = DrawLine
	if isShape {
		d.state = DrawShapeOrigin
	}
	d.ctx.SetInputMode(InputLineDraw)
	if isShape {
		d.ctx.ShowShapeDrawPanel(true)
		d.ctx.SetContextualHelp(shapeDrawHelp)
	} else {
		d.ctx.SetContextualHelp(lineDrawHelp)
	}
}

// snap moves p onto the nearest vertex, however far, or else onto the grid.
func (d *LineDraw) snap(p geom.Point, nearest bool) geom.Point {
	if nearest {
		m := d.ctx.Map()
		if v := m.NearestVertex(p, math.Inf(1)); v >= 0 {
			return m.VertexPos(v)
		}
		return p
	}
	if d.ctx.GridSnap() {
		return d.ctx.SnapToGrid(p)
	}
	return p
}

// AddPoint appends a point. Clicking the last point again, or the first point
// once there is more than one, finishes the drawing; it then reports true.
func (d *LineDraw) AddPoint(point geom.Point, snapToNearestVertex bool) bool {
	p := d.snap(point, snapToNearestVertex)
	n := len(d.points)
	if n > 0 && p.Eq(d.points[n-1]) {
		d.End(true)
		return true
	}
	if n > 1 && p.Eq(d.points[0]) {
		d.points = append(d.points, p)
		d.End(true)
		return true
	}
	d.points = append(d.points, p)
	return false
}

// RemovePoint drops the last point, or cancels drawing when there is none.
func (d *LineDraw) RemovePoint() {
	if len(d.points) == 0 {
		d.End(false)
		return
	}
	d.points = d.points[:len(d.points)-1]
}

func (d *LineDraw) SetShapeOrigin(point geom.Point, snapToNearestVertex bool) {
	d.origin = d.snap(point, snapToNearestVertex)
}

// UpdateShape replaces the points with the outline of the current shape
// spanning the origin and point.
func (d *LineDraw) UpdateShape(point geom.Point) {
	d.points = d.points[:0]
	if d.ctx.GridSnap() {
		point = d.ctx.SnapToGrid(point)
	}
	opts := d.ctx.Shape()
	origin := d.origin
	width := math.Abs(point.X - origin.X)
	height := math.Abs(point.Y - origin.Y)
	if opts.LockRatio {
		if width < height {
			if origin.X < point.X {
				point.X = origin.X + height
			} else {
				point.X = origin.X - height
			}
		}
		if height < width {
			if origin.Y < point.Y {
				point.Y = origin.Y + width
			} else {
				point.Y = origin.Y - width
			}
		}
	}
	if opts.Centered {
		origin.X -= point.X - origin.X
		origin.Y -= point.Y - origin.Y
	}
	tl := geom.Point{X: math.Min(origin.X, point.X), Y: math.Min(origin.Y, point.Y)}
	br := geom.Point{X: math.Max(origin.X, point.X), Y: math.Max(origin.Y, point.Y)}

	switch opts.Kind {
	case ShapeRectangle:
		d.points = append(d.points,
			tl,
			geom.Point{X: tl.X, Y: br.Y},
			br,
			geom.Point{X: br.X, Y: tl.Y},
			tl,
		)
	case ShapeEllipse:
		sides := max(opts.Sides, 3)
		mid := geom.Point{X: tl.X + (br.X-tl.X)*0.5, Y: tl.Y + (br.Y-tl.Y)*0.5}
		rx, ry := (br.X-tl.X)*0.5, (br.Y-tl.Y)*0.5
		rot := 0.0
		for a := 0; a < sides; a++ {
			d.points = append(d.points, geom.Point{
				X: math.Round(mid.X + math.Sin(rot)*rx),
				Y: math.Round(mid.Y - math.Cos(rot)*ry),
			})
			rot -= 2 * math.Pi / float64(sides)
		}
		d.points = append(d.points, d.points[0])
	}
}

// End finishes drawing. With apply and at least two points the drawing is
// turned into lines inside a "Line Draw" undo level.
func (d *LineDraw) End(apply bool) {
	must(d.active, "LineDraw.End without Begin")
	if apply && len(d.points) > 1 {
		d.commit()
	}
	d.points = nil
	d.active = false
	d.ctx.SetContextualHelp(nil)
	d.ctx.ShowShapeDrawPanel(false)
	d.ctx.SetInputMode(InputNormal)
}

func (d *LineDraw) commit() {
	m := d.ctx.Map()
	d.ctx.BeginUndo("Line Draw")

	// Existing vertices on a drawn segment become points of their own.
	pts := d.points
	for a := 0; a+1 < len(pts); a++ {
		for v := m.FirstCrossingVertex(pts[a], pts[a+1]); v >= 0; v = m.FirstCrossingVertex(pts[a], pts[a+1]) {
			pts = slices.Insert(pts, a+1, m.VertexPos(v))
			a++
		}
	}
	d.points = pts

	// Lines split by the new vertices count as created too.
	before := m.NumLines()
	for _, p := range pts {
		m.CreateVertex(p)
	}

	var created []int
	addLine := func(l int) {
		if l >= 0 && !slices.Contains(created, l) {
			created = append(created, l)
		}
	}
	for a := 0; a+1 < len(pts); a++ {
		start := pts[a]
		for _, cut := range m.CutPoints(pts[a], pts[a+1]) {
			addLine(m.CreateLine(start, cut))
			start = cut
		}
		addLine(m.CreateLine(start, pts[a+1]))
	}
	for l := before; l < m.NumLines(); l++ {
		addLine(l)
	}

	m.RebuildSectors(created)
	var flipped []int
	for _, l := range created {
		if !m.LineHasFront(l) {
			m.FlipLine(l)
			flipped = append(flipped, l)
		}
	}
	if len(flipped) > 0 {
		m.RebuildSectors(flipped)
	}

	d.ctx.EndUndo(true)
}
