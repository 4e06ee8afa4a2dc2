package tui

import (
	"math"
	"slices"
	"strings"

	"mapedit/internal/edit"
	"mapedit/internal/geom"
)

// viewport maps between map units (y up) and braille micro-pixels (y down).
// A micro-pixel is roughly square on a terminal, so one scale serves both axes.
type viewport struct {
	center geom.Point
	scale  float64 // micro-pixels per map unit
	w, h   int     // in cells
}

const (
	minScale = 0.005
	maxScale = 16
)

func (v viewport) toMicro(p geom.Point) (int, int) {
	mx := (p.X-v.center.X)*v.scale + float64(v.w)
	my := -(p.Y-v.center.Y)*v.scale + float64(v.h*2)
	return int(math.Floor(mx)), int(math.Floor(my))
}

// cellToMap returns the map position at the centre of a cell.
func (v viewport) cellToMap(cx, cy int) geom.Point {
	mx := float64(cx*2+1) - float64(v.w)
	my := float64(cy*4+2) - float64(v.h*2)
	return geom.Point{X: v.center.X + mx/v.scale, Y: v.center.Y - my/v.scale}
}

// pickScale is the distance scale handed to UpdateHilight; the pick radius
// then covers eight micro-pixels at any zoom.
func (v viewport) pickScale() float64 { return v.scale * 4 }

// fit centres b in the viewport with a small margin.
func (v *viewport) fit(b geom.BBox) {
	v.center = geom.Point{X: (b.MinX + b.MaxX) / 2, Y: (b.MinY + b.MaxY) / 2}
	bw, bh := b.MaxX-b.MinX, b.MaxY-b.MinY
	if bw <= 0 && bh <= 0 {
		return
	}
	sx, sy := math.Inf(1), math.Inf(1)
	if bw > 0 {
		sx = float64(v.w*2) / bw
	}
	if bh > 0 {
		sy = float64(v.h*4) / bh
	}
	v.zoomTo(math.Min(sx, sy) * 0.9)
}

func (v *viewport) zoomTo(scale float64) {
	v.scale = math.Max(minScale, math.Min(maxScale, scale))
}

// pan moves the view by whole cells.
func (v *viewport) pan(dx, dy int) {
	v.center.X += float64(dx*2) / v.scale
	v.center.Y -= float64(dy*4) / v.scale
}

// renderMap draws the map into a w x h cell canvas.
func (m Model) renderMap() string {
	vp := m.vp
	if vp.w <= 0 || vp.h <= 0 {
		return ""
	}
	s := m.s
	br := newBrailleBuf(vp.w, vp.h)

	m.drawGrid(br)

	sel := s.sel
	hl := sel.Hilight()
	marked := func(it edit.Item) ink {
		switch {
		case hl == it:
			return inkHilight
		case sel.IsSelected(it):
			return inkSelected
		case slices.Contains(s.tagged, it):
			return inkTagged
		}
		return inkNone
	}

	// sector marks are carried by their lines
	sectorInk := map[int]ink{}
	if s.mode == edit.ModeSectors {
		for i := 0; i < s.m.NumSectors(); i++ {
			if k := marked(edit.Item{Index: i, Type: edit.ItemSector}); k != inkNone {
				sectorInk[i] = k
			}
		}
	}
	if s.mode == edit.ModeVisual {
		for _, it := range sel.Items() {
			if it.Type.IsFlat() {
				sectorInk[it.Index] = inkSelected
			}
		}
	}

	for i, ln := range s.m.Lines {
		k := inkOneSided
		if ln.Front >= 0 && ln.Back >= 0 {
			k = inkTwoSided
		}
		if s.mode == edit.ModeLines {
			k = max(k, marked(edit.Item{Index: i, Type: edit.ItemLine}))
		} else if slices.Contains(s.tagged, edit.Item{Index: i, Type: edit.ItemLine}) {
			k = inkTagged
		}
		for _, side := range []int{ln.Front, ln.Back} {
			if side < 0 {
				continue
			}
			if sk, ok := sectorInk[s.m.Sides[side].Sector]; ok {
				k = max(k, sk)
			}
			if s.mode == edit.ModeVisual && m.visualWallSelected(side) {
				k = max(k, inkSelected)
			}
		}
		x0, y0 := vp.toMicro(s.m.Vertices[ln.V1].Pos)
		x1, y1 := vp.toMicro(s.m.Vertices[ln.V2].Pos)
		br.drawLineMicro(x0, y0, x1, y1, k)
	}

	if s.mode == edit.ModeVertices {
		for i, v := range s.m.Vertices {
			x, y := vp.toMicro(v.Pos)
			br.dot(x, y, max(inkOneSided, marked(edit.Item{Index: i, Type: edit.ItemVertex})))
		}
	}

	for i, t := range s.m.Things {
		k := inkThing
		if s.mode == edit.ModeThings {
			k = max(k, marked(edit.Item{Index: i, Type: edit.ItemThing}))
		}
		x, y := vp.toMicro(t.Pos)
		r := int(math.Max(1, s.ThingRadius(t.Type)*vp.scale))
		if r <= 2 {
			br.dot(x, y, k)
			continue
		}
		br.rect(x-r, y-r, x+r, y+r, k)
	}

	m.drawTool(br)

	if m.dragging {
		x0, y0 := vp.toMicro(m.dragFrom)
		x1, y1 := vp.toMicro(m.cursor)
		br.rect(x0, y0, x1, y1, inkHilight)
	}

	return strings.Join(br.toLines(), "\n")
}

// drawGrid marks grid intersections when they are far enough apart to read.
func (m Model) drawGrid(br *brailleBuf) {
	vp := m.vp
	step := m.s.gridSize
	if step <= 0 || step*vp.scale < 8 {
		return
	}
	tl := vp.cellToMap(0, 0)
	bottomRight := vp.cellToMap(vp.w-1, vp.h-1)
	for x := math.Floor(tl.X/step) * step; x <= bottomRight.X+step; x += step {
		for y := math.Floor(bottomRight.Y/step) * step; y <= tl.Y+step; y += step {
			mx, my := vp.toMicro(geom.Point{X: x, Y: y})
			br.setPixel(mx, my, inkGrid)
		}
	}
}

// drawTool draws the points of the line being drawn plus the rubber band to
// the cursor.
func (m Model) drawTool(br *brailleBuf) {
	d := m.s.draw
	if !d.Active() {
		return
	}
	vp := m.vp
	pts := d.Points()
	if d.State() == edit.DrawLine && len(pts) > 0 {
		pts = append(pts, m.drawCursor())
	}
	for i := 0; i+1 < len(pts); i++ {
		x0, y0 := vp.toMicro(pts[i])
		x1, y1 := vp.toMicro(pts[i+1])
		br.drawLineMicro(x0, y0, x1, y1, inkDraw)
	}
	for _, p := range d.Points() {
		x, y := vp.toMicro(p)
		br.dot(x, y, inkDraw)
	}
	if d.State() == edit.DrawShapeOrigin {
		x, y := vp.toMicro(m.drawCursor())
		br.dot(x, y, inkDraw)
	}
}

// drawCursor is where the next point would land.
func (m Model) drawCursor() geom.Point {
	if m.s.GridSnap() {
		return m.s.SnapToGrid(m.cursor)
	}
	return m.cursor
}

func (m Model) visualWallSelected(side int) bool {
	for _, it := range m.s.sel.Items() {
		if it.Index == side && it.Type.IsWall() {
			return true
		}
	}
	return false
}
