package mapdata

import (
	"math"

	"mapedit/internal/geom"
)

// NearestVertex returns the closest vertex within maxDist of p, or -1.
// Pass math.Inf(1) for no limit.
func (m *Map) NearestVertex(p geom.Point, maxDist float64) int {
	best, bestD := -1, math.Inf(1)
	for i, v := range m.Vertices {
		if d := geom.Dist(p, v.Pos); d < bestD {
			best, bestD = i, d
		}
	}
	if best < 0 || bestD > maxDist {
		return -1
	}
	return best
}

// NearestLine returns the closest line within maxDist of p, or -1.
func (m *Map) NearestLine(p geom.Point, maxDist float64) int {
	best, bestD := -1, math.Inf(1)
	for i := range m.Lines {
		a, b := m.LineEnds(i)
		if d := geom.DistToSegment(p, a, b); d < bestD {
			best, bestD = i, d
		}
	}
	if best < 0 || bestD > maxDist {
		return -1
	}
	return best
}

// SectorAt returns the sector containing p, or -1.
func (m *Map) SectorAt(p geom.Point) int {
	for s := range m.Sectors {
		if m.sectorContains(s, p) {
			return s
		}
	}
	return -1
}

// sectorContains is an even-odd test over the lines bounding s.
func (m *Map) sectorContains(s int, p geom.Point) bool {
	inside := false
	for i := range m.Lines {
		front, back := m.sideSector(i, true), m.sideSector(i, false)
		if (front == s) == (back == s) {
			continue
		}
		a, b := m.LineEnds(i)
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

// ThingsNear returns every thing sharing the minimum distance to p, in index
// order. Stacked things are all returned.
func (m *Map) ThingsNear(p geom.Point) []int {
	bestD := math.Inf(1)
	for _, t := range m.Things {
		bestD = math.Min(bestD, geom.Dist(p, t.Pos))
	}
	var out []int
	for i, t := range m.Things {
		if geom.Dist(p, t.Pos)-bestD < geom.Epsilon {
			out = append(out, i)
		}
	}
	return out
}

// FirstCrossingVertex returns the vertex lying on the interior of a-b that is
// closest to a, or -1.
func (m *Map) FirstCrossingVertex(a, b geom.Point) int {
	best, bestD := -1, math.Inf(1)
	for i, v := range m.Vertices {
		if !geom.OnSegmentInterior(v.Pos, a, b) {
			continue
		}
		if d := geom.Dist(a, v.Pos); d < bestD {
			best, bestD = i, d
		}
	}
	return best
}

// CutPoints returns where a-b crosses existing lines, ordered from a and
// excluding a and b themselves.
func (m *Map) CutPoints(a, b geom.Point) []geom.Point {
	var out []geom.Point
	for i := range m.Lines {
		la, lb := m.LineEnds(i)
		p, ok := geom.Intersect(a, b, la, lb)
		if !ok || p.Eq(a) || p.Eq(b) {
			continue
		}
		dup := false
		for _, q := range out {
			if q.Eq(p) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}
	geom.SortAlong(a, out)
	return out
}

// SectorLines returns the lines with at least one side in sector s.
func (m *Map) SectorLines(s int) []int {
	var out []int
	for i := range m.Lines {
		if m.sideSector(i, true) == s || m.sideSector(i, false) == s {
			out = append(out, i)
		}
	}
	return out
}

// SectorVertices returns the distinct vertices of the lines bounding s.
func (m *Map) SectorVertices(s int) []int {
	seen := map[int]bool{}
	var out []int
	for _, l := range m.SectorLines(s) {
		for _, v := range []int{m.Lines[l].V1, m.Lines[l].V2} {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}

func (m *Map) SectorBBox(s int) geom.BBox {
	var bb geom.BBox
	for i, v := range m.SectorVertices(s) {
		bb.Extend(m.Vertices[v].Pos, i == 0)
	}
	return bb
}

// BBox covers every vertex and thing.
func (m *Map) BBox() geom.BBox {
	var bb geom.BBox
	n := 0
	for _, v := range m.Vertices {
		bb.Extend(v.Pos, n == 0)
		n++
	}
	for _, t := range m.Things {
		bb.Extend(t.Pos, n == 0)
		n++
	}
	return bb
}
