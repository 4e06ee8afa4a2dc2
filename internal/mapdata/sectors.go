package mapdata

import (
	"math"

	"mapedit/internal/geom"
)

// halfEdge walks line l forwards (V1 -> V2) or backwards. The side it
// describes is always on the right of the walk.
type halfEdge struct {
	line    int
	forward bool
}

func (m *Map) heFrom(e halfEdge) int {
	if e.forward {
		return m.Lines[e.line].V1
	}
	return m.Lines[e.line].V2
}

func (m *Map) heTo(e halfEdge) int {
	if e.forward {
		return m.Lines[e.line].V2
	}
	return m.Lines[e.line].V1
}

func (m *Map) outgoing() map[int][]halfEdge {
	out := make(map[int][]halfEdge, len(m.Vertices))
	for i, l := range m.Lines {
		out[l.V1] = append(out[l.V1], halfEdge{i, true})
		out[l.V2] = append(out[l.V2], halfEdge{i, false})
	}
	return out
}

// traceFace follows the face on the right of start, taking the sharpest
// right turn at every vertex, until it returns to start.
func (m *Map) traceFace(start halfEdge, out map[int][]halfEdge) ([]halfEdge, bool) {
	var loop []halfEdge
	cur := start
	for steps := 0; steps <= 2*len(m.Lines); steps++ {
		loop = append(loop, cur)
		v := m.heTo(cur)
		back := geom.Angle(m.Vertices[m.heFrom(cur)].Pos.Sub(m.Vertices[v].Pos))
		next, bestTurn := halfEdge{line: -1}, math.Inf(1)
		for _, e := range out[v] {
			turn := geom.Angle(m.Vertices[m.heTo(e)].Pos.Sub(m.Vertices[v].Pos)) - back
			for turn <= 1e-9 {
				turn += 2 * math.Pi
			}
			if turn < bestTurn {
				next, bestTurn = e, turn
			}
		}
		if next.line < 0 {
			return nil, false
		}
		if next == start {
			return loop, true
		}
		cur = next
	}
	return nil, false
}

func (m *Map) setSide(e halfEdge, sector int) {
	ln := &m.Lines[e.line]
	slot := &ln.Back
	if e.forward {
		slot = &ln.Front
	}
	if *slot >= 0 {
		m.Sides[*slot].Sector = sector
		return
	}
	m.Sides = append(m.Sides, Side{Sector: sector, Line: e.line, Upper: NoTexture, Middle: NoTexture, Lower: NoTexture})
	*slot = len(m.Sides) - 1
}

// probe returns a point just right of the half edge's midpoint.
func (m *Map) probe(e halfEdge) geom.Point {
	a := m.Vertices[m.heFrom(e)].Pos
	b := m.Vertices[m.heTo(e)].Pos
	d := geom.Dist(a, b)
	mid := geom.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
	if d == 0 {
		return mid
	}
	const off = 0.5
	return geom.Point{X: mid.X + (b.Y-a.Y)/d*off, Y: mid.Y - (b.X-a.X)/d*off}
}

// RebuildSectors recomputes the sectors on both sides of the given lines.
//
// Closed clockwise faces become sectors, inheriting properties from a sector
// already on the face, from the sector enclosing it, or from Defaults.
// Counter-clockwise faces (islands and the outer boundary) take the enclosing
// sector if there is one. Sectors left without sides are removed, so sector
// indices held by callers are invalid afterwards.
func (m *Map) RebuildSectors(lines []int) {
	out := m.outgoing()
	done := map[halfEdge]bool{}
	for _, l := range lines {
		if l < 0 || l >= len(m.Lines) {
			continue
		}
		for _, fwd := range []bool{true, false} {
			start := halfEdge{l, fwd}
			if done[start] {
				continue
			}
			loop, ok := m.traceFace(start, out)
			if !ok {
				continue
			}
			ring := make([]geom.Point, len(loop))
			for i, e := range loop {
				done[e] = true
				ring[i] = m.Vertices[m.heFrom(e)].Pos
			}
			if geom.SignedArea(ring) >= 0 {
				if enc := m.SectorAt(m.probe(start)); enc >= 0 {
					for _, e := range loop {
						if m.sideSector(e.line, e.forward) < 0 {
							m.setSide(e, enc)
						}
					}
				}
				continue
			}
			m.fillFace(loop, start)
		}
	}
	m.fixMiddleTextures(lines)
	m.removeUnusedSectors()
}

// fillFace gives a closed interior face its own sector unless every edge
// already agrees on one.
func (m *Map) fillFace(loop []halfEdge, start halfEdge) {
	existing, same := -1, true
	for _, e := range loop {
		s := m.sideSector(e.line, e.forward)
		switch {
		case s < 0:
			same = false
		case existing < 0:
			existing = s
		case s != existing:
			same = false
		}
	}
	if same && existing >= 0 {
		return
	}
	props := Sector{
		Floor:    m.Defaults.Floor,
		Ceiling:  m.Defaults.Ceiling,
		FloorTex: m.Defaults.FloorTex,
		CeilTex:  m.Defaults.CeilTex,
		Light:    m.Defaults.Light,
	}
	if existing >= 0 {
		props = m.Sectors[existing]
	} else if enc := m.SectorAt(m.probe(start)); enc >= 0 {
		props = m.Sectors[enc]
	}
	m.Sectors = append(m.Sectors, props)
	sec := len(m.Sectors) - 1
	for _, e := range loop {
		m.setSide(e, sec)
	}
}

func (m *Map) fixMiddleTextures(lines []int) {
	for _, l := range lines {
		if l < 0 || l >= len(m.Lines) {
			continue
		}
		ln := m.Lines[l]
		switch {
		case ln.Front >= 0 && ln.Back >= 0:
			m.Sides[ln.Front].Middle = NoTexture
			m.Sides[ln.Back].Middle = NoTexture
		case ln.Front >= 0 && m.Sides[ln.Front].Middle == NoTexture:
			m.Sides[ln.Front].Middle = m.Defaults.MiddleTex
		case ln.Back >= 0 && m.Sides[ln.Back].Middle == NoTexture:
			m.Sides[ln.Back].Middle = m.Defaults.MiddleTex
		}
	}
}

func (m *Map) removeUnusedSectors() {
	used := make([]bool, len(m.Sectors))
	for _, s := range m.Sides {
		if s.Sector >= 0 && s.Sector < len(used) {
			used[s.Sector] = true
		}
	}
	remap := make([]int, len(m.Sectors))
	kept := m.Sectors[:0]
	for i, sec := range m.Sectors {
		if !used[i] {
			remap[i] = -1
			continue
		}
		remap[i] = len(kept)
		kept = append(kept, sec)
	}
	m.Sectors = kept
	for i := range m.Sides {
		if s := m.Sides[i].Sector; s >= 0 && s < len(remap) {
			m.Sides[i].Sector = remap[s]
		}
	}
}
