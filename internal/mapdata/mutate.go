package mapdata

import "mapedit/internal/geom"

// CreateVertex returns the vertex at p, creating it if needed. A new vertex
// splits every line whose interior it lies on.
func (m *Map) CreateVertex(p geom.Point) int {
	for i, v := range m.Vertices {
		if v.Pos.Eq(p) {
			return i
		}
	}
	m.Vertices = append(m.Vertices, Vertex{Pos: p})
	vi := len(m.Vertices) - 1
	for l, n := 0, len(m.Lines); l < n; l++ {
		a, b := m.LineEnds(l)
		if geom.OnSegmentInterior(p, a, b) {
			m.splitLine(l, vi)
		}
	}
	return vi
}

// splitLine cuts line l at vertex v. The new second half copies l's sides.
func (m *Map) splitLine(l, v int) int {
	old := m.Lines[l]
	nl := Line{V1: v, V2: old.V2, Front: -1, Back: -1, Special: old.Special, Tag: old.Tag}
	m.Lines = append(m.Lines, nl)
	idx := len(m.Lines) - 1
	m.Lines[idx].Front = m.copySide(old.Front, idx)
	m.Lines[idx].Back = m.copySide(old.Back, idx)
	m.Lines[l].V2 = v
	return idx
}

func (m *Map) copySide(side, line int) int {
	if side < 0 {
		return -1
	}
	s := m.Sides[side]
	s.Line = line
	m.Sides = append(m.Sides, s)
	return len(m.Sides) - 1
}

// CreateLine joins p1 and p2, creating vertices as needed. An existing line
// between the same vertices is returned instead of a duplicate; a zero-length
// line is never created and yields -1.
func (m *Map) CreateLine(p1, p2 geom.Point) int {
	if p1.Eq(p2) {
		return -1
	}
	v1 := m.CreateVertex(p1)
	v2 := m.CreateVertex(p2)
	for i, l := range m.Lines {
		if (l.V1 == v1 && l.V2 == v2) || (l.V1 == v2 && l.V2 == v1) {
			return i
		}
	}
	m.Lines = append(m.Lines, Line{V1: v1, V2: v2, Front: -1, Back: -1})
	return len(m.Lines) - 1
}

// FlipLine swaps the direction of line l together with its sides.
func (m *Map) FlipLine(l int) {
	ln := &m.Lines[l]
	ln.V1, ln.V2 = ln.V2, ln.V1
	ln.Front, ln.Back = ln.Back, ln.Front
}

func (m *Map) AddThing(p geom.Point, typ, angle int) int {
	m.Things = append(m.Things, Thing{Pos: p, Type: typ, Angle: angle})
	return len(m.Things) - 1
}

func (m *Map) MoveVertex(v int, delta geom.Point) {
	m.Vertices[v].Pos = m.Vertices[v].Pos.Add(delta)
}

func (m *Map) MoveThing(t int, delta geom.Point) {
	m.Things[t].Pos = m.Things[t].Pos.Add(delta)
}
