// Package mapdata holds the editable level: flat arenas of vertices, lines,
// sides, sectors and things, all cross-referenced by index (-1 = none).
//
// Indices are only stable between topology edits. Anything holding an index
// across CreateVertex, CreateLine or RebuildSectors must re-resolve it.
package mapdata

import "mapedit/internal/geom"

// NoTexture marks an unset texture slot.
const NoTexture = "-"

type Vertex struct {
	Pos geom.Point
}

// Line joins V1 to V2. The front side faces right when walking V1 -> V2.
type Line struct {
	V1, V2  int
	Front   int
	Back    int
	Special int
	Tag     int
}

type Side struct {
	Sector int
	Line   int
	Upper  string
	Middle string
	Lower  string
}

type Sector struct {
	Floor    int
	Ceiling  int
	FloorTex string
	CeilTex  string
	Light    int
	Tag      int
}

type Thing struct {
	Pos   geom.Point
	Type  int
	Angle int
}

// TexPart is a bitmask of wall parts.
type TexPart uint8

const (
	TexUpper TexPart = 1 << iota
	TexMiddle
	TexLower
)

// Props are the properties given to sectors and sides that have nothing to
// inherit from.
type Props struct {
	Floor     int
	Ceiling   int
	FloorTex  string
	CeilTex   string
	Light     int
	MiddleTex string
}

func DefaultProps() Props {
	return Props{
		Floor:     0,
		Ceiling:   128,
		FloorTex:  "FLOOR0_1",
		CeilTex:   "CEIL1_1",
		Light:     160,
		MiddleTex: "STARTAN2",
	}
}

type Map struct {
	Vertices []Vertex
	Lines    []Line
	Sides    []Side
	Sectors  []Sector
	Things   []Thing

	Defaults Props
}

func New(defaults Props) *Map {
	return &Map{Defaults: defaults}
}

func (m *Map) NumVertices() int { return len(m.Vertices) }
func (m *Map) NumLines() int    { return len(m.Lines) }
func (m *Map) NumSides() int    { return len(m.Sides) }
func (m *Map) NumSectors() int  { return len(m.Sectors) }
func (m *Map) NumThings() int   { return len(m.Things) }

func (m *Map) VertexPos(i int) geom.Point { return m.Vertices[i].Pos }

func (m *Map) LineVertices(i int) (int, int) { return m.Lines[i].V1, m.Lines[i].V2 }

func (m *Map) LineSides(i int) (int, int) { return m.Lines[i].Front, m.Lines[i].Back }

// LineEnds returns the positions of both ends of line i.
func (m *Map) LineEnds(i int) (geom.Point, geom.Point) {
	l := m.Lines[i]
	return m.Vertices[l.V1].Pos, m.Vertices[l.V2].Pos
}

func (m *Map) LineHasFront(i int) bool { return m.Lines[i].Front >= 0 }

func (m *Map) SideLine(side int) int { return m.Sides[side].Line }

func (m *Map) SideMiddleTexture(side int) string { return m.Sides[side].Middle }

func (m *Map) ThingPos(i int) geom.Point { return m.Things[i].Pos }
func (m *Map) ThingType(i int) int       { return m.Things[i].Type }

// sideSector returns the sector on the given side of line l, or -1.
func (m *Map) sideSector(l int, front bool) int {
	s := m.Lines[l].Back
	if front {
		s = m.Lines[l].Front
	}
	if s < 0 {
		return -1
	}
	return m.Sides[s].Sector
}

// SideNeedsTexture reports which wall parts of a side are visible.
// One-sided lines show their middle; two-sided lines show an upper where this
// side's ceiling is higher than the other and a lower where its floor is lower.
func (m *Map) SideNeedsTexture(side int) TexPart {
	if side < 0 || side >= len(m.Sides) {
		return 0
	}
	s := m.Sides[side]
	l := m.Lines[s.Line]
	other := l.Back
	if other == side {
		other = l.Front
	}
	if other < 0 {
		return TexMiddle
	}
	this := m.Sectors[s.Sector]
	that := m.Sectors[m.Sides[other].Sector]
	var needs TexPart
	if this.Ceiling > that.Ceiling {
		needs |= TexUpper
	}
	if this.Floor < that.Floor {
		needs |= TexLower
	}
	return needs
}

// Snapshot is a deep copy of the map contents.
type Snapshot struct {
	vertices []Vertex
	lines    []Line
	sides    []Side
	sectors  []Sector
	things   []Thing
}

func (m *Map) Snapshot() Snapshot {
	return Snapshot{
		vertices: append([]Vertex(nil), m.Vertices...),
		lines:    append([]Line(nil), m.Lines...),
		sides:    append([]Side(nil), m.Sides...),
		sectors:  append([]Sector(nil), m.Sectors...),
		things:   append([]Thing(nil), m.Things...),
	}
}

func (m *Map) Restore(s Snapshot) {
	m.Vertices = append([]Vertex(nil), s.vertices...)
	m.Lines = append([]Line(nil), s.lines...)
	m.Sides = append([]Side(nil), s.sides...)
	m.Sectors = append([]Sector(nil), s.sectors...)
	m.Things = append([]Thing(nil), s.things...)
}
