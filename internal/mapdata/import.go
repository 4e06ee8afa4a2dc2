package mapdata

import (
	"slices"

	"mapedit/internal/geom"
)

// ImportOutlines adds imported geometry to the map: polygon rings become
// closed line loops (and so sectors), line strings become plain lines and
// points become things of thingType. It returns the lines it created.
func (m *Map) ImportOutlines(d geom.Data, thingType int) []int {
	var created []int
	keep := func(l int) {
		if l >= 0 && !slices.Contains(created, l) {
			created = append(created, l)
		}
	}
	addChain := func(pts []geom.Point, closed bool) {
		for i := 0; i+1 < len(pts); i++ {
			keep(m.CreateLine(pts[i], pts[i+1]))
		}
		if closed && len(pts) > 2 && !pts[0].Eq(pts[len(pts)-1]) {
			keep(m.CreateLine(pts[len(pts)-1], pts[0]))
		}
	}
	for _, poly := range d.Polygons {
		for _, ring := range poly {
			addChain(ring, true)
		}
	}
	for _, ls := range d.Lines {
		addChain(ls, false)
	}
	for _, p := range d.Points {
		m.AddThing(p, thingType, 0)
	}
	if len(created) == 0 {
		return nil
	}
	m.RebuildSectors(created)
	var flip []int
	for _, l := range created {
		if !m.LineHasFront(l) && m.Lines[l].Back >= 0 {
			m.FlipLine(l)
			flip = append(flip, l)
		}
	}
	if len(flip) > 0 {
		m.RebuildSectors(flip)
	}
	return created
}

// ImportThings places every row as a thing.
func (m *Map) ImportThings(rows []geom.ThingRow) {
	for _, r := range rows {
		m.AddThing(r.Pos, r.Type, r.Angle)
	}
}
