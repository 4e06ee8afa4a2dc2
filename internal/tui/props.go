package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"

	"mapedit/internal/edit"
	"mapedit/internal/geom"
	"mapedit/internal/mapdata"
)

var propColumns = []table.Column{
	{Title: "item", Width: 14},
	{Title: "field", Width: 10},
	{Title: "value", Width: 24},
}

const maxPropRows = 500

// refreshProps rebuilds the properties table when the selection or the
// inspected item changed since the last build.
func (m *Model) refreshProps() {
	if !m.showProps || !m.s.propsDirty {
		return
	}
	m.s.propsDirty = false
	rows := m.s.propertyRows()
	if len(rows) == 0 {
		rows = []table.Row{{"", "", "nothing selected"}}
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(propColumns)
	m.tbl.SetRows(rows)
	m.tbl.GotoTop()
}

// propertyRows describes the selection, or the hilight, or the last item
// opened for inspection.
func (s *session) propertyRows() []table.Row {
	items := s.sel.SelectionOrHilight()
	if len(items) == 0 && s.props.Valid() {
		items = []edit.Item{s.props}
	}
	var rows []table.Row
	for _, it := range items {
		if len(rows) >= maxPropRows {
			rows = append(rows, table.Row{"…", "", fmt.Sprintf("%d items", len(items))})
			break
		}
		for _, f := range s.itemFields(it) {
			rows = append(rows, table.Row{it.String(), f[0], f[1]})
		}
	}
	return rows
}

func (s *session) itemFields(it edit.Item) [][2]string {
	m := s.m
	valid := func(n int) bool { return it.Index < n }
	switch it.Type {
	case edit.ItemVertex:
		if !valid(m.NumVertices()) {
			break
		}
		p := m.VertexPos(it.Index)
		return [][2]string{{"pos", fmtPoint(p)}}
	case edit.ItemLine:
		if !valid(m.NumLines()) {
			break
		}
		ln := m.Lines[it.Index]
		a, b := m.LineEnds(it.Index)
		return [][2]string{
			{"vertices", fmt.Sprintf("%d -> %d", ln.V1, ln.V2)},
			{"length", fmt.Sprintf("%.1f", geom.Dist(a, b))},
			{"front", sideRef(ln.Front)},
			{"back", sideRef(ln.Back)},
			{"special", fmtInt(ln.Special)},
			{"tag", fmtInt(ln.Tag)},
		}
	case edit.ItemSector, edit.ItemFloor, edit.ItemCeiling:
		if !valid(m.NumSectors()) {
			break
		}
		sec := m.Sectors[it.Index]
		fields := [][2]string{
			{"floor", fmt.Sprintf("%d %s", sec.Floor, sec.FloorTex)},
			{"ceiling", fmt.Sprintf("%d %s", sec.Ceiling, sec.CeilTex)},
			{"light", fmtInt(sec.Light)},
			{"tag", fmtInt(sec.Tag)},
		}
		if it.Type == edit.ItemSector {
			fields = append(fields, [2]string{"lines", fmtInt(len(m.SectorLines(it.Index)))})
		}
		return fields
	case edit.ItemSide, edit.ItemWallTop, edit.ItemWallMiddle, edit.ItemWallBottom:
		if !valid(m.NumSides()) {
			break
		}
		sd := m.Sides[it.Index]
		fields := [][2]string{
			{"line", fmtInt(sd.Line)},
			{"sector", fmtInt(sd.Sector)},
		}
		switch it.Type {
		case edit.ItemWallTop:
			fields = append(fields, [2]string{"upper", tex(sd.Upper)})
		case edit.ItemWallMiddle:
			fields = append(fields, [2]string{"middle", tex(sd.Middle)})
		case edit.ItemWallBottom:
			fields = append(fields, [2]string{"lower", tex(sd.Lower)})
		default:
			fields = append(fields,
				[2]string{"textures", fmt.Sprintf("%s %s %s", tex(sd.Upper), tex(sd.Middle), tex(sd.Lower))},
				[2]string{"needs", needs(m.SideNeedsTexture(it.Index))})
		}
		return fields
	case edit.ItemThing:
		if !valid(m.NumThings()) {
			break
		}
		t := m.Things[it.Index]
		return [][2]string{
			{"pos", fmtPoint(t.Pos)},
			{"type", fmt.Sprintf("%d %s", t.Type, s.cfg.ThingName(t.Type))},
			{"angle", fmtInt(t.Angle)},
		}
	}
	return [][2]string{{"", "stale index"}}
}

func fmtPoint(p geom.Point) string { return fmt.Sprintf("%g, %g", p.X, p.Y) }

func sideRef(side int) string {
	if side < 0 {
		return "-"
	}
	return fmt.Sprintf("side %d", side)
}

func needs(p mapdata.TexPart) string {
	out := ""
	for _, part := range []struct {
		bit  mapdata.TexPart
		name string
	}{{mapdata.TexUpper, "upper"}, {mapdata.TexMiddle, "middle"}, {mapdata.TexLower, "lower"}} {
		if p&part.bit != 0 {
			if out != "" {
				out += " "
			}
			out += part.name
		}
	}
	if out == "" {
		return "-"
	}
	return out
}
