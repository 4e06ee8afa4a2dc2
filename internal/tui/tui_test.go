package tui

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"mapedit/internal/config"
	"mapedit/internal/edit"
	"mapedit/internal/geom"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := New(config.Default())
	return update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return out
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "ctrl+a":
			msg = tea.KeyMsg{Type: tea.KeyCtrlA}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m = update(t, m, msg)
	}
	return m
}

// cellAt is the screen cell a map point is drawn in.
func cellAt(m Model, p geom.Point) (int, int) {
	x, y, _, _ := m.layout()
	mx, my := m.vp.toMicro(p)
	return x + mx/2, y + my/4
}

func mouse(t *testing.T, m Model, p geom.Point, action tea.MouseAction, button tea.MouseButton) Model {
	t.Helper()
	x, y := cellAt(m, p)
	return update(t, m, tea.MouseMsg{X: x, Y: y, Action: action, Button: button})
}

func click(t *testing.T, m Model, p geom.Point) Model {
	t.Helper()
	m = mouse(t, m, p, tea.MouseActionMotion, tea.MouseButtonNone)
	m = mouse(t, m, p, tea.MouseActionPress, tea.MouseButtonLeft)
	return mouse(t, m, p, tea.MouseActionRelease, tea.MouseButtonNone)
}

func withSquare(t *testing.T) Model {
	t.Helper()
	m := newTestModel(t)
	sq := [][]geom.Point{{geom.Pt(0, 0), geom.Pt(64, 0), geom.Pt(64, 64), geom.Pt(0, 64)}}
	m.s.importData("sq", geom.Data{Polygons: [][][]geom.Point{sq}}, nil)
	m.fitView()
	if m.s.m.NumSectors() != 1 {
		t.Fatalf("square import made %d sectors", m.s.m.NumSectors())
	}
	return m
}

func TestClickSelectsSectorAndMigrates(t *testing.T) {
	m := withSquare(t)
	m = press(t, m, "3")
	m = click(t, m, geom.Pt(32, 32))
	want := []edit.Item{{Index: 0, Type: edit.ItemSector}}
	if got := m.s.sel.Items(); !slices.Equal(got, want) {
		t.Fatalf("selection = %v, want %v", got, want)
	}

	m = press(t, m, "2")
	items := m.s.sel.Items()
	if len(items) != 4 {
		t.Fatalf("lines after migration = %v", items)
	}
	for _, it := range items {
		if it.Type != edit.ItemLine {
			t.Fatalf("migrated item %v is not a line", it)
		}
	}

	m = press(t, m, "esc")
	if m.s.sel.Len() != 0 {
		t.Fatalf("esc left %d selected", m.s.sel.Len())
	}
}

func TestDrawTriangleWithMouse(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "d")
	if !m.s.drawing() || m.s.input != edit.InputLineDraw || !m.s.sel.HilightLocked() {
		t.Fatalf("d did not start drawing")
	}
	if len(m.s.help) == 0 {
		t.Fatalf("no contextual help while drawing")
	}
	for _, p := range []geom.Point{geom.Pt(0, 0), geom.Pt(32, 0), geom.Pt(32, 32), geom.Pt(0, 0)} {
		m = mouse(t, m, p, tea.MouseActionPress, tea.MouseButtonLeft)
	}
	if m.s.drawing() {
		t.Fatalf("closing the loop should finish drawing")
	}
	if m.s.m.NumLines() != 3 || m.s.m.NumSectors() != 1 {
		t.Fatalf("lines=%d sectors=%d", m.s.m.NumLines(), m.s.m.NumSectors())
	}
	if m.s.input != edit.InputNormal || m.s.sel.HilightLocked() || m.s.help != nil {
		t.Fatalf("drawing state not reset")
	}

	m = press(t, m, "u")
	if m.s.m.NumLines() != 0 {
		t.Fatalf("undo left %d lines", m.s.m.NumLines())
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	if m.s.m.NumLines() != 3 {
		t.Fatalf("redo gave %d lines", m.s.m.NumLines())
	}
}

func TestShapeDrawWithOptions(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "s")
	if !m.s.shapePanel {
		t.Fatalf("shape panel hidden")
	}
	m = press(t, m, "e")
	if m.s.shape.Kind != edit.ShapeEllipse {
		t.Fatalf("e did not switch to ellipse")
	}
	m = press(t, m, "e")
	m = mouse(t, m, geom.Pt(0, 0), tea.MouseActionPress, tea.MouseButtonLeft)
	if m.s.draw.State() != edit.DrawShapeEdge {
		t.Fatalf("state = %v after placing the origin", m.s.draw.State())
	}
	m = mouse(t, m, geom.Pt(32, 32), tea.MouseActionMotion, tea.MouseButtonNone)
	if n := m.s.draw.NumPoints(); n != 5 {
		t.Fatalf("rectangle preview has %d points", n)
	}
	m = mouse(t, m, geom.Pt(32, 32), tea.MouseActionPress, tea.MouseButtonLeft)
	if m.s.drawing() || m.s.shapePanel {
		t.Fatalf("second click should finish the shape")
	}
	if m.s.m.NumLines() != 4 || m.s.m.NumSectors() != 1 {
		t.Fatalf("lines=%d sectors=%d", m.s.m.NumLines(), m.s.m.NumSectors())
	}
}

func TestEscCancelsDrawing(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "d")
	m = mouse(t, m, geom.Pt(0, 0), tea.MouseActionPress, tea.MouseButtonLeft)
	m = press(t, m, "esc")
	if m.s.drawing() || m.s.m.NumVertices() != 0 || m.s.hist.CanUndo() {
		t.Fatalf("cancel changed the map")
	}
}

func TestNudgeMergesUndo(t *testing.T) {
	m := withSquare(t)
	m = press(t, m, "1")
	m = mouse(t, m, geom.Pt(0, 0), tea.MouseActionMotion, tea.MouseButtonNone)
	if h := m.s.sel.Hilight(); h != (edit.Item{Index: 0, Type: edit.ItemVertex}) {
		t.Fatalf("hilight = %v", h)
	}
	m = press(t, m, "up", "up")
	if got := m.s.m.VertexPos(0); got != geom.Pt(0, 32) {
		t.Fatalf("vertex at %v after two nudges", got)
	}
	if names := m.s.hist.Names(); !slices.Equal(names, []string{"sq", "Move"}) {
		t.Fatalf("undo levels = %v", names)
	}
	m = press(t, m, "u")
	if got := m.s.m.VertexPos(0); got != geom.Pt(0, 0) {
		t.Fatalf("vertex at %v after undo", got)
	}
}

func TestSelectAllAndBoxSelect(t *testing.T) {
	m := withSquare(t)
	m = press(t, m, "1", "ctrl+a")
	if m.s.sel.Len() != 4 {
		t.Fatalf("select all = %d vertices", m.s.sel.Len())
	}
	m = press(t, m, "esc")

	m = mouse(t, m, geom.Pt(-2, -2), tea.MouseActionPress, tea.MouseButtonLeft)
	m = mouse(t, m, geom.Pt(40, 40), tea.MouseActionMotion, tea.MouseButtonLeft)
	if !m.dragging {
		t.Fatalf("drag not started")
	}
	m = mouse(t, m, geom.Pt(40, 40), tea.MouseActionRelease, tea.MouseButtonNone)
	if got := m.s.sel.SelectedVertices(false); !slices.Equal(got, []int{0}) {
		t.Fatalf("box selected %v", got)
	}
}

func TestPasteWKT(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "p")
	if !m.pasteMode {
		t.Fatalf("p did not open paste mode")
	}
	m.ta.SetValue("POLYGON ((0 0, 0 64, 64 64, 64 0, 0 0))")
	m = press(t, m, "enter")
	if m.pasteMode || m.s.m.NumSectors() != 1 {
		t.Fatalf("paste: mode=%v sectors=%d status=%q", m.pasteMode, m.s.m.NumSectors(), m.s.status)
	}
}

func TestPropertiesTable(t *testing.T) {
	m := withSquare(t)
	m = press(t, m, "3")
	m = click(t, m, geom.Pt(32, 32))
	m = press(t, m, "P")
	var fields []string
	for _, r := range m.tbl.Rows() {
		fields = append(fields, r[1])
	}
	for _, want := range []string{"floor", "ceiling", "light", "lines"} {
		if !slices.Contains(fields, want) {
			t.Fatalf("properties %v lack %q", fields, want)
		}
	}
	m = press(t, m, "P")
	if m.showProps {
		t.Fatalf("P did not close the table")
	}
}

func TestConfigReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapedit.yaml")
	if err := os.WriteFile(path, []byte("grid: {size: 8, snap: false}\nsector: {ceiling: 200}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	m := newTestModel(t).WithConfigWatch(path, nil)
	m = update(t, m, configChangedMsg{path: path})
	if m.s.gridSize != 8 || m.s.gridSnap || m.s.m.Defaults.Ceiling != 200 {
		t.Fatalf("reload not applied: grid=%v snap=%v ceiling=%d", m.s.gridSize, m.s.gridSnap, m.s.m.Defaults.Ceiling)
	}

	if err := os.WriteFile(path, []byte("grid: {size: -1}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	m = update(t, m, configChangedMsg{path: path})
	if m.s.gridSize != 8 || !strings.HasPrefix(m.s.status, "config error") {
		t.Fatalf("bad config applied: grid=%v status=%q", m.s.gridSize, m.s.status)
	}
}

func TestViewRenders(t *testing.T) {
	m := withSquare(t)
	v := m.View()
	if !strings.Contains(v, "lines mode") {
		t.Fatalf("header missing from view")
	}
	if !strings.ContainsFunc(v, func(r rune) bool { return r > 0x2800 && r <= 0x28FF }) {
		t.Fatalf("no braille in the map view")
	}
	m = press(t, m, "d")
	if !strings.Contains(m.View(), "Line Drawing") {
		t.Fatalf("contextual help not shown while drawing")
	}
}

func TestBrailleBuf(t *testing.T) {
	b := newBrailleBuf(2, 1)
	b.setPixel(0, 0, inkOneSided)
	b.setPixel(3, 3, inkHilight)
	b.setPixel(-1, 0, inkHilight)
	b.setPixel(4, 0, inkHilight)
	if b.m[0][0] != 0x01 || b.m[0][1] != 0x80 {
		t.Fatalf("masks = %#x %#x", b.m[0][0], b.m[0][1])
	}
	if b.ink[0][0] != inkOneSided || b.ink[0][1] != inkHilight {
		t.Fatalf("inks = %v %v", b.ink[0][0], b.ink[0][1])
	}
	line := b.toLines()[0]
	if !strings.ContainsRune(line, '⠁') || !strings.ContainsRune(line, '⢀') {
		t.Fatalf("rendered %q", line)
	}

	b = newBrailleBuf(4, 1)
	b.drawLineMicro(0, 1, 7, 1, inkDraw)
	for x := 0; x < 4; x++ {
		if b.m[0][x] != 0x02|0x10 {
			t.Fatalf("cell %d mask = %#x", x, b.m[0][x])
		}
	}
}

func TestViewportRoundTrip(t *testing.T) {
	vp := viewport{center: geom.Pt(100, 50), scale: 2, w: 40, h: 10}
	mx, my := vp.toMicro(geom.Pt(100, 50))
	if mx != 40 || my != 20 {
		t.Fatalf("centre maps to %d,%d", mx, my)
	}
	p := vp.cellToMap(mx/2, my/4)
	if geom.Dist(p, geom.Pt(100, 50)) > 2 {
		t.Fatalf("round trip landed at %v", p)
	}
	vp.fit(geom.BBox{MinX: 0, MinY: 0, MaxX: 160, MaxY: 20})
	if vp.center != geom.Pt(80, 10) || vp.scale != 0.45 {
		t.Fatalf("fit = %+v", vp)
	}
}
