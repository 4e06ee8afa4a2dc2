package tui

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"mapedit/internal/edit"
	"mapedit/internal/geom"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		if !m.fitted {
			m.fitView()
			m.fitted = true
		}
	case configChangedMsg:
		m.reloadConfig()
		cmd = waitForConfig(m.watcher)
	case configErrMsg:
		m.s.status = "config watch: " + msg.err.Error()
		log.Printf("config watch: %v", msg.err)
		cmd = waitForConfig(m.watcher)
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m = m.updateMouse(msg)
	}
	m.resize()
	m.refreshProps()
	return m, cmd
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	// If list is visible and filtering, send keys to list and ignore global commands
	if m.showSidebar && m.l.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	if m.pasteMode {
		return m.updatePaste(msg)
	}
	if m.help.ShowAll {
		if key.Matches(msg, m.keys.Help, m.keys.Cancel) {
			m.help.ShowAll = false
		}
		return m, nil
	}
	if m.showProps {
		switch {
		case key.Matches(msg, m.keys.Props, m.keys.Cancel):
			m.showProps = false
			return m, nil
		case key.Matches(msg, m.keys.Nudge):
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
	}
	if m.s.drawing() {
		return m.updateDrawKey(msg)
	}
	if m.showSidebar {
		switch {
		case key.Matches(msg, m.keys.Accept):
			if it, ok := m.l.SelectedItem().(fileItem); ok {
				m.loadPath(it.path)
			}
			return m, nil
		case key.Matches(msg, m.keys.Files, m.keys.Cancel):
			m.showSidebar = false
			return m, nil
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}

	s := m.s
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Vertices):
		s.setMode(edit.ModeVertices)
	case key.Matches(msg, m.keys.Lines):
		s.setMode(edit.ModeLines)
	case key.Matches(msg, m.keys.Sectors):
		s.setMode(edit.ModeSectors)
	case key.Matches(msg, m.keys.Things):
		s.setMode(edit.ModeThings)
	case key.Matches(msg, m.keys.Visual):
		s.setMode(edit.ModeVisual)
	case key.Matches(msg, m.keys.Toggle):
		if !s.sel.ToggleCurrent(false) {
			s.status = "nothing under the cursor"
		}
	case key.Matches(msg, m.keys.SelectAll):
		s.sel.SelectAll()
	case key.Matches(msg, m.keys.Cancel):
		s.sel.Clear()
	case key.Matches(msg, m.keys.LineDraw, m.keys.ShapeDraw):
		if s.mode == edit.ModeVisual {
			s.status = "drawing needs a 2D mode"
			break
		}
		s.draw.Begin(key.Matches(msg, m.keys.ShapeDraw))
		m.dragging, m.pressed = false, false
	case key.Matches(msg, m.keys.GridSnap):
		s.gridSnap = !s.gridSnap
		s.status = "grid snap " + onOff(s.gridSnap)
	case key.Matches(msg, m.keys.Nudge):
		step := s.gridSize
		var d geom.Point
		switch msg.String() {
		case "up":
			d.Y = step
		case "down":
			d.Y = -step
		case "left":
			d.X = -step
		case "right":
			d.X = step
		}
		if s.nudge(d) {
			s.status = fmt.Sprintf("moved %s by %v", s.mode, d)
		}
	case key.Matches(msg, m.keys.Undo):
		s.undo()
	case key.Matches(msg, m.keys.Redo):
		s.redo()
	case key.Matches(msg, m.keys.Files):
		m.showSidebar = true
		m.refreshDir()
	case key.Matches(msg, m.keys.Paste):
		m.pasteMode = true
		m.ta.SetValue("")
		s.status = "paste mode"
		return m, m.ta.Focus()
	case key.Matches(msg, m.keys.Props):
		m.showProps = true
		s.propsDirty = true
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = true
	default:
		m.updateView(msg)
	}
	return m, nil
}

// updateView handles zoom and pan, which work in every input mode.
func (m *Model) updateView(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, m.keys.ZoomIn):
		m.vp.zoomTo(m.vp.scale * 1.25)
	case key.Matches(msg, m.keys.ZoomOut):
		m.vp.zoomTo(m.vp.scale / 1.25)
	case key.Matches(msg, m.keys.Pan):
		switch msg.String() {
		case "H":
			m.vp.pan(-8, 0)
		case "L":
			m.vp.pan(8, 0)
		case "K":
			m.vp.pan(0, -4)
		case "J":
			m.vp.pan(0, 4)
		}
	case key.Matches(msg, m.keys.Fit):
		m.fitView()
	default:
		return false
	}
	m.s.status = fmt.Sprintf("zoom: %.3f", m.vp.scale)
	return true
}

func (m Model) updateDrawKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	s := m.s
	d := s.draw
	switch {
	case key.Matches(msg, m.keys.Cancel):
		d.End(false)
		s.status = "drawing cancelled"
	case key.Matches(msg, m.keys.Accept):
		n := d.NumPoints()
		d.End(true)
		s.status = fmt.Sprintf("drew %d points", n)
	case key.Matches(msg, m.keys.Backspace):
		d.RemovePoint()
	case key.Matches(msg, m.keys.ShapeKind):
		if s.shape.Kind == edit.ShapeRectangle {
			s.shape.Kind = edit.ShapeEllipse
		} else {
			s.shape.Kind = edit.ShapeRectangle
		}
		m.reshape()
	case key.Matches(msg, m.keys.LockRatio):
		s.shape.LockRatio = !s.shape.LockRatio
		m.reshape()
	case key.Matches(msg, m.keys.Centered):
		s.shape.Centered = !s.shape.Centered
		m.reshape()
	case key.Matches(msg, m.keys.GridSnap):
		s.gridSnap = !s.gridSnap
		s.status = "grid snap " + onOff(s.gridSnap)
	case key.Matches(msg, m.keys.Quit):
		d.End(false)
		return m, tea.Quit
	default:
		m.updateView(msg)
	}
	return m, nil
}

// reshape redraws the shape after an option change.
func (m Model) reshape() {
	if m.s.draw.State() == edit.DrawShapeEdge {
		m.s.draw.UpdateShape(m.cursor)
	}
}

func (m Model) updatePaste(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pasteMode = false
		m.ta.Blur()
		return m, nil
	case "enter":
		w := strings.TrimSpace(m.ta.Value())
		if w == "" {
			m.s.status = "paste: empty"
			return m, nil
		}
		d, err := geom.ParseWKT(w)
		if err != nil {
			m.s.status = "wkt error: " + err.Error()
			return m, nil
		}
		m.s.importData("Paste WKT", d, nil)
		m.fitView()
		m.pasteMode = false
		m.ta.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

func (m Model) updateMouse(msg tea.MouseMsg) Model {
	if m.pasteMode || m.showProps || m.help.ShowAll {
		return m
	}
	x, y, w, h := m.layout()
	cx, cy := msg.X-x, msg.Y-y
	if cx < 0 || cx >= w || cy < 0 || cy >= h {
		m.hovering = false
		if msg.Action == tea.MouseActionRelease {
			m.pressed, m.dragging = false, false
		}
		return m
	}
	m.hovering = true
	p := m.vp.cellToMap(cx, cy)
	m.cursor = p
	s := m.s

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.vp.zoomTo(m.vp.scale * 1.25)
		return m
	case tea.MouseButtonWheelDown:
		m.vp.zoomTo(m.vp.scale / 1.25)
		return m
	}

	if s.drawing() {
		m.drawMouse(msg, p)
		return m
	}

	switch msg.Action {
	case tea.MouseActionMotion:
		if m.pressed {
			if abs(cx-m.pressCell[0])+abs(cy-m.pressCell[1]) > 0 {
				m.dragging = true
			}
			return m
		}
		s.sel.UpdateHilight(p, m.vp.pickScale())
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m
		}
		s.sel.UpdateHilight(p, m.vp.pickScale())
		m.pressed = true
		m.pressCell = [2]int{cx, cy}
		m.dragFrom = p
	case tea.MouseActionRelease:
		switch {
		case m.dragging:
			if !s.sel.SelectWithin(geom.RectFrom(m.dragFrom, p), msg.Shift) {
				s.status = "nothing inside the box"
			}
		case m.pressed:
			s.sel.ToggleCurrent(true)
		}
		m.pressed, m.dragging = false, false
	}
	return m
}

func (m Model) drawMouse(msg tea.MouseMsg, p geom.Point) {
	d := m.s.draw
	switch msg.Action {
	case tea.MouseActionMotion:
		if d.State() == edit.DrawShapeEdge {
			d.UpdateShape(p)
		}
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonRight:
			d.RemovePoint()
		case tea.MouseButtonLeft:
			switch d.State() {
			case edit.DrawLine:
				if d.AddPoint(p, msg.Shift) {
					m.s.status = "lines drawn"
				}
			case edit.DrawShapeOrigin:
				d.SetShapeOrigin(p, msg.Shift)
				d.SetState(edit.DrawShapeEdge)
				d.UpdateShape(p)
			case edit.DrawShapeEdge:
				d.UpdateShape(p)
				d.End(true)
				m.s.status = "shape drawn"
			}
		}
	}
}
