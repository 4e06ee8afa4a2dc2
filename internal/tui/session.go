package tui

import (
	"fmt"
	"log"
	"slices"

	"mapedit/internal/config"
	"mapedit/internal/edit"
	"mapedit/internal/geom"
	"mapedit/internal/mapdata"
	"mapedit/internal/undo"
)

// session is the editing state shared by every copy of Model. It is the
// edit.Context the selection and the line draw tool report to.
type session struct {
	cfg  config.Config
	m    *mapdata.Map
	hist *undo.Manager[mapdata.Snapshot]
	sel  *edit.Selection
	draw *edit.LineDraw

	mode       edit.Mode
	input      edit.InputMode
	gridSnap   bool
	gridSize   float64
	shape      edit.ShapeOptions
	shapePanel bool
	help       []string

	props      edit.Item
	propsDirty bool
	tagged     []edit.Item
	status     string
}

var _ edit.Context = (*session)(nil)

func newSession(cfg config.Config) *session {
	s := &session{
		cfg:      cfg,
		m:        mapdata.New(cfg.Props()),
		mode:     edit.ModeLines,
		gridSnap: cfg.Grid.Snap,
		gridSize: cfg.Grid.Size,
		shape:    cfg.Shape(),
		props:    edit.NoItem,
	}
	s.hist = undo.New[mapdata.Snapshot](s.m)
	s.sel = edit.NewSelection(s)
	s.draw = edit.NewLineDraw(s)
	return s
}

func (s *session) Mode() edit.Mode { return s.mode }
func (s *session) Map() edit.Map   { return s.m }
func (s *session) GridSnap() bool  { return s.gridSnap }

func (s *session) SnapToGrid(p geom.Point) geom.Point {
	return geom.SnapToGrid(p, s.gridSize)
}

func (s *session) Shape() edit.ShapeOptions { return s.shape }

func (s *session) ThingRadius(thingType int) float64 { return s.cfg.ThingRadius(thingType) }

func (s *session) BeginUndo(name string)        { s.hist.Begin(name) }
func (s *session) EndUndo(success bool)         { s.hist.End(success) }
func (s *session) ResetLastUndoMarker()         { s.hist.ResetMarker() }
func (s *session) ShowShapeDrawPanel(show bool) { s.shapePanel = show }

// SetInputMode locks the hilight while drawing so the cursor does not pick
// entities under the rubber band.
func (s *session) SetInputMode(mode edit.InputMode) {
	s.input = mode
	if mode == edit.InputLineDraw {
		s.sel.SetHilight(edit.NoItem)
	}
	s.sel.LockHilight(mode != edit.InputNormal)
}

func (s *session) SetContextualHelp(lines []string) { s.help = slices.Clone(lines) }

func (s *session) OpenObjectProperties(item edit.Item) {
	s.props = item
	s.propsDirty = true
}

// RecomputeTaggedItems collects the entities sharing the hilight's tag:
// sectors for a tagged line, lines for a tagged sector.
func (s *session) RecomputeTaggedItems() {
	s.tagged = s.tagged[:0]
	h := s.sel.Hilight()
	if !h.Valid() {
		return
	}
	switch h.Type {
	case edit.ItemLine:
		if h.Index >= len(s.m.Lines) || s.m.Lines[h.Index].Tag == 0 {
			return
		}
		tag := s.m.Lines[h.Index].Tag
		for i, sec := range s.m.Sectors {
			if sec.Tag == tag {
				s.tagged = append(s.tagged, edit.Item{Index: i, Type: edit.ItemSector})
			}
		}
	case edit.ItemSector:
		if h.Index >= len(s.m.Sectors) || s.m.Sectors[h.Index].Tag == 0 {
			return
		}
		tag := s.m.Sectors[h.Index].Tag
		for i, ln := range s.m.Lines {
			if ln.Tag == tag {
				s.tagged = append(s.tagged, edit.Item{Index: i, Type: edit.ItemLine})
			}
		}
	}
}

func (s *session) NotifySelectionChanged() {
	s.propsDirty = true
	added, removed := 0, 0
	for _, on := range s.sel.Changes() {
		if on {
			added++
		} else {
			removed++
		}
	}
	s.status = fmt.Sprintf("%d %s selected (+%d -%d)", s.sel.Len(), s.mode, added, removed)
}

// setMode switches the edit mode, carrying the selection over.
func (s *session) setMode(mode edit.Mode) {
	if mode == s.mode {
		return
	}
	from := s.mode
	s.mode = mode
	s.sel.SetHilight(edit.NoItem)
	s.sel.Migrate(from, mode)
	s.tagged = s.tagged[:0]
}

// nudge moves the selection (or hilight) by delta. Repeated nudges without
// a hilight change fold into one undo level.
func (s *session) nudge(delta geom.Point) bool {
	verts, things := s.movable()
	if len(verts) == 0 && len(things) == 0 {
		return false
	}
	s.hist.BeginMerge("Move")
	for _, v := range verts {
		s.m.MoveVertex(v, delta)
	}
	for _, t := range things {
		s.m.MoveThing(t, delta)
	}
	s.hist.End(true)
	return true
}

func (s *session) movable() (verts, things []int) {
	add := func(v int) {
		if !slices.Contains(verts, v) {
			verts = append(verts, v)
		}
	}
	switch s.mode {
	case edit.ModeVertices:
		for _, v := range s.sel.SelectedVertices(true) {
			add(v)
		}
	case edit.ModeLines:
		for _, l := range s.sel.SelectedLines(true) {
			v1, v2 := s.m.LineVertices(l)
			add(v1)
			add(v2)
		}
	case edit.ModeSectors:
		for _, sec := range s.sel.SelectedSectors(true) {
			for _, v := range s.m.SectorVertices(sec) {
				add(v)
			}
		}
	case edit.ModeThings:
		things = s.sel.SelectedThings(true)
	}
	return verts, things
}

// undo and redo drop the selection; indices do not survive a restore.
func (s *session) undo() {
	name, ok := s.hist.Undo()
	if !ok {
		s.status = "nothing to undo"
		return
	}
	s.sel.SetHilight(edit.NoItem)
	s.sel.Clear()
	s.status = "undo " + name
}

func (s *session) redo() {
	name, ok := s.hist.Redo()
	if !ok {
		s.status = "nothing to redo"
		return
	}
	s.sel.SetHilight(edit.NoItem)
	s.sel.Clear()
	s.status = "redo " + name
}

// importData adds imported geometry to the map in a single undo level.
func (s *session) importData(name string, d geom.Data, things []geom.ThingRow) {
	s.BeginUndo(name)
	lines := s.m.ImportOutlines(d, s.cfg.Things.ImportType)
	s.m.ImportThings(things)
	s.EndUndo(true)
	s.sel.SetHilight(edit.NoItem)
	s.sel.Clear()
	s.status = fmt.Sprintf("%s: %d lines, %d sectors, %d things",
		name, len(lines), s.m.NumSectors(), s.m.NumThings())
	log.Printf("import %s: %d lines, %d things", name, len(lines), len(d.Points)+len(things))
}

// applyConfig takes a reloaded configuration. The map keeps its geometry;
// only defaults for new entities and drawing options change.
func (s *session) applyConfig(cfg config.Config) {
	s.cfg = cfg
	s.m.Defaults = cfg.Props()
	s.gridSize = cfg.Grid.Size
	s.gridSnap = cfg.Grid.Snap
	s.shape = cfg.Shape()
}

func (s *session) drawing() bool { return s.draw.Active() }
