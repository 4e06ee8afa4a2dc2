package tui

import (
	"os"

	"github.com/charmbracelet/bubbles/help"
	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"mapedit/internal/config"
	"mapedit/internal/geom"
)

const sidebarWidth = 28

type Model struct {
	width  int
	height int

	s  *session
	vp viewport

	keys        keyMap
	help        help.Model
	helpVisible bool
	fitted      bool

	// import browser
	showSidebar bool
	cwd         string
	l           list.Model
	selPath     string

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// properties table
	showProps bool
	tbl       table.Model

	// pointer state, in map units
	hovering  bool
	cursor    geom.Point
	pressed   bool
	pressCell [2]int
	dragging  bool
	dragFrom  geom.Point

	cfgPath string
	watcher *config.Watcher
}

func New(cfg config.Config) Model {
	m := Model{
		s:           newSession(cfg),
		vp:          viewport{scale: 1},
		keys:        defaultKeyMap(),
		help:        help.New(),
		helpVisible: true,
	}
	m.s.status = "mapedit ready"
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Import"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste WKT here (POINT, MULTIPOINT, LINESTRING, POLYGON). Enter imports; Esc cancels."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// properties table setup
	m.tbl = table.New(table.WithColumns(propColumns), table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath imports a file at launch.
func NewWithPath(cfg config.Config, path string) Model {
	m := New(cfg)
	m.loadPath(path)
	return m
}

// WithConfigWatch reloads the configuration from path whenever w reports a
// change to it.
func (m Model) WithConfigWatch(path string, w *config.Watcher) Model {
	m.cfgPath = path
	m.watcher = w
	return m
}

func (m Model) Init() tea.Cmd { return waitForConfig(m.watcher) }

// layout returns the map canvas origin and size in cells.
func (m Model) layout() (x, y, w, h int) {
	side := 0
	if m.showSidebar || m.s.shapePanel {
		side = sidebarWidth + 1
	}
	headerHeight, footerHeight := 1, 2
	return side, headerHeight, max(10, m.width-side), max(4, m.height-headerHeight-footerHeight)
}

func (m *Model) resize() {
	_, _, w, h := m.layout()
	m.vp.w, m.vp.h = w, h
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, h-2)
	}
}

func (m *Model) fitView() {
	b := m.s.m.BBox()
	if m.s.m.NumVertices()+m.s.m.NumThings() == 0 {
		return
	}
	m.vp.fit(b)
}
