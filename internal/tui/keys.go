package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Vertices key.Binding
	Lines    key.Binding
	Sectors  key.Binding
	Things   key.Binding
	Visual   key.Binding

	Toggle    key.Binding
	SelectAll key.Binding
	Cancel    key.Binding

	LineDraw  key.Binding
	ShapeDraw key.Binding
	ShapeKind key.Binding
	LockRatio key.Binding
	Centered  key.Binding
	Accept    key.Binding
	Backspace key.Binding
	GridSnap  key.Binding

	Nudge key.Binding
	Undo  key.Binding
	Redo  key.Binding

	ZoomIn  key.Binding
	ZoomOut key.Binding
	Pan     key.Binding
	Fit     key.Binding

	Files key.Binding
	Paste key.Binding
	Props key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Vertices: key.NewBinding(key.WithKeys("1"), key.WithHelp("1-5", "mode")),
		Lines:    key.NewBinding(key.WithKeys("2")),
		Sectors:  key.NewBinding(key.WithKeys("3")),
		Things:   key.NewBinding(key.WithKeys("4")),
		Visual:   key.NewBinding(key.WithKeys("5")),

		Toggle:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		SelectAll: key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "select all")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),

		LineDraw:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "draw lines")),
		ShapeDraw: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "draw shape")),
		ShapeKind: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "rect/ellipse")),
		LockRatio: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "lock ratio")),
		Centered:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "centered")),
		Accept:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "accept")),
		Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("bksp", "undo point")),
		GridSnap:  key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "grid snap")),

		Nudge: key.NewBinding(key.WithKeys("up", "down", "left", "right"), key.WithHelp("↑↓←→", "move")),
		Undo:  key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
		Redo:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "redo")),

		ZoomIn:  key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "zoom")),
		ZoomOut: key.NewBinding(key.WithKeys("-", "_")),
		Pan:     key.NewBinding(key.WithKeys("H", "J", "K", "L"), key.WithHelp("HJKL", "pan")),
		Fit:     key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "fit")),

		Files: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "import")),
		Paste: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "paste wkt")),
		Props: key.NewBinding(key.WithKeys("P"), key.WithHelp("P", "properties")),
		Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Vertices, k.LineDraw, k.ShapeDraw, k.Undo, k.Files, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Vertices, k.Toggle, k.SelectAll, k.Cancel, k.Nudge},
		{k.LineDraw, k.ShapeDraw, k.ShapeKind, k.LockRatio, k.Centered, k.Accept, k.Backspace},
		{k.GridSnap, k.Undo, k.Redo, k.ZoomIn, k.Pan, k.Fit},
		{k.Files, k.Paste, k.Props, k.Help, k.Quit},
	}
}
