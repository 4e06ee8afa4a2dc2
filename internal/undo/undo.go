// Package undo records named undo levels as snapshots of an editable target.
//
// Levels are not reentrant: Begin while a level is open, or End without one,
// is a programming error and panics.
package undo

import (
	"fmt"
	"log"
)

// Target is anything that can be captured and put back.
type Target[S any] interface {
	Snapshot() S
	Restore(S)
}

type level[S any] struct {
	name   string
	before S
	after  S
}

type Manager[S any] struct {
	target Target[S]
	levels []level[S]
	pos    int // levels[:pos] can be undone

	open    *level[S]
	merging bool
	marker  string
}

func New[S any](t Target[S]) *Manager[S] {
	return &Manager[S]{target: t}
}

func must(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("undo: "+format, args...))
	}
}

// Begin opens a new level named name.
func (m *Manager[S]) Begin(name string) {
	must(m.open == nil, "Begin(%q) while %q is open", name, m.openName())
	m.open = &level[S]{name: name, before: m.target.Snapshot()}
	m.merging = false
}

// BeginMerge opens a level, folding it into the previous one when that
// level has the same name and the marker has not been reset since.
func (m *Manager[S]) BeginMerge(name string) {
	if m.marker == name && m.pos > 0 && m.pos == len(m.levels) && m.levels[m.pos-1].name == name {
		must(m.open == nil, "BeginMerge(%q) while %q is open", name, m.openName())
		prev := m.levels[m.pos-1]
		m.levels = m.levels[:m.pos-1]
		m.pos--
		m.open = &prev
		m.merging = true
		return
	}
	m.Begin(name)
}

// End closes the open level. On failure the target is rolled back and no
// level is recorded.
func (m *Manager[S]) End(success bool) {
	must(m.open != nil, "End without Begin")
	lv := *m.open
	m.open = nil
	if !success {
		if m.merging {
			m.target.Restore(lv.after)
			m.push(lv)
		} else {
			m.target.Restore(lv.before)
		}
		m.merging = false
		return
	}
	lv.after = m.target.Snapshot()
	m.push(lv)
	m.merging = false
	m.marker = lv.name
	log.Printf("undo: recorded %q (%d levels)", lv.name, len(m.levels))
}

func (m *Manager[S]) push(lv level[S]) {
	m.levels = append(m.levels[:m.pos], lv)
	m.pos = len(m.levels)
}

func (m *Manager[S]) openName() string {
	if m.open == nil {
		return ""
	}
	return m.open.name
}

// InProgress reports whether a level is open.
func (m *Manager[S]) InProgress() bool { return m.open != nil }

// ResetMarker stops the next BeginMerge from folding into the last level.
func (m *Manager[S]) ResetMarker() { m.marker = "" }

// Marker is the name of the last recorded level, if still mergeable.
func (m *Manager[S]) Marker() string { return m.marker }

func (m *Manager[S]) CanUndo() bool { return m.pos > 0 }
func (m *Manager[S]) CanRedo() bool { return m.pos < len(m.levels) }

// Undo reverts the last level and returns its name.
func (m *Manager[S]) Undo() (string, bool) {
	if m.open != nil || !m.CanUndo() {
		return "", false
	}
	m.pos--
	m.target.Restore(m.levels[m.pos].before)
	m.marker = ""
	return m.levels[m.pos].name, true
}

func (m *Manager[S]) Redo() (string, bool) {
	if m.open != nil || !m.CanRedo() {
		return "", false
	}
	m.target.Restore(m.levels[m.pos].after)
	m.pos++
	m.marker = ""
	return m.levels[m.pos-1].name, true
}

// Names lists the recorded levels, oldest first.
func (m *Manager[S]) Names() []string {
	out := make([]string, len(m.levels))
	for i, lv := range m.levels {
		out[i] = lv.name
	}
	return out
}
