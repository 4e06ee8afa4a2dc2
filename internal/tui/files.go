package tui

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"mapedit/internal/geom"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func importable(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".geojson", ".json", ".kml", ".wkt", ".csv":
		return true
	}
	return false
}

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.s.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !importable(name) {
			continue
		}
		items = append(items, fileItem{title: name, desc: strings.ToLower(filepath.Ext(name)), path: filepath.Join(m.cwd, name)})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.l.SetItems(items)
	if len(items) == 0 {
		m.s.status = "no importable files in current directory"
	}
}

// loadPath imports outlines (GeoJSON, KML, WKT) or things (CSV) into the map.
func (m *Model) loadPath(p string) {
	m.selPath = p
	name := "Import " + baseName(p)
	switch strings.ToLower(filepath.Ext(p)) {
	case ".geojson", ".json":
		d, err := geom.LoadGeo(p)
		if err != nil {
			m.s.status = "load error: " + err.Error()
			return
		}
		m.s.importData(name, d, nil)
	case ".kml":
		d, err := geom.LoadKML(p)
		if err != nil {
			m.s.status = "load error: " + err.Error()
			return
		}
		m.s.importData(name, d, nil)
	case ".csv":
		rows, err := geom.LoadThingsCSV(p)
		if err != nil {
			m.s.status = "load error: " + err.Error()
			return
		}
		m.s.importData(name, geom.Data{}, rows)
	case ".wkt":
		data, err := os.ReadFile(p)
		if err != nil {
			m.s.status = "load error: " + err.Error()
			return
		}
		d, err := geom.ParseWKT(string(data))
		if err != nil {
			m.s.status = "wkt error: " + err.Error()
			return
		}
		m.s.importData(name, d, nil)
	default:
		m.s.status = "unsupported file: " + filepath.Ext(p)
		return
	}
	m.fitView()
}
