package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"sketchmap/internal/geom"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

var importExts = map[string]bool{".wkt": true, ".geojson": true, ".json": true, ".csv": true, ".kml": true}

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if importExts[ext] {
			items = append(items, fileItem{title: name, desc: ext, path: filepath.Join(m.cwd, name)})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).title < items[j].(fileItem).title })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no importable files in current directory"
	}
}

// readShapes dispatches on the file extension.
func readShapes(p string) ([]geom.Shape, error) {
	switch ext := strings.ToLower(filepath.Ext(p)); ext {
	case ".geojson", ".json":
		return geom.LoadGeoJSON(p)
	case ".csv":
		return geom.LoadCSV(p)
	case ".kml":
		return geom.LoadKML(p)
	case ".wkt":
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, err
		}
		return geom.ParseWKT(string(data))
	default:
		return nil, fmt.Errorf("unsupported file type %q", ext)
	}
}

// loadPath replaces the canvas with the shapes in p.
func (m *Model) loadPath(p string) {
	shapes, err := readShapes(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		m.log.Error().Err(err).Str("path", p).Msg("load failed")
		return
	}
	m.selPath = p
	m.shapes = nil
	m.selected = -1
	m.drag = dragState{}
	m.addShapes(shapes)
	m.fitView()
	m.status = fmt.Sprintf("loaded: %s  shapes=%d", filepath.Base(p), len(m.shapes))
	m.log.Info().Str("path", p).Int("shapes", len(m.shapes)).Msg("loaded")
	if m.showAttrs {
		m.refreshShapeTable()
	}
}
