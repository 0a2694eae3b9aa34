package tui

import (
	"os"

	"github.com/atotto/clipboard"
	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"sketchmap/internal/geom"
)

type dragMode int

const (
	dragNone dragMode = iota
	dragResize
	dragMove
	dragDraw
)

// dragState is the resize session: everything Resize needs is captured on
// press and reused for every motion event.
type dragState struct {
	mode        dragMode
	index       int
	handle      geom.Handle
	start       geom.Point
	startBounds geom.Bounds
	origin      geom.Shape
}

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	metrics geom.Metrics
	log     zerolog.Logger

	vp         viewport
	fitPending bool

	status string

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Data
	shapes   []geom.Shape
	selected int
	nextHue  int

	drag     dragState
	drawMode bool

	// pointer state for the footer
	hovering bool
	hoverPt  geom.Point
	cursor   geom.Cursor

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// shape table
	showAttrs bool
	tbl       table.Model

	palette palette

	newID    func() string
	copyText func(string) error
}

func New(metrics geom.Metrics, log zerolog.Logger) Model {
	m := Model{
		helpVisible: true,
		metrics:     metrics,
		log:         log,
		vp:          viewport{scale: 1},
		fitPending:  true,
		status:      "sketchmap ready",
		selected:    -1,
		cursor:      geom.CursorDefault,
		newID:       func() string { return ulid.Make().String() },
		copyText:    clipboard.WriteAll,
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste WKT here, one geometry per line. Press Enter to add; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.palette = newPalette()
	m.refreshDir()
	m.addShapes(demoShapes())
	return m
}

// NewWithPath preloads a file's shapes at launch.
func NewWithPath(metrics geom.Metrics, log zerolog.Logger, path string) Model {
	m := New(metrics, log)
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func demoShapes() []geom.Shape {
	return []geom.Shape{
		{Label: "note", Closed: true, Points: []geom.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 50}, {X: 0, Y: 50}}},
		{Label: "triangle", Closed: true, Points: []geom.Point{{X: 140, Y: 60}, {X: 190, Y: 0}, {X: 230, Y: 60}}},
		{Label: "scribble", Points: []geom.Point{
			{X: 10, Y: 90}, {X: 30, Y: 75}, {X: 50, Y: 95}, {X: 70, Y: 78}, {X: 90, Y: 96}, {X: 110, Y: 80},
		}},
	}
}

// addShapes appends src, giving every shape a unique id and a colour.
func (m *Model) addShapes(src []geom.Shape) {
	used := make(map[string]bool, len(m.shapes))
	for _, s := range m.shapes {
		used[s.ID] = true
	}
	for _, s := range src {
		if s.ID == "" || used[s.ID] {
			s.ID = m.newID()
		}
		used[s.ID] = true
		if s.Color == "" {
			s.Color = shapeColors[m.nextHue%len(shapeColors)]
			m.nextHue++
		}
		m.shapes = append(m.shapes, s)
	}
}

// selectedShape returns the selected shape and its bounds, if any.
func (m Model) selectedShape() (geom.Shape, geom.Bounds, bool) {
	if m.selected < 0 || m.selected >= len(m.shapes) {
		return geom.Shape{}, geom.Bounds{}, false
	}
	s := m.shapes[m.selected]
	b, ok := geom.ComputeBounds(s)
	return s, b, ok
}
