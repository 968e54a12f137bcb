package tui

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"gopolar/internal/config"
	"gopolar/internal/polar"
	"gopolar/internal/series"
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	cfg config.AppConfig

	// chart view state, seeded from cfg and toggled at runtime
	orientation   polar.Orientation
	axisKind      polar.AxisLineKind
	tickSize      float64
	startAngle    float64
	zoom          float64
	showAxisLine  bool
	showTickLines bool
	showLabels    bool

	status string

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Data
	data       series.Data
	hideSeries map[int]bool

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// inspect popup
	inspectPopup string

	// hover state
	hovering      bool
	hoverHasAngle bool
	hoverAngle    float64
	hoverTick     int // nearest tick index, -1 when none

	// attributes table
	showAttrs bool
	tbl       table.Model
}

func New(cfg config.AppConfig) Model {
	m := Model{
		showSidebar: false,
		helpVisible: true,
		cfg:         cfg,
		tickSize:    cfg.Chart.TickSize,
		startAngle:  cfg.Chart.StartAngle,
		zoom:        1.0,
		status:      "polarchart ready",
		hideSeries:  map[int]bool{},
		hoverTick:   -1,
	}
	m.orientation = polar.OrientOuter
	if cfg.Chart.Orientation == string(polar.OrientInner) {
		m.orientation = polar.OrientInner
	}
	m.axisKind = polar.LinePolygon
	if cfg.Chart.AxisLine == string(polar.LineCircle) {
		m.axisKind = polar.LineCircle
	}
	m.showAxisLine = cfg.Chart.ShowAxisLine
	m.showTickLines = cfg.Chart.ShowTickLines
	m.showLabels = cfg.Chart.ShowLabels

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
	m.ta.Placeholder = "Paste data here, one \"label,value\" per line. Press Enter to render; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// attributes table setup (one row per tick)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath preloads a file's data at launch.
func NewWithPath(cfg config.AppConfig, path string) Model {
	m := New(cfg)
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// axisConfig assembles the layout configuration for the current chart
// area. The line and label styles are layered over the base foreground.
func (m Model) axisConfig(cx, cy, radius float64, events polar.EventMap) polar.AxisConfig {
	dim := m.cfg.Style.Dim
	accent := m.cfg.Style.Accent
	bold := true
	return polar.AxisConfig{
		CX:            cx,
		CY:            cy,
		Radius:        radius,
		Orientation:   m.orientation,
		TickSize:      m.tickSize,
		AxisLineKind:  m.axisKind,
		HideAxisLine:  !m.showAxisLine,
		HideTickLines: !m.showTickLines,
		HideLabels:    !m.showLabels,
		Base:          polar.Style{Foreground: m.cfg.Style.Foreground},
		LineStyle:     []polar.StyleOverride{{Foreground: &dim}},
		LabelStyle:    []polar.StyleOverride{{Foreground: &accent, Bold: &bold}},
		Events:        events,
	}
}

// ticks produces the angle-axis tick list for the current data.
func (m Model) ticks() []polar.Tick {
	return series.AngleTicks(m.data.Labels(), m.startAngle)
}
