package tui

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"gopolar/internal/applog"
	"gopolar/internal/polar"
	"gopolar/internal/series"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(28-2, m.height-1-2) // provisional; will be refined in View
		}
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			switch msg.String() {
			case "esc":
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			case "enter":
				text := strings.TrimSpace(m.ta.Value())
				if text == "" {
					m.status = "paste: empty"
					return m, nil
				}
				d, err := series.ParseInline(text)
				if err != nil {
					m.status = "paste error: " + err.Error()
					return m, nil
				}
				m.data = d
				m.hideSeries = map[int]bool{}
				m.selPath = ""
				m.zoom = 1.0
				m.status = fmt.Sprintf("rendered pasted data  categories=%d", len(d.Labels()))
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "o":
			if m.orientation == polar.OrientOuter {
				m.orientation = polar.OrientInner
			} else {
				m.orientation = polar.OrientOuter
			}
			m.status = "orientation: " + string(m.orientation)
		case "c":
			if m.axisKind == polar.LinePolygon {
				m.axisKind = polar.LineCircle
			} else {
				m.axisKind = polar.LinePolygon
			}
			m.status = "axis line: " + string(m.axisKind)
		case "x":
			m.showAxisLine = !m.showAxisLine
			m.status = fmt.Sprintf("axis line visible: %v", m.showAxisLine)
		case "t":
			m.showTickLines = !m.showTickLines
			m.status = fmt.Sprintf("tick lines: %v", m.showTickLines)
		case "l":
			m.showLabels = !m.showLabels
			m.status = fmt.Sprintf("labels: %v", m.showLabels)
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			n, _ := strconv.Atoi(msg.String())
			idx := n - 1
			if idx < len(m.data.Series) {
				m.hideSeries[idx] = !m.hideSeries[idx]
				m.status = fmt.Sprintf("series %q hidden: %v", m.data.Series[idx].Name, m.hideSeries[idx])
			}
		case "+", "=":
			if m.zoom < 4 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.2 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "left":
			m.startAngle += 10
			m.status = fmt.Sprintf("start angle: %.0f°", m.startAngle)
		case "right":
			m.startAngle -= 10
			m.status = fmt.Sprintf("start angle: %.0f°", m.startAngle)
		case "up":
			m.tickSize++
			m.status = fmt.Sprintf("tick size: %.0f", m.tickSize)
		case "down":
			m.tickSize--
			m.status = fmt.Sprintf("tick size: %.0f", m.tickSize)
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(28-2, m.height-1-2)
			}
		case "p":
			m.pasteMode = !m.pasteMode
			if m.pasteMode {
				m.ta.SetValue("")
				m.status = "paste mode"
				m.ta.Focus()
			} else {
				m.status = "view mode"
				m.ta.Blur()
			}
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showAttrs = !m.showAttrs
			if m.showAttrs {
				m.refreshTickAttrs()
			}
		case "i":
			m.inspectPopup = m.buildInspect()
			m.status = "inspect popup"
		case "esc":
			m.inspectPopup = ""
			m.showAttrs = false
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		}
	case tea.MouseMsg:
		// track hover over the chart area
		// compute chart origin and size (must match View layout)
		sidebarWidth := 0
		if m.showSidebar {
			sidebarWidth = 28
		}
		headerHeight := 1
		footerHeight := 2
		contentHeight := m.height - headerHeight - footerHeight
		if contentHeight < 4 {
			contentHeight = 4
		}
		contentWidth := max(10, m.width)

		if m.showSidebar {
			m.l.SetSize(28-2, contentHeight-2)
		}

		chartWidth := contentWidth - sidebarWidth - 1
		if chartWidth < 10 {
			chartWidth = 10
		}
		chartHeight := contentHeight
		chartOriginX := sidebarWidth
		if m.showSidebar {
			chartOriginX++
		}
		chartOriginY := headerHeight
		cx, cy := msg.X, msg.Y
		if cx >= chartOriginX && cx < chartOriginX+chartWidth && cy >= chartOriginY && cy < chartOriginY+chartHeight {
			m.hovering = true
			cellX := cx - chartOriginX
			cellY := cy - chartOriginY
			if a, ok := m.cellToAngle(cellX, cellY, chartWidth, chartHeight); ok {
				m.hoverHasAngle = true
				m.hoverAngle = a
			} else {
				m.hoverHasAngle = false
			}
			if idx, ok := m.nearestTick(cellX, cellY, chartWidth, chartHeight); ok {
				if idx != m.hoverTick {
					m.fireTickEvent("hover", idx, chartWidth, chartHeight)
				}
				m.hoverTick = idx
			} else {
				m.hoverTick = -1
			}
		} else {
			m.hovering = false
			m.hoverTick = -1
		}
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

// fireTickEvent rebuilds the axis with the interaction handlers attached
// and invokes the named handler bound to the given tick.
func (m *Model) fireTickEvent(name string, idx, w, h int) {
	cx, cy, radius, ok := m.chartGeometry(w, h)
	if !ok {
		return
	}
	events := polar.EventMap{
		"hover": func(t polar.Tick, i int) {
			m.status = fmt.Sprintf("tick %d: %s @ %.0f°", i, t.Value, t.Coordinate)
			applog.L().Debug("tick hover", "index", i, "value", t.Value)
		},
	}
	axis := polar.Build(m.ticks(), m.axisConfig(cx, cy, radius, events))
	if idx < 0 || idx >= len(axis.Ticks) {
		return
	}
	if fn := axis.Ticks[idx].Events[name]; fn != nil {
		fn()
	}
}

// buildInspect summarizes the current dataset and the hovered tick.
func (m Model) buildInspect() string {
	if len(m.data.Series) == 0 {
		return "no data loaded"
	}
	name := filepath.Base(m.selPath)
	if m.selPath == "" {
		name = "<pasted>"
	}
	labels := m.data.Labels()
	meta := []string{
		fmt.Sprintf("name: %s", name),
		fmt.Sprintf("series: %d", len(m.data.Series)),
		fmt.Sprintf("categories: %d", len(labels)),
		fmt.Sprintf("max value: %g", m.data.MaxValue),
		fmt.Sprintf("orientation: %s  axis: %s  tick size: %.0f", m.orientation, m.axisKind, m.tickSize),
	}
	if m.hoverTick >= 0 && m.hoverTick < len(labels) {
		ticks := m.ticks()
		t := ticks[m.hoverTick]
		meta = append(meta, fmt.Sprintf("nearest tick: %s @ %.1f°  anchor=%s",
			t.Value, t.Coordinate, polar.AnchorFor(t, m.orientation)))
	}
	return strings.Join(meta, "\n")
}
