package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	// Layout sizes
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

	// Update list size with accurate content height when sidebar visible
	if m.showSidebar {
		m.l.SetSize(28-2, contentHeight-2)
	}

	// Header
	header := titleStyle.Render(" polarchart ─ terminal radar charts ")
	header = lipgloss.NewStyle().Width(contentWidth).Padding(0).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
	}

	// Chart viewport
	chartWidth := contentWidth - sidebarWidth - 1
	if chartWidth < 10 {
		chartWidth = 10
	}
	chartHeight := contentHeight
	canvasW := max(8, chartWidth)
	canvasH := max(4, chartHeight)
	var chartView string
	if m.showAttrs {
		// Render the tick attribute table centered in the chart area
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		if colW == 0 {
			colW = min(60, contentWidth-6)
		}
		maxW := min(chartWidth, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(chartHeight-2, 20))
		attrsBox := boxStyle.Width(maxW).Render(m.tbl.View())
		chartView = lipgloss.Place(chartWidth, chartHeight, lipgloss.Center, lipgloss.Center, attrsBox)
	} else {
		var canvas string
		if m.pasteMode {
			// size textarea to the chart area
			m.ta.SetWidth(canvasW)
			m.ta.SetHeight(min(canvasH, 12))
			canvas = m.ta.View()
		} else {
			canvas = m.renderChart(canvasW, canvasH)
		}
		chartView = lipgloss.NewStyle().Width(chartWidth).Height(chartHeight).Render(canvas)
	}

	// Inspect popup (center-left overlay)
	popup := ""
	if m.inspectPopup != "" && !m.showAttrs {
		maxPopupW := min(48, contentWidth/2)
		if maxPopupW < 20 {
			maxPopupW = 20
		}
		box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).MaxWidth(maxPopupW).Render(m.inspectPopup)
		popup = lipgloss.Place(contentWidth, contentHeight, lipgloss.Left, lipgloss.Center, box)
	}

	// Body row
	var body string
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", chartView)
	} else {
		body = chartView
	}

	// Footer / help
	help := m.renderHelp()
	status := dimStyle.Render(" " + m.status + " ")
	// hover angle at bottom-right
	coords := ""
	if m.hovering && m.hoverHasAngle {
		coords = dimStyle.Render(fmt.Sprintf("  angle=%.1f°  ", m.hoverAngle))
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, help)
	spacerW := max(0, contentWidth-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	footer := lipgloss.NewStyle().Width(contentWidth).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	// Compose UI with popup overlay between header and body
	ui := lipgloss.JoinVertical(lipgloss.Left, header, popup, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"←→ rotate",
		"↑↓ tick size",
		"+/- zoom",
		"o orient",
		"c circle/poly",
		"t ticks",
		"l labels",
		"1-9 series",
		"Tab files",
		"p paste",
		"a attrs",
		"i inspect",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
