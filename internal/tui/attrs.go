package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"

	"gopolar/internal/polar"
)

// refreshTickAttrs rebuilds the table with one row per tick descriptor:
// label, angle, anchor and tick line endpoints for the current layout.
func (m *Model) refreshTickAttrs() {
	ticks := m.ticks()
	chartW, chartH := m.chartSize()
	cx, cy, radius, ok := m.chartGeometry(chartW, chartH)
	if len(ticks) == 0 || !ok {
		m.showAttrs = false
		m.status = "no ticks for current dataset"
		return
	}
	axis := polar.Build(ticks, m.axisConfig(cx, cy, radius, nil))

	tcols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "label", Width: 14},
		{Title: "angle", Width: 8},
		{Title: "anchor", Width: 8},
		{Title: "tick end", Width: 12},
		{Title: "label pos", Width: 12},
	}
	trows := make([]table.Row, 0, len(axis.Ticks))
	for i, tr := range axis.Ticks {
		lineCoords := "-"
		if tr.Line != nil {
			lineCoords = fmt.Sprintf("%.0f,%.0f", tr.Line.X2, tr.Line.Y2)
		}
		trows = append(trows, table.Row{
			fmt.Sprintf("%d", tr.Index+1),
			tr.Value,
			fmt.Sprintf("%.1f°", ticks[i].Coordinate),
			string(tr.LabelAnchor),
			lineCoords,
			fmt.Sprintf("%.0f,%.0f", tr.LabelPos.X, tr.LabelPos.Y),
		})
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(tcols)
	m.tbl.SetRows(trows)
}
