package tui

import (
	"math"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"gopolar/internal/polar"
	"gopolar/internal/series"
)

// label gutters keep tick labels inside the chart area (micro units);
// the tick size is added on top so the label row never leaves the canvas.
const (
	gutterXMic = 20
	gutterYMic = 4
)

// chartSize computes the chart viewport in cells from the window size,
// mirroring the View layout.
func (m Model) chartSize() (w, h int) {
	sidebarWidth := 0
	if m.showSidebar {
		sidebarWidth = 28
	}
	contentHeight := m.height - 3 // header + footer
	if contentHeight < 4 {
		contentHeight = 4
	}
	contentWidth := max(10, m.width)
	w = contentWidth - sidebarWidth - 1
	if w < 10 {
		w = 10
	}
	return w, contentHeight
}

// chartGeometry computes the chart center and radius in micro coords for
// a w x h cell area. ok is false when the area is too small to draw.
func (m Model) chartGeometry(w, h int) (cx, cy, radius float64, ok bool) {
	if w < 8 || h < 4 {
		return 0, 0, 0, false
	}
	wMic := float64(w * 2)
	hMic := float64(h * 4)
	cx = wMic / 2
	cy = hMic / 2
	radius = (min(cx-gutterXMic, cy-gutterYMic) - m.tickSize) * m.zoom
	if radius <= 0 {
		return 0, 0, 0, false
	}
	return cx, cy, radius, true
}

// labelSpan is one piece of styled text placed over the braille canvas.
type labelSpan struct {
	col   int
	text  string
	style lipgloss.Style
}

func (m Model) renderChart(w, h int) string {
	ticks := m.ticks()
	if len(ticks) == 0 {
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center,
			dimStyle.Render("no data ─ Tab to browse files, p to paste"))
	}
	cx, cy, radius, ok := m.chartGeometry(w, h)
	if !ok {
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center,
			dimStyle.Render("window too small"))
	}

	axis := polar.Build(ticks, m.axisConfig(cx, cy, radius, nil))

	br := newBrailleBuf(w, h)

	// Axis line
	if axis.Line != nil {
		switch axis.Line.Kind {
		case polar.LineCircle:
			c := axis.Line.Circle
			br.drawCircleMicro(int(math.Round(c.CX)), int(math.Round(c.CY)), int(math.Round(c.R)))
		case polar.LinePolygon:
			pts := make([][2]int, 0, len(axis.Line.Points))
			for _, p := range axis.Line.Points {
				pts = append(pts, [2]int{int(math.Round(p.X)), int(math.Round(p.Y))})
			}
			br.drawPolyMicro(pts)
		}
	}

	// Tick lines
	for _, tr := range axis.Ticks {
		if tr.Line == nil {
			continue
		}
		br.drawLineMicro(
			int(math.Round(tr.Line.X1)), int(math.Round(tr.Line.Y1)),
			int(math.Round(tr.Line.X2)), int(math.Round(tr.Line.Y2)))
	}

	// Data polygons, one ring per visible series
	scale := series.RadiusScale{Max: m.data.MaxValue, Radius: radius}
	for si, s := range m.data.Series {
		if m.hideSeries[si] {
			continue
		}
		pts := make([][2]int, 0, len(ticks))
		for i, tick := range ticks {
			if i >= len(s.Points) {
				break
			}
			p := scale.PointFor(cx, cy, tick, s.Points[i].Value)
			pts = append(pts, [2]int{int(math.Round(p.X)), int(math.Round(p.Y))})
		}
		br.drawPolyMicro(pts)
	}

	// Labels and overlays, placed in cell coords over the braille canvas
	spans := map[int][]labelSpan{}
	if m.showLabels {
		for _, tr := range axis.Ticks {
			if tr.Label == nil || tr.Label.Text == "" {
				continue
			}
			row := int(math.Round(tr.LabelPos.Y)) / 4
			col := int(math.Round(tr.LabelPos.X)) / 2
			n := len([]rune(tr.Label.Text))
			switch tr.LabelAnchor {
			case polar.AnchorStart:
				col++
			case polar.AnchorEnd:
				col -= n
			case polar.AnchorMiddle:
				col -= n / 2
			}
			spans[row] = append(spans[row], labelSpan{col: col, text: tr.Label.Text, style: lipglossFor(tr.Label.Style)})
		}
	}
	// hover marker at the hovered tick's on-circle point
	if m.hovering && m.hoverTick >= 0 && m.hoverTick < len(axis.Ticks) {
		p := polar.ToCartesian(cx, cy, radius, ticks[m.hoverTick].Coordinate)
		row := int(math.Round(p.Y)) / 4
		col := int(math.Round(p.X)) / 2
		spans[row] = append(spans[row], labelSpan{col: col, text: "◉", style: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))})
	}
	// series legend in the top-left corner
	for si, s := range m.data.Series {
		if si >= h {
			break
		}
		marker := "■ "
		if m.hideSeries[si] {
			marker = "□ "
		}
		spans[si] = append(spans[si], labelSpan{col: 0, text: marker + s.Name, style: lipgloss.NewStyle().Foreground(m.seriesColor(si))})
	}

	base := br.toLines()
	lines := make([]string, h)
	for y := 0; y < h; y++ {
		var row string
		if y < len(base) {
			row = base[y]
		}
		lines[y] = spliceSpans(row, w, spans[y])
	}

	out := ""
	for y := 0; y < h; y++ {
		if y > 0 {
			out += "\n"
		}
		out += lines[y]
	}
	return out
}

// spliceSpans lays styled spans over a plain row, left to right. Spans
// are clipped to the row; overlapping spans keep the leftmost text.
func spliceSpans(row string, w int, spans []labelSpan) string {
	r := []rune(row)
	for len(r) < w {
		r = append(r, ' ')
	}
	if len(spans) == 0 {
		return string(r[:w])
	}
	sort.SliceStable(spans, func(i, j int) bool { return spans[i].col < spans[j].col })
	out := ""
	cursor := 0
	for _, sp := range spans {
		text := []rune(sp.text)
		col := sp.col
		if col < cursor {
			trim := cursor - col
			if trim >= len(text) {
				continue
			}
			text = text[trim:]
			col = cursor
		}
		if col >= w {
			break
		}
		if col+len(text) > w {
			text = text[:w-col]
		}
		out += string(r[cursor:col])
		out += sp.style.Render(string(text))
		cursor = col + len(text)
	}
	if cursor < w {
		out += string(r[cursor:w])
	}
	return out
}

// cellToAngle converts a chart cell back to the angle under the cursor.
func (m Model) cellToAngle(cellX, cellY, w, h int) (float64, bool) {
	cx, cy, _, ok := m.chartGeometry(w, h)
	if !ok {
		return 0, false
	}
	dx := float64(cellX*2) + 0.5 - cx
	dy := float64(cellY*4) + 1.5 - cy
	if dx == 0 && dy == 0 {
		return 0, false
	}
	a := math.Atan2(-dy, dx) * 180 / math.Pi
	return math.Mod(a+360, 360), true
}

// nearestTick finds the tick whose label position is closest to a chart
// cell, in micro coords.
func (m Model) nearestTick(cellX, cellY, w, h int) (int, bool) {
	ticks := m.ticks()
	cx, cy, radius, ok := m.chartGeometry(w, h)
	if len(ticks) == 0 || !ok {
		return 0, false
	}
	axis := polar.Build(ticks, m.axisConfig(cx, cy, radius, nil))
	hx := float64(cellX * 2)
	hy := float64(cellY * 4)
	best := -1
	bestD := math.MaxFloat64
	for i, tr := range axis.Ticks {
		dx := tr.LabelPos.X - hx
		dy := tr.LabelPos.Y - hy
		d := dx*dx + dy*dy
		if d < bestD {
			bestD = d
			best = i
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}
