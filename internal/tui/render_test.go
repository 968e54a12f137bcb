package tui

import (
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"gopolar/internal/config"
	"gopolar/internal/polar"
	"gopolar/internal/series"
)

func testModel(t *testing.T) Model {
	t.Helper()
	m := New(config.Defaults())
	m.width = 80
	m.height = 24
	d, err := series.ParseInline("speed,10\npower,6\nrange,8\nagility,4")
	if err != nil {
		t.Fatal(err)
	}
	m.data = d
	return m
}

func TestBrailleSetPixelBits(t *testing.T) {
	b := newBrailleBuf(2, 2)
	b.setPixel(0, 0)
	if b.m[0][0] != 0x01 {
		t.Fatalf("top-left dot mask = %#x, want 0x01", b.m[0][0])
	}
	b.setPixel(1, 3)
	if b.m[0][0] != 0x01|0x80 {
		t.Fatalf("mask = %#x, want 0x81", b.m[0][0])
	}
	// out of range is ignored
	b.setPixel(-1, 0)
	b.setPixel(100, 100)
}

func TestBrailleToLines(t *testing.T) {
	b := newBrailleBuf(3, 1)
	b.setPixel(0, 0)
	lines := b.toLines()
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	r := []rune(lines[0])
	if r[0] != rune(0x2801) {
		t.Fatalf("cell rune = %U, want U+2801", r[0])
	}
	if r[1] != ' ' || r[2] != ' ' {
		t.Fatal("empty cells must render as spaces")
	}
}

func TestBrailleCircleStaysOnRadius(t *testing.T) {
	b := newBrailleBuf(20, 10)
	b.drawCircleMicro(20, 20, 10)
	// every set micro pixel should be close to the radius
	for cy := 0; cy < b.h; cy++ {
		for cx := 0; cx < b.w; cx++ {
			mask := b.m[cy][cx]
			if mask == 0 {
				continue
			}
			// cell has at least one dot; its center distance is a coarse check
			dx := float64(cx*2) - 20
			dy := float64(cy*4) - 20
			d := math.Hypot(dx, dy)
			if d < 4 || d > 16 {
				t.Fatalf("circle dot in cell (%d,%d) at distance %.1f from center", cx, cy, d)
			}
		}
	}
}

func TestSpliceSpansPlacement(t *testing.T) {
	row := strings.Repeat(".", 10)
	got := spliceSpans(row, 10, []labelSpan{{col: 2, text: "ab", style: lipgloss.NewStyle()}})
	// an unstyled lipgloss style renders text unchanged
	if got != "..ab......" {
		t.Fatalf("spliced row = %q", got)
	}
}

func TestSpliceSpansClipping(t *testing.T) {
	row := strings.Repeat(".", 6)
	got := spliceSpans(row, 6, []labelSpan{
		{col: -1, text: "xy", style: lipgloss.NewStyle()},
		{col: 5, text: "long", style: lipgloss.NewStyle()},
	})
	if got != "y....l" {
		t.Fatalf("clipped row = %q", got)
	}
}

func TestSpliceSpansOverlapKeepsLeftmost(t *testing.T) {
	row := strings.Repeat(".", 8)
	got := spliceSpans(row, 8, []labelSpan{
		{col: 1, text: "abc", style: lipgloss.NewStyle()},
		{col: 2, text: "ZZZ", style: lipgloss.NewStyle()},
	})
	if got != ".abcZ..." {
		t.Fatalf("overlap row = %q", got)
	}
}

func TestChartGeometryTooSmall(t *testing.T) {
	m := testModel(t)
	if _, _, _, ok := m.chartGeometry(4, 2); ok {
		t.Fatal("tiny area should not produce a geometry")
	}
}

func TestCellToAngleQuadrants(t *testing.T) {
	m := testModel(t)
	w, h := 60, 20
	cx, cy, _, ok := m.chartGeometry(w, h)
	if !ok {
		t.Fatal("geometry not available")
	}
	// a cell to the right of center is near angle 0
	right := int(cx)/2 + 10
	a, ok := m.cellToAngle(right, int(cy)/4, w, h)
	if !ok {
		t.Fatal("angle not available")
	}
	if a > 20 && a < 340 {
		t.Fatalf("right of center angle = %.1f, want near 0", a)
	}
	// a cell above center is near 90 (clockwise screen convention)
	a, ok = m.cellToAngle(int(cx)/2, int(cy)/4-4, w, h)
	if !ok {
		t.Fatal("angle not available")
	}
	if math.Abs(a-90) > 20 {
		t.Fatalf("above center angle = %.1f, want near 90", a)
	}
}

func TestRenderChartNoData(t *testing.T) {
	m := New(config.Defaults())
	m.width = 80
	m.height = 24
	out := m.renderChart(60, 20)
	if !strings.Contains(out, "no data") {
		t.Fatal("empty dataset should render the placeholder")
	}
}

func TestRenderChartDrawsSomething(t *testing.T) {
	m := testModel(t)
	out := m.renderChart(60, 20)
	for _, label := range []string{"speed", "power", "range", "agility"} {
		if !strings.Contains(out, label) {
			t.Fatalf("label %q missing from chart output", label)
		}
	}
}

func TestNearestTickFindsHoveredCategory(t *testing.T) {
	m := testModel(t)
	w, h := 60, 20
	cx, cy, radius, ok := m.chartGeometry(w, h)
	if !ok {
		t.Fatal("geometry not available")
	}
	// hover right at the first tick's label position (start angle 90, top)
	ticks := m.ticks()
	p := polar.ToCartesian(cx, cy, radius+m.tickSize, ticks[0].Coordinate)
	idx, ok := m.nearestTick(int(p.X)/2, int(p.Y)/4, w, h)
	if !ok || idx != 0 {
		t.Fatalf("nearest tick = (%d,%v), want (0,true)", idx, ok)
	}
}
