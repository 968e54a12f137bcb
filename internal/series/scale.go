package series

import "gopolar/internal/polar"

// AngleTicks spreads category labels evenly around the circle starting at
// startAngle: category i sits at startAngle + i*360/n. No labels, no ticks.
func AngleTicks(labels []string, startAngle float64) []polar.Tick {
	n := len(labels)
	if n == 0 {
		return nil
	}
	step := 360.0 / float64(n)
	ticks := make([]polar.Tick, 0, n)
	for i, l := range labels {
		ticks = append(ticks, polar.Tick{Coordinate: startAngle + float64(i)*step, Value: l})
	}
	return ticks
}

// RadiusScale maps data values onto radial distance from the chart center.
type RadiusScale struct {
	Max    float64
	Radius float64
}

// Distance returns the radial distance for a value, clamped to [0, Max].
// A degenerate scale collapses everything onto the center.
func (s RadiusScale) Distance(v float64) float64 {
	if s.Max <= 0 || s.Radius <= 0 {
		return 0
	}
	if v < 0 {
		v = 0
	}
	if v > s.Max {
		v = s.Max
	}
	return v / s.Max * s.Radius
}

// PointFor places one data value on its category's angle.
func (s RadiusScale) PointFor(cx, cy float64, t polar.Tick, v float64) polar.Point {
	return polar.ToCartesian(cx, cy, s.Distance(v), t.Coordinate)
}
