package polar

import "math"

// anchorEpsilon keeps labels sitting almost exactly on the vertical
// meridian from flipping between start and end on floating point noise.
const anchorEpsilon = 1e-5

// ToCartesian maps a polar coordinate to a screen position. Angles are in
// degrees, 0 along +x, growing clockwise on screen (y down), so the angle
// is negated before the trig calls.
func ToCartesian(cx, cy, radius, angleDeg float64) Point {
	rad := -angleDeg * math.Pi / 180
	return Point{
		X: cx + radius*math.Cos(rad),
		Y: cy + radius*math.Sin(rad),
	}
}

func (c AxisConfig) withDefaults() AxisConfig {
	if c.Orientation == "" {
		c.Orientation = OrientOuter
	}
	if c.TickSize == 0 {
		c.TickSize = DefaultTickSize
	}
	if c.AxisLineKind == "" {
		c.AxisLineKind = LinePolygon
	}
	return c
}

// TickLine computes the radial tick line for one tick. Negative tick
// sizes are passed through untouched; the result is just mirrored.
func TickLine(t Tick, cfg AxisConfig) LineCoord {
	cfg = cfg.withDefaults()
	sign := 1.0
	if cfg.Orientation == OrientInner {
		sign = -1
	}
	p1 := ToCartesian(cfg.CX, cfg.CY, cfg.Radius, t.Coordinate)
	p2 := ToCartesian(cfg.CX, cfg.CY, cfg.Radius+sign*cfg.TickSize, t.Coordinate)
	return LineCoord{X1: p1.X, Y1: p1.Y, X2: p2.X, Y2: p2.Y}
}

// AnchorFor decides label alignment so text reads naturally around the
// circle: right half starts at the tick point, left half ends there, and
// the vertical meridian centers.
func AnchorFor(t Tick, o Orientation) TextAnchor {
	c := math.Cos(-t.Coordinate * math.Pi / 180)
	switch {
	case c > anchorEpsilon:
		if o == OrientInner {
			return AnchorEnd
		}
		return AnchorStart
	case c < -anchorEpsilon:
		if o == OrientInner {
			return AnchorStart
		}
		return AnchorEnd
	}
	return AnchorMiddle
}

// BuildAxisLine produces the axis line shape. Circle kind ignores the
// ticks entirely; polygon kind emits one vertex per tick in input order
// without closing the ring.
func BuildAxisLine(ticks []Tick, cx, cy, radius float64, kind AxisLineKind) AxisLineShape {
	if kind == LineCircle {
		return AxisLineShape{Kind: LineCircle, Circle: Circle{CX: cx, CY: cy, R: radius}}
	}
	pts := make([]Point, 0, len(ticks))
	for _, t := range ticks {
		pts = append(pts, ToCartesian(cx, cy, radius, t.Coordinate))
	}
	return AxisLineShape{Kind: LinePolygon, Points: pts}
}

// Build assembles the renderable description of a whole angle axis in a
// single pass over the ticks. A non-positive radius or an empty tick list
// yields the zero Axis: render nothing, by contract rather than by error.
func Build(ticks []Tick, cfg AxisConfig) Axis {
	if cfg.Radius <= 0 || len(ticks) == 0 {
		return Axis{}
	}
	cfg = cfg.withDefaults()

	lineStyle := MergeStyles(cfg.Base, cfg.LineStyle...)
	labelStyle := MergeStyles(cfg.Base, cfg.LabelStyle...)

	out := Axis{
		Ticks:     make([]TickRender, 0, len(ticks)),
		LineStyle: lineStyle,
	}
	for i, t := range ticks {
		line := TickLine(t, cfg)
		tr := TickRender{
			Index:       i,
			Value:       t.Value,
			LabelPos:    Point{X: line.X2, Y: line.Y2},
			LabelAnchor: AnchorFor(t, cfg.Orientation),
			Events:      cfg.Events.bind(t, i),
		}
		if !cfg.HideTickLines {
			l := line
			tr.Line = &l
		}
		if !cfg.HideLabels {
			lbl := cfg.Label.resolve(LabelProps{
				Index:      i,
				Value:      t.Value,
				Coordinate: t.Coordinate,
				Anchor:     tr.LabelAnchor,
				Position:   tr.LabelPos,
			}, labelStyle)
			tr.Label = &lbl
		}
		out.Ticks = append(out.Ticks, tr)
	}
	if !cfg.HideAxisLine {
		shape := BuildAxisLine(ticks, cfg.CX, cfg.CY, cfg.Radius, cfg.AxisLineKind)
		out.Line = &shape
	}
	return out
}
