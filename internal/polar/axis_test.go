package polar

import (
	"math"
	"reflect"
	"testing"
)

const tol = 1e-9

func almostEqual(a, b float64) bool { return math.Abs(a-b) <= tol }

func pointsClose(a, b Point) bool { return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y) }

func TestToCartesianConvention(t *testing.T) {
	tests := []struct {
		name     string
		angle    float64
		want     Point
	}{
		{name: "zero degrees points along +x", angle: 0, want: Point{X: 10, Y: 0}},
		{name: "90 degrees points up on screen", angle: 90, want: Point{X: 0, Y: -10}},
		{name: "180 degrees points along -x", angle: 180, want: Point{X: -10, Y: 0}},
		{name: "270 degrees points down on screen", angle: 270, want: Point{X: 0, Y: 10}},
		{name: "angles above 360 wrap through trig", angle: 450, want: Point{X: 0, Y: -10}},
		{name: "negative angles are accepted", angle: -90, want: Point{X: 0, Y: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToCartesian(0, 0, 10, tt.angle)
			if !pointsClose(got, tt.want) {
				t.Fatalf("ToCartesian(0,0,10,%v) = %+v, want %+v", tt.angle, got, tt.want)
			}
		})
	}
}

func TestToCartesianOffCenter(t *testing.T) {
	got := ToCartesian(5, -3, 2, 0)
	if !pointsClose(got, Point{X: 7, Y: -3}) {
		t.Fatalf("ToCartesian(5,-3,2,0) = %+v, want {7 -3}", got)
	}
}

func TestTickLineOffsetSign(t *testing.T) {
	tick := Tick{Coordinate: 0, Value: "a"}
	base := AxisConfig{CX: 0, CY: 0, Radius: 100, TickSize: 8}

	outer := base
	outer.Orientation = OrientOuter
	got := TickLine(tick, outer)
	want := LineCoord{X1: 100, Y1: 0, X2: 108, Y2: 0}
	if !almostEqual(got.X1, want.X1) || !almostEqual(got.Y1, want.Y1) ||
		!almostEqual(got.X2, want.X2) || !almostEqual(got.Y2, want.Y2) {
		t.Fatalf("outer tick line = %+v, want %+v", got, want)
	}

	inner := base
	inner.Orientation = OrientInner
	got = TickLine(tick, inner)
	if !almostEqual(got.X2, 92) || !almostEqual(got.Y2, 0) {
		t.Fatalf("inner tick line outer endpoint = (%v,%v), want (92,0)", got.X2, got.Y2)
	}
	// the on-circle endpoint does not move with orientation
	if !almostEqual(got.X1, 100) || !almostEqual(got.Y1, 0) {
		t.Fatalf("inner tick line on-circle endpoint = (%v,%v), want (100,0)", got.X1, got.Y1)
	}
}

func TestTickLineDefaults(t *testing.T) {
	// zero TickSize and empty orientation fall back to 8 / outer
	got := TickLine(Tick{Coordinate: 0}, AxisConfig{Radius: 100})
	if !almostEqual(got.X2, 108) {
		t.Fatalf("default tick size endpoint X2 = %v, want 108", got.X2)
	}
}

func TestTickLineNegativeSizePassesThrough(t *testing.T) {
	got := TickLine(Tick{Coordinate: 0}, AxisConfig{Radius: 100, TickSize: -5, Orientation: OrientOuter})
	if !almostEqual(got.X2, 95) {
		t.Fatalf("negative tick size endpoint X2 = %v, want 95", got.X2)
	}
}

func TestAnchorPolicy(t *testing.T) {
	tests := []struct {
		name   string
		angle  float64
		orient Orientation
		want   TextAnchor
	}{
		{name: "right half outer starts", angle: 30, orient: OrientOuter, want: AnchorStart},
		{name: "mirror below x-axis keeps the same anchor", angle: 330, orient: OrientOuter, want: AnchorStart},
		{name: "left half outer ends", angle: 150, orient: OrientOuter, want: AnchorEnd},
		{name: "top is centered", angle: 90, orient: OrientOuter, want: AnchorMiddle},
		{name: "bottom is centered", angle: 270, orient: OrientOuter, want: AnchorMiddle},
		{name: "right half inner ends", angle: 30, orient: OrientInner, want: AnchorEnd},
		{name: "left half inner starts", angle: 150, orient: OrientInner, want: AnchorStart},
		{name: "top inner is still centered", angle: 90, orient: OrientInner, want: AnchorMiddle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnchorFor(Tick{Coordinate: tt.angle}, tt.orient)
			if got != tt.want {
				t.Fatalf("AnchorFor(%v, %s) = %s, want %s", tt.angle, tt.orient, got, tt.want)
			}
		})
	}
}

func TestAnchorEpsilonNearVertical(t *testing.T) {
	// a hair off 90 degrees still lands inside the epsilon band
	if got := AnchorFor(Tick{Coordinate: 90.0000001}, OrientOuter); got != AnchorMiddle {
		t.Fatalf("anchor just past 90 = %s, want middle", got)
	}
	// well outside the band it resolves normally
	if got := AnchorFor(Tick{Coordinate: 89.9}, OrientOuter); got != AnchorStart {
		t.Fatalf("anchor at 89.9 = %s, want start", got)
	}
}

func TestBuildAxisLinePolygonOrder(t *testing.T) {
	ticks := []Tick{{Coordinate: 0}, {Coordinate: 90}, {Coordinate: 180}}
	shape := BuildAxisLine(ticks, 0, 0, 10, LinePolygon)
	if shape.Kind != LinePolygon {
		t.Fatalf("kind = %s, want polygon", shape.Kind)
	}
	want := []Point{{X: 10, Y: 0}, {X: 0, Y: -10}, {X: -10, Y: 0}}
	if len(shape.Points) != len(want) {
		t.Fatalf("got %d points, want %d", len(shape.Points), len(want))
	}
	for i := range want {
		if !pointsClose(shape.Points[i], want[i]) {
			t.Fatalf("point %d = %+v, want %+v", i, shape.Points[i], want[i])
		}
	}
}

func TestBuildAxisLinePolygonKeepsDuplicates(t *testing.T) {
	ticks := []Tick{{Coordinate: 45}, {Coordinate: 45}}
	shape := BuildAxisLine(ticks, 0, 0, 10, LinePolygon)
	if len(shape.Points) != 2 {
		t.Fatalf("duplicate ticks must not be deduplicated: got %d points", len(shape.Points))
	}
}

func TestBuildAxisLineEmptyTicks(t *testing.T) {
	shape := BuildAxisLine(nil, 0, 0, 10, LinePolygon)
	if len(shape.Points) != 0 {
		t.Fatalf("empty ticks polygon has %d points, want 0", len(shape.Points))
	}
}

func TestBuildAxisLineCircleIgnoresTicks(t *testing.T) {
	want := AxisLineShape{Kind: LineCircle, Circle: Circle{CX: 3, CY: 4, R: 10}}
	for _, ticks := range [][]Tick{
		nil,
		{{Coordinate: 0}},
		{{Coordinate: 0}, {Coordinate: 120}, {Coordinate: 240}},
	} {
		got := BuildAxisLine(ticks, 3, 4, 10, LineCircle)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("circle shape with %d ticks = %+v, want %+v", len(ticks), got, want)
		}
	}
}

func TestBuildNoOpBoundary(t *testing.T) {
	ticks := []Tick{{Coordinate: 0, Value: "a"}, {Coordinate: 90, Value: "b"}}
	for _, radius := range []float64{0, -5} {
		axis := Build(ticks, AxisConfig{Radius: radius})
		if len(axis.Ticks) != 0 || axis.Line != nil {
			t.Fatalf("radius %v must render nothing, got %+v", radius, axis)
		}
	}
	if axis := Build(nil, AxisConfig{Radius: 100}); len(axis.Ticks) != 0 || axis.Line != nil {
		t.Fatalf("empty ticks must render nothing, got %+v", axis)
	}
}

func TestBuildDescriptors(t *testing.T) {
	ticks := []Tick{
		{Coordinate: 0, Value: "spd"},
		{Coordinate: 90, Value: "acc"},
	}
	axis := Build(ticks, AxisConfig{Radius: 100, TickSize: 8})
	if len(axis.Ticks) != 2 {
		t.Fatalf("got %d tick descriptors, want 2", len(axis.Ticks))
	}

	first := axis.Ticks[0]
	if first.Index != 0 || first.Value != "spd" {
		t.Fatalf("descriptor identity = (%d,%q), want (0,spd)", first.Index, first.Value)
	}
	if first.Line == nil {
		t.Fatal("tick line should be present by default")
	}
	if !pointsClose(first.LabelPos, Point{X: 108, Y: 0}) {
		t.Fatalf("label position = %+v, want the offset endpoint {108 0}", first.LabelPos)
	}
	if first.LabelAnchor != AnchorStart {
		t.Fatalf("anchor = %s, want start", first.LabelAnchor)
	}
	if first.Label == nil || first.Label.Text != "spd" {
		t.Fatalf("default label = %+v, want text spd", first.Label)
	}

	second := axis.Ticks[1]
	if second.LabelAnchor != AnchorMiddle {
		t.Fatalf("anchor at 90 = %s, want middle", second.LabelAnchor)
	}

	if axis.Line == nil || axis.Line.Kind != LinePolygon {
		t.Fatalf("axis line = %+v, want a polygon by default", axis.Line)
	}
	if len(axis.Line.Points) != 2 {
		t.Fatalf("axis polygon has %d vertices, want one per tick", len(axis.Line.Points))
	}
}

func TestBuildToggles(t *testing.T) {
	ticks := []Tick{{Coordinate: 0, Value: "a"}}
	axis := Build(ticks, AxisConfig{
		Radius:        100,
		HideAxisLine:  true,
		HideTickLines: true,
		HideLabels:    true,
	})
	if axis.Line != nil {
		t.Fatal("axis line should be hidden")
	}
	tr := axis.Ticks[0]
	if tr.Line != nil {
		t.Fatal("tick line should be hidden")
	}
	if tr.Label != nil {
		t.Fatal("label should be hidden")
	}
	// geometry is still computed for consumers that only need positions
	if !pointsClose(tr.LabelPos, Point{X: 108, Y: 0}) {
		t.Fatalf("label position = %+v, want {108 0}", tr.LabelPos)
	}
}

func TestBuildIdempotent(t *testing.T) {
	ticks := []Tick{{Coordinate: 15, Value: "a"}, {Coordinate: 195, Value: "b"}}
	cfg := AxisConfig{CX: 3, CY: 7, Radius: 42, Orientation: OrientInner, TickSize: 5}
	a := Build(ticks, cfg)
	b := Build(ticks, cfg)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("identical inputs must produce identical output")
	}
}
