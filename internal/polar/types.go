// Package polar computes the layout geometry of a radial angle axis:
// tick line endpoints, label positions and anchors, and the circular or
// polygonal axis line. It is pure computation; drawing is left to the caller.
package polar

// Point is a Cartesian position on the drawing surface.
type Point struct {
	X float64
	Y float64
}

// Tick is one labeled position on the angle axis. Coordinate is the angle
// in degrees: 0 points along +x and angles grow clockwise on screen
// (screen y grows downward).
type Tick struct {
	Coordinate float64
	Value      string
}

// Orientation controls whether tick marks and labels extend outward from
// the axis circle or inward toward the center.
type Orientation string

const (
	OrientOuter Orientation = "outer"
	OrientInner Orientation = "inner"
)

// TextAnchor is the horizontal alignment of a label relative to its
// anchor point.
type TextAnchor string

const (
	AnchorStart  TextAnchor = "start"
	AnchorMiddle TextAnchor = "middle"
	AnchorEnd    TextAnchor = "end"
)

// AxisLineKind selects the axis line shape.
type AxisLineKind string

const (
	LinePolygon AxisLineKind = "polygon"
	LineCircle  AxisLineKind = "circle"
)

// DefaultTickSize is the tick mark length used when AxisConfig.TickSize
// is left zero.
const DefaultTickSize = 8.0

// AxisConfig describes one angle axis. The zero value of every optional
// field means "default": orientation outer, tick size DefaultTickSize,
// polygon axis line, everything visible.
type AxisConfig struct {
	CX     float64
	CY     float64
	Radius float64

	Orientation  Orientation
	TickSize     float64
	AxisLineKind AxisLineKind

	HideAxisLine  bool
	HideTickLines bool
	HideLabels    bool

	// Label selects how tick label text is produced.
	Label LabelRenderer

	// Base is the style every drawable starts from; LineStyle and
	// LabelStyle are partial overrides applied left-to-right on top.
	Base       Style
	LineStyle  []StyleOverride
	LabelStyle []StyleOverride

	// Events are caller handlers bound to each (tick, index) pair.
	Events EventMap
}

// LineCoord is the endpoint pair of one tick's radial line. (X1,Y1) lies
// on the axis circle; (X2,Y2) is offset by the tick size, outward for
// orientation outer and inward for inner.
type LineCoord struct {
	X1, Y1 float64
	X2, Y2 float64
}

// Circle is a circular axis line descriptor.
type Circle struct {
	CX, CY float64
	R      float64
}

// AxisLineShape is the axis line as either a circle or an open polygon.
// Points holds one vertex per tick in input order; the renderer is
// expected to close the polygon back to the first vertex.
type AxisLineShape struct {
	Kind   AxisLineKind
	Circle Circle  // set when Kind == LineCircle
	Points []Point // set when Kind == LinePolygon
}

// TickRender is the per-tick render descriptor produced by Build.
type TickRender struct {
	Index int
	Value string

	// Line is nil when tick lines are hidden.
	Line *LineCoord

	// LabelPos is the tick line's offset endpoint; labels are placed
	// there even when the tick line itself is hidden.
	LabelPos    Point
	LabelAnchor TextAnchor

	// Label is nil when labels are hidden.
	Label *Label

	Events BoundEvents
}

// Axis is the renderable description of a whole angle axis.
// The zero value means "draw nothing".
type Axis struct {
	Ticks     []TickRender
	Line      *AxisLineShape // nil when the axis line is hidden
	LineStyle Style
}
