// Package series loads radar chart data and turns category labels into
// evenly spaced angle-axis ticks. It is the scale side of the chart; the
// polar package does the per-tick geometry.
package series

// DataPoint is one value on one category axis.
type DataPoint struct {
	Label string
	Value float64
}

// Series is one named ring of values around the chart.
type Series struct {
	Name   string
	Points []DataPoint
}

// Data is a minimal series container for rendering
type Data struct {
	Series   []Series
	MaxValue float64
}

// Labels returns the category labels of the first series; all series of
// a radar chart share the same categories.
func (d Data) Labels() []string {
	if len(d.Series) == 0 {
		return nil
	}
	out := make([]string, 0, len(d.Series[0].Points))
	for _, p := range d.Series[0].Points {
		out = append(out, p.Label)
	}
	return out
}

func (d *Data) track(v float64) {
	if v > d.MaxValue {
		d.MaxValue = v
	}
}
