package series

import (
	"errors"
	"strconv"
	"strings"
)

// ParseInline parses pasted chart data, one "label,value" or "label value"
// pair per line. Blank lines and lines starting with # are ignored;
// malformed lines are skipped.
func ParseInline(text string) (Data, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return Data{}, errors.New("empty input")
	}
	ser := Series{Name: "pasted"}
	var d Data
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		var label, num string
		if i := strings.LastIndex(line, ","); i >= 0 {
			label, num = line[:i], line[i+1:]
		} else if i := strings.LastIndex(line, " "); i >= 0 {
			label, num = line[:i], line[i+1:]
		} else {
			continue
		}
		label = strings.TrimSpace(label)
		v, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
		if err != nil || label == "" {
			continue
		}
		ser.Points = append(ser.Points, DataPoint{Label: label, Value: v})
		d.track(v)
	}
	if len(ser.Points) == 0 {
		return Data{}, errors.New("inline: no label/value pairs parsed")
	}
	d.Series = []Series{ser}
	return d, nil
}
