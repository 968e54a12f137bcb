package series

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// LoadJSON reads chart data from a JSON file. Two shapes are accepted:
//
//	{"series":[{"name":"a","points":[{"label":"x","value":1}, ...]}, ...]}
//	{"labels":["x","y"],"values":[1,2]}
//
// Entries with a non-string label or non-numeric value are skipped.
func LoadJSON(path string) (Data, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Data{}, err
	}
	return ParseJSON(data)
}

// ParseJSON decodes the same shapes as LoadJSON from a byte slice.
func ParseJSON(data []byte) (Data, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Data{}, err
	}
	var d Data
	parsePoint := func(v any) (DataPoint, bool) {
		pm, ok := v.(map[string]any)
		if !ok {
			return DataPoint{}, false
		}
		label, lok := pm["label"].(string)
		value, vok := pm["value"].(float64)
		if !lok || !vok {
			return DataPoint{}, false
		}
		return DataPoint{Label: label, Value: value}, true
	}

	if ss, ok := raw["series"].([]any); ok {
		for i, el := range ss {
			sm, ok := el.(map[string]any)
			if !ok {
				continue
			}
			s := Series{Name: fmt.Sprintf("series %d", i+1)}
			if name, ok := sm["name"].(string); ok && name != "" {
				s.Name = name
			}
			pts, _ := sm["points"].([]any)
			for _, pv := range pts {
				if p, ok := parsePoint(pv); ok {
					s.Points = append(s.Points, p)
					d.track(p.Value)
				}
			}
			if len(s.Points) > 0 {
				d.Series = append(d.Series, s)
			}
		}
	} else if labels, ok := raw["labels"].([]any); ok {
		values, _ := raw["values"].([]any)
		s := Series{Name: "values"}
		for i, lv := range labels {
			label, lok := lv.(string)
			if !lok || i >= len(values) {
				continue
			}
			value, vok := values[i].(float64)
			if !vok {
				continue
			}
			s.Points = append(s.Points, DataPoint{Label: label, Value: value})
			d.track(value)
		}
		if len(s.Points) > 0 {
			d.Series = append(d.Series, s)
		}
	}

	if len(d.Series) == 0 {
		return Data{}, errors.New("json: no series found")
	}
	return d, nil
}
