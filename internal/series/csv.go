package series

import (
	"encoding/csv"
	"errors"
	"os"
	"strconv"
	"strings"
)

// LoadCSV reads a CSV with one label column and one or more numeric value
// columns; each value column becomes a series named by its header.
// Label column detection: label|name|category|axis (case-insensitive),
// falling back to the first column.
func LoadCSV(path string) (Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return Data{}, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	recs, err := r.ReadAll()
	if err != nil {
		return Data{}, err
	}
	if len(recs) < 2 {
		return Data{}, errors.New("csv: no data rows")
	}
	header := recs[0]
	idxLabel := -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "label", "name", "category", "axis":
			idxLabel = i
		}
		if idxLabel != -1 {
			break
		}
	}
	if idxLabel == -1 {
		idxLabel = 0
	}

	var d Data
	for i, h := range header {
		if i == idxLabel {
			continue
		}
		d.Series = append(d.Series, Series{Name: strings.TrimSpace(h)})
	}
	for _, row := range recs[1:] {
		if idxLabel >= len(row) {
			continue
		}
		label := strings.TrimSpace(row[idxLabel])
		if label == "" {
			continue
		}
		si := 0
		for i := range header {
			if i == idxLabel {
				continue
			}
			if i < len(row) {
				if v, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64); err == nil {
					d.Series[si].Points = append(d.Series[si].Points, DataPoint{Label: label, Value: v})
					d.track(v)
				}
			}
			si++
		}
	}
	// drop value columns that never parsed
	kept := d.Series[:0]
	for _, s := range d.Series {
		if len(s.Points) > 0 {
			kept = append(kept, s)
		}
	}
	d.Series = kept
	if len(d.Series) == 0 {
		return Data{}, errors.New("csv: no numeric values parsed")
	}
	return d, nil
}
