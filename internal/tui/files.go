package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"gopolar/internal/applog"
	"gopolar/internal/series"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		p := filepath.Join(m.cwd, name)
		ext := strings.ToLower(filepath.Ext(name))
		if ext == ".csv" || ext == ".json" || ext == ".txt" {
			items = append(items, fileItem{title: name, desc: ext, path: p})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no supported files in current directory"
	}
}

// loadPath loads supported formats into the model.
func (m *Model) loadPath(p string) {
	m.selPath = p
	var d series.Data
	var err error
	switch ext := strings.ToLower(filepath.Ext(p)); ext {
	case ".csv":
		d, err = series.LoadCSV(p)
	case ".json":
		d, err = series.LoadJSON(p)
	case ".txt":
		var raw []byte
		raw, err = os.ReadFile(p)
		if err == nil {
			d, err = series.ParseInline(string(raw))
		}
	default:
		m.status = "unsupported file: " + ext
		return
	}
	if err != nil {
		m.status = "load error: " + err.Error()
		applog.L().Warn("load failed", "path", p, "err", err.Error())
		return
	}
	m.data = d
	m.hideSeries = map[int]bool{}
	m.zoom = 1.0
	m.hoverTick = -1
	m.status = "loaded: " + filepath.Base(p) +
		fmt.Sprintf("  series=%d categories=%d max=%g", len(d.Series), len(d.Labels()), d.MaxValue)
	applog.L().Info("loaded dataset", "path", p, "series", len(d.Series), "categories", len(d.Labels()))
	// If the tick table is currently shown, rebuild it for the new dataset
	if m.showAttrs {
		m.refreshTickAttrs()
	}
}
