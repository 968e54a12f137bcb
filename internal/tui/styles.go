package tui

import (
	"github.com/charmbracelet/lipgloss"

	"gopolar/internal/polar"
)

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	borderCol = lipgloss.Color("#243141")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
)

// lipglossFor converts an effective element style from the layout core
// into a lipgloss style for the terminal.
func lipglossFor(s polar.Style) lipgloss.Style {
	st := lipgloss.NewStyle()
	if s.Foreground != "" {
		st = st.Foreground(lipgloss.Color(s.Foreground))
	}
	if s.Background != "" {
		st = st.Background(lipgloss.Color(s.Background))
	}
	if s.Bold {
		st = st.Bold(true)
	}
	if s.Faint {
		st = st.Faint(true)
	}
	return st
}

// seriesColor cycles through the configured series palette.
func (m Model) seriesColor(i int) lipgloss.Color {
	pal := m.cfg.Style.Series
	if len(pal) == 0 {
		return lipgloss.Color("#7C3AED")
	}
	return lipgloss.Color(pal[i%len(pal)])
}
