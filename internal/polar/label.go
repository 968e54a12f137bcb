package polar

import "strings"

// Style is the effective appearance of one drawable element. Colors are
// terminal color strings (hex or ANSI index) interpreted by the renderer.
type Style struct {
	Foreground string
	Background string
	Bold       bool
	Faint      bool
}

// StyleOverride is a partial style record. Nil fields leave the base
// value untouched; overrides merge left-to-right.
type StyleOverride struct {
	Foreground *string
	Background *string
	Bold       *bool
	Faint      *bool
}

// MergeStyles applies overrides to base in order and returns the
// effective style.
func MergeStyles(base Style, overrides ...StyleOverride) Style {
	out := base
	for _, o := range overrides {
		if o.Foreground != nil {
			out.Foreground = *o.Foreground
		}
		if o.Background != nil {
			out.Background = *o.Background
		}
		if o.Bold != nil {
			out.Bold = *o.Bold
		}
		if o.Faint != nil {
			out.Faint = *o.Faint
		}
	}
	return out
}

// Label is one resolved tick label ready for the renderer.
type Label struct {
	Text  string
	Style Style
}

// LabelProps is what a custom label function receives for one tick.
type LabelProps struct {
	Index      int
	Value      string
	Coordinate float64
	Anchor     TextAnchor
	Position   Point
}

// LabelKind selects one of the three label rendering strategies.
type LabelKind int

const (
	// LabelDefault renders the tick value as plain text.
	LabelDefault LabelKind = iota
	// LabelFunc calls a caller-supplied function with the tick's props.
	LabelFunc
	// LabelTemplate clones a pre-built label per tick, substituting the
	// tick value and merging the template's style on top.
	LabelTemplate
)

// LabelTemplateSpec is a pre-built label cloned for every tick. A "{value}"
// placeholder in Text is replaced with the tick value; empty Text means
// the tick value alone.
type LabelTemplateSpec struct {
	Text  string
	Style StyleOverride
}

// LabelRenderer picks exactly one rendering strategy. The zero value is
// LabelDefault. Missing Func or Template fall back to the default so a
// misconfigured renderer degrades instead of panicking.
type LabelRenderer struct {
	Kind     LabelKind
	Func     func(LabelProps) string
	Template *LabelTemplateSpec
}

func (r LabelRenderer) resolve(p LabelProps, style Style) Label {
	switch r.Kind {
	case LabelFunc:
		if r.Func != nil {
			return Label{Text: r.Func(p), Style: style}
		}
	case LabelTemplate:
		if r.Template != nil {
			text := r.Template.Text
			if text == "" {
				text = p.Value
			} else {
				text = strings.ReplaceAll(text, "{value}", p.Value)
			}
			return Label{Text: text, Style: MergeStyles(style, r.Template.Style)}
		}
	}
	return Label{Text: p.Value, Style: style}
}

// Handler is a caller-supplied interaction handler for one tick.
type Handler func(t Tick, index int)

// EventMap maps an event name (e.g. "hover", "select") to its handler.
type EventMap map[string]Handler

// BoundEvents are the handlers of one tick with the (tick, index) pair
// already closed over.
type BoundEvents map[string]func()

func (e EventMap) bind(t Tick, index int) BoundEvents {
	if len(e) == 0 {
		return nil
	}
	out := make(BoundEvents, len(e))
	for name, h := range e {
		out[name] = func() { h(t, index) }
	}
	return out
}
