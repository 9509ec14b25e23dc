// Package ui provides the terminal styling value consumed throughout the
// configuration. A Style is declarative data; conversion to a concrete
// tcell style happens once, at render setup.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"
)

// Modifier is one text attribute toggle.
type Modifier string

const (
	ModifierBold       Modifier = "bold"
	ModifierDim        Modifier = "dim"
	ModifierItalic     Modifier = "italic"
	ModifierUnderlined Modifier = "underlined"
	ModifierSlowBlink  Modifier = "slow_blink"
	ModifierRapidBlink Modifier = "rapid_blink"
	ModifierReversed   Modifier = "reversed"
	ModifierHidden     Modifier = "hidden"
	ModifierCrossedOut Modifier = "crossed_out"
)

var modifiers = map[Modifier]bool{
	ModifierBold: true, ModifierDim: true, ModifierItalic: true,
	ModifierUnderlined: true, ModifierSlowBlink: true,
	ModifierRapidBlink: true, ModifierReversed: true,
	ModifierHidden: true, ModifierCrossedOut: true,
}

// UnmarshalYAML validates membership in the closed modifier set.
func (m *Modifier) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	if !modifiers[Modifier(name)] {
		return fmt.Errorf("line %d: unknown modifier %q", node.Line, name)
	}
	*m = Modifier(name)
	return nil
}

// Style is a declarative terminal style. Absent fields inherit from
// whatever the style is laid over.
type Style struct {
	Fg           *string    `yaml:"fg"`
	Bg           *string    `yaml:"bg"`
	AddModifiers []Modifier `yaml:"add_modifiers"`
	SubModifiers []Modifier `yaml:"sub_modifiers"`
}

// Extend merges overlay onto s, field by field, overlay winning wherever
// it is set. Modifier lists replace wholesale, never union.
func (s Style) Extend(overlay Style) Style {
	if overlay.Fg != nil {
		s.Fg = overlay.Fg
	}
	if overlay.Bg != nil {
		s.Bg = overlay.Bg
	}
	if overlay.AddModifiers != nil {
		s.AddModifiers = overlay.AddModifiers
	}
	if overlay.SubModifiers != nil {
		s.SubModifiers = overlay.SubModifiers
	}
	return s
}

// Tcell converts the declarative style to a tcell style. Colors accept
// W3C names and #rrggbb hex, per tcell.GetColor.
func (s Style) Tcell() tcell.Style {
	st := tcell.StyleDefault
	if s.Fg != nil {
		st = st.Foreground(tcell.GetColor(*s.Fg))
	}
	if s.Bg != nil {
		st = st.Background(tcell.GetColor(*s.Bg))
	}
	for _, m := range s.AddModifiers {
		st = applyModifier(st, m, true)
	}
	for _, m := range s.SubModifiers {
		st = applyModifier(st, m, false)
	}
	return st
}

func applyModifier(st tcell.Style, m Modifier, on bool) tcell.Style {
	switch m {
	case ModifierBold:
		return st.Bold(on)
	case ModifierDim:
		return st.Dim(on)
	case ModifierItalic:
		return st.Italic(on)
	case ModifierUnderlined:
		return st.Underline(on)
	case ModifierSlowBlink, ModifierRapidBlink:
		// tcell has a single blink attribute; both rates map onto it.
		return st.Blink(on)
	case ModifierReversed:
		return st.Reverse(on)
	case ModifierHidden:
		// tcell has no invisible attribute; hidden participates in
		// merging but renders as no attribute change.
		return st
	case ModifierCrossedOut:
		return st.StrikeThrough(on)
	default:
		return st
	}
}
