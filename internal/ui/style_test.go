package ui

import (
	"reflect"
	"testing"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"
)

func strp(s string) *string { return &s }

func TestStyleExtend(t *testing.T) {
	tests := []struct {
		name    string
		base    Style
		overlay Style
		want    Style
	}{
		{
			name:    "empty overlay keeps base",
			base:    Style{Fg: strp("red"), AddModifiers: []Modifier{ModifierBold}},
			overlay: Style{},
			want:    Style{Fg: strp("red"), AddModifiers: []Modifier{ModifierBold}},
		},
		{
			name:    "overlay fg wins",
			base:    Style{Fg: strp("red"), Bg: strp("black")},
			overlay: Style{Fg: strp("blue")},
			want:    Style{Fg: strp("blue"), Bg: strp("black")},
		},
		{
			name:    "modifier lists replace wholesale",
			base:    Style{AddModifiers: []Modifier{ModifierBold, ModifierItalic}},
			overlay: Style{AddModifiers: []Modifier{ModifierDim}},
			want:    Style{AddModifiers: []Modifier{ModifierDim}},
		},
		{
			name:    "sub modifiers independent of add",
			base:    Style{AddModifiers: []Modifier{ModifierBold}},
			overlay: Style{SubModifiers: []Modifier{ModifierBold}},
			want:    Style{AddModifiers: []Modifier{ModifierBold}, SubModifiers: []Modifier{ModifierBold}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.base.Extend(tt.overlay); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extend() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestModifierUnmarshalYAML(t *testing.T) {
	valid := []Modifier{
		ModifierBold, ModifierDim, ModifierItalic, ModifierUnderlined,
		ModifierSlowBlink, ModifierRapidBlink, ModifierReversed,
		ModifierHidden, ModifierCrossedOut,
	}
	for _, want := range valid {
		var m Modifier
		if err := yaml.Unmarshal([]byte(want), &m); err != nil {
			t.Errorf("Unmarshal(%s) error = %v", want, err)
			continue
		}
		if m != want {
			t.Errorf("Unmarshal(%s) = %q", want, m)
		}
	}

	for _, bad := range []string{"sparkly", "blink"} {
		var m Modifier
		if err := yaml.Unmarshal([]byte(bad), &m); err == nil {
			t.Errorf("Unmarshal(%s) expected error, got nil", bad)
		}
	}
}

func TestStyleTcell(t *testing.T) {
	s := Style{
		Fg:           strp("red"),
		Bg:           strp("#222222"),
		AddModifiers: []Modifier{ModifierBold, ModifierReversed},
	}
	fg, bg, attrs := s.Tcell().Decompose()
	if fg != tcell.GetColor("red") {
		t.Errorf("fg = %v, want red", fg)
	}
	if bg != tcell.GetColor("#222222") {
		t.Errorf("bg = %v, want #222222", bg)
	}
	if attrs&tcell.AttrBold == 0 {
		t.Error("bold attribute not set")
	}
	if attrs&tcell.AttrReverse == 0 {
		t.Error("reverse attribute not set")
	}

	sub := s.Extend(Style{SubModifiers: []Modifier{ModifierBold}})
	if _, _, attrs := sub.Tcell().Decompose(); attrs&tcell.AttrBold != 0 {
		t.Error("bold attribute still set after sub_modifiers")
	}

	// Both blink rates collapse onto the one blink attribute; hidden
	// renders as no attribute change.
	for _, m := range []Modifier{ModifierSlowBlink, ModifierRapidBlink} {
		blink := Style{AddModifiers: []Modifier{m}}
		if _, _, attrs := blink.Tcell().Decompose(); attrs&tcell.AttrBlink == 0 {
			t.Errorf("%s did not set the blink attribute", m)
		}
	}
	hidden := Style{AddModifiers: []Modifier{ModifierHidden}}
	if _, _, attrs := hidden.Tcell().Decompose(); attrs != tcell.AttrNone {
		t.Errorf("hidden changed attributes: %v", attrs)
	}
}
