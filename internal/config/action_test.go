package config

import (
	"reflect"
	"testing"

	"github.com/dshills/pathstorm/internal/app"
)

func TestActionSanitized(t *testing.T) {
	tests := []struct {
		name     string
		action   Action
		readOnly bool
		want     bool
	}{
		{
			name:     "empty action dropped regardless of session",
			action:   Action{Help: strp("noop")},
			readOnly: false,
			want:     false,
		},
		{
			name:     "empty action dropped in read-only too",
			action:   Action{},
			readOnly: true,
			want:     false,
		},
		{
			name:     "mutating action kept outside read-only",
			action:   action("delete", app.NewStrMsg(app.MsgBashExec, "rm x")),
			readOnly: false,
			want:     true,
		},
		{
			name:     "mutating action dropped in read-only",
			action:   action("delete", app.NewStrMsg(app.MsgBashExec, "rm x")),
			readOnly: true,
			want:     false,
		},
		{
			name: "single mutating message drops whole action",
			action: action("enter and touch",
				app.NewMsg(app.MsgEnter),
				app.NewStrMsg(app.MsgBashExecSilently, "touch x"),
				app.NewMsg(app.MsgExplore)),
			readOnly: true,
			want:     false,
		},
		{
			name: "read-only safe action survives read-only",
			action: action("navigate",
				app.NewMsg(app.MsgFocusNext),
				app.NewStrMsg(app.MsgSwitchMode, "default")),
			readOnly: true,
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.action.Sanitized(tt.readOnly)
			if ok != tt.want {
				t.Fatalf("Sanitized() ok = %v, want %v", ok, tt.want)
			}
			if ok && !reflect.DeepEqual(got, tt.action) {
				t.Errorf("Sanitized() mutated surviving action: %+v", got)
			}
		})
	}
}

func TestActionExtend(t *testing.T) {
	base := action("navigate", app.NewMsg(app.MsgFocusNext), app.NewMsg(app.MsgFocusPrevious))
	overlay := action("", app.NewMsg(app.MsgFocusFirst))

	got := base.Extend(overlay)
	if got.Help == nil || *got.Help != "navigate" {
		t.Errorf("Extend() lost base help: %+v", got.Help)
	}
	// Messages never concatenate.
	want := []app.ExternalMsg{app.NewMsg(app.MsgFocusFirst)}
	if !reflect.DeepEqual(got.Messages, want) {
		t.Errorf("Extend() messages = %+v, want %+v", got.Messages, want)
	}

	got = base.Extend(action("go to top", app.NewMsg(app.MsgFocusFirst)))
	if got.Help == nil || *got.Help != "go to top" {
		t.Errorf("Extend() overlay help should win: %+v", got.Help)
	}
}
