package app

import (
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestExternalMsgUnmarshalYAML(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want ExternalMsg
	}{
		{
			name: "unit kind as scalar",
			yaml: `Explore`,
			want: NewMsg(MsgExplore),
		},
		{
			name: "string argument",
			yaml: `SwitchMode: default`,
			want: NewStrMsg(MsgSwitchMode, "default"),
		},
		{
			name: "shell argument",
			yaml: `BashExec: 'rm -ri -- "$FOCUS"'`,
			want: NewStrMsg(MsgBashExec, `rm -ri -- "$FOCUS"`),
		},
		{
			name: "integer argument",
			yaml: `FocusByIndex: 3`,
			want: NewNumMsg(MsgFocusByIndex, 3),
		},
		{
			name: "command argument",
			yaml: "Call:\n  command: bash\n  args: [-c, ls]",
			want: NewCallMsg(MsgCall, Command{Command: "bash", Args: []string{"-c", "ls"}}),
		},
		{
			name: "sorter argument",
			yaml: "AddNodeSorter:\n  sorter: by_size\n  reverse: true",
			want: NewSorterMsg(MsgAddNodeSorter, NodeSorterApplicable{Sorter: SortBySize, Reverse: true}),
		},
		{
			name: "filter argument",
			yaml: "AddNodeFilter:\n  filter: relative_path_does_contain\n  input: foo",
			want: NewFilterMsg(MsgAddNodeFilter, NodeFilterApplicable{Filter: FilterRelativePathDoesContain, Input: "foo"}),
		},
		{
			name: "filter kind argument",
			yaml: `AddNodeFilterFromInput: irelative_path_is`,
			want: NewFilterKindMsg(MsgAddNodeFilterFromInput, FilterIRelativePathIs),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got ExternalMsg
			if err := yaml.Unmarshal([]byte(tt.yaml), &got); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Unmarshal() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestExternalMsgUnmarshalYAMLErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "unknown message",
			yaml:    `DoTheThing`,
			wantErr: "unknown message",
		},
		{
			name:    "unit kind with argument",
			yaml:    `Explore: now`,
			wantErr: "takes no argument",
		},
		{
			name:    "argument kind as scalar",
			yaml:    `SwitchMode`,
			wantErr: "requires an argument",
		},
		{
			name:    "multi-key mapping",
			yaml:    "SwitchMode: default\nExplore: null",
			wantErr: "single-key mapping",
		},
		{
			name:    "unknown field in command",
			yaml:    "Call:\n  command: bash\n  env: [FOO=1]",
			wantErr: "env",
		},
		{
			name:    "unknown sorter",
			yaml:    "AddNodeSorter:\n  sorter: by_vibes",
			wantErr: "by_vibes",
		},
		{
			name:    "unknown filter kind",
			yaml:    `AddNodeFilterFromInput: glob_matches`,
			wantErr: "glob_matches",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got ExternalMsg
			err := yaml.Unmarshal([]byte(tt.yaml), &got)
			if err == nil {
				t.Fatalf("Unmarshal() expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Unmarshal() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestExternalMsgMarshalRoundTrip(t *testing.T) {
	msgs := []ExternalMsg{
		NewMsg(MsgQuit),
		NewStrMsg(MsgChangeDirectory, "/tmp"),
		NewNumMsg(MsgFocusPreviousByRelativeIndex, 2),
		NewCallMsg(MsgCallSilently, Command{Command: "xdg-open", Args: []string{"."}}),
		NewSorterMsg(MsgRemoveNodeSorter, NodeSorterApplicable{Sorter: SortByIsDir, Reverse: true}),
		NewFilterKindMsg(MsgRemoveNodeFilterFromInput, FilterRelativePathDoesEndWith),
	}

	for _, m := range msgs {
		data, err := yaml.Marshal(m)
		if err != nil {
			t.Fatalf("Marshal(%v) error = %v", m.Kind, err)
		}
		var got ExternalMsg
		if err := yaml.Unmarshal(data, &got); err != nil {
			t.Fatalf("Unmarshal(%q) error = %v", data, err)
		}
		if !reflect.DeepEqual(got, m) {
			t.Errorf("round trip of %v = %+v, want %+v", m.Kind, got, m)
		}
	}
}

func TestExternalMsgIsReadOnly(t *testing.T) {
	tests := []struct {
		msg  ExternalMsg
		want bool
	}{
		{NewMsg(MsgExplore), true},
		{NewMsg(MsgQuit), true},
		{NewMsg(MsgToggleSelection), true},
		{NewStrMsg(MsgChangeDirectory, "/"), true},
		{NewStrMsg(MsgLogError, "oops"), true},
		{NewSorterMsg(MsgAddNodeSorter, NodeSorterApplicable{Sorter: SortBySize}), true},
		{NewStrMsg(MsgBashExec, "rm -rf /"), false},
		{NewStrMsg(MsgBashExecSilently, "touch x"), false},
		{NewCallMsg(MsgCall, Command{Command: "vi"}), false},
		{NewCallMsg(MsgCallSilently, Command{Command: "mv"}), false},
	}

	for _, tt := range tests {
		if got := tt.msg.IsReadOnly(); got != tt.want {
			t.Errorf("IsReadOnly(%v) = %v, want %v", tt.msg.Kind, got, tt.want)
		}
	}
}
