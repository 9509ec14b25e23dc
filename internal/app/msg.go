package app

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MsgKind identifies one kind of runtime instruction.
type MsgKind string

// Messages without arguments.
const (
	MsgExplore                          MsgKind = "Explore"
	MsgRefresh                          MsgKind = "Refresh"
	MsgClearScreen                      MsgKind = "ClearScreen"
	MsgFocusNext                        MsgKind = "FocusNext"
	MsgFocusPrevious                    MsgKind = "FocusPrevious"
	MsgFocusFirst                       MsgKind = "FocusFirst"
	MsgFocusLast                        MsgKind = "FocusLast"
	MsgFocusByIndexFromInput            MsgKind = "FocusByIndexFromInput"
	MsgFocusNextByRelativeIndexFromInput MsgKind = "FocusNextByRelativeIndexFromInput"
	MsgFocusPreviousByRelativeIndexFromInput MsgKind = "FocusPreviousByRelativeIndexFromInput"
	MsgFollowSymlink                    MsgKind = "FollowSymlink"
	MsgEnter                            MsgKind = "Enter"
	MsgBack                             MsgKind = "Back"
	MsgSelect                           MsgKind = "Select"
	MsgUnSelect                         MsgKind = "UnSelect"
	MsgToggleSelection                  MsgKind = "ToggleSelection"
	MsgClearSelection                   MsgKind = "ClearSelection"
	MsgToggleShowHidden                 MsgKind = "ToggleShowHidden"
	MsgBufferInputFromKey               MsgKind = "BufferInputFromKey"
	MsgRemoveInputBufferLastCharacter   MsgKind = "RemoveInputBufferLastCharacter"
	MsgResetInputBuffer                 MsgKind = "ResetInputBuffer"
	MsgRemoveLastNodeFilter             MsgKind = "RemoveLastNodeFilter"
	MsgResetNodeFilters                 MsgKind = "ResetNodeFilters"
	MsgRemoveLastNodeSorter             MsgKind = "RemoveLastNodeSorter"
	MsgResetNodeSorters                 MsgKind = "ResetNodeSorters"
	MsgReverseNodeSorters               MsgKind = "ReverseNodeSorters"
	MsgQuit                             MsgKind = "Quit"
	MsgPrintResultAndQuit               MsgKind = "PrintResultAndQuit"
	MsgPrintAppStateAndQuit             MsgKind = "PrintAppStateAndQuit"
	MsgTerminate                        MsgKind = "Terminate"
)

// Messages carrying a string argument.
const (
	MsgChangeDirectory  MsgKind = "ChangeDirectory"
	MsgFocusPath        MsgKind = "FocusPath"
	MsgFocusByFileName  MsgKind = "FocusByFileName"
	MsgSwitchMode       MsgKind = "SwitchMode"
	MsgSetInputBuffer   MsgKind = "SetInputBuffer"
	MsgBashExec         MsgKind = "BashExec"
	MsgBashExecSilently MsgKind = "BashExecSilently"
	MsgLogInfo          MsgKind = "LogInfo"
	MsgLogSuccess       MsgKind = "LogSuccess"
	MsgLogError         MsgKind = "LogError"
	MsgDebug            MsgKind = "Debug"
)

// Messages carrying an integer argument.
const (
	MsgFocusByIndex                MsgKind = "FocusByIndex"
	MsgFocusNextByRelativeIndex    MsgKind = "FocusNextByRelativeIndex"
	MsgFocusPreviousByRelativeIndex MsgKind = "FocusPreviousByRelativeIndex"
)

// Messages carrying structured arguments.
const (
	MsgCall                   MsgKind = "Call"
	MsgCallSilently           MsgKind = "CallSilently"
	MsgAddNodeFilter          MsgKind = "AddNodeFilter"
	MsgRemoveNodeFilter       MsgKind = "RemoveNodeFilter"
	MsgToggleNodeFilter       MsgKind = "ToggleNodeFilter"
	MsgAddNodeFilterFromInput MsgKind = "AddNodeFilterFromInput"
	MsgRemoveNodeFilterFromInput MsgKind = "RemoveNodeFilterFromInput"
	MsgAddNodeSorter          MsgKind = "AddNodeSorter"
	MsgRemoveNodeSorter       MsgKind = "RemoveNodeSorter"
	MsgToggleNodeSorter       MsgKind = "ToggleNodeSorter"
)

// argShape describes which argument slot a message kind uses.
type argShape uint8

const (
	argNone argShape = iota
	argStr
	argNum
	argCmd
	argSorter
	argFilter
	argFilterKind
)

// msgShapes is the closed table of known message kinds.
var msgShapes = map[MsgKind]argShape{
	MsgExplore: argNone, MsgRefresh: argNone, MsgClearScreen: argNone,
	MsgFocusNext: argNone, MsgFocusPrevious: argNone,
	MsgFocusFirst: argNone, MsgFocusLast: argNone,
	MsgFocusByIndexFromInput:                 argNone,
	MsgFocusNextByRelativeIndexFromInput:     argNone,
	MsgFocusPreviousByRelativeIndexFromInput: argNone,
	MsgFollowSymlink: argNone, MsgEnter: argNone, MsgBack: argNone,
	MsgSelect: argNone, MsgUnSelect: argNone, MsgToggleSelection: argNone,
	MsgClearSelection: argNone, MsgToggleShowHidden: argNone,
	MsgBufferInputFromKey: argNone, MsgRemoveInputBufferLastCharacter: argNone,
	MsgResetInputBuffer: argNone, MsgRemoveLastNodeFilter: argNone,
	MsgResetNodeFilters: argNone, MsgRemoveLastNodeSorter: argNone,
	MsgResetNodeSorters: argNone, MsgReverseNodeSorters: argNone,
	MsgQuit: argNone, MsgPrintResultAndQuit: argNone,
	MsgPrintAppStateAndQuit: argNone, MsgTerminate: argNone,

	MsgChangeDirectory: argStr, MsgFocusPath: argStr,
	MsgFocusByFileName: argStr, MsgSwitchMode: argStr,
	MsgSetInputBuffer: argStr, MsgBashExec: argStr,
	MsgBashExecSilently: argStr, MsgLogInfo: argStr,
	MsgLogSuccess: argStr, MsgLogError: argStr, MsgDebug: argStr,

	MsgFocusByIndex:                 argNum,
	MsgFocusNextByRelativeIndex:     argNum,
	MsgFocusPreviousByRelativeIndex: argNum,

	MsgCall: argCmd, MsgCallSilently: argCmd,

	MsgAddNodeFilter: argFilter, MsgRemoveNodeFilter: argFilter,
	MsgToggleNodeFilter: argFilter,
	MsgAddNodeFilterFromInput:    argFilterKind,
	MsgRemoveNodeFilterFromInput: argFilterKind,

	MsgAddNodeSorter: argSorter, MsgRemoveNodeSorter: argSorter,
	MsgToggleNodeSorter: argSorter,
}

// Command is an external program invocation.
type Command struct {
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
}

// ExternalMsg is one instruction a key binding sends to the explorer
// runtime. Exactly one argument slot is populated, selected by Kind;
// unit-kind messages populate none.
type ExternalMsg struct {
	Kind MsgKind

	// Str is the argument for string-carrying kinds (paths, mode
	// names, shell scripts, log lines).
	Str string

	// Num is the argument for index-carrying kinds.
	Num int

	// Cmd is the argument for Call and CallSilently.
	Cmd *Command

	// Sorter is the argument for the sorter messages.
	Sorter *NodeSorterApplicable

	// Filter is the argument for the filter messages.
	Filter *NodeFilterApplicable

	// FilterKind is the argument for the *FromInput filter messages,
	// whose input half comes from the runtime input buffer.
	FilterKind NodeFilter
}

// NewMsg returns a message without arguments.
func NewMsg(kind MsgKind) ExternalMsg {
	return ExternalMsg{Kind: kind}
}

// NewStrMsg returns a message with a string argument.
func NewStrMsg(kind MsgKind, arg string) ExternalMsg {
	return ExternalMsg{Kind: kind, Str: arg}
}

// NewNumMsg returns a message with an integer argument.
func NewNumMsg(kind MsgKind, arg int) ExternalMsg {
	return ExternalMsg{Kind: kind, Num: arg}
}

// NewCallMsg returns a Call or CallSilently message.
func NewCallMsg(kind MsgKind, cmd Command) ExternalMsg {
	return ExternalMsg{Kind: kind, Cmd: &cmd}
}

// NewSorterMsg returns a sorter message.
func NewSorterMsg(kind MsgKind, sorter NodeSorterApplicable) ExternalMsg {
	return ExternalMsg{Kind: kind, Sorter: &sorter}
}

// NewFilterMsg returns a filter message.
func NewFilterMsg(kind MsgKind, filter NodeFilterApplicable) ExternalMsg {
	return ExternalMsg{Kind: kind, Filter: &filter}
}

// NewFilterKindMsg returns a *FromInput filter message.
func NewFilterKindMsg(kind MsgKind, filter NodeFilter) ExternalMsg {
	return ExternalMsg{Kind: kind, FilterKind: filter}
}

// IsReadOnly reports whether the message cannot mutate anything outside
// the explorer's own state. Shelling out and calling external commands
// are the only mutating escapes; everything else is navigation,
// selection, or presentation.
func (m ExternalMsg) IsReadOnly() bool {
	switch m.Kind {
	case MsgCall, MsgCallSilently, MsgBashExec, MsgBashExecSilently:
		return false
	default:
		return true
	}
}

// UnmarshalYAML decodes the externally tagged message form: a plain
// scalar for unit kinds, a single-key mapping for kinds with arguments.
func (m *ExternalMsg) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		kind := MsgKind(node.Value)
		shape, ok := msgShapes[kind]
		if !ok {
			return fmt.Errorf("line %d: unknown message %q", node.Line, node.Value)
		}
		if shape != argNone {
			return fmt.Errorf("line %d: message %q requires an argument", node.Line, node.Value)
		}
		*m = ExternalMsg{Kind: kind}
		return nil

	case yaml.MappingNode:
		if len(node.Content) != 2 {
			return fmt.Errorf("line %d: message must be a single-key mapping", node.Line)
		}
		keyNode, valNode := node.Content[0], node.Content[1]
		kind := MsgKind(keyNode.Value)
		shape, ok := msgShapes[kind]
		if !ok {
			return fmt.Errorf("line %d: unknown message %q", keyNode.Line, keyNode.Value)
		}
		out := ExternalMsg{Kind: kind}
		var err error
		switch shape {
		case argNone:
			err = fmt.Errorf("line %d: message %q takes no argument", keyNode.Line, keyNode.Value)
		case argStr:
			err = valNode.Decode(&out.Str)
		case argNum:
			err = valNode.Decode(&out.Num)
		case argCmd:
			out.Cmd = &Command{}
			err = decodeStrict(valNode, out.Cmd)
		case argSorter:
			out.Sorter = &NodeSorterApplicable{}
			err = decodeStrict(valNode, out.Sorter)
		case argFilter:
			out.Filter = &NodeFilterApplicable{}
			err = decodeStrict(valNode, out.Filter)
		case argFilterKind:
			err = valNode.Decode(&out.FilterKind)
		}
		if err != nil {
			return fmt.Errorf("message %q: %w", keyNode.Value, err)
		}
		*m = out
		return nil

	default:
		return fmt.Errorf("line %d: message must be a string or a single-key mapping", node.Line)
	}
}

// MarshalYAML emits the same externally tagged form UnmarshalYAML
// accepts.
func (m ExternalMsg) MarshalYAML() (any, error) {
	shape, ok := msgShapes[m.Kind]
	if !ok {
		return nil, fmt.Errorf("unknown message %q", m.Kind)
	}
	switch shape {
	case argNone:
		return string(m.Kind), nil
	case argStr:
		return map[string]string{string(m.Kind): m.Str}, nil
	case argNum:
		return map[string]int{string(m.Kind): m.Num}, nil
	case argCmd:
		return map[string]*Command{string(m.Kind): m.Cmd}, nil
	case argSorter:
		return map[string]*NodeSorterApplicable{string(m.Kind): m.Sorter}, nil
	case argFilter:
		return map[string]*NodeFilterApplicable{string(m.Kind): m.Filter}, nil
	case argFilterKind:
		return map[string]NodeFilter{string(m.Kind): m.FilterKind}, nil
	}
	return nil, fmt.Errorf("unknown message %q", m.Kind)
}

// decodeStrict decodes node into out, rejecting unknown fields.
// yaml.Node.Decode has no KnownFields switch, so the node is
// re-serialized through a strict decoder.
func decodeStrict(node *yaml.Node, out any) error {
	raw, err := yaml.Marshal(node)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	return dec.Decode(out)
}
