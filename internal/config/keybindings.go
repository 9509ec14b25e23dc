package config

// KeyBindings maps keys to actions for one mode. OnKey binds key
// literals; OnAlphabet, OnNumber and OnSpecialCharacter bind whole key
// classes; Default is the fallback for anything else. Remaps alias one
// key literal to another and are only valid while the target binding
// exists.
type KeyBindings struct {
	Remaps             map[string]string `yaml:"remaps"`
	OnKey              map[string]Action `yaml:"on_key"`
	OnAlphabet         *Action           `yaml:"on_alphabet"`
	OnNumber           *Action           `yaml:"on_number"`
	OnSpecialCharacter *Action           `yaml:"on_special_character"`
	Default            *Action           `yaml:"default"`
}

// Sanitized returns the bindings as usable in the given session. In a
// read-only session every action is filtered through Action.Sanitized
// and remaps pointing at a removed binding are pruned, so no remap can
// resurrect a mutating action. Outside read-only the value passes
// through untouched. The receiver's maps are never mutated.
func (kb KeyBindings) Sanitized(readOnly bool) KeyBindings {
	if !readOnly {
		return kb
	}

	onKey := make(map[string]Action, len(kb.OnKey))
	for k, a := range kb.OnKey {
		if sa, ok := a.Sanitized(true); ok {
			onKey[k] = sa
		}
	}
	kb.OnKey = onKey

	kb.OnAlphabet = sanitizedClass(kb.OnAlphabet)
	kb.OnNumber = sanitizedClass(kb.OnNumber)
	kb.OnSpecialCharacter = sanitizedClass(kb.OnSpecialCharacter)
	kb.Default = sanitizedClass(kb.Default)

	remaps := make(map[string]string, len(kb.Remaps))
	for k, v := range kb.Remaps {
		if _, ok := onKey[v]; ok {
			remaps[k] = v
		}
	}
	kb.Remaps = remaps

	return kb
}

func sanitizedClass(a *Action) *Action {
	if a == nil {
		return nil
	}
	if sa, ok := a.Sanitized(true); ok {
		return &sa
	}
	return nil
}

// Extend merges overlay onto kb. Remaps and OnKey union key-wise with
// overlay entries replacing wholesale; class bindings are overlay-biased
// as whole actions.
func (kb KeyBindings) Extend(overlay KeyBindings) KeyBindings {
	kb.Remaps = mergeMap(kb.Remaps, overlay.Remaps)
	kb.OnKey = mergeMap(kb.OnKey, overlay.OnKey)
	if overlay.OnAlphabet != nil {
		kb.OnAlphabet = overlay.OnAlphabet
	}
	if overlay.OnNumber != nil {
		kb.OnNumber = overlay.OnNumber
	}
	if overlay.OnSpecialCharacter != nil {
		kb.OnSpecialCharacter = overlay.OnSpecialCharacter
	}
	if overlay.Default != nil {
		kb.Default = overlay.Default
	}
	return kb
}
