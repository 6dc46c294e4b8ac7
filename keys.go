package imgfx

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultBlurSizes are the window sides bound to the keys 1 through 9.
var DefaultBlurSizes = [9]int{3, 5, 7, 11, 15, 29, 41, 73, 101}

// ActionKind identifies what a key press asks the session to do.
type ActionKind uint8

const (
	// ActionNone ignores the key.
	ActionNone ActionKind = iota

	// ActionNegate inverts the current image.
	ActionNegate

	// ActionBlur replaces the current image with its windowed average.
	ActionBlur

	// ActionReset restores the loaded image.
	ActionReset
)

// Action is a request bound to a key.
type Action struct {
	Kind ActionKind

	// Size is the window side of an ActionBlur.
	Size int
}

// Negation returns the negate action.
func Negation() Action { return Action{Kind: ActionNegate} }

// Blur returns the blur action for a window of the given side.
func Blur(size int) Action { return Action{Kind: ActionBlur, Size: size} }

// Reset returns the reset action.
func Reset() Action { return Action{Kind: ActionReset} }

// String returns a string representation of the action.
func (a Action) String() string {
	switch a.Kind {
	case ActionNone:
		return "none"
	case ActionNegate:
		return "negate"
	case ActionBlur:
		return fmt.Sprintf("blur(%d)", a.Size)
	case ActionReset:
		return "reset"
	default:
		return fmt.Sprintf("ActionKind(%d)", uint8(a.Kind))
	}
}

// KeyMap binds key names to actions. Key names are matched case
// insensitively.
type KeyMap map[string]Action

// FilterKeys returns the bindings of the filter demo: 0 and r reset, 1..9
// blur with DefaultBlurSizes.
func FilterKeys() KeyMap {
	m := KeyMap{
		"0": Reset(),
		"r": Reset(),
	}
	for i, size := range DefaultBlurSizes {
		m[fmt.Sprint(i+1)] = Blur(size)
	}
	return m
}

// InvertKeys returns the bindings of the invert demo: 1 negates.
func InvertKeys() KeyMap {
	return KeyMap{"1": Negation()}
}

// Lookup returns the action bound to key.
func (m KeyMap) Lookup(key string) (Action, bool) {
	a, ok := m[strings.ToLower(key)]
	return a, ok
}

// Keys returns the bound key names in sorted order.
func (m KeyMap) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
