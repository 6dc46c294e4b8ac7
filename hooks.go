package imgfx

import "fmt"

// TransformKind identifies a transform.
type TransformKind uint8

// TransformBlur is the windowed average, the only transform long enough
// to be signalled.
const TransformBlur TransformKind = iota + 1

// String returns a string representation of the kind.
func (k TransformKind) String() string {
	if k == TransformBlur {
		return "blur"
	}
	return fmt.Sprintf("TransformKind(%d)", uint8(k))
}

// Transform describes a transform passed to Hooks.
type Transform struct {
	Kind TransformKind

	// Size is the window side of a blur, 0 otherwise.
	Size int

	// Width and Height are the dimensions of the source image.
	Width, Height int
}

// Hooks lets the caller signal a long operation to the user, for example
// by switching to a busy cursor.
//
// OnTransformStart runs right before the blur starts and OnTransformEnd
// right after it finishes, whether it succeeded or not. Either may be nil.
// Hooks run synchronously on the calling goroutine.
type Hooks struct {
	OnTransformStart func(Transform)
	OnTransformEnd   func(Transform)
}

func (h Hooks) start(t Transform) {
	if h.OnTransformStart != nil {
		h.OnTransformStart(t)
	}
}

func (h Hooks) end(t Transform) {
	if h.OnTransformEnd != nil {
		h.OnTransformEnd(t)
	}
}
