package imgfx

import (
	"fmt"
	"math"
)

// Kernel is a square box window with uniform weights.
//
// The zero value is invalid; use NewKernel.
type Kernel struct {
	size int
}

// NewKernel validates size and returns the box kernel of that side.
// size must be positive and odd. There is no upper bound: a window larger
// than the image simply covers more out-of-bounds samples.
func NewKernel(size int) (Kernel, error) {
	switch {
	case size <= 0:
		return Kernel{}, fmt.Errorf("%w: %d is not positive", ErrInvalidKernel, size)
	case size%2 == 0:
		return Kernel{}, fmt.Errorf("%w: %d is even", ErrInvalidKernel, size)
	}
	return Kernel{size: size}, nil
}

// Size returns the side length of the window.
func (k Kernel) Size() int { return k.size }

// HalfSize returns the number of samples on each side of the centre.
func (k Kernel) HalfSize() int { return (k.size - 1) / 2 }

// Area returns the number of samples in the window, the divisor of the
// average. It saturates at math.MaxUint64, which is already larger than any
// reachable channel sum.
func (k Kernel) Area() uint64 {
	if uint64(k.size) >= 1<<32 {
		return math.MaxUint64
	}
	return uint64(k.size) * uint64(k.size)
}

// String implements fmt.Stringer.
func (k Kernel) String() string {
	return fmt.Sprintf("box %dx%d", k.size, k.size)
}
