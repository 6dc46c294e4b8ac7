package imgfx

import "fmt"

// Algorithm selects how the windowed average is computed. Every algorithm
// produces bitwise-identical output.
type Algorithm uint8

const (
	// AlgorithmSeparable sums each row with a sliding window and slides a
	// column of row sums down the image. O(w*h) time regardless of the
	// window size, O(w) extra memory.
	AlgorithmSeparable Algorithm = iota

	// AlgorithmNaive visits the full window of every pixel. O(w*h*size²).
	// Kept as the reference implementation.
	AlgorithmNaive
)

// String returns a string representation of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmSeparable:
		return "separable"
	case AlgorithmNaive:
		return "naive"
	default:
		return fmt.Sprintf("Algorithm(%d)", uint8(a))
	}
}

// BlurOption configures a single windowed average.
type BlurOption func(*blurOptions)

type blurOptions struct {
	algorithm Algorithm
	scratch   *Scratch
}

// WithBlurAlgorithm selects the algorithm. The default is AlgorithmSeparable.
func WithBlurAlgorithm(a Algorithm) BlurOption {
	return func(o *blurOptions) {
		o.algorithm = a
	}
}

// WithScratch makes the blur reuse the accumulator held by s instead of
// allocating one per call.
func WithScratch(s *Scratch) BlurOption {
	return func(o *blurOptions) {
		o.scratch = s
	}
}

// WindowedAverage returns a new image in which every pixel is the average
// of the size x size window of img centred on it.
//
// Samples that fall outside img count as black (zero padding), so the
// borders darken in proportion to the share of the window that lies
// outside. Each output channel is the integer sum of the in-bounds samples
// divided by size², truncated. Output alpha is always 255. img is not
// modified.
//
// size must be positive and odd, with no upper bound; size 1 copies the
// colour channels. Errors are ErrInvalidImage for a nil or empty image and ErrInvalidKernel for a
// bad size, both reported before anything is allocated.
func WindowedAverage(img *Image, size int, opts ...BlurOption) (*Image, error) {
	if img.IsEmpty() {
		return nil, ErrInvalidImage
	}
	k, err := NewKernel(size)
	if err != nil {
		return nil, err
	}
	dst, err := NewImage(img.width, img.height)
	if err != nil {
		return nil, err
	}
	windowedAverage(dst, img, k, newBlurOptions(opts))
	return dst, nil
}

// WindowedAverageInto is like WindowedAverage but writes into dst, which
// must have the size of src and must not share its pixel storage.
func WindowedAverageInto(dst, src *Image, size int, opts ...BlurOption) error {
	if src.IsEmpty() || dst.IsEmpty() {
		return ErrInvalidImage
	}
	k, err := NewKernel(size)
	if err != nil {
		return err
	}
	if !dst.SameSize(src) {
		return fmt.Errorf("%w: dst %dx%d, src %dx%d",
			ErrSizeMismatch, dst.width, dst.height, src.width, src.height)
	}
	if sharesStorage(dst.pix, src.pix) {
		return ErrAliasedBuffer
	}
	windowedAverage(dst, src, k, newBlurOptions(opts))
	return nil
}

func newBlurOptions(opts []BlurOption) blurOptions {
	var o blurOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// windowedAverage dispatches to the selected algorithm. Arguments are
// already validated.
func windowedAverage(dst, src *Image, k Kernel, o blurOptions) {
	switch o.algorithm {
	case AlgorithmNaive:
		blurNaive(dst, src, k)
	default:
		s := o.scratch
		if s == nil {
			s = &Scratch{}
		}
		blurSeparable(dst, src, k, s)
	}
}

// blurNaive sums the clipped window of every destination pixel.
func blurNaive(dst, src *Image, k Kernel) {
	w, h := src.width, src.height
	half := k.HalfSize()
	area := k.Area()
	stride := src.Stride()

	for y := 0; y < h; y++ {
		y0, y1 := max(y-half, 0), min(y+half, h-1)
		for x := 0; x < w; x++ {
			x0, x1 := max(x-half, 0), min(x+half, w-1)

			var r, g, b uint64
			for sy := y0; sy <= y1; sy++ {
				row := src.pix[sy*stride : (sy+1)*stride]
				for sx := x0; sx <= x1; sx++ {
					i := sx * bytesPerPixel
					r += uint64(row[i+0])
					g += uint64(row[i+1])
					b += uint64(row[i+2])
				}
			}

			d := (y*w + x) * bytesPerPixel
			dst.pix[d+0] = uint8(r / area)
			dst.pix[d+1] = uint8(g / area)
			dst.pix[d+2] = uint8(b / area)
			dst.pix[d+3] = 0xff
		}
	}
}

// blurSeparable computes the same sums as blurNaive with sliding windows.
//
// cols holds, per column, the sum of the horizontal window sums of the rows
// currently inside the vertical window. When a row enters or leaves that
// window its horizontal sums are computed and added or subtracted, so only
// O(w) state is kept. Out-of-bounds samples never enter any sum, which is
// exactly zero padding.
func blurSeparable(dst, src *Image, k Kernel, s *Scratch) {
	w, h := src.width, src.height
	half := k.HalfSize()
	area := k.Area()
	stride := src.Stride()

	acc := s.accumulator(2 * 3 * w)
	cols, row := acc[:3*w], acc[3*w:]
	clear(cols)

	for y := 0; y <= half && y < h; y++ {
		rowSums(row, src.pix[y*stride:(y+1)*stride], w, half)
		addRow(cols, row)
	}
	for y := 0; y < h; y++ {
		out := dst.pix[y*stride : (y+1)*stride]
		for x := 0; x < w; x++ {
			c := x * 3
			d := x * bytesPerPixel
			out[d+0] = uint8(cols[c+0] / area)
			out[d+1] = uint8(cols[c+1] / area)
			out[d+2] = uint8(cols[c+2] / area)
			out[d+3] = 0xff
		}

		if in := y + half + 1; in < h {
			rowSums(row, src.pix[in*stride:(in+1)*stride], w, half)
			addRow(cols, row)
		}
		if gone := y - half; gone >= 0 {
			rowSums(row, src.pix[gone*stride:(gone+1)*stride], w, half)
			subRow(cols, row)
		}
	}
}

// rowSums writes to out the clipped horizontal window sums of one row,
// three channels per pixel.
func rowSums(out []uint64, row []uint8, w, half int) {
	var r, g, b uint64
	for x := 0; x <= half && x < w; x++ {
		i := x * bytesPerPixel
		r += uint64(row[i+0])
		g += uint64(row[i+1])
		b += uint64(row[i+2])
	}
	for x := 0; x < w; x++ {
		o := x * 3
		out[o+0], out[o+1], out[o+2] = r, g, b

		if in := x + half + 1; in < w {
			i := in * bytesPerPixel
			r += uint64(row[i+0])
			g += uint64(row[i+1])
			b += uint64(row[i+2])
		}
		if gone := x - half; gone >= 0 {
			i := gone * bytesPerPixel
			r -= uint64(row[i+0])
			g -= uint64(row[i+1])
			b -= uint64(row[i+2])
		}
	}
}

func addRow(dst, src []uint64) {
	for i, v := range src {
		dst[i] += v
	}
}

func subRow(dst, src []uint64) {
	for i, v := range src {
		dst[i] -= v
	}
}
