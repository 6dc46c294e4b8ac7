package imgfx

// Scratch holds the reusable buffers of the windowed average: the output
// image and the column-sum accumulator of the separable pass. The
// accumulator is proportional to the image width only.
//
// Buffers are allocated on first use, reused while the requested size
// stays the same and reallocated when it changes. A Scratch is owned by a
// single caller and is not safe for concurrent use.
type Scratch struct {
	img  *Image
	sums []uint64
}

// NewScratch returns an empty Scratch. The zero value is also ready to use.
func NewScratch() *Scratch {
	return &Scratch{}
}

// Buffer returns the scratch output image sized width x height, allocating
// it when missing or of a different size. Contents are unspecified.
func (s *Scratch) Buffer(width, height int) (*Image, error) {
	if s.img != nil && s.img.width == width && s.img.height == height {
		return s.img, nil
	}
	img, err := NewImage(width, height)
	if err != nil {
		return nil, err
	}
	if s.img != nil {
		Logger().Debug("imgfx: scratch reallocated",
			"from", [2]int{s.img.width, s.img.height},
			"to", [2]int{width, height})
	}
	s.img = img
	return img, nil
}

// Exchange hands the scratch image over to the caller and keeps img as the
// scratch image for the next use. img may be nil.
func (s *Scratch) Exchange(img *Image) *Image {
	out := s.img
	s.img = img
	return out
}

// Release drops every buffer held by s.
func (s *Scratch) Release() {
	s.img = nil
	s.sums = nil
}

// accumulator returns a slice of n channel sums, growing the backing array
// when needed. Contents are unspecified.
func (s *Scratch) accumulator(n int) []uint64 {
	if cap(s.sums) < n {
		s.sums = make([]uint64, n)
	}
	return s.sums[:n]
}
