package imgfx

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"unsafe"
)

// bytesPerPixel is the size of one canonical pixel: R, G, B, A.
const bytesPerPixel = 4

// Image is the canonical pixel buffer.
//
// Pixels are stored as straight (non-premultiplied) 8-bit RGBA, row-major,
// with no padding between rows. Width and height are fixed for the lifetime
// of the buffer. The zero value is an empty image that every transform
// rejects with ErrInvalidImage.
//
// Image implements image.Image, so it can be handed to encoders directly.
type Image struct {
	width  int
	height int
	pix    []uint8
}

// NewImage allocates a zeroed image (transparent black) of the given size.
func NewImage(width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidImage, width, height)
	}
	return &Image{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*bytesPerPixel),
	}, nil
}

// MustNewImage is like NewImage but panics on invalid dimensions.
func MustNewImage(width, height int) *Image {
	img, err := NewImage(width, height)
	if err != nil {
		panic(err)
	}
	return img
}

// FromPix wraps existing RGBA data without copying.
// len(pix) must be exactly 4*width*height. The caller must not keep
// mutating pix through another path while the Image is in use.
func FromPix(width, height int, pix []uint8) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidImage, width, height)
	}
	if want := width * height * bytesPerPixel; len(pix) != want {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrSizeMismatch, len(pix), want)
	}
	return &Image{width: width, height: height, pix: pix}, nil
}

// Width returns the image width in pixels.
func (m *Image) Width() int { return m.width }

// Height returns the image height in pixels.
func (m *Image) Height() int { return m.height }

// Stride returns the number of bytes per row.
func (m *Image) Stride() int { return m.width * bytesPerPixel }

// Pix returns the raw pixel data. Modifying it modifies the image.
func (m *Image) Pix() []uint8 { return m.pix }

// IsEmpty reports whether m is nil or has no pixels.
func (m *Image) IsEmpty() bool {
	return m == nil || m.width <= 0 || m.height <= 0 || len(m.pix) != m.width*m.height*bytesPerPixel
}

// SameSize reports whether m and o have identical dimensions.
func (m *Image) SameSize(o *Image) bool {
	return m.width == o.width && m.height == o.height
}

// NRGBAAt returns the pixel at (x, y). Out of range coordinates yield
// the zero colour.
func (m *Image) NRGBAAt(x, y int) color.NRGBA {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return color.NRGBA{}
	}
	i := (y*m.width + x) * bytesPerPixel
	p := m.pix[i : i+4 : i+4]
	return color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// SetNRGBA sets the pixel at (x, y). Out of range coordinates are ignored.
func (m *Image) SetNRGBA(x, y int, c color.NRGBA) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	i := (y*m.width + x) * bytesPerPixel
	p := m.pix[i : i+4 : i+4]
	p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
}

// Fill sets every pixel to c.
func (m *Image) Fill(c color.NRGBA) {
	for i := 0; i < len(m.pix); i += bytesPerPixel {
		m.pix[i+0] = c.R
		m.pix[i+1] = c.G
		m.pix[i+2] = c.B
		m.pix[i+3] = c.A
	}
}

// Clone returns a deep copy of the image.
func (m *Image) Clone() *Image {
	pix := make([]uint8, len(m.pix))
	copy(pix, m.pix)
	return &Image{width: m.width, height: m.height, pix: pix}
}

// CopyFrom overwrites m with the pixels of src. Both must have the same size.
func (m *Image) CopyFrom(src *Image) error {
	if !m.SameSize(src) {
		return fmt.Errorf("%w: %dx%d vs %dx%d", ErrSizeMismatch, m.width, m.height, src.width, src.height)
	}
	copy(m.pix, src.pix)
	return nil
}

// Equal reports whether m and o have the same size and pixels.
func (m *Image) Equal(o *Image) bool {
	if m == nil || o == nil {
		return m == o
	}
	return m.SameSize(o) && bytes.Equal(m.pix, o.pix)
}

// NRGBA returns an *image.NRGBA that shares pixel memory with m.
func (m *Image) NRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    m.pix,
		Stride: m.Stride(),
		Rect:   image.Rect(0, 0, m.width, m.height),
	}
}

// At implements the image.Image interface.
func (m *Image) At(x, y int) color.Color {
	return m.NRGBAAt(x, y)
}

// Bounds implements the image.Image interface.
func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// ColorModel implements the image.Image interface.
func (m *Image) ColorModel() color.Model {
	return color.NRGBAModel
}

// sharesStorage reports whether the memory of a and b overlaps.
func sharesStorage(a, b []uint8) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	pa := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	pb := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	return pa < pb+uintptr(len(b)) && pb < pa+uintptr(len(a))
}
