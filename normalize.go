package imgfx

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Normalize converts a decoded image of any layout into a new canonical
// Image.
//
// Sources without alpha become opaque (A=255), premultiplied sources are
// un-premultiplied and 16-bit sources are reduced to 8 bits. The source is
// re-based so that its Bounds().Min maps to (0, 0). src is never modified.
//
// Normalize fails with ErrLoad if src is nil, has empty bounds or reports
// no colour model.
func Normalize(src image.Image) (*Image, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil source image", ErrLoad)
	}
	if m, ok := src.(*Image); ok {
		if m.IsEmpty() {
			return nil, fmt.Errorf("%w: empty source image", ErrLoad)
		}
		return m.Clone(), nil
	}

	b := src.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%w: empty bounds %v", ErrLoad, b)
	}
	if src.ColorModel() == nil {
		return nil, fmt.Errorf("%w: unsupported source layout %T", ErrLoad, src)
	}

	dst, err := NewImage(b.Dx(), b.Dy())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	layout := ClassifyLayout(src)
	switch s := src.(type) {
	case *image.NRGBA:
		copyRows(dst, s.Pix, s.Stride, s.PixOffset(b.Min.X, b.Min.Y))
	case *image.RGBA:
		// Premultiplied and straight alpha coincide when every pixel is opaque.
		if s.Opaque() {
			copyRows(dst, s.Pix, s.Stride, s.PixOffset(b.Min.X, b.Min.Y))
		} else {
			draw.Draw(dst.NRGBA(), dst.Bounds(), src, b.Min, draw.Src)
		}
	case *image.Gray:
		normalizeGray(dst, s)
	default:
		draw.Draw(dst.NRGBA(), dst.Bounds(), src, b.Min, draw.Src)
	}

	Logger().Debug("imgfx: normalized image",
		"layout", layout.String(),
		"width", dst.width,
		"height", dst.height)
	return dst, nil
}

// copyRows copies rows of straight RGBA8 data starting at off.
func copyRows(dst *Image, pix []uint8, stride, off int) {
	rowBytes := dst.Stride()
	if stride == rowBytes && off == 0 && len(pix) >= len(dst.pix) {
		copy(dst.pix, pix)
		return
	}
	for y := 0; y < dst.height; y++ {
		start := off + y*stride
		copy(dst.pix[y*rowBytes:(y+1)*rowBytes], pix[start:start+rowBytes])
	}
}

// normalizeGray expands 8-bit grayscale to opaque RGBA.
func normalizeGray(dst *Image, src *image.Gray) {
	b := src.Bounds()
	for y := 0; y < dst.height; y++ {
		srcRow := src.PixOffset(b.Min.X, b.Min.Y+y)
		dstRow := y * dst.Stride()
		for x := 0; x < dst.width; x++ {
			v := src.Pix[srcRow+x]
			i := dstRow + x*bytesPerPixel
			dst.pix[i+0] = v
			dst.pix[i+1] = v
			dst.pix[i+2] = v
			dst.pix[i+3] = 0xff
		}
	}
}
