package imgfx

import (
	"image"
	"image/color"
)

// Layout identifies the pixel storage of a decoded source image.
// It only describes input; the canonical layout is always straight RGBA8.
type Layout uint8

const (
	// LayoutUnknown is any image type without a dedicated path.
	LayoutUnknown Layout = iota

	// LayoutGray8 is 8-bit grayscale.
	LayoutGray8

	// LayoutGray16 is 16-bit grayscale.
	LayoutGray16

	// LayoutYCbCr is chroma-subsampled YCbCr, typical of JPEG. No alpha.
	LayoutYCbCr

	// LayoutRGBA8 is 8-bit premultiplied RGBA.
	LayoutRGBA8

	// LayoutNRGBA8 is 8-bit straight RGBA, identical to the canonical layout.
	LayoutNRGBA8

	// LayoutRGBA16 is 16-bit premultiplied RGBA.
	LayoutRGBA16

	// LayoutNRGBA16 is 16-bit straight RGBA.
	LayoutNRGBA16

	// LayoutPaletted is an indexed image.
	LayoutPaletted

	// LayoutCMYK is 8-bit CMYK.
	LayoutCMYK

	layoutCount
)

// LayoutInfo describes a source layout.
type LayoutInfo struct {
	// HasAlpha reports whether the layout can carry non-opaque pixels.
	HasAlpha bool

	// IsPremultiplied reports whether colour channels are premultiplied.
	IsPremultiplied bool

	// BitsPerChannel is the sample depth.
	BitsPerChannel int
}

var layoutInfoTable = [layoutCount]LayoutInfo{
	LayoutUnknown:  {HasAlpha: true, IsPremultiplied: true, BitsPerChannel: 16},
	LayoutGray8:    {BitsPerChannel: 8},
	LayoutGray16:   {BitsPerChannel: 16},
	LayoutYCbCr:    {BitsPerChannel: 8},
	LayoutRGBA8:    {HasAlpha: true, IsPremultiplied: true, BitsPerChannel: 8},
	LayoutNRGBA8:   {HasAlpha: true, BitsPerChannel: 8},
	LayoutRGBA16:   {HasAlpha: true, IsPremultiplied: true, BitsPerChannel: 16},
	LayoutNRGBA16:  {HasAlpha: true, BitsPerChannel: 16},
	LayoutPaletted: {HasAlpha: true, BitsPerChannel: 8},
	LayoutCMYK:     {BitsPerChannel: 8},
}

// Info returns the LayoutInfo for l.
func (l Layout) Info() LayoutInfo {
	if l >= layoutCount {
		return LayoutInfo{}
	}
	return layoutInfoTable[l]
}

// HasAlpha reports whether the layout can carry non-opaque pixels.
func (l Layout) HasAlpha() bool { return l.Info().HasAlpha }

// BitsPerChannel returns the sample depth of the layout.
func (l Layout) BitsPerChannel() int { return l.Info().BitsPerChannel }

// String returns a string representation of the layout.
func (l Layout) String() string {
	switch l {
	case LayoutGray8:
		return "Gray8"
	case LayoutGray16:
		return "Gray16"
	case LayoutYCbCr:
		return "YCbCr"
	case LayoutRGBA8:
		return "RGBA8"
	case LayoutNRGBA8:
		return "NRGBA8"
	case LayoutRGBA16:
		return "RGBA16"
	case LayoutNRGBA16:
		return "NRGBA16"
	case LayoutPaletted:
		return "Paletted"
	case LayoutCMYK:
		return "CMYK"
	default:
		return "Unknown"
	}
}

// ClassifyLayout reports the storage layout of src.
func ClassifyLayout(src image.Image) Layout {
	switch src.(type) {
	case *image.Gray:
		return LayoutGray8
	case *image.Gray16:
		return LayoutGray16
	case *image.YCbCr:
		return LayoutYCbCr
	case *image.RGBA:
		return LayoutRGBA8
	case *image.NRGBA, *Image:
		return LayoutNRGBA8
	case *image.RGBA64:
		return LayoutRGBA16
	case *image.NRGBA64:
		return LayoutNRGBA16
	case *image.Paletted:
		return LayoutPaletted
	case *image.CMYK:
		return LayoutCMYK
	}
	switch src.ColorModel() {
	case color.GrayModel:
		return LayoutGray8
	case color.NRGBAModel:
		return LayoutNRGBA8
	}
	return LayoutUnknown
}
