package imgfx

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	// Registered decoders. The standard library covers PNG, JPEG and GIF;
	// x/image adds the remaining formats the demos are fed with.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Decode decodes an image from r, auto-detecting the format.
// The result keeps its source layout; pass it to Normalize.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("%w: decode: %w", ErrLoad, err)
	}
	return img, format, nil
}

// DecodeBytes decodes an image held in memory.
func DecodeBytes(data []byte) (image.Image, string, error) {
	if len(data) == 0 {
		return nil, "", fmt.Errorf("%w: empty data", ErrLoad)
	}
	return Decode(bytes.NewReader(data))
}

// DecodeFile opens and decodes the image at path.
func DecodeFile(path string) (image.Image, string, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, "", fmt.Errorf("%w: open file: %w", ErrLoad, err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// LoadFile decodes the image at path and normalizes it.
func LoadFile(path string) (*Image, error) {
	src, format, err := DecodeFile(path)
	if err != nil {
		return nil, err
	}
	img, err := Normalize(src)
	if err != nil {
		return nil, err
	}
	Logger().Info("imgfx: image loaded",
		"path", path,
		"format", format,
		"layout", ClassifyLayout(src).String(),
		"width", img.Width(),
		"height", img.Height())
	return img, nil
}

// EncodePNG writes m to w as PNG.
func (m *Image) EncodePNG(w io.Writer) error {
	if m.IsEmpty() {
		return ErrInvalidImage
	}
	if err := png.Encode(w, m.NRGBA()); err != nil {
		return fmt.Errorf("imgfx: encode PNG: %w", err)
	}
	return nil
}

// SavePNG writes m to the file at path as PNG.
func (m *Image) SavePNG(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imgfx: create file: %w", err)
	}
	if err := m.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
