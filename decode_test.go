package imgfx

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func testSource() *image.NRGBA {
	src := image.NewNRGBA(image.Rect(0, 0, 6, 4))
	for y := range 4 {
		for x := range 6 {
			src.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 40), G: uint8(y * 60), B: 90, A: 255})
		}
	}
	return src
}

func TestDecodeFormats(t *testing.T) {
	src := testSource()
	tests := []struct {
		format string
		encode func(io.Writer, image.Image) error
	}{
		{"png", png.Encode},
		{"bmp", bmp.Encode},
		{"tiff", func(w io.Writer, m image.Image) error { return tiff.Encode(w, m, nil) }},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tt.encode(&buf, src); err != nil {
				t.Fatalf("encode: %v", err)
			}

			decoded, format, err := DecodeBytes(buf.Bytes())
			if err != nil {
				t.Fatalf("DecodeBytes() = %v", err)
			}
			if format != tt.format {
				t.Errorf("format = %q, want %q", format, tt.format)
			}

			img, err := Normalize(decoded)
			if err != nil {
				t.Fatalf("Normalize() = %v", err)
			}
			checkConverted(t, src, img)
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, _, err := DecodeBytes(nil); !errors.Is(err, ErrLoad) {
		t.Errorf("DecodeBytes(nil) error = %v, want ErrLoad", err)
	}
	if _, _, err := DecodeBytes([]byte("not an image at all")); !errors.Is(err, ErrLoad) {
		t.Errorf("DecodeBytes(text) error = %v, want ErrLoad", err)
	}

	missing := filepath.Join(t.TempDir(), "missing.png")
	_, _, err := DecodeFile(missing)
	if !errors.Is(err, ErrLoad) || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("DecodeFile(missing) error = %v, want ErrLoad and ErrNotExist", err)
	}
	if _, err := LoadFile(missing); !errors.Is(err, ErrLoad) {
		t.Errorf("LoadFile(missing) error = %v, want ErrLoad", err)
	}
}

func TestSaveAndLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	img := noiseImage(t, 9, 7, 99)

	if err := img.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() = %v", err)
	}
	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() = %v", err)
	}
	if !got.Equal(img) {
		t.Error("PNG round trip changed pixels")
	}
}

func TestSessionLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.png")
	img := noiseImage(t, 4, 4, 5)
	if err := img.SavePNG(path); err != nil {
		t.Fatal(err)
	}

	s, err := NewSession(&mockCreator{})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.LoadFile(path); err != nil {
		t.Fatalf("LoadFile() = %v", err)
	}
	if !s.Original().Equal(img) {
		t.Error("loaded image differs from the file")
	}

	if err := s.LoadFile(filepath.Join(t.TempDir(), "missing.png")); !errors.Is(err, ErrLoad) {
		t.Errorf("LoadFile(missing) error = %v, want ErrLoad", err)
	}
	if !s.Original().Equal(img) {
		t.Error("failed load replaced the image")
	}
}

func TestEncodePNGEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := (&Image{}).EncodePNG(&buf); !errors.Is(err, ErrInvalidImage) {
		t.Errorf("EncodePNG() error = %v, want ErrInvalidImage", err)
	}
	if buf.Len() != 0 {
		t.Errorf("EncodePNG() wrote %d bytes for an empty image", buf.Len())
	}
}
