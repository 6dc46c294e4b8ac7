package backend

import (
	"fmt"
	"image"
	"image/color"

	"github.com/chewxy/math32"
	"github.com/gogpu/gpucontext"
	"golang.org/x/image/draw"
)

// ClearColor is the colour a Screen is cleared to before drawing.
var ClearColor = color.NRGBA{R: 128, G: 128, B: 128, A: 255}

// Screen is an offscreen window frame that software textures are drawn
// onto. It implements gpucontext.TextureDrawer.
//
// A frame is produced by Clear followed by any number of DrawTexture
// calls. Textures are composited with source-over at their position,
// rounded to whole pixels; the parts outside the frame are clipped.
type Screen struct {
	backend *SoftwareBackend
	frame   *image.NRGBA
}

// NewScreen creates a width x height screen drawing textures of b.
func NewScreen(b *SoftwareBackend, width, height int) (*Screen, error) {
	if b == nil {
		return nil, ErrBackendNotAvailable
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: screen %dx%d", ErrInvalidDimensions, width, height)
	}
	s := &Screen{
		backend: b,
		frame:   image.NewNRGBA(image.Rect(0, 0, width, height)),
	}
	s.Clear()
	return s, nil
}

// Clear fills the frame with ClearColor.
func (s *Screen) Clear() {
	draw.Draw(s.frame, s.frame.Bounds(), image.NewUniform(ClearColor), image.Point{}, draw.Src)
}

// DrawTexture implements gpucontext.TextureDrawer.
func (s *Screen) DrawTexture(tex gpucontext.Texture, x, y float32) error {
	st, ok := tex.(*SoftwareTexture)
	if !ok || st.owner != s.backend {
		return ErrForeignTexture
	}
	src, err := st.Image()
	if err != nil {
		return err
	}
	at := image.Pt(int(math32.Round(x)), int(math32.Round(y)))
	r := src.Bounds().Add(at)
	draw.Draw(s.frame, r, src, image.Point{}, draw.Over)
	return nil
}

// TextureCreator implements gpucontext.TextureDrawer.
func (s *Screen) TextureCreator() gpucontext.TextureCreator {
	return s.backend
}

// Frame returns the composed frame. It is overwritten by the next Clear or
// DrawTexture.
func (s *Screen) Frame() *image.NRGBA {
	return s.frame
}

// Size returns the frame size.
func (s *Screen) Size() (width, height int) {
	b := s.frame.Bounds()
	return b.Dx(), b.Dy()
}
