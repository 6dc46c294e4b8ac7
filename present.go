package imgfx

import (
	"fmt"
	"slices"

	"github.com/gogpu/gpucontext"
)

// Default display size used before an image is known.
const (
	DefaultWindowWidth  = 640
	DefaultWindowHeight = 480
)

// WindowSize returns the display size for an image of the given size.
// The default size is kept unless the image exceeds it in either
// direction, in which case the display takes the image size.
func WindowSize(imageWidth, imageHeight int) (width, height int) {
	if imageWidth > DefaultWindowWidth || imageHeight > DefaultWindowHeight {
		return imageWidth, imageHeight
	}
	return DefaultWindowWidth, DefaultWindowHeight
}

// textureDestroyer is implemented by textures that own back-end memory.
type textureDestroyer interface {
	Destroy()
}

// Rect is the placement of a presented image in display coordinates.
type Rect struct {
	X, Y float32
	W, H float32
}

// Presentation is a published texture together with its placement.
//
// A Presentation is immutable. Every content change and every move
// produces a new value; Generation only changes when the texture does.
type Presentation struct {
	// Texture is the back-end resource holding a snapshot of the image.
	Texture gpucontext.Texture

	// Rect is where the texture is drawn. W and H match the image size.
	Rect Rect

	// Generation counts published textures, starting at 1.
	Generation uint64
}

// Presenter keeps a display resource in sync with an Image.
//
// Each Publish uploads a snapshot of the image as a new texture and
// releases the previous one. Textures are never updated in place.
//
// Presenter is NOT safe for concurrent use.
type Presenter struct {
	creator    gpucontext.TextureCreator
	current    *Presentation
	x, y       float32
	generation uint64
	closed     bool
}

// NewPresenter creates a Presenter that allocates textures through creator.
func NewPresenter(creator gpucontext.TextureCreator) (*Presenter, error) {
	if creator == nil {
		return nil, ErrNilCreator
	}
	setActiveCreator(creator)
	return &Presenter{creator: creator}, nil
}

// Publish creates a texture from the current pixels of img and makes it the
// presented resource.
//
// The new texture is created before the previous one is destroyed. If the
// back end fails, Publish returns an error wrapping ErrPublish and the
// previous presentation stays in place. An empty image fails with an error
// matching both ErrPublish and ErrInvalidImage.
func (p *Presenter) Publish(img *Image) (*Presentation, error) {
	if p.closed {
		return nil, fmt.Errorf("%w: %w", ErrPublish, ErrPresenterClosed)
	}
	if img.IsEmpty() {
		return nil, fmt.Errorf("%w: %w", ErrPublish, ErrInvalidImage)
	}

	tex, err := p.creator.NewTextureFromRGBA(img.width, img.height, slices.Clone(img.pix))
	if err != nil {
		Logger().Warn("imgfx: publish rejected, keeping previous texture",
			"width", img.width,
			"height", img.height,
			"error", err)
		return nil, fmt.Errorf("%w: %w", ErrPublish, err)
	}
	if tex == nil {
		return nil, fmt.Errorf("%w: back end returned no texture", ErrPublish)
	}

	if p.current != nil {
		destroyTexture(p.current.Texture)
	}
	p.generation++
	p.current = &Presentation{
		Texture: tex,
		Rect: Rect{
			X: p.x,
			Y: p.y,
			W: float32(img.width),
			H: float32(img.height),
		},
		Generation: p.generation,
	}

	Logger().Debug("imgfx: published",
		"generation", p.generation,
		"width", img.width,
		"height", img.height)
	return p.current, nil
}

// Current returns the presented resource, or nil before the first Publish.
func (p *Presenter) Current() *Presentation {
	return p.current
}

// Generation returns the number of textures published so far.
func (p *Presenter) Generation() uint64 {
	return p.generation
}

// Position returns the placement origin.
func (p *Presenter) Position() (x, y float32) {
	return p.x, p.y
}

// SetPosition moves the placement origin to (x, y).
func (p *Presenter) SetPosition(x, y float32) {
	p.x, p.y = x, y
	if p.current != nil {
		moved := *p.current
		moved.Rect.X, moved.Rect.Y = x, y
		p.current = &moved
	}
}

// Translate moves the placement origin by (dx, dy).
func (p *Presenter) Translate(dx, dy float32) {
	p.SetPosition(p.x+dx, p.y+dy)
}

// DrawTo draws the presented texture at its position. It does nothing
// before the first Publish.
func (p *Presenter) DrawTo(dc gpucontext.TextureDrawer) error {
	if p.closed {
		return ErrPresenterClosed
	}
	if p.current == nil {
		return nil
	}
	return dc.DrawTexture(p.current.Texture, p.current.Rect.X, p.current.Rect.Y)
}

// Close destroys the presented texture. Close is idempotent.
func (p *Presenter) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	if p.current != nil {
		destroyTexture(p.current.Texture)
		p.current = nil
	}
	return nil
}

func destroyTexture(tex gpucontext.Texture) {
	if d, ok := tex.(textureDestroyer); ok {
		d.Destroy()
	}
}
