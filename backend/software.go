package backend

import (
	"image"
	"log/slog"
	"slices"
	"sync/atomic"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// Backend name constants.
const (
	// BackendSoftware is the name of the CPU memory backend.
	BackendSoftware = "software"
	// BackendNative is the name of the Pure Go GPU backend (gogpu/wgpu HAL).
	BackendNative = "native"
)

// init registers the software backend on package import.
func init() {
	Register(BackendSoftware, func() PresentationBackend {
		return NewSoftwareBackend()
	})
}

// SoftwareBackend keeps textures in CPU memory.
// Textures are private copies of the uploaded pixels, so they can be read
// back (see Screen).
type SoftwareBackend struct {
	maxDim      int
	initialized bool
	live        atomic.Int64
	logger      atomic.Pointer[slog.Logger]
}

// SoftwareOption configures a SoftwareBackend.
type SoftwareOption func(*SoftwareBackend)

// WithMaxDimension limits the side of created textures. The default is
// the WebGPU default limit for 2D textures.
func WithMaxDimension(n int) SoftwareOption {
	return func(b *SoftwareBackend) {
		b.maxDim = n
	}
}

// NewSoftwareBackend creates a new software backend.
func NewSoftwareBackend(opts ...SoftwareOption) *SoftwareBackend {
	b := &SoftwareBackend{
		maxDim: int(gputypes.DefaultLimits().MaxTextureDimension2D),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name returns the backend identifier.
func (b *SoftwareBackend) Name() string {
	return BackendSoftware
}

// Init initializes the backend.
func (b *SoftwareBackend) Init() error {
	b.initialized = true
	return nil
}

// Close releases all backend resources.
func (b *SoftwareBackend) Close() {
	b.initialized = false
}

// SetLogger sets the logger used by the backend.
func (b *SoftwareBackend) SetLogger(l *slog.Logger) {
	b.logger.Store(l)
}

func (b *SoftwareBackend) log() *slog.Logger {
	if l := b.logger.Load(); l != nil {
		return l
	}
	return slog.New(slog.DiscardHandler)
}

// MaxDimension returns the largest accepted texture side.
func (b *SoftwareBackend) MaxDimension() int {
	return b.maxDim
}

// LiveTextures returns the number of created and not yet destroyed textures.
func (b *SoftwareBackend) LiveTextures() int {
	return int(b.live.Load())
}

// NewTextureFromRGBA implements gpucontext.TextureCreator. data is copied.
func (b *SoftwareBackend) NewTextureFromRGBA(width, height int, data []byte) (gpucontext.Texture, error) {
	if !b.initialized {
		return nil, ErrNotInitialized
	}
	if err := CheckRGBA(width, height, data, b.maxDim); err != nil {
		b.log().Warn("backend: software texture rejected",
			"width", width, "height", height, "bytes", len(data), "error", err)
		return nil, err
	}
	b.live.Add(1)
	b.log().Debug("backend: software texture created",
		"width", width, "height", height, "live", b.live.Load())
	return &SoftwareTexture{
		owner:  b,
		width:  width,
		height: height,
		pix:    slices.Clone(data),
	}, nil
}

// SoftwareTexture is a texture held in CPU memory.
type SoftwareTexture struct {
	owner     *SoftwareBackend
	width     int
	height    int
	pix       []byte
	destroyed bool
}

// Width implements gpucontext.Texture.
func (t *SoftwareTexture) Width() int { return t.width }

// Height implements gpucontext.Texture.
func (t *SoftwareTexture) Height() int { return t.height }

// Destroyed reports whether Destroy has been called.
func (t *SoftwareTexture) Destroyed() bool { return t.destroyed }

// Destroy releases the pixel memory. Destroy is idempotent.
func (t *SoftwareTexture) Destroy() {
	if t.destroyed {
		return
	}
	t.destroyed = true
	t.pix = nil
	t.owner.live.Add(-1)
}

// Image returns the texture pixels as straight RGBA.
// The image shares memory with the texture.
func (t *SoftwareTexture) Image() (*image.NRGBA, error) {
	if t.destroyed {
		return nil, ErrTextureDestroyed
	}
	return &image.NRGBA{
		Pix:    t.pix,
		Stride: t.width * 4,
		Rect:   image.Rect(0, 0, t.width, t.height),
	}, nil
}
