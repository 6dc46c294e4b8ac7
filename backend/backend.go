package backend

import (
	"errors"
	"log/slog"

	"github.com/gogpu/gpucontext"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNotInitialized is returned when textures are requested before Init.
	ErrNotInitialized = errors.New("backend: not initialized")

	// ErrInvalidDimensions is returned when a texture size is zero, negative
	// or above the backend limit.
	ErrInvalidDimensions = errors.New("backend: invalid texture dimensions")

	// ErrDataSize is returned when pixel data is not width*height*4 bytes.
	ErrDataSize = errors.New("backend: pixel data size mismatch")

	// ErrTextureDestroyed is returned when using a destroyed texture.
	ErrTextureDestroyed = errors.New("backend: texture has been destroyed")

	// ErrForeignTexture is returned when a texture is drawn by a backend that
	// did not create it.
	ErrForeignTexture = errors.New("backend: texture was not created by this backend")
)

// PresentationBackend is a place textures can be created in.
// It abstracts where presented images live, allowing the library to run on
// the CPU or on a GPU device.
//
// Backends must be registered via Register() and are selected via
// Get() or Default().
type PresentationBackend interface {
	gpucontext.TextureCreator

	// Name returns the backend identifier (e.g., "software", "native").
	Name() string

	// Init acquires the backend resources.
	// This should be called before any texture is created.
	Init() error

	// Close releases all backend resources.
	// The backend should not be used after Close is called.
	Close()

	// SetLogger sets the logger used by the backend. nil silences it.
	SetLogger(l *slog.Logger)
}

// CheckRGBA validates the arguments of a NewTextureFromRGBA call against the
// maximum texture side maxDim.
func CheckRGBA(width, height int, data []byte, maxDim int) error {
	if width <= 0 || height <= 0 || width > maxDim || height > maxDim {
		return ErrInvalidDimensions
	}
	if len(data) != width*height*4 {
		return ErrDataSize
	}
	return nil
}
