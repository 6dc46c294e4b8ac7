package imgfx

import "errors"

// Errors returned by imgfx. Callers match them with errors.Is; the
// returned values usually wrap one of these with extra context.
var (
	// ErrLoad is returned when an image cannot be decoded or normalized.
	// No partial Image is produced.
	ErrLoad = errors.New("imgfx: load failed")

	// ErrInvalidImage is returned when a transform is given a nil or
	// zero-dimension image, or a session has no image loaded.
	ErrInvalidImage = errors.New("imgfx: invalid image")

	// ErrInvalidKernel is returned when a blur kernel size is zero,
	// negative or even.
	ErrInvalidKernel = errors.New("imgfx: invalid kernel size")

	// ErrPublish is returned when the presentation back end rejects a buffer.
	// The previously published resource is left in place.
	ErrPublish = errors.New("imgfx: publish failed")

	// ErrSizeMismatch is returned when a destination buffer does not have
	// the dimensions of its source.
	ErrSizeMismatch = errors.New("imgfx: buffer size mismatch")

	// ErrAliasedBuffer is returned when a blur destination shares pixel
	// storage with its source.
	ErrAliasedBuffer = errors.New("imgfx: destination aliases source")

	// ErrNilCreator is returned when a Presenter is built without a
	// texture creator.
	ErrNilCreator = errors.New("imgfx: nil texture creator")

	// ErrPresenterClosed is returned by operations on a closed Presenter.
	ErrPresenterClosed = errors.New("imgfx: presenter is closed")

	// ErrSessionClosed is returned by operations on a closed Session.
	ErrSessionClosed = errors.New("imgfx: session is closed")
)
