package imgfx

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/gogpu/gpucontext"
)

// Session ties a loaded image, its transforms and its presentation together.
//
// The session keeps the loaded image untouched and works on a copy, the
// current image. Every transform that changes the current image publishes
// it again, so the presentation always reflects the last successful
// transform. Blur results become the current image and feed later
// transforms; Reset goes back to the loaded image.
//
// Session is NOT safe for concurrent use.
type Session struct {
	presenter *Presenter
	original  *Image
	current   *Image
	scratch   Scratch

	hooks     Hooks
	algorithm Algorithm
	keys      KeyMap
	log       *slog.Logger
	closed    bool
}

// NewSession creates a session presenting through creator. No image is
// loaded yet; transforms fail with ErrInvalidImage until Load succeeds.
func NewSession(creator gpucontext.TextureCreator, opts ...SessionOption) (*Session, error) {
	o := defaultSessionOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p, err := NewPresenter(creator)
	if err != nil {
		return nil, err
	}
	p.SetPosition(o.x, o.y)

	return &Session{
		presenter: p,
		hooks:     o.hooks,
		algorithm: o.algorithm,
		keys:      o.keys,
		log:       o.logger,
	}, nil
}

func (s *Session) logger() *slog.Logger {
	if s.log != nil {
		return s.log
	}
	return Logger()
}

// Load normalizes src, makes it the loaded and current image and publishes
// it. On ErrLoad the previously loaded image is kept.
func (s *Session) Load(src image.Image) error {
	if s.closed {
		return ErrSessionClosed
	}
	img, err := Normalize(src)
	if err != nil {
		s.logger().Warn("imgfx: load failed, keeping previous image", "error", err)
		return err
	}
	s.install(img)
	return s.publish()
}

// LoadFile decodes the image at path and loads it.
func (s *Session) LoadFile(path string) error {
	if s.closed {
		return ErrSessionClosed
	}
	img, err := LoadFile(path)
	if err != nil {
		s.logger().Warn("imgfx: load failed, keeping previous image", "path", path, "error", err)
		return err
	}
	s.install(img)
	return s.publish()
}

func (s *Session) install(img *Image) {
	s.original = img
	s.current = img.Clone()
	s.logger().Debug("imgfx: image installed", "width", img.width, "height", img.height)
}

// Negate inverts the current image in place and republishes it.
func (s *Session) Negate() error {
	if err := s.ready(); err != nil {
		return err
	}
	if err := Negate(s.current); err != nil {
		return err
	}
	s.logger().Debug("imgfx: negated")
	return s.publish()
}

// Blur replaces the current image with its windowed average of the given
// size and republishes it. Hooks run around the computation.
//
// The result is written into the session's scratch buffer, which then
// becomes the current image; the previous current image is kept as the
// scratch buffer of the next blur.
func (s *Session) Blur(size int) error {
	if err := s.ready(); err != nil {
		return err
	}
	if _, err := NewKernel(size); err != nil {
		return err
	}
	dst, err := s.scratch.Buffer(s.current.width, s.current.height)
	if err != nil {
		return err
	}

	t := Transform{
		Kind:   TransformBlur,
		Size:   size,
		Width:  s.current.width,
		Height: s.current.height,
	}
	start := time.Now()
	s.hooks.start(t)
	err = WindowedAverageInto(dst, s.current, size,
		WithBlurAlgorithm(s.algorithm),
		WithScratch(&s.scratch))
	s.hooks.end(t)
	if err != nil {
		return fmt.Errorf("imgfx: blur %d: %w", size, err)
	}

	s.current = s.scratch.Exchange(s.current)
	s.logger().Debug("imgfx: blurred",
		"size", size,
		"algorithm", s.algorithm.String(),
		"elapsed", time.Since(start))
	return s.publish()
}

// Reset makes the current image a copy of the loaded image again and
// republishes it.
func (s *Session) Reset() error {
	if err := s.ready(); err != nil {
		return err
	}
	if err := s.current.CopyFrom(s.original); err != nil {
		return err
	}
	s.logger().Debug("imgfx: reset")
	return s.publish()
}

// Apply performs a.
func (s *Session) Apply(a Action) error {
	switch a.Kind {
	case ActionNone:
		return nil
	case ActionNegate:
		return s.Negate()
	case ActionBlur:
		return s.Blur(a.Size)
	case ActionReset:
		return s.Reset()
	default:
		return fmt.Errorf("imgfx: unknown action %v", a)
	}
}

// HandleKey applies the action bound to key in the session's key map.
// Unbound keys are ignored and report ActionNone.
func (s *Session) HandleKey(key string) (Action, error) {
	a, ok := s.keys.Lookup(key)
	if !ok {
		return Action{}, nil
	}
	s.logger().Debug("imgfx: key", "key", key, "action", a.String())
	return a, s.Apply(a)
}

// KeyMap returns the bindings used by HandleKey.
func (s *Session) KeyMap() KeyMap {
	return s.keys
}

// Current returns the current image, or nil before the first Load.
// The image is owned by the session; callers must not modify it.
func (s *Session) Current() *Image {
	return s.current
}

// Original returns the loaded image, or nil before the first Load.
func (s *Session) Original() *Image {
	return s.original
}

// Presentation returns the presented resource, or nil before the first
// successful publish.
func (s *Session) Presentation() *Presentation {
	return s.presenter.Current()
}

// Presenter returns the presenter of the session, for moving the image.
func (s *Session) Presenter() *Presenter {
	return s.presenter
}

// DrawTo draws the presented image to dc.
func (s *Session) DrawTo(dc gpucontext.TextureDrawer) error {
	if s.closed {
		return ErrSessionClosed
	}
	return s.presenter.DrawTo(dc)
}

// WindowSize returns the display size suited to the loaded image, or the
// default size when nothing is loaded.
func (s *Session) WindowSize() (width, height int) {
	if s.original == nil {
		return DefaultWindowWidth, DefaultWindowHeight
	}
	return WindowSize(s.original.width, s.original.height)
}

// Close releases the presented texture and the scratch buffers.
// Close is idempotent.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.scratch.Release()
	return s.presenter.Close()
}

func (s *Session) ready() error {
	if s.closed {
		return ErrSessionClosed
	}
	if s.current.IsEmpty() {
		return ErrInvalidImage
	}
	return nil
}

func (s *Session) publish() error {
	if _, err := s.presenter.Publish(s.current); err != nil {
		return err
	}
	return nil
}
