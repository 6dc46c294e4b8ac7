package imgfx

import "log/slog"

// SessionOption configures a Session during creation.
//
// Example:
//
//	s, err := imgfx.NewSession(creator,
//	    imgfx.WithKeyMap(imgfx.FilterKeys()),
//	    imgfx.WithHooks(imgfx.Hooks{
//	        OnTransformStart: func(imgfx.Transform) { cursor.Busy() },
//	        OnTransformEnd:   func(imgfx.Transform) { cursor.Default() },
//	    }),
//	)
type SessionOption func(*sessionOptions)

// sessionOptions holds optional configuration for Session creation.
type sessionOptions struct {
	hooks     Hooks
	algorithm Algorithm
	x, y      float32
	keys      KeyMap
	logger    *slog.Logger
}

// defaultSessionOptions returns the default session options.
func defaultSessionOptions() sessionOptions {
	return sessionOptions{
		algorithm: AlgorithmSeparable,
		keys:      FilterKeys(),
	}
}

// WithHooks installs callbacks run around long transforms.
func WithHooks(h Hooks) SessionOption {
	return func(o *sessionOptions) {
		o.hooks = h
	}
}

// WithAlgorithm selects the windowed average algorithm.
func WithAlgorithm(a Algorithm) SessionOption {
	return func(o *sessionOptions) {
		o.algorithm = a
	}
}

// WithPosition sets the initial placement of the presented image.
func WithPosition(x, y float32) SessionOption {
	return func(o *sessionOptions) {
		o.x, o.y = x, y
	}
}

// WithKeyMap sets the bindings used by Session.HandleKey. The default is
// FilterKeys.
func WithKeyMap(m KeyMap) SessionOption {
	return func(o *sessionOptions) {
		o.keys = m
	}
}

// WithLogger sets the logger of the session. Without it the session logs
// through the package logger (see SetLogger).
func WithLogger(l *slog.Logger) SessionOption {
	return func(o *sessionOptions) {
		o.logger = l
	}
}
