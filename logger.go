package imgfx

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/gogpu/gpucontext"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called while a session is logging.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for imgfx.
// By default, imgfx produces no log output. Pass nil to restore the
// silent default.
//
// Log levels used by imgfx:
//   - [slog.LevelDebug]: per-operation tracing (transforms, publishes)
//   - [slog.LevelInfo]: image loaded, presentation back end selected
//   - [slog.LevelWarn]: rejected publishes, released resources
//
// Example:
//
//	imgfx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)

	// Propagate to the presentation back end if it supports logging.
	activeMu.RLock()
	c := active
	activeMu.RUnlock()
	if c != nil {
		propagateLogger(c, l)
	}
}

// Logger returns the current logger used by imgfx.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// loggerSetter is implemented by presentation back ends that accept a logger.
type loggerSetter interface {
	SetLogger(*slog.Logger)
}

// propagateLogger passes l to the back end if it implements loggerSetter.
// Called from both SetLogger and setActiveCreator so the back end always
// has the current logger.
func propagateLogger(c gpucontext.TextureCreator, l *slog.Logger) {
	if ls, ok := c.(loggerSetter); ok {
		ls.SetLogger(l)
	}
}

var (
	activeMu sync.RWMutex
	active   gpucontext.TextureCreator
)

// setActiveCreator records the back end of the most recent Presenter.
func setActiveCreator(c gpucontext.TextureCreator) {
	activeMu.Lock()
	active = c
	activeMu.Unlock()
	propagateLogger(c, Logger())
}
