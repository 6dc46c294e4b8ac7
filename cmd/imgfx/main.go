// Command imgfx loads an image, replays key presses through the demo key
// bindings and saves the result as PNG.
//
// Usage:
//
//	imgfx -input photo.jpg -keys 3,5,r,9 -output out.png
//	imgfx -demo invert -input photo.png -keys 1 -screen
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/imgfx"
	"github.com/gogpu/imgfx/backend"
	_ "github.com/gogpu/imgfx/backend/native"
	_ "github.com/gogpu/wgpu/hal/noop"
)

func main() {
	var (
		input       = flag.String("input", "", "image to load (a generated test card when empty)")
		output      = flag.String("output", "imgfx.png", "output PNG file")
		keys        = flag.String("keys", "", "comma-separated key presses to replay, e.g. 3,5,r")
		demo        = flag.String("demo", "filter", "key bindings: filter or invert")
		backendName = flag.String("backend", backend.BackendSoftware, "presentation backend: software or native")
		screen      = flag.Bool("screen", false, "write the composed window frame instead of the image")
		verbose     = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	imgfx.SetLogger(logger)

	if err := run(logger, config{
		input:   *input,
		output:  *output,
		keys:    *keys,
		demo:    *demo,
		backend: *backendName,
		screen:  *screen,
	}); err != nil {
		log.Fatalf("imgfx: %v", err)
	}
}

type config struct {
	input   string
	output  string
	keys    string
	demo    string
	backend string
	screen  bool
}

func run(logger *slog.Logger, cfg config) error {
	keyMap, err := keyMapFor(cfg.demo)
	if err != nil {
		return err
	}
	if cfg.screen && cfg.backend != backend.BackendSoftware {
		return errors.New("-screen needs the software backend")
	}

	b, err := backend.Open(cfg.backend)
	if err != nil {
		return err
	}
	defer b.Close()
	logger.Info("backend selected", "name", b.Name(), "available", backend.Available())

	var busy time.Time
	s, err := imgfx.NewSession(b,
		imgfx.WithKeyMap(keyMap),
		imgfx.WithLogger(logger),
		imgfx.WithHooks(imgfx.Hooks{
			OnTransformStart: func(t imgfx.Transform) {
				busy = time.Now()
				logger.Info("busy", "transform", t.Kind.String(), "size", t.Size)
			},
			OnTransformEnd: func(t imgfx.Transform) {
				logger.Info("ready", "transform", t.Kind.String(), "elapsed", time.Since(busy))
			},
		}),
	)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	if cfg.input == "" {
		err = s.Load(testCard(320, 240))
	} else {
		err = s.LoadFile(cfg.input)
	}
	if err != nil {
		return err
	}

	applied := 0
	for _, key := range splitKeys(cfg.keys) {
		a, err := s.HandleKey(key)
		if err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}
		if a.Kind == imgfx.ActionNone {
			logger.Warn("unbound key ignored", "key", key, "bound", keyMap.Keys())
			continue
		}
		applied++
	}

	if cfg.screen {
		if err := saveScreen(s, b, cfg.output); err != nil {
			return err
		}
	} else if err := s.Current().SavePNG(cfg.output); err != nil {
		return err
	}

	cur := s.Current()
	p := message.NewPrinter(language.English)
	fmt.Fprintln(os.Stdout, p.Sprintf("%s: %d actions on %dx%d (%d pixels), %d textures published",
		cfg.output, applied, cur.Width(), cur.Height(), cur.Width()*cur.Height(), s.Presentation().Generation))
	return nil
}

func keyMapFor(demo string) (imgfx.KeyMap, error) {
	switch demo {
	case "filter":
		return imgfx.FilterKeys(), nil
	case "invert":
		return imgfx.InvertKeys(), nil
	default:
		return nil, fmt.Errorf("unknown demo %q (want filter or invert)", demo)
	}
}

func splitKeys(s string) []string {
	var keys []string
	for _, k := range strings.Split(s, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

func saveScreen(s *imgfx.Session, b backend.PresentationBackend, path string) error {
	sw, ok := b.(*backend.SoftwareBackend)
	if !ok {
		return errors.New("-screen needs the software backend")
	}
	w, h := s.WindowSize()
	scr, err := backend.NewScreen(sw, w, h)
	if err != nil {
		return err
	}
	if err := s.DrawTo(scr); err != nil {
		return err
	}
	frame, err := imgfx.Normalize(scr.Frame())
	if err != nil {
		return err
	}
	return frame.SavePNG(path)
}

// testCard draws colour bars over a grey ramp with a transparent corner.
func testCard(w, h int) image.Image {
	bars := []color.NRGBA{
		{R: 255, G: 255, B: 255, A: 255},
		{R: 255, G: 255, B: 0, A: 255},
		{R: 0, G: 255, B: 255, A: 255},
		{R: 0, G: 255, B: 0, A: 255},
		{R: 255, G: 0, B: 255, A: 255},
		{R: 255, G: 0, B: 0, A: 255},
		{R: 0, G: 0, B: 255, A: 255},
	}
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := bars[x*len(bars)/w]
			if y >= h*2/3 {
				v := uint8(x * 255 / (w - 1))
				c = color.NRGBA{R: v, G: v, B: v, A: 255}
			}
			if x < w/8 && y < h/8 {
				c.A = 0
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}
