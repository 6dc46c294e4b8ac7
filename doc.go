// Package imgfx loads raster images, applies pixel transforms to them and
// keeps a display texture in sync with the result.
//
// # Overview
//
// Decoded images of any layout are converted by Normalize into the
// canonical Image: straight 8-bit RGBA, row-major, no row padding. Two
// transforms operate on that buffer:
//
//   - Negate inverts R, G and B in place and keeps alpha.
//   - WindowedAverage is a box blur over a size x size window with zero
//     padding at the borders and opaque output.
//
// A Presenter turns an Image into a gpucontext.Texture through any
// gpucontext.TextureCreator and replaces that texture whenever the image
// changes. Session wires loading, transforms, the key bindings of the demo
// programs and presentation together.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/imgfx"
//	    "github.com/gogpu/imgfx/backend"
//	)
//
//	b, err := backend.Open(backend.BackendSoftware)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer b.Close()
//
//	s, err := imgfx.NewSession(b, imgfx.WithKeyMap(imgfx.FilterKeys()))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer s.Close()
//
//	if err := s.LoadFile("photo.png"); err != nil {
//	    log.Fatal(err)
//	}
//	_ = s.Blur(15)   // or s.HandleKey("5")
//	_ = s.Reset()
//
// # Boundary Handling
//
// WindowedAverage treats samples outside the image as black. A pixel whose
// window lies partly outside the image is darkened in proportion to the
// missing share; a uniform image stays uniform only in its interior.
//
// # Concurrency
//
// Session, Presenter and Scratch are not safe for concurrent use. The
// package logger (SetLogger) is.
package imgfx
