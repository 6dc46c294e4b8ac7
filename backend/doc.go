// Package backend provides pluggable presentation backends for imgfx.
//
// A backend creates the textures an imgfx.Presenter publishes images into.
// Each backend implements gpucontext.TextureCreator, so a Presenter never
// depends on where textures live.
//
// # Backend Registration
//
// Backends are registered via init() functions and selected at runtime.
// The software backend is automatically registered on import:
//
//	import _ "github.com/gogpu/imgfx/backend"
//
// The GPU backend registers itself when its package is imported:
//
//	import _ "github.com/gogpu/imgfx/backend/native"
//
// # Backend Selection
//
// Use Open("") to get the best available backend, initialized, or name one:
//
//	b, err := backend.Open("software")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer b.Close()
//
//	s, err := imgfx.NewSession(b)
//
// # Available Backends
//
//   - "native": textures on a gogpu/wgpu HAL device
//   - "software": textures in CPU memory, drawable onto a Screen (always available)
//
// # Screen
//
// Screen is a CPU window frame implementing gpucontext.TextureDrawer. It
// clears to grey and composites software textures at their position, which
// makes the presented output of a session testable and writable to disk.
package backend
