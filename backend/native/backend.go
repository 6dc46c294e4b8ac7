// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package native provides a presentation backend that keeps textures on a
// GPU device through the gogpu/wgpu HAL.
package native

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/imgfx/backend"
	"github.com/gogpu/wgpu/hal"
)

// init registers the native backend on package import.
//
// A HAL API must be registered for Init to find a device. Import the
// headless one for tests and tools without a GPU:
//
//	import _ "github.com/gogpu/wgpu/hal/noop"
func init() {
	backend.Register(backend.BackendNative, func() backend.PresentationBackend {
		return New()
	})
}

// Backend creates textures on a HAL device.
//
// The device is either opened by Init or supplied by NewWithDevice, in
// which case it stays owned by the caller.
//
// Backend is safe for concurrent use from multiple goroutines.
type Backend struct {
	mu       sync.Mutex
	instance hal.Instance
	device   hal.Device
	queue    hal.Queue
	limits   gputypes.Limits
	adapter  string
	ownsDev  bool
	live     int
	logger   atomic.Pointer[slog.Logger]
}

// New creates a native backend. Init opens the device.
func New() *Backend {
	return &Backend{limits: gputypes.DefaultLimits()}
}

// NewWithDevice creates an initialized backend on an existing device.
// Close does not destroy the device.
func NewWithDevice(device hal.Device, queue hal.Queue) (*Backend, error) {
	if device == nil || queue == nil {
		return nil, ErrNilDevice
	}
	return &Backend{
		device: device,
		queue:  queue,
		limits: gputypes.DefaultLimits(),
	}, nil
}

// Name returns the backend identifier.
func (b *Backend) Name() string {
	return backend.BackendNative
}

// SetLogger sets the logger used by the backend.
func (b *Backend) SetLogger(l *slog.Logger) {
	b.logger.Store(l)
}

func (b *Backend) log() *slog.Logger {
	if l := b.logger.Load(); l != nil {
		return l
	}
	return slog.New(slog.DiscardHandler)
}

// Init opens a device on the most capable registered HAL API.
// Init is a no-op when the backend already has a device.
func (b *Backend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.device != nil {
		return nil
	}

	api, err := hal.SelectBestBackend()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoGPU, err)
	}
	instance, err := api.CreateInstance(&hal.InstanceDescriptor{})
	if err != nil {
		return fmt.Errorf("native: create instance: %w", err)
	}

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return ErrNoGPU
	}
	selected := &adapters[0]
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}

	openDev, err := selected.Adapter.Open(gputypes.Features(0), b.limits)
	if err != nil {
		instance.Destroy()
		return fmt.Errorf("native: open device: %w", err)
	}

	b.instance = instance
	b.device = openDev.Device
	b.queue = openDev.Queue
	b.adapter = selected.Info.Name
	b.ownsDev = true
	b.log().Info("native: device opened",
		"api", api.Variant().String(),
		"adapter", selected.Info.Name)
	return nil
}

// Adapter returns the name of the adapter opened by Init.
func (b *Backend) Adapter() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.adapter
}

// LiveTextures returns the number of created and not yet destroyed textures.
func (b *Backend) LiveTextures() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.live
}

// Close releases the device if Init opened it.
func (b *Backend) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.live > 0 {
		b.log().Warn("native: closing with live textures", "count", b.live)
	}
	if b.ownsDev {
		b.device.Destroy()
		b.instance.Destroy()
	}
	b.device, b.queue, b.instance = nil, nil, nil
	b.ownsDev = false
}

// NewTextureFromRGBA implements gpucontext.TextureCreator.
// It creates an RGBA8 texture and uploads data into it.
func (b *Backend) NewTextureFromRGBA(width, height int, data []byte) (gpucontext.Texture, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.device == nil {
		return nil, backend.ErrNotInitialized
	}
	if err := backend.CheckRGBA(width, height, data, int(b.limits.MaxTextureDimension2D)); err != nil {
		return nil, err
	}

	size := hal.Extent3D{
		Width:              uint32(width),
		Height:             uint32(height),
		DepthOrArrayLayers: 1,
	}
	tex, err := b.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "imgfx.presentation",
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage: gputypes.TextureUsageCopyDst |
			gputypes.TextureUsageCopySrc |
			gputypes.TextureUsageTextureBinding,
	})
	if err != nil {
		return nil, fmt.Errorf("native: create texture: %w", err)
	}

	err = b.queue.WriteTexture(
		&hal.ImageCopyTexture{
			Texture:  tex,
			MipLevel: 0,
			Aspect:   gputypes.TextureAspectAll,
		},
		data,
		&hal.ImageDataLayout{
			Offset:       0,
			BytesPerRow:  uint32(width * 4),
			RowsPerImage: uint32(height),
		},
		&size,
	)
	if err != nil {
		b.device.DestroyTexture(tex)
		return nil, fmt.Errorf("%w: %w", ErrUpload, err)
	}

	b.live++
	b.log().Debug("native: texture created", "width", width, "height", height, "live", b.live)
	return &Texture{owner: b, hal: tex, width: width, height: height}, nil
}

func (b *Backend) destroyTexture(t hal.Texture) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.device != nil {
		b.device.DestroyTexture(t)
	}
	b.live--
}
