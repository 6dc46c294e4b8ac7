// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package native

import (
	"sync"

	"github.com/gogpu/wgpu/hal"
)

// Texture is an RGBA8 texture on the backend device.
type Texture struct {
	owner  *Backend
	hal    hal.Texture
	width  int
	height int
	once   sync.Once
}

// Width implements gpucontext.Texture.
func (t *Texture) Width() int { return t.width }

// Height implements gpucontext.Texture.
func (t *Texture) Height() int { return t.height }

// HAL returns the underlying HAL texture for drawing code that binds it.
func (t *Texture) HAL() hal.Texture { return t.hal }

// Destroy releases the device texture. Destroy is idempotent.
func (t *Texture) Destroy() {
	t.once.Do(func() {
		t.owner.destroyTexture(t.hal)
	})
}
