// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package native

import "errors"

// Package errors for the native backend.
var (
	// ErrNoGPU is returned when no GPU adapter is available.
	ErrNoGPU = errors.New("native: no GPU adapter available")

	// ErrNilDevice is returned when a backend is built around a nil device or queue.
	ErrNilDevice = errors.New("native: device is nil")

	// ErrUpload is returned when pixel data cannot be written to a texture.
	ErrUpload = errors.New("native: texture upload failed")
)
