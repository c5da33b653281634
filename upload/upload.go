// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package upload defines the contract between the asset registry and a GPU
// uploader. The registry is backend-agnostic: it hands a decoded pixel
// stream to an Uploader and receives an immutable image handle plus a
// completion token. upload/wgpu implements the contract on gogpu/wgpu.
package upload

import (
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/assets/texture"
)

// Image is an immutable device image handle.
//
// Handles have shared ownership and are cheap to copy; the backing GPU
// resource lives as long as any holder. Implementations must tolerate
// concurrent reads of the accessor methods.
type Image interface {
	// Width returns the image width in pixels.
	Width() uint32

	// Height returns the image height in pixels.
	Height() uint32

	// Format returns the pixel format of the uploaded data.
	Format() texture.Format
}

// Completion resolves when the GPU-side copy of an upload is committed.
// Wait blocks until the backing storage is resident; callers must not
// expose the corresponding Image before Wait returns.
type Completion interface {
	Wait()
}

// Uploader turns a pixel byte stream plus dimensions and format into an
// immutable device image.
type Uploader interface {
	// Upload copies pixels into a new device image. pixels must be tightly
	// packed, row-major, exactly width*height*format.BytesPerPixel() bytes.
	Upload(pixels []byte, width, height uint32, format texture.Format) (Image, Completion, error)
}

// DeviceHandle provides GPU device access from the host application.
//
// This is the integration point between the registry and GPU frameworks
// like gogpu: the host implements DeviceHandle and passes it to
// uploader constructors, allowing uploads onto a shared device instead of a
// private one. DeviceHandle is an alias for gpucontext.DeviceProvider,
// keeping full compatibility with the gpucontext ecosystem.
type DeviceHandle = gpucontext.DeviceProvider
