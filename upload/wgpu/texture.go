// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"fmt"
	"sync/atomic"

	"github.com/gogpu/wgpu/core"

	"github.com/gogpu/assets/texture"
	"github.com/gogpu/assets/upload"
)

// Image is a device image created by a Queue. It implements upload.Image.
//
// Images are immutable after creation and safe for concurrent reads.
type Image struct {
	textureID core.TextureID
	viewID    core.TextureViewID

	width     uint32
	height    uint32
	format    texture.Format
	sizeBytes uint64

	released atomic.Bool
}

// Width returns the image width in pixels.
func (i *Image) Width() uint32 {
	return i.width
}

// Height returns the image height in pixels.
func (i *Image) Height() uint32 {
	return i.height
}

// Format returns the pixel format of the uploaded data.
func (i *Image) Format() texture.Format {
	return i.format
}

// SizeBytes returns the image size in bytes.
func (i *Image) SizeBytes() uint64 {
	return i.sizeBytes
}

// TextureID returns the underlying wgpu texture ID.
// Returns a zero ID until wgpu texture creation lands.
func (i *Image) TextureID() core.TextureID {
	return i.textureID
}

// Close releases the image's GPU resources. Further Close calls are no-ops.
func (i *Image) Close() {
	if i.released.Swap(true) {
		return
	}

	// TODO: Release actual GPU resources when wgpu supports it
	//
	// if !i.viewID.IsZero() {
	//     core.TextureViewDrop(i.viewID)
	// }
	// if !i.textureID.IsZero() {
	//     core.TextureDrop(i.textureID)
	// }
}

// String returns a string representation of the image.
func (i *Image) String() string {
	status := "active"
	if i.released.Load() {
		status = "released"
	}
	return fmt.Sprintf("Image[%dx%d %s %d bytes %s]",
		i.width, i.height, i.format, i.sizeBytes, status)
}

// completion resolves an upload by polling the device until the queue
// submission is committed.
type completion struct {
	queue *Queue
}

// Wait blocks until the uploaded data is resident on the device.
func (c *completion) Wait() {
	c.queue.mu.RLock()
	provider := c.queue.provider
	c.queue.mu.RUnlock()

	if provider != nil {
		if dev := provider.Device(); dev != nil {
			dev.Poll(true)
		}
		return
	}

	// Owned mode: the write is committed when QueueWriteTexture returns,
	// nothing to poll until wgpu exposes fenced submissions.
}

// Upload copies pixels into a new device image. It implements
// upload.Uploader.
//
// pixels must be tightly packed, row-major, exactly
// width*height*format.BytesPerPixel() bytes.
func (q *Queue) Upload(pixels []byte, width, height uint32, format texture.Format) (upload.Image, upload.Completion, error) {
	q.mu.RLock()
	initialized := q.initialized
	q.mu.RUnlock()

	if !initialized {
		return nil, nil, ErrNotInitialized
	}

	if width == 0 || height == 0 {
		return nil, nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	expected := uint64(width) * uint64(height) * uint64(format.BytesPerPixel())
	if uint64(len(pixels)) != expected {
		return nil, nil, fmt.Errorf("%w: expected %d bytes for %dx%d %s, got %d",
			ErrSizeMismatch, expected, width, height, format, len(pixels))
	}

	img := &Image{
		width:     width,
		height:    height,
		format:    format,
		sizeBytes: expected,
		// textureID and viewID are zero until wgpu texture creation lands
	}

	q.writeTexture(img, pixels)

	return img, &completion{queue: q}, nil
}

// writeTexture stages the pixel copy into the image's backing texture.
//
// Note: This is a stub implementation. The actual GPU upload will be
// implemented when wgpu queue.WriteTexture is available.
func (q *Queue) writeTexture(img *Image, pixels []byte) {
	_ = pixels

	// TODO: Actual GPU upload when wgpu queue.WriteTexture is available
	//
	// core.QueueWriteTexture(q.queue, &gputypes.ImageCopyTexture{
	//     Texture:  uintptr(img.textureID.Raw()),
	//     MipLevel: 0,
	//     Origin:   gputypes.Origin3D{X: 0, Y: 0, Z: 0},
	//     Aspect:   gputypes.TextureAspectAll,
	// }, pixels, &gputypes.TextureDataLayout{
	//     Offset:       0,
	//     BytesPerRow:  img.width * uint32(img.format.BytesPerPixel()),
	//     RowsPerImage: img.height,
	// }, &gputypes.Extent3D{
	//     Width:              img.width,
	//     Height:             img.height,
	//     DepthOrArrayLayers: 1,
	// })
	//
	// The wgpu format is img.format.ToWGPUFormat().
}
