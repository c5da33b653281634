// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/assets/texture"
)

// mockDevice implements gpucontext.Device for testing.
type mockDevice struct {
	polls int
}

func (m *mockDevice) Poll(wait bool) { m.polls++ }
func (m *mockDevice) Destroy()       {}

// mockQueue implements gpucontext.Queue for testing.
type mockQueue struct{}

// mockAdapter implements gpucontext.Adapter for testing.
type mockAdapter struct{}

// mockProvider implements gpucontext.DeviceProvider for testing.
type mockProvider struct {
	device *mockDevice
}

func (m *mockProvider) Device() gpucontext.Device             { return m.device }
func (m *mockProvider) Queue() gpucontext.Queue               { return &mockQueue{} }
func (m *mockProvider) Adapter() gpucontext.Adapter           { return &mockAdapter{} }
func (m *mockProvider) SurfaceFormat() gputypes.TextureFormat { return gputypes.TextureFormatBGRA8Unorm }

func TestUploadNotInitialized(t *testing.T) {
	q := NewQueue()
	_, _, err := q.Upload(make([]byte, 4), 1, 1, texture.FormatRGBA8UnormSRGB)
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Upload on uninitialized queue = %v, want ErrNotInitialized", err)
	}
}

func TestSharedQueueUpload(t *testing.T) {
	dev := &mockDevice{}
	q := NewSharedQueue(&mockProvider{device: dev})
	if !q.IsInitialized() {
		t.Fatal("shared queue not initialized")
	}

	pixels := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	img, done, err := q.Upload(pixels, 2, 1, texture.FormatRGBA8UnormSRGB)
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	if img.Width() != 2 || img.Height() != 1 {
		t.Errorf("image dims = %dx%d, want 2x1", img.Width(), img.Height())
	}
	if img.Format() != texture.FormatRGBA8UnormSRGB {
		t.Errorf("image format = %v, want RGBA8-sRGB", img.Format())
	}

	done.Wait()
	if dev.polls != 1 {
		t.Errorf("device polls = %d, want 1", dev.polls)
	}
}

func TestSharedQueueUploadValidation(t *testing.T) {
	q := NewSharedQueue(&mockProvider{device: &mockDevice{}})

	tests := []struct {
		name   string
		pixels []byte
		width  uint32
		height uint32
		want   error
	}{
		{"zero width", make([]byte, 4), 0, 1, ErrInvalidDimensions},
		{"zero height", make([]byte, 4), 1, 0, ErrInvalidDimensions},
		{"short buffer", make([]byte, 3), 1, 1, ErrSizeMismatch},
		{"long buffer", make([]byte, 5), 1, 1, ErrSizeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := q.Upload(tt.pixels, tt.width, tt.height, texture.FormatRGBA8UnormSRGB)
			if !errors.Is(err, tt.want) {
				t.Errorf("Upload = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSharedQueueClose(t *testing.T) {
	q := NewSharedQueue(&mockProvider{device: &mockDevice{}})
	q.Close()
	if q.IsInitialized() {
		t.Error("queue still initialized after Close")
	}
	if _, _, err := q.Upload(make([]byte, 4), 1, 1, texture.FormatRGBA8UnormSRGB); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Upload after Close = %v, want ErrNotInitialized", err)
	}
	// Close is idempotent.
	q.Close()
}

func TestImage(t *testing.T) {
	q := NewSharedQueue(&mockProvider{device: &mockDevice{}})
	img, _, err := q.Upload(make([]byte, 8), 1, 2, texture.FormatRGBA8UnormSRGB)
	if err != nil {
		t.Fatal(err)
	}

	wimg, ok := img.(*Image)
	if !ok {
		t.Fatalf("Upload returned %T, want *Image", img)
	}
	if wimg.SizeBytes() != 8 {
		t.Errorf("SizeBytes = %d, want 8", wimg.SizeBytes())
	}
	if !strings.Contains(wimg.String(), "1x2") {
		t.Errorf("String() = %q, want dimensions included", wimg.String())
	}

	wimg.Close()
	if !strings.Contains(wimg.String(), "released") {
		t.Errorf("String() after Close = %q, want released", wimg.String())
	}
	// Close is idempotent.
	wimg.Close()
}
