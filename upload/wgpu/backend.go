// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/core"

	"github.com/gogpu/assets/upload"
)

// Queue errors.
var (
	// ErrNoGPU is returned when no suitable GPU adapter is found.
	ErrNoGPU = errors.New("wgpu: no suitable GPU adapter found")

	// ErrNotInitialized is returned when uploading on an uninitialized queue.
	ErrNotInitialized = errors.New("wgpu: queue not initialized")

	// ErrInvalidDimensions is returned for zero-sized uploads.
	ErrInvalidDimensions = errors.New("wgpu: invalid image dimensions")

	// ErrSizeMismatch is returned when the pixel buffer length does not
	// match width*height*bytes-per-pixel.
	ErrSizeMismatch = errors.New("wgpu: pixel buffer length does not match dimensions")
)

// Queue is a GPU upload queue backed by gogpu/wgpu.
//
// A Queue either owns its GPU resources (instance, adapter, device, command
// queue, created by Init) or borrows a device from a host application
// through an upload.DeviceHandle (NewSharedQueue). Either way it implements
// upload.Uploader.
type Queue struct {
	mu sync.RWMutex

	// GPU resources (owned mode)
	instance *core.Instance
	adapter  core.AdapterID
	device   core.DeviceID
	queue    core.QueueID

	// Borrowed device (shared mode); nil in owned mode.
	provider upload.DeviceHandle

	// State
	initialized bool
}

// NewQueue creates an upload queue that will own a private GPU device.
// The queue must be initialized with Init() before use.
func NewQueue() *Queue {
	return &Queue{}
}

// NewSharedQueue creates an upload queue that borrows the host
// application's device through handle. No Init call is needed; the host
// owns the device lifetime and Close is a no-op for GPU resources.
func NewSharedQueue(handle upload.DeviceHandle) *Queue {
	return &Queue{
		provider:    handle,
		initialized: true,
	}
}

// Init brings up the GPU resources an owned queue needs: an instance over
// wgpu's primary backends, a high-performance adapter, a device with
// default limits, and its command queue. Partially acquired resources are
// released on failure. Init on an already initialized (or shared) queue is
// a no-op.
func (q *Queue) Init() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.initialized {
		return nil
	}

	q.instance = core.NewInstance(&gputypes.InstanceDescriptor{
		Backends: gputypes.BackendsPrimary,
	})

	adapterID, err := q.instance.RequestAdapter(&gputypes.RequestAdapterOptions{
		PowerPreference: gputypes.PowerPreferenceHighPerformance,
	})
	if err != nil {
		q.instance = nil
		return fmt.Errorf("%w: %w", ErrNoGPU, err)
	}

	deviceID, queueID, err := newDevice(adapterID)
	if err != nil {
		_ = core.AdapterDrop(adapterID)
		q.instance = nil
		return fmt.Errorf("wgpu: %w", err)
	}

	q.adapter = adapterID
	q.device = deviceID
	q.queue = queueID
	q.initialized = true

	log.Printf("wgpu: upload queue ready on %s", describeAdapter(adapterID))
	return nil
}

// Close releases all GPU resources owned by the queue.
// The queue should not be used after Close is called. Borrowed devices
// are left untouched.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.initialized {
		return
	}

	if q.provider != nil {
		// Shared mode: the host owns the device.
		q.provider = nil
		q.initialized = false
		return
	}

	// The command queue has no separate handle lifetime; it goes away with
	// the device.
	if !q.device.IsZero() {
		if err := core.DeviceDrop(q.device); err != nil {
			log.Printf("wgpu: device release: %v", err)
		}
		q.device = core.DeviceID{}
	}
	if !q.adapter.IsZero() {
		if err := core.AdapterDrop(q.adapter); err != nil {
			log.Printf("wgpu: adapter release: %v", err)
		}
		q.adapter = core.AdapterID{}
	}

	q.instance = nil
	q.queue = core.QueueID{}
	q.initialized = false
}

// IsInitialized returns true if the queue has been initialized.
func (q *Queue) IsInitialized() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.initialized
}

// Device returns the GPU device ID.
// Returns a zero ID for shared queues and uninitialized queues.
func (q *Queue) Device() core.DeviceID {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.device
}
