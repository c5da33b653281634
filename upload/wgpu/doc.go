// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package wgpu implements the upload.Uploader contract on gogpu/wgpu.
//
// A Queue owns the GPU resources needed for uploads: instance, adapter,
// device and command queue. Two constructions are supported:
//
//   - NewQueue().Init() creates a private device (Vulkan/Metal/DX12 via
//     wgpu's primary backends).
//   - NewSharedQueue(handle) borrows the device of a host application
//     through an upload.DeviceHandle (gpucontext.DeviceProvider), avoiding
//     a second GPU instance.
//
// Uploaded images are immutable; handles are cheap to copy and keep the
// backing texture alive for the longest holder.
package wgpu
