// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"fmt"

	"github.com/gogpu/wgpu/core"
	types "github.com/gogpu/gputypes"
)

// describeAdapter returns a one-line description of the adapter for the
// init log.
func describeAdapter(adapterID core.AdapterID) string {
	info, err := core.GetAdapterInfo(adapterID)
	if err != nil {
		return "unknown adapter"
	}
	return fmt.Sprintf("%s (%s, %s)", info.Name, info.DeviceType, info.Backend)
}

// newDevice creates a logical device on the adapter and fetches its command
// queue. Uploads need no special features or limits, so the device is
// requested with the defaults. The device is released again if the queue
// cannot be fetched.
func newDevice(adapterID core.AdapterID) (core.DeviceID, core.QueueID, error) {
	deviceID, err := core.RequestDevice(adapterID, &types.DeviceDescriptor{
		Label:            "assets-upload-device",
		RequiredFeatures: nil,
		RequiredLimits:   types.DefaultLimits(),
	})
	if err != nil {
		return core.DeviceID{}, core.QueueID{}, fmt.Errorf("request device: %w", err)
	}

	queueID, err := core.GetDeviceQueue(deviceID)
	if err != nil {
		_ = core.DeviceDrop(deviceID)
		return core.DeviceID{}, core.QueueID{}, fmt.Errorf("get device queue: %w", err)
	}

	return deviceID, queueID, nil
}
