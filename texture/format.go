package texture

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// Format represents the pixel format of a texture payload.
type Format uint8

const (
	// FormatRGBA8UnormSRGB is 8-bit RGBA, normalized unsigned integer in
	// sRGB color space. This is the only format the ingestion pipeline
	// produces.
	FormatRGBA8UnormSRGB Format = iota + 1

	// FormatRGBA8Unorm is 8-bit RGBA, normalized unsigned integer (linear).
	FormatRGBA8Unorm

	// FormatBGRA8Unorm is 8-bit BGRA, normalized unsigned integer (linear).
	FormatBGRA8Unorm
)

// String returns a human-readable name for the format.
func (f Format) String() string {
	switch f {
	case FormatRGBA8UnormSRGB:
		return "RGBA8-sRGB"
	case FormatRGBA8Unorm:
		return "RGBA8"
	case FormatBGRA8Unorm:
		return "BGRA8"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(f))
	}
}

// BytesPerPixel returns the number of bytes per pixel for the format.
func (f Format) BytesPerPixel() int {
	switch f {
	case FormatRGBA8UnormSRGB, FormatRGBA8Unorm, FormatBGRA8Unorm:
		return 4
	default:
		return 4
	}
}

// ToWGPUFormat converts to wgpu gputypes.TextureFormat.
// sRGB-ness is carried separately in Metadata.SRGB, so the sRGB variant
// collapses to the plain 8-bit format at the backend boundary.
func (f Format) ToWGPUFormat() gputypes.TextureFormat {
	switch f {
	case FormatRGBA8UnormSRGB, FormatRGBA8Unorm:
		return gputypes.TextureFormatRGBA8Unorm
	case FormatBGRA8Unorm:
		return gputypes.TextureFormatBGRA8Unorm
	default:
		return gputypes.TextureFormatRGBA8Unorm
	}
}
