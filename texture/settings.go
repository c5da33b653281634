package texture

import "strconv"

// CompressionMode selects a block-compression scheme for a texture.
// Compression is a reserved metadata option: the ingestion pipeline never
// compresses, and stored payloads are always uncompressed RGBA8.
type CompressionMode uint8

const (
	// CompressionNone stores the texture uncompressed.
	CompressionNone CompressionMode = iota

	// CompressionDXT1 is DXT1 block compression (opaque).
	CompressionDXT1

	// CompressionDXT1Cutout is DXT1 with 1-bit alpha.
	CompressionDXT1Cutout

	// CompressionDXT5 is DXT5 block compression (interpolated alpha).
	CompressionDXT5
)

// String returns a human-readable name for the compression mode.
func (m CompressionMode) String() string {
	switch m {
	case CompressionNone:
		return "No compression"
	case CompressionDXT1:
		return "DXT1"
	case CompressionDXT1Cutout:
		return "DXT1 w/ 1-bit Alpha"
	case CompressionDXT5:
		return "DXT5"
	default:
		return "No compression"
	}
}

// TextureSize is an optional square size cap for a texture, restricted to
// powers of two between 8 and 8192. The zero value means no cap.
type TextureSize uint16

// Texture size caps.
const (
	TextureSizeNone TextureSize = 0
	TextureSize8    TextureSize = 8
	TextureSize16   TextureSize = 16
	TextureSize32   TextureSize = 32
	TextureSize64   TextureSize = 64
	TextureSize128  TextureSize = 128
	TextureSize256  TextureSize = 256
	TextureSize512  TextureSize = 512
	TextureSize1024 TextureSize = 1024
	TextureSize2048 TextureSize = 2048
	TextureSize4096 TextureSize = 4096
	TextureSize8192 TextureSize = 8192
)

// String returns the cap as a decimal size, or "none" when unset.
func (s TextureSize) String() string {
	if s == TextureSizeNone {
		return "none"
	}
	return strconv.Itoa(int(s))
}

// MipGenSettings selects the filter used for mipmap generation.
// Reserved: the pipeline stores zero mips.
type MipGenSettings uint8

const (
	// MipGenNone disables mipmap generation.
	MipGenNone MipGenSettings = iota

	// MipGenLinear uses a box/linear downsample.
	MipGenLinear

	// MipGenNearest uses nearest-neighbor downsampling.
	MipGenNearest

	// MipGenSharpen sharpens each generated level.
	MipGenSharpen

	// MipGenBlur blurs each generated level.
	MipGenBlur
)

// String returns a human-readable name for the mip generation setting.
func (s MipGenSettings) String() string {
	switch s {
	case MipGenNone:
		return "NoMipmaps"
	case MipGenLinear:
		return "Linear"
	case MipGenNearest:
		return "Nearest"
	case MipGenSharpen:
		return "Sharpen"
	case MipGenBlur:
		return "Blur"
	default:
		return "NoMipmaps"
	}
}

// PowerOfTwoMode selects how a non-power-of-two texture is padded.
// Reserved: the pipeline never pads.
type PowerOfTwoMode uint8

const (
	// PowerOfTwoNone leaves the texture at its source size.
	PowerOfTwoNone PowerOfTwoMode = iota

	// PowerOfTwoPad pads each axis up to the next power of two.
	PowerOfTwoPad

	// PowerOfTwoPadSquare pads both axes up to the same power of two.
	PowerOfTwoPadSquare
)

// String returns a human-readable name for the padding mode.
func (m PowerOfTwoMode) String() string {
	switch m {
	case PowerOfTwoNone:
		return "None"
	case PowerOfTwoPad:
		return "Pad"
	case PowerOfTwoPadSquare:
		return "PadSquare"
	default:
		return "None"
	}
}

// AddressMode selects how a sampler treats coordinates outside [0,1].
type AddressMode uint8

const (
	// AddressModeRepeat tiles the texture.
	AddressModeRepeat AddressMode = iota

	// AddressModeMirroredRepeat tiles the texture, mirroring every repeat.
	AddressModeMirroredRepeat

	// AddressModeClampToEdge clamps coordinates to the edge texel.
	AddressModeClampToEdge
)

// String returns a human-readable name for the address mode.
func (m AddressMode) String() string {
	switch m {
	case AddressModeRepeat:
		return "Repeat"
	case AddressModeMirroredRepeat:
		return "MirroredRepeat"
	case AddressModeClampToEdge:
		return "ClampToEdge"
	default:
		return "Repeat"
	}
}

// FilterMode selects the sampler's minification/magnification filter.
type FilterMode uint8

const (
	// FilterLinear interpolates between texels.
	FilterLinear FilterMode = iota

	// FilterNearest snaps to the nearest texel.
	FilterNearest
)

// String returns a human-readable name for the filter mode.
func (m FilterMode) String() string {
	switch m {
	case FilterLinear:
		return "Linear"
	case FilterNearest:
		return "Nearest"
	default:
		return "Linear"
	}
}
