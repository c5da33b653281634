// Package texture defines the metadata descriptors and payload type for
// texture assets.
//
// A texture asset is a decoded, GPU-ready pixel buffer plus a Metadata
// descriptor. Payloads are always tightly packed RGBA8, row-major with a
// top-left origin; sources without an alpha channel are filled with opaque
// alpha during ingestion.
package texture

// LinearColor is an RGBA color in linear (non-sRGB) space.
type LinearColor struct {
	R, G, B, A float32
}

// LinearBlack is opaque black, the default padding color.
var LinearBlack = LinearColor{R: 0, G: 0, B: 0, A: 1}

// Metadata describes a texture asset.
//
// The info block is derived from the source file during ingestion. The
// compression and texture blocks carry import options; most are reserved
// for future processing passes and stay at their defaults.
type Metadata struct {
	// SourceSize is the width and height of the source file in pixels.
	SourceSize [2]uint32

	// MaxIngameSize caps the runtime size. Defaults to SourceSize.
	MaxIngameSize [2]uint32

	// DataSize is the payload size in bytes: uncompressed, compressed.
	// The compressed slot is zero while CompressionMode is CompressionNone.
	DataSize [2]uint32

	// HasChannels is the set of channels present in the source file.
	HasChannels ChannelMask

	// Format is the pixel format of the stored payload.
	Format Format

	// NumMips is the number of stored mip levels (0 = base level only).
	NumMips uint8

	// CompressionMode selects block compression. Reserved.
	CompressionMode CompressionMode

	// IncludeChannels is the set of channels to keep. Defaults to
	// HasChannels.
	IncludeChannels ChannelMask

	// MaxTextureSize optionally caps the texture size. Zero means no cap.
	MaxTextureSize TextureSize

	// MipGenSettings selects the mipmap generation filter. Reserved.
	MipGenSettings MipGenSettings

	// LODBias biases mip selection at sample time.
	LODBias uint8

	// PowerOfTwoMode selects power-of-two padding. Reserved.
	PowerOfTwoMode PowerOfTwoMode

	// PaddingColor is the fill color used when padding. Reserved.
	PaddingColor LinearColor

	// SRGB marks the payload as sRGB-encoded so samplers linearize on read.
	SRGB bool

	// XAxisTiling and YAxisTiling are the sampler address modes.
	XAxisTiling AddressMode
	YAxisTiling AddressMode

	// InvertGreen flips the green channel, a normal-map convenience.
	InvertGreen bool

	// Filter is the sampler filter mode.
	Filter FilterMode
}

// DefaultMetadata returns a Metadata with every field at its default.
func DefaultMetadata() Metadata {
	return Metadata{
		HasChannels:     ChannelMaskAll,
		Format:          FormatRGBA8UnormSRGB,
		CompressionMode: CompressionNone,
		IncludeChannels: ChannelMaskAll,
		MaxTextureSize:  TextureSizeNone,
		MipGenSettings:  MipGenNone,
		PowerOfTwoMode:  PowerOfTwoNone,
		PaddingColor:    LinearBlack,
		SRGB:            true,
		XAxisTiling:     AddressModeRepeat,
		YAxisTiling:     AddressModeRepeat,
		Filter:          FilterLinear,
	}
}

// Dimensions returns the source width and height in pixels.
func (m *Metadata) Dimensions() (width, height uint32) {
	return m.SourceSize[0], m.SourceSize[1]
}

// AssetData is a decoded texture payload: the descriptor plus the pixel
// buffer. Pixels is tightly packed RGBA8 of length exactly
// SourceSize[0]*SourceSize[1]*4.
type AssetData struct {
	Meta   Metadata
	Pixels []byte
}

// NewAssetData pairs a descriptor with its pixel buffer.
func NewAssetData(meta Metadata, pixels []byte) *AssetData {
	return &AssetData{Meta: meta, Pixels: pixels}
}
