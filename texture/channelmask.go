package texture

import "strings"

// ChannelMask is a bitmask over the four color channels of a texture.
// It describes either which channels a source file carries (HasChannels)
// or which channels should be kept (IncludeChannels).
type ChannelMask uint8

// Channel flags.
const (
	// ChannelRed selects the red channel.
	ChannelRed ChannelMask = 1 << 0

	// ChannelGreen selects the green channel.
	ChannelGreen ChannelMask = 1 << 1

	// ChannelBlue selects the blue channel.
	ChannelBlue ChannelMask = 1 << 2

	// ChannelAlpha selects the alpha channel.
	ChannelAlpha ChannelMask = 1 << 3

	// ChannelMaskRGB selects the three color channels.
	ChannelMaskRGB = ChannelRed | ChannelGreen | ChannelBlue

	// ChannelMaskAll selects every channel.
	ChannelMaskAll = ChannelMaskRGB | ChannelAlpha
)

// Has reports whether every channel in m2 is set in m.
func (m ChannelMask) Has(m2 ChannelMask) bool {
	return m&m2 == m2
}

// String returns the set channels as a compact "RGBA"-style string.
func (m ChannelMask) String() string {
	if m == 0 {
		return "none"
	}
	var b strings.Builder
	if m.Has(ChannelRed) {
		b.WriteByte('R')
	}
	if m.Has(ChannelGreen) {
		b.WriteByte('G')
	}
	if m.Has(ChannelBlue) {
		b.WriteByte('B')
	}
	if m.Has(ChannelAlpha) {
		b.WriteByte('A')
	}
	return b.String()
}
