package texture

import "testing"

func TestChannelMaskHas(t *testing.T) {
	tests := []struct {
		name string
		mask ChannelMask
		want ChannelMask
		has  bool
	}{
		{"all has RGB", ChannelMaskAll, ChannelMaskRGB, true},
		{"all has alpha", ChannelMaskAll, ChannelAlpha, true},
		{"RGB lacks alpha", ChannelMaskRGB, ChannelAlpha, false},
		{"RGB has red", ChannelMaskRGB, ChannelRed, true},
		{"empty has nothing", 0, ChannelRed, false},
		{"any mask has empty", ChannelRed, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mask.Has(tt.want); got != tt.has {
				t.Errorf("%v.Has(%v) = %v, want %v", tt.mask, tt.want, got, tt.has)
			}
		})
	}
}

func TestChannelMaskString(t *testing.T) {
	tests := []struct {
		mask ChannelMask
		want string
	}{
		{0, "none"},
		{ChannelRed, "R"},
		{ChannelMaskRGB, "RGB"},
		{ChannelMaskAll, "RGBA"},
		{ChannelGreen | ChannelAlpha, "GA"},
	}

	for _, tt := range tests {
		if got := tt.mask.String(); got != tt.want {
			t.Errorf("ChannelMask(%d).String() = %q, want %q", tt.mask, got, tt.want)
		}
	}
}
