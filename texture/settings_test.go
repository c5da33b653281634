package texture

import "testing"

func TestSettingsString(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"compression none", CompressionNone.String(), "No compression"},
		{"compression dxt1 cutout", CompressionDXT1Cutout.String(), "DXT1 w/ 1-bit Alpha"},
		{"texture size none", TextureSizeNone.String(), "none"},
		{"texture size 1024", TextureSize1024.String(), "1024"},
		{"mip gen none", MipGenNone.String(), "NoMipmaps"},
		{"mip gen sharpen", MipGenSharpen.String(), "Sharpen"},
		{"pot none", PowerOfTwoNone.String(), "None"},
		{"pot pad", PowerOfTwoPad.String(), "Pad"},
		{"pot pad square", PowerOfTwoPadSquare.String(), "PadSquare"},
		{"address repeat", AddressModeRepeat.String(), "Repeat"},
		{"address clamp", AddressModeClampToEdge.String(), "ClampToEdge"},
		{"filter linear", FilterLinear.String(), "Linear"},
		{"filter nearest", FilterNearest.String(), "Nearest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("String() = %q, want %q", tt.got, tt.want)
			}
		})
	}
}
