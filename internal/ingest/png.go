package ingest

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/gogpu/assets/texture"
)

// colorType tags the channel layout of a decoded source image.
type colorType uint8

const (
	colorTypeRGB8 colorType = iota + 1
	colorTypeRGBA8
)

// bytesPerPixel returns the native layout width of the color type.
func (c colorType) bytesPerPixel() int {
	if c == colorTypeRGB8 {
		return 3
	}
	return 4
}

// processPNG decodes a PNG file and normalizes it to a tightly packed RGBA8
// payload. Supported source color types are 8-bit truecolor with and without
// alpha; anything else (16-bit, palette, grayscale) is skipped with a
// diagnostic on the Diagnostics writer.
//
// Classification happens on the decoded image, not the file header: a
// truecolor file with a tRNS transparency chunk decodes with an alpha
// channel and is treated as RGBA8.
func processPNG(path, name string) (*texture.AssetData, bool) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, false
	}
	defer func() { _ = f.Close() }()

	img, err := png.Decode(f)
	if err != nil {
		return nil, false
	}

	ct, ok := classifyImage(img)
	if !ok {
		fmt.Fprintf(Diagnostics, "Unsupported color type: %s - %s\n", name, colorModelName(img.ColorModel()))
		return nil, false
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	native, ok := extractNative(img, ct)
	if !ok {
		fmt.Fprintf(Diagnostics, "Unexpected pixel layout: %s\n", name)
		return nil, false
	}

	pixels := normalizeRGBA8(ct, native)

	has := texture.ChannelMaskRGB
	if ct == colorTypeRGBA8 {
		has = texture.ChannelMaskAll
	}

	meta := texture.DefaultMetadata()
	meta.SourceSize = [2]uint32{uint32(width), uint32(height)}
	meta.MaxIngameSize = meta.SourceSize
	meta.DataSize = [2]uint32{uint32(len(pixels)), 0}
	meta.HasChannels = has
	meta.IncludeChannels = has

	return texture.NewAssetData(meta, pixels), true
}

// classifyImage maps a decoded image to a supported color type. The std png
// decoder produces *image.RGBA for 8-bit truecolor and *image.NRGBA for
// 8-bit truecolor with alpha, whether the alpha comes from a fourth sample
// per pixel or a tRNS chunk.
func classifyImage(img image.Image) (colorType, bool) {
	switch img.(type) {
	case *image.RGBA:
		return colorTypeRGB8, true
	case *image.NRGBA:
		return colorTypeRGBA8, true
	default:
		return 0, false
	}
}

// colorModelName names a color model for diagnostics.
func colorModelName(m color.Model) string {
	switch m {
	case color.GrayModel:
		return "Gray8"
	case color.Gray16Model:
		return "Gray16"
	case color.RGBA64Model:
		return "RGB16"
	case color.NRGBA64Model:
		return "RGBA16"
	case color.AlphaModel, color.Alpha16Model:
		return "Alpha"
	}
	if _, ok := m.(color.Palette); ok {
		return "Palette"
	}
	return "Unknown"
}

// extractNative packs the decoded image into the color type's natural
// layout: 3 bytes per pixel for RGB8, 4 for RGBA8, row-major and tight.
func extractNative(img image.Image, ct colorType) ([]byte, bool) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	switch ct {
	case colorTypeRGB8:
		rgba, ok := img.(*image.RGBA)
		if !ok {
			return nil, false
		}
		out := make([]byte, 0, width*height*3)
		for y := range height {
			row := rgba.Pix[y*rgba.Stride : y*rgba.Stride+width*4]
			for x := range width {
				out = append(out, row[x*4], row[x*4+1], row[x*4+2])
			}
		}
		return out, true

	case colorTypeRGBA8:
		nrgba, ok := img.(*image.NRGBA)
		if !ok {
			return nil, false
		}
		if nrgba.Stride == width*4 {
			out := make([]byte, len(nrgba.Pix))
			copy(out, nrgba.Pix)
			return out, true
		}
		out := make([]byte, 0, width*height*4)
		for y := range height {
			out = append(out, nrgba.Pix[y*nrgba.Stride:y*nrgba.Stride+width*4]...)
		}
		return out, true

	default:
		return nil, false
	}
}

// normalizeRGBA8 converts a native-layout buffer to tightly packed RGBA8.
// RGB8 sources gain an opaque alpha byte after every third byte; RGBA8
// sources pass through unchanged.
func normalizeRGBA8(ct colorType, native []byte) []byte {
	if ct == colorTypeRGBA8 {
		return native
	}
	out := make([]byte, 0, len(native)/3*4)
	for i := 0; i+2 < len(native); i += 3 {
		out = append(out, native[i], native[i+1], native[i+2], 0xFF)
	}
	return out
}
