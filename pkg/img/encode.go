package img

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"strings"
)

// EncodeOptions holds the encoders settings.
type EncodeOptions struct {
	Quality     int
	Compression png.CompressionLevel
}

// DefaultEncodeOptions are used when no options are given.
var DefaultEncodeOptions = EncodeOptions{
	Quality:     80,
	Compression: png.BestCompression,
}

// Extension returns the file extension of a format.
func Extension(format string) string {
	switch strings.ToLower(format) {
	case "gif":
		return ".gif"
	case "jpeg", "jpg":
		return ".jpg"
	}
	return ".png"
}

// Encode encodes m to the given format. GIF keeps the exact colors of
// images with at most 256 of them. JPEG is lossy and does not keep a
// binary image two-colored. An empty format or an unknown
// one falls back to PNG. It returns the encoded data and the format
// actually used.
func Encode(m image.Image, format string, options *EncodeOptions) ([]byte, string, error) {
	if options == nil {
		options = &DefaultEncodeOptions
	}

	var err error
	buf := new(bytes.Buffer)

	switch strings.ToLower(format) {
	case "gif":
		format = "gif"
		if p, ok := exactPalette(m); ok {
			m = p
		}
		numColors := 256
		if p, ok := m.(*image.Paletted); ok {
			numColors = len(p.Palette)
		}
		err = gif.Encode(buf, m, &gif.Options{NumColors: numColors})
	case "jpeg", "jpg":
		format = "jpeg"
		err = jpeg.Encode(buf, m, &jpeg.Options{Quality: options.Quality})
	default:
		format = "png"
		encoder := &png.Encoder{CompressionLevel: options.Compression}
		err = encoder.Encode(buf, m)
	}

	if err != nil {
		return nil, format, fmt.Errorf("%w: %s", ErrEncode, err)
	}
	return buf.Bytes(), format, nil
}

// WriteFile writes encoded data to filename.
func WriteFile(filename string, data []byte) error {
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("%w: %s", ErrWrite, err)
	}
	return nil
}

// Save encodes m and writes it to filename.
func Save(filename string, m image.Image, format string, options *EncodeOptions) error {
	data, _, err := Encode(m, format, options)
	if err != nil {
		return err
	}
	return WriteFile(filename, data)
}

// exactPalette returns m as a paletted image holding exactly the colors
// of m. It returns false when m has more than 256 colors.
func exactPalette(m image.Image) (*image.Paletted, bool) {
	b := m.Bounds()
	p := image.NewPaletted(b, nil)
	index := map[color.RGBA]uint8{}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.RGBAModel.Convert(m.At(x, y)).(color.RGBA)
			i, ok := index[c]
			if !ok {
				if len(p.Palette) == 256 {
					return nil, false
				}
				i = uint8(len(p.Palette))
				index[c] = i
				p.Palette = append(p.Palette, c)
			}
			p.SetColorIndex(x, y, i)
		}
	}

	if len(p.Palette) == 0 {
		p.Palette = color.Palette{color.Black}
	}
	return p, true
}
