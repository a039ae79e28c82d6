package native

import (
	"bytes"
	"fmt"
	"image"
	"io"

	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder

	"github.com/disintegration/imaging"

	_ "github.com/biessek/golang-ico" // ICO decoder
	_ "golang.org/x/image/bmp"        // BMP decoder
	_ "golang.org/x/image/tiff"       // TIFF decoder
	_ "golang.org/x/image/webp"       // WEBP decoder

	"github.com/readeck/bitone/pkg/dither"
	"github.com/readeck/bitone/pkg/img"
)

func init() {
	img.AddLoader("native", New)
}

// Image is an image.
type Image struct {
	m       image.Image
	format  string
	options img.EncodeOptions
}

// New returns a new Image instance from a reader.
func New(r io.Reader) (img.Image, error) {
	// We need to grab the format first, hence this two pass thing
	var buf bytes.Buffer
	tee := io.TeeReader(r, &buf)

	c, format, err := image.DecodeConfig(tee)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", img.ErrDecode, err)
	}

	if c.Width*c.Height > img.MaxPixels {
		return nil, fmt.Errorf("%w: image is too big (%dx%d)", img.ErrDecode, c.Width, c.Height)
	}

	m, err := imaging.Decode(
		io.MultiReader(&buf, r),
		imaging.AutoOrientation(true),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", img.ErrDecode, err)
	}

	return &Image{
		m:       m,
		format:  format,
		options: img.DefaultEncodeOptions,
	}, nil
}

// Close must be called after you're done with your image conversion.
func (im *Image) Close() error {
	return nil
}

// Image returns the decoded image.
func (im *Image) Image() image.Image {
	return im.m
}

// Encode encodes the image to the given format. If format is an
// empty string it will reuse the original format if possible.
// It fallbacks to png encoding.
func (im *Image) Encode(format string) (io.Reader, string, error) {
	if format == "" {
		format = im.format
	}

	b, format, err := img.Encode(im.m, format, &im.options)
	if err != nil {
		return nil, format, err
	}
	return bytes.NewReader(b), format, nil
}

// Format returns the image format.
func (im *Image) Format() string {
	return im.format
}

// Width returns the image width.
func (im *Image) Width() uint {
	return uint(im.m.Bounds().Dx())
}

// Height returns the image height.
func (im *Image) Height() uint {
	return uint(im.m.Bounds().Dy())
}

// SetQuality sets the JPEG quality of final image.
func (im *Image) SetQuality(q int) {
	im.options.Quality = q
}

// Fit resizes the image to a given size, only if
// the given width and height are bigger than the current
// image.
func (im *Image) Fit(w, h uint) error {
	if w == 0 || h == 0 {
		return fmt.Errorf("invalid size %dx%d", w, h)
	}
	if w >= im.Width() && h >= im.Height() {
		return nil
	}

	im.m = imaging.Fit(im.m, int(w), int(h), imaging.Lanczos)
	return nil
}

// Grid returns the grayscale reduction of the image.
func (im *Image) Grid() *dither.Grid {
	return img.Grayscale(im.m)
}
