package img

import (
	"image"

	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"

	"github.com/readeck/bitone/pkg/dither"
)

// Luma weights (Rec. 709).
const (
	LumaR = 0.2126
	LumaG = 0.7152
	LumaB = 0.0722
)

// Grayscale reduces an image to a single channel grid. Gray images are
// copied as is.
//
// Luma is computed on straight (non premultiplied) channels and alpha
// is dropped, so a translucent pixel keeps the intensity of its color.
func Grayscale(m image.Image) *dither.Grid {
	switch t := m.(type) {
	case *dither.Grid:
		return t.Clone()
	case *image.Gray:
		return dither.GridFromGray(t)
	}

	// bild premultiplies alpha, give it straight channels on an
	// opaque image.
	n := imaging.Clone(m)
	opaque := &image.RGBA{Pix: n.Pix, Stride: n.Stride, Rect: n.Rect}
	for i := 3; i < len(opaque.Pix); i += 4 {
		opaque.Pix[i] = 0xff
	}

	return gridFromRed(effect.GrayscaleWithWeights(opaque, LumaR, LumaG, LumaB))
}

// gridFromRed copies the red channel of r into a new grid.
func gridFromRed(r *image.RGBA) *dither.Grid {
	b := r.Bounds()
	g := dither.NewGrid(b.Dx(), b.Dy())
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			g.SetGray(x, y, r.Pix[r.PixOffset(b.Min.X+x, b.Min.Y+y)])
		}
	}
	return g
}
