package dither

import (
	"image"
	"image/color"
)

// Colorize maps a binary grid to two colors. White pixels get white,
// every other pixel gets black.
func Colorize(g *Grid, black, white color.Color) *image.RGBA {
	b := color.RGBAModel.Convert(black).(color.RGBA)
	w := color.RGBAModel.Convert(white).(color.RGBA)

	dst := image.NewRGBA(g.Bounds())
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := b
			if g.GrayAt(x, y) == White {
				c = w
			}
			dst.SetRGBA(x, y, c)
		}
	}
	return dst
}
