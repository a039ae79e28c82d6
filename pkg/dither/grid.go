package dither

import (
	"fmt"
	"image"
	"image/color"
)

// Grid is a dense, row-major buffer of 8-bit intensities.
//
// Coordinates are always checked against Width and Height. Reading or
// writing outside the grid is a programming error and panics.
type Grid struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewGrid returns a black grid of the given size.
func NewGrid(w, h int) *Grid {
	if w < 0 || h < 0 {
		panic(fmt.Sprintf("dither: invalid grid size %dx%d", w, h))
	}
	return &Grid{
		Width:  w,
		Height: h,
		Pix:    make([]uint8, w*h),
	}
}

// GridFromGray copies an *image.Gray into a new Grid. The result origin
// is always (0, 0).
func GridFromGray(m *image.Gray) *Grid {
	b := m.Bounds()
	g := NewGrid(b.Dx(), b.Dy())
	for y := 0; y < g.Height; y++ {
		i := m.PixOffset(b.Min.X, b.Min.Y+y)
		copy(g.Pix[y*g.Width:(y+1)*g.Width], m.Pix[i:i+g.Width])
	}
	return g
}

// Clone returns a copy of the grid that shares no memory with g.
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.Width, g.Height)
	copy(c.Pix, g.Pix)
	return c
}

// Empty reports whether the grid holds no pixel.
func (g *Grid) Empty() bool {
	return g.Width == 0 || g.Height == 0
}

func (g *Grid) offset(x, y int) int {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		panic(fmt.Sprintf("dither: (%d,%d) out of %dx%d grid", x, y, g.Width, g.Height))
	}
	return y*g.Width + x
}

// GrayAt returns the intensity at (x, y).
func (g *Grid) GrayAt(x, y int) uint8 {
	return g.Pix[g.offset(x, y)]
}

// SetGray sets the intensity at (x, y).
func (g *Grid) SetGray(x, y int, v uint8) {
	g.Pix[g.offset(x, y)] = v
}

// ColorModel implements image.Image.
func (g *Grid) ColorModel() color.Model {
	return color.GrayModel
}

// Bounds implements image.Image.
func (g *Grid) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.Width, g.Height)
}

// At implements image.Image. Unlike GrayAt it follows the image.Image
// contract and returns a zero color outside the bounds.
func (g *Grid) At(x, y int) color.Color {
	if !image.Pt(x, y).In(g.Bounds()) {
		return color.Gray{}
	}
	return color.Gray{Y: g.GrayAt(x, y)}
}

// Gray returns the grid as an *image.Gray sharing the same pixels.
func (g *Grid) Gray() *image.Gray {
	return &image.Gray{
		Pix:    g.Pix,
		Stride: g.Width,
		Rect:   g.Bounds(),
	}
}
