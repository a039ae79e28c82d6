package dither

// diffusion is one cell of an error diffusion kernel.
type diffusion struct {
	dx, dy int
	weight float32
}

// floydSteinberg only reaches pixels that come after the current one in
// raster order.
var floydSteinberg = []diffusion{
	{1, 0, 7.0 / 16.0},
	{-1, 1, 3.0 / 16.0},
	{0, 1, 5.0 / 16.0},
	{1, 1, 1.0 / 16.0},
}

// FloydSteinberg returns a binary version of g using Floyd-Steinberg
// error diffusion and DefaultCut.
func FloydSteinberg(g *Grid) *Grid {
	return FloydSteinbergCut(g, DefaultCut)
}

// FloydSteinbergCut returns a binary version of g using Floyd-Steinberg
// error diffusion. Pixels are binarized against cut.
//
// Pixels are visited row by row, left to right, and the quantization
// error of each pixel is spread over its unvisited neighbors.
// Neighbors outside the grid are skipped. Adjusted values are stored
// as 8-bit intensities, saturated to [0, 255] with the fraction
// truncated.
func FloydSteinbergCut(g *Grid, cut uint8) *Grid {
	dst := NewGrid(g.Width, g.Height)
	acc := g.Clone()

	for y := 0; y < acc.Height; y++ {
		for x := 0; x < acc.Width; x++ {
			old := acc.GrayAt(x, y)
			v := Binarize(old, cut)
			dst.SetGray(x, y, v)
			diffuse(acc, x, y, float32(old)-float32(v), floydSteinberg)
		}
	}
	return dst
}

// diffuse adds err, weighted by the kernel, to the neighbors of (x, y).
func diffuse(acc *Grid, x, y int, err float32, kernel []diffusion) {
	for _, k := range kernel {
		nx, ny := x+k.dx, y+k.dy
		if nx < 0 || ny < 0 || nx >= acc.Width || ny >= acc.Height {
			continue
		}
		acc.SetGray(nx, ny, saturate(float32(acc.GrayAt(nx, ny))+err*k.weight))
	}
}

func saturate(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}
