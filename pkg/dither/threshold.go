package dither

// Threshold returns a new grid where every pixel of g is binarized
// against DefaultCut.
func Threshold(g *Grid) *Grid {
	return ThresholdCut(g, DefaultCut)
}

// ThresholdCut returns a new grid where every pixel of g is binarized
// against cut.
func ThresholdCut(g *Grid, cut uint8) *Grid {
	dst := NewGrid(g.Width, g.Height)
	eachRow(g.Height, func(y int) {
		for x := 0; x < g.Width; x++ {
			dst.SetGray(x, y, Binarize(g.GrayAt(x, y), cut))
		}
	})
	return dst
}
