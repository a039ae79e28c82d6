package dither

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// eachRow calls fn for every row of a height tall grid. Rows are split
// in contiguous bands, one goroutine per band. fn must only write the
// row it is given.
func eachRow(height int, fn func(y int)) {
	if height == 0 {
		return
	}
	bands := runtime.GOMAXPROCS(0)
	if bands > height {
		bands = height
	}
	size := (height + bands - 1) / bands

	var g errgroup.Group
	for start := 0; start < height; start += size {
		start := start
		end := start + size
		if end > height {
			end = height
		}
		g.Go(func() error {
			for y := start; y < end; y++ {
				fn(y)
			}
			return nil
		})
	}
	_ = g.Wait()
}
