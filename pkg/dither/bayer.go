package dither

import (
	"fmt"
	"sync"
)

// BayerSize is the number of cells of a Bayer matrix.
type BayerSize int

// Supported Bayer matrices.
const (
	Bayer4  BayerSize = 4
	Bayer16 BayerSize = 16
	Bayer64 BayerSize = 64
)

// BayerSizes lists the supported sizes.
var BayerSizes = []BayerSize{Bayer4, Bayer16, Bayer64}

// ParseBayerSize checks that n is a supported matrix size.
func ParseBayerSize(n int) (BayerSize, error) {
	s := BayerSize(n)
	if _, err := s.Dim(); err != nil {
		return 0, err
	}
	return s, nil
}

// Dim returns the side of the matrix: 2, 4 or 8.
func (s BayerSize) Dim() (int, error) {
	switch s {
	case Bayer4:
		return 2, nil
	case Bayer16:
		return 4, nil
	case Bayer64:
		return 8, nil
	}
	return 0, fmt.Errorf("%w: bayer size %d", ErrUnsupportedConfiguration, int(s))
}

func (s BayerSize) String() string {
	return fmt.Sprintf("bayer%d", int(s))
}

// Matrix is a normalized Bayer threshold matrix. Cells are k/N² with k
// in [0, N²).
type Matrix struct {
	n     int
	index []int
}

var (
	matrixLock  sync.Mutex
	matrixCache = map[BayerSize]*Matrix{}
)

// NewMatrix returns the Bayer matrix for the given size. Matrices are
// built once and shared, they are never modified.
func NewMatrix(s BayerSize) (*Matrix, error) {
	n, err := s.Dim()
	if err != nil {
		return nil, err
	}

	matrixLock.Lock()
	defer matrixLock.Unlock()
	if m, ok := matrixCache[s]; ok {
		return m, nil
	}

	m := &Matrix{n: 1, index: []int{0}}
	for m.n < n {
		m = m.grow()
	}
	matrixCache[s] = m
	return m, nil
}

// grow returns the matrix of twice the size using the recursive
// dispersed-dot definition:
//
//	M(2n)[y][x] = 4·M(n)[y mod n][x mod n] + M(2)[y div n][x div n]
//
// with M(2) = [[0 2] [3 1]].
func (m *Matrix) grow() *Matrix {
	base := [2][2]int{{0, 2}, {3, 1}}
	n := m.n * 2
	r := &Matrix{n: n, index: make([]int, n*n)}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			r.index[y*n+x] = 4*m.index[(y%m.n)*m.n+x%m.n] + base[y/m.n][x/m.n]
		}
	}
	return r
}

// Dim returns the side of the matrix.
func (m *Matrix) Dim() int {
	return m.n
}

// Index returns the integer rank of cell (x, y), x and y being taken
// modulo the matrix side.
func (m *Matrix) Index(x, y int) int {
	return m.index[(y%m.n)*m.n+x%m.n]
}

// At returns the normalized value of cell (x, y), x and y being taken
// modulo the matrix side.
func (m *Matrix) At(x, y int) float64 {
	return float64(m.Index(x, y)) / float64(m.n*m.n)
}

// Cut returns the 8-bit threshold of cell (x, y). The fraction of
// 255·At(x, y) is truncated.
func (m *Matrix) Cut(x, y int) uint8 {
	return uint8(255 * m.At(x, y))
}

// Rows returns a copy of the integer matrix.
func (m *Matrix) Rows() [][]int {
	res := make([][]int, m.n)
	for y := range res {
		res[y] = make([]int, m.n)
		copy(res[y], m.index[y*m.n:(y+1)*m.n])
	}
	return res
}

// Bayer returns a binary version of g using ordered dithering with the
// given matrix size. The matrix is tiled over the whole grid, including
// partial tiles on the right and bottom edges.
func Bayer(g *Grid, size BayerSize) (*Grid, error) {
	m, err := NewMatrix(size)
	if err != nil {
		return nil, err
	}

	n := m.Dim()
	cuts := make([]uint8, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			cuts[y*n+x] = m.Cut(x, y)
		}
	}

	dst := NewGrid(g.Width, g.Height)
	eachRow(g.Height, func(y int) {
		row := cuts[(y%n)*n : (y%n+1)*n]
		for x := 0; x < g.Width; x++ {
			dst.SetGray(x, y, Binarize(g.GrayAt(x, y), row[x%n]))
		}
	})
	return dst, nil
}
