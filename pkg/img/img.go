package img

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/readeck/bitone/pkg/dither"
)

var (
	// ErrDecode is returned when an image can't be read or decoded.
	ErrDecode = errors.New("decode failure")
	// ErrEncode is returned when an image can't be encoded.
	ErrEncode = errors.New("encode failure")
	// ErrWrite is returned when an encoded image can't be written.
	ErrWrite = errors.New("write failure")
)

// MaxPixels is the largest image size, in pixels, a loader accepts.
const MaxPixels = 30000000

// Image describes the interface of a loaded image.
type Image interface {
	Close() error
	Image() image.Image
	Encode(format string) (io.Reader, string, error)
	Format() string
	Width() uint
	Height() uint
	Fit(w, h uint) error
	Grid() *dither.Grid
}

var loaders = map[string]func(io.Reader) (Image, error){}

// AddLoader adds a new image loader to the available loaders.
func AddLoader(name string, fn func(io.Reader) (Image, error)) {
	loaders[name] = fn
}

// New loads an image using the given loader.
func New(loader string, r io.Reader) (Image, error) {
	fn, ok := loaders[loader]
	if !ok {
		return nil, fmt.Errorf("loaders %s not found", loader)
	}

	m, err := fn(r)
	if err != nil && !errors.Is(err, ErrDecode) {
		err = fmt.Errorf("%w: %s", ErrDecode, err)
	}
	return m, err
}

// Open loads the image file at the given path.
func Open(loader, filename string) (Image, error) {
	fd, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDecode, err)
	}
	defer fd.Close()

	return New(loader, fd)
}
