package native

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/readeck/bitone/pkg/img"
)

func sampleImage() image.Image {
	m := image.NewNRGBA(image.Rect(0, 0, 40, 30))
	for y := 0; y < 30; y++ {
		for x := 0; x < 40; x++ {
			m.Set(x, y, color.NRGBA{uint8(x * 6), uint8(y * 8), 128, 255})
		}
	}
	return m
}

func encodeSample(t *testing.T, format string) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	var err error
	switch format {
	case "png":
		err = png.Encode(buf, sampleImage())
	case "jpeg":
		err = jpeg.Encode(buf, sampleImage(), nil)
	case "gif":
		err = gif.Encode(buf, sampleImage(), nil)
	case "bmp":
		err = bmp.Encode(buf, sampleImage())
	}
	require.NoError(t, err)
	return buf.Bytes()
}

func TestNew(t *testing.T) {
	t.Run("formats", func(t *testing.T) {
		for _, format := range []string{"png", "jpeg", "gif", "bmp"} {
			t.Run(format, func(t *testing.T) {
				m, err := img.New("native", bytes.NewReader(encodeSample(t, format)))
				require.NoError(t, err)
				defer m.Close()

				assert.Equal(t, format, m.Format())
				assert.Equal(t, uint(40), m.Width())
				assert.Equal(t, uint(30), m.Height())

				g := m.Grid()
				assert.Equal(t, 40, g.Width)
				assert.Equal(t, 30, g.Height)
			})
		}
	})

	t.Run("errors", func(t *testing.T) {
		tests := []struct {
			name string
			data string
		}{
			{"empty", ""},
			{"bogus", "not an image at all"},
			{"truncated", string(encodeSample(t, "png")[:60])},
		}

		for _, x := range tests {
			t.Run(x.name, func(t *testing.T) {
				m, err := img.New("native", strings.NewReader(x.data))
				assert.Nil(t, m)
				assert.True(t, errors.Is(err, img.ErrDecode), "%v", err)
			})
		}
	})

	t.Run("unknown loader", func(t *testing.T) {
		_, err := img.New("imagick", strings.NewReader(""))
		assert.EqualError(t, err, "loaders imagick not found")
	})
}

func TestFit(t *testing.T) {
	m, err := img.New("native", bytes.NewReader(encodeSample(t, "png")))
	require.NoError(t, err)

	assert.NoError(t, m.Fit(400, 400))
	assert.Equal(t, []uint{40, 30}, []uint{m.Width(), m.Height()})

	assert.NoError(t, m.Fit(20, 20))
	assert.Equal(t, []uint{20, 15}, []uint{m.Width(), m.Height()})

	assert.Error(t, m.Fit(0, 20))
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		format   string
		expected string
	}{
		{"auto-png", "png", "", "png"},
		{"auto-bmp", "bmp", "", "png"},
		{"jpeg-jpeg", "jpeg", "jpeg", "jpeg"},
		{"gif-gif", "gif", "gif", "gif"},
		{"png-gif", "png", "gif", "gif"},
	}

	for _, x := range tests {
		t.Run(x.name, func(t *testing.T) {
			m, err := img.New("native", bytes.NewReader(encodeSample(t, x.source)))
			require.NoError(t, err)

			r, f, err := m.Encode(x.format)
			require.NoError(t, err)
			assert.Equal(t, x.expected, f)

			_, format, err := image.DecodeConfig(r)
			require.NoError(t, err)
			assert.Equal(t, f, format)
		})
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "sample.png")
	require.NoError(t, img.Save(filename, sampleImage(), "png", nil))

	m, err := img.Open("native", filename)
	require.NoError(t, err)
	assert.Equal(t, "png", m.Format())

	_, err = img.Open("native", filepath.Join(dir, "missing.png"))
	assert.True(t, errors.Is(err, img.ErrDecode))
}
