package app

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/readeck/bitone/pkg/config"
	"github.com/readeck/bitone/pkg/dither"
	"github.com/readeck/bitone/pkg/img"
)

// convertOptions holds everything a conversion job needs. It is built
// once and shared, read-only, by all the jobs.
type convertOptions struct {
	loader    string
	stages    []dither.Options
	format    string
	encode    img.EncodeOptions
	outputDir string
	fitW      uint
	fitH      uint
	palette   *palette
}

// palette replaces black and white in binary outputs.
type palette struct {
	black color.Color
	white color.Color
}

// newConvertOptions reads the conversion options from the configuration.
func newConvertOptions() (*convertOptions, error) {
	c := config.Config

	if c.Dither.Cut < 0 || c.Dither.Cut > 255 {
		return nil, fmt.Errorf("%w: cut %d", dither.ErrUnsupportedConfiguration, c.Dither.Cut)
	}
	if len(c.Dither.Modes) == 0 {
		return nil, fmt.Errorf("%w: no mode", dither.ErrUnsupportedConfiguration)
	}

	opts := &convertOptions{
		loader: c.Main.Loader,
		format: c.Output.Format,
		encode: img.DefaultEncodeOptions,
	}
	opts.encode.Quality = c.Output.Quality
	if f := strings.ToLower(c.Output.Format); f == "jpeg" || f == "jpg" {
		log.WithField("format", c.Output.Format).
			Warn("jpeg is lossy, binary outputs will have more than two colors")
	}

	seen := map[dither.Mode]bool{}
	for _, name := range c.Dither.Modes {
		m, err := dither.ParseMode(name)
		if err != nil {
			return nil, err
		}
		if seen[m] {
			continue
		}
		seen[m] = true

		stage := dither.DefaultOptions(m)
		stage.Cut = uint8(c.Dither.Cut)
		if m == dither.ModeBayer {
			if stage.BayerSize, err = dither.ParseBayerSize(c.Dither.BayerSize); err != nil {
				return nil, err
			}
		}
		opts.stages = append(opts.stages, stage)
	}

	if c.Output.Fit != "" {
		w, h, err := parseSize(c.Output.Fit)
		if err != nil {
			return nil, err
		}
		opts.fitW, opts.fitH = w, h
	}

	if c.Output.Black != "" || c.Output.White != "" {
		p := &palette{black: color.Black, white: color.White}
		var err error
		if c.Output.Black != "" {
			if p.black, err = parseHexColor(c.Output.Black); err != nil {
				return nil, err
			}
		}
		if c.Output.White != "" {
			if p.white, err = parseHexColor(c.Output.White); err != nil {
				return nil, err
			}
		}
		opts.palette = p
	}

	return opts, nil
}

// parseSize parses a "WxH" size.
func parseSize(s string) (uint, uint, error) {
	parts := strings.Split(strings.ToLower(s), "x")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid size %q", s)
	}
	w, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil || w == 0 {
		return 0, 0, fmt.Errorf("invalid size %q", s)
	}
	h, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil || h == 0 {
		return 0, 0, fmt.Errorf("invalid size %q", s)
	}
	return uint(w), uint(h), nil
}

// parseHexColor parses "#rrggbb" and "#rgb" colors, the "#" being
// optional.
func parseHexColor(s string) (color.Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return nil, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q", s)
	}
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}, nil
}
