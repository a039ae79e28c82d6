package dither

import (
	"fmt"
	"strings"
)

// Mode names a conversion stage.
type Mode string

// Available modes.
const (
	ModeThreshold      Mode = "threshold"
	ModeGrey           Mode = "grey"
	ModeFloydSteinberg Mode = "floyd-steinberg"
	ModeBayer          Mode = "bayer"
)

// Modes lists every available mode.
var Modes = []Mode{ModeThreshold, ModeGrey, ModeFloydSteinberg, ModeBayer}

// ParseMode returns the mode with the given name.
func ParseMode(name string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(name)))
	for _, x := range Modes {
		if m == x {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: mode %q", ErrUnsupportedConfiguration, name)
}

// Options holds the parameters of a stage.
type Options struct {
	Mode      Mode
	Cut       uint8
	BayerSize BayerSize
}

// DefaultOptions returns the options of the given mode with the
// default cut and a 64 cells Bayer matrix.
func DefaultOptions(m Mode) Options {
	return Options{
		Mode:      m,
		Cut:       DefaultCut,
		BayerSize: Bayer64,
	}
}

// Suffix returns the file name suffix of the stage output.
func (o Options) Suffix() string {
	switch o.Mode {
	case ModeFloydSteinberg:
		return "dither"
	case ModeBayer:
		return o.BayerSize.String()
	}
	return string(o.Mode)
}

// Apply runs the stage described by opts on g. The grey stage returns
// a copy of g.
func Apply(g *Grid, opts Options) (*Grid, error) {
	switch opts.Mode {
	case ModeThreshold:
		return ThresholdCut(g, opts.Cut), nil
	case ModeGrey:
		return g.Clone(), nil
	case ModeFloydSteinberg:
		return FloydSteinbergCut(g, opts.Cut), nil
	case ModeBayer:
		return Bayer(g, opts.BayerSize)
	}
	return nil, fmt.Errorf("%w: mode %q", ErrUnsupportedConfiguration, string(opts.Mode))
}
