package app

import (
	"context"
	"image"
	"os"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/readeck/bitone/pkg/dither"
	"github.com/readeck/bitone/pkg/img"
)

// output is an encoded stage result waiting to be written.
type output struct {
	filename string
	data     []byte
}

// outputPath returns the output file name of a stage: the input path
// without its extension, followed by "_<suffix>" and the extension of
// format. When dir is set, the file goes in dir.
func outputPath(input, dir, suffix, format string) string {
	stem := strings.TrimSuffix(input, filepath.Ext(input))
	if dir != "" {
		stem = filepath.Join(dir, filepath.Base(stem))
	}
	return stem + "_" + suffix + img.Extension(format)
}

// convertFile runs every stage on one input file. All the outputs are
// computed and encoded before the first one is written, and written
// files are removed when a later write fails.
func convertFile(ctx context.Context, filename string, opts *convertOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	logger := log.WithField("path", filename)
	start := time.Now()

	src, err := img.Open(opts.loader, filename)
	if err != nil {
		return err
	}
	defer src.Close()

	if opts.fitW > 0 && opts.fitH > 0 {
		if err := src.Fit(opts.fitW, opts.fitH); err != nil {
			return err
		}
	}

	grid := src.Grid()
	logger.WithField("size", grid.Bounds().Size()).Debug("image loaded")

	outputs := make([]output, 0, len(opts.stages))
	for _, stage := range opts.stages {
		res, err := dither.Apply(grid, stage)
		if err != nil {
			return err
		}

		var m image.Image = res
		if opts.palette != nil && stage.Mode != dither.ModeGrey {
			m = dither.Colorize(res, opts.palette.black, opts.palette.white)
		}

		data, format, err := img.Encode(m, opts.format, &opts.encode)
		if err != nil {
			return err
		}
		outputs = append(outputs, output{
			filename: outputPath(filename, opts.outputDir, stage.Suffix(), format),
			data:     data,
		})
		logger.WithField("stage", stage.Mode).Debug("stage done")
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return writeOutputs(logger, outputs, time.Since(start))
}

func writeOutputs(logger *log.Entry, outputs []output, elapsed time.Duration) error {
	for i, o := range outputs {
		if err := img.WriteFile(o.filename, o.data); err != nil {
			for _, w := range outputs[:i] {
				if rmErr := os.Remove(w.filename); rmErr != nil {
					logger.WithError(rmErr).Warn("can't remove output")
				}
			}
			return err
		}
	}

	for _, o := range outputs {
		logger.WithField("output", o.filename).
			WithField("elapsed", elapsed).
			Info("saved")
	}
	return nil
}
