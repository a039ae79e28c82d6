package app

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gammazero/workerpool"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/readeck/bitone/pkg/config"
	"github.com/readeck/bitone/pkg/dither"
	"github.com/readeck/bitone/pkg/img"
)

func init() {
	rootCmd.AddCommand(convertCmd)

	flags := convertCmd.Flags()
	flags.StringSliceVarP(&convertFlags.modes, "mode", "m", nil,
		"Conversion modes (threshold, grey, floyd-steinberg, bayer)")
	flags.IntVarP(&convertFlags.bayerSize, "bayer-size", "b", 0, "Bayer matrix size (4, 16, 64)")
	flags.IntVar(&convertFlags.cut, "cut", 0, "Threshold cut (0-255)")
	flags.StringVar(&convertFlags.fit, "fit", "", "Fit images in WxH before conversion")
	flags.StringVar(&convertFlags.black, "black", "", "Color of black pixels (#rrggbb)")
	flags.StringVar(&convertFlags.white, "white", "", "Color of white pixels (#rrggbb)")
	flags.StringVarP(&convertFlags.format, "format", "f", "", "Output format (png, gif, jpeg)")
	flags.StringVarP(&convertFlags.outputDir, "output", "o", "", "Output directory")
	flags.IntVarP(&convertFlags.workers, "workers", "w", 0, "Number of files converted at once")
}

var convertFlags struct {
	modes     []string
	bayerSize int
	cut       int
	fit       string
	black     string
	white     string
	format    string
	outputDir string
	workers   int
}

var convertCmd = &cobra.Command{
	Use:   "convert [flags] <input>...",
	Short: "Convert images",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runConvert,
}

// applyConvertFlags copies the flags given on the command line over
// the configuration.
func applyConvertFlags(c *cobra.Command) {
	flags := c.Flags()
	if flags.Changed("mode") {
		config.Config.Dither.Modes = convertFlags.modes
	}
	if flags.Changed("bayer-size") {
		config.Config.Dither.BayerSize = convertFlags.bayerSize
	}
	if flags.Changed("cut") {
		config.Config.Dither.Cut = convertFlags.cut
	}
	if flags.Changed("fit") {
		config.Config.Output.Fit = convertFlags.fit
	}
	if flags.Changed("black") {
		config.Config.Output.Black = convertFlags.black
	}
	if flags.Changed("white") {
		config.Config.Output.White = convertFlags.white
	}
	if flags.Changed("format") {
		config.Config.Output.Format = convertFlags.format
	}
	if flags.Changed("workers") {
		config.Config.Main.Workers = convertFlags.workers
	}
}

func runConvert(c *cobra.Command, args []string) error {
	applyConvertFlags(c)

	opts, err := newConvertOptions()
	if err != nil {
		return err
	}
	opts.outputDir = convertFlags.outputDir

	workers := config.Config.Main.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(args) {
		workers = len(args)
	}

	ctx := c.Context()
	wp := workerpool.New(workers)

	var mu sync.Mutex
	var failed []error

	for _, filename := range args {
		filename := filename
		wp.Submit(func() {
			defer func() {
				if r := recover(); r != nil {
					log.WithField("path", filename).
						WithField("recover", r).Error("error during conversion")
					mu.Lock()
					failed = append(failed, fmt.Errorf("%s: %v", filename, r))
					mu.Unlock()
				}
			}()

			if err := convertFile(ctx, filename, opts); err != nil {
				log.WithField("path", filename).
					WithField("kind", errorKind(err)).
					WithError(err).Error("conversion failed")
				mu.Lock()
				failed = append(failed, err)
				mu.Unlock()
			}
		})
	}
	wp.StopWait()

	switch len(failed) {
	case 0:
		return nil
	case 1:
		return fmt.Errorf("%s: %w", errorKind(failed[0]), failed[0])
	}
	return fmt.Errorf("%d of %d files failed, first error: %s: %w",
		len(failed), len(args), errorKind(failed[0]), failed[0])
}

// errorKind returns the failure class of err.
func errorKind(err error) string {
	switch {
	case errors.Is(err, img.ErrDecode):
		return "DecodeFailure"
	case errors.Is(err, dither.ErrUnsupportedConfiguration):
		return "UnsupportedConfiguration"
	case errors.Is(err, img.ErrEncode):
		return "EncodeFailure"
	case errors.Is(err, img.ErrWrite):
		return "WriteFailure"
	}
	return "Failure"
}
