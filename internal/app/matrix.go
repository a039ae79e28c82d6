package app

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/readeck/bitone/pkg/dither"
)

func init() {
	rootCmd.AddCommand(matrixCmd)
}

var matrixCmd = &cobra.Command{
	Use:   "matrix <size>",
	Short: "Print a Bayer matrix (4, 16 or 64)",
	Args:  cobra.ExactArgs(1),
	RunE:  runMatrix,
}

func runMatrix(c *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid size %q", args[0])
	}
	size, err := dither.ParseBayerSize(n)
	if err != nil {
		return err
	}

	return printMatrix(c.OutOrStdout(), size)
}

// printMatrix writes the integer matrix followed by the 8-bit cuts.
// Cells under the default cut are highlighted.
func printMatrix(w io.Writer, size dither.BayerSize) error {
	m, err := dither.NewMatrix(size)
	if err != nil {
		return err
	}

	low := color.New(color.FgCyan)
	width := len(strconv.Itoa(m.Dim()*m.Dim() - 1))

	fmt.Fprintf(w, "%s (%dx%d)\n", size, m.Dim(), m.Dim())
	for y, row := range m.Rows() {
		cells := make([]string, len(row))
		cuts := make([]string, len(row))
		for x, v := range row {
			cells[x] = fmt.Sprintf("%*d", width, v)
			cuts[x] = fmt.Sprintf("%3d", m.Cut(x, y))
			if m.Cut(x, y) <= dither.DefaultCut {
				cuts[x] = low.Sprint(cuts[x])
			}
		}
		fmt.Fprintf(w, "%s  |  %s\n", strings.Join(cells, " "), strings.Join(cuts, " "))
	}
	return nil
}
