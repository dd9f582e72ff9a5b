package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/iwfg/adapter"
	"github.com/katalvlaran/iwfg/frontio"
)

func newBottomKCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bottomk [flags] FILE",
		Short: "Print the k least contributing points of every front",
		Long: `Prints one line per front with the identities of its k least
contributing points, least first. Identities are row numbers, 0-based
unless --one-based is set. k is capped by the size of each front.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ys, err := frontio.Load(args[0])
			if err != nil {
				return err
			}
			opts, err := a.adapterOptions()
			if err != nil {
				return err
			}

			start := time.Now()
			idx, err := adapter.BottomKAll(cmd.Context(), matrices(ys), a.cfg.K, opts...)
			if err != nil {
				return err
			}
			a.log.Info("bottom-k selected",
				"file", args[0], "fronts", len(ys), "k", a.cfg.K, "elapsed", time.Since(start))

			out := cmd.OutOrStdout()
			for _, row := range idx {
				fields := make([]string, len(row))
				for i, id := range row {
					fields[i] = strconv.Itoa(id)
				}
				if _, err := fmt.Fprintln(out, strings.Join(fields, " ")); err != nil {
					return err
				}
			}
			return nil
		},
	}

	fs := cmd.Flags()
	fs.IntP(flagK, "k", 1, "number of points to report per front")
	fs.Bool(flagOneBased, false, "report 1-based identities")
	fs.Int(flagWorkers, 1, "fronts evaluated concurrently")
	addFrontFlags(fs)
	return cmd
}

func matrices(ys []*mat.Dense) []mat.Matrix {
	out := make([]mat.Matrix, len(ys))
	for i, y := range ys {
		out[i] = y
	}
	return out
}
