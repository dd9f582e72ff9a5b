package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/iwfg/adapter"
	"github.com/katalvlaran/iwfg/frontio"
)

func newContribCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contrib [flags] FILE",
		Short: "Print the exact exclusive contribution of every point",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ys, err := frontio.Load(args[0])
			if err != nil {
				return err
			}
			opts, err := a.adapterOptions()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, y := range ys {
				contrib, err := adapter.Contributions(y, opts...)
				if err != nil {
					return fmt.Errorf("front %d: %w", i, err)
				}
				fields := make([]string, len(contrib))
				for j, c := range contrib {
					fields[j] = strconv.FormatFloat(c, 'g', 10, 64)
				}
				if _, err := fmt.Fprintln(out, strings.Join(fields, " ")); err != nil {
					return err
				}
			}
			a.log.Info("contributions computed", "file", args[0], "fronts", len(ys))
			return nil
		},
	}

	addFrontFlags(cmd.Flags())
	return cmd
}
