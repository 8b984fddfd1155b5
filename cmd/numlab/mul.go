package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/numlab/pipeline"
)

func newMulCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mul <input> <output>",
		Short: "General matrix product C = A·B",
		Long: `Multiply two dense matrices read from a text file.

Input format:
  m n l
  <m lines, each n space-separated doubles>   -- matrix A
  <n lines, each l space-separated doubles>   -- matrix B

The m×l product is written to the output file as "m l" followed by m lines
of l values at full float64 precision. On failure no output file is left
behind.`,
		Args: exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Debug().Str("input", args[0]).Str("output", args[1]).Msg("multiply pipeline")

			m, l, err := pipeline.Run(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "OK: C = A*B (%dx%d)\n", m, l)

			return nil
		},
	}
}
