package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/numlab/matrix"
	"github.com/katalvlaran/numlab/report"
	"github.com/katalvlaran/numlab/svd"
)

func newSVDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "svd <input>",
		Short: "Singular value decomposition with reconstruction check",
		Long: `Decompose a dense matrix A = U·Σ·Vᵀ.

Input format:
  rows cols
  <rows lines, each cols space-separated doubles>

Prints the singular values, U, Vᵀ, the reconstruction U·Σ·Vᵀ and the
maximum elementwise deviation from the original.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open input: %w", err)
			}
			defer f.Close()

			rd := matrix.NewReader(f)
			rows, cols, err := rd.Dims()
			if err != nil {
				return err
			}
			a, err := rd.Matrix(rows, cols, "A")
			if err != nil {
				return err
			}
			log.Debug().Int("rows", rows).Int("cols", cols).Msg("decomposing")

			d, err := svd.Decompose(a)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			rep := report.NewText(out)
			fmt.Fprintln(out, "Singular values S:")
			for i, v := range d.S {
				if err := rep.Scalar(fmt.Sprintf("  S[%d]", i), v); err != nil {
					return err
				}
			}
			fmt.Fprintln(out)
			if err := rep.Matrix("U", d.U); err != nil {
				return err
			}
			fmt.Fprintln(out)
			if err := rep.Matrix("V^T", d.VT); err != nil {
				return err
			}

			rec, err := d.Reconstruct()
			if err != nil {
				return err
			}
			fmt.Fprintln(out)
			if err := rep.Matrix("A reconstructed (U*Sigma*V^T)", rec); err != nil {
				return err
			}
			diff, err := svd.MaxAbsDiff(rec, a)
			if err != nil {
				return err
			}
			fmt.Fprintln(out)

			return rep.Scalar("max |A_rec - A|", diff)
		},
	}
}
