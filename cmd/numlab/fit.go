package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/numlab/fit"
	"github.com/katalvlaran/numlab/matrix"
	"github.com/katalvlaran/numlab/report"
)

// plotSteps is the fitted-curve grid size of the CSV export.
const plotSteps = 200

// modelString renders the fitted model, e.g. "y = a*x^2 + b*x + c".
func modelString(degree int) string {
	terms := make([]string, 0, degree+1)
	for i := 0; i <= degree; i++ {
		name := string(rune('a' + i))
		switch p := degree - i; {
		case p > 1:
			terms = append(terms, fmt.Sprintf("%s*x^%d", name, p))
		case p == 1:
			terms = append(terms, name+"*x")
		default:
			terms = append(terms, name)
		}
	}

	return "y = " + strings.Join(terms, " + ")
}

func newFitCmd() *cobra.Command {
	var (
		degree  int
		method  string
		csvPath string
	)

	cmd := &cobra.Command{
		Use:   "fit <input>",
		Short: "Least-squares polynomial curve fit",
		Long: `Fit a polynomial y ≈ a*x^d + … + c through (x, y) sample pairs read as
whitespace-separated values from the input file.

Prints the coefficients, a per-point prediction table and the SSE/MSE
summary. With --csv the observed points and the fitted curve (sampled on
a 200-point grid) are exported for plotting.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if degree < 1 {
				return fmt.Errorf("%w: --degree must be >= 1", errUsage)
			}
			var m fit.Method
			switch method {
			case "qr":
				m = fit.MethodQR
			case "normal":
				m = fit.MethodNormal
			default:
				return fmt.Errorf("%w: --method must be qr or normal", errUsage)
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open input: %w", err)
			}
			defer f.Close()

			xs, ys, err := matrix.NewReader(f).Points()
			if err != nil {
				return err
			}
			log.Debug().Int("samples", len(xs)).Int("degree", degree).Str("method", method).Msg("fitting")

			res, err := fit.Fit(xs, ys, degree, fit.WithMethod(m))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Least-squares fit (degree %d, %s):\n%s\n", degree, method, modelString(degree))
			rep := report.NewText(out, report.WithPrecision(10))
			if err := fit.WriteReport(rep, xs, ys, res); err != nil {
				return err
			}

			if csvPath != "" {
				cf, err := os.Create(csvPath)
				if err != nil {
					return fmt.Errorf("create csv: %w", err)
				}
				defer cf.Close()
				if err := fit.WritePlotCSV(cf, xs, ys, res, plotSteps); err != nil {
					return err
				}
				fmt.Fprintf(out, "\nWrote %s (points and fitted curve).\n", csvPath)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&degree, "degree", 1, "polynomial degree (1 = linear, 2 = quadratic)")
	cmd.Flags().StringVar(&method, "method", "qr", "solution method: qr (dgels) or normal (normal equations + LU)")
	cmd.Flags().StringVar(&csvPath, "csv", "", "write a plotting CSV (x_pts,y_pts,x_fit,y_fit) to this path")

	return cmd
}
