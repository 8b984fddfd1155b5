// Command numlab runs classical dense linear-algebra tasks — general
// matrix multiplication, least-squares curve fitting and SVD — as small
// text-in/text-out pipelines over a BLAS/LAPACK backend.
//
// Exit codes: 0 on success, 1 on a usage error, 2 on a runtime failure
// (I/O, malformed input, numeric failure). Diagnostics go to stderr;
// results go to stdout or the requested output file.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// errUsage classifies argument and flag problems so main can map them to
// exit code 1 while runtime failures map to 2.
var errUsage = errors.New("usage error")

// exactArgs is cobra.ExactArgs with the usage sentinel attached.
func exactArgs(n int) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) != n {
			return fmt.Errorf("%w: expected %d argument(s), got %d", errUsage, n, len(args))
		}

		return nil
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "numlab",
		Short:         "Classical dense linear-algebra tasks over a BLAS/LAPACK backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			zerolog.SetGlobalLevel(zerolog.WarnLevel)
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}

			// Unknown subcommands are usage errors, same as bad flags.
			return fmt.Errorf("%w: unknown command %q for %q", errUsage, args[0], cmd.CommandPath())
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug diagnostics")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", errUsage, err)
	})
	root.AddCommand(newMulCmd(), newFitCmd(), newSVDCmd())

	return root
}

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("run failed")
		if errors.Is(err, errUsage) {
			os.Exit(1)
		}
		os.Exit(2)
	}
}
