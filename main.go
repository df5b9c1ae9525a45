package main

import (
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cdclsat/sudokusat/internal/dimacs"
	"github.com/cdclsat/sudokusat/internal/dimacsout"
	"github.com/cdclsat/sudokusat/internal/sat"
	"github.com/cdclsat/sudokusat/internal/sudoku"
)

var (
	flagGzip       bool
	flagCPUProfile string
	flagMemProfile string
	flagLogLevel   string
)

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sudokusat [instance.cnf]",
		Short: "A CDCL SAT solver for DIMACS CNF instances, with Sudoku decoding",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0])
		},
	}

	cmd.Flags().BoolVar(&flagGzip, "gzip", false, "treat the instance file as gzip-compressed")
	cmd.Flags().StringVar(&flagCPUProfile, "cpu-profile", "", "write a pprof CPU profile to this file")
	cmd.Flags().StringVar(&flagMemProfile, "mem-profile", "", "write a pprof heap profile to this file")
	cmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "zerolog level: debug, info, warn, error, disabled")

	return cmd
}

func newLogger() (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(flagLogLevel)
	if err != nil {
		return zerolog.Logger{}, errors.Wrapf(err, "invalid --log-level %q", flagLogLevel)
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger(), nil
}

func run(instanceFile string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}

	if flagCPUProfile != "" {
		f, err := os.Create(flagCPUProfile)
		if err != nil {
			return errors.Wrap(err, "creating CPU profile")
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return errors.Wrap(err, "starting CPU profile")
		}
		defer pprof.StopCPUProfile()
	}

	s := sat.NewSolver(sat.Options{
		Observer: zerologObserver{log: log},
	})

	formula, err := dimacs.Load(instanceFile, flagGzip, s)
	if err != nil {
		return errors.Wrap(err, "loading instance")
	}
	log.Info().
		Int("variables", formula.NumVariables).
		Int("clauses", formula.NumClauses).
		Msg("instance loaded")

	start := time.Now()
	result := s.Solve()
	elapsed := time.Since(start)

	log.Info().
		Stringer("status", result.Status).
		Dur("elapsed", elapsed).
		Int64("conflicts", s.TotalConflicts).
		Int64("decisions", s.TotalDecisions).
		Msg("search finished")

	fmt.Print(dimacsout.FormatResult(result))

	if result.Status == sat.Sat && formula.Metadata.Size > 0 {
		grid, conflicts, err := sudoku.Decode(formula.Metadata, result.Assignment)
		if err != nil && !errors.Is(err, sudoku.ErrNoMetadata) {
			return errors.Wrap(err, "decoding sudoku grid")
		}
		if err == nil {
			for _, c := range conflicts {
				log.Warn().Stringer("conflict", c).Msg("decode conflict")
			}
			fmt.Printf("\nSudoku solution (%dx%d):\n\n", grid.Size, grid.Size)
			fmt.Print(grid.String())
		}
	}

	if flagMemProfile != "" {
		f, err := os.Create(flagMemProfile)
		if err != nil {
			return errors.Wrap(err, "creating memory profile")
		}
		defer f.Close()
		if err := pprof.WriteHeapProfile(f); err != nil {
			return errors.Wrap(err, "writing memory profile")
		}
	}

	return nil
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "internal error: %v\n", r)
			os.Exit(2)
		}
	}()

	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
