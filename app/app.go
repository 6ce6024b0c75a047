// Package app is the command shell shared by the solver binaries: it loads
// configuration, sets up logging and metrics, reads the input file and prints
// the answers.
package app

import (
	"io"
	"os"

	"aoc_solvers/config"
	"aoc_solvers/metrics"
	"aoc_solvers/middleware"
	"aoc_solvers/models"
	"aoc_solvers/parser"
	"aoc_solvers/utils"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Puzzle is a solver that turns a raw input file into answers.
type Puzzle interface {
	Name() string
	Short() string
	Solve(data []byte, log *zap.SugaredLogger, m *metrics.Metrics, emit models.Emit) error
}

func NewCommand(p Puzzle) *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:   p.Name() + " <input-file>",
		Short: p.Short(),
		Args:  exactlyOneInput,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg, err := config.Load(envFile)
			if err != nil {
				return errors.Wrap(err, "failed to load configuration")
			}
			return Run(cfg, p, args[0], cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")

	return cmd
}

// Execute runs the puzzle's command and exits non-zero on failure. Cobra has
// already printed the diagnostic by then.
func Execute(p Puzzle) {
	if err := NewCommand(p).Execute(); err != nil {
		os.Exit(1)
	}
}

func exactlyOneInput(cmd *cobra.Command, args []string) error {
	switch len(args) {
	case 1:
		return nil
	case 0:
		return errors.Wrap(ErrMissingArgument, "please provide a file to parse")
	default:
		return errors.Errorf("accepts exactly one input file, received %d", len(args))
	}
}

// Run solves one input file, writing each answer to out as soon as its part
// is solved.
func Run(cfg *config.Config, p Puzzle, path string, out io.Writer) error {
	if err := utils.InitLogger(cfg); err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}
	defer utils.CloseLogger()

	m := metrics.New(cfg)
	log, runID := utils.RunLogger(p.Name(), path)
	log.Infow("Run started")

	err := middleware.Recover(func() error {
		data, err := parser.ReadFile(path)
		if err != nil {
			return err
		}

		write := models.LineWriter(out)
		return p.Solve(data, log, m, func(a models.Answer) error {
			m.AddAnswers(p.Name(), 1)
			return write(a)
		})
	})

	if err != nil {
		kind := Classify(err)
		if kind == KindParse {
			m.IncrementParseErrors(p.Name())
		}
		m.IncrementRunErrors(p.Name(), string(kind))
		utils.Error(err, "Run failed",
			"run_id", runID,
			"solver", p.Name(),
			"kind", kind,
		)
	} else {
		log.Infow("Run finished")
	}

	if cfg.Metrics.Textfile != "" {
		if werr := m.WriteTextfile(cfg.Metrics.Textfile); werr != nil {
			utils.Error(werr, "Failed to write metrics textfile", "run_id", runID, "path", cfg.Metrics.Textfile)
		}
	}

	return err
}
