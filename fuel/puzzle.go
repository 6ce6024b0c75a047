package fuel

import (
	"strconv"
	"time"

	"aoc_solvers/metrics"
	"aoc_solvers/models"
	"aoc_solvers/parser"

	"go.uber.org/zap"
)

const Name = "fuel"

// Puzzle answers both parts for a file of module masses.
type Puzzle struct{}

func (Puzzle) Name() string { return Name }

func (Puzzle) Short() string {
	return "Sum the fuel required to launch every module mass in a file"
}

func (Puzzle) Solve(data []byte, log *zap.SugaredLogger, m *metrics.Metrics, emit models.Emit) error {
	masses, err := parser.Unsigned(data)
	if err != nil {
		return err
	}
	m.AddLinesParsed(Name, len(masses))
	log.Debugw("Parsed module masses", "count", len(masses))

	start := time.Now()
	simple := SimpleTotal(masses)
	m.RecordSolveDuration(Name, strconv.Itoa(models.PartOne), time.Since(start))
	if err := emit(models.Answer{Part: models.PartOne, Label: "Part One Total Consumption", Value: simple}); err != nil {
		return err
	}

	start = time.Now()
	refined := RefinedTotal(masses)
	m.RecordSolveDuration(Name, strconv.Itoa(models.PartTwo), time.Since(start))

	log.Infow("Fuel computed", "simple", simple, "refined", refined)

	return emit(models.Answer{Part: models.PartTwo, Label: "Part Two Total Consumption", Value: refined})
}
