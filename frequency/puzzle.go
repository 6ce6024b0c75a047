package frequency

import (
	"strconv"
	"time"

	"aoc_solvers/metrics"
	"aoc_solvers/models"
	"aoc_solvers/parser"

	"go.uber.org/zap"
)

const Name = "frequency"

// Puzzle answers both parts for a file of signed frequency deltas. The
// resulting frequency is emitted before the repeat scan starts, since that
// scan may never finish.
type Puzzle struct{}

func (Puzzle) Name() string { return Name }

func (Puzzle) Short() string {
	return "Calibrate a device from a file of frequency changes"
}

func (Puzzle) Solve(data []byte, log *zap.SugaredLogger, m *metrics.Metrics, emit models.Emit) error {
	deltas, err := parser.Signed(data)
	if err != nil {
		return err
	}
	m.AddLinesParsed(Name, len(deltas))
	log.Debugw("Parsed frequency deltas", "count", len(deltas))

	start := time.Now()
	total := Total(deltas)
	m.RecordSolveDuration(Name, strconv.Itoa(models.PartOne), time.Since(start))
	if err := emit(models.Answer{Part: models.PartOne, Label: "Frequency", Value: total}); err != nil {
		return err
	}

	start = time.Now()
	scan, err := FirstRepeat(deltas)
	if err != nil {
		return err
	}
	m.RecordSolveDuration(Name, strconv.Itoa(models.PartTwo), time.Since(start))
	m.RecordScan(scan.Steps, scan.Passes, scan.Seen)

	log.Infow("Calibration complete",
		"frequency", total,
		"repeated", scan.Value,
		"steps", scan.Steps,
		"passes", scan.Passes,
		"seen", scan.Seen,
	)

	return emit(models.Answer{Part: models.PartTwo, Label: "Unique Frequency", Value: scan.Value})
}
