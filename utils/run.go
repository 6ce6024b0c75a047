package utils

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RunLogger returns a logger tagged with a fresh run id, the solver name and
// the input path, together with the id itself.
func RunLogger(solver, input string) (*zap.SugaredLogger, string) {
	runID := uuid.New().String()
	return Logger.With(
		"run_id", runID,
		"solver", solver,
		"input", input,
	), runID
}
