package app

import (
	"aoc_solvers/frequency"
	"aoc_solvers/middleware"
	"aoc_solvers/parser"

	"github.com/pkg/errors"
)

var ErrMissingArgument = errors.New("missing input file argument")

// Kind labels a run error for logs and metrics.
type Kind string

const (
	KindMissingArgument Kind = "missing_argument"
	KindFileOpen        Kind = "file_open"
	KindParse           Kind = "parse"
	KindNoDeltas        Kind = "no_deltas"
	KindPanic           Kind = "panic"
	KindOther           Kind = "other"
)

func Classify(err error) Kind {
	var panicErr *middleware.PanicError
	switch {
	case errors.Is(err, ErrMissingArgument):
		return KindMissingArgument
	case errors.Is(err, parser.ErrFileOpen):
		return KindFileOpen
	case errors.Is(err, parser.ErrParse):
		return KindParse
	case errors.Is(err, frequency.ErrNoDeltas):
		return KindNoDeltas
	case errors.As(err, &panicErr):
		return KindPanic
	default:
		return KindOther
	}
}
