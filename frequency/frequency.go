// Package frequency calibrates a device from a list of frequency deltas.
package frequency

import "github.com/pkg/errors"

// ErrNoDeltas is returned by FirstRepeat for an empty list, which would
// otherwise spin forever without applying a single delta.
var ErrNoDeltas = errors.New("no frequency deltas to scan")

// State of the repeat scan.
type State int

const (
	Scanning State = iota
	Found
)

func (s State) String() string {
	switch s {
	case Scanning:
		return "scanning"
	case Found:
		return "found"
	default:
		return "unknown"
	}
}

// Scan is the outcome of FirstRepeat.
type Scan struct {
	State  State
	Value  int64
	Steps  int // deltas applied
	Passes int // passes started over the list
	Seen   int // distinct sums in the seen-set, including the initial 0
}

// Total sums the deltas once, in order.
func Total(deltas []int64) int64 {
	var freq int64
	for _, d := range deltas {
		freq += d
	}
	return freq
}

// FirstRepeat replays the deltas cyclically from a frequency of 0 and returns
// the first running sum seen twice. There is no iteration cap: if no sum ever
// recurs the scan does not return.
func FirstRepeat(deltas []int64) (Scan, error) {
	if len(deltas) == 0 {
		return Scan{}, ErrNoDeltas
	}

	seen := map[int64]struct{}{0: {}}
	scan := Scan{State: Scanning}
	var freq int64

	for scan.State == Scanning {
		scan.Passes++
		for _, d := range deltas {
			freq += d
			scan.Steps++

			if _, ok := seen[freq]; ok {
				scan.State = Found
				scan.Value = freq
				break
			}
			seen[freq] = struct{}{}
		}
	}

	scan.Seen = len(seen)
	return scan, nil
}
