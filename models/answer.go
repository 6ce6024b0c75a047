package models

import (
	"fmt"
	"io"
)

const (
	PartOne = 1
	PartTwo = 2
)

type Answer struct {
	Part  int
	Label string
	Value int64
}

func (a Answer) String() string {
	return fmt.Sprintf("%s: %d", a.Label, a.Value)
}

// Emit receives each answer as soon as its part is solved.
type Emit func(Answer) error

// LineWriter returns an Emit that prints one labelled line per answer to w.
func LineWriter(w io.Writer) Emit {
	return func(a Answer) error {
		_, err := fmt.Fprintln(w, a.String())
		return err
	}
}
