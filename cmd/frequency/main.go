// Command frequency prints the resulting frequency of a list of changes and
// the first frequency reached twice when the list repeats.
package main

import (
	"aoc_solvers/app"
	"aoc_solvers/frequency"
)

func main() {
	app.Execute(frequency.Puzzle{})
}
