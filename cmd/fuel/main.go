// Command fuel prints the fuel needed to launch the module masses listed in
// a file, with and without the fuel for the fuel itself.
package main

import (
	"aoc_solvers/app"
	"aoc_solvers/fuel"
)

func main() {
	app.Execute(fuel.Puzzle{})
}
