// Package fuel computes launch fuel for module masses.
package fuel

// Simple is floor(mass/3) - 2. Small masses give negative fuel and are not
// clamped.
func Simple(mass uint64) int64 {
	return int64(mass/3) - 2
}

// Refined adds the fuel needed to carry the fuel itself. Recursion continues
// until the argument goes negative; only the accumulation skips non-positive
// fuel.
func Refined(mass int64) int64 {
	if mass < 0 {
		return 0
	}

	fuel := mass/3 - 2
	var total int64
	if fuel > 0 {
		total += fuel
	}
	return total + Refined(fuel)
}

func SimpleTotal(masses []uint64) int64 {
	var total int64
	for _, m := range masses {
		total += Simple(m)
	}
	return total
}

func RefinedTotal(masses []uint64) int64 {
	var total int64
	for _, m := range masses {
		total += Refined(int64(m))
	}
	return total
}
