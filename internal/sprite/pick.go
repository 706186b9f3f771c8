package sprite

// Source is the random source used for selection; *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// TotalWeight sums the effective weights of defs.
func TotalWeight(defs []Definition) float64 {
	total := 0.0
	for _, d := range defs {
		total += d.Mass()
	}
	return total
}

// Pick draws one definition with probability proportional to its weight.
// It panics on an empty catalog.
func Pick(defs []Definition, rnd Source) Definition {
	r := rnd.Float64() * TotalWeight(defs)
	for _, d := range defs {
		r -= d.Mass()
		if r <= 0 {
			return d
		}
	}
	return defs[0]
}

// Probability returns the selection probability of each definition, in
// catalog order.
func Probability(defs []Definition) []float64 {
	total := TotalWeight(defs)
	out := make([]float64, len(defs))
	if total == 0 {
		return out
	}
	for i, d := range defs {
		out[i] = d.Mass() / total
	}
	return out
}
