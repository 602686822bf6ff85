package props

import (
	"math"

	"gonum.org/v1/gonum/stat"

	ion "github.com/goionics/ionscreen"
)

// ElementFraction returns the fraction of atoms in the formula that belong to
// the given symbol set (0-1).
func ElementFraction(formula string, set map[string]bool) (float64, error) {
	amounts, err := ion.ParseFormula(formula)
	if err != nil {
		return 0, errDecorate(err, "ElementFraction")
	}
	var total, target float64
	for sym, amt := range amounts {
		total += amt
		if set[sym] {
			target += amt
		}
	}
	if total == 0 {
		return 0, ion.NewCError(ion.ErrBadFormula, "ElementFraction")
	}
	return target / total, nil
}

// MetalFraction returns the atomic fraction of metallic elements.
func MetalFraction(formula string) (float64, error) {
	f, err := ElementFraction(formula, ion.Metals)
	if err != nil {
		return 0, errDecorate(err, "MetalFraction")
	}
	return f, nil
}

// DBlockFraction returns the atomic fraction of d-block elements.
func DBlockFraction(formula string) (float64, error) {
	f, err := ElementFraction(formula, ion.DBlock)
	if err != nil {
		return 0, errDecorate(err, "DBlockFraction")
	}
	return f, nil
}

// DistinctMetalCount counts the distinct metallic elements in the formula.
func DistinctMetalCount(formula string) (int, error) {
	amounts, err := ion.ParseFormula(formula)
	if err != nil {
		return 0, errDecorate(err, "DistinctMetalCount")
	}
	n := 0
	for sym := range amounts {
		if ion.Metals[sym] {
			n++
		}
	}
	return n, nil
}

// PaulingMismatch scores how far a composition deviates from ideal Pauling
// electronegativity ordering: the mean absolute electronegativity difference
// over all distinct element pairs. High values indicate ionic bonding (NaCl),
// low values metal-metal bonding (FeAl). Returns NaN when any element lacks
// electronegativity data, and 0 for a single-element formula.
func PaulingMismatch(t *ion.Table, formula string) (float64, error) {
	amounts, err := ion.ParseFormula(formula)
	if err != nil {
		return 0, errDecorate(err, "PaulingMismatch")
	}
	syms := sortedSymbols(amounts)
	enegs := make([]float64, len(syms))
	for i, sym := range syms {
		e, err := t.Element(sym)
		if err != nil {
			return 0, errDecorate(err, "PaulingMismatch")
		}
		if e.Eneg == 0 {
			return math.NaN(), nil
		}
		enegs[i] = e.Eneg
	}
	var mismatches []float64
	for i := range enegs {
		for j := i + 1; j < len(enegs); j++ {
			mismatches = append(mismatches, math.Abs(enegs[i]-enegs[j]))
		}
	}
	if len(mismatches) == 0 {
		return 0, nil
	}
	return stat.Mean(mismatches, nil), nil
}

//Weights of the metallicity sub-scores.
const (
	wMetalFraction  = 0.3
	wDBlockFraction = 0.2
	wNMetals        = 0.2
	wVEC            = 0.15
	wPauling        = 0.15
	//mismatch scale above which the Pauling term bottoms out
	mismatchScale = 3.0
)

// MetallicityScore rates how metallic/alloy-like a composition is, on a 0-1
// scale, from five sub-scores: metal fraction, d-block fraction, distinct
// metal count (saturating at 3), valence-electron-count proximity to 8, and
// the inverse Pauling mismatch. Sub-scores that cannot be computed fall back
// to a neutral 0.5 instead of failing the whole estimate.
func MetallicityScore(t *ion.Table, formula string) (float64, error) {
	metalFraction, err := MetalFraction(formula)
	if err != nil {
		return 0, errDecorate(err, "MetallicityScore")
	}
	dBlockFraction, err := DBlockFraction(formula)
	if err != nil {
		return 0, errDecorate(err, "MetallicityScore")
	}
	nMetals, err := DistinctMetalCount(formula)
	if err != nil {
		return 0, errDecorate(err, "MetallicityScore")
	}
	vecFactor := 0.5
	if vec, err := ValenceElectronCount(t, formula); err == nil {
		vecFactor = 1.0 - math.Abs(vec-8.0)/8.0
	}
	paulingTerm := 0.5
	if mismatch, err := PaulingMismatch(t, formula); err == nil && !math.IsNaN(mismatch) {
		paulingTerm = 1.0 - math.Min(mismatch/mismatchScale, 1.0)
	}
	score := wMetalFraction*metalFraction +
		wDBlockFraction*dBlockFraction +
		wNMetals*math.Min(float64(nMetals)/3.0, 1.0) +
		wVEC*vecFactor +
		wPauling*paulingTerm
	return math.Max(0.0, math.Min(1.0, score)), nil
}
