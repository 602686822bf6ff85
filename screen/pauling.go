package screen

// PaulingOptions configures the electronegativity-ordering test. The zero
// value reproduces the classic criterion: ties pass, no tolerance, repeated
// cations and anions allowed.
type PaulingOptions struct {
	//Threshold is the allowed deviation from the Pauling criterion: the test
	//only fails when max(cation eneg) exceeds min(anion eneg) by more than
	//this value.
	Threshold float64
	//RejectTies makes the test fail when the most electronegative cation and
	//the least electronegative anion have exactly equal electronegativities.
	//Whether ties should pass is genuinely ambiguous chemistry, hence the knob.
	RejectTies bool
	//NoRepeatCations rejects assignments where the same element appears as a
	//cation on more than one slot. Requires symbols.
	NoRepeatCations bool
	//NoRepeatAnions is the anion counterpart of NoRepeatCations.
	NoRepeatAnions bool
}

// PaulingTest reports whether an oxidation-state assignment makes chemical
// sense under Pauling's ordering rule: no species with a positive oxidation
// state may be more electronegative than a species with a negative one.
// states and enegs run in parallel; symbols may be nil unless one of the
// no-repeat options is set. Slots with oxidation state 0 are ignored, and if
// either the cation or the anion group comes out empty the test passes
// trivially (such assignments never survive the neutrality solver anyway).
//
// An electronegativity of 0 means "unknown" in the reference table and makes
// the test fail: ordering against a missing value proves nothing.
func PaulingTest(states []int, enegs []float64, symbols []string, opts PaulingOptions) bool {
	var maxCat, minAn float64
	haveCat, haveAn := false, false
	seenCat := make(map[string]bool)
	seenAn := make(map[string]bool)
	for i, st := range states {
		switch {
		case st > 0:
			if enegs[i] == 0 {
				return false
			}
			if opts.NoRepeatCations {
				if seenCat[symbols[i]] {
					return false
				}
				seenCat[symbols[i]] = true
			}
			if !haveCat || enegs[i] > maxCat {
				maxCat = enegs[i]
			}
			haveCat = true
		case st < 0:
			if enegs[i] == 0 {
				return false
			}
			if opts.NoRepeatAnions {
				if seenAn[symbols[i]] {
					return false
				}
				seenAn[symbols[i]] = true
			}
			if !haveAn || enegs[i] < minAn {
				minAn = enegs[i]
			}
			haveAn = true
		}
	}
	if !haveCat || !haveAn {
		return true
	}
	if opts.RejectTies && maxCat == minAn {
		return false
	}
	return maxCat-minAn <= opts.Threshold
}
