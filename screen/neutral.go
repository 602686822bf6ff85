package screen

import (
	ion "github.com/goionics/ionscreen"
)

// Options controls the composition filter. The zero value is usable: it means
// threshold DefaultThreshold, lowest-common-form ratios only, and the
// electronegativity test enabled with its default policy.
type Options struct {
	//Threshold is the maximum value for any single stoichiometry component.
	//0 means DefaultThreshold.
	Threshold int
	//Stoichs optionally restricts each slot to an explicit list of candidate
	//ratios (e.g. a known structure family). When set, it overrides
	//Threshold and must have one list per slot.
	Stoichs [][]int
	//KeepScaled keeps ratio tuples that are scalar multiples of a smaller
	//solution. By default only the lowest common form of each solution
	//family is returned.
	KeepScaled bool
	//NoPauling disables the electronegativity-ordering test.
	NoPauling bool
	//Pauling configures the electronegativity-ordering test.
	Pauling PaulingOptions
	//CacheSize, when positive, enables an LRU memoisation of solver results
	//keyed by the oxidation-state tuple. Many assignments in a Cartesian
	//product share state tuples, so this only trades memory for time; it
	//never changes the output.
	CacheSize int
}

// DefaultThreshold is the stoichiometry bound used when Options.Threshold is 0.
const DefaultThreshold = 8

func (o *Options) threshold() int {
	if o == nil || o.Threshold == 0 {
		return DefaultThreshold
	}
	return o.Threshold
}

// NeutralRatios returns every stoichiometry tuple r, with each component in
// [1, threshold], for which the dot product with the given oxidation states
// is zero. Unless KeepScaled is set, tuples whose components share a common
// divisor are dropped, so each solution family is represented by its lowest
// common form. Tuples come out in lexicographic order.
//
// A zero oxidation state anywhere makes the assignment invalid and yields an
// empty result, as does an input whose states all share one sign. An empty
// result is not an error: it just means no charge-neutral combination exists
// within the bound.
func NeutralRatios(states []int, opts *Options) [][]int {
	if len(states) == 0 {
		return nil
	}
	pos, neg := 0, 0
	for _, s := range states {
		if s == 0 {
			return nil
		}
		if s > 0 {
			pos++
		} else {
			neg++
		}
	}
	if pos == 0 || neg == 0 {
		return nil
	}
	ranges, ok := ratioRanges(len(states), opts)
	if !ok {
		return nil
	}
	var out [][]int
	idx := make([]int, len(states))
	ratio := make([]int, len(states))
	for {
		for i, ix := range idx {
			ratio[i] = ranges[i][ix]
		}
		if isNeutral(states, ratio) && (keepScaled(opts) || ion.GCD(ratio...) == 1) {
			r := make([]int, len(ratio))
			copy(r, ratio)
			out = append(out, r)
		}
		//odometer: last slot varies fastest, matching a nested loop
		i := len(idx) - 1
		for ; i >= 0; i-- {
			idx[i]++
			if idx[i] < len(ranges[i]) {
				break
			}
			idx[i] = 0
		}
		if i < 0 {
			return out
		}
	}
}

func keepScaled(opts *Options) bool {
	return opts != nil && opts.KeepScaled
}

// ratioRanges resolves the candidate ratio list for each slot. Explicit
// Stoichs win over the threshold; non-positive entries in them are ignored.
func ratioRanges(n int, opts *Options) ([][]int, bool) {
	if opts != nil && opts.Stoichs != nil {
		if len(opts.Stoichs) != n {
			return nil, false
		}
		ranges := make([][]int, n)
		for i, list := range opts.Stoichs {
			for _, v := range list {
				if v > 0 {
					ranges[i] = append(ranges[i], v)
				}
			}
			if len(ranges[i]) == 0 {
				return nil, false
			}
		}
		return ranges, true
	}
	t := opts.threshold()
	full := make([]int, t)
	for i := range full {
		full[i] = i + 1
	}
	ranges := make([][]int, n)
	for i := range ranges {
		ranges[i] = full
	}
	return ranges, true
}

// isNeutral checks that the weighted sum of states and ratios is zero.
func isNeutral(states, ratios []int) bool {
	sum := 0
	for i, s := range states {
		sum += s * ratios[i]
	}
	return sum == 0
}
