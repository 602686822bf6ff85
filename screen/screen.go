package screen

import (
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	ion "github.com/goionics/ionscreen"
)

// Slot is one position in a chemical system: an element symbol, the ordered
// oxidation states it may adopt there, and its Pauling electronegativity.
// Slots are transient values; build them from a Table and hand them to Filter.
type Slot struct {
	Symbol string
	States []int
	Eneg   float64
}

// SlotsFor builds one slot per symbol using each element's default oxidation
// states from the table. An unknown symbol is a configuration bug and fails
// fast rather than being skipped.
func SlotsFor(t *ion.Table, symbols ...string) ([]Slot, error) {
	els, err := t.Elements(symbols...)
	if err != nil {
		return nil, errDecorate(err, "SlotsFor")
	}
	slots := make([]Slot, len(els))
	for i, e := range els {
		states := make([]int, len(e.OxStates))
		copy(states, e.OxStates)
		slots[i] = Slot{Symbol: e.Symbol, States: states, Eneg: e.Eneg}
	}
	return slots, nil
}

// FixedSlot builds a slot pinned to a single oxidation state, the usual way
// to append a trailing anion such as O(-2) to a system.
func FixedSlot(t *ion.Table, symbol string, state int) (Slot, error) {
	e, err := t.Element(symbol)
	if err != nil {
		return Slot{}, errDecorate(err, "FixedSlot")
	}
	return Slot{Symbol: symbol, States: []int{state}, Eneg: e.Eneg}, nil
}

// Candidate is one composition that passed both the charge-neutrality and the
// electronegativity filters. The three slices run in parallel and share the
// slot order of the input system.
type Candidate struct {
	Symbols []string
	States  []int
	Ratios  []int
}

// Formula returns the candidate's reduced formula string.
func (c *Candidate) Formula() (string, error) {
	f, err := ion.ReducedFormula(c.Symbols, c.Ratios)
	if err != nil {
		return "", errDecorate(err, "Formula")
	}
	return f, nil
}

// Filter runs the composition filter over a system of slots: it enumerates
// the Cartesian product of the slots' oxidation states and, for each
// assignment, keeps the charge-neutral stoichiometries (NeutralRatios) of
// assignments that pass the electronegativity test (PaulingTest). One
// Candidate is emitted per surviving (assignment, ratio) pair.
//
// Assignments are visited with the first slot varying slowest and ratios
// within an assignment in lexicographic order, so output order is
// deterministic for fixed input. The empty result is a plain empty slice.
func Filter(slots []Slot, opts *Options) []Candidate {
	if len(slots) == 0 {
		return nil
	}
	symbols := make([]string, len(slots))
	enegs := make([]float64, len(slots))
	for i, s := range slots {
		symbols[i] = s.Symbol
		enegs[i] = s.Eneg
		if len(s.States) == 0 {
			return nil
		}
	}
	solve := newSolver(opts)
	var out []Candidate
	idx := make([]int, len(slots))
	states := make([]int, len(slots))
	for {
		for i, ix := range idx {
			states[i] = slots[i].States[ix]
		}
		ratios := solve(states)
		if len(ratios) > 0 && (optsNoPauling(opts) || PaulingTest(states, enegs, symbols, optsPauling(opts))) {
			//each candidate owns its slices: the solver may serve ratio
			//tuples out of the cache, and callers are free to mutate
			for _, r := range ratios {
				c := Candidate{
					Symbols: make([]string, len(symbols)),
					States:  make([]int, len(states)),
					Ratios:  make([]int, len(r)),
				}
				copy(c.Symbols, symbols)
				copy(c.States, states)
				copy(c.Ratios, r)
				out = append(out, c)
			}
		}
		//first slot varies slowest
		i := len(idx) - 1
		for ; i >= 0; i-- {
			idx[i]++
			if idx[i] < len(slots[i].States) {
				break
			}
			idx[i] = 0
		}
		if i < 0 {
			return out
		}
	}
}

// FilterSymbols is the table-driven convenience form of Filter: slots are
// built from each element's default oxidation states.
func FilterSymbols(t *ion.Table, symbols []string, opts *Options) ([]Candidate, error) {
	slots, err := SlotsFor(t, symbols...)
	if err != nil {
		return nil, errDecorate(err, "FilterSymbols")
	}
	return Filter(slots, opts), nil
}

// newSolver returns the NeutralRatios entry point to use for one Filter run,
// optionally memoised. Different assignments frequently share oxidation-state
// tuples (and the anion slot repeats its states across every assignment), so
// a small LRU pays for itself on large systems.
func newSolver(opts *Options) func([]int) [][]int {
	if opts == nil || opts.CacheSize <= 0 {
		return func(states []int) [][]int { return NeutralRatios(states, opts) }
	}
	cache, err := lru.New[string, [][]int](opts.CacheSize)
	if err != nil { //only fails on a non-positive size, which we ruled out
		return func(states []int) [][]int { return NeutralRatios(states, opts) }
	}
	return func(states []int) [][]int {
		k := stateKey(states)
		if r, ok := cache.Get(k); ok {
			return r
		}
		r := NeutralRatios(states, opts)
		cache.Add(k, r)
		return r
	}
}

func stateKey(states []int) string {
	var b strings.Builder
	for _, s := range states {
		b.WriteString(strconv.Itoa(s))
		b.WriteByte(',')
	}
	return b.String()
}

func optsNoPauling(opts *Options) bool {
	return opts != nil && opts.NoPauling
}

func optsPauling(opts *Options) PaulingOptions {
	if opts == nil {
		return PaulingOptions{}
	}
	return opts.Pauling
}

// errDecorate asserts that the error implements ion.Error and decorates it
// with the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2, ok := err.(ion.Error)
	if !ok {
		return ion.NewCError(err.Error(), caller)
	}
	err2.Decorate(caller)
	return err2
}
