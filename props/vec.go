package props

import (
	"fmt"
	"sort"

	ion "github.com/goionics/ionscreen"
)

// ValenceElectronCount returns the valence electron count (VEC) of a formula:
// the number of valence electrons per atom, averaged over the formula unit.
// For Ba5In4Bi5 this is (5*2 + 4*3 + 5*5)/14.
func ValenceElectronCount(t *ion.Table, formula string) (float64, error) {
	amounts, err := ion.ParseFormula(formula)
	if err != nil {
		return 0, errDecorate(err, "ValenceElectronCount")
	}
	var electrons, atoms float64
	for _, sym := range sortedSymbols(amounts) {
		e, err := t.Element(sym)
		if err != nil {
			return 0, errDecorate(err, "ValenceElectronCount")
		}
		if e.NValence == 0 {
			return 0, ion.NewCError(fmt.Sprintf("no valence electron data for %s", sym), "ValenceElectronCount")
		}
		electrons += float64(e.NValence) * amounts[sym]
		atoms += amounts[sym]
	}
	if atoms == 0 {
		return 0, ion.NewCError(ion.ErrBadFormula, "ValenceElectronCount")
	}
	return electrons / atoms, nil
}

// sortedSymbols returns the map keys in a fixed order, so every walk over a
// parsed formula is deterministic.
func sortedSymbols(m map[string]float64) []string {
	syms := make([]string, 0, len(m))
	for s := range m {
		syms = append(syms, s)
	}
	sort.Strings(syms)
	return syms
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
