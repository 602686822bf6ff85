/*Package lattice holds structure-type stoichiometry: named sites with fixed
multiplicities and allowed oxidation states, plus a search for the element
assignments that keep the whole structure charge-neutral. It is the
site-constrained counterpart of the free search in package screen: here the
ratios are fixed by the structure type and only the site occupants vary.*/
package lattice

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	ion "github.com/goionics/ionscreen"
)

// Site is one crystallographic site of a structure type.
type Site struct {
	Label  string
	Ratio  int   //multiplicity of the site in the formula unit
	States []int //oxidation states an occupant may adopt here
}

// Lattice is a structure type: ordered sites and, optionally, a 3x3 cell
// matrix (rows are cell vectors, in Angstrom).
type Lattice struct {
	sites []Site
	cell  *mat.Dense
}

// New validates and builds a Lattice. cell may be nil for a pure
// stoichiometry template; when given it must be 3x3.
func New(sites []Site, cell *mat.Dense) (*Lattice, error) {
	if len(sites) == 0 {
		return nil, ion.NewCError("lattice with no sites", "New")
	}
	for _, s := range sites {
		if s.Ratio < 1 {
			return nil, ion.NewCError(fmt.Sprintf("site %s: non-positive ratio %d", s.Label, s.Ratio), "New")
		}
		if len(s.States) == 0 {
			return nil, ion.NewCError(fmt.Sprintf("site %s: no allowed oxidation states", s.Label), "New")
		}
	}
	if cell != nil {
		if r, c := cell.Dims(); r != 3 || c != 3 {
			return nil, ion.NewCError(fmt.Sprintf("cell must be 3x3, got %dx%d", r, c), "New")
		}
		cell = mat.DenseCopyOf(cell)
	}
	cp := make([]Site, len(sites))
	copy(cp, sites)
	return &Lattice{sites: cp, cell: cell}, nil
}

// Sites returns the lattice's sites, in order.
func (l *Lattice) Sites() []Site {
	s := make([]Site, len(l.sites))
	copy(s, l.sites)
	return s
}

// Cell returns a copy of the cell matrix, or nil if the lattice has none.
func (l *Lattice) Cell() *mat.Dense {
	if l.cell == nil {
		return nil
	}
	return mat.DenseCopyOf(l.cell)
}

// Volume returns the cell volume in Angstrom^3.
func (l *Lattice) Volume() (float64, error) {
	if l.cell == nil {
		return 0, ion.NewCError("lattice has no cell", "Volume")
	}
	v := mat.Det(l.cell)
	if v < 0 {
		v = -v
	}
	return v, nil
}

// Composition is an assignment of one species per site such that the
// site-weighted charges cancel. Slices run in parallel with the sites.
type Composition struct {
	Symbols []string
	States  []int
	Ratios  []int
}

// Formula returns the composition's reduced formula string.
func (c *Composition) Formula() (string, error) {
	f, err := ion.ReducedFormula(c.Symbols, c.Ratios)
	if err != nil {
		return "", errDecorate(err, "Formula")
	}
	return f, nil
}

// occupant is one way to fill a site: an element in one of the oxidation
// states the site allows.
type occupant struct {
	symbol string
	state  int
}

// PossibleCompositions enumerates the charge-neutral ways of filling the
// lattice's sites from the candidate elements. An element may occupy a site
// in any oxidation state that appears both in its own default list and in the
// site's allowed list. Unknown candidate symbols fail fast. Output order is
// deterministic: sites in order, candidates in the given order, states in the
// element's table order.
func PossibleCompositions(t *ion.Table, l *Lattice, candidates []string) ([]Composition, error) {
	els, err := t.Elements(candidates...)
	if err != nil {
		return nil, errDecorate(err, "PossibleCompositions")
	}
	options := make([][]occupant, len(l.sites))
	for i, site := range l.sites {
		for _, e := range els {
			for _, st := range e.OxStates {
				if containsState(site.States, st) {
					options[i] = append(options[i], occupant{e.Symbol, st})
				}
			}
		}
		if len(options[i]) == 0 {
			return nil, nil //some site cannot be filled at all
		}
	}
	var out []Composition
	idx := make([]int, len(l.sites))
	for {
		charge := 0
		for i, ix := range idx {
			charge += options[i][ix].state * l.sites[i].Ratio
		}
		if charge == 0 {
			c := Composition{
				Symbols: make([]string, len(idx)),
				States:  make([]int, len(idx)),
				Ratios:  make([]int, len(idx)),
			}
			for i, ix := range idx {
				c.Symbols[i] = options[i][ix].symbol
				c.States[i] = options[i][ix].state
				c.Ratios[i] = l.sites[i].Ratio
			}
			out = append(out, c)
		}
		i := len(idx) - 1
		for ; i >= 0; i-- {
			idx[i]++
			if idx[i] < len(options[i]) {
				break
			}
			idx[i] = 0
		}
		if i < 0 {
			return out, nil
		}
	}
}

func containsState(states []int, s int) bool {
	for _, st := range states {
		if st == s {
			return true
		}
	}
	return false
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
