/*
 * element.go, part of ionscreen.
 *
 * Copyright 2026 The ionscreen developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package ion

import (
	"fmt"
	"sort"
)

// Element contains the standard chemical data for one element, as read from
// the embedded reference table. Elements are created once per table and are
// to be treated as read-only afterwards.
type Element struct {
	Symbol    string
	Name      string
	Number    int     //proton number
	Mass      float64 //molar mass, g/mol
	Eneg      float64 //Pauling electronegativity, 0.0 if unknown
	IonPot    float64 //first ionisation potential in eV, 0.0 if unknown
	EAffinity float64 //electron affinity in eV, 0.0 if unknown
	EigP      float64 //p-orbital eigenvalue in eV, 0.0 if unknown
	EigS      float64 //s-orbital eigenvalue in eV, 0.0 if unknown
	NValence  int     //number of valence electrons
	OxStates  []int   //default allowed oxidation states, ascending
}

// Copy returns a deep copy of the Element.
func (e *Element) Copy() *Element {
	if e == nil {
		panic("attempted to copy a nil element")
	}
	newel := new(Element)
	*newel = *e
	newel.OxStates = make([]int, len(e.OxStates))
	copy(newel.OxStates, e.OxStates)
	return newel
}

// Species is an Element in a given chemical environment, i.e. with an
// assigned signed oxidation state.
type Species struct {
	*Element
	Oxidation int
}

// Charged reports whether the species carries a formal charge.
func (s *Species) Charged() bool {
	return s.Oxidation != 0
}

// Table is an immutable symbol -> Element lookup, built once and shared.
// It replaces the on-demand lookups of the reference data files: accessing an
// Element in a map is much cheaper than re-reading the dataset within nested
// enumeration loops, and an explicit table keeps the filters pure and
// testable in isolation.
type Table struct {
	elements map[string]*Element
	symbols  []string //ordered by proton number
}

// NewTable returns the lookup table for the full embedded reference dataset.
// The dataset is decoded only on the first call.
func NewTable() (*Table, error) {
	els, err := loadElements()
	if err != nil {
		return nil, errDecorate(err, "NewTable")
	}
	return NewTableFrom(els), nil
}

// NewTableFrom builds a lookup table from the given elements. The elements
// are copied, so later changes to the arguments don't affect the table.
func NewTableFrom(els []*Element) *Table {
	t := &Table{elements: make(map[string]*Element, len(els))}
	for _, e := range els {
		if _, dup := t.elements[e.Symbol]; dup {
			continue //first occurrence wins, as in the data files
		}
		t.elements[e.Symbol] = e.Copy()
		t.symbols = append(t.symbols, e.Symbol)
	}
	sort.Slice(t.symbols, func(i, j int) bool {
		return t.elements[t.symbols[i]].Number < t.elements[t.symbols[j]].Number
	})
	return t
}

// Len returns the number of elements in the table.
func (t *Table) Len() int {
	return len(t.elements)
}

// Symbols returns the element symbols in the table, ordered by proton number.
func (t *Table) Symbols() []string {
	s := make([]string, len(t.symbols))
	copy(s, t.symbols)
	return s
}

// Element returns the element for the given symbol. A lookup failure means a
// configuration bug in the caller, so it is returned as an error rather than
// being silently skipped.
func (t *Table) Element(symbol string) (*Element, error) {
	if t == nil {
		return nil, CError{ErrNilTable, []string{"Element"}}
	}
	e, ok := t.elements[symbol]
	if !ok {
		return nil, unknownElement(symbol, "Element")
	}
	return e, nil
}

// Elements resolves several symbols at once, in order. It fails on the first
// unknown symbol.
func (t *Table) Elements(symbols ...string) ([]*Element, error) {
	els := make([]*Element, 0, len(symbols))
	for _, s := range symbols {
		e, err := t.Element(s)
		if err != nil {
			return nil, errDecorate(err, "Elements")
		}
		els = append(els, e)
	}
	return els, nil
}

// Species returns a Species for the given symbol and oxidation state. The
// state doesn't need to be in the element's default list; screening over
// custom states is legitimate.
func (t *Table) Species(symbol string, oxidation int) (*Species, error) {
	e, err := t.Element(symbol)
	if err != nil {
		return nil, errDecorate(err, "Species")
	}
	return &Species{Element: e, Oxidation: oxidation}, nil
}

// OrderedSymbols returns the symbols of the table's elements with proton
// numbers in the inclusive range [x, y], ordered by proton number.
func (t *Table) OrderedSymbols(x, y int) []string {
	var out []string
	for _, s := range t.symbols {
		n := t.elements[s].Number
		if n >= x && n <= y {
			out = append(out, s)
		}
	}
	return out
}

func (s *Species) String() string {
	sign := "+"
	mag := s.Oxidation
	if s.Oxidation < 0 {
		sign = "-"
		mag = -s.Oxidation
	}
	return fmt.Sprintf("%s%d%s", s.Symbol, mag, sign)
}
