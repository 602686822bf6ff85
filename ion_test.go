/*
 * ion_test.go, part of ionscreen.
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
	"math"
	"testing"
)

//TestTable tests that the embedded reference dataset loads and that the
//lookups behave.
func TestTable(Te *testing.T) {
	t, err := NewTable()
	if err != nil {
		Te.Fatal(err)
	}
	if t.Len() != 55 {
		Te.Errorf("expected 55 elements, got %d", t.Len())
	}
	ti, err := t.Element("Ti")
	if err != nil {
		Te.Fatal(err)
	}
	if ti.Number != 22 || ti.Name != "Titanium" {
		Te.Errorf("wrong titanium record: %+v", ti)
	}
	if math.Abs(ti.Eneg-1.54) > 1e-12 {
		Te.Errorf("wrong Ti electronegativity %f", ti.Eneg)
	}
	wantstates := []int{2, 3, 4}
	if len(ti.OxStates) != len(wantstates) {
		Te.Fatalf("wrong Ti oxidation states %v", ti.OxStates)
	}
	for i, s := range wantstates {
		if ti.OxStates[i] != s {
			Te.Errorf("wrong Ti oxidation states %v", ti.OxStates)
		}
	}
	if _, err := t.Element("Xx"); err == nil {
		Te.Error("lookup of a bogus symbol should fail")
	}
	syms := t.Symbols()
	if len(syms) == 0 || syms[0] != "H" {
		Te.Errorf("symbols not ordered by proton number: %v", syms)
	}
}

//TestTableSecondLoad tests that a second NewTable serves the cached dataset
//and that tables don't share element storage.
func TestTableSecondLoad(Te *testing.T) {
	t1, err := NewTable()
	if err != nil {
		Te.Fatal(err)
	}
	t2, err := NewTable()
	if err != nil {
		Te.Fatal(err)
	}
	e1, _ := t1.Element("O")
	e2, _ := t2.Element("O")
	if e1 == nil || e2 == nil {
		Te.Fatal("oxygen missing from the table")
	}
	e1cp := e1.Copy()
	e1cp.OxStates[0] = 99
	if e1.OxStates[0] == 99 || e2.OxStates[0] == 99 {
		Te.Error("element copies share oxidation state storage")
	}
}

func TestOrderedSymbols(Te *testing.T) {
	t, err := NewTable()
	if err != nil {
		Te.Fatal(err)
	}
	got := t.OrderedSymbols(3, 9)
	want := []string{"Li", "Be", "B", "C", "N", "O", "F"}
	if len(got) != len(want) {
		Te.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			Te.Errorf("expected %v, got %v", want, got)
		}
	}
}

func TestSpecies(Te *testing.T) {
	t, err := NewTable()
	if err != nil {
		Te.Fatal(err)
	}
	ti, err := t.Species("Ti", 4)
	if err != nil {
		Te.Fatal(err)
	}
	if ti.String() != "Ti4+" {
		Te.Errorf("wrong species string %q", ti.String())
	}
	o, err := t.Species("O", -2)
	if err != nil {
		Te.Fatal(err)
	}
	if o.String() != "O2-" {
		Te.Errorf("wrong species string %q", o.String())
	}
	if !o.Charged() {
		Te.Error("O(-2) should be charged")
	}
	n, err := t.Species("Fe", 0)
	if err != nil {
		Te.Fatal(err)
	}
	if n.Charged() {
		Te.Error("a neutral species should not be charged")
	}
}

func TestGCD(Te *testing.T) {
	cases := []struct {
		args []int
		want int
	}{
		{[]int{4, 6}, 2},
		{[]int{3}, 3},
		{[]int{2, 4, 8}, 2},
		{[]int{5, 7}, 1},
		{[]int{6, 9, 15}, 3},
	}
	for _, c := range cases {
		if g := GCD(c.args...); g != c.want {
			Te.Errorf("GCD(%v) = %d, expected %d", c.args, g, c.want)
		}
	}
}

func TestReducedFormula(Te *testing.T) {
	f, err := ReducedFormula([]string{"Ti", "O"}, []int{2, 4})
	if err != nil {
		Te.Fatal(err)
	}
	if f != "TiO2" {
		Te.Errorf("expected TiO2, got %q", f)
	}
	f, err = ReducedFormula([]string{"Ba", "Ti", "O"}, []int{1, 1, 3})
	if err != nil {
		Te.Fatal(err)
	}
	if f != "BaTiO3" {
		Te.Errorf("expected BaTiO3, got %q", f)
	}
	if _, err := ReducedFormula([]string{"Ti"}, []int{1, 2}); err == nil {
		Te.Error("mismatched slice lengths should fail")
	}
	if _, err := ReducedFormula([]string{"Ti"}, []int{0}); err == nil {
		Te.Error("non-positive ratios should fail")
	}
}

func TestParseFormula(Te *testing.T) {
	amounts, err := ParseFormula("Ba5In4Bi5")
	if err != nil {
		Te.Fatal(err)
	}
	want := map[string]float64{"Ba": 5, "In": 4, "Bi": 5}
	for sym, amt := range want {
		if math.Abs(amounts[sym]-amt) > 1e-12 {
			Te.Errorf("expected %s:%g, got %g", sym, amt, amounts[sym])
		}
	}
	amounts, err = ParseFormula("Ba(OH)2")
	if err != nil {
		Te.Fatal(err)
	}
	want = map[string]float64{"Ba": 1, "O": 2, "H": 2}
	for sym, amt := range want {
		if math.Abs(amounts[sym]-amt) > 1e-12 {
			Te.Errorf("expected %s:%g, got %g", sym, amt, amounts[sym])
		}
	}
	amounts, err = ParseFormula("Sr0.5Ba0.5TiO3")
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(amounts["Sr"]-0.5) > 1e-12 || math.Abs(amounts["Ti"]-1) > 1e-12 {
		Te.Errorf("fractional amounts parsed wrong: %v", amounts)
	}
	if _, err := ParseFormula(""); err == nil {
		Te.Error("empty formula should fail")
	}
	if _, err := ParseFormula("Ti!O2"); err == nil {
		Te.Error("garbage formula should fail")
	}
}

func TestElementSets(Te *testing.T) {
	if !Metals["Fe"] || Metals["O"] {
		Te.Error("metal set misclassifies Fe or O")
	}
	if !DBlock["Ti"] || DBlock["Na"] {
		Te.Error("d-block set misclassifies Ti or Na")
	}
	if !Anions["O"] || Anions["Cs"] {
		Te.Error("anion set misclassifies O or Cs")
	}
}
