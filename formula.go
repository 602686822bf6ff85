/*
 * formula.go, part of ionscreen.
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
	"regexp"
	"strconv"
	"strings"
)

// GCD returns the greatest common divisor of any number of positive ints.
// It panics on an empty argument list, as there is no sensible answer.
func GCD(args ...int) int {
	if len(args) == 0 {
		panic("GCD of nothing")
	}
	g := args[0]
	for _, b := range args[1:] {
		for b != 0 {
			g, b = b, g%b
		}
	}
	return g
}

// ReducedFormula builds the canonical formula string for a composition given
// parallel slices of element symbols and positive integer amounts. The
// amounts are divided by their GCD and element order is preserved: the caller
// decides what order is chemically meaningful.
func ReducedFormula(symbols []string, ratios []int) (string, error) {
	if len(symbols) != len(ratios) || len(symbols) == 0 {
		return "", CError{ErrMismatchedLen, []string{"ReducedFormula"}}
	}
	for _, r := range ratios {
		if r < 1 {
			return "", CError{fmt.Sprintf("non-positive ratio %d", r), []string{"ReducedFormula"}}
		}
	}
	g := GCD(ratios...)
	var b strings.Builder
	for i, s := range symbols {
		b.WriteString(s)
		if n := ratios[i] / g; n != 1 {
			b.WriteString(strconv.Itoa(n))
		}
	}
	return b.String(), nil
}

var (
	parensRe  = regexp.MustCompile(`\(([^\(\)]+)\)\s*([\.e\d]*)`)
	symAmtRe  = regexp.MustCompile(`([A-Z][a-z]*)\s*([-*\.e\d]*)`)
	formulaOK = regexp.MustCompile(`^[A-Za-z\(\)\.\d\s]+$`)
)

// ParseFormula parses a chemical formula into a map of element symbol to
// amount. Parenthesised groups with multipliers are expanded, so
// "Ba(OH)2" yields Ba:1 O:2 H:2. It does not consult a Table: unknown but
// well-formed symbols parse fine, and validation is the caller's business.
func ParseFormula(formula string) (map[string]float64, error) {
	if strings.TrimSpace(formula) == "" || !formulaOK.MatchString(formula) {
		return nil, CError{fmt.Sprintf("%s: %q", ErrBadFormula, formula), []string{"ParseFormula"}}
	}
	if m := parensRe.FindStringSubmatch(formula); m != nil {
		factor := 1.0
		if m[2] != "" {
			f, err := strconv.ParseFloat(m[2], 64)
			if err != nil {
				return nil, CError{fmt.Sprintf("%s: %q", ErrBadFormula, formula), []string{"ParseFormula"}}
			}
			factor = f
		}
		inner, err := symDict(m[1], factor)
		if err != nil {
			return nil, errDecorate(err, "ParseFormula")
		}
		var expanded strings.Builder
		for el, amt := range inner {
			expanded.WriteString(fmt.Sprintf("%s%g", el, amt))
		}
		return ParseFormula(strings.Replace(formula, m[0], expanded.String(), 1))
	}
	return symDict(formula, 1)
}

func symDict(formula string, factor float64) (map[string]float64, error) {
	out := make(map[string]float64)
	rest := formula
	for _, m := range symAmtRe.FindAllStringSubmatch(formula, -1) {
		amt := 1.0
		if strings.TrimSpace(m[2]) != "" {
			f, err := strconv.ParseFloat(m[2], 64)
			if err != nil {
				return nil, CError{fmt.Sprintf("%s: %q", ErrBadFormula, formula), []string{"symDict"}}
			}
			amt = f
		}
		out[m[1]] += amt * factor
		rest = strings.Replace(rest, m[0], "", 1)
	}
	if strings.TrimSpace(rest) != "" {
		return nil, CError{fmt.Sprintf("%s: %q", ErrBadFormula, formula), []string{"symDict"}}
	}
	return out, nil
}
