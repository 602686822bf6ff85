/*
 * data.go, part of ionscreen.
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
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/klauspost/compress/gzip"
)

//The reference table ships with the library as a gzip-compressed CSV. Values
//adapted from standard reference data: CRC masses, Pauling
//electronegativities, NIST ionisation potentials and electron affinities,
//Hartree-Fock orbital term values after Harrison (1980).

//go:embed data/elements.csv.gz
var elementsGz []byte

var (
	loadOnce sync.Once
	loaded   []*Element
	loadErr  error
)

// loadElements decodes the embedded dataset. The result is cached for the
// process lifetime; callers get the shared, read-only slice.
func loadElements() ([]*Element, error) {
	loadOnce.Do(func() {
		loaded, loadErr = parseElements(elementsGz)
	})
	return loaded, loadErr
}

func parseElements(gzdata []byte) ([]*Element, error) {
	zr, err := gzip.NewReader(bytes.NewReader(gzdata))
	if err != nil {
		return nil, CError{fmt.Sprintf("%s: %s", ErrBadDataset, err.Error()), []string{"parseElements"}}
	}
	defer zr.Close()
	r := csv.NewReader(zr)
	r.FieldsPerRecord = 11
	var els []*Element
	line := 0
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, CError{fmt.Sprintf("%s: %s", ErrBadDataset, err.Error()), []string{"parseElements"}}
		}
		line++
		if line == 1 {
			continue //header
		}
		e, err := parseRow(rec)
		if err != nil {
			return nil, errDecorate(err, fmt.Sprintf("parseElements: line %d", line))
		}
		els = append(els, e)
	}
	return els, nil
}

func parseRow(rec []string) (*Element, error) {
	bad := func(field string, err error) error {
		return CError{fmt.Sprintf("%s: field %s: %s", ErrBadDataset, field, err.Error()), []string{"parseRow"}}
	}
	e := new(Element)
	var err error
	if e.Number, err = strconv.Atoi(rec[0]); err != nil {
		return nil, bad("Z", err)
	}
	e.Symbol = rec[1]
	e.Name = rec[2]
	floats := []struct {
		name string
		dst  *float64
	}{
		{"mass", &e.Mass},
		{"el_neg", &e.Eneg},
		{"ion_pot", &e.IonPot},
		{"e_affinity", &e.EAffinity},
		{"p_eig", &e.EigP},
		{"s_eig", &e.EigS},
	}
	for i, f := range floats {
		if *f.dst, err = strconv.ParseFloat(rec[3+i], 64); err != nil {
			return nil, bad(f.name, err)
		}
	}
	if e.NValence, err = strconv.Atoi(rec[9]); err != nil {
		return nil, bad("n_valence", err)
	}
	for _, s := range strings.Fields(rec[10]) {
		ox, err := strconv.Atoi(s)
		if err != nil {
			return nil, bad("oxidation_states", err)
		}
		e.OxStates = append(e.OxStates, ox)
	}
	return e, nil
}
