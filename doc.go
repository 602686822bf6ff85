/*
 * doc.go, part of ionscreen.
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

/*Package ion is the main package of the ionscreen library. It provides element and
species structures backed by an embedded reference data table, together with the
formula utilities used by the screening, property and lattice subpackages.

	**ionscreen capabilities**

    Elemental reference data (oxidation states, Pauling electronegativities,
	ionisation potentials, electron affinities, orbital eigenvalues, valence
	electron counts) for the elements commonly used in ionic-compound
	screening, exposed through an explicit, immutable lookup Table.

    Enumeration of candidate ionic compositions for a chemical system, with
	charge-neutrality and electronegativity-ordering filters (package screen).

    Composition heuristics: compound electronegativity, Mulliken
	electronegativity, Harrison band-gap estimate, valence electron count and
	a metallicity score (package props).

    Site-constrained composition search over simple structure types
	(package lattice).

    Data-parallel dispatch of many independent screening runs with per-unit
	error capture (package batch).

The core filters are purely functional: given the same Table and the same inputs
they produce the same candidate list, in the same order. All reference data is
decoded once from the embedded table and never mutated afterwards.*/
package ion
