/*
 * sets.go, part of ionscreen.
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

//Curated element classes used by the screening heuristics.

// Metals is the set of elements counted as metallic by the metallicity
// heuristics.
var Metals = map[string]bool{
	"Li": true, "Be": true, "Na": true, "Mg": true, "Al": true, "K": true,
	"Ca": true, "Sc": true, "Ti": true, "V": true, "Cr": true, "Mn": true,
	"Fe": true, "Co": true, "Ni": true, "Cu": true, "Zn": true, "Ga": true,
	"Ge": true, "Rb": true, "Sr": true, "Y": true, "Zr": true, "Nb": true,
	"Mo": true, "Tc": true, "Ru": true, "Rh": true, "Pd": true, "Ag": true,
	"Cd": true, "In": true, "Sn": true, "Sb": true, "Cs": true, "Ba": true,
	"La": true, "Ce": true, "Pr": true, "Nd": true, "Sm": true, "Eu": true,
	"Gd": true, "Tb": true, "Dy": true, "Ho": true, "Er": true, "Tm": true,
	"Yb": true, "Lu": true, "Hf": true, "Ta": true, "W": true, "Re": true,
	"Os": true, "Ir": true, "Pt": true, "Au": true, "Hg": true, "Tl": true,
	"Pb": true, "Bi": true, "Po": true, "Fr": true, "Ra": true, "Ac": true,
	"Th": true, "Pa": true, "U": true, "Np": true, "Pu": true,
}

// DBlock is the set of d-block metals.
var DBlock = map[string]bool{
	"Sc": true, "Ti": true, "V": true, "Cr": true, "Mn": true, "Fe": true,
	"Co": true, "Ni": true, "Cu": true, "Zn": true, "Y": true, "Zr": true,
	"Nb": true, "Mo": true, "Tc": true, "Ru": true, "Rh": true, "Pd": true,
	"Ag": true, "Cd": true, "La": true, "Hf": true, "Ta": true, "W": true,
	"Re": true, "Os": true, "Ir": true, "Pt": true, "Au": true, "Hg": true,
}

// Anions is the set of elements that commonly act as anions. Similar to the
// usual "electronegative elements" lists but excluding H, B, C and Si.
var Anions = map[string]bool{
	"N": true, "P": true, "As": true, "Sb": true, "O": true, "S": true,
	"Se": true, "Te": true, "F": true, "Cl": true, "Br": true, "I": true,
}
