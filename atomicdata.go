/*
 * atomicdata.go, part of sandwich.
 *
 * Copyright 2024 The sandwich authors
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

package sandwich

// A map for assigning mass to elements. Besides the common organic
// elements found in the rings, the metals that show up in sandwich and
// inverse-sandwich compounds are included. Symbols missing from the map
// (notably the "X" dummy atoms) get zero mass, which is harmless since
// masses play no role in any descriptor computed here.
var symbolMass = map[string]float64{
	"H":  1.008,
	"B":  10.81,
	"C":  12.01,
	"N":  14.01,
	"O":  16.00,
	"F":  18.998,
	"Si": 28.08,
	"P":  30.97,
	"S":  32.06,
	"Cl": 35.45,
	"Ti": 47.87,
	"V":  50.94,
	"Cr": 51.996,
	"Mn": 54.94,
	"Fe": 55.84,
	"Co": 58.93,
	"Ni": 58.69,
	"Cu": 63.55,
	"Zn": 65.38,
	"Ru": 101.07,
	"Rh": 102.91,
	"Pd": 106.42,
	"Os": 190.23,
	"Sm": 150.36,
	"Eu": 151.96,
	"Yb": 173.05,
	"Th": 232.04,
	"U":  238.03,
}
