/*
 * general_test.go, part of sandwich.
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

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

// ringVecs places n atoms on a circle of the given radius parallel to
// the xy plane at height z.
func ringVecs(n int, radius, z float64) []r3.Vec {
	vecs := make([]r3.Vec, n)
	for k := 0; k < n; k++ {
		phi := 2 * math.Pi * float64(k) / float64(n)
		vecs[k] = r3.Vec{X: radius * math.Cos(phi), Y: radius * math.Sin(phi), Z: z}
	}
	return vecs
}

func buildStructure(t *testing.T, symbols []string, coords []r3.Vec) *Structure {
	t.Helper()
	require.Equal(t, len(symbols), len(coords))
	S := new(Structure)
	for i, sym := range symbols {
		S.AddAtom(NewAtom(sym), coords[i])
	}
	return S
}

// testPentagonPrism is a ferrocene-like metallocene: two eclipsed
// 5-membered carbon rings at z = +/-1.66 and an iron atom at the
// origin. Atoms 1-5 ring1, 6-10 ring2, 11 Fe.
func testPentagonPrism(t *testing.T) *Structure {
	t.Helper()
	var symbols []string
	var coords []r3.Vec
	for _, z := range []float64{1.66, -1.66} {
		for _, v := range ringVecs(5, 1.2, z) {
			symbols = append(symbols, "C")
			coords = append(coords, v)
		}
	}
	symbols = append(symbols, "Fe")
	coords = append(coords, r3.Vec{})
	return buildStructure(t, symbols, coords)
}

// testInverseSandwich is a three-ring stack along z: a 5-ring at z=4
// (atoms 1-5), a 6-ring at z=0 (atoms 6-11), a 5-ring at z=-4 (atoms
// 12-16) and two uranium atoms at z=+2 (atom 17) and z=-2 (atom 18).
func testInverseSandwich(t *testing.T) *Structure {
	t.Helper()
	var symbols []string
	var coords []r3.Vec
	add := func(sym string, vs ...r3.Vec) {
		for _, v := range vs {
			symbols = append(symbols, sym)
			coords = append(coords, v)
		}
	}
	add("C", ringVecs(5, 1.2, 4)...)
	add("C", ringVecs(6, 1.4, 0)...)
	add("C", ringVecs(5, 1.2, -4)...)
	add("U", r3.Vec{Z: 2})
	add("U", r3.Vec{Z: -2})
	return buildStructure(t, symbols, coords)
}
