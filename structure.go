/*
 * structure.go, part of sandwich.
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
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Atom holds the per-atom information that is not a coordinate. The
// coordinates live in the Structure's Nx3 matrix, in the same order as
// the atoms.
type Atom struct {
	Symbol string
	Mass   float64
}

// NewAtom returns an Atom for the given element symbol, with the mass
// filled in from the element table when the symbol is known.
func NewAtom(symbol string) *Atom {
	return &Atom{Symbol: symbol, Mass: symbolMass[symbol]}
}

// DummySymbol is the symbol used for the marker atoms placed at ring
// centroids. It is not an element.
const DummySymbol = "X"

// Structure is an ordered set of atoms with their cartesian coordinates,
// in Angstroms, kept as an Nx3 matrix. It grows append-only: atoms are
// never removed or reordered, so an index handed out stays valid for the
// lifetime of the structure.
//
// All exported methods take one-based indices, the convention of XYZ
// files and of the programs this library exchanges data with.
type Structure struct {
	atoms  []*Atom
	coords *mat.Dense
}

// NewStructure builds a Structure from a slice of atoms and an Nx3
// coordinate matrix. The matrix is used directly, not copied.
func NewStructure(atoms []*Atom, coords *mat.Dense) (*Structure, error) {
	if coords == nil || atoms == nil {
		return nil, newError(MalformedStructure, "nil atoms or coordinates")
	}
	r, c := coords.Dims()
	if c != 3 || r != len(atoms) {
		return nil, newError(MalformedStructure, "inconsistent atoms (%d) / coordinates (%dx%d)", len(atoms), r, c)
	}
	return &Structure{atoms: atoms, coords: coords}, nil
}

// newStructureFromSlices builds a Structure from parallel atom and
// flat xyz-coordinate slices, as produced by the file readers.
func newStructureFromSlices(atoms []*Atom, coords []float64) (*Structure, error) {
	if len(coords) != 3*len(atoms) {
		return nil, newError(MalformedStructure, "inconsistent atoms (%d) / coordinates (%d)", len(atoms), len(coords))
	}
	return NewStructure(atoms, mat.NewDense(len(atoms), 3, coords))
}

// Len returns the number of atoms in the structure.
func (S *Structure) Len() int {
	return len(S.atoms)
}

// Atom returns the atom at the one-based index i.
func (S *Structure) Atom(i int) (*Atom, error) {
	if err := S.checkIndex("Atom", i); err != nil {
		return nil, err
	}
	return S.atoms[i-1], nil
}

// Coord returns the position of the atom at the one-based index i.
// The returned vector is a value, so the caller cannot alias the store.
func (S *Structure) Coord(i int) (r3.Vec, error) {
	if err := S.checkIndex("Coord", i); err != nil {
		return r3.Vec{}, err
	}
	return S.coord(i), nil
}

// coord is Coord without the bounds check, for indices already validated.
func (S *Structure) coord(i int) r3.Vec {
	return r3.Vec{X: S.coords.At(i-1, 0), Y: S.coords.At(i-1, 1), Z: S.coords.At(i-1, 2)}
}

// AddAtom appends at with position pos and returns the new atom's
// one-based index.
func (S *Structure) AddAtom(at *Atom, pos r3.Vec) int {
	S.atoms = append(S.atoms, at)
	if S.coords == nil {
		S.coords = mat.NewDense(1, 3, []float64{pos.X, pos.Y, pos.Z})
		return 1
	}
	S.coords = S.coords.Grow(1, 0).(*mat.Dense)
	n := len(S.atoms)
	S.coords.Set(n-1, 0, pos.X)
	S.coords.Set(n-1, 1, pos.Y)
	S.coords.Set(n-1, 2, pos.Z)
	return n
}

// Coords returns a copy of the Nx3 coordinate matrix. Changes to the
// copy do not affect the structure.
func (S *Structure) Coords() *mat.Dense {
	return mat.DenseCopyOf(S.coords)
}

// Label returns the symbol+index label ("Fe11") used in reports for the
// atom at the one-based index i.
func (S *Structure) Label(i int) string {
	if err := S.checkIndex("Label", i); err != nil {
		return fmt.Sprintf("?%d", i)
	}
	return fmt.Sprintf("%s%d", S.atoms[i-1].Symbol, i)
}

// checkIndex verifies that every index is within [1, Len()].
func (S *Structure) checkIndex(caller string, indices ...int) error {
	for _, i := range indices {
		if i < 1 || i > S.Len() {
			return newError(IndexOutOfRange, "%s: atom %d not in [1, %d]", caller, i, S.Len())
		}
	}
	return nil
}
