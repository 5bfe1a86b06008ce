/*
 * geometric.go, part of sandwich.
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

	"gonum.org/v1/gonum/spatial/r3"
)

// appzero is used to correct floating point errors. Everything with an
// absolute value equal or smaller is considered zero.
const appzero = 1e-12

const rad2deg = 180 / math.Pi

// Distance returns the Euclidean distance between the points a and b.
func Distance(a, b r3.Vec) float64 {
	return r3.Norm(r3.Sub(a, b))
}

// Angle returns the angle at vertex b between the vectors b->a and b->c,
// in degrees, in [0, 180]. The cosine is clamped to [-1, 1] so that
// near-collinear configurations do not fall outside the Acos domain.
func Angle(a, b, c r3.Vec) float64 {
	v1 := r3.Sub(a, b)
	v2 := r3.Sub(c, b)
	argument := r3.Dot(v1, v2) / (r3.Norm(v1) * r3.Norm(v2))
	return math.Acos(clamp(argument)) * rad2deg
}

// Dihedral returns the signed dihedral defined by the four sequential
// points a, b, c, d, in degrees, in (-180, 180]. The first plane is
// defined by abc and the second by bcd; the sign follows the usual
// convention of being negative when b->c and the cross product of the
// plane normals point in opposite directions. If three consecutive
// points are collinear one of the normals vanishes and a
// DegenerateGeometry error is returned.
func Dihedral(a, b, c, d r3.Vec) (float64, error) {
	b0 := r3.Sub(b, a)
	b1 := r3.Sub(c, b)
	b2 := r3.Sub(d, c)
	n1 := r3.Cross(b0, b1)
	n2 := r3.Cross(b1, b2)
	norm1 := r3.Norm(n1)
	norm2 := r3.Norm(n2)
	if norm1 <= appzero || norm2 <= appzero {
		return 0, newError(DegenerateGeometry, "three consecutive points are collinear")
	}
	n1 = r3.Scale(1/norm1, n1)
	n2 = r3.Scale(1/norm2, n2)
	angle := math.Acos(clamp(r3.Dot(n1, n2))) * rad2deg
	if r3.Dot(b1, r3.Cross(n1, n2)) < 0 {
		angle = -angle
	}
	return angle, nil
}

// clamp restricts a cosine argument to [-1, 1].
func clamp(argument float64) float64 {
	if argument > 1 {
		return 1
	}
	if argument < -1 {
		return -1
	}
	return argument
}

// Centroid returns the mean position of the atoms at the given one-based
// indices. The result depends only on ring membership, not on the order
// of the indices.
func (S *Structure) Centroid(ring []int) (r3.Vec, error) {
	if len(ring) == 0 {
		return r3.Vec{}, newError(IndexOutOfRange, "Centroid: empty index list")
	}
	if err := S.checkIndex("Centroid", ring...); err != nil {
		return r3.Vec{}, err
	}
	var c r3.Vec
	for _, i := range ring {
		c = r3.Add(c, S.coord(i))
	}
	return r3.Scale(1/float64(len(ring)), c), nil
}

// Distance returns the distance between the atoms at the one-based
// indices i and j.
func (S *Structure) Distance(i, j int) (float64, error) {
	if err := S.checkIndex("Distance", i, j); err != nil {
		return 0, err
	}
	return Distance(S.coord(i), S.coord(j)), nil
}

// Angle returns the angle i-j-k, with vertex at j, in degrees.
func (S *Structure) Angle(i, j, k int) (float64, error) {
	if err := S.checkIndex("Angle", i, j, k); err != nil {
		return 0, err
	}
	return Angle(S.coord(i), S.coord(j), S.coord(k)), nil
}

// Dihedral returns the signed dihedral i-j-k-l in degrees.
func (S *Structure) Dihedral(i, j, k, l int) (float64, error) {
	if err := S.checkIndex("Dihedral", i, j, k, l); err != nil {
		return 0, err
	}
	d, err := Dihedral(S.coord(i), S.coord(j), S.coord(k), S.coord(l))
	if err != nil {
		return 0, errDecorate(err, "Structure.Dihedral")
	}
	return d, nil
}
