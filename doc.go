/*
 * doc.go, part of sandwich.
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

/*
Package sandwich annotates sandwich-type coordination compounds, i.e.
metallocenes (two rings, one metal) and inverse sandwiches (three rings,
two metals), with derived geometric descriptors.

Given an XYZ structure plus the one-based indices of two or three
5- or 6-membered rings and of one or two metal centers, the package
computes the ring centroids, inserts a dummy atom (symbol "X") at each
centroid, and derives the metal-centroid distances, the angles relating
centroids and metals and, for the three-ring case, the bond lengths and
dihedral angles around the middle ring together with the metal-metal
distance. The annotated structure can be written back as XYZ.

The package does not detect bonds or rings: ring membership, the cyclic
order of the middle ring and the identity of the metals are supplied by
the caller and taken at face value. For the three-ring case the metal1
and metal2 labels are relabeled once if both metals are strictly closer
to the opposite terminal ring centroid; ambiguous geometries are left as
given.

Atom indices in the public API are one-based throughout, as is customary
in the file formats and visualization programs this tool is used with.
*/
package sandwich
