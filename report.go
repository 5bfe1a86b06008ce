/*
 * report.go, part of sandwich.
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
	"bufio"
	"fmt"
	"io"
)

// WriteReport writes the human-readable result lines for the report to
// w. S must be the structure the report was computed on (it already
// contains the dummy atoms), since the atom labels are read from it.
// Distances are reported to 4 decimals in Angstroms, angles to 2
// decimals in degrees.
func WriteReport(w io.Writer, S *Structure, R *Report) error {
	bw := bufio.NewWriter(w)
	for n, ring := range R.Rings {
		fmt.Fprintf(bw, "%s detected as a %d-membered ring.\n", ringLabels[n], len(ring))
	}
	for n, c := range R.Centroids {
		fmt.Fprintf(bw, "Ring %d centroid: %.4f, %.4f, %.4f\n", n+1, c.X, c.Y, c.Z)
	}
	fmt.Fprintf(bw, "Added %d dummy atoms ('X') at ring centroids.\n", len(R.Markers))
	if R.Swapped {
		fmt.Fprintf(bw, "Note: Swapped metal1 and metal2 based on proximity to ring1 and ring3.\n")
	}
	m1 := S.Label(R.Metal1)
	if R.ThreeRing() {
		m2 := S.Label(R.Metal2)
		fmt.Fprintf(bw, "Distance from %s to Ring 1 centroid: %.4f Å\n", m1, R.DistM1Com1)
		fmt.Fprintf(bw, "Distance from %s to Ring 2 centroid: %.4f Å\n", m1, R.DistM1Com2)
		fmt.Fprintf(bw, "Distance from %s to Ring 2 centroid: %.4f Å\n", m2, R.DistM2Com2)
		fmt.Fprintf(bw, "Distance from %s to Ring 3 centroid: %.4f Å\n", m2, R.DistM2Com3)
		fmt.Fprintf(bw, "Distance from %s to %s: %.4f Å\n", m1, m2, R.DistMetals)
		fmt.Fprintf(bw, "\nBond distances in middle ring (ring2):\n")
		for _, b := range R.Bonds {
			fmt.Fprintf(bw, "Distance %s--%s: %.4f Å\n", S.Label(b.A), S.Label(b.B), b.R)
		}
		fmt.Fprintf(bw, "\nDihedral angles in middle ring (ring2):\n")
		for _, t := range R.Torsions {
			fmt.Fprintf(bw, "Dihedral %s-%s-%s-%s: %.2f degrees\n",
				S.Label(t.A), S.Label(t.B), S.Label(t.C), S.Label(t.D), t.Theta)
		}
		fmt.Fprintf(bw, "Angle CoM1-%s-CoM2: %.2f degrees\n", m1, R.AngCom1M1Com2)
		fmt.Fprintf(bw, "Angle CoM1-CoM2-CoM3: %.2f degrees\n", R.AngCom1Com2Com3)
		fmt.Fprintf(bw, "Angle CoM2-%s-CoM3: %.2f degrees\n", m2, R.AngCom2M2Com3)
		fmt.Fprintf(bw, "Angle %s-CoM2-%s: %.2f degrees\n", m1, m2, R.AngM1Com2M2)
	} else {
		fmt.Fprintf(bw, "Distance from %s to Ring 2 centroid: %.4f Å\n", m1, R.DistM1Com2)
		fmt.Fprintf(bw, "Angle CoM1-%s-CoM2: %.2f degrees\n", m1, R.AngCom1M1Com2)
	}
	return bw.Flush()
}
