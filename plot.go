/*
 * plot.go, part of sandwich.
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

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// PlotMiddleRing writes the middle-ring descriptor profiles of a
// three-ring report as two PNG files, basename_bonds.png and
// basename_dihedrals.png, with the bonds/torsions along the x axis in
// ring order.
func PlotMiddleRing(S *Structure, R *Report, basename string) error {
	if !R.ThreeRing() {
		return fmt.Errorf("middle-ring profile requires a 3-ring analysis")
	}
	names := make([]string, len(R.Bonds))
	pts := make(plotter.XYs, len(R.Bonds))
	for i, b := range R.Bonds {
		names[i] = fmt.Sprintf("%s-%s", S.Label(b.A), S.Label(b.B))
		pts[i].X = float64(i)
		pts[i].Y = b.R
	}
	err := profile("Bond distances in middle ring", "r (Å)", names, pts, basename+"_bonds.png")
	if err != nil {
		return err
	}
	names = make([]string, len(R.Torsions))
	pts = make(plotter.XYs, len(R.Torsions))
	for i, t := range R.Torsions {
		names[i] = fmt.Sprintf("%s-%s-%s-%s", S.Label(t.A), S.Label(t.B), S.Label(t.C), S.Label(t.D))
		pts[i].X = float64(i)
		pts[i].Y = t.Theta
	}
	return profile("Dihedral angles in middle ring", "theta (degrees)", names, pts, basename+"_dihedrals.png")
}

func profile(title, ylabel string, names []string, pts plotter.XYs, name string) error {
	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = 3 * vg.Millimeter
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	if err := plotutil.AddLinePoints(p, pts); err != nil {
		return err
	}
	p.NominalX(names...)
	p.X.Tick.Label.Rotation = 0.5
	return p.Save(5*vg.Inch, 4*vg.Inch, name)
}
