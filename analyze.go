/*
 * analyze.go, part of sandwich.
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
	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"
)

// Job describes one analysis run: the input structure, the rings and
// metals to correlate, and where to write the annotated structure.
// All atom indices are one-based. Ring3 and Metal2 are given together
// or not at all.
type Job struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output,omitempty"`
	Ring1  []int  `yaml:"ring1"`
	Ring2  []int  `yaml:"ring2"`
	Ring3  []int  `yaml:"ring3,omitempty"`
	Metal1 int    `yaml:"metal1"`
	Metal2 int    `yaml:"metal2,omitempty"`
}

// rings returns the two or three rings of the job, in input order.
func (J *Job) rings() [][]int {
	r := [][]int{J.Ring1, J.Ring2}
	if J.Ring3 != nil {
		r = append(r, J.Ring3)
	}
	return r
}

// ringLabels parallel the slices returned by rings.
var ringLabels = []string{"ring1", "ring2", "ring3"}

// Validate checks the ring/metal configuration of the job: each ring
// must have 5 or 6 members, and metal2 must be present exactly when
// ring3 is. It does not look at the structure, so index-range problems
// are only caught by Analyze.
func (J *Job) Validate() error {
	for n, ring := range J.rings() {
		if len(ring) != 5 && len(ring) != 6 {
			return newError(InvalidRingSize, "%s has %d atoms", ringLabels[n], len(ring))
		}
	}
	if J.Ring3 != nil && J.Metal2 == 0 {
		return newError(MissingMetal2, "")
	}
	if J.Ring3 == nil && J.Metal2 != 0 {
		return newError(ExtraMetal2, "")
	}
	return nil
}

// Bond is one middle-ring bond length, between the atoms at the
// one-based indices A and B.
type Bond struct {
	A, B int
	R    float64 // Angstroms
}

// Torsion is one middle-ring dihedral over four sequential ring atoms.
type Torsion struct {
	A, B, C, D int
	Theta      float64 // signed degrees
}

// Report collects every descriptor of one analysis run. The *Com fields
// refer to the dummy atoms at the ring centroids (com1 belongs to ring1
// and so on); Metal1 and Metal2 are the metal indices after any
// proximity relabeling. Fields documented as three-ring are zero for
// metallocene (two-ring) runs.
type Report struct {
	Rings     [][]int
	Centroids []r3.Vec
	Markers   []int // one-based indices of the inserted dummy atoms
	Metal1    int
	Metal2    int  // three-ring only
	Swapped   bool // metal labels were exchanged

	DistM1Com1 float64 // three-ring only
	DistM1Com2 float64
	DistM2Com2 float64 // three-ring only
	DistM2Com3 float64 // three-ring only
	DistMetals float64 // three-ring only

	Bonds    []Bond    // middle ring, three-ring only
	Torsions []Torsion // middle ring, three-ring only

	AngCom1M1Com2   float64
	AngCom1Com2Com3 float64 // three-ring only
	AngCom2M2Com3   float64 // three-ring only
	AngM1Com2M2     float64 // three-ring only
}

// ThreeRing reports whether this is an inverse-sandwich (three-ring)
// result.
func (R *Report) ThreeRing() bool {
	return len(R.Rings) == 3
}

// Analyzer runs sandwich analyses. The zero value is usable; a logger
// can be attached for progress diagnostics.
type Analyzer struct {
	log *zap.SugaredLogger
}

// NewAnalyzer returns an Analyzer logging through logger. A nil logger
// silences diagnostics.
func NewAnalyzer(logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{log: logger.Sugar()}
}

// Analyze validates the job against S, appends one dummy atom per ring
// at its centroid and computes the descriptor set for the two- or
// three-ring topology. S is mutated only by the marker insertions, all
// of which happen after validation passes and before any descriptor is
// computed; a validation failure leaves S untouched.
func (A *Analyzer) Analyze(S *Structure, job *Job) (*Report, error) {
	if A.log == nil {
		A.log = zap.NewNop().Sugar()
	}
	if err := job.Validate(); err != nil {
		return nil, err
	}
	rings := job.rings()
	// All indices are checked up front so no marker is inserted for a
	// job that would fail midway.
	for n, ring := range rings {
		if err := S.checkIndex(ringLabels[n], ring...); err != nil {
			return nil, err
		}
		A.log.Debugf("%s detected as a %d-membered ring", ringLabels[n], len(ring))
	}
	metals := []int{job.Metal1}
	if len(rings) == 3 {
		metals = append(metals, job.Metal2)
	}
	if err := S.checkIndex("metal", metals...); err != nil {
		return nil, err
	}

	rep := &Report{Rings: rings, Metal1: job.Metal1, Metal2: job.Metal2}
	for n, ring := range rings {
		c, err := S.Centroid(ring)
		if err != nil {
			return nil, errDecorate(err, "Analyze")
		}
		idx := S.AddAtom(NewAtom(DummySymbol), c)
		rep.Centroids = append(rep.Centroids, c)
		rep.Markers = append(rep.Markers, idx)
		A.log.Debugf("ring %d centroid (%.4f, %.4f, %.4f) added as atom %d", n+1, c.X, c.Y, c.Z, idx)
	}

	if len(rings) == 2 {
		A.twoRing(S, rep)
		return rep, nil
	}
	if err := A.threeRing(S, rep, job.Ring2); err != nil {
		return nil, err
	}
	return rep, nil
}

// twoRing fills the metallocene descriptor set: the distance from the
// metal to the second ring centroid and the com1-metal-com2 angle.
func (A *Analyzer) twoRing(S *Structure, rep *Report) {
	com1, com2 := rep.Markers[0], rep.Markers[1]
	m1 := rep.Metal1
	rep.DistM1Com2 = Distance(S.coord(m1), S.coord(com2))
	rep.AngCom1M1Com2 = Angle(S.coord(com1), S.coord(m1), S.coord(com2))
}

// threeRing resolves which metal faces which terminal ring, then fills
// the inverse-sandwich descriptor set, including the bond lengths and
// dihedrals around the middle ring (whose indices must be in cyclic
// order, a contract this package does not verify).
func (A *Analyzer) threeRing(S *Structure, rep *Report, ring2 []int) error {
	com1, com2, com3 := rep.Markers[0], rep.Markers[1], rep.Markers[2]
	m1, m2 := rep.Metal1, rep.Metal2

	// One-shot relabeling: metal1 should be the metal nearer ring1 and
	// metal2 the one nearer ring3. Only the clear-cut case where both
	// metals sit closer to the opposite ring is corrected; ties and
	// one-sided arrangements keep the caller's labels.
	dM1Com1 := Distance(S.coord(m1), S.coord(com1))
	dM1Com3 := Distance(S.coord(m1), S.coord(com3))
	dM2Com1 := Distance(S.coord(m2), S.coord(com1))
	dM2Com3 := Distance(S.coord(m2), S.coord(com3))
	if dM1Com3 < dM1Com1 && dM2Com1 < dM2Com3 {
		m1, m2 = m2, m1
		rep.Swapped = true
		A.log.Infof("swapped metal1 and metal2 based on proximity to ring1 and ring3")
	}
	rep.Metal1, rep.Metal2 = m1, m2

	rep.DistM1Com1 = Distance(S.coord(m1), S.coord(com1))
	rep.DistM1Com2 = Distance(S.coord(m1), S.coord(com2))
	rep.DistM2Com2 = Distance(S.coord(m2), S.coord(com2))
	rep.DistM2Com3 = Distance(S.coord(m2), S.coord(com3))
	rep.DistMetals = Distance(S.coord(m1), S.coord(m2))

	n := len(ring2)
	for i := 0; i < n; i++ {
		a, b := ring2[i], ring2[(i+1)%n] // cyclic, last bonds back to first
		rep.Bonds = append(rep.Bonds, Bond{A: a, B: b, R: Distance(S.coord(a), S.coord(b))})
	}
	for i := 0; i < n; i++ {
		a := ring2[i]
		b := ring2[(i+1)%n]
		c := ring2[(i+2)%n]
		d := ring2[(i+3)%n]
		theta, err := Dihedral(S.coord(a), S.coord(b), S.coord(c), S.coord(d))
		if err != nil {
			return errDecorate(err, "Analyze: middle ring")
		}
		rep.Torsions = append(rep.Torsions, Torsion{A: a, B: b, C: c, D: d, Theta: theta})
	}

	rep.AngCom1M1Com2 = Angle(S.coord(com1), S.coord(m1), S.coord(com2))
	rep.AngCom1Com2Com3 = Angle(S.coord(com1), S.coord(com2), S.coord(com3))
	rep.AngCom2M2Com3 = Angle(S.coord(com2), S.coord(m2), S.coord(com3))
	rep.AngM1Com2M2 = Angle(S.coord(m1), S.coord(com2), S.coord(m2))
	return nil
}
