/*
 * analyze_test.go, part of sandwich.
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoRingJob() *Job {
	return &Job{
		Ring1:  []int{1, 2, 3, 4, 5},
		Ring2:  []int{6, 7, 8, 9, 10},
		Metal1: 11,
	}
}

func threeRingJob() *Job {
	return &Job{
		Ring1:  []int{1, 2, 3, 4, 5},
		Ring2:  []int{6, 7, 8, 9, 10, 11},
		Ring3:  []int{12, 13, 14, 15, 16},
		Metal1: 17,
		Metal2: 18,
	}
}

func TestJobValidate(t *testing.T) {
	require.NoError(t, twoRingJob().Validate())
	require.NoError(t, threeRingJob().Validate())

	bad := twoRingJob()
	bad.Ring1 = []int{1, 2, 3, 4}
	assert.Equal(t, InvalidRingSize, KindOf(bad.Validate()))
	bad = twoRingJob()
	bad.Ring2 = []int{1, 2, 3, 4, 5, 6, 7}
	assert.Equal(t, InvalidRingSize, KindOf(bad.Validate()))

	bad = threeRingJob()
	bad.Metal2 = 0
	assert.Equal(t, MissingMetal2, KindOf(bad.Validate()))
	bad = twoRingJob()
	bad.Metal2 = 12
	assert.Equal(t, ExtraMetal2, KindOf(bad.Validate()))
}

func TestAnalyzeTwoRing(t *testing.T) {
	S := testPentagonPrism(t)
	rep, err := NewAnalyzer(nil).Analyze(S, twoRingJob())
	require.NoError(t, err)

	// exactly one marker per ring, appended after the original atoms
	assert.Equal(t, 13, S.Len())
	assert.Equal(t, []int{12, 13}, rep.Markers)
	for _, m := range rep.Markers {
		at, err := S.Atom(m)
		require.NoError(t, err)
		assert.Equal(t, DummySymbol, at.Symbol)
	}
	assert.False(t, rep.ThreeRing())
	assert.False(t, rep.Swapped)

	// both ring centroids sit on the z axis
	assert.InDelta(t, 1.66, rep.Centroids[0].Z, 1e-10)
	assert.InDelta(t, -1.66, rep.Centroids[1].Z, 1e-10)
	assert.InDelta(t, 0, rep.Centroids[0].X, 1e-10)

	// one distance, one angle
	assert.InDelta(t, 1.66, rep.DistM1Com2, 1e-10)
	assert.InDelta(t, 180, rep.AngCom1M1Com2, 1e-6)
	assert.Empty(t, rep.Bonds)
	assert.Empty(t, rep.Torsions)
}

func TestAnalyzeThreeRing(t *testing.T) {
	S := testInverseSandwich(t)
	rep, err := NewAnalyzer(nil).Analyze(S, threeRingJob())
	require.NoError(t, err)

	assert.Equal(t, 21, S.Len())
	assert.Equal(t, []int{19, 20, 21}, rep.Markers)
	assert.False(t, rep.Swapped, "metals already face their rings")
	assert.Equal(t, 17, rep.Metal1)
	assert.Equal(t, 18, rep.Metal2)

	assert.InDelta(t, 2, rep.DistM1Com1, 1e-10)
	assert.InDelta(t, 2, rep.DistM1Com2, 1e-10)
	assert.InDelta(t, 2, rep.DistM2Com2, 1e-10)
	assert.InDelta(t, 2, rep.DistM2Com3, 1e-10)
	assert.InDelta(t, 4, rep.DistMetals, 1e-10)

	// one bond and one dihedral per middle-ring atom, cyclic
	require.Len(t, rep.Bonds, 6)
	require.Len(t, rep.Torsions, 6)
	last := rep.Bonds[5]
	assert.Equal(t, 11, last.A, "wraparound bond starts at the last ring atom")
	assert.Equal(t, 6, last.B, "and closes on the first")
	for _, b := range rep.Bonds {
		assert.InDelta(t, 1.4, b.R, 1e-10, "regular hexagon side equals its radius")
	}
	for _, tor := range rep.Torsions {
		assert.InDelta(t, 0, tor.Theta, 1e-8, "planar ring has flat dihedrals")
	}
	assert.Equal(t, Torsion{A: 11, B: 6, C: 7, D: 8, Theta: rep.Torsions[5].Theta}, rep.Torsions[5])

	assert.InDelta(t, 180, rep.AngCom1M1Com2, 1e-6)
	assert.InDelta(t, 180, rep.AngCom1Com2Com3, 1e-6)
	assert.InDelta(t, 180, rep.AngCom2M2Com3, 1e-6)
	assert.InDelta(t, 180, rep.AngM1Com2M2, 1e-6)
}

// When metal1 is handed in closer to ring3 and metal2 closer to ring1,
// the labels must be exchanged once and every descriptor reported with
// the corrected identities.
func TestAnalyzeThreeRingSwap(t *testing.T) {
	S := testInverseSandwich(t)
	job := threeRingJob()
	job.Metal1, job.Metal2 = 18, 17
	rep, err := NewAnalyzer(nil).Analyze(S, job)
	require.NoError(t, err)

	assert.True(t, rep.Swapped)
	assert.Equal(t, 17, rep.Metal1, "metal1 is the metal nearer ring1 after the swap")
	assert.Equal(t, 18, rep.Metal2)
	assert.InDelta(t, 2, rep.DistM1Com1, 1e-10)
	assert.InDelta(t, 2, rep.DistM2Com3, 1e-10)
	assert.InDelta(t, 4, rep.DistMetals, 1e-10)
}

// A metal equidistant from both terminal rings is an ambiguous
// arrangement: the one-shot heuristic must leave the labels alone.
func TestAnalyzeNoSwapOnTie(t *testing.T) {
	S := testInverseSandwich(t)
	// move both metals into the middle plane, equidistant from com1/com3
	S.coords.Set(16, 2, 0)
	S.coords.Set(17, 2, 0)
	job := threeRingJob()
	rep, err := NewAnalyzer(nil).Analyze(S, job)
	require.NoError(t, err)
	assert.False(t, rep.Swapped)
	assert.Equal(t, 17, rep.Metal1)
	assert.Equal(t, 18, rep.Metal2)
}

func TestAnalyzeAbortsBeforeMutation(t *testing.T) {
	S := testPentagonPrism(t)
	n := S.Len()

	job := twoRingJob()
	job.Ring2 = []int{6, 7, 8, 9} // 4-membered
	_, err := NewAnalyzer(nil).Analyze(S, job)
	assert.Equal(t, InvalidRingSize, KindOf(err))
	assert.Equal(t, n, S.Len(), "no marker appended on validation failure")

	job = twoRingJob()
	job.Ring2 = []int{6, 7, 8, 9, 99} // out of range
	_, err = NewAnalyzer(nil).Analyze(S, job)
	assert.Equal(t, IndexOutOfRange, KindOf(err))
	assert.Equal(t, n, S.Len())

	job = twoRingJob()
	job.Metal1 = 99
	_, err = NewAnalyzer(nil).Analyze(S, job)
	assert.Equal(t, IndexOutOfRange, KindOf(err))
	assert.Equal(t, n, S.Len())
}
