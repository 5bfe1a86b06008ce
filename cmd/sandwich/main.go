/*
 * main.go, part of sandwich.
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

// Command sandwich annotates metallocene and inverse-sandwich
// structures: it adds dummy atoms at the ring centroids and reports
// the distances, angles and (for three rings) middle-ring bond lengths,
// dihedral angles and the metal-metal distance.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	sandwich "github.com/lmiranda/sandwich"
)

var (
	ring1   []int
	ring2   []int
	ring3   []int
	metal1  int
	metal2  int
	output  string
	jobFile string
	profile bool
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "sandwich [flags] structure.xyz",
	Short: "Annotate metallocene and inverse-sandwich structures with geometric descriptors",
	Long: `sandwich adds dummy atoms ('X') at the centroids of the given rings and
reports metal-centroid distances and angles. With three rings it also
resolves which metal faces which terminal ring, and reports the bond
distances and dihedral angles around the middle ring plus the
metal-metal distance.

Atom indices are one-based. Rings have 5 or 6 atoms. With two rings give
--metal1 only; with three rings give --metal1 and --metal2. For three
rings the atoms of --ring2 must be listed in their cyclic order around
the ring, or the bond and dihedral values will be meaningless.

A run can also be described in a YAML job file (--job); the positional
structure file then overrides the job's input field if given.`,
	Example: `  sandwich ferrocene.xyz --ring1 1,2,3,4,5 --ring2 6,7,8,9,10 --metal1 11
  sandwich inverse.xyz --ring1 1,2,3,4,5 --ring2 6,7,8,9,10 --ring3 11,12,13,14,15 --metal1 16 --metal2 17
  sandwich --job run.yaml`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	RunE:          run,
}

func init() {
	f := rootCmd.Flags()
	f.IntSliceVar(&ring1, "ring1", nil, "one-based atom indices of the first ring (5 or 6 atoms)")
	f.IntSliceVar(&ring2, "ring2", nil, "one-based atom indices of the second ring (5 or 6 atoms)")
	f.IntSliceVar(&ring3, "ring3", nil, "one-based atom indices of the third ring (optional)")
	f.IntVar(&metal1, "metal1", 0, "one-based index of the first metal")
	f.IntVar(&metal2, "metal2", 0, "one-based index of the second metal (required with --ring3)")
	f.StringVarP(&output, "output", "o", "", "output XYZ file (default: input with _analyzed appended)")
	f.StringVar(&jobFile, "job", "", "YAML job file describing the run (replaces the ring/metal flags)")
	f.BoolVar(&profile, "plot", false, "write middle-ring bond/dihedral profile PNGs (3-ring runs only)")
	f.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	logger := newLogger(verbose)
	defer logger.Sync()

	job, err := buildJob(args)
	if err != nil {
		return err
	}
	structure, err := sandwich.XYZRead(job.Input)
	if err != nil {
		return err
	}
	report, err := sandwich.NewAnalyzer(logger).Analyze(structure, job)
	if err != nil {
		return err
	}
	if err := sandwich.WriteReport(os.Stdout, structure, report); err != nil {
		return err
	}
	out := job.OutputName()
	if err := sandwich.XYZWrite(structure, out, "Generated by sandwich"); err != nil {
		return err
	}
	logger.Sugar().Infof("modified structure with %d dummy atoms saved to %s", len(report.Markers), out)
	if profile {
		base := strings.TrimSuffix(out, filepath.Ext(out))
		if err := sandwich.PlotMiddleRing(structure, report, base); err != nil {
			return err
		}
		logger.Sugar().Infof("middle-ring profiles saved to %s_bonds.png and %s_dihedrals.png", base, base)
	}
	return nil
}

// buildJob assembles the run description from the YAML job file or the
// ring/metal flags, with the positional argument as the input file.
func buildJob(args []string) (*sandwich.Job, error) {
	if jobFile != "" {
		job, err := sandwich.ReadJob(jobFile)
		if err != nil {
			return nil, err
		}
		if len(args) == 1 {
			job.Input = args[0]
		}
		if output != "" {
			job.Output = output
		}
		if job.Input == "" {
			return nil, fmt.Errorf("no input structure: give one on the command line or in the job file")
		}
		return job, nil
	}
	if len(args) != 1 {
		return nil, fmt.Errorf("an input structure file is required")
	}
	if ring1 == nil || ring2 == nil {
		return nil, fmt.Errorf("--ring1 and --ring2 are required")
	}
	if metal1 == 0 {
		return nil, fmt.Errorf("--metal1 is required")
	}
	return &sandwich.Job{
		Input:  args[0],
		Output: output,
		Ring1:  ring1,
		Ring2:  ring2,
		Ring3:  ring3,
		Metal1: metal1,
		Metal2: metal2,
	}, nil
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
