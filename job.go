/*
 * job.go, part of sandwich.
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
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ReadJob reads an analysis job from a YAML file, e.g.
//
//	input: ferrocene.xyz
//	ring1: [1, 2, 3, 4, 5]
//	ring2: [6, 7, 8, 9, 10]
//	metal1: 11
//
// The job is not validated here; Analyze does that against the
// structure.
func ReadJob(name string) (*Job, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, newError(FileNotFound, "%s", name)
	}
	job := new(Job)
	if err := yaml.Unmarshal(data, job); err != nil {
		return nil, fmt.Errorf("job file %s: %w", name, err)
	}
	return job, nil
}

// OutputName returns the job's output path, defaulting to the input
// name with "_analyzed" inserted before the extension (m.xyz becomes
// m_analyzed.xyz).
func (J *Job) OutputName() string {
	if J.Output != "" {
		return J.Output
	}
	ext := filepath.Ext(J.Input)
	return strings.TrimSuffix(J.Input, ext) + "_analyzed" + ext
}
