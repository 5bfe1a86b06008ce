/*
 * xyz.go, part of sandwich.
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
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// XYZRead reads the structure in the XYZ file name. Files ending in .gz
// are decompressed transparently.
func XYZRead(name string) (*Structure, error) {
	xyzfile, err := os.Open(name)
	if err != nil {
		return nil, newError(FileNotFound, "%s", name)
	}
	defer xyzfile.Close()
	var r io.Reader = xyzfile
	if strings.HasSuffix(name, ".gz") {
		gz, err := gzip.NewReader(xyzfile)
		if err != nil {
			return nil, newError(MalformedStructure, "%s: %v", name, err)
		}
		defer gz.Close()
		r = gz
	}
	S, err := XYZReadFrom(r)
	if err != nil {
		return nil, errDecorate(err, "XYZRead: "+name)
	}
	return S, nil
}

// XYZReadFrom reads an XYZ-formatted structure from r: an atom count
// line, a free-text comment line which is ignored, and one
// "symbol x y z" line per atom, whitespace separated.
func XYZReadFrom(r io.Reader) (*Structure, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return nil, newError(MalformedStructure, "missing atom count line")
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil || natoms <= 0 {
		return nil, newError(MalformedStructure, "bad atom count line %q", scanner.Text())
	}
	if !scanner.Scan() {
		return nil, newError(MalformedStructure, "missing comment line")
	}
	atoms := make([]*Atom, natoms)
	coords := make([]float64, natoms*3)
	for i := 0; i < natoms; i++ {
		if !scanner.Scan() {
			return nil, newError(MalformedStructure, "%d atoms declared, %d found", natoms, i)
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) < 4 {
			return nil, newError(MalformedStructure, "atom line %d ill formed: %q", i+1, scanner.Text())
		}
		atoms[i] = NewAtom(fields[0])
		for j := 0; j < 3; j++ {
			coords[i*3+j], err = strconv.ParseFloat(fields[j+1], 64)
			if err != nil {
				return nil, newError(MalformedStructure, "atom line %d: bad coordinate %q", i+1, fields[j+1])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, newError(MalformedStructure, "%v", err)
	}
	return newStructureFromSlices(atoms, coords)
}

// XYZWrite writes the structure to the XYZ file name, overwriting it if
// it exists. Names ending in .gz produce a gzip-compressed file.
func XYZWrite(S *Structure, name, comment string) error {
	out, err := os.Create(name)
	if err != nil {
		return err
	}
	defer out.Close()
	if strings.HasSuffix(name, ".gz") {
		gz := gzip.NewWriter(out)
		if err := XYZWriteTo(gz, S, comment); err != nil {
			gz.Close()
			return err
		}
		return gz.Close()
	}
	return XYZWriteTo(out, S, comment)
}

// XYZWriteTo writes the structure to w in XYZ format, with coordinates
// formatted to 6 decimal places.
func XYZWriteTo(w io.Writer, S *Structure, comment string) error {
	if comment == "" {
		comment = "Generated by sandwich"
	}
	if _, err := fmt.Fprintf(w, "%d\n%s\n", S.Len(), comment); err != nil {
		return err
	}
	for i := 1; i <= S.Len(); i++ {
		c := S.coord(i)
		_, err := fmt.Fprintf(w, "%-2s %12.6f %12.6f %12.6f\n", S.atoms[i-1].Symbol, c.X, c.Y, c.Z)
		if err != nil {
			return err
		}
	}
	return nil
}
