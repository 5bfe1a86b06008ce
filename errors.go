/*
 * errors.go, part of sandwich.
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
	"errors"
	"fmt"
)

// Kind labels the class of failure carried by an Error. Every failure in
// this package is fatal for the analysis run: the caller is expected to
// report it and stop, no partial results are produced.
type Kind string

const (
	FileNotFound       Kind = "file not found"
	MalformedStructure Kind = "malformed structure file"
	IndexOutOfRange    Kind = "atom index out of range"
	InvalidRingSize    Kind = "ring must have 5 or 6 atoms"
	MissingMetal2      Kind = "metal2 is required for a 3-ring structure"
	ExtraMetal2        Kind = "metal2 given but only 2 rings provided"
	DegenerateGeometry Kind = "dihedral undefined for collinear atoms"
)

// Error is the error type returned by all functions in this package.
// The Decorate method allows adding information while the error is passed
// up, without wrapping it into another type.
type Error struct {
	kind    Kind
	message string
	deco    []string
}

func newError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{kind: kind, message: fmt.Sprintf(format, args...)}
}

// Error returns a string with an error message.
func (err *Error) Error() string {
	if err.message == "" {
		return string(err.kind)
	}
	return fmt.Sprintf("%s: %s", err.kind, err.message)
}

// Kind returns the class of the failure.
func (err *Error) Kind() Kind {
	return err.kind
}

// Decorate adds dec to the decoration slice of the error and returns the
// resulting slice. An empty string only returns the current decorations.
// The decorations should list the functions in the calling stack, plus,
// for each, any relevant information, in the format "Caller: extra info".
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// errDecorate decorates err with the caller's name before returning it,
// when err is an *Error. Other error values are returned untouched.
func errDecorate(err error, caller string) error {
	var serr *Error
	if errors.As(err, &serr) {
		serr.Decorate(caller)
		return serr
	}
	return err
}

// KindOf returns the Kind of err if it is an *Error from this package,
// or the empty Kind otherwise.
func KindOf(err error) Kind {
	var serr *Error
	if errors.As(err, &serr) {
		return serr.kind
	}
	return ""
}
