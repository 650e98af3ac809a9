// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package dynerr implements the structured error categories used across the
// dynamical core: Configuration, Geometry, Solver, Mesh and IO errors.
package dynerr

import (
	"errors"
	"fmt"

	"github.com/cpmech/gosl/chk"
)

// Category tags one of the taxonomy classes an Error belongs to
type Category int

// categories
const (
	Configuration Category = iota
	Geometry
	Solver
	Mesh
	IO
)

func (c Category) String() string {
	switch c {
	case Configuration:
		return "ConfigurationError"
	case Geometry:
		return "GeometryError"
	case Solver:
		return "SolverError"
	case Mesh:
		return "MeshError"
	case IO:
		return "IOError"
	}
	return "UnknownError"
}

// Error is a category-tagged error with an optional wrapped cause
type Error struct {
	Cat Category
	Msg string
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Cat, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Cat, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds a category-tagged error, gosl-style with a formatted message
func New(cat Category, msg string, args ...interface{}) error {
	return &Error{Cat: cat, Msg: fmt.Sprintf(msg, args...)}
}

// Wrap builds a category-tagged error around a previously returned error
func Wrap(cat Category, cause error, msg string, args ...interface{}) error {
	return &Error{Cat: cat, Msg: fmt.Sprintf(msg, args...), Err: cause}
}

// IsCategory reports whether err (possibly wrapped) carries the given category
func IsCategory(err error, cat Category) bool {
	var e *Error
	return errors.As(err, &e) && e.Cat == cat
}

// Fatal panics with a category-tagged message, mirroring the teacher's
// chk.Panic usage for construction-time (Configuration/Mesh/Geometry) errors
// that must abort initialisation immediately.
func Fatal(cat Category, msg string, args ...interface{}) {
	chk.Panic("%s: %s", cat, fmt.Sprintf(msg, args...))
}
