// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proj4

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Kind classifies the failure modes a Projection or a Transform can
// surface, per the error taxonomy: construction failures are fatal for the
// Projection being built, transform failures are per-point and must not
// corrupt neighbouring points.
type Kind int

const (
	// ParseError is a malformed proj-string: a bad angular/numeric literal,
	// an unparsable token. An unrecognized +key is NOT a ParseError.
	ParseError Kind = iota
	// InvalidParameter is a recognized key with a value that is out of
	// range or structurally wrong for the projection being built (unknown
	// +ellps/+datum/+pm/+units name, eccentricity out of range, ...).
	InvalidParameter
	// DomainError means forward or inverse was called on a point outside
	// the projection's domain of validity. Per-point; the Projection
	// itself remains valid.
	DomainError
	// Convergence means an iterative inverse did not converge within its
	// allotted iteration budget.
	Convergence
	// Unsupported means a named projection, or a requested feature, isn't
	// implemented.
	Unsupported
)

func (k Kind) String() string {
	switch k {
	case ParseError:
		return "ParseError"
	case InvalidParameter:
		return "InvalidParameter"
	case DomainError:
		return "DomainError"
	case Convergence:
		return "Convergence"
	case Unsupported:
		return "Unsupported"
	default:
		return "UnknownKind"
	}
}

// Error is the error type surfaced by this package. Key is populated when
// the failure is traceable to one proj-string parameter.
type Error struct {
	Kind Kind
	Key  string
	Op   string
	err  error
}

func (e *Error) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("proj4: %s: %s (key=%q): %v", e.Op, e.Kind, e.Key, e.err)
	}
	return fmt.Sprintf("proj4: %s: %s: %v", e.Op, e.Kind, e.err)
}

func (e *Error) Unwrap() error { return e.err }

// newErr builds a *Error, wrapping cause with a stack trace via
// github.com/pkg/errors so construction-time failures are diagnosable even
// though this is a pure library with no logger of its own.
func newErr(kind Kind, op, key string, cause error) *Error {
	return &Error{Kind: kind, Op: op, Key: key, err: pkgerrors.WithStack(cause)}
}

func errf(kind Kind, op, key, format string, args ...interface{}) *Error {
	return newErr(kind, op, key, fmt.Errorf(format, args...))
}

// IsKind reports whether err is a *Error of the given Kind.
func IsKind(err error, kind Kind) bool {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind == kind
	}
	return false
}

var (
	// ErrEmptyProjString is returned when Build/NewProjection is given an
	// empty (or all-whitespace) proj-string.
	ErrEmptyProjString = errors.New("proj4: empty proj-string")
	// ErrGeocentricLatitudeUnsupported marks +geoc as accepted by the
	// parser but unimplemented through the datum-shift pipeline, per
	// spec's open question: "defer and error out if set".
	ErrGeocentricLatitudeUnsupported = errors.New("proj4: +geoc propagation through datum shift is not implemented")
)
