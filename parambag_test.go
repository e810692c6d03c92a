// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proj4

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseProjStringEmptyIsError(t *testing.T) {
	_, err := ParseProjString("   ")
	require.Error(t, err)

	var perr *Error
	require.ErrorAs(t, err, &perr)
	require.Equal(t, ParseError, perr.Kind)
}

func TestParseProjStringUnterminatedQuote(t *testing.T) {
	_, err := ParseProjString(`+proj=merc +title="Unfinished`)
	require.Error(t, err)
}

func TestParseProjStringQuotedValueWithSpaces(t *testing.T) {
	bag, err := ParseProjString(`+proj=merc +title="North Sea Grid"`)
	require.NoError(t, err)
	v, ok := bag.str("title")
	require.True(t, ok)
	require.Equal(t, "North Sea Grid", v)
}

// TestBuildMalformedNumericLiteralIsHardError covers spec.md's "a malformed
// numeric literal is a hard error", both for the ParamBag.degree* family and
// the plain x_0/y_0/k_0 accessors wired through floatOrErr in buildFromBag.
func TestBuildMalformedNumericLiteralIsHardError(t *testing.T) {
	cases := []string{
		"+proj=merc +ellps=WGS84 +x_0=notanumber",
		"+proj=merc +ellps=WGS84 +y_0=notanumber",
		"+proj=merc +ellps=WGS84 +k_0=notanumber",
		"+proj=tmerc +ellps=WGS84 +lon_0=notanumber",
		"+proj=tmerc +ellps=WGS84 +lat_0=notanumber",
	}
	for _, spec := range cases {
		t.Run(spec, func(t *testing.T) {
			_, err := Build(spec)
			require.Error(t, err)
		})
	}
}

func TestBuildRejectsNonPositiveScaleFactor(t *testing.T) {
	_, err := Build("+proj=merc +ellps=WGS84 +k_0=0")
	require.Error(t, err)

	var perr *Error
	require.ErrorAs(t, err, &perr)
	require.Equal(t, InvalidParameter, perr.Kind)
}

func TestBuildRejectsEQCAtPole(t *testing.T) {
	_, err := Build("+proj=eqc +ellps=WGS84 +lat_1=90")
	require.Error(t, err)

	var perr *Error
	require.ErrorAs(t, err, &perr)
	require.Equal(t, InvalidParameter, perr.Kind)
}
