// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proj4

import (
	"math"
	"testing"
)

func closeRad(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// TestProjectionRoundTrip exercises spec.md §8 property 1 (round-trip
// projected) across the full catalog, mirroring the teacher's
// TestProjString/TestMercator forward-then-inverse pattern.
func TestProjectionRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		spec string
		lam  float64
		phi  float64
	}{
		{"longlat", "+proj=longlat +ellps=WGS84", 10 * deg2rad, 45 * deg2rad},
		{"merc", "+proj=merc +ellps=WGS84 +lat_ts=0", 10 * deg2rad, 45 * deg2rad},
		{"webmerc", "+proj=webmerc +ellps=WGS84", 10 * deg2rad, 45 * deg2rad},
		{"eqc", "+proj=eqc +ellps=WGS84 +lat_1=0", 10 * deg2rad, 45 * deg2rad},
		{"lcc", "+proj=lcc +ellps=GRS80 +lat_0=23 +lon_0=-96 +lat_1=29.5 +lat_2=45.5", -75 * deg2rad, 35 * deg2rad},
		{"tmerc", "+proj=tmerc +ellps=WGS84 +lon_0=-75 +lat_0=0", -74 * deg2rad, 40.5 * deg2rad},
		{"etmerc", "+proj=etmerc +ellps=WGS84 +lon_0=-75 +lat_0=0", -74 * deg2rad, 40.5 * deg2rad},
		{"utm", "+proj=utm +zone=33 +ellps=WGS84", 15 * deg2rad, 45 * deg2rad},
		{"aea", "+proj=aea +ellps=GRS80 +lat_0=23 +lon_0=-96 +lat_1=29.5 +lat_2=45.5", -75 * deg2rad, 35 * deg2rad},
		{"leac", "+proj=leac +ellps=GRS80 +lat_1=45", -75 * deg2rad, 35 * deg2rad},
		{"stere-oblique", "+proj=stere +ellps=WGS84 +lat_0=45 +lon_0=10", 12 * deg2rad, 46 * deg2rad},
		{"ups", "+proj=ups +ellps=WGS84", 10 * deg2rad, 85 * deg2rad},
		{"sterea", "+proj=sterea +ellps=bessel +lat_0=52.156 +lon_0=5.387", 6 * deg2rad, 53 * deg2rad},
		{"somerc", "+proj=somerc +ellps=bessel +lat_0=46.95 +lon_0=7.43", 7.5 * deg2rad, 47 * deg2rad},
		{"laea", "+proj=laea +ellps=GRS80 +lat_0=52 +lon_0=10", 15.4 * deg2rad, 47.07 * deg2rad},
		{"moll", "+proj=moll +ellps=WGS84", 10 * deg2rad, 45 * deg2rad},
		{"wag4", "+proj=wag4 +a=6371000", 10 * deg2rad, 45 * deg2rad},
		{"wag5", "+proj=wag5 +a=6371000", 10 * deg2rad, 45 * deg2rad},
		{"geos", "+proj=geos +ellps=WGS84 +h=35785831", 10 * deg2rad, 0},
		{"aeqd", "+proj=aeqd +ellps=WGS84 +lat_0=40 +lon_0=-75", -74 * deg2rad, 41 * deg2rad},
		{"krovak", "+proj=krovak +ellps=bessel", 2 * deg2rad, 49 * deg2rad},
		{"mill", "+proj=mill +a=6371000", 10 * deg2rad, 45 * deg2rad},
		{"cea", "+proj=cea +ellps=WGS84 +lat_ts=30", 10 * deg2rad, 45 * deg2rad},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pj, err := Build(c.spec)
			if err != nil {
				t.Fatalf("Build(%q): %v", c.spec, err)
			}
			x, y, _, err := pj.Forward(c.lam, c.phi, 0)
			if err != nil {
				t.Fatalf("Forward: %v", err)
			}
			lam2, phi2, _, err := pj.Inverse(x, y, 0)
			if err != nil {
				t.Fatalf("Inverse: %v", err)
			}
			if !closeRad(c.lam, lam2) || !closeRad(c.phi, phi2) {
				t.Errorf("round trip off: (%.12f, %.12f) -> (%.12f, %.12f)", c.lam, c.phi, lam2, phi2)
			}
		})
	}
}

func TestGeocentRoundTrip(t *testing.T) {
	pj, err := Build("+proj=geocent +ellps=WGS84")
	if err != nil {
		t.Fatal(err)
	}
	lam, phi, h := 10*deg2rad, 45*deg2rad, 100.0
	x, y, z, err := pj.Forward(lam, phi, h)
	if err != nil {
		t.Fatal(err)
	}
	lam2, phi2, h2, err := pj.Inverse(x, y, z)
	if err != nil {
		t.Fatal(err)
	}
	if !closeRad(lam, lam2) || !closeRad(phi, phi2) || math.Abs(h-h2) > 1e-4 {
		t.Errorf("geocent round trip off: (%.9f, %.9f, %.4f) -> (%.9f, %.9f, %.4f)", lam, phi, h, lam2, phi2, h2)
	}
}

func TestMercatorLiteral(t *testing.T) {
	pj, err := Build("+proj=merc +a=6378137 +b=6378137 +lat_ts=0.0 +lon_0=0.0 +x_0=0.0 +y_0=0 +k=1.0 +units=m +nadgrids=@null")
	if err != nil {
		t.Fatal(err)
	}
	lng0, lat0 := 18.5*deg2rad, 54.2*deg2rad
	expx, expy := 2059410.57968, 7208125.2609
	x, y, _, err := pj.Forward(lng0, lat0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(x-expx) > 1e-3 || math.Abs(y-expy) > 1e-3 {
		t.Errorf("fwd translation off: want (%f, %f) got (%f, %f)", expx, expy, x, y)
	}
}
