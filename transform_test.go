// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proj4

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestTransformScenarios exercises spec.md §8's literal end-to-end table.
func TestTransformScenarios(t *testing.T) {
	cases := []struct {
		name       string
		source     string
		target     string
		in         Point
		want       Point
		tol        float64
	}{
		{
			name:   "utm-to-tmerc",
			source: "+proj=utm +zone=33 +ellps=GRS80 +towgs84=0,0,0,0,0,0,0 +units=m",
			target: "+proj=tmerc +lon_0=15.8082777778 +lat_0=0 +k=1 +x_0=1500000 +y_0=0 +ellps=bessel +units=m +towgs84=414.1,41.3,603.1,-0.855,2.141,-7.023,0",
			in:     Point{X: 319180, Y: 6399862},
			want:   Point{X: 1271137.9272, Y: 6404230.2945},
			tol:    1e-3,
		},
		{
			name:   "lcc-to-merc",
			source: "+proj=lcc +lat_0=46.5 +lon_0=3 +lat_1=49 +lat_2=44 +x_0=700000 +y_0=6600000 +ellps=GRS80 +towgs84=0,0,0,0,0,0,0 +units=m",
			target: "+proj=merc +a=6378137 +b=6378137 +lat_ts=0 +lon_0=0 +x_0=0 +y_0=0 +k=1 +units=m +nadgrids=@null",
			in:     Point{X: 489353.59, Y: 6587552.2},
			want:   Point{X: 268067.4637, Y: 6248385.9206},
			tol:    1e-3,
		},
		{
			name:   "longlat-to-merc-origin",
			source: "+proj=longlat +ellps=WGS84 +datum=WGS84",
			target: "+proj=merc +a=6378137 +b=6378137 +lat_ts=0 +lon_0=0 +k=1 +units=m +nadgrids=@null",
			in:     Point{X: 0, Y: 0},
			want:   Point{X: 0, Y: 0},
			tol:    1e-3,
		},
		{
			name:   "longlat-to-laea",
			source: "+proj=longlat +ellps=WGS84",
			target: "+proj=laea +lat_0=52 +lon_0=10 +x_0=4321000 +y_0=3210000 +ellps=GRS80",
			in:     Point{X: 15.4213696 * deg2rad, Y: 47.0766716 * deg2rad},
			want:   Point{X: 4732659.007, Y: 2677630.727},
			tol:    1e-3,
		},
		{
			name:   "tmerc-to-longlat",
			source: "+proj=tmerc +lat_0=38 +lon_0=127.0028902778 +k=1 +x_0=200000 +y_0=500000 +ellps=bessel +towgs84=-145.907,505.034,685.756,-1.162,2.347,1.592,6.342 +units=m",
			target: "+proj=longlat +ellps=WGS84 +datum=WGS84",
			in:     Point{X: 198236.32, Y: 453407.856},
			want:   Point{X: 126.98069676 * deg2rad, Y: 37.58308535 * deg2rad},
			tol:    1e-6,
		},
		{
			name:   "longlat-to-geocent",
			source: "+proj=longlat +datum=WGS84",
			target: "+proj=geocent +datum=WGS84 +units=m",
			in:     Point{X: 0, Y: 0, Z: 0},
			want:   Point{X: 6378137, Y: 0, Z: 0},
			tol:    1e-3,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			source, err := Build(c.source)
			require.NoError(t, err)
			target, err := Build(c.target)
			require.NoError(t, err)

			points := []Point{c.in}
			result, err := Transform(source, target, points)
			require.NoError(t, err)
			require.Equal(t, 1, result.Processed)

			require.InDelta(t, c.want.X, points[0].X, c.tol)
			require.InDelta(t, c.want.Y, points[0].Y, c.tol)
			require.InDelta(t, c.want.Z, points[0].Z, c.tol)
		})
	}
}

// TestTransformIdentityShortcut is spec.md §8 property 3: source==target
// yields identity to bit-exact f64 equality.
func TestTransformIdentityShortcut(t *testing.T) {
	pj, err := Build("+proj=merc +ellps=WGS84 +lat_ts=0")
	require.NoError(t, err)

	points := []Point{{X: 123456.789, Y: -987654.321, Z: 12.5}}
	want := points[0]
	_, err = Transform(pj, pj, points)
	require.NoError(t, err)
	require.Equal(t, want, points[0])
}

// TestTransformNullGridEquivalence is spec.md §8 property 4.
func TestTransformNullGridEquivalence(t *testing.T) {
	source, err := Build("+proj=longlat +ellps=WGS84 +nadgrids=@null")
	require.NoError(t, err)
	target, err := Build("+proj=longlat +ellps=GRS80 +nadgrids=@null")
	require.NoError(t, err)

	points := []Point{{X: 12 * deg2rad, Y: 34 * deg2rad}}
	want := points[0]
	_, err = Transform(source, target, points)
	require.NoError(t, err)
	require.InDelta(t, want.X, points[0].X, 1e-12)
	require.InDelta(t, want.Y, points[0].Y, 1e-12)
}

// TestAxisNormalization is spec.md §8 property 6.
func TestAxisNormalization(t *testing.T) {
	src, err := Build("+proj=longlat +ellps=WGS84")
	require.NoError(t, err)
	enu, err := Build("+proj=merc +ellps=WGS84 +lat_ts=0")
	require.NoError(t, err)
	wnu, err := Build("+proj=merc +ellps=WGS84 +lat_ts=0 +axis=wnu")
	require.NoError(t, err)

	enuPts := []Point{{X: 10 * deg2rad, Y: 45 * deg2rad}}
	_, err = Transform(src, enu, enuPts)
	require.NoError(t, err)

	wnuPts := []Point{{X: 10 * deg2rad, Y: 45 * deg2rad}}
	_, err = Transform(src, wnu, wnuPts)
	require.NoError(t, err)

	require.InDelta(t, -enuPts[0].X, wnuPts[0].X, 1e-9)
	require.InDelta(t, enuPts[0].Y, wnuPts[0].Y, 1e-9)
}

// TestTransformRejectsGeocentricLatitude covers spec.md's Open Question
// decision that +geoc is accepted by Build but rejected at Transform time.
func TestTransformRejectsGeocentricLatitude(t *testing.T) {
	source, err := Build("+proj=longlat +ellps=WGS84 +geoc")
	require.NoError(t, err)
	target, err := Build("+proj=merc +ellps=WGS84 +lat_ts=0")
	require.NoError(t, err)

	points := []Point{{X: 10 * deg2rad, Y: 45 * deg2rad}}
	_, err = Transform(source, target, points)
	require.Error(t, err)

	var perr *Error
	require.ErrorAs(t, err, &perr)
	require.Equal(t, Unsupported, perr.Kind)
	require.ErrorIs(t, err, ErrGeocentricLatitudeUnsupported)
}
