// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proj4

// geocent implements +proj=geocent (alias cart): geodetic (lon, lat,
// height) to/from geocentric (ECEF) meters, reusing the datum-shift
// pipeline's own geodeticToGeocentric/geocentricToGeodetic (helmert.go) so
// there is exactly one implementation of that conversion in the package.
// Intrinsically 3D: Base.Forward/Inverse skip the 2D a-scaling and x0/y0
// offsetting for IsGeocent projections, so this type receives/returns true
// meters directly.
type geocent struct {
	*Base
}

func newGeocent(base *Base, p ParamBag) (projImpl, error) {
	return &geocent{base}, nil
}

func (g *geocent) forward(lam, phi, h float64) (float64, float64, float64, error) {
	return geodeticToGeocentric(g.Ellipsoid, lam, phi, h)
}

func (g *geocent) inverse(x, y, z float64) (float64, float64, float64, error) {
	lon, lat, h := geocentricToGeodetic(g.Ellipsoid, x, y, z)
	return lon, lat, h, nil
}
