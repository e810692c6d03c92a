// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proj4

import "math"

// geodeticToGeocentric converts (lon, lat, h) in radians/meters to
// ECEF (X, Y, Z) meters on the given ellipsoid, grounded on the
// Convert_Geodetic_To_Geocentric algorithm carried by ctessum/geom/proj's
// datum.go (itself derived from PROJ.4's pj_datum_transform.c).
func geodeticToGeocentric(e Ellipsoid, lon, lat, h float64) (x, y, z float64, err error) {
	if lat < -halfPi && lat > -1.001*halfPi {
		lat = -halfPi
	} else if lat > halfPi && lat < 1.001*halfPi {
		lat = halfPi
	} else if lat < -halfPi || lat > halfPi {
		return 0, 0, 0, errf(DomainError, "geodeticToGeocentric", "", "latitude %g out of range", lat)
	}
	if lon > math.Pi {
		lon -= twoPi
	}

	sinLat := math.Sin(lat)
	cosLat := math.Cos(lat)
	rn := e.A / math.Sqrt(1.0-e.Es*sinLat*sinLat)
	x = (rn + h) * cosLat * math.Cos(lon)
	y = (rn + h) * cosLat * math.Sin(lon)
	z = (rn*(1-e.Es) + h) * sinLat
	return x, y, z, nil
}

// geocentricToGeodetic recovers (lon, lat, h) from ECEF (X, Y, Z), by the
// Hannover iterative algorithm (genau=1e-12, maxiter=30 per spec.md §4.5),
// with the closed-form pole fallback spec.md calls for when iteration would
// otherwise be singular.
func geocentricToGeodetic(e Ellipsoid, x, y, z float64) (lon, lat, h float64) {
	p := math.Hypot(x, y)
	rr := math.Sqrt(x*x + y*y + z*z)

	if p/e.A < geocentricTolerance {
		lon = 0
		if rr/e.A < geocentricTolerance {
			return 0, halfPi, -e.B
		}
	} else {
		lon = math.Atan2(y, x)
	}

	ct := z / rr
	st := p / rr
	rx := 1.0 / math.Sqrt(1.0-e.Es*(2.0-e.Es)*st*st)
	cphi0 := st * (1.0 - e.Es) * rx
	sphi0 := ct * rx

	var cphi, sphi float64
	for iter := 0; ; iter++ {
		rn := e.A / math.Sqrt(1.0-e.Es*sphi0*sphi0)
		h = p*cphi0 + z*sphi0 - rn*(1.0-e.Es*sphi0*sphi0)
		rk := e.Es * rn / (rn + h)
		rx = 1.0 / math.Sqrt(1.0-rk*(2.0-rk)*st*st)
		cphi = st * (1.0 - rk) * rx
		sphi = ct * rx
		sdphi := sphi*cphi0 - cphi*sphi0
		cphi0 = cphi
		sphi0 = sphi
		if sdphi*sdphi <= geocentricTolerance*geocentricTolerance || iter+1 >= geocentricMaxIter {
			break
		}
	}
	lat = math.Atan(sphi / math.Abs(cphi))
	return lon, lat, h
}

// helmertToWGS84 applies the forward 7- or 3-parameter position-vector
// Helmert transform (source frame -> WGS84), small-angle form:
// X' = (1+s)*(X - Rz*Y + Ry*Z) + dx, and cyclic.
func helmertToWGS84(params []float64, x, y, z float64) (float64, float64, float64) {
	switch len(params) {
	case 3:
		return x + params[0], y + params[1], z + params[2]
	case 7:
		dx, dy, dz := params[0], params[1], params[2]
		rx, ry, rz := params[3], params[4], params[5]
		m := params[6]
		xOut := m*(x-rz*y+ry*z) + dx
		yOut := m*(rz*x+y-rx*z) + dy
		zOut := m*(-ry*x+rx*y+z) + dz
		return xOut, yOut, zOut
	default:
		return x, y, z
	}
}

// helmertFromWGS84 applies the inverse of helmertToWGS84 (WGS84 -> target
// frame).
func helmertFromWGS84(params []float64, x, y, z float64) (float64, float64, float64) {
	switch len(params) {
	case 3:
		return x - params[0], y - params[1], z - params[2]
	case 7:
		dx, dy, dz := params[0], params[1], params[2]
		rx, ry, rz := params[3], params[4], params[5]
		m := params[6]
		xt := (x - dx) / m
		yt := (y - dy) / m
		zt := (z - dz) / m
		xOut := xt + rz*yt - ry*zt
		yOut := -rz*xt + yt + rx*zt
		zOut := ry*xt - rx*yt + zt
		return xOut, yOut, zOut
	default:
		return x, y, z
	}
}

// datumShift implements spec.md §4.5's pipeline decision and execution:
// identity when the datums are structurally equal or either is a
// null-shift sentinel; otherwise geodetic -> geocentric -> Helmert(source
// -> WGS84) -> Helmert(WGS84 -> target) -> geocentric -> geodetic.
func datumShift(source, target Datum, lon, lat, h float64) (float64, float64, float64, error) {
	if source.Kind == DatumNullShift || target.Kind == DatumNullShift {
		return lon, lat, h, nil
	}
	if source.Equal(target) {
		return lon, lat, h, nil
	}

	x, y, z, err := geodeticToGeocentric(source.Ellipsoid, lon, lat, h)
	if err != nil {
		return 0, 0, 0, err
	}
	if source.Kind == Datum3Param || source.Kind == Datum7Param {
		x, y, z = helmertToWGS84(source.Params, x, y, z)
	}
	if target.Kind == Datum3Param || target.Kind == Datum7Param {
		x, y, z = helmertFromWGS84(target.Params, x, y, z)
	}
	lon2, lat2, h2 := geocentricToGeodetic(target.Ellipsoid, x, y, z)
	return lon2, lat2, h2, nil
}
