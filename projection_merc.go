// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proj4

import "math"

// mercator is the (ellipsoidal or spherical) Mercator projection, grounded
// on the teacher's Mercator (projections.go) and cross-checked against
// ctessum/geom/proj's Merc: +lat_ts sets k0 via msfn (ellipsoidal) or cos
// (spherical) instead of the default k0=1.
type mercator struct {
	*Base
}

func newMercator(base *Base, p ParamBag) (projImpl, error) {
	phits, ok, err := p.degree("lat_ts")
	if err != nil {
		return nil, err
	}
	if ok {
		phits = math.Abs(phits)
		if base.Ellipsoid.IsSphere {
			base.K0 = math.Cos(phits)
		} else {
			base.K0 = msfn(math.Sin(phits), math.Cos(phits), base.Ellipsoid.Es)
		}
	}
	return &mercator{base}, nil
}

func (m *mercator) forward(lam, phi, z float64) (float64, float64, float64, error) {
	if math.Abs(math.Abs(phi)-halfPi) <= epsln {
		return hugeVal, hugeVal, z, errf(DomainError, "mercator.forward", "", "latitude too close to a pole")
	}
	if m.Ellipsoid.Es != 0 {
		x := m.K0 * lam
		y := -m.K0 * math.Log(tsfn(phi, math.Sin(phi), m.Ellipsoid.E))
		return x, y, z, nil
	}
	x := m.K0 * lam
	y := m.K0 * math.Log(math.Tan(quartPi+0.5*phi))
	return x, y, z, nil
}

func (m *mercator) inverse(x, y, z float64) (float64, float64, float64, error) {
	if m.Ellipsoid.Es != 0 {
		phi, err := phi2(m.Ellipsoid.E, math.Exp(-y/m.K0))
		if err != nil {
			return 0, 0, z, err
		}
		return x / m.K0, phi, z, nil
	}
	lam := x / m.K0
	phi := halfPi - 2*math.Atan(math.Exp(-y/m.K0))
	return lam, phi, z, nil
}

// webMercator is the spherical-formula "Popular Visualisation Pseudo
// Mercator" (EPSG:3857): projects the ellipsoid's geodetic latitude using
// the spherical Mercator formula regardless of flattening, per spec.md §6.
type webMercator struct {
	*Base
}

func newWebMercator(base *Base, p ParamBag) (projImpl, error) {
	return &webMercator{base}, nil
}

func (m *webMercator) forward(lam, phi, z float64) (float64, float64, float64, error) {
	if math.Abs(math.Abs(phi)-halfPi) <= epsln {
		return hugeVal, hugeVal, z, errf(DomainError, "webMercator.forward", "", "latitude too close to a pole")
	}
	x := m.K0 * lam
	y := m.K0 * math.Log(math.Tan(quartPi+0.5*phi))
	return x, y, z, nil
}

func (m *webMercator) inverse(x, y, z float64) (float64, float64, float64, error) {
	lam := x / m.K0
	phi := halfPi - 2*math.Atan(math.Exp(-y/m.K0))
	return lam, phi, z, nil
}
