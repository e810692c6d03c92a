// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proj4

import "math"

// aea is the Albers Equal-Area Conic projection, grounded on Snyder's
// standard formulas (Map Projections: A Working Manual, eqs. 14-1 through
// 14-4), the same authalic-latitude construction laea.go uses (qFunc,
// numeric.go) specialized to the conic case.
type aea struct {
	*Base
	n, c, rho0 float64
}

// leac is the "Lambert Equal Area Conic" alias: an Albers whose second
// standard parallel is the north pole by default, or the south pole (with
// lat_1's sign flipped) under +south, matching PROJ's leac.c wrapper
// around aea.c.
func newAEA(base *Base, p ParamBag) (projImpl, error) {
	return buildAEA(base, p, false)
}

func newLEAC(base *Base, p ParamBag) (projImpl, error) {
	return buildAEA(base, p, true)
}

func buildAEA(base *Base, p ParamBag, leac bool) (projImpl, error) {
	a := &aea{Base: base}
	phi1, _ := p.degreeOr("lat_1", 0)
	var phi2v float64
	if leac {
		south, _ := p.bool("south")
		phi2v = halfPi
		if south {
			phi2v = -halfPi
			phi1 = -phi1
		}
	} else {
		v, has2, err := p.degree("lat_2")
		if err != nil {
			return nil, err
		}
		if has2 {
			phi2v = v
		} else {
			phi2v = phi1
		}
	}
	if math.Abs(phi1+phi2v) < epsln {
		return nil, errf(InvalidParameter, "newAEA", "lat_1", "lat_1 and lat_2 cannot be opposite and equal")
	}

	es := base.Ellipsoid.Es
	e := base.Ellipsoid.E

	sinphi1, cosphi1 := math.Sin(phi1), math.Cos(phi1)
	m1 := msfn(sinphi1, cosphi1, es)
	q1 := qFunc(es, e, sinphi1)

	if math.Abs(phi1-phi2v) >= epsln {
		sinphi2, cosphi2 := math.Sin(phi2v), math.Cos(phi2v)
		m2 := msfn(sinphi2, cosphi2, es)
		q2 := qFunc(es, e, sinphi2)
		a.n = (m1*m1 - m2*m2) / (q2 - q1)
	} else {
		a.n = sinphi1
	}
	a.c = m1*m1 + a.n*q1
	q0 := qFunc(es, e, math.Sin(base.Phi0))
	a.rho0 = math.Sqrt(math.Max(0, a.c-a.n*q0)) / a.n
	return a, nil
}

func (a *aea) forward(lam, phi, z float64) (float64, float64, float64, error) {
	q := qFunc(a.Ellipsoid.Es, a.Ellipsoid.E, math.Sin(phi))
	rad := a.c - a.n*q
	if rad < 0 {
		return hugeVal, hugeVal, z, errf(DomainError, "aea.forward", "", "latitude out of range for this cone")
	}
	rho := math.Sqrt(rad) / a.n
	theta := a.n * lam
	x := rho * math.Sin(theta)
	y := a.rho0 - rho*math.Cos(theta)
	return x, y, z, nil
}

func (a *aea) inverse(x, y, z float64) (float64, float64, float64, error) {
	dy := a.rho0 - y
	rho := hypot(x, dy)
	if rho == 0 {
		return 0, sign(a.n) * halfPi, z, nil
	}
	theta := math.Atan2(x*sign(a.n), dy*sign(a.n))
	lam := theta / a.n
	q := (a.c - rho*rho*a.n*a.n) / a.n
	phi, err := phiFromQ(a.Ellipsoid.Es, a.Ellipsoid.E, q)
	if err != nil {
		return 0, 0, z, err
	}
	return lam, phi, z, nil
}
