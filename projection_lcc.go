// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proj4

import "math"

// lcc is the Lambert Conformal Conic projection, grounded on the teacher's
// LCC (projections.go) for the forward equations and constant derivation;
// the teacher's inverse was a stub ("panic: don't call this") so the
// inverse below follows Snyder's standard LCC inverse (Map Projections: A
// Working Manual, eq. 15-8/15-9) instead.
type lcc struct {
	*Base
	c, n, rho0 float64
	ellips     bool
}

func newLCC(base *Base, p ParamBag) (projImpl, error) {
	l := &lcc{Base: base}
	phi1, _ := p.degreeOr("lat_1", 0)
	phi2v, has2, err := p.degree("lat_2")
	if err != nil {
		return nil, err
	}
	if !has2 {
		phi2v = phi1
		if _, hasLat0 := p.str("lat_0"); !hasLat0 {
			base.Phi0 = phi1
		}
	}
	if math.Abs(phi1+phi2v) <= epsln {
		return nil, errf(InvalidParameter, "newLCC", "lat_1", "lat_1 and lat_2 cannot be opposite and equal")
	}

	sinphi := math.Sin(phi1)
	l.n = sinphi
	cosphi := math.Cos(phi1)
	secant := math.Abs(phi1-phi2v) >= epsln
	l.ellips = base.Ellipsoid.Es != 0

	if l.ellips {
		e := base.Ellipsoid.E
		m1 := msfn(sinphi, cosphi, base.Ellipsoid.Es)
		ml1 := tsfn(phi1, sinphi, e)
		if secant {
			sinphi2 := math.Sin(phi2v)
			l.n = math.Log(m1/msfn(sinphi2, math.Cos(phi2v), base.Ellipsoid.Es)) /
				math.Log(ml1/tsfn(phi2v, sinphi2, e))
		}
		l.c = m1 * math.Pow(ml1, -l.n) / l.n
		if math.Abs(math.Abs(base.Phi0)-halfPi) < epsln {
			l.rho0 = 0
		} else {
			l.rho0 = l.c * math.Pow(tsfn(base.Phi0, math.Sin(base.Phi0), e), l.n)
		}
	} else {
		if secant {
			l.n = math.Log(cosphi/math.Cos(phi2v)) /
				math.Log(math.Tan(quartPi+0.5*phi2v)/math.Tan(quartPi+0.5*phi1))
		}
		l.c = cosphi * math.Pow(math.Tan(quartPi+0.5*phi1), l.n) / l.n
		if math.Abs(math.Abs(base.Phi0)-halfPi) < epsln {
			l.rho0 = 0
		} else {
			l.rho0 = l.c * math.Pow(math.Tan(quartPi+0.5*base.Phi0), -l.n)
		}
	}
	return l, nil
}

func (l *lcc) forward(lam, phi, z float64) (float64, float64, float64, error) {
	var rho float64
	if math.Abs(math.Abs(phi)-halfPi) < epsln {
		if phi*l.n <= 0 {
			return hugeVal, hugeVal, z, errf(DomainError, "lcc.forward", "", "latitude/cone orientation mismatch at the pole")
		}
		rho = 0
	} else if l.ellips {
		rho = l.c * math.Pow(tsfn(phi, math.Sin(phi), l.Ellipsoid.E), l.n)
	} else {
		rho = l.c * math.Pow(math.Tan(quartPi+0.5*phi), -l.n)
	}
	lam *= l.n
	x := l.K0 * (rho * math.Sin(lam))
	y := l.K0 * (l.rho0 - rho*math.Cos(lam))
	return x, y, z, nil
}

func (l *lcc) inverse(x, y, z float64) (float64, float64, float64, error) {
	x /= l.K0
	y /= l.K0
	dy := l.rho0 - y
	rho := hypot(x, dy) * sign(l.n)
	lam := 0.0
	if rho != 0 {
		lam = math.Atan2(x, dy) / l.n
	}
	if l.ellips {
		ts := math.Pow(rho/l.c, 1/l.n)
		phi, err := phi2(l.Ellipsoid.E, ts)
		if err != nil {
			return 0, 0, z, err
		}
		return lam, phi, z, nil
	}
	phi := 2*math.Atan(math.Pow(l.c/rho, 1/l.n)) - halfPi
	return lam, phi, z, nil
}
