// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proj4

import "math"

type laeaMode int

const (
	laeaObliq laeaMode = iota
	laeaNPole
	laeaSPole
)

// laea is the Lambert Azimuthal Equal-Area projection, grounded on
// Snyder's ellipsoidal formulas (Map Projections: A Working Manual, eqs.
// 24-17 through 24-29), sharing qFunc with aea.go/cea.go and the
// authalic-to-geodetic series with moll.go.
type laea struct {
	*Base
	mode       laeaMode
	qp, rq     float64
	sinB0, cosB0, d float64
	toGeodetic latitudeSeries
}

func newLAEA(base *Base, p ParamBag) (projImpl, error) {
	es := base.Ellipsoid.Es
	e := base.Ellipsoid.E
	l := &laea{Base: base, toGeodetic: authalicToGeodeticSeries(es)}
	l.qp = qFunc(es, e, 1)
	l.rq = math.Sqrt(l.qp / 2)

	switch {
	case math.Abs(base.Phi0-halfPi) < epsln:
		l.mode = laeaNPole
	case math.Abs(base.Phi0+halfPi) < epsln:
		l.mode = laeaSPole
	default:
		l.mode = laeaObliq
		q0 := qFunc(es, e, math.Sin(base.Phi0))
		beta0 := math.Asin(clamp(q0/l.qp, -1, 1))
		l.sinB0, l.cosB0 = math.Sin(beta0), math.Cos(beta0)
		m0 := msfn(math.Sin(base.Phi0), math.Cos(base.Phi0), es)
		l.d = m0 / (l.rq * l.cosB0)
	}
	return l, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (l *laea) forward(lam, phi, z float64) (float64, float64, float64, error) {
	es := l.Ellipsoid.Es
	e := l.Ellipsoid.E
	q := qFunc(es, e, math.Sin(phi))

	switch l.mode {
	case laeaNPole:
		rad := l.qp - q
		if rad < 0 {
			rad = 0
		}
		rho := l.rq * math.Sqrt(rad)
		return rho * math.Sin(lam), -rho * math.Cos(lam), z, nil
	case laeaSPole:
		rad := l.qp + q
		if rad < 0 {
			rad = 0
		}
		rho := l.rq * math.Sqrt(rad)
		return rho * math.Sin(lam), rho * math.Cos(lam), z, nil
	default:
		beta := math.Asin(clamp(q/l.qp, -1, 1))
		sinB, cosB := math.Sin(beta), math.Cos(beta)
		cosLam := math.Cos(lam)
		denom := 1 + l.sinB0*sinB + l.cosB0*cosB*cosLam
		if denom < 1e-12 {
			return hugeVal, hugeVal, z, errf(DomainError, "laea.forward", "", "antipodal to the projection center")
		}
		b := l.rq * math.Sqrt(2/denom)
		x := b * l.d * cosB * math.Sin(lam)
		y := (b / l.d) * (l.cosB0*sinB - l.sinB0*cosB*cosLam)
		return x, y, z, nil
	}
}

func (l *laea) inverse(x, y, z float64) (float64, float64, float64, error) {
	switch l.mode {
	case laeaNPole, laeaSPole:
		rho := hypot(x, y)
		if rho < 1e-12 {
			phi := halfPi
			if l.mode == laeaSPole {
				phi = -halfPi
			}
			return 0, phi, z, nil
		}
		var q float64
		if l.mode == laeaNPole {
			q = l.qp - rho*rho/(l.rq*l.rq)
		} else {
			q = rho*rho/(l.rq*l.rq) - l.qp
		}
		beta := math.Asin(clamp(q/l.qp, -1, 1))
		if l.mode == laeaSPole {
			beta = -beta
		}
		phi := l.toGeodetic.eval(beta)
		var lam float64
		if l.mode == laeaNPole {
			lam = math.Atan2(x, -y)
		} else {
			lam = math.Atan2(x, y)
		}
		return lam, phi, z, nil
	default:
		rho := hypot(x/l.d, y*l.d)
		if rho < 1e-12 {
			beta := math.Asin(l.sinB0)
			phi := l.toGeodetic.eval(beta)
			return 0, phi, z, nil
		}
		ce := 2 * math.Asin(rho/(2*l.rq))
		sinCe, cosCe := math.Sin(ce), math.Cos(ce)
		beta := math.Asin(clamp(cosCe*l.sinB0+(l.d*y*sinCe*l.cosB0)/rho, -1, 1))
		lam := math.Atan2(x*sinCe, l.d*rho*l.cosB0*cosCe-l.d*l.d*y*l.sinB0*sinCe)
		phi := l.toGeodetic.eval(beta)
		return lam, phi, z, nil
	}
}
