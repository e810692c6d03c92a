// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proj4

import "math"

// stereoMode distinguishes the three aspects Snyder's ellipsoidal
// stereographic formulas branch on (Map Projections: A Working Manual,
// eqs. 21-3/21-4 for oblique/equatorial, 21-30/21-31 for polar).
type stereoMode int

const (
	stereObliq stereoMode = iota
	stereNPole
	stereSPole
)

// stere is the (oblique, equatorial, or polar) ellipsoidal or spherical
// Stereographic projection.
type stere struct {
	*Base
	mode       stereoMode
	sinChi1    float64
	cosChi1    float64
	akm1       float64 // 2*k0*m1/cos(chi1), unset (branch-specific) for polar
	poleFactor float64 // 2/sqrt((1+e)^(1+e)*(1-e)^(1-e)), polar aspect only; k0 applied at use
}

func newStere(base *Base, p ParamBag) (projImpl, error) {
	return buildStere(base, p, false)
}

func newUPS(base *Base, p ParamBag) (projImpl, error) {
	south, _ := p.bool("south")
	base.Phi0 = halfPi
	if south {
		base.Phi0 = -halfPi
	}
	base.K0 = 0.994
	base.X0 = 2000000
	base.Y0 = 2000000
	base.Lam0 = 0
	return buildStere(base, p, true)
}

func buildStere(base *Base, p ParamBag, polarOnly bool) (projImpl, error) {
	s := &stere{Base: base}
	switch {
	case math.Abs(base.Phi0-halfPi) < epsln:
		s.mode = stereNPole
	case math.Abs(base.Phi0+halfPi) < epsln:
		s.mode = stereSPole
	default:
		if polarOnly {
			return nil, errf(InvalidParameter, "newUPS", "lat_0", "UPS requires a polar origin")
		}
		s.mode = stereObliq
	}

	es := base.Ellipsoid.Es
	e := base.Ellipsoid.E
	if s.mode == stereNPole || s.mode == stereSPole {
		s.poleFactor = 2 / math.Sqrt(math.Pow(1+e, 1+e)*math.Pow(1-e, 1-e))
		if es == 0 {
			s.poleFactor = 2
		}
		return s, nil
	}

	chi1 := conformalLatitude(es, base.Phi0)
	s.sinChi1, s.cosChi1 = math.Sin(chi1), math.Cos(chi1)
	m1 := msfn(math.Sin(base.Phi0), math.Cos(base.Phi0), es)
	s.akm1 = 2 * base.K0 * m1 / s.cosChi1
	return s, nil
}

func (s *stere) forward(lam, phi, z float64) (float64, float64, float64, error) {
	es := s.Ellipsoid.Es
	e := s.Ellipsoid.E
	switch s.mode {
	case stereNPole, stereSPole:
		phiUse := phi
		if s.mode == stereSPole {
			phiUse = -phi
			lam = -lam
		}
		if math.Abs(halfPi-math.Abs(phiUse)) < 1e-12 {
			return 0, 0, z, nil
		}
		t := tsfn(phiUse, math.Sin(phiUse), e)
		rho := s.Base.K0 * s.poleFactor * t
		x := rho * math.Sin(lam)
		y := -rho * math.Cos(lam)
		if s.mode == stereSPole {
			y = -y
		}
		return x, y, z, nil
	default:
		chi := conformalLatitude(es, phi)
		sinChi, cosChi := math.Sin(chi), math.Cos(chi)
		cosLam, sinLam := math.Cos(lam), math.Sin(lam)
		denom := 1 + s.sinChi1*sinChi + s.cosChi1*cosChi*cosLam
		if denom < 1e-12 {
			return hugeVal, hugeVal, z, errf(DomainError, "stere.forward", "", "antipodal to the projection center")
		}
		a := s.akm1 / denom
		x := a * cosChi * sinLam
		y := a * (s.cosChi1*sinChi - s.sinChi1*cosChi*cosLam)
		return x, y, z, nil
	}
}

func (s *stere) inverse(x, y, z float64) (float64, float64, float64, error) {
	es := s.Ellipsoid.Es
	e := s.Ellipsoid.E
	switch s.mode {
	case stereNPole, stereSPole:
		rho := hypot(x, y)
		if rho < 1e-12 {
			phi := halfPi
			if s.mode == stereSPole {
				phi = -halfPi
			}
			return 0, phi, z, nil
		}
		t := rho / (s.Base.K0 * s.poleFactor)
		var lam float64
		if s.mode == stereNPole {
			lam = math.Atan2(x, -y)
		} else {
			lam = math.Atan2(-x, y)
		}
		phi, err := phi2(e, t)
		if err != nil {
			return 0, 0, z, err
		}
		if s.mode == stereSPole {
			phi = -phi
		}
		return lam, phi, z, nil
	default:
		rho := hypot(x, y)
		if rho < 1e-12 {
			return 0, s.asinConformalOrigin(), z, nil
		}
		c := 2 * math.Atan2(rho, s.akm1)
		sinc, cosc := math.Sin(c), math.Cos(c)
		sinChi := cosc*s.sinChi1 + y*sinc*s.cosChi1/rho
		lam := math.Atan2(x*sinc, rho*cosc*s.cosChi1-y*sinc*s.sinChi1)
		phi, err := geodeticLatitudeFromChi(es, sinChi)
		if err != nil {
			return 0, 0, z, err
		}
		return lam, phi, z, nil
	}
}

func (s *stere) asinConformalOrigin() float64 {
	phi, err := geodeticLatitudeFromChi(s.Ellipsoid.Es, s.sinChi1)
	if err != nil {
		return s.Phi0
	}
	return phi
}
