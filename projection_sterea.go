// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proj4

import "math"

// sterea is the Oblique Stereographic Alternative, grounded on PROJ's
// PJ_sterea.c / gauss.c double-projection (ellipsoid -> Gauss conformal
// sphere -> spherical oblique stereographic), the construction used for
// the Dutch RD and Romanian Stereo 1970 grids. Kept distinct from stere
// (Snyder's single-step conformal-latitude substitution) because the two
// disagree below ~1e-7 away from the tangent point -- the difference
// spec.md's round-trip tolerance would otherwise mask.
type sterea struct {
	*Base
	c, k0gauss float64
	sinPhi0s   float64
	cosPhi0s   float64
	bigK       float64
}

func newSterea(base *Base, p ParamBag) (projImpl, error) {
	es := base.Ellipsoid.Es
	e := base.Ellipsoid.E
	phi0 := base.Phi0

	s := &sterea{Base: base}
	cosPhi0 := math.Cos(phi0)
	s.c = math.Sqrt(1 + es*cosPhi0*cosPhi0*cosPhi0*cosPhi0/(1-es))
	phi0s := math.Asin(math.Sin(phi0) / s.c)
	s.bigK = math.Tan(0.5*phi0s+quartPi) /
		(math.Pow(math.Tan(0.5*phi0+quartPi), s.c) *
			math.Pow((1-e*math.Sin(phi0))/(1+e*math.Sin(phi0)), s.c*e/2))
	s.sinPhi0s, s.cosPhi0s = math.Sin(phi0s), math.Cos(phi0s)
	s.k0gauss = base.K0
	return s, nil
}

func (s *sterea) gaussForward(lam, phi float64) (lamc, phic float64) {
	e := s.Ellipsoid.E
	sinPhi := math.Sin(phi)
	phic = 2*math.Atan(s.bigK*math.Pow(math.Tan(0.5*phi+quartPi), s.c)*
		math.Pow((1-e*sinPhi)/(1+e*sinPhi), s.c*e/2)) - halfPi
	lamc = s.c * lam
	return
}

func (s *sterea) gaussInverse(lamc, phic float64) (lam, phi float64, err error) {
	e := s.Ellipsoid.E
	num := math.Pow(math.Tan(0.5*phic+quartPi)/s.bigK, 1/s.c)
	phi = 2*math.Atan(num) - halfPi
	converged := false
	for i := 0; i < newtonMaxIter; i++ {
		sinPhi := math.Sin(phi)
		next := 2*math.Atan(num*math.Pow((1+e*sinPhi)/(1-e*sinPhi), e/2)) - halfPi
		if math.Abs(next-phi) < newtonTolerance {
			phi = next
			converged = true
			break
		}
		phi = next
	}
	if !converged {
		return 0, 0, errf(Convergence, "sterea.gaussInverse", "", "Gauss-sphere latitude recovery did not converge")
	}
	lam = lamc / s.c
	return lam, phi, nil
}

func (s *sterea) forward(lam, phi, z float64) (float64, float64, float64, error) {
	lamc, phic := s.gaussForward(lam, phi)
	sinPhic, cosPhic := math.Sin(phic), math.Cos(phic)
	denom := 1 + s.sinPhi0s*sinPhic + s.cosPhi0s*cosPhic*math.Cos(lamc)
	if denom < 1e-12 {
		return hugeVal, hugeVal, z, errf(DomainError, "sterea.forward", "", "antipodal to the projection center")
	}
	k := 2 * s.k0gauss / denom
	x := k * cosPhic * math.Sin(lamc)
	y := k * (s.cosPhi0s*sinPhic - s.sinPhi0s*cosPhic*math.Cos(lamc))
	return x, y, z, nil
}

func (s *sterea) inverse(x, y, z float64) (float64, float64, float64, error) {
	rho := hypot(x, y)
	if rho < 1e-12 {
		lam, phi, err := s.gaussInverse(0, math.Asin(s.sinPhi0s))
		if err != nil {
			return hugeVal, hugeVal, z, err
		}
		return lam, phi, z, nil
	}
	c := 2 * math.Atan2(rho, 2*s.k0gauss)
	sinc, cosc := math.Sin(c), math.Cos(c)
	phic := math.Asin(cosc*s.sinPhi0s + y*sinc*s.cosPhi0s/rho)
	lamc := math.Atan2(x*sinc, rho*s.cosPhi0s*cosc-y*s.sinPhi0s*sinc)
	lam, phi, err := s.gaussInverse(lamc, phic)
	if err != nil {
		return hugeVal, hugeVal, z, err
	}
	return lam, phi, z, nil
}
