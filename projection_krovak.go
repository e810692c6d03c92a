// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proj4

import "math"

// krovak is the Czech/Slovak national oblique conformal conic (S-JTSK),
// grounded on the standard Krovak construction shared by PROJ's krovak.c and
// proj4js's krovak.js: the ellipsoid is mapped to a conformal sphere, the
// sphere is rotated so its pole sits at the oblique pseudo standard
// parallel the S-JTSK grid is built on, and a conformal conic is applied on
// that rotated sphere.
type krovak struct {
	*Base
	alpha, k, n, ro0, ad, u0 float64
}

func newKrovak(base *Base, p ParamBag) (projImpl, error) {
	e := base.Ellipsoid
	phi0 := base.Phi0
	if phi0 == 0 {
		phi0 = 49.5 * deg2rad
	}
	phiC, err := p.degreeOr("lat_2", 78.5*deg2rad)
	if err != nil {
		return nil, err
	}
	k1 := 0.9999
	if v, ok := p.float("k"); ok {
		k1 = v
	}

	es := e.Es
	ecc := e.E
	alpha := math.Sqrt(1 + es*math.Pow(math.Cos(phi0), 4)/(1-es))
	u0 := math.Asin(math.Sin(phi0) / alpha)
	g := math.Pow((1+ecc*math.Sin(phi0))/(1-ecc*math.Sin(phi0)), alpha*ecc/2)
	k0 := math.Tan(u0/2+quartPi) / math.Pow(math.Tan(phi0/2+quartPi), alpha) * g
	n0 := e.A * math.Sqrt(1-es) / (1 - es*math.Sin(phi0)*math.Sin(phi0))

	kr := &krovak{Base: base}
	kr.alpha = alpha
	kr.k = k0
	kr.u0 = u0
	kr.ad = halfPi - phiC
	kr.n = math.Sin(phiC)
	kr.ro0 = n0 * k1 / math.Tan(phiC)
	return kr, nil
}

func (k *krovak) forward(lam, phi, z float64) (float64, float64, float64, error) {
	e := k.Ellipsoid
	gfi := math.Pow((1-e.E*math.Sin(phi))/(1+e.E*math.Sin(phi)), k.alpha*e.E/2)
	u := 2 * (math.Atan(k.k*math.Pow(math.Tan(phi/2+quartPi), k.alpha)*gfi) - quartPi)
	deltaV := -lam * k.alpha

	s := math.Asin(math.Cos(k.ad)*math.Sin(u) + math.Sin(k.ad)*math.Cos(u)*math.Cos(deltaV))
	d := math.Asin(math.Cos(u) * math.Sin(deltaV) / math.Cos(s))
	eps := k.n * d
	ro := k.ro0 * math.Pow(math.Tan(k.u0/2+quartPi), k.n) / math.Pow(math.Tan(s/2+quartPi), k.n)

	x := ro * math.Cos(eps) / k.Ellipsoid.A
	y := ro * math.Sin(eps) / k.Ellipsoid.A
	return x, y, z, nil
}

func (k *krovak) inverse(x, y, z float64) (float64, float64, float64, error) {
	x *= k.Ellipsoid.A
	y *= k.Ellipsoid.A

	ro := hypot(x, y)
	eps := math.Atan2(y, x)
	d := eps / k.n
	s := 2 * (math.Atan(math.Pow(k.ro0/ro, 1/k.n)*math.Tan(k.u0/2+quartPi)) - quartPi)

	u := math.Asin(math.Cos(k.ad)*math.Sin(s) - math.Sin(k.ad)*math.Cos(s)*math.Cos(d))
	deltaV := math.Asin(math.Cos(s) * math.Sin(d) / math.Cos(u))
	lam := -deltaV / k.alpha

	e := k.Ellipsoid
	phi := u
	converged := false
	for i := 0; i < newtonMaxIter; i++ {
		gfi := math.Pow((1+e.E*math.Sin(phi))/(1-e.E*math.Sin(phi)), e.E/2)
		phiNext := 2 * (math.Atan(math.Pow(k.k, -1/k.alpha)*math.Pow(math.Tan(u/2+quartPi), 1/k.alpha)*gfi) - quartPi)
		if math.Abs(phiNext-phi) < newtonTolerance {
			phi = phiNext
			converged = true
			break
		}
		phi = phiNext
	}
	if !converged {
		return hugeVal, hugeVal, z, errf(Convergence, "krovak.inverse", "", "geodetic latitude recovery did not converge")
	}
	return lam, phi, z, nil
}
