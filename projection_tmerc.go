// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proj4

import "math"

// krugerCoeffs holds the sixth-order Krüger/Redfearn plane-coordinate
// series coefficients derived from the ellipsoid's third flattening n,
// grounded on tzneal-coordconv's TransverseMercator.generateCoefficients
// (the "user defined ellipsoid" branch, which computes exactly this
// series) and cross-checked against PROJ's etmerc.c, the algorithm modern
// PROJ uses for both +proj=tmerc and +proj=etmerc (tmerc only reverts to
// an older truncated series under +approx, which this package does not
// implement). gtu maps the conformal sphere's (U,V) to the plane; utg is
// its series inverse; Qn is the isoperimetric-radius ratio (R4/a in the
// reference); Zb is the false-northing-at-phi0 offset.
type krugerCoeffs struct {
	utg, gtu [6]float64
	Qn, Zb   float64
}

func deriveKruger(es, phi0 float64) krugerCoeffs {
	n := es / (1 + math.Sqrt(1-es))
	n = n / (2 - n)

	var k krugerCoeffs
	np := n
	k.gtu[0] = n * (0.5 + n*(-2.0/3+n*(5.0/16+n*(41.0/180+n*(-127.0/288+n*(7891.0/37800))))))
	k.utg[0] = n * (-0.5 + n*(2.0/3+n*(-37.0/96+n*(1.0/360+n*(81.0/512+n*(-96199.0/604800))))))
	np *= n
	k.gtu[1] = np * (13.0/48 + n*(-3.0/5+n*(557.0/1440+n*(281.0/630+n*(-1983433.0/1935360)))))
	k.utg[1] = np * (-1.0/48 + n*(-1.0/15+n*(437.0/1440+n*(-46.0/105+n*(1118711.0/3870720)))))
	np *= n
	k.gtu[2] = np * (61.0/240 + n*(-103.0/140+n*(15061.0/26880+n*(167603.0/181440))))
	k.utg[2] = np * (-17.0/480 + n*(37.0/840+n*(209.0/4480+n*(-5569.0/90720))))
	np *= n
	k.gtu[3] = np * (49561.0/161280 + n*(-179.0/168+n*(6601661.0/7257600)))
	k.utg[3] = np * (-4397.0/161280 + n*(11.0/504+n*(830251.0/7257600)))
	np *= n
	k.gtu[4] = np * (34729.0/80640 + n*(-3418889.0/1995840))
	k.utg[4] = np * (-4583.0/161280 + n*(108847.0/3991680))
	np *= n
	k.gtu[5] = np * (212378941.0 / 319334400)
	k.utg[5] = np * (-20648693.0 / 638668800)

	n2 := n * n
	k.Qn = 1.0 / (1 + n) * (1 + n2*(1.0/4+n2*(1.0/64+n2/256)))

	chi0 := conformalLatitude(es, phi0)
	yStar0 := chi0 + clenshawSin(chi0, k.gtu[:])
	k.Zb = -k.Qn * yStar0
	return k
}

// conformalLatitude computes the conformal latitude chi from geodetic
// latitude phi via the closed-form isometric-latitude route (psi =
// asinh(tan phi) - e*atanh(e*sin phi), chi = gd(psi) = atan(sinh(psi))),
// equivalent to but numerically more direct than evaluating a truncated
// series for the same quantity.
func conformalLatitude(es, phi float64) float64 {
	e := math.Sqrt(es)
	sinPhi := math.Sin(phi)
	psi := math.Asinh(math.Tan(phi)) - e*math.Atanh(e*sinPhi)
	return math.Atan(math.Sinh(psi))
}

// geodeticLatitudeFromChi inverts conformalLatitude by fixed-point
// iteration on sin(chi), grounded on tzneal-coordconv's geodeticLat.
func geodeticLatitudeFromChi(es float64, sinChi float64) (float64, error) {
	e := math.Sqrt(es)
	s := sinChi
	onePlusSinChi := 1 + sinChi
	oneMinusSinChi := 1 - sinChi
	for i := 0; i < newtonMaxIter; i++ {
		p := math.Exp(e * math.Atanh(e*s))
		pSq := p * p
		sNew := (onePlusSinChi*pSq - oneMinusSinChi) / (onePlusSinChi*pSq + oneMinusSinChi)
		if math.Abs(sNew-s) < newtonTolerance {
			return math.Asin(sNew), nil
		}
		s = sNew
	}
	return 0, errf(Convergence, "geodeticLatitudeFromChi", "", "conformal-to-geodetic latitude recovery did not converge")
}

// kruger is the shared Gauss-Krüger engine behind +proj=tmerc, +proj=etmerc
// and +proj=utm: all three differ only in how Lam0/K0/X0/Y0 are derived,
// not in the projection math itself.
type kruger struct {
	*Base
	k krugerCoeffs
}

func newKrugerProjection(base *Base) *kruger {
	return &kruger{Base: base, k: deriveKruger(base.Ellipsoid.Es, base.Phi0)}
}

func newTMerc(base *Base, p ParamBag) (projImpl, error) {
	return newKrugerProjection(base), nil
}

func newETMerc(base *Base, p ParamBag) (projImpl, error) {
	return newKrugerProjection(base), nil
}

// newUTM derives the zone-based lon_0/k0/x0/y0 conventions (+zone= or
// computed from lon_0, +south) then builds the same Krüger engine.
func newUTM(base *Base, p ParamBag) (projImpl, error) {
	var zone int
	if z, ok := p.int("zone"); ok {
		if z < 1 || z > 60 {
			return nil, errf(InvalidParameter, "newUTM", "zone", "zone must be in [1,60], got %d", z)
		}
		zone = z
	} else {
		zone = int((adjlon(base.Lam0)+math.Pi)/(6*deg2rad)) + 1
		if zone < 1 {
			zone = 1
		} else if zone > 60 {
			zone = 60
		}
	}
	base.Lam0 = (float64(zone)*6 - 183) * deg2rad
	base.X0 = 500000
	base.K0 = 0.9996
	if south, _ := p.bool("south"); south {
		base.Y0 = 10000000
	} else {
		base.Y0 = 0
	}
	base.Phi0 = 0
	return newKrugerProjection(base), nil
}

func (t *kruger) forward(lam, phi, z float64) (float64, float64, float64, error) {
	chi := conformalLatitude(t.Ellipsoid.Es, phi)
	cosChi, sinChi := math.Cos(chi), math.Sin(chi)
	sinLam, cosLam := math.Sin(lam), math.Cos(lam)

	u := math.Atanh(cosChi * sinLam)
	v := math.Atan2(sinChi, cosChi*cosLam)

	corr := clensCmplx(t.k.gtu[:], cpx{v, u})
	xStar := u + corr.im
	yStar := v + corr.re

	x := t.K0 * t.k.Qn * xStar
	y := t.K0*t.k.Qn*yStar + t.k.Zb*t.K0
	return x, y, z, nil
}

func (t *kruger) inverse(x, y, z float64) (float64, float64, float64, error) {
	xStar := x / (t.K0 * t.k.Qn)
	yStar := (y - t.k.Zb*t.K0) / (t.K0 * t.k.Qn)

	corr := clensCmplx(t.k.utg[:], cpx{yStar, xStar})
	u := xStar + corr.im
	v := yStar + corr.re

	coshU, sinhU := math.Cosh(u), math.Sinh(u)
	cosV, sinV := math.Cos(v), math.Sin(v)

	var lam float64
	if math.Abs(cosV) < 1e-12 && math.Abs(coshU) < 1e-12 {
		lam = 0
	} else {
		lam = math.Atan2(sinhU, cosV)
	}
	sinChi := sinV / coshU
	phi, err := geodeticLatitudeFromChi(t.Ellipsoid.Es, sinChi)
	if err != nil {
		return 0, 0, z, err
	}
	return lam, phi, z, nil
}
