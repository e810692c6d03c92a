// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proj4

import "math"

type aeqdMode int

const (
	aeqdObliq aeqdMode = iota
	aeqdNPole
	aeqdSPole
)

// aeqd is the Azimuthal Equidistant projection: every point is plotted at
// its true distance and azimuth from the projection center. The spherical
// case follows Snyder's closed-form construction (Map Projections: A
// Working Manual, eqs. 25-1..25-9); the ellipsoidal case instead solves the
// true ellipsoidal geodesic between the center and the point being
// projected via geodesic.go's Vincenty direct/inverse pair, which is exact
// rather than a series approximation.
type aeqd struct {
	*Base
	mode         aeqdMode
	sinPhi1, cosPhi1 float64
}

func newAEQD(base *Base, p ParamBag) (projImpl, error) {
	a := &aeqd{Base: base}
	switch {
	case math.Abs(base.Phi0-halfPi) < epsln:
		a.mode = aeqdNPole
	case math.Abs(base.Phi0+halfPi) < epsln:
		a.mode = aeqdSPole
	default:
		a.mode = aeqdObliq
	}
	a.sinPhi1, a.cosPhi1 = math.Sin(base.Phi0), math.Cos(base.Phi0)
	return a, nil
}

func (a *aeqd) forward(lam, phi, z float64) (float64, float64, float64, error) {
	if !a.Ellipsoid.IsSphere {
		dist, azimuth, err := vincentyInverse(a.Ellipsoid, a.Phi0, 0, phi, lam)
		if err != nil {
			return 0, 0, z, err
		}
		dist /= a.Ellipsoid.A
		x := dist * math.Sin(azimuth)
		y := dist * math.Cos(azimuth)
		return x, y, z, nil
	}

	sinPhi, cosPhi := math.Sin(phi), math.Cos(phi)
	cosLam := math.Cos(lam)
	cosc := a.sinPhi1*sinPhi + a.cosPhi1*cosPhi*cosLam
	cosc = clamp(cosc, -1, 1)
	c := math.Acos(cosc)
	if c < epsln {
		return 0, 0, z, nil
	}
	kp := c / math.Sin(c)
	x := kp * cosPhi * math.Sin(lam)
	y := kp * (a.cosPhi1*sinPhi - a.sinPhi1*cosPhi*cosLam)
	return x, y, z, nil
}

func (a *aeqd) inverse(x, y, z float64) (float64, float64, float64, error) {
	if !a.Ellipsoid.IsSphere {
		rho := hypot(x, y)
		if rho < 1e-12 {
			return 0, a.Phi0, z, nil
		}
		azimuth := math.Atan2(x, y)
		dist := rho * a.Ellipsoid.A
		phi, lam, err := vincentyDirect(a.Ellipsoid, a.Phi0, 0, azimuth, dist)
		if err != nil {
			return 0, 0, z, err
		}
		return lam, phi, z, nil
	}

	rho := hypot(x, y)
	if rho < epsln {
		return 0, a.Phi0, z, nil
	}
	c := rho
	sinC, cosC := math.Sin(c), math.Cos(c)
	phi := math.Asin(clamp(cosC*a.sinPhi1+(y*sinC*a.cosPhi1)/rho, -1, 1))
	var lam float64
	if a.mode == aeqdNPole {
		lam = math.Atan2(x, -y)
	} else if a.mode == aeqdSPole {
		lam = math.Atan2(x, y)
	} else {
		lam = math.Atan2(x*sinC, rho*a.cosPhi1*cosC-y*a.sinPhi1*sinC)
	}
	return lam, phi, z, nil
}
