// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proj4

import "math"

// cea is the (Lambert) Cylindrical Equal-Area projection, grounded on
// Snyder's standard ellipsoidal formulas and sharing qFunc/phiFromQ with
// aea.go/laea.go.
type cea struct {
	*Base
	k0 float64
}

func newCEA(base *Base, p ParamBag) (projImpl, error) {
	c := &cea{Base: base, k0: 1}
	phits, ok, err := p.degree("lat_ts")
	if err != nil {
		return nil, err
	}
	if ok {
		phits = math.Abs(phits)
		if base.Ellipsoid.IsSphere {
			c.k0 = math.Cos(phits)
		} else {
			c.k0 = msfn(math.Sin(phits), math.Cos(phits), base.Ellipsoid.Es)
		}
	}
	return c, nil
}

func (c *cea) forward(lam, phi, z float64) (float64, float64, float64, error) {
	q := qFunc(c.Ellipsoid.Es, c.Ellipsoid.E, math.Sin(phi))
	x := c.k0 * lam
	y := q / (2 * c.k0)
	return x, y, z, nil
}

func (c *cea) inverse(x, y, z float64) (float64, float64, float64, error) {
	phi, err := phiFromQ(c.Ellipsoid.Es, c.Ellipsoid.E, y*2*c.k0)
	if err != nil {
		return 0, 0, z, err
	}
	lam := x / c.k0
	return lam, phi, z, nil
}
