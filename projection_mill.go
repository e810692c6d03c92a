// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proj4

import "math"

// mill is the Miller Cylindrical projection, a spherical-only compromise
// cylindrical grounded on Miller's 1942 construction (PROJ's mill.c): the
// meridian spacing of the Mercator projection is compressed by a factor of
// 0.8 before the inverse Gudermannian is applied, trading the pole
// singularity for bounded rather than equal-area distortion.
type mill struct {
	*Base
}

func newMill(base *Base, p ParamBag) (projImpl, error) {
	return &mill{base}, nil
}

func (m *mill) forward(lam, phi, z float64) (float64, float64, float64, error) {
	x := lam
	y := math.Log(math.Tan(quartPi+phi*0.4)) * 1.25
	return x, y, z, nil
}

func (m *mill) inverse(x, y, z float64) (float64, float64, float64, error) {
	lam := x
	phi := 2.5 * (math.Atan(math.Exp(y*0.8)) - quartPi)
	return lam, phi, z, nil
}
