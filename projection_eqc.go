// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proj4

import "math"

// eqc is the Plate Carree / Equidistant Cylindrical projection, grounded on
// the teacher's Equirectangular (projections.go): x scales by cos(lat_1),
// y is the bare latitude.
type eqc struct {
	*Base
	cosPhi1 float64
}

func newEQC(base *Base, p ParamBag) (projImpl, error) {
	phi1, err := p.degreeOr("lat_1", 0)
	if err != nil {
		return nil, err
	}
	cosPhi1 := math.Cos(phi1)
	if math.Abs(cosPhi1) < epsln {
		return nil, errf(InvalidParameter, "newEQC", "lat_1", "lat_1 too close to a pole (cos(lat_1)=%g)", cosPhi1)
	}
	return &eqc{Base: base, cosPhi1: cosPhi1}, nil
}

func (e *eqc) forward(lam, phi, z float64) (float64, float64, float64, error) {
	x := lam * e.cosPhi1
	y := phi
	return x, y, z, nil
}

func (e *eqc) inverse(x, y, z float64) (float64, float64, float64, error) {
	lam := x / e.cosPhi1
	phi := y
	return lam, phi, z, nil
}
