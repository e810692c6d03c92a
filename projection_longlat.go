// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proj4

// longlat is the identity projection over geographic coordinates, grounded
// on the teacher's LngLat (projections.go): forward divides by the
// semi-major axis so that Base.Forward's a-rescaling cancels back out to a
// plain angle, letting longlat share the common Forward/Inverse wrapper
// instead of needing its own bypass.
type longlat struct {
	*Base
}

func newLongLat(base *Base, p ParamBag) (projImpl, error) {
	return &longlat{base}, nil
}

func (ll *longlat) forward(lam, phi, z float64) (float64, float64, float64, error) {
	return lam / ll.Ellipsoid.A, phi / ll.Ellipsoid.A, z, nil
}

func (ll *longlat) inverse(x, y, z float64) (float64, float64, float64, error) {
	return x * ll.Ellipsoid.A, y * ll.Ellipsoid.A, z, nil
}
