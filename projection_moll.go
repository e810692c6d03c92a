// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proj4

import "math"

// moll is the Mollweide pseudocylindrical equal-area projection. The
// classic spherical construction (theta solving theta+sin(theta) =
// pi*sin(phi) by Newton iteration, x=Cx*lam*cos(theta/2), y=Cy*sin(theta/2))
// is generalized to the ellipsoid the same way laea.go is: geodetic
// latitude is first mapped to Snyder's authalic latitude via qFunc so the
// equal-area property is preserved, then mapped back on the way out via
// authalicToGeodeticSeries.
type moll struct {
	*Base
	cx, cy, cp float64
	toGeodetic latitudeSeries
}

func newMoll(base *Base, p ParamBag) (projImpl, error) {
	return &moll{
		Base: base, cx: 2 * math.Sqrt2 / math.Pi, cy: math.Sqrt2, cp: math.Pi,
		toGeodetic: authalicToGeodeticSeries(base.Ellipsoid.Es),
	}, nil
}

func (m *moll) authalicBetaSin(phi float64) float64 {
	es := m.Ellipsoid.Es
	if es == 0 {
		return math.Sin(phi)
	}
	qp := qFunc(es, m.Ellipsoid.E, 1)
	q := qFunc(es, m.Ellipsoid.E, math.Sin(phi))
	return q / qp
}

func (m *moll) forward(lam, phi, z float64) (float64, float64, float64, error) {
	k := m.cp * m.authalicBetaSin(phi)
	theta := phi
	converged := false
	for i := 0; i < newtonMaxIter; i++ {
		v := (theta + math.Sin(theta) - k) / (1 + math.Cos(theta))
		theta -= v
		if math.Abs(v) < newtonTolerance {
			converged = true
			break
		}
	}
	if !converged {
		return hugeVal, hugeVal, z, errf(Convergence, "moll.forward", "", "theta recovery did not converge")
	}
	half := theta / 2
	x := m.cx * lam * math.Cos(half)
	y := m.cy * math.Sin(half)
	return x, y, z, nil
}

func (m *moll) inverse(x, y, z float64) (float64, float64, float64, error) {
	arg := clamp(y/m.cy, -1, 1)
	half := math.Asin(arg)
	theta := 2 * half
	sinBeta := clamp((theta+math.Sin(theta))/m.cp, -1, 1)
	var phi float64
	if m.Ellipsoid.Es == 0 {
		phi = math.Asin(sinBeta)
	} else {
		beta := math.Asin(sinBeta)
		phi = m.toGeodetic.eval(beta)
	}
	lam := x / (m.cx * math.Cos(half))
	return lam, phi, z, nil
}

// wag4 (Wagner IV) trades Mollweide's iterative theta solve for a direct
// latitude rescaling, grounded on PROJ's wag4.c constants.
type wag4 struct {
	*Base
}

func newWag4(base *Base, p ParamBag) (projImpl, error) {
	return &wag4{base}, nil
}

func (w *wag4) forward(lam, phi, z float64) (float64, float64, float64, error) {
	phi = math.Asin(clamp(0.71086*math.Sin(phi), -1, 1))
	x := 0.86310 * lam * math.Cos(phi)
	y := 1.56548 * math.Sin(phi)
	return x, y, z, nil
}

func (w *wag4) inverse(x, y, z float64) (float64, float64, float64, error) {
	phi := math.Asin(clamp(y/1.56548, -1, 1))
	lam := x / (0.86310 * math.Cos(phi))
	phi = math.Asin(clamp(math.Sin(phi)/0.71086, -1, 1))
	return lam, phi, z, nil
}

// wag5 (Wagner V) is another direct (non-iterative) pseudocylindrical
// equal-area variant, grounded on PROJ's wag5.c constants; spherical only,
// matching PROJ's own support.
type wag5 struct {
	*Base
}

func newWag5(base *Base, p ParamBag) (projImpl, error) {
	return &wag5{base}, nil
}

func (w *wag5) forward(lam, phi, z float64) (float64, float64, float64, error) {
	x := 0.90977 * lam * math.Cos(0.6416*phi)
	y := 1.65014 * math.Sin(0.6416*phi)
	return x, y, z, nil
}

func (w *wag5) inverse(x, y, z float64) (float64, float64, float64, error) {
	phi := math.Asin(clamp(y/1.65014, -1, 1)) / 0.6416
	lam := x / (0.90977 * math.Cos(0.6416*phi))
	return lam, phi, z, nil
}
