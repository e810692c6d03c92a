// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proj4

import "math"

// geos is the Geostationary Satellite View projection (the view a
// satellite at height +h above the equator, sweeping along +x or +y, sees
// of the ellipsoid), grounded on the standard PROJ/d3-geo-projection
// construction: geodetic latitude is first converted to geocentric
// latitude via the b/a axis ratio, a point on the ray from the satellite
// through the ellipsoid surface is found, then its view-plane angle is
// read off along whichever axis the sensor sweeps.
type geos struct {
	*Base
	h                               float64
	radiusP, radiusP2, radiusPInv2 float64
	radiusG, radiusG1              float64
	flipAxis                       bool
}

func newGeos(base *Base, p ParamBag) (projImpl, error) {
	h, ok := p.float("h")
	if !ok || h <= 0 {
		return nil, errf(InvalidParameter, "newGeos", "h", "+h (satellite height) is mandatory and must be positive")
	}
	sweep, _ := p.str("sweep")
	g := &geos{Base: base, h: h, flipAxis: sweep == "x"}
	g.radiusP = base.Ellipsoid.B / base.Ellipsoid.A
	g.radiusP2 = g.radiusP * g.radiusP
	g.radiusPInv2 = 1 / g.radiusP2
	g.radiusG1 = h / base.Ellipsoid.A
	g.radiusG = 1 + g.radiusG1
	return g, nil
}

func (g *geos) forward(lam, phi, z float64) (float64, float64, float64, error) {
	phiGeocentric := math.Atan(g.radiusP2 * math.Tan(phi))
	cosPhi, sinPhi := math.Cos(phiGeocentric), math.Sin(phiGeocentric)
	r := g.radiusP / math.Sqrt(g.radiusP2*cosPhi*cosPhi+sinPhi*sinPhi)

	vx := r * math.Cos(lam) * cosPhi
	vy := r * math.Sin(lam) * cosPhi
	vz := r * sinPhi

	if (g.radiusG-vx)*vx-vy*vy-vz*vz*g.radiusPInv2 < 0 {
		return hugeVal, hugeVal, z, errf(DomainError, "geos.forward", "", "point is not visible from the satellite")
	}
	tmp := g.radiusG - vx
	var x, y float64
	if g.flipAxis {
		x = g.radiusG1 * math.Atan(vy/hypot(tmp, vz))
		y = g.radiusG1 * math.Atan(vz/tmp)
	} else {
		x = g.radiusG1 * math.Atan(vy/tmp)
		y = g.radiusG1 * math.Atan(vz/hypot(tmp, vy))
	}
	return x, y, z, nil
}

func (g *geos) inverse(x, y, z float64) (float64, float64, float64, error) {
	x /= g.radiusG1
	y /= g.radiusG1

	var vy, vz float64
	if g.flipAxis {
		vz = math.Tan(y)
		vy = math.Tan(x) * math.Hypot(1, vz)
	} else {
		vy = math.Tan(x)
		vz = math.Tan(y) * math.Hypot(1, vy)
	}

	a := vy*vy + vz*vz/g.radiusP2 + 1
	b := -2 * g.radiusG
	c := g.radiusG*g.radiusG - 1
	det := b*b - 4*a*c
	if det < 0 {
		return 0, 0, z, errf(DomainError, "geos.inverse", "", "point does not intersect the ellipsoid")
	}
	k := (-b - math.Sqrt(det)) / (2 * a)
	vx := g.radiusG - k
	vy *= k
	vz *= k

	lam := math.Atan2(vy, vx)
	phi := math.Atan(vz * math.Cos(lam) / vx)
	phi = math.Atan(g.radiusPInv2 * math.Tan(phi))
	return lam, phi, z, nil
}
