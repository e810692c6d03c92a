// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proj4

// Point is a mutable three-coordinate tuple, per spec.md §3: for a latlong
// Projection, X is longitude and Y is latitude, both radians; for a
// projected Projection, X/Y are in the Projection's linear unit post
// false-easting/northing; Z is height (geocentric meters, or ellipsoidal
// height) in every case.
type Point struct {
	X, Y, Z float64
}

// BatchResult reports how many points a Transform call processed cleanly,
// per spec.md §8's policy: "partial success is reported by how many points
// were processed cleanly", with the first failing index and its error kind
// surfaced rather than aborting the whole batch silently.
type BatchResult struct {
	Processed   int
	FailedIndex int
	Err         error
}

// Transform converts each point from source's CRS to target's CRS in
// place, following spec.md §4.6's pipeline: axis-denormalize -> source
// inverse (if projected) -> prime-meridian correction -> datum shift ->
// prime-meridian correction -> target forward (if projected) ->
// axis-normalize. A transform error for one point (Domain/Convergence) does
// not corrupt its neighbors: points before the failure are left converted,
// points from the failure onward are left untouched.
func Transform(source, target *Projection, points []Point) (BatchResult, error) {
	for i := range points {
		out, err := transformOne(source, target, points[i])
		if err != nil {
			return BatchResult{Processed: i, FailedIndex: i, Err: err}, err
		}
		points[i] = out
	}
	return BatchResult{Processed: len(points)}, nil
}

// TransformStrided is the flat-buffer counterpart to Transform, for callers
// holding packed coordinate arrays rather than a []Point (grounded on
// MichiHo/go-proj's ForwardFlatCoords(flatCoords, stride, zIndex, mIndex)
// naming). zIndex is the offset of the Z ordinate within each stride-wide
// record, or a negative value if the buffer carries no Z (treated as 0).
func TransformStrided(source, target *Projection, flat []float64, stride, zIndex int) (BatchResult, error) {
	if stride <= 0 {
		return BatchResult{}, errf(InvalidParameter, "TransformStrided", "stride", "stride must be positive, got %d", stride)
	}
	n := len(flat) / stride
	for i := 0; i < n; i++ {
		base := i * stride
		p := Point{X: flat[base], Y: flat[base+1]}
		if zIndex >= 0 && zIndex < stride {
			p.Z = flat[base+zIndex]
		}
		out, err := transformOne(source, target, p)
		if err != nil {
			return BatchResult{Processed: i, FailedIndex: i, Err: err}, err
		}
		flat[base] = out.X
		flat[base+1] = out.Y
		if zIndex >= 0 && zIndex < stride {
			flat[base+zIndex] = out.Z
		}
	}
	return BatchResult{Processed: n}, nil
}

func transformOne(source, target *Projection, p Point) (Point, error) {
	if source.Geoc() || target.Geoc() {
		return Point{}, newErr(Unsupported, "Transform", "geoc", ErrGeocentricLatitudeUnsupported)
	}
	// The same Projection on both sides is the identity, bit for bit.
	if source == target {
		return p, nil
	}

	x, y, z := axisDenormalize(source.Axis(), p.X, p.Y, p.Z)

	lon, lat, h, err := toGeodetic(source, x, y, z)
	if err != nil {
		return Point{}, err
	}

	lon, lat, h, err = datumShift(source.Datum(), target.Datum(), lon, lat, h)
	if err != nil {
		return Point{}, err
	}

	ox, oy, oz, err := fromGeodetic(target, lon, lat, h)
	if err != nil {
		return Point{}, err
	}

	ox, oy, oz = axisNormalize(target.Axis(), ox, oy, oz)
	return Point{X: ox, Y: oy, Z: oz}, nil
}

// toGeodetic resolves a Projection-native point to (lon, lat, h) relative to
// Greenwich on the Projection's own ellipsoid, ready for datumShift.
func toGeodetic(pr *Projection, x, y, z float64) (lon, lat, h float64, err error) {
	switch {
	case pr.IsGeocent():
		lon, lat, h = geocentricToGeodetic(pr.Ellipsoid(), x, y, z)
		return lon, lat, h, nil
	case pr.IsLatLong():
		return x + pr.PrimeMeridian().FromGreenwich, y, z, nil
	default:
		lam, phi, zo, err := pr.Inverse(x, y, z)
		if err != nil {
			return 0, 0, 0, err
		}
		return lam + pr.PrimeMeridian().FromGreenwich, phi, zo, nil
	}
}

// fromGeodetic is toGeodetic's converse: (lon, lat, h) relative to Greenwich
// on the target ellipsoid, already datum-shifted, to a Projection-native
// point.
func fromGeodetic(pr *Projection, lon, lat, h float64) (x, y, z float64, err error) {
	switch {
	case pr.IsGeocent():
		return geodeticToGeocentric(pr.Ellipsoid(), lon, lat, h)
	case pr.IsLatLong():
		return lon - pr.PrimeMeridian().FromGreenwich, lat, h, nil
	default:
		lam := lon - pr.PrimeMeridian().FromGreenwich
		return pr.Forward(lam, lat, h)
	}
}

// axisDenormalize maps a point expressed in the given axis orientation back
// to the canonical "enu" (east, north, up) ordering Forward/Inverse and the
// datum pipeline expect.
func axisDenormalize(axis string, a, b, c float64) (x, y, z float64) {
	vals := [3]float64{a, b, c}
	for i := 0; i < 3 && i < len(axis); i++ {
		v := vals[i]
		switch axis[i] {
		case 'e':
			x = v
		case 'w':
			x = -v
		case 'n':
			y = v
		case 's':
			y = -v
		case 'u':
			z = v
		case 'd':
			z = -v
		}
	}
	return x, y, z
}

// axisNormalize is axisDenormalize's converse: canonical "enu" to the given
// axis orientation, per spec.md's "+axis=wnu output is the negation of its
// +axis=enu counterpart in x".
func axisNormalize(axis string, x, y, z float64) (a, b, c float64) {
	out := [3]float64{}
	for i := 0; i < 3 && i < len(axis); i++ {
		switch axis[i] {
		case 'e':
			out[i] = x
		case 'w':
			out[i] = -x
		case 'n':
			out[i] = y
		case 's':
			out[i] = -y
		case 'u':
			out[i] = z
		case 'd':
			out[i] = -z
		}
	}
	return out[0], out[1], out[2]
}
