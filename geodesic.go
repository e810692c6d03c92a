// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proj4

import "math"

// geodesic solves the ellipsoidal direct geodesic problem (distance +
// initial azimuth -> destination point), grounded on
// starboard-nz/go-geodesy's VincentyDirect (T. Vincenty, "Direct and
// Inverse Solutions of Geodesics on the Ellipsoid", Survey Review XXIII
// 176, 1975). It is the "external collaborator" spec.md's Open Questions
// call for: the only caller is aeqd's ellipsoidal inverse, which is gated
// on vincentyDirect converging.
const (
	geodesicTolerance = 1e-12
	geodesicMaxIter   = 200
)

// vincentyDirect returns the destination point (lat2, lon2) reached by
// travelling distance meters along initial azimuth alpha1 (radians, from
// north) starting at (lat1, lon1) on ellipsoid e.
func vincentyDirect(e Ellipsoid, lat1, lon1, alpha1, distance float64) (lat2, lon2 float64, err error) {
	a := e.A
	b := e.B
	f := 1 - b/a

	sinAlpha1 := math.Sin(alpha1)
	cosAlpha1 := math.Cos(alpha1)

	tanU1 := (1 - f) * math.Tan(lat1)
	cosU1 := 1 / math.Sqrt(1+tanU1*tanU1)
	sinU1 := tanU1 * cosU1

	sigma1 := math.Atan2(tanU1, cosAlpha1)
	sinAlpha := cosU1 * sinAlpha1
	cosSqAlpha := 1 - sinAlpha*sinAlpha
	uSq := cosSqAlpha * (a*a - b*b) / (b * b)
	bigA := 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
	bigB := uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))

	sigma := distance / (b * bigA)
	var sinSigma, cosSigma, cos2SigmaM, deltaSigma float64
	prevSigma := sigma
	converged := false
	for i := 0; i < geodesicMaxIter; i++ {
		cos2SigmaM = math.Cos(2*sigma1 + sigma)
		sinSigma = math.Sin(sigma)
		cosSigma = math.Cos(sigma)
		deltaSigma = bigB * sinSigma * (cos2SigmaM + bigB/4*(cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)-
			bigB/6*cos2SigmaM*(-3+4*sinSigma*sinSigma)*(-3+4*cos2SigmaM*cos2SigmaM)))
		prevSigma = sigma
		sigma = distance/(b*bigA) + deltaSigma
		if math.Abs(sigma-prevSigma) <= geodesicTolerance {
			converged = true
			break
		}
	}
	if !converged {
		return 0, 0, errf(Convergence, "vincentyDirect", "", "direct geodesic problem did not converge")
	}

	x := sinU1*sinSigma - cosU1*cosSigma*cosAlpha1
	lat2 = math.Atan2(sinU1*cosSigma+cosU1*sinSigma*cosAlpha1, (1-f)*math.Sqrt(sinAlpha*sinAlpha+x*x))
	lambda := math.Atan2(sinSigma*sinAlpha1, cosU1*cosSigma-sinU1*sinSigma*cosAlpha1)
	c := f / 16 * cosSqAlpha * (4 + f*(4-3*cosSqAlpha))
	l := lambda - (1-c)*f*sinAlpha*(sigma+c*sinSigma*(cos2SigmaM+c*cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)))
	lon2 = lon1 + l
	return lat2, lon2, nil
}

// vincentyInverse solves the companion inverse geodesic problem (two
// points -> distance + initial azimuth), the same Vincenty (1975)
// formulation as vincentyDirect. aeqd's ellipsoidal forward uses this to
// find the distance and azimuth from the projection center to the point
// being projected.
func vincentyInverse(e Ellipsoid, lat1, lon1, lat2, lon2 float64) (distance, alpha1 float64, err error) {
	a := e.A
	b := e.B
	f := 1 - b/a

	l := lon2 - lon1
	tanU1 := (1 - f) * math.Tan(lat1)
	cosU1 := 1 / math.Sqrt(1+tanU1*tanU1)
	sinU1 := tanU1 * cosU1
	tanU2 := (1 - f) * math.Tan(lat2)
	cosU2 := 1 / math.Sqrt(1+tanU2*tanU2)
	sinU2 := tanU2 * cosU2

	lambda := l
	if lambda == 0 && lat1 == lat2 {
		return 0, 0, nil
	}

	var sinSigma, cosSigma, sigma, cosSqAlpha, cos2SigmaM, sinLambda, cosLambda float64
	converged := false
	for i := 0; i < geodesicMaxIter; i++ {
		sinLambda = math.Sin(lambda)
		cosLambda = math.Cos(lambda)
		sinSigma = math.Sqrt(math.Pow(cosU2*sinLambda, 2) + math.Pow(cosU1*sinU2-sinU1*cosU2*cosLambda, 2))
		if sinSigma == 0 {
			return 0, 0, nil
		}
		cosSigma = sinU1*sinU2 + cosU1*cosU2*cosLambda
		sigma = math.Atan2(sinSigma, cosSigma)
		sinAlpha := cosU1 * cosU2 * sinLambda / sinSigma
		cosSqAlpha = 1 - sinAlpha*sinAlpha
		if cosSqAlpha != 0 {
			cos2SigmaM = cosSigma - 2*sinU1*sinU2/cosSqAlpha
		} else {
			cos2SigmaM = 0
		}
		c := f / 16 * cosSqAlpha * (4 + f*(4-3*cosSqAlpha))
		prevLambda := lambda
		lambda = l + (1-c)*f*sinAlpha*(sigma+c*sinSigma*(cos2SigmaM+c*cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)))
		if math.Abs(lambda-prevLambda) <= geodesicTolerance {
			converged = true
			break
		}
	}
	if !converged {
		return 0, 0, errf(Convergence, "vincentyInverse", "", "inverse geodesic problem did not converge")
	}

	uSq := cosSqAlpha * (a*a - b*b) / (b * b)
	bigA := 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
	bigB := uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))
	deltaSigma := bigB * sinSigma * (cos2SigmaM + bigB/4*(cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)-
		bigB/6*cos2SigmaM*(-3+4*sinSigma*sinSigma)*(-3+4*cos2SigmaM*cos2SigmaM)))

	distance = b * bigA * (sigma - deltaSigma)
	alpha1 = math.Atan2(cosU2*sinLambda, cosU1*sinU2-sinU1*cosU2*cosLambda)
	return distance, alpha1, nil
}
