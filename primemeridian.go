// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proj4

// PrimeMeridian carries a named meridian's longitude offset from Greenwich,
// in radians, per spec.md §3.
type PrimeMeridian struct {
	Name          string
	FromGreenwich float64 // radians, east-positive
}

var primeMeridianTable = map[string]string{
	"greenwich": "0dE",
	"lisbon":    "9d07'54.862\"W",
	"paris":     "2d20'14.025\"E",
	"bogota":    "74d04'51.3\"W",
	"madrid":    "3d41'16.58\"W",
	"rome":      "12d27'8.4\"E",
	"bern":      "7d26'22.5\"E",
	"jakarta":   "106d48'27.79\"E",
	"ferro":     "17d40'W",
	"brussels":  "4d22'4.71\"E",
	"stockholm": "18d3'29.8\"E",
	"athens":    "23d42'58.815\"E",
	"oslo":      "10d43'22.5\"E",
}

// resolvePrimeMeridian implements spec.md §4.1's +pm handling: named lookup,
// otherwise a literal angular value, defaulting to Greenwich (offset 0).
func resolvePrimeMeridian(p ParamBag) (PrimeMeridian, error) {
	name, ok := p.str("pm")
	if !ok {
		return PrimeMeridian{Name: "greenwich"}, nil
	}
	if defn, known := primeMeridianTable[name]; known {
		deg, err := parseDegreeString(defn)
		if err != nil {
			return PrimeMeridian{}, err
		}
		return PrimeMeridian{Name: name, FromGreenwich: deg * deg2rad}, nil
	}
	// Free-form degrees, e.g. +pm=-3.5.
	deg, err := parseDegreeString(name)
	if err != nil {
		return PrimeMeridian{}, errf(InvalidParameter, "resolvePrimeMeridian", "pm", "unknown prime meridian %q", name)
	}
	return PrimeMeridian{Name: name, FromGreenwich: deg * deg2rad}, nil
}
