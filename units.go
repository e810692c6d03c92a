// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proj4

import (
	"strconv"
	"strings"
)

// Unit is a linear (length) unit: to_meter is the factor that converts one
// unit into meters. Angular units (degrees vs radians) are handled directly
// by the ParamBag/Transform boundary rather than through this table.
type Unit struct {
	ID      string
	ToMeter float64
	Name    string
}

// unitTable mirrors PROJ's pj_units.c; the set here matches spec.md §6's
// minimum (m, km, mi, us-ft, ft, ...) plus the rest of the historical table
// the teacher carried over.
var unitTable = map[string]Unit{
	"km":     {"km", 1000, "Kilometer"},
	"m":      {"m", 1.0, "Meter"},
	"dm":     {"dm", 0.1, "Decimeter"},
	"cm":     {"cm", 0.01, "Centimeter"},
	"mm":     {"mm", 0.001, "Millimeter"},
	"kmi":    {"kmi", 1852.0, "International Nautical Mile"},
	"in":     {"in", 0.0254, "International Inch"},
	"ft":     {"ft", 0.3048, "International Foot"},
	"yd":     {"yd", 0.9144, "International Yard"},
	"mi":     {"mi", 1609.344, "International Statute Mile"},
	"fath":   {"fath", 1.8288, "International Fathom"},
	"ch":     {"ch", 20.1168, "International Chain"},
	"link":   {"link", 0.201168, "International Link"},
	"us-in":  {"us-in", 0.0254000508, "U.S. Surveyor's Inch"},
	"us-ft":  {"us-ft", 0.304800609601219, "U.S. Surveyor's Foot"},
	"us-yd":  {"us-yd", 0.914401828803658, "U.S. Surveyor's Yard"},
	"us-ch":  {"us-ch", 20.11684023368047, "U.S. Surveyor's Chain"},
	"us-mi":  {"us-mi", 1609.347218694437, "U.S. Surveyor's Statute Mile"},
	"ind-yd": {"ind-yd", 0.91439523, "Indian Yard"},
	"ind-ft": {"ind-ft", 0.30479841, "Indian Foot"},
	"ind-ch": {"ind-ch", 20.11669506, "Indian Chain"},
}

// parseDegreeString parses an angular literal per spec.md §6:
// `15d30'00"N`, `15.5`, `-15.5`, `15d30mN` all accepted, returning decimal
// degrees. Recognized separators after a numeral are 'd' (degrees), 'm' or
// '\'' (minutes), 's' or '"' (seconds); a trailing N/S/E/W sets the sign.
// Returns an error (ParseError) for a literal that isn't a valid number at
// all, matching spec.md's "malformed angular/numeric literal IS" policy.
func parseDegreeString(ds string) (float64, error) {
	orig := ds
	ds = strings.TrimSpace(ds)
	if ds == "" {
		return 0, errf(ParseError, "parseDegreeString", orig, "empty angular literal")
	}

	neg := false
	if strings.HasSuffix(ds, "N") || strings.HasSuffix(ds, "E") {
		ds = ds[:len(ds)-1]
	} else if strings.HasSuffix(ds, "S") || strings.HasSuffix(ds, "W") {
		neg = true
		ds = ds[:len(ds)-1]
	}

	var res float64
	consumedAny := false

	if idx := strings.IndexAny(ds, "dD"); idx >= 0 {
		f, err := strconv.ParseFloat(ds[:idx], 64)
		if err != nil {
			return 0, errf(ParseError, "parseDegreeString", orig, "invalid degree component: %v", err)
		}
		res += f
		ds = ds[idx+1:]
		consumedAny = true
	}
	if idx := strings.IndexAny(ds, "m'"); idx >= 0 {
		if idx > 0 {
			f, err := strconv.ParseFloat(ds[:idx], 64)
			if err != nil {
				return 0, errf(ParseError, "parseDegreeString", orig, "invalid minute component: %v", err)
			}
			res += f / 60
			consumedAny = true
		}
		ds = ds[idx+1:]
	}
	if idx := strings.IndexAny(ds, "s\""); idx >= 0 {
		if idx > 0 {
			f, err := strconv.ParseFloat(ds[:idx], 64)
			if err != nil {
				return 0, errf(ParseError, "parseDegreeString", orig, "invalid second component: %v", err)
			}
			res += f / 3600
			consumedAny = true
		}
		ds = ds[idx+1:]
	}
	if !consumedAny {
		ds = strings.TrimSpace(ds)
		if ds != "" {
			f, err := strconv.ParseFloat(ds, 64)
			if err != nil {
				return 0, errf(ParseError, "parseDegreeString", orig, "invalid numeric literal: %v", err)
			}
			res = f
		}
	} else if rem := strings.TrimSpace(ds); rem != "" {
		return 0, errf(ParseError, "parseDegreeString", orig, "trailing garbage %q", rem)
	}

	if neg {
		res = -res
	}
	return res, nil
}
