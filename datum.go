// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proj4

import (
	"math"
	"strconv"
	"strings"
)

// DatumKind enumerates the datum-shift pipeline's cases, per spec.md §3.
type DatumKind int

const (
	// DatumWGS84 marks the datum as WGS84 or a structurally-identical
	// equivalent (GRS80 with a zero towgs84): identity shift.
	DatumWGS84 DatumKind = iota
	// DatumNone is the explicit "no datum transform" case (+datum=none):
	// identity shift. A proj-string with no datum information at all
	// resolves to DatumWGS84 instead.
	DatumNone
	// Datum3Param is a 3-parameter (translation-only) Helmert shift.
	Datum3Param
	// Datum7Param is the full 7-parameter Helmert shift.
	Datum7Param
	// DatumGridShift is an opaque grid-based datum; only the @null
	// sentinel is recognized in-core (spec.md §3, §4.5 Open Question).
	DatumGridShift
	// DatumNullShift is +nadgrids=@null: identity on (lambda,phi)
	// regardless of differing ellipsoids, preserved because it matters for
	// Web-Mercator-style interoperability (spec.md Open Questions).
	DatumNullShift
)

// Datum is the relation from a local ellipsoid-referenced frame to WGS84,
// per spec.md §3. Comparison is structural: same Kind and same parameters
// to bit-exact equality (with the tolerance PROJ itself uses for the
// GRS80/WGS84 near-equivalence).
type Datum struct {
	Kind      DatumKind
	Ellipsoid Ellipsoid
	// Params holds [dx, dy, dz] for Datum3Param or
	// [dx, dy, dz, rx, ry, rz, scale] (radians, dimensionless 1+ppm*1e-6)
	// for Datum7Param. Nil otherwise.
	Params []float64
	// NadGrids is the opaque grid handle; only "@null" is meaningful
	// in-core.
	NadGrids string
}

type datumDef struct {
	ellps    string
	towgs84  []float64
	nadgrids string
}

// datumTable mirrors PROJ's pj_datums.c, matching the minimum spec.md §6
// asks for (WGS84, NAD83, NAD27, potsdam, ...) plus the rest the teacher
// carried.
var datumTable = map[string]datumDef{
	"WGS84":    {ellps: "WGS84", towgs84: []float64{0, 0, 0}},
	"GGRS87":   {ellps: "GRS80", towgs84: []float64{-199.87, 74.79, 246.62}},
	"NAD83":    {ellps: "GRS80", towgs84: []float64{0, 0, 0}},
	"NAD27":    {ellps: "clrk66", nadgrids: "@conus,@alaska,@ntv2_0.gsb,@ntv1_can.dat"},
	"potsdam":  {ellps: "bessel", towgs84: []float64{598.1, 73.7, 418.2, 0.202, 0.045, -2.455, 6.7}},
	"carthage": {ellps: "clrk80ign", towgs84: []float64{-263.0, 6.0, 431.0}},
	"hermannskogel": {ellps: "bessel",
		towgs84: []float64{577.326, 90.129, 463.919, 5.137, 1.474, 5.297, 2.4232}},
	"ire65":  {ellps: "mod_airy", towgs84: []float64{482.530, -130.596, 564.557, -1.042, -0.214, -0.631, 8.15}},
	"nzgd49": {ellps: "intl", towgs84: []float64{59.47, -5.04, 187.44, 0.47, -0.1, 1.024, -4.5993}},
	"OSGB36": {ellps: "airy", towgs84: []float64{446.448, -125.157, 542.060, 0.1502, 0.2470, 0.8421, -20.4894}},
}

// resolveDatum implements spec.md §4.1's datum precedence: +datum= (named,
// supplies both ellipsoid and Helmert parameters unless the bag already has
// an explicit +towgs84/+ellps override) fills in the bag first; then
// +nadgrids= (if present) decides the datum, otherwise +towgs84=, otherwise
// +datum=none, otherwise WGS84.
func resolveDatum(p ParamBag) (Datum, error) {
	effective := p
	if name, ok := p.str("datum"); ok && name != "none" {
		def, known := datumTable[name]
		if !known {
			return Datum{}, errf(InvalidParameter, "resolveDatum", "datum", "unknown datum %q", name)
		}
		merged := make(ParamBag, len(p))
		for k, v := range p {
			merged[k] = v
		}
		if _, has := merged["ellps"]; !has {
			if _, hasA := merged["a"]; !hasA {
				merged["ellps"] = def.ellps
			}
		}
		if _, has := merged["towgs84"]; !has && len(def.towgs84) > 0 {
			merged["towgs84"] = joinFloats(def.towgs84)
		}
		if _, has := merged["nadgrids"]; !has && def.nadgrids != "" {
			merged["nadgrids"] = def.nadgrids
		}
		effective = merged
	}

	ellipsoid, err := resolveEllipsoid(effective)
	if err != nil {
		return Datum{}, err
	}

	if grids, ok := effective.str("nadgrids"); ok {
		if grids == "@null" {
			return Datum{Kind: DatumNullShift, Ellipsoid: ellipsoid, NadGrids: grids}, nil
		}
		return Datum{Kind: DatumGridShift, Ellipsoid: ellipsoid, NadGrids: grids}, nil
	}

	if tw, ok := effective.str("towgs84"); ok {
		params, err := parseTowgs84(tw)
		if err != nil {
			return Datum{}, err
		}
		kind := Datum3Param
		if len(params) == 7 {
			kind = Datum7Param
		}
		d := Datum{Kind: kind, Ellipsoid: ellipsoid, Params: params}
		if isWGS84Equivalent(ellipsoid, params) {
			d.Kind = DatumWGS84
		}
		return d, nil
	}

	if name, ok := effective.str("datum"); ok && name == "none" {
		return Datum{Kind: DatumNone, Ellipsoid: ellipsoid}, nil
	}

	return Datum{Kind: DatumWGS84, Ellipsoid: ellipsoid}, nil
}

// isWGS84Equivalent mirrors the teacher's PJD_WGS84 detection: a
// structurally zero 3-param shift on an ellipsoid that is WGS84/GRS80 to
// within floating tolerance is treated as the identity datum.
func isWGS84Equivalent(e Ellipsoid, params []float64) bool {
	allZero := true
	for _, v := range params {
		if v != 0 {
			allZero = false
			break
		}
	}
	return allZero && e.A == 6378137.0 && math.Abs(e.Es-0.006694379990) < 0.000000000050
}

func parseTowgs84(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 && len(parts) != 7 {
		return nil, errf(InvalidParameter, "parseTowgs84", "towgs84", "expected 3 or 7 comma-separated numbers, got %d", len(parts))
	}
	out := make([]float64, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, errf(ParseError, "parseTowgs84", "towgs84", "invalid number %q: %v", part, err)
		}
		out[i] = v
	}
	if len(out) == 7 {
		out[3] *= sec2rad
		out[4] *= sec2rad
		out[5] *= sec2rad
		out[6] = out[6]/1_000_000.0 + 1.0
	}
	return out, nil
}

func joinFloats(fs []float64) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

// Equal implements the structural datum comparison from spec.md §3: same
// kind and same parameters to bit-exact equality. DatumNullShift compares
// equal to itself regardless of the carried ellipsoid (spec.md's Open
// Question on +nadgrids=@null), and WGS84/None both collapse to "identity".
func (d Datum) Equal(o Datum) bool {
	if d.Kind == DatumNullShift && o.Kind == DatumNullShift {
		return true
	}
	dIdentity := d.Kind == DatumWGS84 || d.Kind == DatumNone
	oIdentity := o.Kind == DatumWGS84 || o.Kind == DatumNone
	if dIdentity && oIdentity {
		return d.Ellipsoid.A == o.Ellipsoid.A && math.Abs(d.Ellipsoid.Es-o.Ellipsoid.Es) < 0.000000000050
	}
	if d.Kind != o.Kind {
		return false
	}
	if d.Ellipsoid.A != o.Ellipsoid.A || math.Abs(d.Ellipsoid.Es-o.Ellipsoid.Es) > 0.000000000050 {
		return false
	}
	if d.Kind == DatumGridShift {
		return d.NadGrids == o.NadGrids
	}
	if len(d.Params) != len(o.Params) {
		return false
	}
	for i := range d.Params {
		if d.Params[i] != o.Params[i] {
			return false
		}
	}
	return true
}

// IsIdentity reports whether this datum requires no shift at all.
func (d Datum) IsIdentity() bool {
	return d.Kind == DatumWGS84 || d.Kind == DatumNone
}
