// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proj4

import "math"

// Ellipsoid is the biaxial reference surface parameterized by (a, es) per
// spec.md §3. b, e, ep2, oneEs and rOneEs are derived once at resolution
// time and never recomputed.
type Ellipsoid struct {
	A        float64 // equatorial radius, meters
	Es       float64 // squared eccentricity
	B        float64 // semi-minor axis, derived
	E        float64 // eccentricity, derived
	Ep2      float64 // second eccentricity squared: es/(1-es)
	OneEs    float64 // 1 - es
	ROneEs   float64 // 1 / (1 - es)
	IsSphere bool
}

func newEllipsoid(a, es float64) (Ellipsoid, error) {
	if a <= 0 {
		return Ellipsoid{}, errf(InvalidParameter, "newEllipsoid", "a", "semi-major axis must be positive, got %g", a)
	}
	if es < 0 || es >= 1 {
		return Ellipsoid{}, errf(InvalidParameter, "newEllipsoid", "es", "eccentricity-squared out of range [0,1): got %g", es)
	}
	e := Ellipsoid{A: a, Es: es}
	e.B = a * math.Sqrt(1-es)
	e.E = math.Sqrt(es)
	e.OneEs = 1 - es
	e.ROneEs = 1 / e.OneEs
	if es != 0 {
		e.Ep2 = es / (1 - es)
	}
	e.IsSphere = es == 0
	return e, nil
}

// ellipsoidDef is one row of the named-ellipsoid table: either (a, b) or
// (a, rf).
type ellipsoidDef struct {
	a, b, rf float64 // b or rf is zero, whichever form isn't given
	name     string
}

// ellipsoidTable mirrors PROJ's pj_ellps.c, matching the set the teacher
// carried (plus the minimum spec.md §6 asks for: WGS84, GRS80, airy,
// bessel, clrk66, clrk80, intl, sphere, krass).
var ellipsoidTable = map[string]ellipsoidDef{
	"MERIT":     {a: 6378137.0, rf: 298.257, name: "MERIT 1983"},
	"SGS85":     {a: 6378136.0, rf: 298.257, name: "Soviet Geodetic System 85"},
	"GRS80":     {a: 6378137.0, rf: 298.257222101, name: "GRS 1980(IUGG, 1980)"},
	"IAU76":     {a: 6378140.0, rf: 298.257, name: "IAU 1976"},
	"airy":      {a: 6377563.396, b: 6356256.910, name: "Airy 1830"},
	"APL4.9":    {a: 6378137.0, rf: 298.25, name: "Appl. Physics. 1965"},
	"NWL9D":     {a: 6378145.0, rf: 298.25, name: "Naval Weapons Lab., 1965"},
	"mod_airy":  {a: 6377340.189, b: 6356034.446, name: "Modified Airy"},
	"andrae":    {a: 6377104.43, rf: 300.0, name: "Andrae 1876 (Den., Iclnd.)"},
	"aust_SA":   {a: 6378160.0, rf: 298.25, name: "Australian Natl & S. Amer. 1969"},
	"GRS67":     {a: 6378160.0, rf: 298.2471674270, name: "GRS 67(IUGG 1967)"},
	"bessel":    {a: 6377397.155, rf: 299.1528128, name: "Bessel 1841"},
	"bess_nam":  {a: 6377483.865, rf: 299.1528128, name: "Bessel 1841 (Namibia)"},
	"clrk66":    {a: 6378206.4, b: 6356583.8, name: "Clarke 1866"},
	"clrk80":    {a: 6378249.145, rf: 293.4663, name: "Clarke 1880 mod."},
	"clrk80ign": {a: 6378249.2, rf: 293.4660212936269, name: "Clarke 1880 (IGN)."},
	"CPM":       {a: 6375738.7, rf: 334.29, name: "Comm. des Poids et Mesures 1799"},
	"delmbr":    {a: 6376428.0, rf: 311.5, name: "Delambre 1810 (Belgium)"},
	"engelis":   {a: 6378136.05, rf: 298.2566, name: "Engelis 1985"},
	"evrst30":   {a: 6377276.345, rf: 300.8017, name: "Everest 1830"},
	"evrst48":   {a: 6377304.063, rf: 300.8017, name: "Everest 1948"},
	"evrst56":   {a: 6377301.243, rf: 300.8017, name: "Everest 1956"},
	"evrst69":   {a: 6377295.664, rf: 300.8017, name: "Everest 1969"},
	"evrstSS":   {a: 6377298.556, rf: 300.8017, name: "Everest (Sabah & Sarawak)"},
	"fschr60":   {a: 6378166.0, rf: 298.3, name: "Fischer (Mercury Datum) 1960"},
	"fschr60m":  {a: 6378155.0, rf: 298.3, name: "Modified Fischer 1960"},
	"fschr68":   {a: 6378150.0, rf: 298.3, name: "Fischer 1968"},
	"helmert":   {a: 6378200.0, rf: 298.3, name: "Helmert 1906"},
	"hough":     {a: 6378270.0, rf: 297.0, name: "Hough"},
	"intl":      {a: 6378388.0, rf: 297.0, name: "International 1909 (Hayford)"},
	"krass":     {a: 6378245.0, rf: 298.3, name: "Krassovsky, 1942"},
	"kaula":     {a: 6378163.0, rf: 298.24, name: "Kaula 1961"},
	"lerch":     {a: 6378139.0, rf: 298.257, name: "Lerch 1979"},
	"mprts":     {a: 6397300.0, rf: 191.0, name: "Maupertius 1738"},
	"new_intl":  {a: 6378157.5, b: 6356772.2, name: "New International 1967"},
	"plessis":   {a: 6376523.0, b: 6355863.0, name: "Plessis 1817 (France)"},
	"SEasia":    {a: 6378155.0, b: 6356773.3205, name: "Southeast Asia"},
	"walbeck":   {a: 6376896.0, b: 6355834.8467, name: "Walbeck"},
	"WGS60":     {a: 6378165.0, rf: 298.3, name: "WGS 60"},
	"WGS66":     {a: 6378145.0, rf: 298.25, name: "WGS 66"},
	"WGS72":     {a: 6378135.0, rf: 298.26, name: "WGS 72"},
	"WGS84":     {a: 6378137.0, rf: 298.257223563, name: "WGS 84"},
	"sphere":    {a: 6370997.0, b: 6370997.0, name: "Normal Sphere (r=6370997)"},
}

// resolveEllipsoid implements the precedence in spec.md §4.1:
// +ellps (named) -> {+a, and one of +b/+rf/+f/+e/+es} -> default WGS84.
func resolveEllipsoid(p ParamBag) (Ellipsoid, error) {
	var a float64
	var haveA bool
	var b, rf, f, e, es float64
	var haveB, haveRf, haveF, haveE, haveEs bool

	if name, ok := p.str("ellps"); ok {
		def, known := ellipsoidTable[name]
		if !known {
			return Ellipsoid{}, errf(InvalidParameter, "resolveEllipsoid", "ellps", "unknown ellipsoid %q", name)
		}
		a, haveA = def.a, true
		if def.b != 0 {
			b, haveB = def.b, true
		} else {
			rf, haveRf = def.rf, true
		}
	}

	if v, ok := p.float("a"); ok {
		a, haveA = v, true
	}
	if v, ok := p.float("b"); ok {
		b, haveB = v, true
	}
	if v, ok := p.float("rf"); ok {
		rf, haveRf = v, true
	}
	if v, ok := p.float("f"); ok {
		f, haveF = v, true
	}
	if v, ok := p.float("e"); ok {
		e, haveE = v, true
	}
	if v, ok := p.float("es"); ok {
		es, haveEs = v, true
	}

	if !haveA {
		if haveB || haveRf || haveF || haveE || haveEs {
			return Ellipsoid{}, errf(InvalidParameter, "resolveEllipsoid", "a", "ellipsoid shape given without +a")
		}
		def := ellipsoidTable["WGS84"]
		return newEllipsoid(def.a, rfToEs(def.rf))
	}

	switch {
	case haveEs:
		return newEllipsoid(a, es)
	case haveE:
		return newEllipsoid(a, e*e)
	case haveRf:
		return newEllipsoid(a, rfToEs(rf))
	case haveF:
		return newEllipsoid(a, f*(2-f))
	case haveB:
		return newEllipsoid(a, 1-(b*b)/(a*a))
	default:
		// +a alone: sphere.
		return newEllipsoid(a, 0)
	}
}

func rfToEs(rf float64) float64 {
	if rf == 0 {
		return 0
	}
	f := 1 / rf
	return f * (2 - f)
}
