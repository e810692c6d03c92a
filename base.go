// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proj4

import (
	"math"
	"strings"
)

// Base holds the projection state common to every variant, per spec.md
// §4.4's design note: "store them once alongside the projection variant,
// not duplicated inside each." Every concrete projection embeds *Base.
type Base struct {
	Name string

	Ellipsoid Ellipsoid
	Datum     Datum
	PM        PrimeMeridian
	LinUnit   Unit

	Lam0, Phi0 float64 // central meridian / central latitude, radians
	K0         float64 // scale factor
	X0, Y0     float64 // false easting/northing, meters

	Axis string // 3-letter axis orientation, default "enu"

	Geoc bool // +geoc: geocentric-latitude input (rejected at Transform time)
	Over bool // +over: disable longitude wraparound

	IsLatLong bool // true for the longlat family: no projected (x,y)
	IsGeocent bool // true for geocent/cart: intrinsically 3D
}

// projImpl is the uniform {forward, inverse} contract every projection
// variant satisfies, per spec.md §4.4. Forward/Inverse operate on the unit
// ellipsoid (before the a-scaling, x0/y0 and unit conversion that
// Projection.Forward/Inverse apply around them); k0 is not applied by the
// wrapper, each projection that uses it applies it itself. z passes
// through untouched except for geocent.
type projImpl interface {
	forward(lam, phi, z float64) (x, y, z2 float64, err error)
	inverse(x, y, z float64) (lam, phi, z2 float64, err error)
}

// Projection is the user-facing entity of spec.md §3: immutable after
// construction, freely copyable (value semantics, no shared mutable
// state), owning its Base plus a projection-specific variant.
type Projection struct {
	base *Base
	impl projImpl
}

func (pr *Projection) Name() string        { return pr.base.Name }
func (pr *Projection) IsLatLong() bool     { return pr.base.IsLatLong }
func (pr *Projection) IsGeocent() bool     { return pr.base.IsGeocent }
func (pr *Projection) Ellipsoid() Ellipsoid { return pr.base.Ellipsoid }
func (pr *Projection) Datum() Datum         { return pr.base.Datum }
func (pr *Projection) PrimeMeridian() PrimeMeridian { return pr.base.PM }
func (pr *Projection) Unit() Unit           { return pr.base.LinUnit }
func (pr *Projection) Axis() string         { return pr.base.Axis }
func (pr *Projection) Geoc() bool           { return pr.base.Geoc }

type projFactory func(base *Base, p ParamBag) (projImpl, error)

// projectionTable is the compile-time dispatch table spec.md §9's design
// notes ask for ("a small finite set; use a compile-time table ... rather
// than a mutable registry"). The longlat spellings and cart share their
// parent's factory; the other aliases (utm, ups, webmerc, leac, wag4, wag5)
// have factories of their own. Base.Name carries the name as given.
var projectionTable = map[string]projFactory{
	"longlat": newLongLat,
	"latlong": newLongLat,
	"latlon":  newLongLat,
	"lonlat":  newLongLat,

	"merc":    newMercator,
	"webmerc": newWebMercator,

	"lcc": newLCC,

	"tmerc": newTMerc,

	"etmerc": newETMerc,
	"utm":    newUTM,

	"aea":  newAEA,
	"leac": newLEAC,

	"stere": newStere,
	"ups":   newUPS,

	"sterea": newSterea,

	"geocent": newGeocent,
	"cart":    newGeocent,

	"somerc": newSomerc,

	"laea": newLAEA,

	"moll": newMoll,
	"wag4": newWag4,
	"wag5": newWag5,

	"geos": newGeos,

	"eqc": newEQC,

	"aeqd": newAEQD,

	"krovak": newKrovak,

	"mill": newMill,

	"cea": newCEA,
}

// Build constructs a Projection from a proj-string, per spec.md §6's
// "build(source_spec) -> Projection | Error". If a registry has been
// installed with SetGlobalAliasRegistry and spec has no leading '+' and
// contains a ':', it is first looked up there (e.g. "EPSG:3857"); the
// registry is optional and the core engine never requires one (spec.md
// §5).
func Build(spec string) (*Projection, error) {
	spec = resolveAlias(spec)
	bag, err := ParseProjString(spec)
	if err != nil {
		return nil, err
	}
	return buildFromBag(bag)
}

// NewProjection is an alias for Build kept for parity with the teacher's
// entrypoint name.
func NewProjection(spec string) (*Projection, error) { return Build(spec) }

func buildFromBag(bag ParamBag) (*Projection, error) {
	name, ok := bag.str("proj")
	if !ok {
		return nil, errf(ParseError, "buildFromBag", "proj", "+proj= is mandatory")
	}
	factory, known := projectionTable[name]
	if !known {
		return nil, errf(Unsupported, "buildFromBag", "proj", "unsupported projection %q", name)
	}

	base := &Base{Name: name, Axis: "enu", K0: 1}

	datum, err := resolveDatum(bag)
	if err != nil {
		return nil, err
	}
	base.Datum = datum
	base.Ellipsoid = datum.Ellipsoid

	pm, err := resolvePrimeMeridian(bag)
	if err != nil {
		return nil, err
	}
	base.PM = pm

	if geoc, ok := bag.bool("geoc"); ok {
		base.Geoc = geoc
	}
	if over, ok := bag.bool("over"); ok {
		base.Over = over
	}

	if axis, ok := bag.str("axis"); ok {
		if err := validateAxis(axis); err != nil {
			return nil, err
		}
		base.Axis = axis
	}

	lam0, err := bag.degreeOr("lon_0", 0)
	if err != nil {
		return nil, err
	}
	base.Lam0 = lam0

	phi0, err := bag.degreeOr("lat_0", 0)
	if err != nil {
		return nil, err
	}
	base.Phi0 = phi0

	x0, _, err := bag.floatOrErr("x_0")
	if err != nil {
		return nil, err
	}
	base.X0 = x0

	y0, _, err := bag.floatOrErr("y_0")
	if err != nil {
		return nil, err
	}
	base.Y0 = y0

	k0 := 1.0
	if v, present, err := bag.floatOrErr("k_0"); err != nil {
		return nil, err
	} else if present {
		k0 = v
	} else if v, present, err := bag.floatOrErr("k"); err != nil {
		return nil, err
	} else if present {
		k0 = v
	}
	if k0 <= 0 {
		return nil, errf(InvalidParameter, "buildFromBag", "k_0", "scale factor must be positive, got %g", k0)
	}
	base.K0 = k0

	base.LinUnit = Unit{ID: "m", ToMeter: 1, Name: "Meter"}
	if name, ok := bag.str("units"); ok {
		u, known := unitTable[name]
		if !known {
			return nil, errf(InvalidParameter, "buildFromBag", "units", "unknown unit %q", name)
		}
		base.LinUnit = u
	}
	if tm, ok := bag.float("to_meter"); ok {
		base.LinUnit = Unit{ID: "custom", ToMeter: tm, Name: "custom"}
	}

	base.IsLatLong = name == "longlat" || name == "latlong" || name == "latlon" || name == "lonlat"
	base.IsGeocent = name == "geocent" || name == "cart"

	impl, err := factory(base, bag)
	if err != nil {
		return nil, err
	}
	return &Projection{base: base, impl: impl}, nil
}

func validateAxis(axis string) error {
	if len(axis) != 3 {
		return errf(InvalidParameter, "validateAxis", "axis", "axis must be exactly 3 characters, got %q", axis)
	}
	seen := map[byte]bool{}
	for i := 0; i < 3; i++ {
		c := axis[i]
		if !strings.ContainsRune("ewnsud", rune(c)) {
			return errf(InvalidParameter, "validateAxis", "axis", "axis character %q not in {e,w,n,s,u,d}", string(c))
		}
		seen[c] = true
	}
	return nil
}

// Forward projects (lam, phi, z) -- relative to nothing yet; lam0 is
// subtracted here, per spec.md §4.4 ("Forward: ... lambda has been shifted
// by lambda0 by the caller" is the projImpl contract; Base.Forward is the
// caller). z passes through untouched unless the projection is
// intrinsically 3D (geocent/cart).
func (pr *Projection) Forward(lam, phi, z float64) (x, y, zo float64, err error) {
	b := pr.base
	if !b.IsGeocent {
		t := math.Abs(phi) - halfPi
		if t > epsln || math.Abs(lam) > 10 {
			return hugeVal, hugeVal, z, errf(DomainError, "Forward", "", "latitude/longitude out of bounds: lam=%g phi=%g", lam, phi)
		}
		if math.Abs(t) <= epsln {
			phi = math.Copysign(halfPi, phi)
		} else if b.Geoc {
			phi = math.Atan(b.Ellipsoid.ROneEs * math.Tan(phi))
		}
	}
	lam -= b.Lam0
	if !b.Over {
		lam = adjlon(lam)
	}
	x, y, zo, err = pr.impl.forward(lam, phi, z)
	if err != nil {
		return hugeVal, hugeVal, z, err
	}
	if b.IsGeocent {
		return x, y, zo, nil
	}
	x = (b.Ellipsoid.A*x + b.X0) / b.LinUnit.ToMeter
	y = (b.Ellipsoid.A*y + b.Y0) / b.LinUnit.ToMeter
	return x, y, zo, nil
}

// Inverse is the converse of Forward.
func (pr *Projection) Inverse(x, y, z float64) (lam, phi, zo float64, err error) {
	b := pr.base
	if !b.IsGeocent {
		if x == hugeVal || y == hugeVal {
			return hugeVal, hugeVal, z, errf(DomainError, "Inverse", "", "input out of bounds")
		}
		x = (x*b.LinUnit.ToMeter - b.X0) / b.Ellipsoid.A
		y = (y*b.LinUnit.ToMeter - b.Y0) / b.Ellipsoid.A
	}
	lam, phi, zo, err = pr.impl.inverse(x, y, z)
	if err != nil {
		return hugeVal, hugeVal, z, err
	}
	if b.IsGeocent {
		return lam, phi, zo, nil
	}
	if !b.Over {
		lam = adjlon(lam)
	}
	lam += b.Lam0
	if b.Geoc && math.Abs(math.Abs(phi)-halfPi) > epsln {
		phi = math.Atan(b.Ellipsoid.OneEs * math.Tan(phi))
	}
	return lam, phi, zo, nil
}
