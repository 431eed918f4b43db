package uom

import "math"

// Bearing is a unit of angular direction. The base unit is Degrees.
//
// Mils are NATO mils (6400 per turn). Values are not normalized to a single turn.
type Bearing uint8

const (
	Degrees Bearing = iota
	Radians
	Gradians
	Mils
)

var bearingDefs = [...]Def{
	Degrees:  {Name: "Degrees", Abbr: "deg", Scale: 1},
	Radians:  {Name: "Radians", Abbr: "rad", Scale: 180 / math.Pi},
	Gradians: {Name: "Gradians", Abbr: "grad", Scale: 0.9},
	Mils:     {Name: "Mils", Abbr: "mil", Scale: 360.0 / 6400},
}

var bearingOrder = [...]Bearing{
	Degrees, Radians, Gradians, Mils,
}

func (u Bearing) Def() Def { return lookup(bearingDefs[:], u, "Bearing") }
func (Bearing) Units() []Bearing { return ordered(bearingOrder[:]) }
func (u Bearing) Name() string { return u.Def().Name }
func (u Bearing) Abbr() string { return u.Def().Abbr }
func (u Bearing) NameAndAbbr() string { return u.Def().NameAndAbbr() }
func (u Bearing) String() string { return u.Def().Name }

// Convert converts v from u to another bearing unit.
func (u Bearing) Convert(v float64, to Bearing) float64 { return Convert(v, u, to) }

// ParseBearing parses a bearing unit; see Parse.
func ParseBearing(s string) (Bearing, bool) { return Parse[Bearing](s) }
