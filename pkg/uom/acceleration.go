package uom

// Acceleration is a unit of acceleration. The base unit is MetersPerSecondSquared.
type Acceleration uint8

const (
	MetersPerSecondSquared Acceleration = iota
	FeetPerSecondSquared
	StandardGravity
	Gals
)

var accelerationDefs = [...]Def{
	MetersPerSecondSquared: {Name: "Meters per Second Squared", Abbr: "m/s²", Scale: 1},
	FeetPerSecondSquared:   {Name: "Feet per Second Squared", Abbr: "ft/s²", Scale: 0.3048},
	StandardGravity:        {Name: "Standard Gravity", Abbr: "g", Scale: 9.80665},
	Gals:                   {Name: "Gals", Abbr: "Gal", Scale: 0.01},
}

var accelerationOrder = [...]Acceleration{
	MetersPerSecondSquared, FeetPerSecondSquared, StandardGravity, Gals,
}

func (u Acceleration) Def() Def { return lookup(accelerationDefs[:], u, "Acceleration") }
func (Acceleration) Units() []Acceleration { return ordered(accelerationOrder[:]) }
func (u Acceleration) Name() string { return u.Def().Name }
func (u Acceleration) Abbr() string { return u.Def().Abbr }
func (u Acceleration) NameAndAbbr() string { return u.Def().NameAndAbbr() }
func (u Acceleration) String() string { return u.Def().Name }

// Convert converts v from u to another acceleration unit.
func (u Acceleration) Convert(v float64, to Acceleration) float64 { return Convert(v, u, to) }

// ParseAcceleration parses an acceleration unit; see Parse.
func ParseAcceleration(s string) (Acceleration, bool) { return Parse[Acceleration](s) }
