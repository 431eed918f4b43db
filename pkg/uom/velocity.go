package uom

// Velocity is a unit of speed. The base unit is MetersPerSecond.
type Velocity uint8

const (
	MetersPerSecond Velocity = iota
	KilometersPerHour
	FeetPerSecond
	MilesPerHour
	Knots
)

var velocityDefs = [...]Def{
	MetersPerSecond:   {Name: "Meters per Second", Abbr: "m/s", Scale: 1},
	KilometersPerHour: {Name: "Kilometers per Hour", Abbr: "km/h", Scale: 1 / 3.6},
	FeetPerSecond:     {Name: "Feet per Second", Abbr: "ft/s", Scale: 0.3048},
	MilesPerHour:      {Name: "Miles per Hour", Abbr: "mph", Scale: 0.44704},
	Knots:             {Name: "Knots", Abbr: "kn", Scale: 1852.0 / 3600},
}

var velocityOrder = [...]Velocity{
	MetersPerSecond, KilometersPerHour, FeetPerSecond, MilesPerHour, Knots,
}

func (u Velocity) Def() Def { return lookup(velocityDefs[:], u, "Velocity") }
func (Velocity) Units() []Velocity { return ordered(velocityOrder[:]) }
func (u Velocity) Name() string { return u.Def().Name }
func (u Velocity) Abbr() string { return u.Def().Abbr }
func (u Velocity) NameAndAbbr() string { return u.Def().NameAndAbbr() }
func (u Velocity) String() string { return u.Def().Name }

// Convert converts v from u to another velocity unit.
func (u Velocity) Convert(v float64, to Velocity) float64 { return Convert(v, u, to) }

// ParseVelocity parses a velocity unit; see Parse.
func ParseVelocity(s string) (Velocity, bool) { return Parse[Velocity](s) }
