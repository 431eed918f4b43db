package uom

// Force is a unit of force. The base unit is Newtons.
type Force uint8

const (
	Newtons Force = iota
	PoundsForce
	KilogramsForce
)

var forceDefs = [...]Def{
	Newtons:        {Name: "Newtons", Abbr: "N", Scale: 1},
	PoundsForce:    {Name: "Pounds Force", Abbr: "lbf", Scale: 4.4482216152605},
	KilogramsForce: {Name: "Kilograms Force", Abbr: "kgf", Scale: 9.80665},
}

var forceOrder = [...]Force{
	Newtons, PoundsForce, KilogramsForce,
}

func (u Force) Def() Def { return lookup(forceDefs[:], u, "Force") }
func (Force) Units() []Force { return ordered(forceOrder[:]) }
func (u Force) Name() string { return u.Def().Name }
func (u Force) Abbr() string { return u.Def().Abbr }
func (u Force) NameAndAbbr() string { return u.Def().NameAndAbbr() }
func (u Force) String() string { return u.Def().Name }

// Convert converts v from u to another force unit.
func (u Force) Convert(v float64, to Force) float64 { return Convert(v, u, to) }

// ParseForce parses a force unit; see Parse.
func ParseForce(s string) (Force, bool) { return Parse[Force](s) }
