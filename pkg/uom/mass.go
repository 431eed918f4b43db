package uom

// Mass is a unit of mass. The base unit is Kilograms.
type Mass uint8

const (
	Kilograms Mass = iota
	Grams
	Ounces
	PoundsMass
	Slugs
)

var massDefs = [...]Def{
	Kilograms:  {Name: "Kilograms", Abbr: "kg", Scale: 1},
	Grams:      {Name: "Grams", Abbr: "g", Scale: 0.001},
	Ounces:     {Name: "Ounces", Abbr: "oz", Scale: 0.028349523125},
	PoundsMass: {Name: "Pounds", Abbr: "lb", Scale: 0.45359237},
	Slugs:      {Name: "Slugs", Abbr: "slug", Scale: 14.593902937206364},
}

var massOrder = [...]Mass{
	Grams, Kilograms, Ounces, PoundsMass, Slugs,
}

func (u Mass) Def() Def { return lookup(massDefs[:], u, "Mass") }
func (Mass) Units() []Mass { return ordered(massOrder[:]) }
func (u Mass) Name() string { return u.Def().Name }
func (u Mass) Abbr() string { return u.Def().Abbr }
func (u Mass) NameAndAbbr() string { return u.Def().NameAndAbbr() }
func (u Mass) String() string { return u.Def().Name }

// Convert converts v from u to another mass unit.
func (u Mass) Convert(v float64, to Mass) float64 { return Convert(v, u, to) }

// ParseMass parses a mass unit; see Parse.
func ParseMass(s string) (Mass, bool) { return Parse[Mass](s) }
