package uom

// Length is a unit of length. The base unit is Meters.
type Length uint8

const (
	Meters Length = iota
	Millimeters
	Centimeters
	Kilometers
	Inches
	Feet
	Yards
	StatuteMiles
	NauticalMiles
)

var lengthDefs = [...]Def{
	Meters:        {Name: "Meters", Abbr: "m", Scale: 1},
	Millimeters:   {Name: "Millimeters", Abbr: "mm", Scale: 0.001},
	Centimeters:   {Name: "Centimeters", Abbr: "cm", Scale: 0.01},
	Kilometers:    {Name: "Kilometers", Abbr: "km", Scale: 1000},
	Inches:        {Name: "Inches", Abbr: "in", Scale: 0.0254},
	Feet:          {Name: "Feet", Abbr: "ft", Scale: 0.3048},
	Yards:         {Name: "Yards", Abbr: "yd", Scale: 0.9144},
	StatuteMiles:  {Name: "Statute Miles", Abbr: "mi", Scale: 1609.344},
	NauticalMiles: {Name: "Nautical Miles", Abbr: "nmi", Scale: 1852},
}

var lengthOrder = [...]Length{
	Millimeters, Centimeters, Meters, Kilometers, Inches, Feet, Yards,
	StatuteMiles, NauticalMiles,
}

func (u Length) Def() Def { return lookup(lengthDefs[:], u, "Length") }
func (Length) Units() []Length { return ordered(lengthOrder[:]) }
func (u Length) Name() string { return u.Def().Name }
func (u Length) Abbr() string { return u.Def().Abbr }
func (u Length) NameAndAbbr() string { return u.Def().NameAndAbbr() }
func (u Length) String() string { return u.Def().Name }

// Convert converts v from u to another length unit.
func (u Length) Convert(v float64, to Length) float64 { return Convert(v, u, to) }

// ParseLength parses a length unit; see Parse.
func ParseLength(s string) (Length, bool) { return Parse[Length](s) }
