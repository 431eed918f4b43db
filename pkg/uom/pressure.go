package uom

// Pressure is a unit of pressure. The base unit is Pascals.
type Pressure uint8

const (
	Pascals Pressure = iota
	Kilopascals
	Megapascals
	Bars
	PoundsPerSquareInch
	Atmospheres
	Torrs
)

var pressureDefs = [...]Def{
	Pascals:             {Name: "Pascals", Abbr: "Pa", Scale: 1},
	Kilopascals:         {Name: "Kilopascals", Abbr: "kPa", Scale: 1e3},
	Megapascals:         {Name: "Megapascals", Abbr: "MPa", Scale: 1e6},
	Bars:                {Name: "Bars", Abbr: "bar", Scale: 1e5},
	PoundsPerSquareInch: {Name: "Pounds per Square Inch", Abbr: "psi", Scale: 6894.757293168361},
	Atmospheres:         {Name: "Atmospheres", Abbr: "atm", Scale: 101325},
	Torrs:               {Name: "Torrs", Abbr: "Torr", Scale: 101325.0 / 760},
}

var pressureOrder = [...]Pressure{
	Pascals, Kilopascals, Megapascals, Bars, PoundsPerSquareInch, Atmospheres,
	Torrs,
}

func (u Pressure) Def() Def { return lookup(pressureDefs[:], u, "Pressure") }
func (Pressure) Units() []Pressure { return ordered(pressureOrder[:]) }
func (u Pressure) Name() string { return u.Def().Name }
func (u Pressure) Abbr() string { return u.Def().Abbr }
func (u Pressure) NameAndAbbr() string { return u.Def().NameAndAbbr() }
func (u Pressure) String() string { return u.Def().Name }

// Convert converts v from u to another pressure unit.
func (u Pressure) Convert(v float64, to Pressure) float64 { return Convert(v, u, to) }

// ParsePressure parses a pressure unit; see Parse.
func ParsePressure(s string) (Pressure, bool) { return Parse[Pressure](s) }
