package uom

// Temperature is a unit of thermodynamic temperature. The base unit is Kelvin.
//
// Celsius and Fahrenheit are affine: they carry an Offset in their Def.
type Temperature uint8

const (
	Kelvin Temperature = iota
	Celsius
	Fahrenheit
	Rankine
)

var temperatureDefs = [...]Def{
	Kelvin:     {Name: "Kelvin", Abbr: "K", Scale: 1},
	Celsius:    {Name: "Celsius", Abbr: "°C", Scale: 1, Offset: 273.15},
	Fahrenheit: {Name: "Fahrenheit", Abbr: "°F", Scale: 5.0 / 9, Offset: 459.67 * 5.0 / 9},
	Rankine:    {Name: "Rankine", Abbr: "°R", Scale: 5.0 / 9},
}

var temperatureOrder = [...]Temperature{
	Kelvin, Celsius, Fahrenheit, Rankine,
}

func (u Temperature) Def() Def { return lookup(temperatureDefs[:], u, "Temperature") }
func (Temperature) Units() []Temperature { return ordered(temperatureOrder[:]) }
func (u Temperature) Name() string { return u.Def().Name }
func (u Temperature) Abbr() string { return u.Def().Abbr }
func (u Temperature) NameAndAbbr() string { return u.Def().NameAndAbbr() }
func (u Temperature) String() string { return u.Def().Name }

// Convert converts v from u to another temperature unit.
func (u Temperature) Convert(v float64, to Temperature) float64 { return Convert(v, u, to) }

// ParseTemperature parses a temperature unit; see Parse.
func ParseTemperature(s string) (Temperature, bool) { return Parse[Temperature](s) }
