// Package uom provides typed units of measure and unit-tagged values.
//
// Every quantity kind (Length, Mass, Time, Temperature, Velocity, Force, Pressure,
// Bearing, Acceleration) is its own integer type whose constants are the kind's
// units. A kind satisfies Unit[U] by exposing its static table row (Def) and its
// canonical unit order (Units); conversion, enumeration and parsing are written once
// on top of those two primitives.
//
// Conversions always pass through the kind's base unit, so adding a unit is a single
// table row:
//
//	d := uom.New(10.0, uom.Meters)
//	fmt.Println(d.Convert(uom.Feet).Value()) // ~32.8084
//
// Values of different kinds have different types, so converting meters to kilograms
// does not compile. The zero value of every kind is its base unit.
package uom
