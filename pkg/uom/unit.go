package uom

import (
	"fmt"
	"slices"
	"strings"
)

// Def is one row of a quantity kind's unit table.
//
// A raw magnitude r expressed in this unit corresponds to the base-unit magnitude
// r*Scale + Offset. The base unit of every kind has Scale 1 and Offset 0; only affine
// kinds (temperature) use a non-zero Offset.
type Def struct {
	Name   string
	Abbr   string
	Scale  float64
	Offset float64
}

// NameAndAbbr returns "Name (Abbr)", e.g. "Meters (m)".
func (d Def) NameAndAbbr() string {
	return d.Name + " (" + d.Abbr + ")"
}

// ToBase converts v from this unit to the kind's base unit.
func (d Def) ToBase(v float64) float64 { return v*d.Scale + d.Offset }

// FromBase converts v from the kind's base unit to this unit.
func (d Def) FromBase(v float64) float64 { return (v - d.Offset) / d.Scale }

// IsBase reports whether d describes a base unit.
func (d Def) IsBase() bool { return d.Scale == 1 && d.Offset == 0 }

// Unit is the constraint satisfied by every quantity kind (Length, Mass, ...).
//
// A kind only provides the two primitives below; everything else (conversion,
// enumeration, parsing) is derived once in this package. U is the kind itself, which
// keeps every generic function bound to a single kind:
//
//	uom.Convert(10, uom.Meters, uom.Feet)     // ok
//	uom.Convert(10, uom.Meters, uom.Kilograms) // does not compile
type Unit[U any] interface {
	comparable
	fmt.Stringer

	// Def returns the table row of the variant.
	Def() Def
	// Units returns every variant of the kind in canonical order.
	Units() []U
}

// Convert converts v from one unit to another of the same kind, going through the
// kind's base unit. Converting to the same unit returns v unchanged.
func Convert[U Unit[U]](v float64, from, to U) float64 {
	if from == to {
		return v
	}
	return to.Def().FromBase(from.Def().ToBase(v))
}

// Base returns v, expressed in unit u, as a magnitude in the kind's base unit.
func Base[U Unit[U]](v float64, u U) float64 {
	if u == Default[U]() {
		return v
	}
	return u.Def().ToBase(v)
}

// Default returns the base unit of kind U. It is also the zero value of U.
func Default[U Unit[U]]() U {
	var zero U
	return zero
}

// Kind returns the name of kind U ("Length", "Temperature", ...).
func Kind[U Unit[U]]() string {
	return kindName(Default[U]())
}

// NameAndAbbr returns "Name (Abbr)" for u.
func NameAndAbbr[U Unit[U]](u U) string {
	return u.Def().NameAndAbbr()
}

// Units returns every variant of kind U in canonical order.
func Units[U Unit[U]]() []U {
	return Default[U]().Units()
}

// AllNames returns the names of every variant of kind U in canonical order.
func AllNames[U Unit[U]]() []string {
	return collect[U](func(d Def) string { return d.Name })
}

// AllAbbrs returns the abbreviations of every variant of kind U in canonical order.
func AllAbbrs[U Unit[U]]() []string {
	return collect[U](func(d Def) string { return d.Abbr })
}

// AllNamesAndAbbrs returns "Name (Abbr)" for every variant of kind U in canonical
// order. The result is index-aligned with AllNames and AllAbbrs.
func AllNamesAndAbbrs[U Unit[U]]() []string {
	return collect[U](Def.NameAndAbbr)
}

func collect[U Unit[U]](field func(Def) string) []string {
	units := Units[U]()
	out := make([]string, len(units))
	for i, u := range units {
		out[i] = field(u.Def())
	}
	return out
}

// Parse returns the variant of kind U whose abbreviation, name or "Name (Abbr)" form
// matches text.
//
// Surrounding whitespace is ignored. Variants are tried in canonical order, checking
// the abbreviation, then the name, then the combined form. An exact match always wins;
// only when nothing matches exactly is the same scan repeated ignoring case.
func Parse[U Unit[U]](text string) (U, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return Default[U](), false
	}
	units := Units[U]()
	if u, ok := match(units, func(label string) bool { return label == s }); ok {
		return u, true
	}
	return match(units, func(label string) bool { return strings.EqualFold(label, s) })
}

func match[U Unit[U]](units []U, eq func(string) bool) (U, bool) {
	for _, u := range units {
		d := u.Def()
		if eq(d.Abbr) || eq(d.Name) || eq(d.NameAndAbbr()) {
			return u, true
		}
	}
	var zero U
	return zero, false
}

// lookup returns table[i], panicking with a descriptive message when i is not a
// declared variant. Such values can only be produced by integer conversion.
func lookup[T ~uint8](table []Def, u T, kind string) Def {
	if int(u) >= len(table) {
		panic(fmt.Sprintf("uom: invalid %s unit %d", kind, uint8(u)))
	}
	return table[u]
}

// ordered returns a copy of a kind's canonical order so callers cannot alter it.
func ordered[T any](order []T) []T {
	return slices.Clone(order)
}

// kindName strips the package qualifier from the dynamic type name of u.
func kindName(u any) string {
	name := fmt.Sprintf("%T", u)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
