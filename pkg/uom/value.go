package uom

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownUnit is returned (wrapped) when unit text matches no variant of a kind.
var ErrUnknownUnit = errors.New("unknown unit")

// UnknownUnitError records which text failed to parse and for which kind.
type UnknownUnitError struct {
	Kind string
	Text string
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("%s: %q is not a %s unit", ErrUnknownUnit, e.Text, strings.ToLower(e.Kind))
}

func (e *UnknownUnitError) Unwrap() error { return ErrUnknownUnit }

// Value is a magnitude expressed in a unit of kind U.
//
// Values are immutable; Convert returns a new Value. The magnitude is kept exactly as
// given, in its own unit, with no hidden normalization.
type Value[U Unit[U]] struct {
	value float64
	unit  U
}

// New returns v expressed in unit u.
func New[U Unit[U]](v float64, u U) Value[U] {
	return Value[U]{value: v, unit: u}
}

// ParseValue pairs v with the unit named by text (see Parse).
func ParseValue[U Unit[U]](v float64, text string) (Value[U], error) {
	u, ok := Parse[U](text)
	if !ok {
		return Value[U]{}, &UnknownUnitError{Kind: Kind[U](), Text: text}
	}
	return New(v, u), nil
}

// Value returns the magnitude in the value's own unit.
func (v Value[U]) Value() float64 { return v.value }

// Unit returns the value's unit.
func (v Value[U]) Unit() U { return v.unit }

// Convert returns the equivalent value expressed in unit to.
func (v Value[U]) Convert(to U) Value[U] {
	return Value[U]{value: Convert(v.value, v.unit, to), unit: to}
}

// In returns the magnitude of v expressed in unit to.
func (v Value[U]) In(to U) float64 {
	return Convert(v.value, v.unit, to)
}

// Base returns the magnitude of v expressed in the kind's base unit.
func (v Value[U]) Base() float64 {
	return Base(v.value, v.unit)
}

// String renders "<magnitude> <abbr>", e.g. "5.2 m".
func (v Value[U]) String() string {
	return formatFloat(v.value) + " " + v.unit.Def().Abbr
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
