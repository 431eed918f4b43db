// Package catalog exposes the quantity kinds of pkg/uom to string-driven callers
// (command line, batch files, interactive forms) without giving up the typed core:
// every conversion still runs through uom.Value of the matching kind.
package catalog

import (
	"strings"

	"github.com/idlab-discover/uom-cli/pkg/uom"
)

// UnitInfo describes one unit of a kind.
type UnitInfo struct {
	Name        string  `json:"name" yaml:"name"`
	Abbr        string  `json:"abbr" yaml:"abbr"`
	NameAndAbbr string  `json:"-" yaml:"-"`
	Scale       float64 `json:"scale" yaml:"scale"`
	Offset      float64 `json:"offset,omitempty" yaml:"offset,omitempty"`
	Base        bool    `json:"base,omitempty" yaml:"base,omitempty"`
}

// Kind is a quantity kind with its units in canonical order.
type Kind struct {
	Name  string
	Units []UnitInfo

	parse   func(string) (int, bool)
	convert func(v float64, from, to int) float64
}

// Registry returns every quantity kind. The slice is built on each call; callers may
// keep or modify it freely.
func Registry() []Kind {
	return []Kind{
		describe[uom.Length](),
		describe[uom.Mass](),
		describe[uom.Time](),
		describe[uom.Temperature](),
		describe[uom.Velocity](),
		describe[uom.Force](),
		describe[uom.Pressure](),
		describe[uom.Bearing](),
		describe[uom.Acceleration](),
	}
}

// describe erases kind U behind index-based closures.
func describe[U uom.Unit[U]]() Kind {
	units := uom.Units[U]()
	infos := make([]UnitInfo, len(units))
	for i, u := range units {
		d := u.Def()
		infos[i] = UnitInfo{
			Name:        d.Name,
			Abbr:        d.Abbr,
			NameAndAbbr: d.NameAndAbbr(),
			Scale:       d.Scale,
			Offset:      d.Offset,
			Base:        u == uom.Default[U](),
		}
	}

	indexOf := func(u U) int {
		for i, x := range units {
			if x == u {
				return i
			}
		}
		return -1
	}

	return Kind{
		Name:  uom.Kind[U](),
		Units: infos,
		parse: func(s string) (int, bool) {
			u, ok := uom.Parse[U](s)
			if !ok {
				return -1, false
			}
			return indexOf(u), true
		},
		convert: func(v float64, from, to int) float64 {
			return uom.New(v, units[from]).Convert(units[to]).Value()
		},
	}
}

// Names returns the kind names of kinds in order.
func Names(kinds []Kind) []string {
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = k.Name
	}
	return out
}

// Lookup finds a kind by name, ignoring case and surrounding whitespace.
func Lookup(kinds []Kind, name string) (Kind, bool) {
	name = strings.TrimSpace(name)
	for _, k := range kinds {
		if strings.EqualFold(k.Name, name) {
			return k, true
		}
	}
	return Kind{}, false
}

// Parse resolves unit text within the kind (see uom.Parse for the matching rules).
func (k Kind) Parse(s string) (UnitInfo, bool) {
	i, ok := k.parse(s)
	if !ok {
		return UnitInfo{}, false
	}
	return k.Units[i], true
}

// Base returns the kind's base unit.
func (k Kind) Base() UnitInfo {
	for _, u := range k.Units {
		if u.Base {
			return u
		}
	}
	return UnitInfo{}
}

// Accepts reports whether s names a unit of the kind.
func (k Kind) Accepts(s string) bool {
	_, ok := k.parse(s)
	return ok
}
