package catalog

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/idlab-discover/uom-cli/internal/apperr"
	"github.com/idlab-discover/uom-cli/pkg/uom"
)

// Request is a conversion expressed with strings, as typed by a user or read from a
// batch file. Kind is optional; when empty it is detected from the unit strings.
type Request struct {
	Kind  string  `json:"kind,omitempty" yaml:"kind,omitempty"`
	Value float64 `json:"value" yaml:"value"`
	From  string  `json:"from" yaml:"from"`
	To    string  `json:"to" yaml:"to"`
}

// MarshalJSON writes a NaN or infinite Value as its string form ("+Inf", "NaN"), which
// JSON numbers cannot carry, so a report containing such a request still encodes.
func (r Request) MarshalJSON() ([]byte, error) {
	type plain Request
	if finite(r.Value) {
		return json.Marshal(plain(r))
	}
	return json.Marshal(struct {
		plain
		Value string `json:"value"`
	}{plain(r), FormatMagnitude(r.Value, -1)})
}

func (r Request) String() string {
	return strconv.FormatFloat(r.Value, 'g', -1, 64) + " " + strings.TrimSpace(r.From) + " -> " + strings.TrimSpace(r.To)
}

// Result is a finished conversion.
type Result struct {
	Kind   string   `json:"kind" yaml:"kind"`
	Input  float64  `json:"input" yaml:"input"`
	From   UnitInfo `json:"from" yaml:"from"`
	Output float64  `json:"output" yaml:"output"`
	To     UnitInfo `json:"to" yaml:"to"`
}

// String renders "<input> <abbr> = <output> <abbr>" with shortest float formatting.
func (r Result) String() string {
	in, out := r.Format(-1)
	return in + " " + r.From.Abbr + " = " + out + " " + r.To.Abbr
}

// Format returns the input and output magnitudes with the given number of
// significant digits; a negative precision means the shortest exact form.
func (r Result) Format(precision int) (in, out string) {
	return FormatMagnitude(r.Input, precision), FormatMagnitude(r.Output, precision)
}

// FormatMagnitude formats f with precision significant digits (shortest form when
// precision is negative).
func FormatMagnitude(f float64, precision int) string {
	if precision < 0 {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	if precision == 0 {
		precision = 1
	}
	return strconv.FormatFloat(f, 'g', precision, 64)
}

// Convert converts v between two units of the kind. Non-finite magnitudes, and results
// that overflow float64, are user errors.
func (k Kind) Convert(v float64, from, to string) (Result, error) {
	if !finite(v) {
		return Result{}, apperr.Userf("magnitude %s is not a finite number", FormatMagnitude(v, -1))
	}
	fi, ok := k.parse(from)
	if !ok {
		return Result{}, unknownUnit(k.Name, from)
	}
	ti, ok := k.parse(to)
	if !ok {
		return Result{}, unknownUnit(k.Name, to)
	}
	out := k.convert(v, fi, ti)
	if !finite(out) {
		return Result{}, apperr.Userf("%s %s in %s: result out of float64 range",
			FormatMagnitude(v, -1), k.Units[fi].Abbr, k.Units[ti].Abbr)
	}
	logf(k.Name, "convert %v %s -> %v %s", v, k.Units[fi].Abbr, out, k.Units[ti].Abbr)
	return Result{
		Kind:   k.Name,
		Input:  v,
		From:   k.Units[fi],
		Output: out,
		To:     k.Units[ti],
	}, nil
}

// Convert runs req against kinds, detecting the kind when req.Kind is empty.
//
// Errors are apperr.UserErrors: unknown kind, unknown unit (wrapping
// uom.ErrUnknownUnit), units of different kinds, or units that fit several kinds.
func Convert(kinds []Kind, req Request) (Result, error) {
	if strings.TrimSpace(req.Kind) != "" {
		k, ok := Lookup(kinds, req.Kind)
		if !ok {
			return Result{}, apperr.Userf("unknown quantity kind %q (known: %s)", req.Kind, strings.Join(Names(kinds), ", "))
		}
		return k.Convert(req.Value, req.From, req.To)
	}

	k, err := Detect(kinds, req.From, req.To)
	if err != nil {
		return Result{}, err
	}
	return k.Convert(req.Value, req.From, req.To)
}

// Detect returns the single kind that has both from and to as units.
func Detect(kinds []Kind, from, to string) (Kind, error) {
	var both, fromKinds, toKinds []Kind
	for _, k := range kinds {
		f, t := k.Accepts(from), k.Accepts(to)
		if f {
			fromKinds = append(fromKinds, k)
		}
		if t {
			toKinds = append(toKinds, k)
		}
		if f && t {
			both = append(both, k)
		}
	}
	logf("", "detect from=%q to=%q candidates=%v", from, to, Names(both))

	switch {
	case len(both) == 1:
		return both[0], nil
	case len(both) > 1:
		return Kind{}, apperr.Userf("%q and %q are units of several kinds (%s); choose one with --kind",
			from, to, strings.Join(Names(both), ", "))
	case len(fromKinds) == 0:
		return Kind{}, unknownUnit("", from)
	case len(toKinds) == 0:
		return Kind{}, unknownUnit("", to)
	default:
		return Kind{}, apperr.Userf("cannot convert %s (%s) to %s (%s): different quantity kinds",
			from, strings.Join(Names(fromKinds), "/"), to, strings.Join(Names(toKinds), "/"))
	}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func unknownUnit(kind, text string) error {
	if kind == "" {
		return apperr.Userf("%w", &uom.UnknownUnitError{Kind: "known", Text: text})
	}
	return apperr.Userf("%w", &uom.UnknownUnitError{Kind: kind, Text: text})
}
