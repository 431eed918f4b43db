package uom

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	yaml "go.yaml.in/yaml/v3"
)

// wireValue is the document form of a Value: {"value": 5.2, "unit": "m"}.
type wireValue struct {
	Value float64 `json:"value" yaml:"value"`
	Unit  string  `json:"unit" yaml:"unit"`
}

func (v Value[U]) wire() wireValue {
	return wireValue{Value: v.value, Unit: v.unit.Def().Abbr}
}

func (v *Value[U]) fromWire(w wireValue) error {
	parsed, err := ParseValue[U](w.Value, w.Unit)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalText encodes v in its display form, "5.2 m".
func (v Value[U]) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText decodes the display form. The magnitude is everything before the
// first space; the rest is parsed as a unit, so "3 Statute Miles" is accepted.
func (v *Value[U]) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	num, unit, ok := strings.Cut(s, " ")
	if !ok {
		return fmt.Errorf("uom: %q: expected \"<magnitude> <unit>\"", s)
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return fmt.Errorf("uom: %q: bad magnitude: %w", s, err)
	}
	return v.fromWire(wireValue{Value: f, Unit: unit})
}

// MarshalJSON encodes v as {"value": <magnitude>, "unit": "<abbr>"}. JSON has no
// representation for NaN or infinities, so such magnitudes are an error.
func (v Value[U]) MarshalJSON() ([]byte, error) {
	if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
		return nil, fmt.Errorf("uom: cannot encode %s as JSON: magnitude is not finite", v)
	}
	return json.Marshal(v.wire())
}

// UnmarshalJSON accepts the object form written by MarshalJSON, or a string in the
// display form.
func (v *Value[U]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return v.UnmarshalText([]byte(s))
	}
	var w wireValue
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	return v.fromWire(w)
}

// MarshalYAML encodes v as a mapping with value and unit keys.
func (v Value[U]) MarshalYAML() (any, error) {
	return v.wire(), nil
}

// UnmarshalYAML accepts the mapping written by MarshalYAML, or a scalar in the display
// form.
func (v *Value[U]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return v.UnmarshalText([]byte(node.Value))
	}
	var w wireValue
	if err := node.Decode(&w); err != nil {
		return err
	}
	return v.fromWire(w)
}
