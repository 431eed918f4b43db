package uom

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	yaml "go.yaml.in/yaml/v3"
)

func TestValue_ConvertLeavesReceiverUnchanged(t *testing.T) {
	v := New(10.0, Meters)
	ft := v.Convert(Feet)

	if v.Value() != 10 || v.Unit() != Meters {
		t.Fatalf("receiver changed: %v", v)
	}
	if ft.Unit() != Feet {
		t.Fatalf("unit = %v, want Feet", ft.Unit())
	}
	if math.Abs(ft.Value()-32.8084) > 1e-4 {
		t.Fatalf("value = %v, want ~32.8084", ft.Value())
	}
}

func TestValue_InAndBase(t *testing.T) {
	v := New(0.0, Celsius)
	if got := v.Base(); math.Abs(got-273.15) > 1e-9 {
		t.Fatalf("Base() = %v, want 273.15", got)
	}
	if got := v.In(Fahrenheit); math.Abs(got-32) > 1e-9 {
		t.Fatalf("In(Fahrenheit) = %v, want 32", got)
	}
}

func TestBase(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"ratio unit", Base(2, Kilometers), 2000},
		{"affine unit", Base(100, Celsius), 373.15},
		{"rankine", Base(491.67, Rankine), 273.15},
		{"other kind", Base(1, Hours), 3600},
	}
	for _, tt := range tests {
		if math.Abs(tt.got-tt.want) > 1e-9 {
			t.Errorf("%s: Base = %v, want %v", tt.name, tt.got, tt.want)
		}
	}

	// exact for the base unit itself, including values that do not survive v*1+0
	for _, v := range []float64{0.1, math.Copysign(0, -1), 1e308, math.SmallestNonzeroFloat64} {
		if got := Base(v, Meters); math.Float64bits(got) != math.Float64bits(v) {
			t.Errorf("Base(%v, Meters) = %v, want exact", v, got)
		}
	}
	if got := New(7.5, Meters).Base(); got != 7.5 {
		t.Errorf("Value.Base() = %v, want 7.5", got)
	}
}

func TestValue_String(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{New(5.2, Meters).String(), "5.2 m"},
		{New(0.0, Celsius).String(), "0 °C"},
		{New(-3.0, Knots).String(), "-3 kn"},
		{New(1e21, Pascals).String(), "1e+21 Pa"},
		{New(9.80665, MetersPerSecondSquared).String(), "9.80665 m/s²"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}

func TestParseValue(t *testing.T) {
	v, err := ParseValue[Pressure](14.7, "psi")
	if err != nil {
		t.Fatalf("ParseValue: %v", err)
	}
	if v.Unit() != PoundsPerSquareInch || v.Value() != 14.7 {
		t.Fatalf("got %v", v)
	}

	_, err = ParseValue[Pressure](1, "furlongs")
	if !errors.Is(err, ErrUnknownUnit) {
		t.Fatalf("err = %v, want ErrUnknownUnit", err)
	}
	var uerr *UnknownUnitError
	if !errors.As(err, &uerr) || uerr.Kind != "Pressure" || uerr.Text != "furlongs" {
		t.Fatalf("err = %#v", err)
	}
	if !strings.Contains(err.Error(), "not a pressure unit") {
		t.Fatalf("message = %q", err.Error())
	}
}

func TestValue_Text(t *testing.T) {
	in := New(3.0, StatuteMiles)
	b, err := in.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	if string(b) != "3 mi" {
		t.Fatalf("MarshalText = %q", b)
	}

	var out Value[Length]
	if err := out.UnmarshalText([]byte("3 Statute Miles")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if out != in {
		t.Fatalf("got %v, want %v", out, in)
	}

	for _, bad := range []string{"3", "x m", "3 parsecs"} {
		if err := out.UnmarshalText([]byte(bad)); err == nil {
			t.Errorf("UnmarshalText(%q) succeeded", bad)
		}
	}
}

func TestValue_JSON(t *testing.T) {
	type reading struct {
		Temp Value[Temperature] `json:"temp"`
	}

	b, err := json.Marshal(reading{Temp: New(21.5, Celsius)})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `{"temp":{"value":21.5,"unit":"°C"}}` {
		t.Fatalf("Marshal = %s", b)
	}

	var r reading
	if err := json.Unmarshal(b, &r); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if r.Temp != New(21.5, Celsius) {
		t.Fatalf("round trip = %v", r.Temp)
	}

	if err := json.Unmarshal([]byte(`{"temp":"70 °F"}`), &r); err != nil {
		t.Fatalf("Unmarshal string form: %v", err)
	}
	if r.Temp != New(70.0, Fahrenheit) {
		t.Fatalf("string form = %v", r.Temp)
	}

	err = json.Unmarshal([]byte(`{"temp":{"value":1,"unit":"m"}}`), &r)
	if !errors.Is(err, ErrUnknownUnit) {
		t.Fatalf("err = %v, want ErrUnknownUnit", err)
	}
}

func TestValue_JSONRejectsNonFinite(t *testing.T) {
	for _, f := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		v := New(f, Meters)
		if _, err := v.MarshalJSON(); err == nil || !strings.HasPrefix(err.Error(), "uom: ") {
			t.Errorf("MarshalJSON(%v) err = %v, want uom: error", v, err)
		}
		if _, err := json.Marshal(struct{ V Value[Length] }{v}); err == nil {
			t.Errorf("json.Marshal(%v) succeeded", v)
		}
		if _, err := v.MarshalText(); err != nil {
			t.Errorf("MarshalText(%v) = %v", v, err)
		}
	}
}

func TestValue_YAML(t *testing.T) {
	type leg struct {
		Distance Value[Length]   `yaml:"distance"`
		Speed    Value[Velocity] `yaml:"speed"`
	}

	out, err := yaml.Marshal(leg{Distance: New(12.0, NauticalMiles), Speed: New(6.0, Knots)})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(out), "unit: nmi") || !strings.Contains(string(out), "unit: kn") {
		t.Fatalf("Marshal = %s", out)
	}

	var got leg
	if err := yaml.Unmarshal(out, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Distance != New(12.0, NauticalMiles) || got.Speed != New(6.0, Knots) {
		t.Fatalf("round trip = %+v", got)
	}

	doc := "distance: 5 km\nspeed: {value: 3, unit: Meters per Second}\n"
	if err := yaml.Unmarshal([]byte(doc), &got); err != nil {
		t.Fatalf("Unmarshal mixed forms: %v", err)
	}
	if got.Distance != New(5.0, Kilometers) || got.Speed != New(3.0, MetersPerSecond) {
		t.Fatalf("mixed forms = %+v", got)
	}
}
