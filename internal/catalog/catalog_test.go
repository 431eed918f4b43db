package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/idlab-discover/uom-cli/internal/apperr"
	"github.com/idlab-discover/uom-cli/pkg/uom"
)

func TestRegistry_MatchesCore(t *testing.T) {
	kinds := Registry()
	if len(kinds) != 9 {
		t.Fatalf("len(Registry()) = %d, want 9", len(kinds))
	}

	length, ok := Lookup(kinds, "length")
	if !ok {
		t.Fatalf("Lookup(length) failed")
	}
	abbrs := uom.AllAbbrs[uom.Length]()
	if len(length.Units) != len(abbrs) {
		t.Fatalf("units = %d, want %d", len(length.Units), len(abbrs))
	}
	for i, u := range length.Units {
		if u.Abbr != abbrs[i] {
			t.Errorf("Units[%d].Abbr = %q, want %q", i, u.Abbr, abbrs[i])
		}
	}
	if base := length.Base(); base.Name != "Meters" || base.Scale != 1 {
		t.Fatalf("Base() = %+v", base)
	}

	for _, k := range kinds {
		bases := 0
		for _, u := range k.Units {
			if u.Base {
				bases++
			}
		}
		if bases != 1 {
			t.Errorf("%s has %d base units", k.Name, bases)
		}
	}
}

func TestRegistry_FreshSlices(t *testing.T) {
	a := Registry()
	a[0].Units[0].Name = "changed"
	if b := Registry(); b[0].Units[0].Name == "changed" {
		t.Fatalf("Registry() shares state between calls")
	}
}

func TestLookup(t *testing.T) {
	kinds := Registry()
	for _, name := range []string{"Temperature", "temperature", "  PRESSURE "} {
		if _, ok := Lookup(kinds, name); !ok {
			t.Errorf("Lookup(%q) failed", name)
		}
	}
	if _, ok := Lookup(kinds, "volume"); ok {
		t.Errorf("Lookup(volume) succeeded")
	}
}

func TestConvert(t *testing.T) {
	kinds := Registry()

	tests := []struct {
		name     string
		req      Request
		wantKind string
		want     float64
	}{
		{name: "detected length", req: Request{Value: 10, From: "m", To: "ft"}, wantKind: "Length", want: 32.8084},
		{name: "detected temperature", req: Request{Value: 0, From: "Celsius", To: "K"}, wantKind: "Temperature", want: 273.15},
		{name: "grams are mass", req: Request{Value: 1000, From: "g", To: "kg"}, wantKind: "Mass", want: 1},
		{name: "g is gravity next to m/s²", req: Request{Value: 1, From: "g", To: "m/s²"}, wantKind: "Acceleration", want: 9.80665},
		{name: "explicit kind", req: Request{Kind: "acceleration", Value: 2, From: "g", To: "g"}, wantKind: "Acceleration", want: 2},
		{name: "case folded units", req: Request{Value: 1, From: "KM", To: "M"}, wantKind: "Length", want: 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Convert(kinds, tt.req)
			if err != nil {
				t.Fatalf("Convert: %v", err)
			}
			if res.Kind != tt.wantKind {
				t.Fatalf("kind = %s, want %s", res.Kind, tt.wantKind)
			}
			if math.Abs(res.Output-tt.want) > 1e-4 {
				t.Fatalf("output = %v, want ~%v", res.Output, tt.want)
			}
			if res.Input != tt.req.Value {
				t.Fatalf("input = %v, want %v", res.Input, tt.req.Value)
			}
		})
	}
}

func TestConvert_Errors(t *testing.T) {
	kinds := Registry()

	tests := []struct {
		name    string
		req     Request
		unknown bool
		msg     string
	}{
		{name: "unknown kind", req: Request{Kind: "volume", From: "l", To: "ml"}, msg: "unknown quantity kind"},
		{name: "unknown from", req: Request{From: "parsec", To: "m"}, unknown: true, msg: `"parsec" is not a known unit`},
		{name: "unknown to", req: Request{From: "m", To: "parsec"}, unknown: true, msg: `"parsec"`},
		{name: "unknown within kind", req: Request{Kind: "mass", From: "m", To: "kg"}, unknown: true, msg: "not a mass unit"},
		{name: "different kinds", req: Request{From: "m", To: "kg"}, msg: "different quantity kinds"},
		{name: "ambiguous", req: Request{From: "g", To: "g"}, msg: "several kinds (Mass, Acceleration)"},
		{name: "overflow", req: Request{Value: 1e306, From: "km", To: "mm"}, msg: "1e+306 km in mm: result out of float64 range"},
		{name: "negative overflow", req: Request{Value: -1e306, From: "km", To: "mm"}, msg: "out of float64 range"},
		{name: "infinite input", req: Request{Value: math.Inf(1), From: "m", To: "ft"}, msg: "magnitude +Inf is not a finite number"},
		{name: "nan input", req: Request{Kind: "length", Value: math.NaN(), From: "m", To: "m"}, msg: "magnitude NaN is not a finite number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Convert(kinds, tt.req)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !apperr.IsUser(err) {
				t.Fatalf("expected user error, got %T", err)
			}
			if got := errors.Is(err, uom.ErrUnknownUnit); got != tt.unknown {
				t.Fatalf("errors.Is(ErrUnknownUnit) = %v, want %v", got, tt.unknown)
			}
			if !strings.Contains(err.Error(), tt.msg) {
				t.Fatalf("error %q does not contain %q", err.Error(), tt.msg)
			}
		})
	}
}

func TestResult_Formatting(t *testing.T) {
	res, err := Convert(Registry(), Request{Value: 10, From: "m", To: "ft"})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if got := res.String(); !strings.HasPrefix(got, "10 m = 32.8083989") || !strings.HasSuffix(got, " ft") {
		t.Fatalf("String() = %q", got)
	}
	in, out := res.Format(6)
	if in != "10" || out != "32.8084" {
		t.Fatalf("Format(6) = %q, %q", in, out)
	}

	v := res.View(6)
	if v.Kind != "Length" || v.Output != "32.8084" || v.From.Abbr != "m" || !v.From.Base || v.To.Name != "Feet" {
		t.Fatalf("View(6) = %+v", v)
	}
}

func TestFormatMagnitude(t *testing.T) {
	tests := []struct {
		f    float64
		prec int
		want string
	}{
		{32.808398950131235, -1, "32.808398950131235"},
		{32.808398950131235, 3, "32.8"},
		{273.15, 0, "3e+02"},
		{0.000123456, 2, "0.00012"},
	}
	for _, tt := range tests {
		if got := FormatMagnitude(tt.f, tt.prec); got != tt.want {
			t.Errorf("FormatMagnitude(%v, %d) = %q, want %q", tt.f, tt.prec, got, tt.want)
		}
	}
}

func TestRequest_String(t *testing.T) {
	r := Request{Value: 2.5, From: " km ", To: "mi"}
	if got := r.String(); got != "2.5 km -> mi" {
		t.Fatalf("String() = %q", got)
	}
}

func TestRequest_MarshalJSON(t *testing.T) {
	tests := []struct {
		req  Request
		want string
	}{
		{Request{Value: 2.5, From: "km", To: "mi"}, `{"value":2.5,"from":"km","to":"mi"}`},
		{Request{Kind: "length", Value: math.Inf(1), From: "m", To: "ft"}, `{"kind":"length","from":"m","to":"ft","value":"+Inf"}`},
		{Request{Value: math.NaN(), From: "m", To: "ft"}, `{"from":"m","to":"ft","value":"NaN"}`},
	}
	for _, tt := range tests {
		b, err := json.Marshal(tt.req)
		if err != nil {
			t.Fatalf("Marshal(%v): %v", tt.req, err)
		}
		if string(b) != tt.want {
			t.Errorf("Marshal = %s, want %s", b, tt.want)
		}
	}
}

func TestTables(t *testing.T) {
	tables := Tables(Registry())
	if len(tables) != 9 || tables[3].Kind != "Temperature" {
		t.Fatalf("tables = %+v", tables)
	}
	celsius := tables[3].Units[1]
	if celsius.Abbr != "°C" || celsius.Offset != 273.15 || celsius.NameAndAbbr != uom.Celsius.NameAndAbbr() {
		t.Fatalf("celsius row = %+v", celsius)
	}
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(&buf)
	t.Cleanup(func() { SetLogger(nil) })

	if _, err := Convert(Registry(), Request{Value: 1, From: "kn", To: "km/h"}); err != nil {
		t.Fatalf("Convert: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "kind=Velocity") || !strings.Contains(out, "convert 1 kn -> ") {
		t.Fatalf("log output = %q", out)
	}
	if !strings.Contains(out, "kind=(any) detect") {
		t.Fatalf("expected detection log, got %q", out)
	}
}
