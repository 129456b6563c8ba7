package token

import (
	"math"
	"strconv"
	"testing"
)

func TestFormatFloat(t *testing.T) {
	cases := []struct {
		f    float64
		want string
	}{
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{1, "1.0"},
		{-2.5, "-2.5"},
		{0.1, "0.1"},
		{123.456, "123.456"},
		{0.0001, "0.0001"},
		{0.00001, "1e-05"},
		{1.5e-7, "1.5e-07"},
		{1e15, "1000000000000000.0"},
		{1e16, "1e+16"},
		{1.25e20, "1.25e+20"},
		{1e100, "1e+100"},
		{math.MaxFloat64, "1.7976931348623157e+308"},
		{5e-324, "5e-324"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
		{math.NaN(), "nan"},
	}
	for _, c := range cases {
		if got := FormatFloat(c.f); got != c.want {
			t.Errorf("FormatFloat(%v) = %q, want %q", c.f, got, c.want)
		}
	}
}

func TestFloatRoundTrip(t *testing.T) {
	for _, f := range []float64{0, 1, -1, 0.1, 1.0 / 3, 2.5e-300, 6.02214076e23, 1e16, 123456789012345678} {
		got, err := ParseFloat(FormatFloat(f))
		if err != nil {
			t.Fatalf("%v: %v", f, err)
		}
		if got != f {
			t.Errorf("%v read back as %v", f, got)
		}
	}
}

func TestParseFloat(t *testing.T) {
	if f, err := ParseFloat("1e400"); err != nil || !math.IsInf(f, 1) {
		t.Errorf("1e400 = %v, %v", f, err)
	}
	if f, err := ParseFloat("nan"); err != nil || !math.IsNaN(f) {
		t.Errorf("nan = %v, %v", f, err)
	}
	for _, s := range []string{"0x1p-2", "-0X1P+3", "+0x10"} {
		if _, err := ParseFloat(s); err != strconv.ErrSyntax {
			t.Errorf("%q: expected ErrSyntax, got %v", s, err)
		}
	}
	if f, err := ParseFloat("+1.5"); err != nil || f != 1.5 {
		t.Errorf("+1.5: %v %v", f, err)
	}
	if _, err := ParseFloat("one"); err != strconv.ErrSyntax {
		t.Errorf("expected ErrSyntax, got %v", err)
	}
}

func TestIntAndBool(t *testing.T) {
	if i, err := ParseInt(FormatInt(-42)); err != nil || i != -42 {
		t.Errorf("-42: %d %v", i, err)
	}
	if _, err := ParseInt("9223372036854775808"); err != strconv.ErrRange {
		t.Errorf("expected ErrRange, got %v", err)
	}
	for _, s := range []string{"4.2", "+5", "0x10", "1_000", " 1"} {
		if _, err := ParseInt(s); err != strconv.ErrSyntax {
			t.Errorf("%q: expected ErrSyntax, got %v", s, err)
		}
	}
	for _, b := range []bool{true, false} {
		got, err := ParseBool(FormatBool(b))
		if err != nil || got != b {
			t.Errorf("%t: %t %v", b, got, err)
		}
	}
	if _, err := ParseBool("true"); err == nil {
		t.Error("bool literals are case sensitive")
	}
}
