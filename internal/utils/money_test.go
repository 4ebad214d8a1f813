package utils

import "testing"

func TestFormatINRGrouping(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "₹0.00"},
		{999, "₹999.00"},
		{1000, "₹1,000.00"},
		{100000, "₹1,00,000.00"},
		{1234567.5, "₹12,34,567.50"},
		{12345678, "₹1,23,45,678.00"},
		{-2500.75, "-₹2,500.75"},
	}
	for _, c := range cases {
		if got := FormatINR(c.in); got != c.want {
			t.Fatalf("FormatINR(%v): got %q want %q", c.in, got, c.want)
		}
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"  ", 0},
		{"1200", 1200},
		{"1,200.50", 1200.5},
		{"₹1,200.50", 1200.5},
		{" ₹ 12,34,567 ", 1234567},
	}
	for _, c := range cases {
		got, err := ParseAmount(c.in)
		if err != nil {
			t.Fatalf("ParseAmount(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ParseAmount(%q): got %v want %v", c.in, got, c.want)
		}
	}

	if _, err := ParseAmount("abc"); err == nil {
		t.Fatalf("non-numeric amount must fail")
	}
}

func TestParseAmountRoundTripsFormat(t *testing.T) {
	for _, v := range []float64{0, 42.5, 1200, 99999.99, 1234567.5} {
		got, err := ParseAmount(FormatINR(v))
		if err != nil {
			t.Fatalf("round trip %v: %v", v, err)
		}
		if got != v {
			t.Fatalf("round trip %v: got %v", v, got)
		}
	}
}

func TestRound2(t *testing.T) {
	if got := Round2(10.006); got != 10.01 {
		t.Fatalf("Round2(10.006): got %v", got)
	}
	if got := Round2(10.004); got != 10.0 {
		t.Fatalf("Round2(10.004): got %v", got)
	}
}
