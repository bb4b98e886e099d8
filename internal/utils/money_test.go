package utils

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestRoundCents(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"28000.005", "28000.01"},
		{"28000.004", "28000.00"},
		{"26599.999", "26600.00"},
		{"0", "0.00"},
	}

	for _, tt := range tests {
		d, _ := decimal.NewFromString(tt.in)
		if got := RoundCents(d).StringFixed(2); got != tt.want {
			t.Errorf("RoundCents(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"999.5", "$999.50"},
		{"1234567.89", "$1,234,567.89"},
		{"1000", "$1,000.00"},
		{"-45250.75", "-$45,250.75"},
	}

	for _, tt := range tests {
		d, _ := decimal.NewFromString(tt.in)
		if got := FormatUSD(d); got != tt.want {
			t.Errorf("FormatUSD(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestFormatCount(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{114999, "114,999"},
		{13860000, "13,860,000"},
		{-7500, "-7,500"},
	}

	for _, tt := range tests {
		if got := FormatCount(tt.in); got != tt.want {
			t.Errorf("FormatCount(%d) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
