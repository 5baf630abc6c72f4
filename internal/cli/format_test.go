package cli

import (
	"math"
	"testing"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{5, "$5.00"},
		{12.5, "$12.50"},
		{1234.56, "$1,234.56"},
		{1000000, "$1,000,000.00"},
		{-3, "-$3.00"},
		{2.675, "$2.68"},
		{math.NaN(), "$-"},
	}
	for _, tt := range tests {
		if got := FormatMoney(tt.in); got != tt.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatMoneyShort(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{950, "$950"},
		{5000, "$5,000"},
		{12500, "$12.5K"},
		{2_000_000, "$2.0M"},
		{-12500, "-$12.5K"},
	}
	for _, tt := range tests {
		if got := FormatMoneyShort(tt.in); got != tt.want {
			t.Errorf("FormatMoneyShort(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-1234, "-1,234"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(0.03); got != "3.00%" {
		t.Fatalf("FormatPercent(0.03) = %q, want 3.00%%", got)
	}
	if got := FormatPercent(0.025); got != "2.50%" {
		t.Fatalf("FormatPercent(0.025) = %q, want 2.50%%", got)
	}
}

func TestFormatDelta(t *testing.T) {
	if got := FormatDelta(150, 100); got != "+$50.00" {
		t.Fatalf("FormatDelta(150, 100) = %q", got)
	}
	if got := FormatDelta(100, 150); got != "-$50.00" {
		t.Fatalf("FormatDelta(100, 150) = %q", got)
	}
}

func TestFormatMonths(t *testing.T) {
	if got := FormatMonths(1); got != "1 month" {
		t.Fatalf("FormatMonths(1) = %q", got)
	}
	if got := FormatMonths(24); got != "24 months" {
		t.Fatalf("FormatMonths(24) = %q", got)
	}
}
