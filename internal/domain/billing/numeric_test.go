package billing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1.004", "1.00"},
		{"1.005", "1.01"},
		{"1.015", "1.02"},
		{"-1.005", "-1.01"},
		{"0", "0.00"},
		{"2.999", "3.00"},
	}

	for _, tt := range tests {
		got := Round2(dec(tt.input))
		if got.StringFixed(2) != tt.expected {
			t.Errorf("Round2(%s) = %s, want %s", tt.input, got.StringFixed(2), tt.expected)
		}
	}
}

func TestRound1(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"7.94", "7.9"},
		{"7.95", "8.0"},
		{"0.04", "0.0"},
		{"0.05", "0.1"},
		{"8", "8.0"},
	}

	for _, tt := range tests {
		got := Round1(dec(tt.input))
		if got.StringFixed(1) != tt.expected {
			t.Errorf("Round1(%s) = %s, want %s", tt.input, got.StringFixed(1), tt.expected)
		}
	}
}

func TestParseLenientNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected decimal.Decimal
	}{
		{name: "plain integer", input: "42", expected: dec("42")},
		{name: "decimal", input: "12.50", expected: dec("12.5")},
		{name: "negative", input: "-3.2", expected: dec("-3.2")},
		{name: "surrounding whitespace", input: "  7.5  ", expected: dec("7.5")},
		{name: "empty string falls back to zero", input: "", expected: decimal.Zero},
		{name: "whitespace only falls back to zero", input: "   ", expected: decimal.Zero},
		{name: "lone minus falls back to zero", input: "-", expected: decimal.Zero},
		{name: "trailing dot keeps integer part", input: "1.", expected: dec("1")},
		{name: "garbage falls back to zero", input: "abc", expected: decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLenientNumber(tt.input)
			if !got.Equal(tt.expected) {
				t.Errorf("ParseLenientNumber(%q) = %s, want %s", tt.input, got, tt.expected)
			}
		})
	}
}
