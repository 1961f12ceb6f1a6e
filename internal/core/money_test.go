package core

import (
	"errors"
	"testing"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"80000", 80000, true},
		{" 1200 ", 1200, true},
		{"-500", -500, true},
		{"", 0, false},
		{"abc", 0, false},
		{"12.5", 0, false},
	}
	for i, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.ok && (err != nil || got != tc.want) {
			t.Fatalf("case %d: got %d, %v", i, got, err)
		}
		if !tc.ok && !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("case %d: expected ErrInvalidAmount, got %v", i, err)
		}
	}
}

func TestFormatYen(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "¥0"},
		{5, "¥5"},
		{500, "¥500"},
		{80000, "¥80,000"},
		{1234567, "¥1,234,567"},
		{-9800, "-¥9,800"},
	}
	for _, tc := range cases {
		if got := FormatYen(tc.in); got != tc.want {
			t.Fatalf("FormatYen(%d) = %s, want %s", tc.in, got, tc.want)
		}
	}
}
