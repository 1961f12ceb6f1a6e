package core

import (
	"testing"
	"time"
)

func TestParseMonthKey(t *testing.T) {
	k, err := ParseMonthKey("2024-03")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if k.Year() != 2024 || k.Month() != 3 {
		t.Fatalf("got %d-%d", k.Year(), k.Month())
	}

	for _, bad := range []string{"", "2024", "2024-13", "03-2024", "2024-3x"} {
		if _, err := ParseMonthKey(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestMonthKeyNavigation(t *testing.T) {
	cases := []struct {
		key        MonthKey
		prev, next MonthKey
	}{
		{"2024-03", "2024-02", "2024-04"},
		{"2024-01", "2023-12", "2024-02"},
		{"2024-12", "2024-11", "2025-01"},
	}
	for _, tc := range cases {
		if got := tc.key.Prev(); got != tc.prev {
			t.Fatalf("%s.Prev() = %s, want %s", tc.key, got, tc.prev)
		}
		if got := tc.key.Next(); got != tc.next {
			t.Fatalf("%s.Next() = %s, want %s", tc.key, got, tc.next)
		}
	}
	// Round trip leaves the key unchanged.
	k := MonthKey("2024-03")
	if k.Next().Prev() != k {
		t.Fatalf("next/prev round trip changed key: %s", k.Next().Prev())
	}
}

func TestMonthKeyDate(t *testing.T) {
	if got := MonthKey("2024-03").Date(1); got != "2024-03-01" {
		t.Fatalf("got %s", got)
	}
	// Day 31 in a 30-day month normalizes forward.
	if got := MonthKey("2024-04").Date(31); got != "2024-05-01" {
		t.Fatalf("got %s", got)
	}
}

func TestMonthKeyLabel(t *testing.T) {
	if got := MonthKey("2024-03").Label(); got != "2024年03月" {
		t.Fatalf("got %s", got)
	}
}

func TestMonthKeyOf(t *testing.T) {
	ts := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	if got := MonthKeyOf(ts); got != "2024-03" {
		t.Fatalf("got %s", got)
	}
}
