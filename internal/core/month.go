package core

import (
	"fmt"
	"time"
)

// MonthKey identifies a calendar month as "YYYY-MM". It scopes amount
// records and the viewed schedule.
type MonthKey string

// MonthKeyOf returns the key for the month containing t.
func MonthKeyOf(t time.Time) MonthKey {
	return MonthKey(t.Format("2006-01"))
}

// ParseMonthKey validates and normalizes a "YYYY-MM" string.
func ParseMonthKey(s string) (MonthKey, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return "", fmt.Errorf("parse month key %q: %w", s, err)
	}
	return MonthKeyOf(t), nil
}

func (k MonthKey) split() (year, month int) {
	fmt.Sscanf(string(k), "%d-%d", &year, &month)
	return
}

// Year returns the calendar year.
func (k MonthKey) Year() int {
	y, _ := k.split()
	return y
}

// Month returns the month number, 1-12.
func (k MonthKey) Month() int {
	_, m := k.split()
	return m
}

// Prev returns the preceding month, rolling the year back at January.
func (k MonthKey) Prev() MonthKey {
	y, m := k.split()
	if m == 1 {
		y, m = y-1, 12
	} else {
		m--
	}
	return MonthKey(fmt.Sprintf("%04d-%02d", y, m))
}

// Next returns the following month, rolling the year forward at December.
func (k MonthKey) Next() MonthKey {
	y, m := k.split()
	if m == 12 {
		y, m = y+1, 1
	} else {
		m++
	}
	return MonthKey(fmt.Sprintf("%04d-%02d", y, m))
}

// Date synthesizes a "YYYY-MM-DD" billing date for the given day of this
// month. Days past the end of the month normalize forward, so day 31 in a
// 30-day month lands on the 1st of the next month.
func (k MonthKey) Date(day int) string {
	y, m := k.split()
	t := time.Date(y, time.Month(m), day, 0, 0, 0, 0, time.UTC)
	return t.Format("2006-01-02")
}

// Label renders the month heading, e.g. "2024年03月".
func (k MonthKey) Label() string {
	y, m := k.split()
	return fmt.Sprintf("%d年%02d月", y, m)
}
