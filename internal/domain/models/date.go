package models

import (
	"fmt"
	"strings"
	"time"
)

// dateLayout is the wire format used by the upstream API for all
// calendar dates (e.g. "2024-09-01").
const dateLayout = "2006-01-02"

// Date is a calendar date without a time-of-day component.
//
// The upstream API carries dates as "YYYY-MM-DD" strings; Date keeps that
// wire format while still allowing chronological comparisons through the
// embedded time.Time.
type Date struct {
	time.Time
}

// NewDate builds a Date from year, month and day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a "YYYY-MM-DD" string into a Date.
//
// Returns:
//   - Date: the parsed date (zero value on error).
//   - error: wrapping the underlying parse failure, if any.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{t}, nil
}

// String returns the date in wire format ("YYYY-MM-DD").
func (d Date) String() string {
	return d.Format(dateLayout)
}

// Display returns the human-readable label used on the chart axis
// (e.g. "Sep 1, 2024").
func (d Date) Display() string {
	return d.Format("Jan 2, 2006")
}

// MarshalJSON encodes the date as a "YYYY-MM-DD" JSON string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a "YYYY-MM-DD" JSON string into the date.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
