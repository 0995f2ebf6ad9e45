package domain

import (
	"database/sql/driver" // Valuer interface for GORM
	"encoding/json"       // JSON encoding/decoding
	"fmt"                 // Error formatting
	"strings"             // String trimming
	"time"                // Calendar handling
)

// DateLayout is the wire and storage format of a calendar date
const DateLayout = "2006-01-02"

// Date is a calendar date without a clock component, always held in UTC
type Date struct {
	t time.Time // Midnight UTC of the date
}

// NewDate builds a Date from its parts
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates a point in time to its calendar date in the time's own location
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// ParseDate parses a YYYY-MM-DD string, or an RFC 3339 timestamp whose date part is kept as written.
// Year 1 January 1 is the zero Date and is rejected.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(DateLayout, s)
	if err != nil && len(s) > len(DateLayout) {
		t, err = time.Parse(time.RFC3339, s) // "2024-01-02T00:00:00Z" style values
	}
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	d := DateOf(t)
	if d.IsZero() {
		return Date{}, fmt.Errorf("invalid date %q: out of range", s)
	}
	return d, nil
}

// storedLayouts are the text forms drivers return for DATE columns
var storedLayouts = []string{
	DateLayout,
	"2006-01-02 15:04:05-07:00",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	time.RFC3339Nano,
}

// parseStored reads a date written by the database itself
func parseStored(s string) (Date, error) {
	s = strings.TrimSpace(s)
	for _, layout := range storedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t), nil
		}
	}
	return Date{}, fmt.Errorf("cannot read stored date %q", s)
}

// IsZero reports whether the date is unset
func (d Date) IsZero() bool { return d.t.IsZero() }

// Time returns midnight UTC of the date
func (d Date) Time() time.Time { return d.t }

// Year of the date
func (d Date) Year() int { return d.t.Year() }

// Month of the date
func (d Date) Month() time.Month { return d.t.Month() }

// Before reports whether d is strictly earlier than o
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }

// After reports whether d is strictly later than o
func (d Date) After(o Date) bool { return d.t.After(o.t) }

// Equal reports whether both dates are the same day
func (d Date) Equal(o Date) bool { return d.t.Equal(o.t) }

// AddDays shifts the date by n days
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

// String formats the date as YYYY-MM-DD, or "" when unset
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

// MarshalJSON writes the date as "YYYY-MM-DD" or null
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts "YYYY-MM-DD", "" or null
func (d *Date) UnmarshalJSON(b []byte) error {
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	if s == nil || strings.TrimSpace(*s) == "" {
		*d = Date{} // Unset
		return nil
	}
	parsed, err := ParseDate(*s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value stores the date as a midnight UTC timestamp, which every supported driver maps onto a DATE column
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.t, nil
}

// Scan reads a DATE column back from any of the supported drivers
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = DateOf(v) // MySQL (parseTime), Postgres and SQLite DATE columns
		return nil
	case string:
		parsed, err := parseStored(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		return d.Scan(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}
