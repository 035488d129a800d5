package models

import (
	"database/sql/driver"
	"fmt"
	"math"
	"time"
)

// DateLayout is the calendar date format stored in work_entries.date.
const DateLayout = "2006-01-02"

// timestampLayouts are the formats SQLite DATETIME columns come back in.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05.999999999Z07:00",
	DateLayout,
}

// Date is a calendar day in YYYY-MM-DD form.
// It scans both TEXT values and driver-parsed time.Time values.
type Date string

// ParseDate validates s as YYYY-MM-DD.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return Date(t.Format(DateLayout)), nil
}

// DateOf returns the UTC calendar day of t.
func DateOf(t time.Time) Date {
	return Date(t.UTC().Format(DateLayout))
}

// Time returns midnight UTC of the day.
func (d Date) Time() (time.Time, error) {
	return time.Parse(DateLayout, string(d))
}

// String implements fmt.Stringer.
func (d Date) String() string { return string(d) }

// Scan implements sql.Scanner.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = ""
	case string:
		*d = Date(truncateDate(v))
	case []byte:
		*d = Date(truncateDate(string(v)))
	case time.Time:
		*d = Date(v.UTC().Format(DateLayout))
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
	return nil
}

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	return string(d), nil
}

func truncateDate(s string) string {
	if len(s) > len(DateLayout) {
		return s[:len(DateLayout)]
	}
	return s
}

// Timestamp wraps time.Time for DATETIME columns filled by CURRENT_TIMESTAMP.
type Timestamp struct {
	time.Time
}

// Scan implements sql.Scanner.
func (t *Timestamp) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		t.Time = time.Time{}
		return nil
	case time.Time:
		t.Time = v.UTC()
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Timestamp", src)
	}
}

func (t *Timestamp) parse(s string) error {
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("cannot parse timestamp %q", s)
}

// Value implements driver.Valuer.
func (t Timestamp) Value() (driver.Value, error) {
	return t.UTC().Format("2006-01-02 15:04:05"), nil
}

// RoundHours rounds to the two decimals of the hours column.
func RoundHours(h float64) float64 {
	return math.Round(h*100) / 100
}
