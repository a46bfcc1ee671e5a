package models

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
)

// dateLayouts are the ISO-8601 forms accepted on input, most specific first.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Date is a point in time exchanged as an ISO-8601 string. Values without an
// offset are read as UTC.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses any of the accepted ISO-8601 layouts.
func ParseDate(s string) (Date, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{t}, nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q: expected ISO-8601 such as 2006-01-02 or 2006-01-02T15:04:05Z", s)
}

// Day returns midnight of the date's calendar day in its own location.
func (d Date) Day() Date {
	y, m, dd := d.Date()
	return Date{time.Date(y, m, dd, 0, 0, 0, 0, d.Location())}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.Format(time.RFC3339Nano))), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("invalid date %s: expected a JSON string", data)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
