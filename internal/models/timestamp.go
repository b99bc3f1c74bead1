package models

import (
	"bytes"
	"database/sql/driver"
	"fmt"
	"time"
)

// LocalTimeLayout is the zone-less ISO-8601 form the backend speaks
const LocalTimeLayout = "2006-01-02T15:04:05"

// DateLayout is the day-only form used by date inputs
const DateLayout = "2006-01-02"

var localTimeParseLayouts = []string{
	LocalTimeLayout,
	time.RFC3339Nano,
	DateLayout,
}

// LocalTime is a timestamp serialized without a zone offset. Values are
// normalized to UTC.
type LocalTime struct {
	time.Time
}

func NewLocalTime(t time.Time) LocalTime {
	return LocalTime{Time: t.UTC()}
}

// Now returns the current time truncated to whole seconds
func Now() LocalTime {
	return NewLocalTime(time.Now().Truncate(time.Second))
}

// DateOf returns midnight of t's calendar day, the precision sale dates carry
func DateOf(t time.Time) LocalTime {
	return LocalTime{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// ParseLocalTime accepts the backend layout, RFC 3339 or a bare date
func ParseLocalTime(s string) (LocalTime, error) {
	var lastErr error
	for _, layout := range localTimeParseLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return NewLocalTime(t), nil
		}
		lastErr = err
	}
	return LocalTime{}, fmt.Errorf("invalid timestamp %q: %w", s, lastErr)
}

func (t LocalTime) String() string {
	if t.IsZero() {
		return ""
	}
	return t.Format(LocalTimeLayout)
}

// DateString renders the day only, as shown under a last-sale price
func (t LocalTime) DateString() string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

func (t LocalTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Format(LocalTimeLayout) + `"`), nil
}

func (t *LocalTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*t = LocalTime{}
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("invalid timestamp %s", data)
	}
	parsed, err := ParseLocalTime(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// GormDataType makes gorm declare the column as datetime so sqlite hands
// back time.Time values on scan.
func (LocalTime) GormDataType() string {
	return "datetime"
}

func (t LocalTime) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return t.UTC(), nil
}

func (t *LocalTime) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*t = LocalTime{}
		return nil
	case time.Time:
		*t = NewLocalTime(v)
		return nil
	case string:
		return t.scanString(v)
	case []byte:
		return t.scanString(string(v))
	default:
		return fmt.Errorf("cannot scan %T into LocalTime", src)
	}
}

func (t *LocalTime) scanString(s string) error {
	for _, layout := range []string{"2006-01-02 15:04:05.999999999-07:00", "2006-01-02 15:04:05"} {
		if parsed, err := time.Parse(layout, s); err == nil {
			*t = NewLocalTime(parsed)
			return nil
		}
	}
	parsed, err := ParseLocalTime(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
