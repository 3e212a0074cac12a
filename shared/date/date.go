// Package date provides a day-granularity calendar date used for stays,
// report filters and room-status windows.
//
// A Date carries no clock and no zone. Comparisons between two dates are
// therefore exact, which is what the half-open stay interval
// [checkIn, checkOut) relies on.
package date

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	Layout = "2006-01-02"

	secondsPerDay = 24 * 60 * 60
)

type Date struct {
	t time.Time
}

var (
	// Floor and Ceiling stand in for an open range bound.
	Floor   = New(1900, time.January, 1)
	Ceiling = New(2100, time.December, 31)
)

func New(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Of returns the calendar date of t as observed in t's own location.
func Of(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}

	return New(t.Year(), t.Month(), t.Day())
}

func Today(loc *time.Location) Date {
	return Of(time.Now().In(loc))
}

func Parse(value string) (Date, error) {
	if value == "" {
		return Date{}, nil
	}

	t, err := time.Parse(Layout, value)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", value, err)
	}

	return Date{t: t}, nil
}

func MustParse(value string) Date {
	d, err := Parse(value)
	if err != nil {
		panic(err)
	}

	return d
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) Year() int {
	return d.t.Year()
}

func (d Date) Month() time.Month {
	return d.t.Month()
}

func (d Date) Day() int {
	return d.t.Day()
}

func (d Date) Time() time.Time {
	return d.t
}

func (d Date) AddDays(days int) Date {
	if d.IsZero() {
		return d
	}

	return Date{t: d.t.AddDate(0, 0, days)}
}

// DaysUntil counts calendar days from d to other; negative when other is earlier.
func (d Date) DaysUntil(other Date) int {
	return int((other.t.Unix() - d.t.Unix()) / secondsPerDay)
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

func (d Date) Compare(other Date) int {
	return d.t.Compare(other.t)
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}

	return d.t.Format(Layout)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}

	return d.UnmarshalText([]byte(value))
}
