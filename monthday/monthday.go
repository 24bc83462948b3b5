// Package monthday provides a calendar month and day without a year, such as
// a recurring birthday.
package monthday

import (
	"errors"
	"fmt"
	"time"
)

// ErrOutOfRange is returned when a month or day does not exist.
var ErrOutOfRange = errors.New("monthday: value out of range")

// maxDays holds the largest day of each month in any year.
var maxDays = [...]int{0, 31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// MonthDay is a month and a day of that month. The zero value is not a valid
// month-day; use Of, Parse or FromTime to build one.
type MonthDay struct {
	month time.Month
	day   int
}

// Of returns the month-day for month and day. February 29 is accepted since
// there is no year to rule it out.
func Of(month time.Month, day int) (MonthDay, error) {
	if month < time.January || month > time.December {
		return MonthDay{}, fmt.Errorf("%w: month %d", ErrOutOfRange, int(month))
	}
	if day < 1 || day > maxDays[month] {
		return MonthDay{}, fmt.Errorf("%w: day %d of %s", ErrOutOfRange, day, month)
	}
	return MonthDay{month: month, day: day}, nil
}

// MustOf is like Of but panics on an invalid month or day.
func MustOf(month time.Month, day int) MonthDay {
	m, err := Of(month, day)
	if err != nil {
		panic(err)
	}
	return m
}

// FromTime returns the month-day of t in t's location.
func FromTime(t time.Time) MonthDay {
	_, month, day := t.Date()
	return MonthDay{month: month, day: day}
}

// Now returns the current month-day in the local time zone.
func Now() MonthDay {
	return FromTime(time.Now())
}

func (m MonthDay) Month() time.Month {
	return m.month
}

func (m MonthDay) Day() int {
	return m.day
}

// IsZero reports whether m is the zero value.
func (m MonthDay) IsZero() bool {
	return m.month == 0 && m.day == 0
}

// String returns m in the canonical --MM-DD form.
func (m MonthDay) String() string {
	b := make([]byte, 0, textLen)
	return string(m.appendText(b))
}

func (m MonthDay) appendText(b []byte) []byte {
	b = append(b, '-', '-')
	b = appendTwoDigits(b, int(m.month))
	b = append(b, '-')
	return appendTwoDigits(b, m.day)
}

func appendTwoDigits(b []byte, v int) []byte {
	return append(b, byte('0'+v/10), byte('0'+v%10))
}

// Compare returns -1, 0 or +1 depending on whether m is before, equal to or
// after o.
func (m MonthDay) Compare(o MonthDay) int {
	a, b := Pack(m), Pack(o)
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (m MonthDay) Before(o MonthDay) bool {
	return m.Compare(o) < 0
}

func (m MonthDay) After(o MonthDay) bool {
	return m.Compare(o) > 0
}

// IsValidYear reports whether m exists in year. Only February 29 can fail.
func (m MonthDay) IsValidYear(year int) bool {
	return !(m.month == time.February && m.day == 29 && !isLeap(year))
}

// AtYear combines m with year into a date at midnight in loc. February 29
// resolves to February 28 outside leap years.
func (m MonthDay) AtYear(year int, loc *time.Location) time.Time {
	day := m.day
	if !m.IsValidYear(year) {
		day = 28
	}
	return time.Date(year, m.month, day, 0, 0, 0, 0, loc)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// MarshalText implements encoding.TextMarshaler.
func (m MonthDay) MarshalText() ([]byte, error) {
	return m.appendText(make([]byte, 0, textLen)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *MonthDay) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
