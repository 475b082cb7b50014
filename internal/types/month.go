// Package types implements special types for the cashflow planner.
package types

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Month is a month in a specific year.
type Month time.Time

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// MonthOf returns the Month in which a time occurs.
func MonthOf(t time.Time) Month {
	year, month, _ := t.Date()
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// ParseMonth parses a "YYYY-MM" string and returns the Month value it represents.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, err
	}

	return MonthOf(t), nil
}

// String returns the month formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// MarshalJSON implements the json.Marshaler interface.
func (m Month) MarshalJSON() ([]byte, error) {
	return time.Time(m).MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// Accepted inputs are RFC3339 timestamps, "2006-01-02" dates and
// "2006-01" months. Everything except the year and month is ignored.
func (m *Month) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	pattern := "2006-01-02T15:04:05Z07:00"
	if ok, err := regexp.MatchString(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`, value); err == nil && ok {
		pattern = "2006-01-02"
	} else if ok, err := regexp.MatchString(`^[0-9]{4}-[0-9]{2}$`, value); err == nil && ok {
		pattern = "2006-01"
	}

	t, err := time.Parse(pattern, value)
	if err != nil {
		return err
	}

	*m = NewMonth(t.Year(), t.Month())
	return nil
}

// Scan reads the value from the database.
func (m *Month) Scan(value interface{}) (err error) {
	nullTime := &sql.NullTime{}
	err = nullTime.Scan(value)
	*m = Month(nullTime.Time)
	return err
}

// Value returns the value for the SQL driver to write to the database.
func (m Month) Value() (driver.Value, error) {
	year, month, _ := time.Time(m).Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Month) GormDataType() string {
	return "date"
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return Month(time.Time(m).AddDate(years, months, 0))
}

// Before reports whether the month instant m is before n.
func (m Month) Before(n Month) bool {
	return time.Time(m).Before(time.Time(n))
}

// After reports whether the month instant m is after n.
func (m Month) After(n Month) bool {
	return time.Time(m).After(time.Time(n))
}

// Equal reports whether m and n represent the same month.
func (m Month) Equal(n Month) bool {
	return time.Time(m).Equal(time.Time(n))
}

// Contains reports whether the time instant is in the month.
func (m Month) Contains(t time.Time) bool {
	return t.Year() == time.Time(m).Year() && t.Month() == time.Time(m).Month()
}

// First returns the first day of the month as a time instant.
func (m Month) First() time.Time {
	year, month, _ := time.Time(m).Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

// Last returns the last day of the month as a time instant.
func (m Month) Last() time.Time {
	return m.AddDate(0, 1).First().AddDate(0, 0, -1)
}

// LastDay returns the number of days in the month.
func (m Month) LastDay() int {
	return m.Last().Day()
}

// Day returns the given day of the month as a time instant, clamped to
// the length of the month so that no invalid date is ever produced.
// Day 31 in February resolves to the 28th or 29th.
func (m Month) Day(day int) time.Time {
	if last := m.LastDay(); day > last {
		day = last
	}
	if day < 1 {
		day = 1
	}

	year, month, _ := time.Time(m).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Index returns the linear month counter year*12 + (month - 1).
// The difference of two indexes is the number of months between two Months.
func (m Month) Index() int {
	year, month, _ := time.Time(m).Date()
	return year*12 + int(month) - 1
}

// MonthsSince returns the number of whole months from n to m.
// It is negative when m is before n.
func (m Month) MonthsSince(n Month) int {
	return m.Index() - n.Index()
}
