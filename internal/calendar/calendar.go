// Package calendar implements business-day classification and shifting
// for cashflow dates.
package calendar

import "time"

// Direction is the direction a date is shifted in to reach a business day.
type Direction int

const (
	Backward Direction = iota
	Forward
)

// Flow describes whether a cashflow date belongs to money coming in or
// going out. Incomes are pulled backward so they never appear to arrive
// late, expenses are pushed forward so they never appear to leave early.
type Flow int

const (
	Income Flow = iota
	Expense
)

// HolidayProvider reports whether a date is a public holiday.
// Implementations are injected; the calendar itself has no holiday data.
type HolidayProvider interface {
	IsHoliday(t time.Time) bool
}

// Calendar classifies and shifts dates. The zero value is usable and
// degrades to weekend-only checking when no holiday provider is set.
type Calendar struct {
	Holidays HolidayProvider
}

// IsBusinessDay reports whether t is neither a weekend day nor a
// recognized public holiday.
func (c Calendar) IsBusinessDay(t time.Time) bool {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}

	if c.Holidays != nil && c.Holidays.IsHoliday(t) {
		return false
	}

	return true
}

// ShiftToBusinessDay walks one day at a time in the given direction until
// a business day is reached. A date that already is a business day is
// returned unchanged.
func (c Calendar) ShiftToBusinessDay(t time.Time, direction Direction) time.Time {
	step := 1
	if direction == Backward {
		step = -1
	}

	for !c.IsBusinessDay(t) {
		t = t.AddDate(0, 0, step)
	}

	return t
}

// ApplyBusinessDayRule shifts a date that falls on a non-business day:
// incomes are shifted backward, expenses forward.
func (c Calendar) ApplyBusinessDayRule(t time.Time, flow Flow) time.Time {
	if flow == Income {
		return c.ShiftToBusinessDay(t, Backward)
	}

	return c.ShiftToBusinessDay(t, Forward)
}
