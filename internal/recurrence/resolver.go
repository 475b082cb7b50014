package recurrence

import (
	"time"

	"github.com/cashplanner/backend/internal/calendar"
	"github.com/cashplanner/backend/internal/types"
)

// OccursInMonth reports whether the definition's periodicity produces an
// occurrence in the given month. Validity windows and business-day
// shifting are not considered here; callers that need concrete dates use
// OccurrencesInRange.
func OccursInMonth(d Definition, month types.Month) bool {
	switch d.Frequency {
	case Monthly:
		return true
	case Yearly:
		return time.Time(month).Month() == d.Month
	case MonthlyInterval:
		interval := d.IntervalMonths
		if interval <= 0 {
			interval = 1
		}

		offset := month.MonthsSince(types.MonthOf(d.Anchor))
		return offset >= 0 && offset%interval == 0
	case WeeklyInterval:
		return len(rawWeeklyDates(d, month.First(), month.Last())) > 0
	}

	return false
}

// OccurrencesInRange returns the concrete occurrence dates of a
// definition whose raw date falls inside [start, end]. Raw dates are
// shifted by the business-day rule (incomes backward, expenses forward),
// so a returned date may fall slightly outside the queried range; the
// validity window is checked against the shifted date and decides
// inclusion. The result is strictly increasing and free of duplicates.
func OccurrencesInRange(cal calendar.Calendar, d Definition, start, end time.Time) []time.Time {
	if end.Before(start) {
		return nil
	}

	flow := calendar.Expense
	if d.Amount > 0 {
		flow = calendar.Income
	}

	var dates []time.Time
	for _, raw := range rawDatesInRange(d, start, end) {
		shifted := cal.ApplyBusinessDayRule(raw, flow)
		if !d.ActiveOn(shifted) {
			continue
		}
		if len(dates) > 0 && !dates[len(dates)-1].Before(shifted) {
			continue
		}

		dates = append(dates, shifted)
	}

	return dates
}

// rawDatesInRange returns the unshifted occurrence dates in [start, end].
func rawDatesInRange(d Definition, start, end time.Time) []time.Time {
	if d.Frequency == WeeklyInterval {
		return rawWeeklyDates(d, start, end)
	}

	var dates []time.Time
	for month := types.MonthOf(start); !month.First().After(end); month = month.AddDate(0, 1) {
		if !OccursInMonth(d, month) {
			continue
		}

		raw := month.Day(d.Day)
		if raw.Before(start) || raw.After(end) {
			continue
		}

		dates = append(dates, raw)
	}

	return dates
}

func rawWeeklyDates(d Definition, start, end time.Time) []time.Time {
	interval := d.IntervalWeeks
	if interval <= 0 {
		interval = 1
	}
	if d.Anchor.IsZero() || d.Anchor.After(end) {
		return nil
	}

	step := interval * 7
	raw := d.Anchor

	// Skip ahead to the first occurrence at or after start.
	if raw.Before(start) {
		days := int(start.Sub(raw).Hours() / 24)
		raw = raw.AddDate(0, 0, (days+step-1)/step*step)
	}

	var dates []time.Time
	for !raw.After(end) {
		dates = append(dates, raw)
		raw = raw.AddDate(0, 0, step)
	}

	return dates
}
