package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Holiday is a user-maintained public holiday. The calendar package only
// sees the injected provider; missing holiday data degrades business-day
// checks to weekends.
type Holiday struct {
	DefaultModel
	Date time.Time `gorm:"uniqueIndex:holiday_date"`
	Name string
}

// BeforeSave normalizes the holiday.
func (h *Holiday) BeforeSave(_ *gorm.DB) error {
	h.Name = strings.TrimSpace(h.Name)
	h.Date = time.Date(h.Date.Year(), h.Date.Month(), h.Date.Day(), 0, 0, 0, 0, time.UTC)

	return nil
}

// HolidaySet is a calendar.HolidayProvider over a loaded holiday table.
type HolidaySet map[string]struct{}

// IsHoliday reports whether the date is a recognized public holiday.
func (s HolidaySet) IsHoliday(t time.Time) bool {
	_, ok := s[t.Format("2006-01-02")]
	return ok
}

// LoadHolidays reads all holidays into a provider for the calendar.
func LoadHolidays(db *gorm.DB) (HolidaySet, error) {
	var holidays []Holiday
	if err := db.Find(&holidays).Error; err != nil {
		return nil, err
	}

	set := make(HolidaySet, len(holidays))
	for _, h := range holidays {
		set[h.Date.Format("2006-01-02")] = struct{}{}
	}

	return set, nil
}
