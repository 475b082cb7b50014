// Package models implements the database layer of the cashflow planner.
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultModel is the base model for all resources.
type DefaultModel struct {
	ID uuid.UUID `json:"id"` // UUID for the resource
	Timestamps
}

// Timestamps contains the timestamps gorm manages automatically.
type Timestamps struct {
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	DeletedAt *gorm.DeletedAt `json:"deletedAt" gorm:"index"`
}

// BeforeCreate generates a UUID for the resource.
func (m *DefaultModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

// AfterFind updates the timestamps to use UTC as timezone, not +0000.
// They are already stored in UTC, but reading them from the database
// returns them as +0000.
func (m *DefaultModel) AfterFind(_ *gorm.DB) error {
	m.CreatedAt = m.CreatedAt.In(time.UTC)
	m.UpdatedAt = m.UpdatedAt.In(time.UTC)

	if m.DeletedAt != nil {
		m.DeletedAt.Time = m.DeletedAt.Time.In(time.UTC)
	}

	return nil
}

// activeOn reports whether an optional validity window contains t.
func activeOn(start, end *time.Time, t time.Time) bool {
	if start != nil && t.Before(*start) {
		return false
	}
	if end != nil && t.After(*end) {
		return false
	}

	return true
}

// checkWindow rejects validity windows whose end precedes their start.
// A reversed window is never silently swapped.
func checkWindow(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return ErrWindowEndsBeforeStart
	}

	return nil
}

// deref returns the zero time for a nil window bound.
func deref(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}

	return *t
}
