package models

import (
	"strings"
	"time"

	"github.com/cashplanner/backend/internal/forecast"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// Event sources. Derived events are owned by the planner's rebuild and
// are deleted and regenerated freely; authored events are created by the
// user and never touched by a rebuild.
const (
	SourcePlan         = "plan"
	SourceSubscription = "subscription"
	SourceVariable     = "variable"
	SourceCard         = "card"
	SourceOneOff       = "oneoff"
	SourceTransfer     = "transfer"
)

// DerivedSources are the event sources regenerated by the planner.
var DerivedSources = []string{SourcePlan, SourceSubscription, SourceVariable, SourceCard}

// AuthoredSources are the event sources created directly by users.
var AuthoredSources = []string{SourceOneOff, SourceTransfer}

// Event statuses.
const (
	StatusExpected = "expected"
	StatusDone     = "done"
)

// CashflowEvent is one entry of the materialized cashflow ledger.
type CashflowEvent struct {
	DefaultModel
	Date      time.Time `gorm:"index"`
	AmountYen int64     // signed: positive incoming, negative outgoing
	AccountID uuid.UUID
	Source    string

	// DefinitionID references the recurring definition a derived event
	// originates from, or the card for a settlement event. Nil for
	// authored events.
	DefinitionID *uuid.UUID

	Description string
	Status      string

	// Sequence is the explicit ordering tie-break for events on the same
	// day. The planner assigns it in generation order; authored events
	// get the next free number on create.
	Sequence uint64 `gorm:"index"`
}

// BeforeSave normalizes and validates the event.
func (e *CashflowEvent) BeforeSave(_ *gorm.DB) error {
	e.Description = strings.TrimSpace(e.Description)
	e.Date = e.Date.In(time.UTC)

	if e.Status == "" {
		e.Status = StatusExpected
	}

	if !slices.Contains(DerivedSources, e.Source) && !slices.Contains(AuthoredSources, e.Source) {
		return ErrEventSourceUnknown
	}

	return nil
}

// BeforeCreate assigns the next free sequence number when none is set.
func (e *CashflowEvent) BeforeCreate(tx *gorm.DB) error {
	_ = e.DefaultModel.BeforeCreate(tx)

	if e.Sequence == 0 {
		next, err := NextEventSequence(tx)
		if err != nil {
			return err
		}

		e.Sequence = next
	}

	return nil
}

// NextEventSequence returns the next free event sequence number.
func NextEventSequence(tx *gorm.DB) (uint64, error) {
	var max uint64
	err := tx.Model(&CashflowEvent{}).
		Select("COALESCE(MAX(sequence), 0)").
		Row().
		Scan(&max)
	if err != nil {
		return 0, err
	}

	return max + 1, nil
}

// Derived reports whether the event is owned by the planner.
func (e CashflowEvent) Derived() bool {
	return slices.Contains(DerivedSources, e.Source)
}

// Forecast returns the simulation view of the event.
func (e CashflowEvent) Forecast() forecast.Event {
	return forecast.Event{
		ID:        e.ID,
		Sequence:  e.Sequence,
		Date:      e.Date,
		Amount:    e.AmountYen,
		AccountID: e.AccountID,
	}
}
