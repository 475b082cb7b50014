// Package planner rebuilds the derived portion of the cashflow event
// ledger from recurring definitions, card transactions and amortization
// schedules.
package planner

import (
	"fmt"
	"time"

	"github.com/cashplanner/backend/internal/billing"
	"github.com/cashplanner/backend/internal/calendar"
	"github.com/cashplanner/backend/internal/models"
	"github.com/cashplanner/backend/internal/recurrence"
	"github.com/cashplanner/backend/internal/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// HorizonMonths is the forecast horizon: the current month plus the next
// two.
const HorizonMonths = 3

// Rebuild regenerates all derived events for the horizon starting at the
// current month. Authored events are never touched.
func Rebuild(db *gorm.DB, cal calendar.Calendar) error {
	return RebuildFrom(db, cal, types.MonthOf(time.Now().In(time.UTC)))
}

// RebuildFrom regenerates all derived events for the horizon starting at
// the given month. The full replacement set is computed first and then
// swapped against the stored derived set inside a single transaction, so
// there is no window where the derived ledger is empty.
func RebuildFrom(db *gorm.DB, cal calendar.Calendar, first types.Month) error {
	snapshot, err := loadSnapshot(db)
	if err != nil {
		return fmt.Errorf("loading planner snapshot: %w", err)
	}

	events := buildDerivedEvents(cal, snapshot, first)

	err = db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("source IN ?", models.DerivedSources).Delete(&models.CashflowEvent{}).Error
		if err != nil {
			return err
		}

		base, err := models.NextEventSequence(tx)
		if err != nil {
			return err
		}

		for i := range events {
			events[i].Sequence = base + uint64(i)
			if err := tx.Create(&events[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("rebuilding derived events: %w", err)
	}

	log.Debug().
		Str("firstMonth", first.String()).
		Int("events", len(events)).
		Msg("derived events rebuilt")

	return nil
}

// snapshot is the input state a rebuild computes over, fetched once at
// call start.
type snapshot struct {
	accounts      map[uuid.UUID]models.Account
	cards         []models.Card
	plans         []models.Plan
	subscriptions []models.Subscription
	variables     []models.VariablePayment
	confirmations map[billing.ConfirmationKey]int64
	transactions  []models.CardTransaction
	revolving     []models.RevolvingBalance
	installments  []models.InstallmentPlan
}

func loadSnapshot(db *gorm.DB) (snapshot, error) {
	s := snapshot{
		accounts:      map[uuid.UUID]models.Account{},
		confirmations: map[billing.ConfirmationKey]int64{},
	}

	var accounts []models.Account
	if err := db.Find(&accounts).Error; err != nil {
		return s, err
	}
	for _, a := range accounts {
		s.accounts[a.ID] = a
	}

	// Deterministic iteration order keeps rebuilds idempotent.
	if err := db.Order("created_at, id").Find(&s.cards).Error; err != nil {
		return s, err
	}
	if err := db.Order("created_at, id").Find(&s.plans).Error; err != nil {
		return s, err
	}
	if err := db.Order("created_at, id").Find(&s.subscriptions).Error; err != nil {
		return s, err
	}
	if err := db.Order("created_at, id").Find(&s.variables).Error; err != nil {
		return s, err
	}
	if err := db.Find(&s.transactions).Error; err != nil {
		return s, err
	}
	if err := db.Find(&s.revolving).Error; err != nil {
		return s, err
	}
	if err := db.Find(&s.installments).Error; err != nil {
		return s, err
	}

	var confirmations []models.VariableConfirmation
	if err := db.Find(&confirmations).Error; err != nil {
		return s, err
	}
	for _, c := range confirmations {
		key := billing.NewConfirmationKey(c.VariablePaymentID, c.OccurrenceDate)
		s.confirmations[key] = c.ConfirmedAmountYen
	}

	return s, nil
}

// directDebit pairs a resolver definition with the ledger metadata of its
// record kind.
type directDebit struct {
	def         recurrence.Definition
	source      string
	description string
}

// buildDerivedEvents computes the full replacement set for the horizon.
func buildDerivedEvents(cal calendar.Calendar, s snapshot, first types.Month) []models.CashflowEvent {
	var events []models.CashflowEvent

	for offset := 0; offset < HorizonMonths; offset++ {
		month := first.AddDate(0, offset)

		events = append(events, debitEvents(cal, s, month)...)
		events = append(events, settlementEvents(cal, s, month)...)
	}

	return events
}

// debitEvents materializes one event per direct-debit occurrence in the
// month. Definitions pointing at a missing account are skipped, not
// failed: forecasting must stay available with stale references.
func debitEvents(cal calendar.Calendar, s snapshot, month types.Month) []models.CashflowEvent {
	var debits []directDebit
	for _, p := range s.plans {
		if p.PaymentMethod != models.PaymentMethodAccount {
			continue
		}

		debits = append(debits, directDebit{def: p.Definition(), source: models.SourcePlan, description: p.Title})
	}
	for _, sub := range s.subscriptions {
		if sub.PaymentMethod != models.PaymentMethodAccount {
			continue
		}

		debits = append(debits, directDebit{def: sub.Definition(), source: models.SourceSubscription, description: sub.Name})
	}
	for _, v := range s.variables {
		if v.PaymentMethod != models.PaymentMethodAccount {
			continue
		}

		debits = append(debits, directDebit{def: v.Definition(), source: models.SourceVariable, description: v.Name})
	}

	var events []models.CashflowEvent
	for _, d := range debits {
		if _, ok := s.accounts[d.def.AccountID]; !ok {
			log.Warn().Str("definition", d.def.ID.String()).Msg("skipping definition with missing account")
			continue
		}

		for _, occurrence := range recurrence.OccurrencesInRange(cal, d.def, month.First(), month.Last()) {
			amount := d.def.Amount
			if confirmed, ok := s.confirmations[billing.NewConfirmationKey(d.def.ID, occurrence)]; ok {
				amount = -confirmed
			}

			id := d.def.ID
			events = append(events, models.CashflowEvent{
				Date:         occurrence,
				AmountYen:    amount,
				AccountID:    d.def.AccountID,
				Source:       d.source,
				DefinitionID: &id,
				Description:  d.description,
				Status:       models.StatusExpected,
			})
		}
	}

	return events
}

// settlementEvents materializes exactly one settlement event per card for
// the withdrawal month, even when the period total is zero. Cards outside
// their validity window on the withdrawal date and cards whose payment
// account is gone produce none.
func settlementEvents(cal calendar.Calendar, s snapshot, withdrawMonth types.Month) []models.CashflowEvent {
	var events []models.CashflowEvent
	for _, card := range s.cards {
		if _, ok := s.accounts[card.PaymentAccountID]; !ok {
			log.Warn().Str("card", card.ID.String()).Msg("skipping card with missing payment account")
			continue
		}

		billingCard := card.Billing()
		period := billing.PeriodForWithdrawMonth(cal, billingCard, withdrawMonth)
		if !card.ActiveOn(period.WithdrawDate) {
			continue
		}

		total := billing.AmountDueForWithdraw(cal, billingCard, withdrawMonth, billingInputs(s, card.ID))

		id := card.ID
		events = append(events, models.CashflowEvent{
			Date:         period.WithdrawDate,
			AmountYen:    -total,
			AccountID:    card.PaymentAccountID,
			Source:       models.SourceCard,
			DefinitionID: &id,
			Description: fmt.Sprintf("Card settlement: %s (%s - %s)",
				card.Name, period.Start.Format("2006-01-02"), period.End.Format("2006-01-02")),
			Status: models.StatusExpected,
		})
	}

	return events
}

// billingInputs filters the snapshot down to one card.
func billingInputs(s snapshot, cardID uuid.UUID) billing.Inputs {
	in := billing.Inputs{Confirmations: s.confirmations}

	for _, t := range s.transactions {
		if t.CardID == cardID {
			in.Transactions = append(in.Transactions, t.Billing())
		}
	}

	routed := func(f models.RecurringFields) bool {
		return f.PaymentMethod == models.PaymentMethodCard && f.CardID != nil && *f.CardID == cardID
	}
	for _, p := range s.plans {
		if routed(p.RecurringFields) {
			in.Definitions = append(in.Definitions, p.Definition())
		}
	}
	for _, sub := range s.subscriptions {
		if routed(sub.RecurringFields) {
			in.Definitions = append(in.Definitions, sub.Definition())
		}
	}
	for _, v := range s.variables {
		if routed(v.RecurringFields) {
			in.Definitions = append(in.Definitions, v.Definition())
		}
	}

	for _, r := range s.revolving {
		if r.CardID == cardID {
			in.Revolving = append(in.Revolving, r.Amortize())
		}
	}
	for _, i := range s.installments {
		if i.CardID == cardID {
			in.Installments = append(in.Installments, i.Amortize())
		}
	}

	return in
}
