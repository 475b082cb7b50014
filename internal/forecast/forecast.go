// Package forecast simulates account balances over a materialized
// cashflow event ledger.
package forecast

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Account is the forecast view of an account: a starting balance valid as
// of the account's effective start date and an optional validity window.
type Account struct {
	ID      uuid.UUID
	Name    string
	Balance int64

	EffectiveStart time.Time
	EffectiveEnd   time.Time
}

// ActiveOn reports whether the account's validity window contains t.
func (a Account) ActiveOn(t time.Time) bool {
	if !a.EffectiveStart.IsZero() && t.Before(a.EffectiveStart) {
		return false
	}
	if !a.EffectiveEnd.IsZero() && t.After(a.EffectiveEnd) {
		return false
	}

	return true
}

// Event is one ledger entry. Sequence is the explicit tie-break for
// events on the same day.
type Event struct {
	ID        uuid.UUID
	Sequence  uint64
	Date      time.Time
	Amount    int64
	AccountID uuid.UUID
}

// Point is one step of a balance series.
type Point struct {
	Date    string     `json:"date"` // ISO-8601 calendar date
	Balance int64      `json:"balance"`
	Delta   int64      `json:"delta"`
	EventID *uuid.UUID `json:"eventId,omitempty"`
}

// Summary are the statistics of one balance series.
type Summary struct {
	MinBalance      int64  `json:"minBalance"`
	MinDate         string `json:"minDate"`
	EndBalance      int64  `json:"endBalance"`
	DangerThreshold int64  `json:"dangerThreshold"`
	IsDanger        bool   `json:"isDanger"`
}

// AccountSeries is the simulated balance trajectory of one account.
type AccountSeries struct {
	AccountID    uuid.UUID `json:"accountId"`
	Name         string    `json:"name"`
	StartBalance int64     `json:"startBalance"`
	Summary      Summary   `json:"summary"`
	Series       []Point   `json:"series"`
}

// Result is the outcome of a simulation run.
type Result struct {
	Start        time.Time       `json:"start"`
	End          time.Time       `json:"end"`
	Accounts     []AccountSeries `json:"accounts"`
	Total        []Point         `json:"totalSeries"`
	TotalSummary Summary         `json:"totalSummary"`
}

const dateFormat = "2006-01-02"

type marker struct {
	date      time.Time
	accountID uuid.UUID
	activate  bool
	balance   int64
}

// Simulate replays the events against the accounts' starting balances
// over [start, end]. The starting balance of an account is its stored
// balance if the account is active on start, else zero; activation inside
// the range jumps the balance to the stored value, deactivation (the day
// after the effective end) jumps it to zero. Events are applied in
// (date, sequence) order and skipped when their account is unknown or
// inactive on the event date.
func Simulate(accounts []Account, events []Event, start, end time.Time, dangerThreshold int64) Result {
	accountByID := make(map[uuid.UUID]Account, len(accounts))
	balances := make(map[uuid.UUID]int64, len(accounts))
	series := make(map[uuid.UUID][]Point, len(accounts))
	startBalances := make(map[uuid.UUID]int64, len(accounts))

	var totalBalance int64
	for _, a := range accounts {
		accountByID[a.ID] = a

		var balance int64
		if a.ActiveOn(start) {
			balance = a.Balance
		}

		balances[a.ID] = balance
		startBalances[a.ID] = balance
		totalBalance += balance
	}

	markersByDate := map[time.Time][]marker{}
	for _, a := range accounts {
		if !a.EffectiveStart.IsZero() && start.Before(a.EffectiveStart) && !a.EffectiveStart.After(end) {
			markersByDate[a.EffectiveStart] = append(markersByDate[a.EffectiveStart],
				marker{date: a.EffectiveStart, accountID: a.ID, activate: true, balance: a.Balance})
		}

		if !a.EffectiveEnd.IsZero() {
			deactivation := a.EffectiveEnd.AddDate(0, 0, 1)
			if start.Before(deactivation) && !deactivation.After(end) {
				markersByDate[deactivation] = append(markersByDate[deactivation],
					marker{date: deactivation, accountID: a.ID})
			}
		}
	}

	eventsByDate := map[time.Time][]Event{}
	for _, ev := range events {
		if ev.Date.Before(start) || ev.Date.After(end) {
			continue
		}

		eventsByDate[ev.Date] = append(eventsByDate[ev.Date], ev)
	}
	for _, evs := range eventsByDate {
		sort.Slice(evs, func(i, j int) bool { return evs[i].Sequence < evs[j].Sequence })
	}

	dateSet := map[time.Time]struct{}{}
	for d := range markersByDate {
		dateSet[d] = struct{}{}
	}
	for d := range eventsByDate {
		dateSet[d] = struct{}{}
	}

	dates := make([]time.Time, 0, len(dateSet))
	for d := range dateSet {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	total := []Point{{Date: start.Format(dateFormat), Balance: totalBalance}}
	for _, a := range accounts {
		series[a.ID] = []Point{{Date: start.Format(dateFormat), Balance: balances[a.ID]}}
	}

	appendPoint := func(accountID uuid.UUID, date time.Time, delta int64, eventID *uuid.UUID) {
		balances[accountID] += delta
		series[accountID] = append(series[accountID], Point{
			Date:    date.Format(dateFormat),
			Balance: balances[accountID],
			Delta:   delta,
			EventID: eventID,
		})

		totalBalance += delta
		total = append(total, Point{
			Date:    date.Format(dateFormat),
			Balance: totalBalance,
			Delta:   delta,
			EventID: eventID,
		})
	}

	for _, d := range dates {
		for _, m := range markersByDate[d] {
			after := int64(0)
			if m.activate {
				after = m.balance
			}

			appendPoint(m.accountID, d, after-balances[m.accountID], nil)
		}

		for _, ev := range eventsByDate[d] {
			account, ok := accountByID[ev.AccountID]
			if !ok || !account.ActiveOn(d) {
				continue
			}

			id := ev.ID
			appendPoint(ev.AccountID, d, ev.Amount, &id)
		}
	}

	result := Result{
		Start:        start,
		End:          end,
		Total:        total,
		TotalSummary: summarize(total, start, 0, dangerThreshold),
	}

	for _, a := range accounts {
		s := series[a.ID]
		result.Accounts = append(result.Accounts, AccountSeries{
			AccountID:    a.ID,
			Name:         a.Name,
			StartBalance: startBalances[a.ID],
			Summary:      summarize(s, start, startBalances[a.ID], dangerThreshold),
			Series:       s,
		})
	}

	return result
}

// summarize computes the statistics of a series. Ties on the minimum
// balance resolve to the earliest date.
func summarize(series []Point, start time.Time, startBalance int64, dangerThreshold int64) Summary {
	s := Summary{
		MinBalance:      startBalance,
		MinDate:         start.Format(dateFormat),
		EndBalance:      startBalance,
		DangerThreshold: dangerThreshold,
	}

	if len(series) > 0 {
		s.MinBalance = series[0].Balance
		s.MinDate = series[0].Date
		s.EndBalance = series[len(series)-1].Balance

		for _, p := range series[1:] {
			if p.Balance < s.MinBalance {
				s.MinBalance = p.Balance
				s.MinDate = p.Date
			}
		}
	}

	s.IsDanger = s.MinBalance < dangerThreshold
	return s
}
