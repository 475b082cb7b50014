package forecast

import (
	"time"

	"github.com/google/uuid"
)

// DailyPoint is one calendar day of a filled balance series.
type DailyPoint struct {
	Date    string `json:"date"`
	Balance int64  `json:"balance"`
}

// DailyAccountSeries is the day-by-day balance of one account.
type DailyAccountSeries struct {
	AccountID    uuid.UUID    `json:"accountId"`
	Name         string       `json:"name"`
	StartBalance int64        `json:"startBalance"`
	Series       []DailyPoint `json:"series"`
}

// DailyResult is the daily-filled view of a simulation: one point per
// calendar day, holding the last known balance between timeline points.
// Dashboards consume this; the event-level Result stays available for
// auditing.
type DailyResult struct {
	Start    time.Time            `json:"start"`
	End      time.Time            `json:"end"`
	Accounts []DailyAccountSeries `json:"accounts"`
	Total    []DailyPoint         `json:"totalSeries"`
}

// Daily fills the event-level result to one point per calendar day.
func (r Result) Daily() DailyResult {
	out := DailyResult{Start: r.Start, End: r.End}

	totalByDate := map[string]int64{}
	for _, account := range r.Accounts {
		balanceByDate := make(map[string]int64, len(account.Series))
		for _, p := range account.Series {
			balanceByDate[p.Date] = p.Balance
		}

		daily := make([]DailyPoint, 0, int(r.End.Sub(r.Start).Hours()/24)+1)
		balance := account.StartBalance
		for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
			key := d.Format(dateFormat)
			if b, ok := balanceByDate[key]; ok {
				balance = b
			}

			daily = append(daily, DailyPoint{Date: key, Balance: balance})
			totalByDate[key] += balance
		}

		out.Accounts = append(out.Accounts, DailyAccountSeries{
			AccountID:    account.AccountID,
			Name:         account.Name,
			StartBalance: account.StartBalance,
			Series:       daily,
		})
	}

	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		key := d.Format(dateFormat)
		out.Total = append(out.Total, DailyPoint{Date: key, Balance: totalByDate[key]})
	}

	return out
}
