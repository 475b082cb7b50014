package v1_test

import (
	"net/http"
	"testing"
	"time"

	v1 "github.com/cashplanner/backend/internal/controllers/v1"
	"github.com/cashplanner/backend/internal/models"
	"github.com/cashplanner/backend/internal/recurrence"
	"github.com/cashplanner/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestPlan(t *testing.T, p v1.PlanEditable, expectedStatus ...int) v1.PlanResponse {
	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.PlanEditable{p}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/plans", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var plan v1.PlanCreateResponse
	test.DecodeResponse(t, &r, &plan)

	if r.Code == http.StatusCreated {
		return plan.Data[0]
	}

	return v1.PlanResponse{}
}

// TestRebuildAndForecast runs the full loop: author an account and a
// salary plan, rebuild the derived events and read the forecast back.
func (suite *TestSuiteStandard) TestRebuildAndForecast() {
	account := createTestAccount(suite.T(), v1.AccountEditable{Name: "Main Bank", BalanceYen: 300000})
	accountID := account.Data.ID

	_ = createTestPlan(suite.T(), v1.PlanEditable{
		Title:     "Salary",
		Type:      models.PlanTypeIncome,
		AmountYen: 280000,
		RecurringEditable: v1.RecurringEditable{
			Freq:          string(recurrence.Monthly),
			Day:           25,
			PaymentMethod: models.PaymentMethodAccount,
			AccountID:     &accountID,
		},
	})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/rebuild?from=2026-01", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// One salary per month over the three month horizon. January 25th
	// 2026 is a Sunday, so the income is pulled back to Friday the 23rd.
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/events?source=plan", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var events v1.EventListResponse
	test.DecodeResponse(suite.T(), &r, &events)
	require.Len(suite.T(), events.Data, 3)

	assert.Equal(suite.T(), "2026-01-23", events.Data[0].Date.Format("2006-01-02"))
	assert.Equal(suite.T(), "2026-02-25", events.Data[1].Date.Format("2006-01-02"))
	assert.Equal(suite.T(), "2026-03-25", events.Data[2].Date.Format("2006-01-02"))

	for _, event := range events.Data {
		assert.Equal(suite.T(), int64(280000), event.AmountYen)
		assert.Equal(suite.T(), accountID, event.AccountID)
	}

	// Rebuilding again must not duplicate anything
	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/rebuild?from=2026-01", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/events?source=plan", "")
	test.DecodeResponse(suite.T(), &r, &events)
	assert.Len(suite.T(), events.Data, 3)

	// Forecast over the horizon
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/forecast?start=2026-01-01&end=2026-03-31", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var result v1.ForecastResponse
	test.DecodeResponse(suite.T(), &r, &result)
	require.Len(suite.T(), result.Data.Accounts, 1)

	series := result.Data.Accounts[0]
	assert.Equal(suite.T(), int64(300000), series.StartBalance)
	assert.Equal(suite.T(), int64(300000+3*280000), series.Summary.EndBalance)
	assert.Equal(suite.T(), int64(300000), series.Summary.MinBalance)
	assert.False(suite.T(), series.Summary.IsDanger)

	assert.Equal(suite.T(), int64(300000+3*280000), result.Data.TotalSummary.EndBalance)
}

func (suite *TestSuiteStandard) TestForecastDaily() {
	_ = createTestAccount(suite.T(), v1.AccountEditable{BalanceYen: 50000})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/forecast/daily?start=2026-02-01&end=2026-02-28", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var result v1.ForecastDailyResponse
	test.DecodeResponse(suite.T(), &r, &result)
	require.Len(suite.T(), result.Data.Accounts, 1)

	// One point per calendar day
	assert.Len(suite.T(), result.Data.Accounts[0].Series, 28)
	assert.Len(suite.T(), result.Data.Total, 28)

	for _, point := range result.Data.Accounts[0].Series {
		assert.Equal(suite.T(), int64(50000), point.Balance)
	}
}

func (suite *TestSuiteStandard) TestForecastFree() {
	_ = createTestAccount(suite.T(), v1.AccountEditable{Name: "Bank", BalanceYen: 50000})
	_ = createTestAccount(suite.T(), v1.AccountEditable{Name: "Wallet", BalanceYen: 8000})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/forecast/free?start=2026-02-01&end=2026-02-28", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var result v1.ForecastFreeResponse
	test.DecodeResponse(suite.T(), &r, &result)

	// One point per calendar day, summed over both accounts
	require.Len(suite.T(), result.Data.Series, 28)
	for _, point := range result.Data.Series {
		assert.Equal(suite.T(), int64(58000), point.Balance)
	}

	assert.Equal(suite.T(), int64(58000), result.Data.Summary.EndBalance)
	assert.Equal(suite.T(), int64(58000), result.Data.Summary.MinBalance)
}

func (suite *TestSuiteStandard) TestForecastRangeInvalid() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/forecast?start=2026-03-01&end=2026-02-01", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.ForecastResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Contains(suite.T(), *response.Error, "must not be before its start")
}

// TestForecastDangerThreshold verifies that balances below the threshold
// are flagged.
func (suite *TestSuiteStandard) TestForecastDangerThreshold() {
	account := createTestAccount(suite.T(), v1.AccountEditable{BalanceYen: 40000})

	_ = createTestEvent(suite.T(), v1.EventEditable{
		AccountID: account.Data.ID,
		Date:      time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
		AmountYen: -35000,
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/forecast?start=2026-02-01&end=2026-02-28&dangerThreshold=10000", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var result v1.ForecastResponse
	test.DecodeResponse(suite.T(), &r, &result)
	require.Len(suite.T(), result.Data.Accounts, 1)

	summary := result.Data.Accounts[0].Summary
	assert.True(suite.T(), summary.IsDanger)
	assert.Equal(suite.T(), int64(5000), summary.MinBalance)
	assert.Equal(suite.T(), "2026-02-10", summary.MinDate)
}
