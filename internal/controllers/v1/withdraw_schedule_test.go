package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/cashplanner/backend/internal/controllers/v1"
	"github.com/cashplanner/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestWithdrawSchedule() {
	account := createTestAccount(suite.T(), v1.AccountEditable{Name: "Bank", BalanceYen: 100000})
	card := createTestCard(suite.T(), v1.CardEditable{
		Name:             "Visa",
		ClosingDay:       15,
		PaymentDay:       27,
		PaymentAccountID: account.Data.ID,
	})

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		CardID:    card.Data.ID,
		Date:      time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC),
		AmountYen: 1200,
		Merchant:  "Seven Eleven",
	})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/rebuild?from=2026-01", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/withdraw-schedule?from=2026-01-01", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.WithdrawScheduleResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 3)

	// The charge on Jan 20 falls into the period closing Feb 15, so it is
	// withdrawn on Feb 27. The other settlement dates carry zero totals.
	assert.Equal(suite.T(), time.Date(2026, 1, 27, 0, 0, 0, 0, time.UTC), response.Data[0].Date)
	assert.Equal(suite.T(), int64(0), response.Data[0].TotalYen)
	assert.Equal(suite.T(), time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC), response.Data[1].Date)
	assert.Equal(suite.T(), int64(-1200), response.Data[1].TotalYen)
	assert.Equal(suite.T(), time.Date(2026, 3, 27, 0, 0, 0, 0, time.UTC), response.Data[2].Date)

	require.Len(suite.T(), response.Data[1].Withdrawals, 1)
	withdrawal := response.Data[1].Withdrawals[0]
	assert.Equal(suite.T(), card.Data.ID, withdrawal.CardID)
	assert.Equal(suite.T(), "Visa", withdrawal.CardName)
	assert.Equal(suite.T(), account.Data.ID, withdrawal.AccountID)
	assert.Contains(suite.T(), withdrawal.Description, "Visa")

	// Moving the start date past the first settlement drops it
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/withdraw-schedule?from=2026-02-01", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 2)
}

func (suite *TestSuiteStandard) TestWithdrawScheduleEmpty() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/withdraw-schedule", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.WithdrawScheduleResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.NotNil(suite.T(), response.Data)
	assert.Empty(suite.T(), response.Data)
}
