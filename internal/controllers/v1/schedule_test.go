package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/cashplanner/backend/internal/controllers/v1"
	"github.com/cashplanner/backend/internal/models"
	"github.com/cashplanner/backend/internal/types"
	"github.com/cashplanner/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestRevolvingBalancesCreate() {
	card := createTestCard(suite.T(), v1.CardEditable{})

	body := []v1.RevolvingBalanceEditable{{
		CardID:            card.Data.ID,
		StartMonth:        types.NewMonth(2026, time.February),
		RemainingYen:      25000,
		MonthlyPaymentYen: 10000,
	}}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/revolving-balances", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.RevolvingBalanceCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), int64(25000), response.Data[0].Data.RemainingYen)
}

// TestRevolvingBalancesCreateInvalid verifies that the schedule amounts
// must be positive.
func (suite *TestSuiteStandard) TestRevolvingBalancesCreateInvalid() {
	card := createTestCard(suite.T(), v1.CardEditable{})

	body := []v1.RevolvingBalanceEditable{{
		CardID:            card.Data.ID,
		StartMonth:        types.NewMonth(2026, time.February),
		RemainingYen:      25000,
		MonthlyPaymentYen: 0,
	}}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/revolving-balances", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.RevolvingBalanceCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Contains(suite.T(), *response.Data[0].Error, models.ErrScheduleAmountNotPositive.Error())
}

func (suite *TestSuiteStandard) TestInstallmentPlansCreate() {
	card := createTestCard(suite.T(), v1.CardEditable{})

	body := []v1.InstallmentPlanEditable{{
		CardID:     card.Data.ID,
		StartMonth: types.NewMonth(2026, time.March),
		Months:     7,
		TotalYen:   35000,
	}}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/installment-plans", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.InstallmentPlanCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), 7, response.Data[0].Data.Months)
}

func createTestVariablePayment(t *testing.T, v v1.VariablePaymentEditable, expectedStatus ...int) v1.VariablePaymentResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.VariablePaymentEditable{v}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/variable-payments", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var payment v1.VariablePaymentCreateResponse
	test.DecodeResponse(t, &r, &payment)

	if r.Code == http.StatusCreated {
		return payment.Data[0]
	}

	return v1.VariablePaymentResponse{}
}

// TestVariableConfirmations verifies creation and the route shape:
// confirmations can not be updated, only replaced.
func (suite *TestSuiteStandard) TestVariableConfirmations() {
	account := createTestAccount(suite.T(), v1.AccountEditable{})
	accountID := account.Data.ID

	payment := createTestVariablePayment(suite.T(), v1.VariablePaymentEditable{
		Name:               "Electricity",
		EstimatedAmountYen: 4500,
		RecurringEditable: v1.RecurringEditable{
			Freq:          "monthly",
			Day:           5,
			PaymentMethod: models.PaymentMethodAccount,
			AccountID:     &accountID,
		},
	})

	body := []v1.VariableConfirmationEditable{{
		VariablePaymentID:  payment.Data.ID,
		OccurrenceDate:     time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC),
		ConfirmedAmountYen: 4321,
	}}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/variable-confirmations", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.VariableConfirmationCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 1)
	confirmation := response.Data[0]

	// A second confirmation for the same occurrence is rejected
	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/variable-confirmations", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var duplicate v1.VariableConfirmationCreateResponse
	test.DecodeResponse(suite.T(), &r, &duplicate)
	require.Len(suite.T(), duplicate.Data, 1)
	require.NotNil(suite.T(), duplicate.Data[0].Error)
	assert.Equal(suite.T(), models.ErrConfirmationNotUnique.Error(), *duplicate.Data[0].Error)

	// No PATCH route for confirmations
	r = test.Request(suite.T(), http.MethodOptions, fmt.Sprintf("http://example.com/v1/variable-confirmations/%s", confirmation.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "GET, DELETE", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/variable-confirmations/%s", confirmation.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}

// TestVariablePaymentDeleteCascades verifies that deleting a variable
// payment also deletes its confirmations.
func (suite *TestSuiteStandard) TestVariablePaymentDeleteCascades() {
	account := createTestAccount(suite.T(), v1.AccountEditable{})
	accountID := account.Data.ID

	payment := createTestVariablePayment(suite.T(), v1.VariablePaymentEditable{
		Name:               "Gas",
		EstimatedAmountYen: 3000,
		RecurringEditable: v1.RecurringEditable{
			Freq:          "monthly",
			Day:           10,
			PaymentMethod: models.PaymentMethodAccount,
			AccountID:     &accountID,
		},
	})

	body := []v1.VariableConfirmationEditable{{
		VariablePaymentID:  payment.Data.ID,
		OccurrenceDate:     time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		ConfirmedAmountYen: 2800,
	}}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/variable-confirmations", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	r = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/variable-payments/%s", payment.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/variable-confirmations", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var confirmations v1.VariableConfirmationListResponse
	test.DecodeResponse(suite.T(), &r, &confirmations)
	assert.Empty(suite.T(), confirmations.Data)
}

func (suite *TestSuiteStandard) TestHolidaysCreate() {
	body := []v1.HolidayEditable{
		{Date: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), Name: "元日"},
		{Date: time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC), Name: "成人の日"},
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/holidays", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/holidays", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.HolidayListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), "元日", response.Data[0].Name)
}

func (suite *TestSuiteStandard) TestMatchRulesOrder() {
	_ = createTestMatchRule(suite.T(), v1.MatchRuleEditable{Priority: 2, Match: "B*", Replacement: "Second"})
	_ = createTestMatchRule(suite.T(), v1.MatchRuleEditable{Priority: 1, Match: "A*", Replacement: "First"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/match-rules", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MatchRuleListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), "First", response.Data[0].Replacement)
	assert.Equal(suite.T(), "Second", response.Data[1].Replacement)
}
