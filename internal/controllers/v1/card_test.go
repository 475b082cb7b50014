package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/cashplanner/backend/internal/controllers/v1"
	"github.com/cashplanner/backend/internal/models"
	"github.com/cashplanner/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func createTestCard(t *testing.T, c v1.CardEditable, expectedStatus ...int) v1.CardResponse {
	if c.Name == "" {
		c.Name = uuid.NewString()
	}

	if c.PaymentAccountID == uuid.Nil {
		c.PaymentAccountID = createTestAccount(t, v1.AccountEditable{}).Data.ID
	}

	if c.ClosingDay == 0 {
		c.ClosingDay = 15
	}

	if c.PaymentDay == 0 {
		c.PaymentDay = 27
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.CardEditable{c}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/cards", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var card v1.CardCreateResponse
	test.DecodeResponse(t, &r, &card)

	if r.Code == http.StatusCreated {
		return card.Data[0]
	}

	return v1.CardResponse{}
}

func (suite *TestSuiteStandard) TestCardsCreate() {
	card := createTestCard(suite.T(), v1.CardEditable{Name: "Rakuten Card"})

	assert.Equal(suite.T(), "Rakuten Card", card.Data.Name)
	assert.Equal(suite.T(), 15, card.Data.ClosingDay)
	assert.Equal(suite.T(), 27, card.Data.PaymentDay)
}

// TestCardsCreateInvalid verifies that validation errors surface with the
// correct status and message.
func (suite *TestSuiteStandard) TestCardsCreateInvalid() {
	account := createTestAccount(suite.T(), v1.AccountEditable{})

	tests := []struct {
		name string
		card v1.CardEditable
		err  error
	}{
		{"Closing day too large", v1.CardEditable{ClosingDay: 32, PaymentDay: 27, PaymentAccountID: account.Data.ID}, models.ErrCardDayOutOfRange},
		{"Payment day out of range", v1.CardEditable{ClosingDay: 15, PaymentDay: -1, PaymentAccountID: account.Data.ID}, models.ErrCardDayOutOfRange},
		{"No payment account", v1.CardEditable{ClosingDay: 15, PaymentDay: 27}, models.ErrCardNoPaymentAccount},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			body := []v1.CardEditable{tt.card}
			body[0].Name = uuid.NewString()

			r := test.Request(t, http.MethodPost, "http://example.com/v1/cards", body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.CardCreateResponse
			test.DecodeResponse(t, &r, &response)
			assert.Contains(t, *response.Data[0].Error, tt.err.Error())
		})
	}
}

func (suite *TestSuiteStandard) TestCardsUpdate() {
	card := createTestCard(suite.T(), v1.CardEditable{})

	r := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/cards/%s", card.Data.ID), map[string]any{
		"paymentDay": 10,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.CardResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Equal(suite.T(), 10, updated.Data.PaymentDay)
	assert.Equal(suite.T(), 15, updated.Data.ClosingDay)
}

func (suite *TestSuiteStandard) TestCardsDelete() {
	card := createTestCard(suite.T(), v1.CardEditable{})

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/cards/%s", card.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/cards/%s", card.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
