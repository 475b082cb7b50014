package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/cashplanner/backend/internal/controllers/v1"
	"github.com/cashplanner/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestV1Get() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Contains(suite.T(), response.Links.Accounts, "/v1/accounts")
	assert.Contains(suite.T(), response.Links.Forecast, "/v1/forecast")
	assert.Contains(suite.T(), response.Links.Rebuild, "/v1/rebuild")
}

func (suite *TestSuiteStandard) TestV1Options() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "GET, DELETE", r.Header().Get("allow"))
}

// TestCleanup verifies that the cleanup endpoint deletes all data.
func (suite *TestSuiteStandard) TestCleanup() {
	account := createTestAccount(suite.T(), v1.AccountEditable{})
	_ = createTestCard(suite.T(), v1.CardEditable{PaymentAccountID: account.Data.ID})
	_ = createTestEvent(suite.T(), v1.EventEditable{AccountID: account.Data.ID, AmountYen: -100})

	tests := []struct {
		name   string
		query  string
		status int
	}{
		{"Missing confirmation", "", http.StatusBadRequest},
		{"Wrong confirmation", "?confirm=yes-definitely", http.StatusBadRequest},
		{"Correct confirmation", "?confirm=yes-please-delete-everything", http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodDelete, "http://example.com/v1"+tt.query, "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/accounts", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var accounts v1.AccountListResponse
	test.DecodeResponse(suite.T(), &r, &accounts)
	assert.Empty(suite.T(), accounts.Data)
}
