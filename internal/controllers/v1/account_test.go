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

func createTestAccount(t *testing.T, a v1.AccountEditable, expectedStatus ...int) v1.AccountResponse {
	if a.Name == "" {
		a.Name = uuid.NewString()
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.AccountEditable{a}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/accounts", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var account v1.AccountCreateResponse
	test.DecodeResponse(t, &r, &account)

	if r.Code == http.StatusCreated {
		return account.Data[0]
	}

	return v1.AccountResponse{}
}

// TestAccountsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestAccountsDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestAccount(t, v1.AccountEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/accounts", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.AccountListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

// TestAccountsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestAccountsOptions() {
	tests := []struct {
		name   string
		id     string // path at the Accounts endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No Account with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Account exists", createTestAccount(suite.T(), v1.AccountEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/accounts", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestAccountsCreate() {
	account := createTestAccount(suite.T(), v1.AccountEditable{Name: "Main Bank", BalanceYen: 300000})

	assert.Equal(suite.T(), "Main Bank", account.Data.Name)
	assert.Equal(suite.T(), int64(300000), account.Data.BalanceYen)
	assert.NotEqual(suite.T(), uuid.Nil, account.Data.ID)
}

func (suite *TestSuiteStandard) TestAccountsGetSingle() {
	account := createTestAccount(suite.T(), v1.AccountEditable{})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/accounts/%s", account.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AccountResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), account.Data.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestAccountsGetAll() {
	_ = createTestAccount(suite.T(), v1.AccountEditable{Name: "Wallet"})
	_ = createTestAccount(suite.T(), v1.AccountEditable{Name: "Bank"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/accounts", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AccountListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 2)

	// Accounts are sorted by name
	assert.Equal(suite.T(), "Bank", response.Data[0].Name)
	assert.Equal(suite.T(), "Wallet", response.Data[1].Name)
}

func (suite *TestSuiteStandard) TestAccountsUpdate() {
	account := createTestAccount(suite.T(), v1.AccountEditable{Name: "Old name"})

	r := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/accounts/%s", account.Data.ID), map[string]any{
		"name": "New name",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.AccountResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Equal(suite.T(), "New name", updated.Data.Name)
}

func (suite *TestSuiteStandard) TestAccountsDelete() {
	account := createTestAccount(suite.T(), v1.AccountEditable{})

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/accounts/%s", account.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/accounts/%s", account.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestAccountsCreateInvalidBody() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/accounts", `{ Invalid request": Body }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.AccountCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.NotNil(suite.T(), response.Error)
}
