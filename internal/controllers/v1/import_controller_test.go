package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/cashplanner/backend/internal/controllers/v1"
	"github.com/cashplanner/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestImportGet() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/import", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ImportResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Contains(suite.T(), response.Links.CardStatementPreview, "/v1/import/card-statement-preview")
}

// TestImportPreviewErrors verifies the error handling of the preview
// endpoint.
func (suite *TestSuiteStandard) TestImportPreviewErrors() {
	card := createTestCard(suite.T(), v1.CardEditable{})

	tests := []struct {
		name   string
		file   string // File to load from testdata, empty for no file
		query  string
		status int
	}{
		{"No card ID", "importer/statement.csv", "", http.StatusBadRequest},
		{"Card does not exist", "importer/statement.csv", fmt.Sprintf("?cardId=%s", uuid.New()), http.StatusNotFound},
		{"Wrong file suffix", "importer/statement.txt", fmt.Sprintf("?cardId=%s", card.Data.ID), http.StatusBadRequest},
		{"Missing columns", "importer/broken.csv", fmt.Sprintf("?cardId=%s", card.Data.ID), http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			body, headers := test.LoadTestFile(t, tt.file)

			r := test.Request(t, http.MethodPost, "http://example.com/v1/import/card-statement-preview"+tt.query, body, headers)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// TestImportPreview parses a statement and verifies matching and
// duplicate detection.
func (suite *TestSuiteStandard) TestImportPreview() {
	card := createTestCard(suite.T(), v1.CardEditable{})

	// Clean up the Amazon merchant strings
	rule := createTestMatchRule(suite.T(), v1.MatchRuleEditable{Match: "AMAZON*", Replacement: "Amazon"})

	body, headers := test.LoadTestFile(suite.T(), "importer/statement.csv")

	r := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/import/card-statement-preview?cardId=%s", card.Data.ID), body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var preview v1.ImportPreviewList
	test.DecodeResponse(suite.T(), &r, &preview)
	require.Len(suite.T(), preview.Data, 4)
	assert.Empty(suite.T(), preview.Warnings)

	first := preview.Data[0]
	assert.Equal(suite.T(), "2026-01-20", first.Transaction.Date.Format("2006-01-02"))
	assert.Equal(suite.T(), int64(1200), first.Transaction.AmountYen)
	assert.Equal(suite.T(), card.Data.ID, first.Transaction.CardID)
	assert.NotEmpty(suite.T(), first.Transaction.ImportHash)

	// The second line matches the Amazon rule
	second := preview.Data[1]
	assert.Equal(suite.T(), "Amazon", second.Transaction.Merchant)
	assert.Equal(suite.T(), rule.Data.ID, second.MatchRuleID)

	// The refund has a negative amount
	refund := preview.Data[3]
	assert.Equal(suite.T(), int64(-500), refund.Transaction.AmountYen)

	// No transactions imported yet, so nothing is a duplicate
	for _, transaction := range preview.Data {
		assert.Empty(suite.T(), transaction.DuplicateTransactionIDs)
		assert.NotNil(suite.T(), transaction.DuplicateTransactionIDs)
	}

	// Commit the first transaction, then preview again: it is now
	// flagged as a duplicate.
	created := createTestTransaction(suite.T(), v1.TransactionEditable{
		CardID:     first.Transaction.CardID,
		Date:       first.Transaction.Date,
		AmountYen:  first.Transaction.AmountYen,
		Merchant:   first.Transaction.Merchant,
		ImportHash: first.Transaction.ImportHash,
	})

	body, headers = test.LoadTestFile(suite.T(), "importer/statement.csv")
	r = test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/import/card-statement-preview?cardId=%s", card.Data.ID), body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	test.DecodeResponse(suite.T(), &r, &preview)
	require.Len(suite.T(), preview.Data, 4)
	assert.Equal(suite.T(), []uuid.UUID{created.Data.ID}, preview.Data[0].DuplicateTransactionIDs)
}

func createTestMatchRule(t *testing.T, m v1.MatchRuleEditable, expectedStatus ...int) v1.MatchRuleResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.MatchRuleEditable{m}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/match-rules", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var rule v1.MatchRuleCreateResponse
	test.DecodeResponse(t, &r, &rule)

	if r.Code == http.StatusCreated {
		return rule.Data[0]
	}

	return v1.MatchRuleResponse{}
}

func createTestTransaction(t *testing.T, e v1.TransactionEditable, expectedStatus ...int) v1.TransactionResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.TransactionEditable{e}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/transactions", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var transaction v1.TransactionCreateResponse
	test.DecodeResponse(t, &r, &transaction)

	if r.Code == http.StatusCreated {
		return transaction.Data[0]
	}

	return v1.TransactionResponse{}
}
