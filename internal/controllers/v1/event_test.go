package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/cashplanner/backend/internal/controllers/v1"
	"github.com/cashplanner/backend/internal/models"
	"github.com/cashplanner/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestEvent(t *testing.T, e v1.EventEditable, expectedStatus ...int) v1.EventResponse {
	if e.AccountID == uuid.Nil {
		e.AccountID = createTestAccount(t, v1.AccountEditable{}).Data.ID
	}

	if e.Source == "" {
		e.Source = models.SourceOneOff
	}

	if e.Date.IsZero() {
		e.Date = time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC)
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.EventEditable{e}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/events", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var event v1.EventCreateResponse
	test.DecodeResponse(t, &r, &event)

	if r.Code == http.StatusCreated {
		return event.Data[0]
	}

	return v1.EventResponse{}
}

func (suite *TestSuiteStandard) TestEventsCreate() {
	event := createTestEvent(suite.T(), v1.EventEditable{AmountYen: -32000, Description: "Concert tickets"})

	assert.Equal(suite.T(), int64(-32000), event.Data.AmountYen)
	assert.Equal(suite.T(), models.SourceOneOff, event.Data.Source)
	assert.Equal(suite.T(), models.StatusExpected, event.Data.Status)
	assert.NotZero(suite.T(), event.Data.Sequence)
}

// TestEventsDerivedRejected verifies that derived sources can not be
// authored through the API.
func (suite *TestSuiteStandard) TestEventsDerivedRejected() {
	account := createTestAccount(suite.T(), v1.AccountEditable{})

	for _, source := range models.DerivedSources {
		suite.T().Run(source, func(t *testing.T) {
			body := []v1.EventEditable{{
				Date:      time.Date(2026, 1, 27, 0, 0, 0, 0, time.UTC),
				AmountYen: -1000,
				AccountID: account.Data.ID,
				Source:    source,
			}}

			r := test.Request(t, http.MethodPost, "http://example.com/v1/events", body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.EventCreateResponse
			test.DecodeResponse(t, &r, &response)
			assert.Contains(t, *response.Data[0].Error, models.ErrEventSourceDerived.Error())
		})
	}
}

// TestEventsDerivedImmutable verifies that derived events can not be
// changed or deleted through the API.
func (suite *TestSuiteStandard) TestEventsDerivedImmutable() {
	account := createTestAccount(suite.T(), v1.AccountEditable{})

	// Derived events are created by the planner, not the API, so this
	// one is written to the database directly.
	event := models.CashflowEvent{
		Date:      time.Date(2026, 1, 23, 0, 0, 0, 0, time.UTC),
		AmountYen: 280000,
		AccountID: account.Data.ID,
		Source:    models.SourcePlan,
	}
	require.NoError(suite.T(), models.DB.Create(&event).Error)

	r := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/events/%s", event.ID), map[string]any{
		"amountYen": 1,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/events/%s", event.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/events/%s", event.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestEventsUpdateDelete() {
	event := createTestEvent(suite.T(), v1.EventEditable{AmountYen: -5000})

	r := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/events/%s", event.Data.ID), map[string]any{
		"amountYen": -6000,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.EventResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Equal(suite.T(), int64(-6000), updated.Data.AmountYen)

	r = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/events/%s", event.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}

// TestEventsFilter verifies the date range and source filters.
func (suite *TestSuiteStandard) TestEventsFilter() {
	account := createTestAccount(suite.T(), v1.AccountEditable{})

	_ = createTestEvent(suite.T(), v1.EventEditable{AccountID: account.Data.ID, Date: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), AmountYen: -100})
	_ = createTestEvent(suite.T(), v1.EventEditable{AccountID: account.Data.ID, Date: time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC), AmountYen: -200})
	_ = createTestEvent(suite.T(), v1.EventEditable{AccountID: account.Data.ID, Date: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), AmountYen: -300, Source: models.SourceTransfer})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"All", "", 3},
		{"From excludes January", "?from=2026-02-01", 2},
		{"Until excludes March", "?until=2026-02-28", 2},
		{"Range", "?from=2026-02-01&until=2026-02-28", 1},
		{"Source", "?source=transfer", 1},
		{"Account without events", fmt.Sprintf("?account=%s", uuid.New()), 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/events"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.EventListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}
