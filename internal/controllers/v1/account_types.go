package v1

import (
	"time"

	"github.com/cashplanner/backend/internal/models"
)

type AccountEditable struct {
	Name           string     `json:"name" example:"Main Bank"`                      // Name of the account
	Note           string     `json:"note" example:"Salary account"`                 // Any notes for the account
	BalanceYen     int64      `json:"balanceYen" example:"300000"`                   // Balance in whole yen as of the effective start
	EffectiveStart *time.Time `json:"effectiveStart" example:"2026-01-01T00:00:00Z"` // Start of the validity window
	EffectiveEnd   *time.Time `json:"effectiveEnd" example:"2026-12-31T00:00:00Z"`   // End of the validity window. Null means the account is open
}

func (editable AccountEditable) model() models.Account {
	return models.Account{
		Name:           editable.Name,
		Note:           editable.Note,
		BalanceYen:     editable.BalanceYen,
		EffectiveStart: editable.EffectiveStart,
		EffectiveEnd:   editable.EffectiveEnd,
	}
}

type AccountListResponse struct {
	Data  []Account `json:"data"`                                                          // List of accounts
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type AccountCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []AccountResponse `json:"data"`                                                          // List of created accounts
}

func (a *AccountCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	a.Data = append(a.Data, AccountResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type AccountResponse struct {
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this account
	Data  *Account `json:"data"`                                                          // The account data, if creation was successful
}

// Account is the API representation of an account.
type Account struct {
	models.DefaultModel
	AccountEditable
}

func newAccount(model models.Account) Account {
	return Account{
		DefaultModel: model.DefaultModel,
		AccountEditable: AccountEditable{
			Name:           model.Name,
			Note:           model.Note,
			BalanceYen:     model.BalanceYen,
			EffectiveStart: model.EffectiveStart,
			EffectiveEnd:   model.EffectiveEnd,
		},
	}
}
