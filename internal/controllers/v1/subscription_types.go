package v1

import (
	"github.com/cashplanner/backend/internal/models"
)

type SubscriptionEditable struct {
	Name      string `json:"name" example:"Streaming"` // Name of the subscription
	AmountYen int64  `json:"amountYen" example:"1490"` // Amount in whole yen, always a magnitude
	RecurringEditable
}

func (editable SubscriptionEditable) model() models.Subscription {
	return models.Subscription{
		Name:            editable.Name,
		AmountYen:       editable.AmountYen,
		RecurringFields: editable.fields(),
	}
}

type SubscriptionListResponse struct {
	Data  []Subscription `json:"data"`                                                          // List of subscriptions
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type SubscriptionCreateResponse struct {
	Error *string                `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []SubscriptionResponse `json:"data"`                                                          // List of created subscriptions
}

func (r *SubscriptionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, SubscriptionResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type SubscriptionResponse struct {
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this subscription
	Data  *Subscription `json:"data"`                                                          // The subscription data, if creation was successful
}

// Subscription is the API representation of a subscription.
type Subscription struct {
	models.DefaultModel
	SubscriptionEditable
}

func newSubscription(model models.Subscription) Subscription {
	return Subscription{
		DefaultModel: model.DefaultModel,
		SubscriptionEditable: SubscriptionEditable{
			Name:              model.Name,
			AmountYen:         model.AmountYen,
			RecurringEditable: newRecurringEditable(model.RecurringFields),
		},
	}
}
