package models

import "errors"

var (
	// General errors
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	// Validity windows
	ErrWindowEndsBeforeStart = errors.New("the effective end date must not be before the effective start date")

	// Cards
	ErrCardDayOutOfRange    = errors.New("closing and payment days must be between 1 and 31")
	ErrCardNoPaymentAccount = errors.New("a card must reference a payment account")

	// Recurring definitions
	ErrDefinitionUnknownFrequency  = errors.New("unknown frequency")
	ErrDefinitionNoAccount         = errors.New("a direct debit definition must reference an account")
	ErrDefinitionNoCard            = errors.New("a card routed definition must reference a card")
	ErrDefinitionUnknownSettlement = errors.New("the payment method must be account or card")
	ErrDefinitionNoAnchor          = errors.New("a weekly interval definition must have an anchor date")

	// Schedules
	ErrScheduleAmountNotPositive = errors.New("schedule amounts must be larger than zero")
	ErrScheduleMonthsNotPositive = errors.New("the number of installment months must be larger than zero")
	ErrScheduleNoCard            = errors.New("a schedule must reference a card")

	// Card transactions
	ErrTransactionNoCard = errors.New("a card transaction must reference a card")

	// Variable confirmations
	ErrConfirmationNoPayment = errors.New("a confirmation must reference a variable payment")
	ErrConfirmationNotUnique = errors.New("there already is a confirmation for this occurrence of the variable payment")

	// Events
	ErrEventSourceUnknown = errors.New("unknown event source")
	ErrEventSourceDerived = errors.New("derived events are owned by the planner and can not be edited directly")
)
