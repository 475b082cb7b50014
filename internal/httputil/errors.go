package httputil

import "errors"

// Errors for request parsing. Handlers return these verbatim to API
// consumers, so the planner frontend can show them as-is.
var (
	// ErrInvalidBody is returned when a request body cannot be decoded
	// into the target resource.
	ErrInvalidBody = errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")

	// ErrRequestBodyEmpty is returned when a create or update request
	// has no body at all.
	ErrRequestBodyEmpty = errors.New("the request body must not be empty")

	// ErrInvalidUUID is returned when a path or query parameter that
	// must identify a resource does not parse as a UUID.
	ErrInvalidUUID = errors.New("the specified resource ID is not a valid UUID")
)
