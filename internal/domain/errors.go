package domain

import "errors"

// Error taxonomy surfaced by services. Handlers map these to HTTP statuses;
// no failure is retried automatically.
var (
	// ErrNotFound signals an absent workspace or content item (404)
	ErrNotFound = errors.New("not found")

	// ErrPreconditionMissing signals that brand voice or funnel config must
	// be configured before the operation (400)
	ErrPreconditionMissing = errors.New("brand voice and funnel config must be set up first")

	// ErrUpstream signals an AI gateway failure or an unparseable model
	// response (502)
	ErrUpstream = errors.New("ai gateway failure")

	// ErrInvalidInput signals a request that fails business validation (400)
	ErrInvalidInput = errors.New("invalid input")
)
