package order

import "errors"

var (
	// -- Preconditions --
	ErrCartEmpty = errors.New("cart is empty")

	// -- Concurrency Guard --
	ErrSubmissionInFlight = errors.New("order submission already in flight")
)
