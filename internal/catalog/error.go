package catalog

import "errors"

var (
	// -- Feed & Transport --
	ErrFeedUnavailable = errors.New("catalog feed unavailable")
	ErrFeedMalformed   = errors.New("catalog feed malformed")

	// -- Record Validation --
	ErrEntryInvalid = errors.New("catalog entry missing required fields")

	// -- Lookup --
	ErrProductNotFound = errors.New("product not found")
)
