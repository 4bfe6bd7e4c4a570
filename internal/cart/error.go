package cart

import "errors"

var (
	// -- Validation & Input --
	ErrVariantRequired = errors.New("variant must be chosen before adding to cart")

	// -- Resource State --
	ErrProductNotFound = errors.New("product not found")

	// -- Storage Failures --
	ErrFailedLoadCart  = errors.New("failed to load cart")
	ErrFailedSaveCart  = errors.New("failed to save cart")
	ErrFailedClearCart = errors.New("failed to clear cart")
)
