package catalog

import (
	"bloomshop-be/internal/money"
)

// Options is the variant axis of a product. The feed exposes at most one
// axis per product: a list of size labels or a list of quantity numbers.
type Options struct {
	Size     []string `json:"size,omitempty"`
	Quantity []int    `json:"quantity,omitempty"`
}

func (o Options) Empty() bool {
	return len(o.Size) == 0 && len(o.Quantity) == 0
}

// Product is an immutable catalog record once fetched within a session.
type Product struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Price       money.Amount `json:"price"`
	Image       string       `json:"image"`
	Images      []string     `json:"images,omitempty"`
	Options     Options      `json:"options"`
	Category    string       `json:"category"`
	Description string       `json:"description,omitempty"`
}

// HasOptions reports whether the product requires a variant to be chosen
// before it can be added to a cart.
func (p Product) HasOptions() bool {
	return !p.Options.Empty()
}
