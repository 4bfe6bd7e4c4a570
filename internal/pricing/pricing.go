package pricing

import (
	"strconv"
	"strings"

	"bloomshop-be/internal/catalog"
	"bloomshop-be/internal/money"
)

// Engine resolves effective unit prices from a product's base price and the
// chosen variant. Each step up the ordered option list adds a fixed tier
// delta to the base price.
type Engine struct {
	tierDelta money.Amount
}

func NewEngine(tierDelta money.Amount) *Engine {
	return &Engine{tierDelta: tierDelta}
}

// UnitPrice computes base + optionIndex × tierDelta. A variant that is not
// in the declared option list resolves to the base price.
func (e *Engine) UnitPrice(p catalog.Product, variant string) money.Amount {
	idx := optionIndex(p.Options, variant)
	if idx <= 0 {
		return p.Price
	}
	return p.Price.Add(e.tierDelta.MulQty(idx))
}

// optionIndex finds the position of the chosen variant on the product's
// single option axis, or -1 when absent.
func optionIndex(opts catalog.Options, variant string) int {
	variant = strings.TrimSpace(variant)
	if variant == "" {
		return -1
	}

	if len(opts.Size) > 0 {
		for i, label := range opts.Size {
			if label == variant {
				return i
			}
		}
		return -1
	}

	if len(opts.Quantity) > 0 {
		n, err := strconv.Atoi(variant)
		if err != nil {
			return -1
		}
		for i, qty := range opts.Quantity {
			if qty == n {
				return i
			}
		}
	}

	return -1
}
