package cart

import (
	"bloomshop-be/internal/money"
)

// LineItem is one product+variant entry in the cart. The unit price is
// captured when the item is added; later catalog price changes do not
// retroactively alter items already in the cart.
type LineItem struct {
	ProductID string       `json:"product_id"`
	Name      string       `json:"name"`
	Image     string       `json:"image"`
	Variant   string       `json:"variant"`
	Quantity  int          `json:"quantity"`
	UnitPrice money.Amount `json:"unit_price"`
}

// Cart is an ordered collection of line items. Insertion order is preserved
// for display; the total is always derived, never stored.
type Cart struct {
	Items []LineItem `json:"items"`
}

func NewCart() *Cart {
	return &Cart{Items: []LineItem{}}
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Total sums unitPrice × quantity over all line items.
func (c *Cart) Total() money.Amount {
	var total money.Amount
	for _, item := range c.Items {
		total = total.Add(item.UnitPrice.MulQty(item.Quantity))
	}
	return total
}

// indexOf locates the line item identified by (productID, variant), or -1.
func (c *Cart) indexOf(productID, variant string) int {
	for i, item := range c.Items {
		if item.ProductID == productID && item.Variant == variant {
			return i
		}
	}
	return -1
}

// Add appends the item with quantity 1, or increments the quantity of an
// existing entry with the same (productID, variant) identity.
func (c *Cart) Add(item LineItem) {
	if i := c.indexOf(item.ProductID, item.Variant); i >= 0 {
		c.Items[i].Quantity++
		return
	}
	item.Quantity = 1
	c.Items = append(c.Items, item)
}

// Remove deletes the matching line item. Removing an absent item is a no-op.
func (c *Cart) Remove(productID, variant string) {
	if i := c.indexOf(productID, variant); i >= 0 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
	}
}

// IncreaseQuantity bumps the matching item's quantity by one.
func (c *Cart) IncreaseQuantity(productID, variant string) {
	if i := c.indexOf(productID, variant); i >= 0 {
		c.Items[i].Quantity++
	}
}

// DecreaseQuantity lowers the matching item's quantity by one; dropping
// below 1 removes the item entirely.
func (c *Cart) DecreaseQuantity(productID, variant string) {
	i := c.indexOf(productID, variant)
	if i < 0 {
		return
	}
	if c.Items[i].Quantity <= 1 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
		return
	}
	c.Items[i].Quantity--
}
