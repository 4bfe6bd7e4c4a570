package cart

import (
	"testing"

	"bloomshop-be/internal/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func peonyM() LineItem {
	return LineItem{
		ProductID: "1",
		Name:      "Peony Bouquet",
		Variant:   "M",
		UnitPrice: money.FromMajor(1600),
	}
}

func tulip15() LineItem {
	return LineItem{
		ProductID: "2",
		Name:      "Tulip Box",
		Variant:   "15",
		UnitPrice: money.FromMajor(700),
	}
}

func TestCart_Add(t *testing.T) {
	t.Run("Repeated adds of same identity increment quantity", func(t *testing.T) {
		c := NewCart()
		for i := 0; i < 4; i++ {
			c.Add(peonyM())
		}

		require.Len(t, c.Items, 1)
		assert.Equal(t, 4, c.Items[0].Quantity)
	})

	t.Run("Same product with different variant is a separate item", func(t *testing.T) {
		c := NewCart()
		c.Add(peonyM())

		l := peonyM()
		l.Variant = "L"
		l.UnitPrice = money.FromMajor(2200)
		c.Add(l)

		require.Len(t, c.Items, 2)
		assert.Equal(t, "M", c.Items[0].Variant)
		assert.Equal(t, "L", c.Items[1].Variant)
	})

	t.Run("Insertion order preserved", func(t *testing.T) {
		c := NewCart()
		c.Add(tulip15())
		c.Add(peonyM())

		assert.Equal(t, "2", c.Items[0].ProductID)
		assert.Equal(t, "1", c.Items[1].ProductID)
	})
}

func TestCart_Total(t *testing.T) {
	t.Run("Sum of unit price times quantity", func(t *testing.T) {
		c := NewCart()
		c.Add(peonyM())
		c.Add(peonyM()) // qty 2 × 1600
		c.Add(tulip15())

		assert.Equal(t, money.FromMajor(3900), c.Total())
	})

	t.Run("Invariant under insertion order", func(t *testing.T) {
		forward := NewCart()
		forward.Add(peonyM())
		forward.Add(tulip15())

		backward := NewCart()
		backward.Add(tulip15())
		backward.Add(peonyM())

		assert.Equal(t, forward.Total(), backward.Total())
	})

	t.Run("Empty cart totals zero", func(t *testing.T) {
		assert.Equal(t, money.Amount(0), NewCart().Total())
		assert.True(t, NewCart().IsEmpty())
	})
}

func TestCart_Remove(t *testing.T) {
	c := NewCart()
	c.Add(peonyM())
	c.Add(tulip15())

	c.Remove("1", "M")
	require.Len(t, c.Items, 1)
	assert.Equal(t, "2", c.Items[0].ProductID)

	// Idempotent on absent items
	c.Remove("1", "M")
	c.Remove("nope", "")
	assert.Len(t, c.Items, 1)
}

func TestCart_Quantity(t *testing.T) {
	t.Run("Increase", func(t *testing.T) {
		c := NewCart()
		c.Add(peonyM())
		c.IncreaseQuantity("1", "M")

		assert.Equal(t, 2, c.Items[0].Quantity)
	})

	t.Run("Increase on absent item is a no-op", func(t *testing.T) {
		c := NewCart()
		c.IncreaseQuantity("1", "M")
		assert.True(t, c.IsEmpty())
	})

	t.Run("Decrease removes item at quantity 1", func(t *testing.T) {
		c := NewCart()
		c.Add(peonyM())
		c.DecreaseQuantity("1", "M")

		assert.True(t, c.IsEmpty())
	})

	t.Run("Decrease above 1 keeps the item", func(t *testing.T) {
		c := NewCart()
		c.Add(peonyM())
		c.Add(peonyM())
		c.DecreaseQuantity("1", "M")

		require.Len(t, c.Items, 1)
		assert.Equal(t, 1, c.Items[0].Quantity)
	})

	t.Run("Decrease on absent item is a no-op", func(t *testing.T) {
		c := NewCart()
		c.Add(tulip15())
		c.DecreaseQuantity("1", "M")

		assert.Len(t, c.Items, 1)
	})
}
