package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStockStatusFor(t *testing.T) {
	t.Run("zero or negative is out of stock", func(t *testing.T) {
		assert.Equal(t, OutOfStock, StockStatusFor(0).Availability)
		assert.Equal(t, OutOfStock, StockStatusFor(-1).Availability)
	})

	t.Run("below five is low stock with remaining count", func(t *testing.T) {
		status := StockStatusFor(3)
		assert.Equal(t, LowStock, status.Availability)
		assert.Equal(t, "Hurry! Only 3 left", status.Message)
	})

	t.Run("five and above is in stock", func(t *testing.T) {
		assert.Equal(t, InStock, StockStatusFor(5).Availability)
		assert.Equal(t, InStock, StockStatusFor(100).Availability)
	})
}

func TestSaleCountdownFor(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("no sale end", func(t *testing.T) {
		assert.Equal(t, SaleNone, SaleCountdownFor(nil, now).State)
	})

	t.Run("active sale reports remaining time", func(t *testing.T) {
		end := now.Add(90 * time.Minute)
		countdown := SaleCountdownFor(&end, now)
		assert.Equal(t, SaleActive, countdown.State)
		assert.Equal(t, 90*time.Minute, countdown.Remaining)
	})

	t.Run("past end is expired", func(t *testing.T) {
		end := now.Add(-time.Second)
		assert.Equal(t, SaleExpired, SaleCountdownFor(&end, now).State)
	})

	t.Run("exact end is expired", func(t *testing.T) {
		end := now
		assert.Equal(t, SaleExpired, SaleCountdownFor(&end, now).State)
	})
}

func TestDiscountPercent(t *testing.T) {
	assert.Equal(t, 0, Product{Price: 1000}.DiscountPercent())
	assert.Equal(t, 0, Product{Price: 1000, OldPrice: 1000}.DiscountPercent())
	assert.Equal(t, 50, Product{Price: 500, OldPrice: 1000}.DiscountPercent())
	assert.Equal(t, 33, Product{Price: 1000, OldPrice: 1500}.DiscountPercent())
}
