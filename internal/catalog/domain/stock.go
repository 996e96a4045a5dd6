package domain

import (
	"fmt"
	"time"
)

type Availability string

const (
	OutOfStock Availability = "out_of_stock"
	LowStock   Availability = "low_stock"
	InStock    Availability = "in_stock"
)

// lowStockThreshold is the remaining count below which the storefront
// starts nudging shoppers.
const lowStockThreshold = 5

type StockStatus struct {
	Availability Availability
	Message      string
}

// StockStatusFor maps a stock count to its display state. OutOfStock blocks
// add-to-cart and checkout for the product.
func StockStatusFor(stock int) StockStatus {
	switch {
	case stock <= 0:
		return StockStatus{Availability: OutOfStock, Message: "Out of Stock"}
	case stock < lowStockThreshold:
		return StockStatus{
			Availability: LowStock,
			Message:      fmt.Sprintf("Hurry! Only %d left", stock),
		}
	default:
		return StockStatus{Availability: InStock, Message: "In Stock"}
	}
}

type SaleState string

const (
	SaleActive  SaleState = "active"
	SaleExpired SaleState = "expired"
	SaleNone    SaleState = "none"
)

type SaleCountdown struct {
	State     SaleState
	Remaining time.Duration
}

// SaleCountdownFor derives the flash-sale display state from a single clock
// sample; callers recompute per render rather than polling a timer.
func SaleCountdownFor(saleEnd *time.Time, now time.Time) SaleCountdown {
	if saleEnd == nil {
		return SaleCountdown{State: SaleNone}
	}
	remaining := saleEnd.Sub(now)
	if remaining <= 0 {
		return SaleCountdown{State: SaleExpired}
	}
	return SaleCountdown{State: SaleActive, Remaining: remaining}
}
