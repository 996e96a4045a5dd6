package domain

import (
	"errors"
	"time"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrUnknownStatus     = errors.New("unknown order status")
)

const PaymentCashOnDelivery = "Cash on Delivery"

// Item is an immutable snapshot of a cart line captured at submission time.
// It never changes, even when the referenced product is later edited.
type Item struct {
	ID        int64
	ProductID int64
	Name      string
	UnitPrice int64
	Quantity  int
	Size      string
	Color     string
}

func (i Item) Total() int64 {
	return i.UnitPrice * int64(i.Quantity)
}

type Order struct {
	ID           int64
	CustomerName string
	Email        string
	Phone        string
	Address      string

	Subtotal    int64
	ShippingFee int64
	Discount    int64
	TotalAmount int64

	CouponCode    string
	PaymentMethod string
	TransactionID string

	Status    Status
	Items     []Item
	CreatedAt time.Time
}
