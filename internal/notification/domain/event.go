package domain

import "time"

const KindOrderPlaced = "order.placed"

// OrderPlaced is the summary mailed/queued to the back office when a shopper
// submits an order. Delivery is decoupled from the submission contract.
type OrderPlaced struct {
	OrderID       int64       `json:"order_id"`
	CustomerName  string      `json:"customer_name"`
	Email         string      `json:"email"`
	Phone         string      `json:"phone"`
	Address       string      `json:"address"`
	TotalAmount   int64       `json:"total_amount"`
	PaymentMethod string      `json:"payment_method"`
	Items         []OrderLine `json:"items"`
}

type OrderLine struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
}

// Envelope is one outbox row: written in the same transaction as the state
// change it announces, published at least once by the relay.
type Envelope struct {
	ID        string
	Kind      string
	Payload   []byte
	CreatedAt time.Time
}
