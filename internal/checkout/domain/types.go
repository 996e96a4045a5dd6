package domain

// Submission is the checkout form plus the owning session's cart reference.
type Submission struct {
	CartID string

	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	City      string

	CouponCode string
}

func (s Submission) CustomerName() string {
	if s.LastName == "" {
		return s.FirstName
	}
	return s.FirstName + " " + s.LastName
}

func (s Submission) FullAddress() string {
	if s.City == "" {
		return s.Address
	}
	return s.Address + ", " + s.City
}

// Receipt is what the shopper gets back from a successful submission.
type Receipt struct {
	OrderID       int64
	TotalAmount   int64
	PaymentMethod string
}
