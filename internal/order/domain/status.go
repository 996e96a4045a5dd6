package domain

type Status string

const (
	StatusPending   Status = "Pending"
	StatusShipped   Status = "Shipped"
	StatusDelivered Status = "Delivered"
	StatusCancelled Status = "Cancelled"
)

// transitions is the explicit lifecycle table. Shipping may be skipped
// (Pending straight to Delivered is a legal admin action), but Delivered and
// Cancelled are terminal: once an order reaches either, no further status
// change is accepted.
var transitions = map[Status][]Status{
	StatusPending:   {StatusShipped, StatusDelivered, StatusCancelled},
	StatusShipped:   {StatusDelivered, StatusCancelled},
	StatusDelivered: {},
	StatusCancelled: {},
}

func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

func (s Status) Terminal() bool {
	return s.Valid() && len(transitions[s]) == 0
}

// CanTransitionTo reports whether the admin may move an order from s to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ParseStatus maps the admin control surface's three targets (plus the
// initial state) onto the typed status.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", ErrUnknownStatus
	}
	return s, nil
}
