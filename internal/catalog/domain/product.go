package domain

import "time"

type Product struct {
	ID          int64
	Name        string
	Description string
	Category    string

	// Price and OldPrice are whole rupees. OldPrice, when set, is the
	// pre-promotion price used for the discount badge.
	Price    int64
	OldPrice int64

	Stock   int
	SaleEnd *time.Time

	Sizes  []string
	Colors []string
	Images []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DiscountPercent is the promotional badge value derived from OldPrice.
// Zero when the product is not discounted.
func (p Product) DiscountPercent() int {
	if p.OldPrice <= 0 || p.OldPrice <= p.Price {
		return 0
	}
	return int(float64(p.OldPrice-p.Price)/float64(p.OldPrice)*100 + 0.5)
}
