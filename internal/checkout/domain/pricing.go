package domain

// Quote is the priced view of a cart at checkout. All amounts are whole
// rupees; there is no fractional currency.
type Quote struct {
	Subtotal    int64
	ShippingFee int64
	Discount    int64
	Total       int64
}

// Price derives the quote from a subtotal, the flat shipping fee and an
// optional coupon percent (0 means no coupon). The discount is rounded to the
// nearest whole unit and never exceeds the subtotal.
func Price(subtotal, shippingFee int64, discountPercent int) Quote {
	discount := int64(0)
	if discountPercent > 0 {
		discount = (subtotal*int64(discountPercent) + 50) / 100
		if discount > subtotal {
			discount = subtotal
		}
	}
	return Quote{
		Subtotal:    subtotal,
		ShippingFee: shippingFee,
		Discount:    discount,
		Total:       subtotal + shippingFee - discount,
	}
}
