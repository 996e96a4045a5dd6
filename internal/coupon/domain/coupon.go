package domain

import (
	"strings"
	"time"
)

// Coupon is a percentage-discount code. Codes are stored uppercase and are
// unique; shoppers may type them in any case.
type Coupon struct {
	ID              int64
	Code            string
	DiscountPercent int
	Active          bool
	CreatedAt       time.Time
}

// NormalizeCode maps shopper input onto the stored code form.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidPercent bounds the discount to (0, 100].
func ValidPercent(percent int) bool {
	return percent > 0 && percent <= 100
}
