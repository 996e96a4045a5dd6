package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	cartapp "github.com/luxestone/storefront/internal/cart/app"
	catalogapp "github.com/luxestone/storefront/internal/catalog/app"
	checkoutapp "github.com/luxestone/storefront/internal/checkout/app"
	couponapp "github.com/luxestone/storefront/internal/coupon/app"
	orderapp "github.com/luxestone/storefront/internal/order/app"
	orderdomain "github.com/luxestone/storefront/internal/order/domain"
)

// ErrorResponse is the wire envelope for every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// statusFromError maps service errors onto HTTP status and a stable code.
func statusFromError(err error) (int, string) {
	switch {
	case errors.Is(err, checkoutapp.ErrEmptyCart),
		errors.Is(err, checkoutapp.ErrMissingField),
		errors.Is(err, cartapp.ErrQuantityTooLow),
		errors.Is(err, catalogapp.ErrInvalidInput),
		errors.Is(err, couponapp.ErrInvalidCoupon),
		errors.Is(err, orderapp.ErrInvalidInput),
		errors.Is(err, orderdomain.ErrUnknownStatus):
		return http.StatusBadRequest, "INVALID_INPUT"

	case errors.Is(err, cartapp.ErrCartNotFound),
		errors.Is(err, cartapp.ErrLineNotFound),
		errors.Is(err, catalogapp.ErrProductNotFound),
		errors.Is(err, couponapp.ErrCouponNotFound),
		errors.Is(err, orderdomain.ErrOrderNotFound):
		return http.StatusNotFound, "NOT_FOUND"

	case errors.Is(err, orderdomain.ErrInsufficientStock),
		errors.Is(err, checkoutapp.ErrOutOfStock):
		return http.StatusConflict, "INSUFFICIENT_STOCK"

	case errors.Is(err, orderdomain.ErrInvalidTransition):
		return http.StatusConflict, "INVALID_TRANSITION"

	case errors.Is(err, couponapp.ErrDuplicateCode):
		return http.StatusConflict, "DUPLICATE_CODE"

	default:
		return http.StatusInternalServerError, "INTERNAL"
	}
}

func writeError(c *gin.Context, err error) {
	status, code := statusFromError(err)
	c.JSON(status, ErrorResponse{Error: code, Message: err.Error()})
}
