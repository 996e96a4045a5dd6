package httpapi

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	cartapp "github.com/luxestone/storefront/internal/cart/app"
	catalogapp "github.com/luxestone/storefront/internal/catalog/app"
	checkoutapp "github.com/luxestone/storefront/internal/checkout/app"
	couponapp "github.com/luxestone/storefront/internal/coupon/app"
	orderdomain "github.com/luxestone/storefront/internal/order/domain"
)

func TestStatusFromError(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{checkoutapp.ErrEmptyCart, http.StatusBadRequest, "INVALID_INPUT"},
		{checkoutapp.ErrMissingField, http.StatusBadRequest, "INVALID_INPUT"},
		{cartapp.ErrQuantityTooLow, http.StatusBadRequest, "INVALID_INPUT"},
		{orderdomain.ErrUnknownStatus, http.StatusBadRequest, "INVALID_INPUT"},
		{cartapp.ErrCartNotFound, http.StatusNotFound, "NOT_FOUND"},
		{catalogapp.ErrProductNotFound, http.StatusNotFound, "NOT_FOUND"},
		{couponapp.ErrCouponNotFound, http.StatusNotFound, "NOT_FOUND"},
		{orderdomain.ErrOrderNotFound, http.StatusNotFound, "NOT_FOUND"},
		{orderdomain.ErrInsufficientStock, http.StatusConflict, "INSUFFICIENT_STOCK"},
		{checkoutapp.ErrOutOfStock, http.StatusConflict, "INSUFFICIENT_STOCK"},
		{orderdomain.ErrInvalidTransition, http.StatusConflict, "INVALID_TRANSITION"},
		{couponapp.ErrDuplicateCode, http.StatusConflict, "DUPLICATE_CODE"},
		{errors.New("boom"), http.StatusInternalServerError, "INTERNAL"},
	}
	for _, tc := range cases {
		status, code := statusFromError(tc.err)
		assert.Equal(t, tc.status, status, "err=%v", tc.err)
		assert.Equal(t, tc.code, code, "err=%v", tc.err)
	}
}

func TestStatusFromErrorUnwraps(t *testing.T) {
	wrapped := fmt.Errorf("phone: %w", checkoutapp.ErrMissingField)
	status, code := statusFromError(wrapped)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_INPUT", code)

	stacked := errors.Wrap(orderdomain.ErrInsufficientStock, "create order")
	status, code = statusFromError(stacked)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "INSUFFICIENT_STOCK", code)
}
