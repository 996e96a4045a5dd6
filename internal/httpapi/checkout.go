package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	checkoutdomain "github.com/luxestone/storefront/internal/checkout/domain"
)

type checkoutRequest struct {
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone" binding:"required"`
	Address    string `json:"address" binding:"required"`
	City       string `json:"city"`
	CouponCode string `json:"coupon_code"`
}

type checkoutResponse struct {
	OrderID       int64  `json:"order_id"`
	TotalAmount   int64  `json:"total_amount"`
	PaymentMethod string `json:"payment_method"`
}

func (s *Server) submitOrder(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "INVALID_INPUT", Message: err.Error()})
		return
	}

	receipt, err := s.checkout.Submit(c.Request.Context(), checkoutdomain.Submission{
		CartID:     s.cartID(c),
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
		City:       req.City,
		CouponCode: req.CouponCode,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	s.log.WithField("order_id", receipt.OrderID).Info("order placed")
	c.JSON(http.StatusCreated, checkoutResponse{
		OrderID:       receipt.OrderID,
		TotalAmount:   receipt.TotalAmount,
		PaymentMethod: receipt.PaymentMethod,
	})
}
