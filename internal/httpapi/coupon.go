package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type couponView struct {
	ID              int64  `json:"id"`
	Code            string `json:"code"`
	DiscountPercent int    `json:"discount_percent"`
	Active          bool   `json:"active"`
}

func (s *Server) validateCoupon(c *gin.Context) {
	percent, err := s.coupons.Validate(c.Request.Context(), c.Param("code"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"discount_percent": percent})
}

func (s *Server) listCoupons(c *gin.Context) {
	coupons, err := s.coupons.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]couponView, 0, len(coupons))
	for _, cp := range coupons {
		out = append(out, couponView{
			ID:              cp.ID,
			Code:            cp.Code,
			DiscountPercent: cp.DiscountPercent,
			Active:          cp.Active,
		})
	}
	c.JSON(http.StatusOK, out)
}

type createCouponRequest struct {
	Code            string `json:"code" binding:"required"`
	DiscountPercent int    `json:"discount_percent" binding:"required,min=1,max=100"`
}

func (s *Server) createCoupon(c *gin.Context) {
	var req createCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "INVALID_INPUT", Message: err.Error()})
		return
	}
	coupon, err := s.coupons.Create(c.Request.Context(), req.Code, req.DiscountPercent)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, couponView{
		ID:              coupon.ID,
		Code:            coupon.Code,
		DiscountPercent: coupon.DiscountPercent,
		Active:          coupon.Active,
	})
}

func (s *Server) deleteCoupon(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "INVALID_INPUT", Message: "invalid coupon id"})
		return
	}
	if err := s.coupons.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
