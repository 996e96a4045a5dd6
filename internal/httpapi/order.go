package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	orderdomain "github.com/luxestone/storefront/internal/order/domain"
)

type orderItemView struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
	Size     string `json:"selectedSize,omitempty"`
	Color    string `json:"selectedColor,omitempty"`
}

type orderView struct {
	ID            int64           `json:"id"`
	CustomerName  string          `json:"customer_name"`
	Email         string          `json:"email,omitempty"`
	Phone         string          `json:"phone,omitempty"`
	Address       string          `json:"address,omitempty"`
	Subtotal      int64           `json:"subtotal"`
	ShippingFee   int64           `json:"shipping_fee"`
	Discount      int64           `json:"discount"`
	TotalAmount   int64           `json:"total_amount"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"payment_method"`
	TransactionID string          `json:"transaction_id,omitempty"`
	CartItems     []orderItemView `json:"cart_items"`
	CreatedAt     time.Time       `json:"created_at"`
}

func toOrderView(o orderdomain.Order) orderView {
	view := orderView{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		Email:         o.Email,
		Phone:         o.Phone,
		Address:       o.Address,
		Subtotal:      o.Subtotal,
		ShippingFee:   o.ShippingFee,
		Discount:      o.Discount,
		TotalAmount:   o.TotalAmount,
		Status:        string(o.Status),
		PaymentMethod: o.PaymentMethod,
		TransactionID: o.TransactionID,
		CartItems:     make([]orderItemView, 0, len(o.Items)),
		CreatedAt:     o.CreatedAt,
	}
	for _, item := range o.Items {
		view.CartItems = append(view.CartItems, orderItemView{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.UnitPrice,
			Quantity: item.Quantity,
			Size:     item.Size,
			Color:    item.Color,
		})
	}
	return view
}

func orderID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "INVALID_INPUT", Message: "invalid order id"})
		return 0, false
	}
	return id, true
}

// trackOrder is the public lookup used by the Track Order page: anyone with
// the numeric id can see the status and the snapshot.
func (s *Server) trackOrder(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	order, err := s.orders.Track(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderView(order))
}

func (s *Server) orderHistory(c *gin.Context) {
	orders, err := s.orders.History(c.Request.Context(), c.Query("email"))
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]orderView, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderView(o))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) listOrders(c *gin.Context) {
	orders, err := s.orders.ListAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]orderView, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderView(o))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) orderStats(c *gin.Context) {
	stats, err := s.orders.DashboardStats(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"total_sales":    stats.TotalSales,
		"total_orders":   stats.TotalOrders,
		"pending_orders": stats.PendingOrders,
	})
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (s *Server) updateOrderStatus(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "INVALID_INPUT", Message: err.Error()})
		return
	}
	next, err := orderdomain.ParseStatus(req.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	order, err := s.orders.UpdateStatus(c.Request.Context(), id, next)
	if err != nil {
		writeError(c, err)
		return
	}
	s.log.WithField("order_id", id).WithField("status", next).Info("order status updated")
	c.JSON(http.StatusOK, toOrderView(order))
}

func (s *Server) deleteOrder(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	if err := s.orders.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	s.log.WithField("order_id", id).Info("order deleted")
	c.Status(http.StatusNoContent)
}
