package httpapi

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	cartapp "github.com/luxestone/storefront/internal/cart/app"
	catalogapp "github.com/luxestone/storefront/internal/catalog/app"
	checkoutapp "github.com/luxestone/storefront/internal/checkout/app"
	couponapp "github.com/luxestone/storefront/internal/coupon/app"
	orderapp "github.com/luxestone/storefront/internal/order/app"
)

type Server struct {
	carts    *cartapp.Service
	catalog  *catalogapp.Service
	coupons  *couponapp.Service
	checkout *checkoutapp.Service
	orders   *orderapp.Service
	log      *logrus.Entry
}

func NewServer(
	carts *cartapp.Service,
	catalog *catalogapp.Service,
	coupons *couponapp.Service,
	checkout *checkoutapp.Service,
	orders *orderapp.Service,
	log *logrus.Entry,
) *Server {
	return &Server{
		carts:    carts,
		catalog:  catalog,
		coupons:  coupons,
		checkout: checkout,
		orders:   orders,
		log:      log,
	}
}

func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) { c.Status(200) })

	api := r.Group("/api")
	{
		api.GET("/products", s.listProducts)
		api.GET("/products/:id", s.getProduct)

		api.GET("/cart", s.getCart)
		api.POST("/cart/items", s.addCartItem)
		api.PATCH("/cart/items/:lineID", s.setCartQuantity)
		api.DELETE("/cart/items/:lineID", s.removeCartLine)
		api.DELETE("/cart", s.clearCart)

		api.GET("/coupons/:code", s.validateCoupon)

		api.POST("/checkout", s.submitOrder)

		api.GET("/orders/:id", s.trackOrder)
		api.GET("/orders", s.orderHistory)
	}

	admin := r.Group("/api/admin")
	{
		admin.POST("/products", s.createProduct)
		admin.PUT("/products/:id", s.updateProduct)
		admin.POST("/products/:id/restock", s.restockProduct)

		admin.GET("/coupons", s.listCoupons)
		admin.POST("/coupons", s.createCoupon)
		admin.DELETE("/coupons/:id", s.deleteCoupon)

		admin.GET("/orders", s.listOrders)
		admin.GET("/orders/stats", s.orderStats)
		admin.PATCH("/orders/:id/status", s.updateOrderStatus)
		admin.DELETE("/orders/:id", s.deleteOrder)
	}

	return r
}
