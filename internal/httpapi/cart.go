package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	cartapp "github.com/luxestone/storefront/internal/cart/app"
	cartdomain "github.com/luxestone/storefront/internal/cart/domain"
	catalogdomain "github.com/luxestone/storefront/internal/catalog/domain"
)

const cartCookie = "cart_id"

// cartID returns the session's cart id, issuing a cookie on first contact.
// The cookie is the ownership boundary: one browsing session, one cart.
func (s *Server) cartID(c *gin.Context) string {
	if id, err := c.Cookie(cartCookie); err == nil && id != "" {
		return id
	}
	id := uuid.NewString()
	c.SetCookie(cartCookie, id, 60*60*24*30, "/", "", false, true)
	return id
}

type cartLineView struct {
	ID        string `json:"id"`
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"selectedSize,omitempty"`
	Color     string `json:"selectedColor,omitempty"`
	LineTotal int64  `json:"line_total"`
}

type cartView struct {
	ID       string         `json:"id"`
	Lines    []cartLineView `json:"lines"`
	Subtotal int64          `json:"subtotal"`
	Count    int            `json:"count"`
}

func toCartView(cart cartdomain.Cart) cartView {
	view := cartView{
		ID:       cart.ID,
		Lines:    make([]cartLineView, 0, len(cart.Lines)),
		Subtotal: cart.Subtotal(),
		Count:    cart.Count(),
	}
	for _, l := range cart.Lines {
		view.Lines = append(view.Lines, cartLineView{
			ID:        l.ID,
			ProductID: l.ProductID,
			Name:      l.Name,
			Price:     l.UnitPrice,
			Quantity:  l.Quantity,
			Size:      l.Size,
			Color:     l.Color,
			LineTotal: l.Total(),
		})
	}
	return view
}

func (s *Server) getCart(c *gin.Context) {
	cart, err := s.carts.GetOrCreate(c.Request.Context(), s.cartID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartView(cart))
}

type addItemRequest struct {
	ProductID int64  `json:"product_id" binding:"required,min=1"`
	Size      string `json:"selectedSize"`
	Color     string `json:"selectedColor"`
}

func (s *Server) addCartItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "INVALID_INPUT", Message: err.Error()})
		return
	}

	ctx := c.Request.Context()
	product, err := s.catalog.GetProduct(ctx, req.ProductID)
	if err != nil {
		writeError(c, err)
		return
	}
	if status, _ := s.catalog.Presentation(product); status.Availability == catalogdomain.OutOfStock {
		c.JSON(http.StatusConflict, ErrorResponse{Error: "INSUFFICIENT_STOCK", Message: status.Message})
		return
	}

	cart, err := s.carts.AddItem(ctx, s.cartID(c), cartapp.AddItemInput{
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		Size:      req.Size,
		Color:     req.Color,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartView(cart))
}

type setQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

func (s *Server) setCartQuantity(c *gin.Context) {
	var req setQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "INVALID_INPUT", Message: err.Error()})
		return
	}

	cart, err := s.carts.SetQuantity(c.Request.Context(), s.cartID(c), c.Param("lineID"), req.Quantity)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartView(cart))
}

func (s *Server) removeCartLine(c *gin.Context) {
	cart, err := s.carts.RemoveLine(c.Request.Context(), s.cartID(c), c.Param("lineID"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartView(cart))
}

func (s *Server) clearCart(c *gin.Context) {
	if err := s.carts.Clear(c.Request.Context(), s.cartID(c)); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
