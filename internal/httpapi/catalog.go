package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	catalogdomain "github.com/luxestone/storefront/internal/catalog/domain"
)

type productView struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	Price       int64    `json:"price"`
	OldPrice    int64    `json:"old_price,omitempty"`
	Discount    int      `json:"discount_percent,omitempty"`
	Stock       int      `json:"stock"`
	Sizes       []string `json:"sizes,omitempty"`
	Colors      []string `json:"colors,omitempty"`
	Images      []string `json:"images,omitempty"`

	Availability string `json:"availability"`
	StockLabel   string `json:"stock_label"`

	SaleState     string `json:"sale_state,omitempty"`
	SaleRemaining int64  `json:"sale_remaining_seconds,omitempty"`
}

func (s *Server) toProductView(p catalogdomain.Product) productView {
	status, sale := s.catalog.Presentation(p)
	view := productView{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Category:     p.Category,
		Price:        p.Price,
		OldPrice:     p.OldPrice,
		Discount:     p.DiscountPercent(),
		Stock:        p.Stock,
		Sizes:        p.Sizes,
		Colors:       p.Colors,
		Images:       p.Images,
		Availability: string(status.Availability),
		StockLabel:   status.Message,
	}
	if sale.State != catalogdomain.SaleNone {
		view.SaleState = string(sale.State)
		view.SaleRemaining = int64(sale.Remaining / time.Second)
	}
	return view
}

func (s *Server) listProducts(c *gin.Context) {
	products, err := s.catalog.ListProducts(c.Request.Context(), c.Query("category"))
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]productView, 0, len(products))
	for _, p := range products {
		out = append(out, s.toProductView(p))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) getProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "INVALID_INPUT", Message: "invalid product id"})
		return
	}
	product, err := s.catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, s.toProductView(product))
}

type productRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Price       int64    `json:"price" binding:"required,min=1"`
	OldPrice    int64    `json:"old_price"`
	Stock       int      `json:"stock"`
	SaleEnd     *string  `json:"sale_end"`
	Sizes       []string `json:"sizes"`
	Colors      []string `json:"colors"`
	Images      []string `json:"images"`
}

func (r productRequest) toDomain() (catalogdomain.Product, error) {
	p := catalogdomain.Product{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Price:       r.Price,
		OldPrice:    r.OldPrice,
		Stock:       r.Stock,
		Sizes:       r.Sizes,
		Colors:      r.Colors,
		Images:      r.Images,
	}
	if r.SaleEnd != nil && *r.SaleEnd != "" {
		t, err := time.Parse(time.RFC3339, *r.SaleEnd)
		if err != nil {
			return catalogdomain.Product{}, err
		}
		p.SaleEnd = &t
	}
	return p, nil
}

func (s *Server) createProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "INVALID_INPUT", Message: err.Error()})
		return
	}
	p, err := req.toDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "INVALID_INPUT", Message: err.Error()})
		return
	}
	created, err := s.catalog.CreateProduct(c.Request.Context(), p)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, s.toProductView(created))
}

func (s *Server) updateProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "INVALID_INPUT", Message: "invalid product id"})
		return
	}
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "INVALID_INPUT", Message: err.Error()})
		return
	}
	p, err := req.toDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "INVALID_INPUT", Message: err.Error()})
		return
	}
	p.ID = id
	updated, err := s.catalog.UpdateProduct(c.Request.Context(), p)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, s.toProductView(updated))
}

type restockRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

func (s *Server) restockProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "INVALID_INPUT", Message: "invalid product id"})
		return
	}
	var req restockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "INVALID_INPUT", Message: err.Error()})
		return
	}
	if err := s.catalog.Restock(c.Request.Context(), id, req.Quantity); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
