package app

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/luxestone/storefront/internal/cart/domain"
)

var (
	ErrCartNotFound   = errors.New("cart not found")
	ErrLineNotFound   = errors.New("cart line not found")
	ErrQuantityTooLow = errors.New("quantity must be at least 1")
)

// AddItemInput carries the catalog snapshot taken at add time.
type AddItemInput struct {
	ProductID int64
	Name      string
	UnitPrice int64
	Size      string
	Color     string
}

type Service struct {
	repo CartRepo
}

func NewService(repo CartRepo) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetCart(ctx context.Context, cartID string) (domain.Cart, error) {
	return s.repo.Get(ctx, cartID)
}

// GetOrCreate returns the session's cart, creating an empty one on first use.
func (s *Service) GetOrCreate(ctx context.Context, cartID string) (domain.Cart, error) {
	cart, err := s.repo.Get(ctx, cartID)
	if errors.Is(err, ErrCartNotFound) {
		return s.repo.Create(ctx, cartID)
	}
	return cart, err
}

// AddItem merges into an existing line when product and variant match,
// otherwise appends a new line with quantity 1.
func (s *Service) AddItem(ctx context.Context, cartID string, in AddItemInput) (domain.Cart, error) {
	cart, err := s.GetOrCreate(ctx, cartID)
	if err != nil {
		return domain.Cart{}, err
	}

	candidate := domain.Line{ProductID: in.ProductID, Size: in.Size, Color: in.Color}
	for _, line := range cart.Lines {
		if line.SameIdentity(candidate) {
			if err := s.repo.IncrementLine(ctx, line.ID, 1); err != nil {
				return domain.Cart{}, err
			}
			return s.repo.Get(ctx, cartID)
		}
	}

	line := domain.Line{
		ID:        uuid.NewString(),
		ProductID: in.ProductID,
		Name:      in.Name,
		UnitPrice: in.UnitPrice,
		Quantity:  1,
		Size:      in.Size,
		Color:     in.Color,
		AddedAt:   time.Now().UTC(),
	}
	if err := s.repo.InsertLine(ctx, cart.ID, line); err != nil {
		return domain.Cart{}, err
	}
	return s.repo.Get(ctx, cartID)
}

// SetQuantity rejects quantities below 1 and leaves the cart unchanged.
func (s *Service) SetQuantity(ctx context.Context, cartID, lineID string, qty int) (domain.Cart, error) {
	if qty < 1 {
		return domain.Cart{}, ErrQuantityTooLow
	}
	cart, err := s.repo.Get(ctx, cartID)
	if err != nil {
		return domain.Cart{}, err
	}
	if !hasLine(cart, lineID) {
		return domain.Cart{}, ErrLineNotFound
	}
	if err := s.repo.SetLineQuantity(ctx, lineID, qty); err != nil {
		return domain.Cart{}, err
	}
	return s.repo.Get(ctx, cartID)
}

func (s *Service) RemoveLine(ctx context.Context, cartID, lineID string) (domain.Cart, error) {
	cart, err := s.repo.Get(ctx, cartID)
	if err != nil {
		return domain.Cart{}, err
	}
	if !hasLine(cart, lineID) {
		return domain.Cart{}, ErrLineNotFound
	}
	if err := s.repo.RemoveLine(ctx, cartID, lineID); err != nil {
		return domain.Cart{}, err
	}
	return s.repo.Get(ctx, cartID)
}

func (s *Service) Clear(ctx context.Context, cartID string) error {
	return s.repo.Clear(ctx, cartID)
}

func hasLine(cart domain.Cart, lineID string) bool {
	for _, l := range cart.Lines {
		if l.ID == lineID {
			return true
		}
	}
	return false
}
