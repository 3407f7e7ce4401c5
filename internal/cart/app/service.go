package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/dwikikusuma/simple-pos/internal/cart/domain"
	"github.com/google/uuid"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNoSelection       = errors.New("no such cart line")
	ErrInsufficientStock = errors.New("insufficient stock available")
)

type Service struct {
	mu    sync.Mutex
	items []domain.Item
}

func NewService() *Service {
	return &Service{}
}

// Items returns a copy of the cart lines in insertion order.
func (s *Service) Items(ctx context.Context) []domain.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Item, len(s.items))
	copy(out, s.items)
	return out
}

// AddItem appends a new line for the product. availableStock is the stock
// the caller saw when it picked the row; the quantity is validated against
// that snapshot, not against live inventory. Adding the same product twice
// creates two lines.
func (s *Service) AddItem(ctx context.Context, name string, unitPrice float64, availableStock int, quantity string) (domain.Item, error) {
	qty, err := parseQuantity(quantity)
	if err != nil {
		return domain.Item{}, err
	}
	if qty > availableStock {
		return domain.Item{}, fmt.Errorf("%w: requested %d of %d", ErrInsufficientStock, qty, availableStock)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := domain.Item{ID: uuid.New(), Name: name, UnitPrice: unitPrice, Quantity: qty}
	s.items = append(s.items, item)
	return item, nil
}

// SetQuantity rewrites the quantity of the line at index.
func (s *Service) SetQuantity(ctx context.Context, index int, quantity string) (domain.Item, error) {
	qty, err := parseQuantity(quantity)
	if err != nil {
		return domain.Item{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.items) {
		return domain.Item{}, fmt.Errorf("%w: index %d", ErrNoSelection, index)
	}

	s.items[index].Quantity = qty
	return s.items[index], nil
}

// RemoveItem deletes the line carrying the same name as the line at index.
// The lookup goes by name, first occurrence: with duplicate names the line
// removed may sit above the one selected. Long-standing behavior, kept.
func (s *Service) RemoveItem(ctx context.Context, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.items) {
		return fmt.Errorf("%w: index %d", ErrNoSelection, index)
	}

	name := s.items[index].Name
	for i := range s.items {
		if s.items[i].Name == name {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNoSelection, name)
}

// Clear empties the cart.
func (s *Service) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

func parseQuantity(raw string) (int, error) {
	qty, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: quantity %q is not a number", ErrInvalidInput, raw)
	}
	if qty <= 0 {
		return 0, fmt.Errorf("%w: quantity must be greater than zero", ErrInvalidInput)
	}
	return qty, nil
}
