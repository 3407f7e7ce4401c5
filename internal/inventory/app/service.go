package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/dwikikusuma/simple-pos/internal/inventory/domain"
	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNoSelection  = errors.New("no such product row")
	ErrStore        = errors.New("inventory storage")
)

type Service struct {
	mu       sync.Mutex
	store    Store
	products []domain.Product
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Load reads the backing file. Rows parsed before a malformed line are kept.
// Only when the file does not exist yet is the fixed sample catalog seeded;
// an existing empty file is a legitimately empty inventory and stays empty.
func (s *Service) Load(ctx context.Context) error {
	products, found, err := s.store.Load()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = products
	if err != nil {
		return fmt.Errorf("%w: load: %w", ErrStore, err)
	}
	if !found {
		s.products = sampleProducts()
	}
	return nil
}

// Products returns a copy of the rows in display order.
func (s *Service) Products(ctx context.Context) []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Add appends a product. Price and stock arrive as the user typed them;
// both must parse non-negative. The row is kept even when the follow-up save
// fails — only the error is surfaced.
func (s *Service) Add(ctx context.Context, name, price, stock string) (domain.Product, error) {
	p, err := parsePrice(price)
	if err != nil {
		return domain.Product{}, err
	}
	st, err := parseStock(stock)
	if err != nil {
		return domain.Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	product := domain.Product{ID: uuid.New(), Name: name, Price: p, Stock: st}
	s.products = append(s.products, product)
	return product, s.persistLocked()
}

// Edit rewrites all three fields of the row at index in place.
func (s *Service) Edit(ctx context.Context, index int, name, price, stock string) (domain.Product, error) {
	p, err := parsePrice(price)
	if err != nil {
		return domain.Product{}, err
	}
	st, err := parseStock(stock)
	if err != nil {
		return domain.Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.products) {
		return domain.Product{}, fmt.Errorf("%w: index %d", ErrNoSelection, index)
	}

	s.products[index].Name = name
	s.products[index].Price = p
	s.products[index].Stock = st
	return s.products[index], s.persistLocked()
}

// Delete removes the row at index.
func (s *Service) Delete(ctx context.Context, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.products) {
		return fmt.Errorf("%w: index %d", ErrNoSelection, index)
	}

	s.products = append(s.products[:index], s.products[index+1:]...)
	return s.persistLocked()
}

// DecrementStock subtracts qty from the first row named name and reports
// whether a row matched. The subtraction is unguarded: the availability a
// cart line was validated against may be stale by checkout time, so stock
// can go negative.
func (s *Service) DecrementStock(ctx context.Context, name string, qty int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].Name == name {
			s.products[i].Stock -= qty
			return true
		}
	}
	return false
}

// Persist rewrites the whole backing file from the current rows.
func (s *Service) Persist(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistLocked()
}

func (s *Service) persistLocked() error {
	if err := s.store.Save(s.products); err != nil {
		return fmt.Errorf("%w: save: %w", ErrStore, err)
	}
	return nil
}

func parsePrice(raw string) (float64, error) {
	p, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: price %q is not a number", ErrInvalidInput, raw)
	}
	if p < 0 {
		return 0, fmt.Errorf("%w: price cannot be negative", ErrInvalidInput)
	}
	return p, nil
}

func parseStock(raw string) (int, error) {
	st, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: stock %q is not an integer", ErrInvalidInput, raw)
	}
	if st < 0 {
		return 0, fmt.Errorf("%w: stock cannot be negative", ErrInvalidInput)
	}
	return st, nil
}

func sampleProducts() []domain.Product {
	return []domain.Product{
		{ID: uuid.New(), Name: "Product 1", Price: 10.0, Stock: 20},
		{ID: uuid.New(), Name: "Product 2", Price: 15.0, Stock: 15},
		{ID: uuid.New(), Name: "Product 3", Price: 20.0, Stock: 10},
	}
}
