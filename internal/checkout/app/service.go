package app

import (
	"context"

	"github.com/dwikikusuma/simple-pos/internal/checkout/domain"
)

// CartAccess is the slice of the cart the engine needs: the lines to ring
// up, and a way to empty it afterwards.
type CartAccess interface {
	Lines(ctx context.Context) []CartLine
	Clear(ctx context.Context)
}

type CartLine struct {
	Name      string
	UnitPrice float64
	Quantity  int
}

// InventoryAccess mutates and persists stock on behalf of the engine.
type InventoryAccess interface {
	DecrementStock(ctx context.Context, name string, qty int) bool
	Persist(ctx context.Context) error
}

type Service struct {
	cart      CartAccess
	inventory InventoryAccess
}

func NewService(cart CartAccess, inventory InventoryAccess) *Service {
	return &Service{cart: cart, inventory: inventory}
}

// Checkout rings up the cart in order: each line contributes
// price × quantity to the total and decrements the first inventory row with
// a matching name. Lines with no inventory match still count toward the
// total. The whole cart is cleared and the inventory persisted; when the
// persist step fails the receipt is returned alongside the error — the sale
// already happened, nothing is rolled back.
func (s *Service) Checkout(ctx context.Context) (domain.Receipt, error) {
	lines := s.cart.Lines(ctx)

	receipt := domain.Receipt{Lines: make([]domain.Line, 0, len(lines))}
	for _, ln := range lines {
		lineTotal := ln.UnitPrice * float64(ln.Quantity)
		receipt.Lines = append(receipt.Lines, domain.Line{
			Name:      ln.Name,
			UnitPrice: ln.UnitPrice,
			Quantity:  ln.Quantity,
			LineTotal: lineTotal,
		})
		receipt.Total += lineTotal

		s.inventory.DecrementStock(ctx, ln.Name, ln.Quantity)
	}

	s.cart.Clear(ctx)

	if err := s.inventory.Persist(ctx); err != nil {
		return receipt, err
	}
	return receipt, nil
}
