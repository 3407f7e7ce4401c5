package adapter

import (
	"context"

	cartapp "github.com/dwikikusuma/simple-pos/internal/cart/app"
	checkoutapp "github.com/dwikikusuma/simple-pos/internal/checkout/app"
)

type CartServiceAccess struct {
	svc *cartapp.Service
}

func NewCartServiceAccess(svc *cartapp.Service) *CartServiceAccess {
	return &CartServiceAccess{svc: svc}
}

func (a *CartServiceAccess) Lines(ctx context.Context) []checkoutapp.CartLine {
	items := a.svc.Items(ctx)

	lines := make([]checkoutapp.CartLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, checkoutapp.CartLine{
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
		})
	}
	return lines
}

func (a *CartServiceAccess) Clear(ctx context.Context) {
	a.svc.Clear(ctx)
}
