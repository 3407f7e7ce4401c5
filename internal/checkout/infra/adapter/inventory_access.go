package adapter

import (
	"context"

	inventoryapp "github.com/dwikikusuma/simple-pos/internal/inventory/app"
)

type InventoryServiceAccess struct {
	svc *inventoryapp.Service
}

func NewInventoryServiceAccess(svc *inventoryapp.Service) *InventoryServiceAccess {
	return &InventoryServiceAccess{svc: svc}
}

func (a *InventoryServiceAccess) DecrementStock(ctx context.Context, name string, qty int) bool {
	return a.svc.DecrementStock(ctx, name, qty)
}

func (a *InventoryServiceAccess) Persist(ctx context.Context) error {
	return a.svc.Persist(ctx)
}
