package app

import "github.com/dwikikusuma/simple-pos/internal/inventory/domain"

// Store is the backing file behind the inventory. found reports whether the
// file existed at all: an absent file and an existing empty one load the
// same zero rows but are treated differently by the service. Load may return
// rows alongside an error: parsing stops at the first malformed numeric
// field but rows read before it are kept.
type Store interface {
	Load() (products []domain.Product, found bool, err error)
	Save(products []domain.Product) error
}
