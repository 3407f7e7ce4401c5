package domain

import "github.com/google/uuid"

// Product is one inventory row. The ID is assigned when the row enters the
// process and is never written to the backing file; cross-row matching in
// checkout remains exact-name-based.
type Product struct {
	ID    uuid.UUID
	Name  string
	Price float64
	Stock int
}
