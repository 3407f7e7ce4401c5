package domain

import "github.com/google/uuid"

// Item is one cart line: an independent copy of the product's name and unit
// price, with the quantity the user asked for. It shares nothing with the
// inventory row it came from.
type Item struct {
	ID        uuid.UUID
	Name      string
	UnitPrice float64
	Quantity  int
}
