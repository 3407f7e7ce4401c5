package domain

import (
	"time"

	checkoutdomain "github.com/dwikikusuma/simple-pos/internal/checkout/domain"
	"github.com/google/uuid"
)

// Recorded is a checkout receipt kept for the rest of the session.
type Recorded struct {
	ID        uuid.UUID              `json:"id"`
	CreatedAt time.Time              `json:"created_at"`
	Receipt   checkoutdomain.Receipt `json:"receipt"`
	Text      string                 `json:"text"`
}
