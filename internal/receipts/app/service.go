package app

import (
	"context"
	"errors"
	"sync"
	"time"

	checkoutdomain "github.com/dwikikusuma/simple-pos/internal/checkout/domain"
	"github.com/dwikikusuma/simple-pos/internal/receipts/domain"
	"github.com/google/uuid"
)

var ErrNoReceipts = errors.New("no receipts recorded")

// Service keeps the session's checkout receipts in memory, newest first.
// Nothing here outlives the process; the original showed only the latest
// receipt on screen and persisted none of them.
type Service struct {
	mu       sync.Mutex
	recorded []domain.Recorded
}

func NewService() *Service {
	return &Service{}
}

func (s *Service) Record(ctx context.Context, receipt checkoutdomain.Receipt) domain.Recorded {
	rec := domain.Recorded{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		Receipt:   receipt,
		Text:      receipt.Render(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.recorded = append([]domain.Recorded{rec}, s.recorded...)
	return rec
}

func (s *Service) List(ctx context.Context) []domain.Recorded {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Recorded, len(s.recorded))
	copy(out, s.recorded)
	return out
}

func (s *Service) Latest(ctx context.Context) (domain.Recorded, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.recorded) == 0 {
		return domain.Recorded{}, ErrNoReceipts
	}
	return s.recorded[0], nil
}
