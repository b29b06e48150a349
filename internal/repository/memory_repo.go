package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/luis-duque-azumo/reservation-api/internal/models"
)

// memoryRepository keeps reservations in a process-local map. It backs local
// development and unit tests; durability comes from the GORM implementation.
type memoryRepository struct {
	mu     sync.Mutex
	byCode map[string]*models.Reservation
	order  []string
}

func NewMemoryRepository() ReservationRepository {
	return &memoryRepository{byCode: make(map[string]*models.Reservation)}
}

func (r *memoryRepository) Create(ctx context.Context, res *models.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	res.ID = uuid.New()
	res.CreatedAt = time.Now().UTC()
	res.ConfirmedAt = nil

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code := newCode()
		if _, exists := r.byCode[code]; exists {
			continue
		}
		res.Code = code
		stored := *res
		r.byCode[code] = &stored
		r.order = append(r.order, code)
		return nil
	}
	return ErrCodeConflict
}

func (r *memoryRepository) FindByCode(ctx context.Context, code string) (*models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, ok := r.byCode[code]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *res
	return &copied, nil
}

func (r *memoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, res := range r.byCode {
		if res.ID == id {
			copied := *res
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryRepository) FindAll(ctx context.Context) ([]models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	reservations := make([]models.Reservation, 0, len(r.order))
	for _, code := range r.order {
		reservations = append(reservations, *r.byCode[code])
	}
	return reservations, nil
}

func (r *memoryRepository) Confirm(ctx context.Context, code string) (*models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, ok := r.byCode[code]
	if !ok {
		return nil, ErrNotFound
	}
	if !res.Confirmed() {
		now := time.Now().UTC()
		res.ConfirmedAt = &now
	}
	copied := *res
	return &copied, nil
}
