package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/luis-duque-azumo/reservation-api/internal/models"
)

type ReservationRepository interface {
	// Create assigns the reservation's id, code and created_at, then persists
	// it. The caller supplies customer/party/date/restaurant fields only.
	Create(ctx context.Context, r *models.Reservation) error
	FindByCode(ctx context.Context, code string) (*models.Reservation, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Reservation, error)
	FindAll(ctx context.Context) ([]models.Reservation, error)
	// Confirm stamps confirmed_at on the reservation with the given code. If
	// it is already confirmed the stored record is returned unchanged, so
	// concurrent and repeated confirmations are harmless.
	Confirm(ctx context.Context, code string) (*models.Reservation, error)
}

// maxCodeAttempts bounds regeneration when a freshly generated code collides
// with an existing row. With a 32^6 code space collisions are rare; hitting
// the bound surfaces ErrCodeConflict.
const maxCodeAttempts = 5

type reservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) Create(ctx context.Context, res *models.Reservation) error {
	res.ID = uuid.New()
	res.CreatedAt = time.Now().UTC()
	res.ConfirmedAt = nil

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		res.Code = newCode()
		err := r.db.WithContext(ctx).Create(res).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
	}
	return ErrCodeConflict
}

func (r *reservationRepository) FindByCode(ctx context.Context, code string) (*models.Reservation, error) {
	var res models.Reservation
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&res).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &res, nil
}

func (r *reservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Reservation, error) {
	var res models.Reservation
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &res, nil
}

func (r *reservationRepository) FindAll(ctx context.Context) ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := r.db.WithContext(ctx).Order("created_at ASC, code ASC").Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *reservationRepository) Confirm(ctx context.Context, code string) (*models.Reservation, error) {
	var res models.Reservation

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the row so two concurrent confirmations serialize; the loser
		// of the race sees the winner's timestamp and leaves it alone.
		err := lockForConfirm(tx, code, &res).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if res.Confirmed() {
			return nil
		}

		now := time.Now().UTC()
		if err := tx.Model(&res).Update("confirmed_at", now).Error; err != nil {
			return err
		}
		res.ConfirmedAt = &now
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// lockForConfirm loads the reservation row under FOR UPDATE. Without the
// locking clause two transactions could both observe a null confirmed_at and
// both stamp it.
func lockForConfirm(tx *gorm.DB, code string, res *models.Reservation) *gorm.DB {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("code = ?", code).
		First(res)
}
