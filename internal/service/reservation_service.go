package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/luis-duque-azumo/reservation-api/internal/catalog"
	"github.com/luis-duque-azumo/reservation-api/internal/dto"
	"github.com/luis-duque-azumo/reservation-api/internal/models"
	"github.com/luis-duque-azumo/reservation-api/internal/repository"
)

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrInvalidInput        = errors.New("invalid reservation input")
	ErrCodeConflict        = errors.New("could not allocate a unique reservation code")
)

// EventPublisher emits reservation lifecycle events to interested consumers.
// A nil publisher disables publishing.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

const (
	EventReservationCreated   = "reservation.created"
	EventReservationConfirmed = "reservation.confirmed"
)

type ReservationService interface {
	CreateReservation(ctx context.Context, req dto.CreateReservationRequest) (*dto.ReservationResponse, error)
	ConfirmReservation(ctx context.Context, code string) (*dto.ReservationResponse, error)
	GetReservation(ctx context.Context, code string) (*dto.ReservationResponse, error)
	ListReservations(ctx context.Context) ([]dto.ReservationResponse, error)
}

type reservationService struct {
	repo      repository.ReservationRepository
	catalog   *catalog.Store
	publisher EventPublisher
	log       *zap.Logger
}

func NewReservationService(repo repository.ReservationRepository, cat *catalog.Store, publisher EventPublisher, log *zap.Logger) ReservationService {
	return &reservationService{repo: repo, catalog: cat, publisher: publisher, log: log}
}

func (s *reservationService) CreateReservation(ctx context.Context, req dto.CreateReservationRequest) (*dto.ReservationResponse, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	res := &models.Reservation{
		CustomerName:    strings.TrimSpace(req.CustomerName),
		PartySize:       req.PartySize,
		ReservationDate: req.ReservationDate,
		RestaurantID:    req.RestaurantID,
	}

	if err := s.repo.Create(ctx, res); err != nil {
		if errors.Is(err, repository.ErrCodeConflict) {
			return nil, ErrCodeConflict
		}
		return nil, err
	}

	view := s.toView(res)
	s.publish(ctx, EventReservationCreated, view)
	return view, nil
}

func (s *reservationService) ConfirmReservation(ctx context.Context, code string) (*dto.ReservationResponse, error) {
	res, err := s.repo.Confirm(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	view := s.toView(res)
	s.publish(ctx, EventReservationConfirmed, view)
	return view, nil
}

func (s *reservationService) GetReservation(ctx context.Context, code string) (*dto.ReservationResponse, error) {
	res, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return s.toView(res), nil
}

func (s *reservationService) ListReservations(ctx context.Context) ([]dto.ReservationResponse, error) {
	reservations, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]dto.ReservationResponse, len(reservations))
	for i := range reservations {
		views[i] = *s.toView(&reservations[i])
	}
	return views, nil
}

func validateCreate(req dto.CreateReservationRequest) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customer_name is required", ErrInvalidInput)
	}
	if req.PartySize < 1 {
		return fmt.Errorf("%w: party_size must be at least 1", ErrInvalidInput)
	}
	if req.ReservationDate.IsZero() {
		return fmt.Errorf("%w: reservation_date is required", ErrInvalidInput)
	}
	if req.RestaurantID == 0 {
		return fmt.Errorf("%w: restaurant_id is required", ErrInvalidInput)
	}
	return nil
}

// toView joins the catalog's restaurant record into the response. A missing
// restaurant leaves the field absent instead of failing the request.
func (s *reservationService) toView(res *models.Reservation) *dto.ReservationResponse {
	view := dto.ToReservationResponse(res, s.catalog.GetByID(res.RestaurantID))
	return &view
}

func (s *reservationService) publish(ctx context.Context, routingKey string, view *dto.ReservationResponse) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, routingKey, view); err != nil {
		s.log.Warn("failed to publish reservation event",
			zap.String("routing_key", routingKey),
			zap.String("code", view.Code),
			zap.Error(err))
	}
}
