package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/luis-duque-azumo/reservation-api/internal/catalog"
	"github.com/luis-duque-azumo/reservation-api/internal/models"
)

type CreateReservationRequest struct {
	CustomerName    string    `json:"customer_name"`
	PartySize       int       `json:"party_size"`
	ReservationDate time.Time `json:"reservation_date"`
	RestaurantID    int       `json:"restaurant_id"`
}

type RestaurantResponse struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Cuisine    string `json:"cuisine"`
	PriceRange string `json:"price_range"`
}

// ReservationResponse is the client view of a reservation. Restaurant is nil
// (and omitted) when the referenced restaurant is not in the catalog — the
// join is lenient. ConfirmedAt stays in the payload as an explicit null so
// clients can tell unconfirmed apart from confirmed.
type ReservationResponse struct {
	ID              uuid.UUID           `json:"id"`
	Code            string              `json:"code"`
	CustomerName    string              `json:"customer_name"`
	PartySize       int                 `json:"party_size"`
	ReservationDate time.Time           `json:"reservation_date"`
	CreatedAt       time.Time           `json:"created_at"`
	ConfirmedAt     *time.Time          `json:"confirmed_at"`
	RestaurantID    int                 `json:"restaurant_id"`
	Restaurant      *RestaurantResponse `json:"restaurant,omitempty"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToRestaurantResponse(r *catalog.Restaurant) *RestaurantResponse {
	if r == nil {
		return nil
	}
	return &RestaurantResponse{
		ID:         r.ID,
		Name:       r.Name,
		Cuisine:    r.Cuisine,
		PriceRange: r.PriceRange,
	}
}

func ToReservationResponse(res *models.Reservation, restaurant *catalog.Restaurant) ReservationResponse {
	return ReservationResponse{
		ID:              res.ID,
		Code:            res.Code,
		CustomerName:    res.CustomerName,
		PartySize:       res.PartySize,
		ReservationDate: res.ReservationDate,
		CreatedAt:       res.CreatedAt,
		ConfirmedAt:     res.ConfirmedAt,
		RestaurantID:    res.RestaurantID,
		Restaurant:      ToRestaurantResponse(restaurant),
	}
}
