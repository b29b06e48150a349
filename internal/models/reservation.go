package models

import (
	"time"

	"github.com/google/uuid"
)

// Reservation is the persisted reservation row. Code is the client-facing
// lookup key; ID stays internal. ConfirmedAt nil means the reservation has
// not been confirmed yet — confirmation stamps it exactly once.
type Reservation struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Code            string     `gorm:"type:varchar(12);uniqueIndex;not null" json:"code"`
	CustomerName    string     `gorm:"not null" json:"customer_name"`
	PartySize       int        `gorm:"not null" json:"party_size"`
	ReservationDate time.Time  `gorm:"not null" json:"reservation_date"`
	CreatedAt       time.Time  `json:"created_at"`
	ConfirmedAt     *time.Time `json:"confirmed_at"`
	RestaurantID    int        `gorm:"not null" json:"restaurant_id"`
}

func (r *Reservation) Confirmed() bool {
	return r.ConfirmedAt != nil
}
