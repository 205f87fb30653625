package event

import (
	"time"

	"github.com/google/uuid"
)

type ReservationStatus string

const (
	ReservationActive   ReservationStatus = "active"
	ReservationReleased ReservationStatus = "released"
	ReservationConsumed ReservationStatus = "consumed"
)

// Reservation is a temporary hold on event capacity. It is either consumed by
// a confirmed purchase or released (explicitly on failure, or by the expiry
// sweep); released and consumed are both terminal.
type Reservation struct {
	ID        uuid.UUID
	EventID   uuid.UUID
	Quantity  int
	Status    ReservationStatus
	CreatedAt time.Time
	ExpiresAt time.Time
}

func NewReservation(eventID uuid.UUID, quantity int, now time.Time, ttl time.Duration) *Reservation {
	return &Reservation{
		ID:        uuid.New(),
		EventID:   eventID,
		Quantity:  quantity,
		Status:    ReservationActive,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}
