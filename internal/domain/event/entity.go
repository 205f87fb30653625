package event

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Event carries the sales-relevant slice of an event record. The
// CapacityAvailable counter is owned exclusively by the inventory ledger
// (EventRepository); nothing else may write it.
type Event struct {
	ID                uuid.UUID
	Name              string
	Venue             string
	StartsAt          time.Time
	EndsAt            time.Time
	CapacityTotal     int32
	CapacityAvailable int32
	UnitPrice         decimal.Decimal
}

// InPast reports whether sales for the event are closed because it has
// already started.
func (e *Event) InPast(now time.Time) bool {
	return !now.Before(e.StartsAt)
}

func (e *Event) TotalPrice(quantity int) decimal.Decimal {
	return e.UnitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}
