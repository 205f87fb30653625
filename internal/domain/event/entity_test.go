//go:build unit

package event_test

import (
	"testing"
	"time"

	"ticketgate/internal/domain/event"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEventWindows(t *testing.T) {
	starts := time.Date(2026, 8, 2, 18, 0, 0, 0, time.UTC)
	ends := starts.Add(4 * time.Hour)
	ev := &event.Event{ID: uuid.New(), StartsAt: starts, EndsAt: ends}

	t.Run("in past", func(t *testing.T) {
		assert.False(t, ev.InPast(starts.Add(-time.Minute)))
		assert.True(t, ev.InPast(starts), "sales close at the exact start instant")
		assert.True(t, ev.InPast(starts.Add(time.Hour)))
	})
}

func TestTotalPrice(t *testing.T) {
	ev := &event.Event{UnitPrice: decimal.RequireFromString("49.50")}

	assert.True(t, decimal.RequireFromString("148.50").Equal(ev.TotalPrice(3)))
	assert.True(t, decimal.Zero.Equal(ev.TotalPrice(0)))
}

func TestNewReservation(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	eventID := uuid.New()

	res := event.NewReservation(eventID, 4, now, 15*time.Minute)

	assert.NotEqual(t, uuid.Nil, res.ID)
	assert.Equal(t, eventID, res.EventID)
	assert.Equal(t, 4, res.Quantity)
	assert.Equal(t, event.ReservationActive, res.Status)
	assert.Equal(t, now.Add(15*time.Minute), res.ExpiresAt)
}
