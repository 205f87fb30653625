package repository

import (
	"context"

	"ticketgate/internal/domain/event"
	"ticketgate/internal/infra"
	"ticketgate/internal/infra/db"
	"ticketgate/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// InventoryRepository is the only writer of an event's capacity_available
// counter. Both mutations are single conditional statements so concurrent
// purchases race in the database, not in application code.
type InventoryRepository struct{}

func NewInventoryRepository() *InventoryRepository {
	return &InventoryRepository{}
}

func (r *InventoryRepository) FindEvent(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*event.Event, error) {
	const query = `
		SELECT id, name, venue, starts_at, ends_at, capacity_total, capacity_available, unit_price
		FROM events
		WHERE id = $1`

	var (
		e     event.Event
		price pgtype.Numeric
	)
	err := dbtx.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Name, &e.Venue, &e.StartsAt, &e.EndsAt,
		&e.CapacityTotal, &e.CapacityAvailable, &price,
	)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to find event", err)
	}

	e.UnitPrice, err = pgconv.DecimalFromNumeric(price)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read event unit price", err)
	}

	return &e, nil
}

// ReserveCapacity performs the atomic conditional decrement. A plain
// read-then-write is unsafe here and must not be reintroduced.
func (r *InventoryRepository) ReserveCapacity(ctx context.Context, dbtx db.DBTX, res *event.Reservation) error {
	const decrement = `
		UPDATE events
		SET capacity_available = capacity_available - $2
		WHERE id = $1 AND capacity_available >= $2`

	tag, err := dbtx.Exec(ctx, decrement, res.EventID, res.Quantity)
	if err != nil {
		return infra.ClassifyPgErr("failed to decrement event capacity", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindInsufficientCapacity, "insufficient event capacity")
	}

	const insert = `
		INSERT INTO reservations (id, event_id, quantity, status, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err = dbtx.Exec(ctx, insert,
		res.ID, res.EventID, res.Quantity, string(res.Status), res.CreatedAt, res.ExpiresAt)
	if err != nil {
		return infra.ClassifyPgErr("failed to insert reservation", err)
	}

	return nil
}

// ReleaseCapacity is the compensating rollback. The guarded status flip makes
// it idempotent: a second release finds no active row and restores nothing.
func (r *InventoryRepository) ReleaseCapacity(ctx context.Context, dbtx db.DBTX, reservationID uuid.UUID) error {
	const release = `
		UPDATE reservations
		SET status = 'released'
		WHERE id = $1 AND status = 'active'
		RETURNING event_id, quantity`

	var (
		eventID  uuid.UUID
		quantity int
	)
	err := dbtx.QueryRow(ctx, release, reservationID).Scan(&eventID, &quantity)
	if err != nil {
		if infra.IsKind(infra.ClassifyPgErr("", err), infra.KindNotFound) {
			return nil // already released or consumed
		}
		return infra.ClassifyPgErr("failed to release reservation", err)
	}

	const increment = `
		UPDATE events
		SET capacity_available = capacity_available + $2
		WHERE id = $1`

	if _, err := dbtx.Exec(ctx, increment, eventID, quantity); err != nil {
		return infra.ClassifyPgErr("failed to restore event capacity", err)
	}

	return nil
}

// ConsumeReservation finalizes the hold once the purchase is confirmed, so a
// late expiry sweep cannot give the capacity back.
func (r *InventoryRepository) ConsumeReservation(ctx context.Context, dbtx db.DBTX, reservationID uuid.UUID) error {
	const consume = `
		UPDATE reservations
		SET status = 'consumed'
		WHERE id = $1 AND status = 'active'`

	if _, err := dbtx.Exec(ctx, consume, reservationID); err != nil {
		return infra.ClassifyPgErr("failed to consume reservation", err)
	}
	return nil
}
