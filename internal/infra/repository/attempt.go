package repository

import (
	"context"
	"time"

	"ticketgate/internal/infra"
	"ticketgate/internal/infra/db"

	"github.com/google/uuid"
)

// ValidationAttempt is one append-only audit row per scan. Rows are never
// updated or deleted.
type ValidationAttempt struct {
	ID        uuid.UUID
	TicketID  *uuid.UUID
	AdminID   uuid.UUID
	Verdict   string
	Reason    string
	Location  *string
	DeviceID  *string
	ScannedAt time.Time
}

type AttemptRepository struct{}

func NewAttemptRepository() *AttemptRepository {
	return &AttemptRepository{}
}

func (r *AttemptRepository) Append(ctx context.Context, dbtx db.DBTX, a *ValidationAttempt) error {
	const query = `
		INSERT INTO validation_attempts (id, ticket_id, admin_id, verdict, reason, location, device_id, scanned_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := dbtx.Exec(ctx, query,
		a.ID, a.TicketID, a.AdminID, a.Verdict, a.Reason, a.Location, a.DeviceID, a.ScannedAt)
	if err != nil {
		return infra.ClassifyPgErr("failed to append validation attempt", err)
	}
	return nil
}
