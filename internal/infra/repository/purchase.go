package repository

import (
	"context"
	"time"

	"ticketgate/internal/domain/purchase"
	"ticketgate/internal/infra"
	"ticketgate/internal/infra/db"
	"ticketgate/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type PurchaseRepository struct{}

func NewPurchaseRepository() *PurchaseRepository {
	return &PurchaseRepository{}
}

const purchaseColumns = `
	id, user_id, event_id, reservation_id, quantity, amount, status,
	external_order_id, external_txn_id, bound_names, created_at, expires_at`

func (r *PurchaseRepository) Create(ctx context.Context, dbtx db.DBTX, intent *purchase.Intent) error {
	const query = `
		INSERT INTO purchase_intents (` + purchaseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := dbtx.Exec(ctx, query,
		intent.ID, intent.UserID, intent.EventID, intent.ReservationID,
		intent.Quantity, intent.Amount.String(), string(intent.Status),
		intent.ExternalOrderID, intent.ExternalTxnID, intent.BoundNames,
		intent.CreatedAt, intent.ExpiresAt,
	)
	if err != nil {
		return infra.ClassifyPgErr("failed to create purchase intent", err)
	}
	return nil
}

func (r *PurchaseRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*purchase.Intent, error) {
	const query = `SELECT ` + purchaseColumns + ` FROM purchase_intents WHERE id = $1`
	return r.scanIntent(dbtx.QueryRow(ctx, query, id))
}

// FindByExternalOrderID resolves one candidate order handle from a webhook
// payload. Callers try candidates in their canonical order and stop at the
// first hit.
func (r *PurchaseRepository) FindByExternalOrderID(ctx context.Context, dbtx db.DBTX, handle string) (*purchase.Intent, error) {
	const query = `SELECT ` + purchaseColumns + ` FROM purchase_intents WHERE external_order_id = $1`
	return r.scanIntent(dbtx.QueryRow(ctx, query, handle))
}

func (r *PurchaseRepository) SetExternalOrderID(ctx context.Context, dbtx db.DBTX, id uuid.UUID, orderID string) error {
	const query = `UPDATE purchase_intents SET external_order_id = $2 WHERE id = $1`
	if _, err := dbtx.Exec(ctx, query, id, orderID); err != nil {
		return infra.ClassifyPgErr("failed to set external order id", err)
	}
	return nil
}

// UpdateConfirmed performs the guarded pending → confirmed transition.
// Returns false when another webhook delivery already won the race.
func (r *PurchaseRepository) UpdateConfirmed(ctx context.Context, dbtx db.DBTX, id uuid.UUID, externalTxnID string) (bool, error) {
	const query = `
		UPDATE purchase_intents
		SET status = 'confirmed', external_txn_id = $2
		WHERE id = $1 AND status = 'pending'`

	tag, err := dbtx.Exec(ctx, query, id, externalTxnID)
	if err != nil {
		return false, infra.ClassifyPgErr("failed to confirm purchase intent", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PurchaseRepository) UpdateFailed(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (bool, error) {
	const query = `
		UPDATE purchase_intents
		SET status = 'failed'
		WHERE id = $1 AND status = 'pending'`

	tag, err := dbtx.Exec(ctx, query, id)
	if err != nil {
		return false, infra.ClassifyPgErr("failed to fail purchase intent", err)
	}
	return tag.RowsAffected() > 0, nil
}

// FindExpiredPending feeds the expiry sweep: pending intents whose
// reservation TTL has lapsed.
func (r *PurchaseRepository) FindExpiredPending(ctx context.Context, dbtx db.DBTX, now time.Time, limit int) ([]*purchase.Intent, error) {
	const query = `
		SELECT ` + purchaseColumns + `
		FROM purchase_intents
		WHERE status = 'pending' AND expires_at < $1
		ORDER BY expires_at
		LIMIT $2`

	rows, err := dbtx.Query(ctx, query, now, limit)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to list expired purchase intents", err)
	}
	defer rows.Close()

	var intents []*purchase.Intent
	for rows.Next() {
		intent, err := r.scanIntentRow(rows)
		if err != nil {
			return nil, err
		}
		intents = append(intents, intent)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.ClassifyPgErr("failed to iterate expired purchase intents", err)
	}
	return intents, nil
}

func (r *PurchaseRepository) scanIntent(row pgx.Row) (*purchase.Intent, error) {
	return scanPurchaseIntent(row.Scan)
}

func (r *PurchaseRepository) scanIntentRow(rows pgx.Rows) (*purchase.Intent, error) {
	return scanPurchaseIntent(rows.Scan)
}

func scanPurchaseIntent(scan func(dest ...any) error) (*purchase.Intent, error) {
	var (
		intent purchase.Intent
		amount pgtype.Numeric
		status string
	)
	err := scan(
		&intent.ID, &intent.UserID, &intent.EventID, &intent.ReservationID,
		&intent.Quantity, &amount, &status,
		&intent.ExternalOrderID, &intent.ExternalTxnID, &intent.BoundNames,
		&intent.CreatedAt, &intent.ExpiresAt,
	)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to scan purchase intent", err)
	}

	intent.Status = purchase.Status(status)
	intent.Amount, err = pgconv.DecimalFromNumeric(amount)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read purchase amount", err)
	}
	return &intent, nil
}
