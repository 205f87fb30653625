package repository

import (
	"context"

	"ticketgate/internal/domain/ticket"
	"ticketgate/internal/infra"
	"ticketgate/internal/infra/db"
	"ticketgate/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type TicketRepository struct{}

func NewTicketRepository() *TicketRepository {
	return &TicketRepository{}
}

// CreateBatch inserts the full issuance batch. It runs inside the same
// transaction as the intent confirmation, so a mid-batch failure rolls the
// whole purchase back to pending and a webhook retry re-issues cleanly.
func (r *TicketRepository) CreateBatch(ctx context.Context, dbtx db.DBTX, batch []*ticket.Ticket) error {
	const query = `
		INSERT INTO tickets (
			id, event_id, purchase_id, seq, group_size, parent_id, status,
			qr_payload, registry_token_id, registration_status, bound_name, issued_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	for _, t := range batch {
		_, err := dbtx.Exec(ctx, query,
			t.ID, t.EventID, t.PurchaseID, t.Seq, t.GroupSize, t.ParentID,
			string(t.Status), t.QRPayload, t.RegistryTokenID,
			string(t.RegistrationStatus), t.BoundName, t.IssuedAt,
		)
		if err != nil {
			return infra.ClassifyPgErr("failed to insert ticket", err)
		}
	}
	return nil
}

func (r *TicketRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*ticket.Ticket, error) {
	const query = `
		SELECT id, event_id, purchase_id, seq, group_size, parent_id, status,
		       qr_payload, registry_token_id, registration_status, bound_name, issued_at
		FROM tickets
		WHERE id = $1`

	var (
		t         ticket.Ticket
		status    string
		regStatus string
	)
	err := dbtx.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.EventID, &t.PurchaseID, &t.Seq, &t.GroupSize, &t.ParentID,
		&status, &t.QRPayload, &t.RegistryTokenID, &regStatus, &t.BoundName, &t.IssuedAt,
	)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to find ticket", err)
	}
	t.Status = ticket.Status(status)
	t.RegistrationStatus = ticket.RegistrationStatus(regStatus)
	return &t, nil
}

func (r *TicketRepository) FindByPurchaseID(ctx context.Context, dbtx db.DBTX, purchaseID uuid.UUID) ([]*ticket.Ticket, error) {
	const query = `
		SELECT id, event_id, purchase_id, seq, group_size, parent_id, status,
		       qr_payload, registry_token_id, registration_status, bound_name, issued_at
		FROM tickets
		WHERE purchase_id = $1
		ORDER BY seq`

	rows, err := dbtx.Query(ctx, query, purchaseID)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to list tickets for purchase", err)
	}
	defer rows.Close()

	var tickets []*ticket.Ticket
	for rows.Next() {
		var (
			t         ticket.Ticket
			status    string
			regStatus string
		)
		err := rows.Scan(
			&t.ID, &t.EventID, &t.PurchaseID, &t.Seq, &t.GroupSize, &t.ParentID,
			&status, &t.QRPayload, &t.RegistryTokenID, &regStatus, &t.BoundName, &t.IssuedAt,
		)
		if err != nil {
			return nil, infra.ClassifyPgErr("failed to scan ticket", err)
		}
		t.Status = ticket.Status(status)
		t.RegistrationStatus = ticket.RegistrationStatus(regStatus)
		tickets = append(tickets, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.ClassifyPgErr("failed to iterate tickets", err)
	}
	return tickets, nil
}

// FindForScan is the validation-time lookup: ticket joined with its event
// window and the holder's display name.
func (r *TicketRepository) FindForScan(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*readmodel.TicketScanRM, error) {
	const query = `
		SELECT t.id, t.event_id, e.name, e.ends_at, t.status,
		       t.registry_token_id, t.registration_status, t.bound_name,
		       u.display_name, t.seq, t.group_size
		FROM tickets t
		JOIN events e ON e.id = t.event_id
		JOIN purchase_intents p ON p.id = t.purchase_id
		JOIN users u ON u.id = p.user_id
		WHERE t.id = $1`

	var rm readmodel.TicketScanRM
	err := dbtx.QueryRow(ctx, query, id).Scan(
		&rm.ID, &rm.EventID, &rm.EventName, &rm.EventEndsAt, &rm.Status,
		&rm.RegistryTokenID, &rm.RegistrationStatus, &rm.BoundName,
		&rm.HolderDisplayName, &rm.Seq, &rm.GroupSize,
	)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to find ticket for scan", err)
	}
	return &rm, nil
}

// MarkUsed is the guarded terminal transition recorded at the gate. Returns
// false when the ticket was no longer valid, which the caller treats as a
// concurrent entry attempt.
func (r *TicketRepository) MarkUsed(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (bool, error) {
	const query = `UPDATE tickets SET status = 'used' WHERE id = $1 AND status = 'valid'`

	tag, err := dbtx.Exec(ctx, query, id)
	if err != nil {
		return false, infra.ClassifyPgErr("failed to mark ticket used", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *TicketRepository) Revoke(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (bool, error) {
	const query = `UPDATE tickets SET status = 'revoked' WHERE id = $1 AND status = 'valid'`

	tag, err := dbtx.Exec(ctx, query, id)
	if err != nil {
		return false, infra.ClassifyPgErr("failed to revoke ticket", err)
	}
	return tag.RowsAffected() > 0, nil
}

// UpdateRegistration records the outcome of a registry attempt. Failure
// categories are kept for the retry worker and manual inspection.
func (r *TicketRepository) UpdateRegistration(
	ctx context.Context,
	dbtx db.DBTX,
	ids []uuid.UUID,
	status ticket.RegistrationStatus,
	category *ticket.FailureCategory,
	reason *string,
) error {
	const query = `
		UPDATE tickets
		SET registration_status = $2, registration_failure = $3, registration_reason = $4
		WHERE id = ANY($1)`

	var cat *string
	if category != nil {
		s := string(*category)
		cat = &s
	}

	if _, err := dbtx.Exec(ctx, query, ids, string(status), cat, reason); err != nil {
		return infra.ClassifyPgErr("failed to update ticket registration status", err)
	}
	return nil
}

// FindOutstandingRegistrations feeds the outbox worker: tickets still pending
// or previously failed, oldest first.
func (r *TicketRepository) FindOutstandingRegistrations(ctx context.Context, dbtx db.DBTX, limit int) ([]*ticket.Ticket, error) {
	const query = `
		SELECT id, event_id, purchase_id, seq, group_size, parent_id, status,
		       qr_payload, registry_token_id, registration_status, bound_name, issued_at
		FROM tickets
		WHERE registration_status IN ('pending', 'failed') AND status <> 'revoked'
		ORDER BY issued_at
		LIMIT $1`

	rows, err := dbtx.Query(ctx, query, limit)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to list outstanding registrations", err)
	}
	defer rows.Close()

	var tickets []*ticket.Ticket
	for rows.Next() {
		var (
			t         ticket.Ticket
			status    string
			regStatus string
		)
		err := rows.Scan(
			&t.ID, &t.EventID, &t.PurchaseID, &t.Seq, &t.GroupSize, &t.ParentID,
			&status, &t.QRPayload, &t.RegistryTokenID, &regStatus, &t.BoundName, &t.IssuedAt,
		)
		if err != nil {
			return nil, infra.ClassifyPgErr("failed to scan ticket", err)
		}
		t.Status = ticket.Status(status)
		t.RegistrationStatus = ticket.RegistrationStatus(regStatus)
		tickets = append(tickets, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.ClassifyPgErr("failed to iterate outstanding registrations", err)
	}
	return tickets, nil
}
