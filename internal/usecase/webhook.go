package usecase

import (
	"context"
	"log/slog"

	"ticketgate/internal/domain/purchase"
	"ticketgate/internal/domain/ticket"
	"ticketgate/internal/infra"
	"ticketgate/internal/infra/db"
	"ticketgate/internal/pkg/clock"
	"ticketgate/internal/pkg/config"
	"ticketgate/internal/pkg/errs"
	"ticketgate/internal/pkg/metrics"
	"ticketgate/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment processor event types that this service reacts to. Everything else
// is acknowledged as a no-op so processor retries never see an error.
const (
	EventCaptureCompleted = "PAYMENT.CAPTURE.COMPLETED"
	EventCaptureDenied    = "PAYMENT.CAPTURE.DENIED"
)

// PaymentNotification is the decoded webhook payload. The processor's shape
// varies by event type and SDK version, so every field is optional and the
// order handle is resolved through an ordered list of extraction strategies.
type PaymentNotification struct {
	EventType string               `json:"event_type"`
	Resource  NotificationResource `json:"resource"`
}

type NotificationResource struct {
	ID                string             `json:"id"`
	Amount            *ResourceAmount    `json:"amount,omitempty"`
	PurchaseUnits     []PurchaseUnitRef  `json:"purchase_units,omitempty"`
	SupplementaryData *SupplementaryData `json:"supplementary_data,omitempty"`
}

type ResourceAmount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

type PurchaseUnitRef struct {
	ReferenceID string `json:"reference_id"`
}

type SupplementaryData struct {
	RelatedIDs RelatedIDs `json:"related_ids"`
}

type RelatedIDs struct {
	OrderID string `json:"order_id"`
}

type WebhookUseCase interface {
	// HandleNotification routes one processor notification. Only a capture
	// completion triggers issuance; a denial releases the reservation; all
	// other event types are acknowledged without effect.
	HandleNotification(ctx context.Context, n PaymentNotification) (*readmodel.IssuanceRM, error)
}

type webhookUseCaseImpl struct {
	inventory  InventoryRepository
	purchases  PurchaseRepository
	tickets    TicketRepository
	dispatcher RegistrationDispatcher
	reader     db.DBTX
	tx         TxRunner
	clock      clock.Clock
	signingKey string
	epsilon    decimal.Decimal
}

func NewWebhookUseCase(
	inventory InventoryRepository,
	purchases PurchaseRepository,
	tickets TicketRepository,
	dispatcher RegistrationDispatcher,
	reader db.DBTX,
	tx TxRunner,
	clock clock.Clock,
	cfg config.Config,
) WebhookUseCase {
	epsilon, err := decimal.NewFromString(cfg.Sales.AmountEpsilon)
	if err != nil {
		epsilon = decimal.NewFromFloat(0.01)
	}
	return &webhookUseCaseImpl{
		inventory:  inventory,
		purchases:  purchases,
		tickets:    tickets,
		dispatcher: dispatcher,
		reader:     reader,
		tx:         tx,
		clock:      clock,
		signingKey: cfg.Registry.SigningKey,
		epsilon:    epsilon,
	}
}

func (u *webhookUseCaseImpl) HandleNotification(ctx context.Context, n PaymentNotification) (*readmodel.IssuanceRM, error) {
	switch n.EventType {
	case EventCaptureCompleted:
		return u.handleCompleted(ctx, n)
	case EventCaptureDenied:
		return nil, u.handleDenied(ctx, n)
	default:
		return nil, nil
	}
}

func (u *webhookUseCaseImpl) handleCompleted(ctx context.Context, n PaymentNotification) (*readmodel.IssuanceRM, error) {
	intent, err := u.resolveIntent(ctx, n)
	if err != nil {
		return nil, err
	}

	// Idempotency gate: delivery is at-least-once, business state is
	// exactly-once. A confirmed intent replays the prior batch verbatim.
	switch intent.Status {
	case purchase.StatusConfirmed:
		return u.replayIssuance(ctx, intent)
	case purchase.StatusFailed:
		return nil, ErrAlreadyProcessed
	}

	captured, err := capturedAmount(n)
	if err != nil {
		return nil, ErrAmountMismatch
	}
	if !intent.AmountMatches(captured, u.epsilon) {
		slog.Warn("captured amount mismatch",
			"purchase_id", intent.ID,
			"expected", intent.Amount.String(),
			"captured", captured.String())
		return nil, ErrAmountMismatch
	}

	var batch []*ticket.Ticket
	err = u.tx.RunWithRetry(ctx, func(tx db.DBTX) error {
		confirmed, err := u.purchases.UpdateConfirmed(ctx, tx, intent.ID, n.Resource.ID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !confirmed {
			// A concurrent delivery won the guarded transition.
			return ErrAlreadyProcessed
		}

		issued, err := ticket.NewBatch(intent, u.signingKey, u.clock.Now())
		if err != nil {
			return errs.Mark(err, ErrDomainValidationFailed)
		}
		if err := u.tickets.CreateBatch(ctx, tx, issued); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := u.inventory.ConsumeReservation(ctx, tx, intent.ReservationID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		batch = issued
		return nil
	})
	if err != nil {
		if errs.Is(err, ErrAlreadyProcessed) {
			// Losing the guarded confirm does not say who won: a concurrent
			// delivery that issued the batch, or the expiry sweep that failed
			// the intent. Re-read before replaying.
			current, findErr := u.purchases.FindByID(ctx, u.reader, intent.ID)
			if findErr != nil {
				return nil, errs.Mark(findErr, ErrDatabaseOperationFailed)
			}
			if current.Status == purchase.StatusConfirmed {
				return u.replayIssuance(ctx, current)
			}
			return nil, ErrAlreadyProcessed
		}
		return nil, err
	}

	// Purchase-pattern telemetry is best-effort and must never block issuance.
	slog.Info("tickets issued",
		"purchase_id", intent.ID,
		"event_id", intent.EventID,
		"quantity", len(batch),
		"txn_id", n.Resource.ID)
	metrics.TicketIssued(intent.EventID.String(), len(batch))

	// Registry mirroring is fire-and-forget: issuance has already committed.
	u.dispatcher.Dispatch(batch)

	return issuanceRM(intent.ID, batch, false), nil
}

func (u *webhookUseCaseImpl) handleDenied(ctx context.Context, n PaymentNotification) error {
	intent, err := u.resolveIntent(ctx, n)
	if err != nil {
		if errs.Is(err, ErrIntentNotFound) {
			slog.Warn("denied notification for unknown order", "resource_id", n.Resource.ID)
			return nil
		}
		return err
	}

	if intent.Status != purchase.StatusPending {
		return nil
	}

	return u.tx.Run(ctx, func(tx db.DBTX) error {
		failed, err := u.purchases.UpdateFailed(ctx, tx, intent.ID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !failed {
			return nil
		}
		return u.inventory.ReleaseCapacity(ctx, tx, intent.ReservationID)
	})
}

// resolveIntent tries the ordered extraction strategies: the canonical
// reference on the purchase unit, then the correlated order id, then the
// transaction handle itself. Unrecognized shapes fail closed.
func (u *webhookUseCaseImpl) resolveIntent(ctx context.Context, n PaymentNotification) (*purchase.Intent, error) {
	var candidates []string
	for _, unit := range n.Resource.PurchaseUnits {
		if unit.ReferenceID != "" {
			candidates = append(candidates, unit.ReferenceID)
		}
	}
	if n.Resource.SupplementaryData != nil && n.Resource.SupplementaryData.RelatedIDs.OrderID != "" {
		candidates = append(candidates, n.Resource.SupplementaryData.RelatedIDs.OrderID)
	}
	if n.Resource.ID != "" {
		candidates = append(candidates, n.Resource.ID)
	}

	for _, candidate := range candidates {
		if id, parseErr := uuid.Parse(candidate); parseErr == nil {
			intent, err := u.purchases.FindByID(ctx, u.reader, id)
			if err == nil {
				return intent, nil
			}
			if !infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		intent, err := u.purchases.FindByExternalOrderID(ctx, u.reader, candidate)
		if err == nil {
			return intent, nil
		}
		if !infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	return nil, ErrIntentNotFound
}

func (u *webhookUseCaseImpl) replayIssuance(ctx context.Context, intent *purchase.Intent) (*readmodel.IssuanceRM, error) {
	batch, err := u.tickets.FindByPurchaseID(ctx, u.reader, intent.ID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return issuanceRM(intent.ID, batch, true), nil
}

func capturedAmount(n PaymentNotification) (decimal.Decimal, error) {
	if n.Resource.Amount == nil {
		return decimal.Zero, ErrAmountMismatch
	}
	return decimal.NewFromString(n.Resource.Amount.Value)
}

func issuanceRM(purchaseID uuid.UUID, batch []*ticket.Ticket, replayed bool) *readmodel.IssuanceRM {
	rm := &readmodel.IssuanceRM{
		PurchaseID: purchaseID,
		Replayed:   replayed,
		Tickets:    make([]*readmodel.TicketRM, 0, len(batch)),
	}
	for _, t := range batch {
		rm.Tickets = append(rm.Tickets, ticketRM(t))
	}
	return rm
}
