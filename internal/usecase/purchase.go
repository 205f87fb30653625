package usecase

import (
	"context"
	"log/slog"

	"ticketgate/internal/domain/event"
	"ticketgate/internal/domain/purchase"
	"ticketgate/internal/infra"
	"ticketgate/internal/infra/db"
	"ticketgate/internal/pkg/clock"
	"ticketgate/internal/pkg/config"
	"ticketgate/internal/pkg/errs"
	"ticketgate/internal/pkg/metrics"
	"ticketgate/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type OpenPurchaseParams struct {
	EventID    uuid.UUID
	Quantity   int
	BoundNames []string
}

type PurchaseUseCase interface {
	// Open reserves capacity, persists a pending intent and opens a checkout
	// session with the external processor. A processor failure releases the
	// reservation before returning; no orphaned holds.
	Open(ctx context.Context, userID uuid.UUID, params OpenPurchaseParams) (*readmodel.PurchaseRM, error)
	Get(ctx context.Context, id uuid.UUID) (*readmodel.PurchaseRM, error)
	// Expire releases the reservation of one pending intent past its TTL and
	// marks the intent failed. Idempotent for non-pending intents.
	Expire(ctx context.Context, purchaseID uuid.UUID) error
	// ReleaseExpired is the sweep entry point used by the expiry worker.
	ReleaseExpired(ctx context.Context) (int, error)
}

type purchaseUseCaseImpl struct {
	inventory InventoryRepository
	purchases PurchaseRepository
	users     UserRepository
	gateway   PaymentGateway
	reader    db.DBTX
	tx        TxRunner
	clock     clock.Clock
	sales     config.SalesConfig
}

func NewPurchaseUseCase(
	inventory InventoryRepository,
	purchases PurchaseRepository,
	users UserRepository,
	gateway PaymentGateway,
	reader db.DBTX,
	tx TxRunner,
	clock clock.Clock,
	cfg config.Config,
) PurchaseUseCase {
	return &purchaseUseCaseImpl{
		inventory: inventory,
		purchases: purchases,
		users:     users,
		gateway:   gateway,
		reader:    reader,
		tx:        tx,
		clock:     clock,
		sales:     cfg.Sales,
	}
}

func (u *purchaseUseCaseImpl) Open(ctx context.Context, userID uuid.UUID, params OpenPurchaseParams) (*readmodel.PurchaseRM, error) {
	if params.Quantity < 1 || params.Quantity > u.sales.MaxPerPurchase {
		return nil, ErrQuantityOutOfRange
	}

	profile, err := u.users.FindProfile(ctx, u.reader, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !profile.VerificationStatus.Approved() {
		return nil, ErrUserNotVerified
	}

	ev, err := u.inventory.FindEvent(ctx, u.reader, params.EventID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	now := u.clock.Now()
	if ev.InPast(now) {
		return nil, ErrEventInPast
	}

	var intent *purchase.Intent
	err = u.tx.RunWithRetry(ctx, func(tx db.DBTX) error {
		res := event.NewReservation(ev.ID, params.Quantity, now, u.sales.ReservationTTL)
		if err := u.inventory.ReserveCapacity(ctx, tx, res); err != nil {
			if infra.IsKind(err, infra.KindInsufficientCapacity) {
				return ErrInsufficientCapacity
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		created, err := purchase.NewIntent(
			userID, ev.ID, res.ID,
			params.Quantity, u.sales.MaxPerPurchase,
			ev.TotalPrice(params.Quantity),
			params.BoundNames,
			now, u.sales.ReservationTTL,
		)
		if err != nil {
			return errs.Mark(err, ErrDomainValidationFailed)
		}

		if err := u.purchases.Create(ctx, tx, created); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		intent = created
		return nil
	})
	if err != nil {
		metrics.PurchaseOpened("rejected")
		return nil, err
	}

	session, err := u.gateway.CreateOrder(ctx, intent.ID, intent.Amount, ev.Name)
	if err != nil {
		u.compensateOpenFailure(ctx, intent)
		metrics.PurchaseOpened("gateway_failed")
		return nil, errs.Mark(err, ErrPaymentGatewayFailed)
	}

	if err := u.purchases.SetExternalOrderID(ctx, u.reader, intent.ID, session.OrderID); err != nil {
		u.compensateOpenFailure(ctx, intent)
		metrics.PurchaseOpened("rejected")
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	metrics.PurchaseOpened("opened")
	return &readmodel.PurchaseRM{
		PurchaseID:           intent.ID,
		EventID:              intent.EventID,
		Quantity:             intent.Quantity,
		Amount:               intent.Amount.StringFixed(2),
		Status:               string(intent.Status),
		CheckoutURL:          session.CheckoutURL,
		MobileDeepLinks:      session.DeepLinks,
		ReservationExpiresAt: intent.ExpiresAt,
	}, nil
}

// compensateOpenFailure rolls the reservation back after a failed checkout
// open. The release is idempotent, so racing the expiry sweep is harmless.
func (u *purchaseUseCaseImpl) compensateOpenFailure(ctx context.Context, intent *purchase.Intent) {
	err := u.tx.Run(ctx, func(tx db.DBTX) error {
		if _, err := u.purchases.UpdateFailed(ctx, tx, intent.ID); err != nil {
			return err
		}
		return u.inventory.ReleaseCapacity(ctx, tx, intent.ReservationID)
	})
	if err != nil {
		slog.Error("failed to roll back reservation after checkout failure",
			"purchase_id", intent.ID, "reservation_id", intent.ReservationID, "error", err)
	}
}

func (u *purchaseUseCaseImpl) Get(ctx context.Context, id uuid.UUID) (*readmodel.PurchaseRM, error) {
	intent, err := u.purchases.FindByID(ctx, u.reader, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPurchaseNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &readmodel.PurchaseRM{
		PurchaseID:           intent.ID,
		EventID:              intent.EventID,
		Quantity:             intent.Quantity,
		Amount:               intent.Amount.StringFixed(2),
		Status:               string(intent.Status),
		ReservationExpiresAt: intent.ExpiresAt,
	}, nil
}

func (u *purchaseUseCaseImpl) Expire(ctx context.Context, purchaseID uuid.UUID) error {
	intent, err := u.purchases.FindByID(ctx, u.reader, purchaseID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrPurchaseNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if intent.Status != purchase.StatusPending {
		return nil // already terminal, nothing to release
	}

	return u.tx.Run(ctx, func(tx db.DBTX) error {
		// The guarded update keeps a concurrently arriving confirmation safe:
		// whichever transition commits first wins, the other is a no-op.
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

func (u *purchaseUseCaseImpl) ReleaseExpired(ctx context.Context) (int, error) {
	expired, err := u.purchases.FindExpiredPending(ctx, u.reader, u.clock.Now(), 100)
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	released := 0
	for _, intent := range expired {
		if err := u.Expire(ctx, intent.ID); err != nil {
			slog.Warn("failed to expire purchase intent", "purchase_id", intent.ID, "error", err)
			continue
		}
		released++
	}
	return released, nil
}
