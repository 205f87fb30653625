package usecase

import (
	"context"
	"fmt"
	"time"

	"ticketgate/internal/domain/event"
	"ticketgate/internal/domain/purchase"
	"ticketgate/internal/domain/ticket"
	"ticketgate/internal/domain/user"
	"ticketgate/internal/infra/db"
	"ticketgate/internal/infra/repository"
	"ticketgate/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=ports.go -destination=mock/ports.go -package=mock

// TxRunner owns transaction boundaries. Repositories receive the transaction
// handle through their DBTX parameter; usecases never touch the pool directly.
type TxRunner interface {
	Run(ctx context.Context, fn func(tx db.DBTX) error) error
	RunWithRetry(ctx context.Context, fn func(tx db.DBTX) error) error
}

// InventoryRepository is the inventory ledger: the only writer of an event's
// available-capacity counter.
type InventoryRepository interface {
	FindEvent(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*event.Event, error)
	ReserveCapacity(ctx context.Context, dbtx db.DBTX, res *event.Reservation) error
	ReleaseCapacity(ctx context.Context, dbtx db.DBTX, reservationID uuid.UUID) error
	ConsumeReservation(ctx context.Context, dbtx db.DBTX, reservationID uuid.UUID) error
}

type PurchaseRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, intent *purchase.Intent) error
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*purchase.Intent, error)
	FindByExternalOrderID(ctx context.Context, dbtx db.DBTX, handle string) (*purchase.Intent, error)
	SetExternalOrderID(ctx context.Context, dbtx db.DBTX, id uuid.UUID, orderID string) error
	UpdateConfirmed(ctx context.Context, dbtx db.DBTX, id uuid.UUID, externalTxnID string) (bool, error)
	UpdateFailed(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (bool, error)
	FindExpiredPending(ctx context.Context, dbtx db.DBTX, now time.Time, limit int) ([]*purchase.Intent, error)
}

type TicketRepository interface {
	CreateBatch(ctx context.Context, dbtx db.DBTX, batch []*ticket.Ticket) error
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*ticket.Ticket, error)
	FindByPurchaseID(ctx context.Context, dbtx db.DBTX, purchaseID uuid.UUID) ([]*ticket.Ticket, error)
	FindForScan(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*readmodel.TicketScanRM, error)
	MarkUsed(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (bool, error)
	Revoke(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (bool, error)
	UpdateRegistration(ctx context.Context, dbtx db.DBTX, ids []uuid.UUID, status ticket.RegistrationStatus, category *ticket.FailureCategory, reason *string) error
	FindOutstandingRegistrations(ctx context.Context, dbtx db.DBTX, limit int) ([]*ticket.Ticket, error)
}

type AttemptRepository interface {
	Append(ctx context.Context, dbtx db.DBTX, a *repository.ValidationAttempt) error
}

type UserRepository interface {
	FindProfile(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*user.Profile, error)
}

// CheckoutSession is what the external payment processor hands back when an
// order is opened.
type CheckoutSession struct {
	OrderID     string
	CheckoutURL string
	DeepLinks   map[string]string
}

type PaymentGateway interface {
	CreateOrder(ctx context.Context, purchaseID uuid.UUID, amount decimal.Decimal, description string) (*CheckoutSession, error)
}

// TokenEntry is one ticket's registry registration payload.
type TokenEntry struct {
	TicketID  uuid.UUID
	TokenID   string
	BoundName *string
}

type RegistrationResult struct {
	TxRef string
}

// TokenStatusSnapshot is the registry's advisory view of one token.
type TokenStatusSnapshot struct {
	Known      bool
	Revoked    bool
	HolderName *string
}

// RegistryAPIError is a non-transport failure reported by the registry
// gateway, carried across the port so callers can classify it.
type RegistryAPIError struct {
	StatusCode int
	Message    string
}

func (e *RegistryAPIError) Error() string {
	return fmt.Sprintf("registry returned status %d: %s", e.StatusCode, e.Message)
}

type RegistryClient interface {
	RegisterTokens(ctx context.Context, entries []TokenEntry) (*RegistrationResult, error)
	TokenStatus(ctx context.Context, tokenID string) (*TokenStatusSnapshot, error)
}

// RegistrationDispatcher decouples issuance from registry mirroring: Dispatch
// never blocks and never fails the caller.
type RegistrationDispatcher interface {
	Dispatch(tickets []*ticket.Ticket)
}
