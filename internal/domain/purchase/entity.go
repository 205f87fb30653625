package purchase

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrQuantityOutOfRange = errors.New("quantity out of range")
	ErrBoundNameCount     = errors.New("bound names must match quantity")
	ErrBoundNameEmpty     = errors.New("bound name must not be empty")
	ErrBoundNameTooLong   = errors.New("bound name too long")
	ErrBoundNameDuplicate = errors.New("bound names must be distinct")
	ErrInvalidTransition  = errors.New("invalid purchase status transition")
)

const MaxBoundNameLen = 80

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusFailed    Status = "failed"
)

// Intent tracks one checkout attempt from reservation to confirmation.
// Exactly one terminal transition is permitted: pending → confirmed or
// pending → failed.
type Intent struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	EventID         uuid.UUID
	ReservationID   uuid.UUID
	Quantity        int
	Amount          decimal.Decimal
	Status          Status
	ExternalOrderID string
	ExternalTxnID   *string
	BoundNames      []string
	CreatedAt       time.Time
	ExpiresAt       time.Time
}

func NewIntent(
	userID, eventID, reservationID uuid.UUID,
	quantity int,
	maxPerPurchase int,
	amount decimal.Decimal,
	boundNames []string,
	now time.Time,
	ttl time.Duration,
) (*Intent, error) {
	if quantity < 1 || quantity > maxPerPurchase {
		return nil, ErrQuantityOutOfRange
	}
	if err := ValidateBoundNames(boundNames, quantity); err != nil {
		return nil, err
	}

	return &Intent{
		ID:            uuid.New(),
		UserID:        userID,
		EventID:       eventID,
		ReservationID: reservationID,
		Quantity:      quantity,
		Amount:        amount,
		Status:        StatusPending,
		BoundNames:    boundNames,
		CreatedAt:     now,
		ExpiresAt:     now.Add(ttl),
	}, nil
}

// ValidateBoundNames enforces the per-seat identity binding policy: one
// non-empty, bounded, pairwise-distinct name per ticket.
func ValidateBoundNames(names []string, quantity int) error {
	if len(names) != quantity {
		return ErrBoundNameCount
	}
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if name == "" {
			return ErrBoundNameEmpty
		}
		if len(name) > MaxBoundNameLen {
			return ErrBoundNameTooLong
		}
		if _, dup := seen[name]; dup {
			return ErrBoundNameDuplicate
		}
		seen[name] = struct{}{}
	}
	return nil
}

func (i *Intent) Confirm(externalTxnID string) error {
	if i.Status != StatusPending {
		return ErrInvalidTransition
	}
	i.Status = StatusConfirmed
	i.ExternalTxnID = &externalTxnID
	return nil
}

func (i *Intent) Fail() error {
	if i.Status != StatusPending {
		return ErrInvalidTransition
	}
	i.Status = StatusFailed
	return nil
}

func (i *Intent) Expired(now time.Time) bool {
	return i.Status == StatusPending && now.After(i.ExpiresAt)
}

// AmountMatches compares the captured amount against the computed amount
// within epsilon. Processors round independently; a cent of drift is not
// fraud, five dollars is.
func (i *Intent) AmountMatches(captured, epsilon decimal.Decimal) bool {
	return i.Amount.Sub(captured).Abs().LessThanOrEqual(epsilon)
}
