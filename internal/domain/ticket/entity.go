package ticket

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition = errors.New("invalid ticket status transition")
)

type Status string

const (
	StatusValid   Status = "valid"
	StatusRevoked Status = "revoked"
	StatusUsed    Status = "used"
)

type RegistrationStatus string

const (
	RegistrationPending RegistrationStatus = "pending"
	RegistrationMinted  RegistrationStatus = "minted"
	RegistrationFailed  RegistrationStatus = "failed"
)

// FailureCategory classifies why a registry registration attempt failed, for
// later scheduled or manual retry.
type FailureCategory string

const (
	FailureTimeout           FailureCategory = "timeout"
	FailureNetwork           FailureCategory = "network"
	FailureRejected          FailureCategory = "rejected"
	FailureInsufficientFunds FailureCategory = "insufficient_funds"
)

type Ticket struct {
	ID                 uuid.UUID
	EventID            uuid.UUID
	PurchaseID         uuid.UUID
	Seq                int
	GroupSize          int
	ParentID           *uuid.UUID
	Status             Status
	QRPayload          string
	RegistryTokenID    string
	RegistrationStatus RegistrationStatus
	BoundName          *string
	IssuedAt           time.Time
}

// TokenID derives the registry token identifier from the ticket id. It is
// deterministic so re-running issuance for the same ticket can never mint a
// second token, and it never incorporates user-controlled input.
func TokenID(ticketID uuid.UUID) string {
	sum := sha256.Sum256([]byte(ticketID.String()))
	return "0x" + hex.EncodeToString(sum[:])
}

// Revoke is terminal: valid → revoked.
func (t *Ticket) Revoke() error {
	if t.Status != StatusValid {
		return ErrInvalidTransition
	}
	t.Status = StatusRevoked
	return nil
}

// MarkUsed is terminal for entry purposes: valid → used.
func (t *Ticket) MarkUsed() error {
	if t.Status != StatusValid {
		return ErrInvalidTransition
	}
	t.Status = StatusUsed
	return nil
}
