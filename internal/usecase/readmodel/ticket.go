package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type TicketRM struct {
	ID                 uuid.UUID  `json:"id"`
	EventID            uuid.UUID  `json:"event_id"`
	PurchaseID         uuid.UUID  `json:"purchase_id"`
	Seq                int        `json:"seq"`
	GroupSize          int        `json:"group_size"`
	ParentID           *uuid.UUID `json:"parent_id,omitempty"`
	Status             string     `json:"status"`
	QRPayload          string     `json:"qr_payload"`
	RegistryTokenID    string     `json:"registry_token_id"`
	RegistrationStatus string     `json:"registration_status"`
	BoundName          *string    `json:"bound_name,omitempty"`
	IssuedAt           time.Time  `json:"issued_at"`
}

// TicketScanRM is the validation-time join: the ticket row plus the event
// window and the holder's display name, fetched in one query.
type TicketScanRM struct {
	ID                 uuid.UUID
	EventID            uuid.UUID
	EventName          string
	EventEndsAt        time.Time
	Status             string
	RegistryTokenID    string
	RegistrationStatus string
	BoundName          *string
	HolderDisplayName  string
	Seq                int
	GroupSize          int
}
