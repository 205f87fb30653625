package readmodel

import (
	"time"

	"github.com/google/uuid"
)

// PurchaseRM is what a buyer-facing client needs to continue checkout.
type PurchaseRM struct {
	PurchaseID           uuid.UUID         `json:"purchase_id"`
	EventID              uuid.UUID         `json:"event_id"`
	Quantity             int               `json:"quantity"`
	Amount               string            `json:"amount"`
	Status               string            `json:"status"`
	CheckoutURL          string            `json:"checkout_url"`
	MobileDeepLinks      map[string]string `json:"mobile_deep_links"`
	ReservationExpiresAt time.Time         `json:"reservation_expires_at"`
}

// IssuanceRM is the result of one confirmed payment: the issued batch. For a
// replayed webhook it carries the previously issued tickets unchanged.
type IssuanceRM struct {
	PurchaseID uuid.UUID   `json:"purchase_id"`
	Replayed   bool        `json:"replayed"`
	Tickets    []*TicketRM `json:"tickets"`
}
