package response

import (
	"time"

	"ticketgate/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PurchaseResponse struct {
	PurchaseID           uuid.UUID         `json:"purchase_id"`
	EventID              uuid.UUID         `json:"event_id"`
	Quantity             int               `json:"quantity"`
	Amount               string            `json:"amount"`
	Status               string            `json:"status"`
	CheckoutURL          string            `json:"checkout_url,omitempty"`
	MobileDeepLinks      map[string]string `json:"mobile_deep_links,omitempty"`
	ReservationExpiresAt time.Time         `json:"reservation_expires_at"`
}

func FromPurchaseRM(rm *readmodel.PurchaseRM) *PurchaseResponse {
	var resp PurchaseResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}
