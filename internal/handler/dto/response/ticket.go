package response

import (
	"time"

	"ticketgate/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type TicketResponse struct {
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

type IssuanceResponse struct {
	PurchaseID uuid.UUID         `json:"purchase_id"`
	Replayed   bool              `json:"replayed"`
	Tickets    []*TicketResponse `json:"tickets"`
}

func FromTicketRM(rm *readmodel.TicketRM) *TicketResponse {
	var resp TicketResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromIssuanceRM(rm *readmodel.IssuanceRM) *IssuanceResponse {
	resp := &IssuanceResponse{
		PurchaseID: rm.PurchaseID,
		Replayed:   rm.Replayed,
		Tickets:    make([]*TicketResponse, len(rm.Tickets)),
	}
	for i, t := range rm.Tickets {
		resp.Tickets[i] = FromTicketRM(t)
	}
	return resp
}
