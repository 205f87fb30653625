package ticket

import (
	"time"

	"ticketgate/internal/domain/purchase"

	"github.com/google/uuid"
)

// NewBatch issues the full ticket batch for one confirmed purchase: quantity
// tickets with sequence numbers 1..quantity, the first as parent and the rest
// referencing it. Token ids and QR payloads are derived here so the batch is
// complete before it touches storage.
func NewBatch(intent *purchase.Intent, signingKey string, now time.Time) ([]*Ticket, error) {
	batch := make([]*Ticket, 0, intent.Quantity)
	var parentID *uuid.UUID

	for seq := 1; seq <= intent.Quantity; seq++ {
		id := uuid.New()

		var boundName *string
		if len(intent.BoundNames) >= seq {
			name := intent.BoundNames[seq-1]
			boundName = &name
		}

		t := &Ticket{
			ID:                 id,
			EventID:            intent.EventID,
			PurchaseID:         intent.ID,
			Seq:                seq,
			GroupSize:          intent.Quantity,
			ParentID:           parentID,
			Status:             StatusValid,
			RegistryTokenID:    TokenID(id),
			RegistrationStatus: RegistrationPending,
			BoundName:          boundName,
			IssuedAt:           now,
		}

		payload := QRPayload{
			TicketID:        t.ID,
			RegistryTokenID: t.RegistryTokenID,
			EventID:         t.EventID,
			BoundName:       boundName,
			ValidationHash:  ComputeValidationHash(signingKey, t.ID, t.EventID),
			IssuedAt:        now,
		}
		encoded, err := payload.Encode()
		if err != nil {
			return nil, err
		}
		t.QRPayload = encoded

		if seq == 1 {
			pid := t.ID
			parentID = &pid
		}
		batch = append(batch, t)
	}

	return batch, nil
}
