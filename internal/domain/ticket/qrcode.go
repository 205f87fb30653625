package ticket

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrMalformedPayload = errors.New("malformed qr payload")

const legacyPrefix = "TICKET:"

// QRPayload is the structured form embedded in ticket QR codes. A legacy
// colon-delimited form ("TICKET:<ticket_id>:<hash>:<token_id>:<bound_name>?")
// produced by earlier issuers must keep decoding.
type QRPayload struct {
	TicketID        uuid.UUID `json:"ticket_id"`
	RegistryTokenID string    `json:"registry_token_id"`
	EventID         uuid.UUID `json:"event_id,omitempty"`
	BoundName       *string   `json:"bound_name,omitempty"`
	ValidationHash  string    `json:"validation_hash"`
	IssuedAt        time.Time `json:"issued_at,omitempty"`
}

func (p QRPayload) Encode() (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeQRPayload tries the structured JSON form first, then the legacy
// delimited form. Anything else is malformed.
func DecodeQRPayload(raw string) (*QRPayload, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, ErrMalformedPayload
	}

	if strings.HasPrefix(trimmed, "{") {
		var p QRPayload
		if err := json.Unmarshal([]byte(trimmed), &p); err != nil {
			return nil, ErrMalformedPayload
		}
		if p.TicketID == uuid.Nil {
			return nil, ErrMalformedPayload
		}
		return &p, nil
	}

	return decodeLegacy(trimmed)
}

func decodeLegacy(raw string) (*QRPayload, error) {
	if !strings.HasPrefix(raw, legacyPrefix) {
		return nil, ErrMalformedPayload
	}
	parts := strings.Split(strings.TrimPrefix(raw, legacyPrefix), ":")
	if len(parts) < 3 {
		return nil, ErrMalformedPayload
	}

	ticketID, err := uuid.Parse(parts[0])
	if err != nil {
		return nil, ErrMalformedPayload
	}

	p := &QRPayload{
		TicketID:        ticketID,
		ValidationHash:  parts[1],
		RegistryTokenID: parts[2],
	}
	if len(parts) > 3 && parts[3] != "" {
		name := parts[3]
		p.BoundName = &name
	}
	return p, nil
}

// ComputeValidationHash binds the payload to the issuing service. The hash is
// carried inside the QR code so an offline scanner can spot hand-edited
// payloads before hitting the database.
func ComputeValidationHash(signingKey string, ticketID, eventID uuid.UUID) string {
	mac := hmac.New(sha256.New, []byte(signingKey))
	mac.Write([]byte(ticketID.String()))
	mac.Write([]byte(eventID.String()))
	return hex.EncodeToString(mac.Sum(nil))
}
