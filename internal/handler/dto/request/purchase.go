package request

import (
	"strings"

	"github.com/google/uuid"
)

type OpenPurchaseRequest struct {
	EventID    uuid.UUID `json:"event_id" binding:"required"`
	Quantity   int       `json:"quantity" binding:"required,min=1"`
	BoundNames []string  `json:"bound_names" binding:"required"`
}

// GetBoundNames trims surrounding whitespace; the domain layer enforces
// non-emptiness, length and uniqueness.
func (r OpenPurchaseRequest) GetBoundNames() []string {
	names := make([]string, len(r.BoundNames))
	for i, n := range r.BoundNames {
		names[i] = strings.TrimSpace(n)
	}
	return names
}
