package user

import "github.com/google/uuid"

// Profile is the read-only slice of a user record this service consumes. The
// registration and identity-verification workflow that writes it lives in a
// separate service.
type Profile struct {
	ID                 uuid.UUID
	DisplayName        string
	VerificationStatus VerificationStatus
	WalletAddress      *string
}
