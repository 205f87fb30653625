package repository

import (
	"context"

	"ticketgate/internal/domain/user"
	"ticketgate/internal/infra"
	"ticketgate/internal/infra/db"

	"github.com/google/uuid"
)

// UserRepository reads profiles written by the external registration and
// identity-verification workflow. This service never writes users.
type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) FindProfile(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*user.Profile, error) {
	const query = `
		SELECT id, display_name, verification_status, wallet_address
		FROM users
		WHERE id = $1`

	var (
		p      user.Profile
		status string
	)
	err := dbtx.QueryRow(ctx, query, id).Scan(&p.ID, &p.DisplayName, &status, &p.WalletAddress)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to find user profile", err)
	}
	p.VerificationStatus = user.VerificationStatus(status)
	return &p, nil
}
