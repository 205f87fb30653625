package usecase

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"ticketgate/internal/domain/ticket"
	"ticketgate/internal/infra/db"
	"ticketgate/internal/pkg/config"
	"ticketgate/internal/pkg/metrics"

	"github.com/google/uuid"
)

type RegistrationUseCase interface {
	// RegisterBatch mirrors one issued batch onto the revocation registry and
	// records the per-ticket outcome. Failures are categorized, never fatal;
	// the tickets stay sellable and scannable regardless.
	RegisterBatch(ctx context.Context, batch []*ticket.Ticket) error
	// ProcessOutstanding retries pending and failed registrations, oldest
	// first. Used by the background worker on every tick.
	ProcessOutstanding(ctx context.Context, limit int) (int, error)
}

type registrationUseCaseImpl struct {
	tickets  TicketRepository
	registry RegistryClient
	reader   db.DBTX
	cfg      config.RegistryConfig
}

func NewRegistrationUseCase(
	tickets TicketRepository,
	registryClient RegistryClient,
	reader db.DBTX,
	cfg config.Config,
) RegistrationUseCase {
	return &registrationUseCaseImpl{
		tickets:  tickets,
		registry: registryClient,
		reader:   reader,
		cfg:      cfg.Registry,
	}
}

func (u *registrationUseCaseImpl) RegisterBatch(ctx context.Context, batch []*ticket.Ticket) error {
	if len(batch) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, u.cfg.CycleTimeout)
	defer cancel()

	entries := make([]TokenEntry, len(batch))
	ids := make([]uuid.UUID, len(batch))
	for i, t := range batch {
		entries[i] = TokenEntry{
			TicketID:  t.ID,
			TokenID:   t.RegistryTokenID,
			BoundName: t.BoundName,
		}
		ids[i] = t.ID
	}

	result, err := u.registry.RegisterTokens(ctx, entries)
	if err != nil {
		category, reason := classifyRegistryFailure(err)
		slog.Warn("registry registration failed",
			"tickets", len(batch), "category", category, "error", err)
		metrics.RegistryOutcome("failed", string(category))

		if updErr := u.tickets.UpdateRegistration(ctx, u.reader, ids, ticket.RegistrationFailed, &category, &reason); updErr != nil {
			slog.Error("failed to record registration failure", "error", updErr)
		}
		return err
	}

	slog.Info("registry registration succeeded", "tickets", len(batch), "tx_ref", result.TxRef)
	metrics.RegistryOutcome("minted", "")
	return u.tickets.UpdateRegistration(ctx, u.reader, ids, ticket.RegistrationMinted, nil, nil)
}

func (u *registrationUseCaseImpl) ProcessOutstanding(ctx context.Context, limit int) (int, error) {
	outstanding, err := u.tickets.FindOutstandingRegistrations(ctx, u.reader, limit)
	if err != nil {
		return 0, err
	}
	if len(outstanding) == 0 {
		return 0, nil
	}

	// Group by purchase so a batch goes out the way it was issued.
	byPurchase := map[uuid.UUID][]*ticket.Ticket{}
	for _, t := range outstanding {
		byPurchase[t.PurchaseID] = append(byPurchase[t.PurchaseID], t)
	}

	processed := 0
	for _, batch := range byPurchase {
		if err := u.RegisterBatch(ctx, batch); err != nil {
			continue
		}
		processed += len(batch)
	}
	return processed, nil
}

func classifyRegistryFailure(err error) (ticket.FailureCategory, string) {
	var apiErr *RegistryAPIError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return ticket.FailureTimeout, "registry call timed out"
	case errors.As(err, &apiErr):
		if apiErr.StatusCode == http.StatusPaymentRequired {
			return ticket.FailureInsufficientFunds, apiErr.Message
		}
		return ticket.FailureRejected, apiErr.Message
	default:
		return ticket.FailureNetwork, err.Error()
	}
}
