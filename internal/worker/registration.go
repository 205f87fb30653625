package worker

import (
	"context"
	"log/slog"
	"time"

	"ticketgate/internal/domain/ticket"
	"ticketgate/internal/usecase"
)

const (
	dispatchBuffer   = 64
	outstandingBatch = 100
)

// RegistrationWorker mirrors issued tickets onto the revocation registry.
// Fresh batches arrive over a buffered channel so issuance never waits on the
// chain; a ticker retries everything still pending or failed, picking up
// batches that were dropped when the buffer was full.
type RegistrationWorker struct {
	registrations usecase.RegistrationUseCase
	interval      time.Duration
	incoming      chan []*ticket.Ticket
}

func NewRegistrationWorker(registrations usecase.RegistrationUseCase, interval time.Duration) *RegistrationWorker {
	return &RegistrationWorker{
		registrations: registrations,
		interval:      interval,
		incoming:      make(chan []*ticket.Ticket, dispatchBuffer),
	}
}

// Dispatch hands a freshly issued batch to the worker. Never blocks: when the
// buffer is full the batch is left to the outstanding sweep.
func (w *RegistrationWorker) Dispatch(tickets []*ticket.Ticket) {
	select {
	case w.incoming <- tickets:
	default:
		slog.Warn("registration queue full, batch deferred to sweep", "tickets", len(tickets))
	}
}

func (w *RegistrationWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	slog.Info("registration worker started", "interval", w.interval)

	for {
		select {
		case <-ctx.Done():
			slog.Info("registration worker stopped")
			return
		case batch := <-w.incoming:
			if err := w.registrations.RegisterBatch(ctx, batch); err != nil {
				slog.Warn("registration batch failed, will retry on sweep", "error", err)
			}
		case <-ticker.C:
			if _, err := w.registrations.ProcessOutstanding(ctx, outstandingBatch); err != nil {
				slog.Error("outstanding registration sweep failed", "error", err)
			}
		}
	}
}
