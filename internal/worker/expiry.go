package worker

import (
	"context"
	"log/slog"
	"time"
)

type expiredReleaser interface {
	ReleaseExpired(ctx context.Context) (int, error)
}

// ExpirySweeper periodically releases reservations whose purchase intent sat
// pending past its TTL, returning the held capacity to the pool.
type ExpirySweeper struct {
	purchases expiredReleaser
	interval  time.Duration
}

func NewExpirySweeper(purchases expiredReleaser, interval time.Duration) *ExpirySweeper {
	return &ExpirySweeper{purchases: purchases, interval: interval}
}

func (s *ExpirySweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	slog.Info("expiry sweeper started", "interval", s.interval)

	for {
		select {
		case <-ctx.Done():
			slog.Info("expiry sweeper stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *ExpirySweeper) tick(ctx context.Context) {
	released, err := s.purchases.ReleaseExpired(ctx)
	if err != nil {
		slog.Error("expiry sweep failed", "error", err)
		return
	}
	if released > 0 {
		slog.Info("expired reservations released", "count", released)
	}
}
