package usecase

import (
	"context"
	"log/slog"

	"ticketgate/internal/domain/ticket"
	"ticketgate/internal/infra"
	"ticketgate/internal/infra/db"
	"ticketgate/internal/pkg/errs"
	"ticketgate/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type TicketUseCase interface {
	Get(ctx context.Context, id uuid.UUID) (*readmodel.TicketRM, error)
	ListByPurchase(ctx context.Context, purchaseID uuid.UUID) ([]*readmodel.TicketRM, error)
	// Revoke is the admin kill switch. The database transition is what bars
	// entry; the registry mirror catches up through the registration worker.
	Revoke(ctx context.Context, id uuid.UUID) error
}

type ticketUseCaseImpl struct {
	tickets TicketRepository
	reader  db.DBTX
}

func NewTicketUseCase(tickets TicketRepository, reader db.DBTX) TicketUseCase {
	return &ticketUseCaseImpl{tickets: tickets, reader: reader}
}

func (u *ticketUseCaseImpl) Get(ctx context.Context, id uuid.UUID) (*readmodel.TicketRM, error) {
	t, err := u.tickets.FindByID(ctx, u.reader, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return ticketRM(t), nil
}

func (u *ticketUseCaseImpl) ListByPurchase(ctx context.Context, purchaseID uuid.UUID) ([]*readmodel.TicketRM, error) {
	batch, err := u.tickets.FindByPurchaseID(ctx, u.reader, purchaseID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	rms := make([]*readmodel.TicketRM, 0, len(batch))
	for _, t := range batch {
		rms = append(rms, ticketRM(t))
	}
	return rms, nil
}

func (u *ticketUseCaseImpl) Revoke(ctx context.Context, id uuid.UUID) error {
	if _, err := u.tickets.FindByID(ctx, u.reader, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrTicketNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	revoked, err := u.tickets.Revoke(ctx, u.reader, id)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !revoked {
		return ErrTicketNotRevocable
	}

	slog.Info("ticket revoked", "ticket_id", id)
	return nil
}

func ticketRM(t *ticket.Ticket) *readmodel.TicketRM {
	return &readmodel.TicketRM{
		ID:                 t.ID,
		EventID:            t.EventID,
		PurchaseID:         t.PurchaseID,
		Seq:                t.Seq,
		GroupSize:          t.GroupSize,
		ParentID:           t.ParentID,
		Status:             string(t.Status),
		QRPayload:          t.QRPayload,
		RegistryTokenID:    t.RegistryTokenID,
		RegistrationStatus: string(t.RegistrationStatus),
		BoundName:          t.BoundName,
		IssuedAt:           t.IssuedAt,
	}
}
