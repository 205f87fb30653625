package usecase

import (
	"context"
	"log/slog"

	"ticketgate/internal/domain/ticket"
	"ticketgate/internal/domain/validation"
	"ticketgate/internal/infra"
	"ticketgate/internal/infra/db"
	"ticketgate/internal/infra/repository"
	"ticketgate/internal/pkg/clock"
	"ticketgate/internal/pkg/config"
	"ticketgate/internal/pkg/metrics"
	"ticketgate/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// ScannerContext identifies who is scanning and from where, for the audit
// trail.
type ScannerContext struct {
	AdminID  uuid.UUID
	Location *string
	DeviceID *string
}

type ValidationUseCase interface {
	// Validate turns one scanned QR payload into a gate verdict. It always
	// returns a result; infrastructure failures degrade the verdict instead of
	// surfacing as errors, because the scanner cannot act on an error page.
	Validate(ctx context.Context, qrData string, scanner ScannerContext) *readmodel.ValidationRM
}

type validationUseCaseImpl struct {
	tickets  TicketRepository
	attempts AttemptRepository
	registry RegistryClient
	reader   db.DBTX
	clock    clock.Clock
	grace    config.SalesConfig
}

func NewValidationUseCase(
	tickets TicketRepository,
	attempts AttemptRepository,
	registry RegistryClient,
	reader db.DBTX,
	clock clock.Clock,
	cfg config.Config,
) ValidationUseCase {
	return &validationUseCaseImpl{
		tickets:  tickets,
		attempts: attempts,
		registry: registry,
		reader:   reader,
		clock:    clock,
		grace:    cfg.Sales,
	}
}

func (u *validationUseCaseImpl) Validate(ctx context.Context, qrData string, scanner ScannerContext) *readmodel.ValidationRM {
	payload, err := ticket.DecodeQRPayload(qrData)
	if err != nil {
		rm := &readmodel.ValidationRM{
			Verdict: string(validation.VerdictInvalid),
			Reason:  "malformed QR payload",
		}
		u.audit(ctx, nil, scanner, rm)
		return rm
	}

	scan, err := u.tickets.FindForScan(ctx, u.reader, payload.TicketID)
	if err != nil {
		rm := u.lookupFailureRM(err)
		u.audit(ctx, &payload.TicketID, scanner, rm)
		return rm
	}

	// Advisory registry cross-check. Any failure here downgrades to a
	// database-only decision rather than blocking the gate.
	snapshot := u.checkRegistry(ctx, scan.RegistryTokenID)

	names := validation.ClassifyNames(scan.BoundName, snapshot.HolderName)
	outcome := validation.Decide(validation.DecisionInput{
		TicketStatus:     ticket.Status(scan.Status),
		Registry:         snapshot,
		PreviouslyMinted: scan.RegistrationStatus == string(ticket.RegistrationMinted),
		EventEndsAt:      scan.EventEndsAt,
		Now:              u.clock.Now(),
		Grace:            u.grace.EventEndGrace,
		Names:            names,
	})

	// Only an admitting verdict consumes the ticket. The guarded update is the
	// double-scan arbiter: losing the race flips the verdict to invalid.
	if outcome.Verdict == validation.VerdictValid || outcome.Verdict == validation.VerdictValidWithWarning {
		used, err := u.tickets.MarkUsed(ctx, u.reader, scan.ID)
		if err != nil {
			slog.Error("failed to mark ticket used", "ticket_id", scan.ID, "error", err)
			outcome = validation.Outcome{Verdict: validation.VerdictError, Reason: "could not record entry"}
		} else if !used {
			outcome = validation.Outcome{Verdict: validation.VerdictInvalid, Reason: "ticket already used"}
		}
	}

	rm := &readmodel.ValidationRM{
		Verdict:   string(outcome.Verdict),
		Reason:    outcome.Reason,
		NameCheck: string(names),
		Warnings:  outcome.Warnings,
		TicketInfo: &readmodel.TicketInfoRM{
			TicketID:  scan.ID,
			EventName: scan.EventName,
			Holder:    scan.HolderDisplayName,
			BoundName: scan.BoundName,
			Seq:       scan.Seq,
			GroupSize: scan.GroupSize,
		},
		RegistryStatus: &readmodel.RegistryStatusRM{
			Checked:   true,
			Reachable: snapshot.Reachable,
			Known:     snapshot.Known,
			Revoked:   snapshot.Revoked,
			Holder:    snapshot.HolderName,
		},
	}

	u.audit(ctx, &scan.ID, scanner, rm)
	return rm
}

func (u *validationUseCaseImpl) lookupFailureRM(err error) *readmodel.ValidationRM {
	if infra.IsKind(err, infra.KindNotFound) {
		return &readmodel.ValidationRM{
			Verdict: string(validation.VerdictInvalid),
			Reason:  "ticket not found",
		}
	}
	slog.Error("ticket lookup failed during validation", "error", err)
	return &readmodel.ValidationRM{
		Verdict: string(validation.VerdictError),
		Reason:  "ticket lookup failed",
	}
}

func (u *validationUseCaseImpl) checkRegistry(ctx context.Context, tokenID string) validation.RegistrySnapshot {
	snapshot, err := u.registry.TokenStatus(ctx, tokenID)
	if err != nil {
		slog.Warn("registry unreachable during validation", "token_id", tokenID, "error", err)
		return validation.RegistrySnapshot{Reachable: false}
	}
	return validation.RegistrySnapshot{
		Reachable:  true,
		Known:      snapshot.Known,
		Revoked:    snapshot.Revoked,
		HolderName: snapshot.HolderName,
	}
}

// audit appends the attempt row. The trail is best-effort: a write failure is
// logged, never propagated, because the verdict has already been decided.
func (u *validationUseCaseImpl) audit(ctx context.Context, ticketID *uuid.UUID, scanner ScannerContext, rm *readmodel.ValidationRM) {
	metrics.VerdictRecorded(rm.Verdict)

	attempt := &repository.ValidationAttempt{
		ID:        uuid.New(),
		TicketID:  ticketID,
		AdminID:   scanner.AdminID,
		Verdict:   rm.Verdict,
		Reason:    rm.Reason,
		Location:  scanner.Location,
		DeviceID:  scanner.DeviceID,
		ScannedAt: u.clock.Now(),
	}
	if err := u.attempts.Append(ctx, u.reader, attempt); err != nil {
		slog.Error("failed to append validation attempt", "ticket_id", ticketID, "error", err)
	}
}
