package validation

import (
	"time"

	"ticketgate/internal/domain/ticket"
)

type Verdict string

const (
	VerdictValid            Verdict = "valid"
	VerdictValidWithWarning Verdict = "valid_with_warning"
	VerdictInvalid          Verdict = "invalid"
	VerdictRevoked          Verdict = "revoked"
	VerdictError            Verdict = "error"
)

// NameCheck classifies how the bound identity looks across the three sources:
// the database record, the registry, and the QR payload.
type NameCheck string

const (
	NameVerified       NameCheck = "verified"
	NameMismatch       NameCheck = "mismatch"
	NameDatabaseOnly   NameCheck = "database_only"
	NameBlockchainOnly NameCheck = "blockchain_only"
	NameLegacyTicket   NameCheck = "legacy_ticket"
)

// RegistrySnapshot is what the registry cross-check produced, including
// whether it produced anything at all.
type RegistrySnapshot struct {
	Reachable  bool
	Known      bool
	Revoked    bool
	HolderName *string
}

type DecisionInput struct {
	TicketStatus     ticket.Status
	Registry         RegistrySnapshot
	PreviouslyMinted bool
	EventEndsAt      time.Time
	Now              time.Time
	Grace            time.Duration
	Names            NameCheck
}

type Outcome struct {
	Verdict  Verdict
	Reason   string
	Warnings []string
}

// ClassifyNames compares the database-bound name with the registry-reported
// one. The payload copy is informational only; a ticket bought before name
// binding existed has neither and stays a legacy ticket.
func ClassifyNames(dbName, registryName *string) NameCheck {
	switch {
	case dbName != nil && registryName != nil:
		if *dbName == *registryName {
			return NameVerified
		}
		return NameMismatch
	case dbName != nil:
		return NameDatabaseOnly
	case registryName != nil:
		return NameBlockchainOnly
	default:
		return NameLegacyTicket
	}
}

// Decide runs the priority ladder. Revocation from either source wins over
// everything; the database stays authoritative whenever the registry cannot
// be reached.
func Decide(in DecisionInput) Outcome {
	if in.Registry.Reachable && in.Registry.Revoked {
		return Outcome{Verdict: VerdictRevoked, Reason: "token revoked on registry"}
	}

	if in.TicketStatus == ticket.StatusRevoked {
		return Outcome{Verdict: VerdictRevoked, Reason: "ticket revoked"}
	}

	if in.Registry.Reachable && in.PreviouslyMinted && !in.Registry.Known {
		return Outcome{Verdict: VerdictInvalid, Reason: "not on registry"}
	}

	if in.TicketStatus != ticket.StatusValid {
		return Outcome{Verdict: VerdictInvalid, Reason: "ticket already " + string(in.TicketStatus)}
	}

	if in.Now.After(in.EventEndsAt.Add(in.Grace)) {
		return Outcome{Verdict: VerdictInvalid, Reason: "event ended"}
	}

	if in.Names == NameMismatch {
		return Outcome{
			Verdict:  VerdictValidWithWarning,
			Reason:   "bound name mismatch between database and registry",
			Warnings: []string{"verify holder identity manually"},
		}
	}

	out := Outcome{Verdict: VerdictValid, Reason: "entry allowed"}
	if !in.Registry.Reachable && in.PreviouslyMinted {
		out.Warnings = append(out.Warnings, "registry unreachable, database record used as authority")
	}
	return out
}
