//go:build unit

package validation_test

import (
	"testing"
	"time"

	"ticketgate/internal/domain/ticket"
	"ticketgate/internal/domain/validation"

	"github.com/stretchr/testify/assert"
)

func strptr(s string) *string { return &s }

func TestClassifyNames(t *testing.T) {
	cases := []struct {
		name     string
		dbName   *string
		regName  *string
		expected validation.NameCheck
	}{
		{name: "both match", dbName: strptr("Alice"), regName: strptr("Alice"), expected: validation.NameVerified},
		{name: "both differ", dbName: strptr("Alice"), regName: strptr("Bob"), expected: validation.NameMismatch},
		{name: "database only", dbName: strptr("Alice"), regName: nil, expected: validation.NameDatabaseOnly},
		{name: "registry only", dbName: nil, regName: strptr("Alice"), expected: validation.NameBlockchainOnly},
		{name: "neither", dbName: nil, regName: nil, expected: validation.NameLegacyTicket},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, validation.ClassifyNames(c.dbName, c.regName))
		})
	}
}

func TestDecide(t *testing.T) {
	now := time.Date(2026, 8, 2, 20, 0, 0, 0, time.UTC)
	eventEnds := now.Add(2 * time.Hour)
	grace := time.Hour

	reachable := func(known, revoked bool) validation.RegistrySnapshot {
		return validation.RegistrySnapshot{Reachable: true, Known: known, Revoked: revoked}
	}

	cases := []struct {
		name         string
		in           validation.DecisionInput
		wantVerdict  validation.Verdict
		wantReason   string
		wantWarnings int
	}{
		{
			name: "registry revocation wins over everything",
			in: validation.DecisionInput{
				TicketStatus: ticket.StatusValid,
				Registry:     reachable(true, true),
				EventEndsAt:  eventEnds, Now: now, Grace: grace,
			},
			wantVerdict: validation.VerdictRevoked,
			wantReason:  "token revoked on registry",
		},
		{
			name: "registry revocation wins even for a used ticket",
			in: validation.DecisionInput{
				TicketStatus: ticket.StatusUsed,
				Registry:     reachable(true, true),
				EventEndsAt:  eventEnds, Now: now, Grace: grace,
			},
			wantVerdict: validation.VerdictRevoked,
		},
		{
			name: "database revocation when registry is clean",
			in: validation.DecisionInput{
				TicketStatus: ticket.StatusRevoked,
				Registry:     reachable(true, false),
				EventEndsAt:  eventEnds, Now: now, Grace: grace,
			},
			wantVerdict: validation.VerdictRevoked,
			wantReason:  "ticket revoked",
		},
		{
			name: "database revocation when registry is unreachable",
			in: validation.DecisionInput{
				TicketStatus: ticket.StatusRevoked,
				Registry:     validation.RegistrySnapshot{Reachable: false},
				EventEndsAt:  eventEnds, Now: now, Grace: grace,
			},
			wantVerdict: validation.VerdictRevoked,
		},
		{
			name: "minted ticket missing from registry",
			in: validation.DecisionInput{
				TicketStatus:     ticket.StatusValid,
				Registry:         reachable(false, false),
				PreviouslyMinted: true,
				EventEndsAt:      eventEnds, Now: now, Grace: grace,
			},
			wantVerdict: validation.VerdictInvalid,
			wantReason:  "not on registry",
		},
		{
			name: "never minted ticket missing from registry is fine",
			in: validation.DecisionInput{
				TicketStatus:     ticket.StatusValid,
				Registry:         reachable(false, false),
				PreviouslyMinted: false,
				EventEndsAt:      eventEnds, Now: now, Grace: grace,
			},
			wantVerdict: validation.VerdictValid,
		},
		{
			name: "used ticket",
			in: validation.DecisionInput{
				TicketStatus: ticket.StatusUsed,
				Registry:     reachable(true, false),
				EventEndsAt:  eventEnds, Now: now, Grace: grace,
			},
			wantVerdict: validation.VerdictInvalid,
			wantReason:  "ticket already used",
		},
		{
			name: "event ended beyond grace",
			in: validation.DecisionInput{
				TicketStatus: ticket.StatusValid,
				Registry:     reachable(true, false),
				EventEndsAt:  now.Add(-2 * time.Hour), Now: now, Grace: grace,
			},
			wantVerdict: validation.VerdictInvalid,
			wantReason:  "event ended",
		},
		{
			name: "event ended but within grace",
			in: validation.DecisionInput{
				TicketStatus: ticket.StatusValid,
				Registry:     reachable(true, false),
				EventEndsAt:  now.Add(-30 * time.Minute), Now: now, Grace: grace,
			},
			wantVerdict: validation.VerdictValid,
		},
		{
			name: "name mismatch admits with warning",
			in: validation.DecisionInput{
				TicketStatus: ticket.StatusValid,
				Registry:     reachable(true, false),
				EventEndsAt:  eventEnds, Now: now, Grace: grace,
				Names: validation.NameMismatch,
			},
			wantVerdict:  validation.VerdictValidWithWarning,
			wantWarnings: 1,
		},
		{
			name: "registry unreachable for minted ticket admits with warning",
			in: validation.DecisionInput{
				TicketStatus:     ticket.StatusValid,
				Registry:         validation.RegistrySnapshot{Reachable: false},
				PreviouslyMinted: true,
				EventEndsAt:      eventEnds, Now: now, Grace: grace,
			},
			wantVerdict:  validation.VerdictValid,
			wantWarnings: 1,
		},
		{
			name: "clean valid ticket",
			in: validation.DecisionInput{
				TicketStatus:     ticket.StatusValid,
				Registry:         reachable(true, false),
				PreviouslyMinted: true,
				EventEndsAt:      eventEnds, Now: now, Grace: grace,
				Names: validation.NameVerified,
			},
			wantVerdict: validation.VerdictValid,
			wantReason:  "entry allowed",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out := validation.Decide(c.in)
			assert.Equal(t, c.wantVerdict, out.Verdict)
			if c.wantReason != "" {
				assert.Equal(t, c.wantReason, out.Reason)
			}
			assert.Len(t, out.Warnings, c.wantWarnings)
		})
	}
}
