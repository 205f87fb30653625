package readmodel

import (
	"github.com/google/uuid"
)

// TicketInfoRM is the subset of ticket detail shown to gate staff alongside
// the verdict.
type TicketInfoRM struct {
	TicketID  uuid.UUID `json:"ticket_id"`
	EventName string    `json:"event_name"`
	Holder    string    `json:"holder"`
	BoundName *string   `json:"bound_name,omitempty"`
	Seq       int       `json:"seq"`
	GroupSize int       `json:"group_size"`
}

type RegistryStatusRM struct {
	Checked   bool    `json:"checked"`
	Reachable bool    `json:"reachable"`
	Known     bool    `json:"known"`
	Revoked   bool    `json:"revoked"`
	Holder    *string `json:"holder,omitempty"`
}

// ValidationRM is always produced, whatever went wrong: scanners need a
// verdict, not an error page.
type ValidationRM struct {
	Verdict        string            `json:"validation_result"`
	Reason         string            `json:"reason"`
	NameCheck      string            `json:"name_check,omitempty"`
	Warnings       []string          `json:"warnings,omitempty"`
	TicketInfo     *TicketInfoRM     `json:"ticket_info,omitempty"`
	RegistryStatus *RegistryStatusRM `json:"registry_status,omitempty"`
}
