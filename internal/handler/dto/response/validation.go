package response

import (
	"ticketgate/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type TicketInfoResponse struct {
	TicketID  uuid.UUID `json:"ticket_id"`
	EventName string    `json:"event_name"`
	Holder    string    `json:"holder"`
	BoundName *string   `json:"bound_name,omitempty"`
	Seq       int       `json:"seq"`
	GroupSize int       `json:"group_size"`
}

type RegistryStatusResponse struct {
	Checked   bool    `json:"checked"`
	Reachable bool    `json:"reachable"`
	Known     bool    `json:"known"`
	Revoked   bool    `json:"revoked"`
	Holder    *string `json:"holder,omitempty"`
}

type ValidationResponse struct {
	Verdict        string                  `json:"validation_result"`
	Reason         string                  `json:"reason"`
	NameCheck      string                  `json:"name_check,omitempty"`
	Warnings       []string                `json:"warnings,omitempty"`
	TicketInfo     *TicketInfoResponse     `json:"ticket_info,omitempty"`
	RegistryStatus *RegistryStatusResponse `json:"registry_status,omitempty"`
}

func FromValidationRM(rm *readmodel.ValidationRM) *ValidationResponse {
	var resp ValidationResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}
