package user

import "errors"

var (
	ErrInvalidRole = errors.New("invalid role")
)

// Role is carried in access tokens. Buyers purchase through the consumer app,
// scanners validate at the gate, organizers and admins manage events.
type Role string

const (
	RoleBuyer     Role = "buyer"
	RoleScanner   Role = "scanner"
	RoleOrganizer Role = "organizer"
	RoleAdmin     Role = "admin"
)

func NewRole(s string) (Role, error) {
	switch Role(s) {
	case RoleBuyer, RoleScanner, RoleOrganizer, RoleAdmin:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string {
	return string(r)
}

// VerificationStatus is the identity-verification state of a buyer, owned by
// the external registration workflow and only read here.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
)

func (s VerificationStatus) Approved() bool {
	return s == VerificationApproved
}
