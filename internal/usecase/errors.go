package usecase

import "errors"

var (
	// Purchase errors
	ErrEventNotFound        = errors.New("event not found")
	ErrEventInPast          = errors.New("event already started")
	ErrQuantityOutOfRange   = errors.New("quantity out of range")
	ErrInsufficientCapacity = errors.New("insufficient capacity")
	ErrUserNotFound         = errors.New("user not found")
	ErrUserNotVerified      = errors.New("user identity not verified")
	ErrPaymentGatewayFailed = errors.New("payment processor call failed")
	ErrPurchaseNotFound     = errors.New("purchase not found")

	// Webhook errors
	ErrIntentNotFound   = errors.New("purchase intent not found for notification")
	ErrAlreadyProcessed = errors.New("notification already processed")
	ErrAmountMismatch   = errors.New("captured amount does not match purchase amount")

	// Ticket errors
	ErrTicketNotFound     = errors.New("ticket not found")
	ErrTicketNotRevocable = errors.New("ticket is not in a revocable state")

	// Error markers for categorization
	ErrDomainValidationFailed  = errors.New("domain validation failed")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
