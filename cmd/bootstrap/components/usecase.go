package components

import (
	"ticketgate/internal/pkg/clock"
	"ticketgate/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewTokenValidator,
		usecase.NewPurchaseUseCase,
		usecase.NewWebhookUseCase,
		usecase.NewValidationUseCase,
		usecase.NewRegistrationUseCase,
		usecase.NewTicketUseCase,
	),
)
