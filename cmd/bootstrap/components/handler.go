package components

import (
	"ticketgate/internal/handler"
	"ticketgate/internal/handler/api"
	"ticketgate/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPurchaseHandler,
		api.NewWebhookHandler,
		api.NewValidationHandler,
		api.NewTicketHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
