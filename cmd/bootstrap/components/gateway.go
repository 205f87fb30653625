package components

import (
	"ticketgate/internal/infra/paymentgw"
	"ticketgate/internal/infra/registry"
	"ticketgate/internal/usecase"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			paymentgw.NewClient,
			fx.As(new(usecase.PaymentGateway)),
		),
		fx.Annotate(
			registry.NewClient,
			fx.As(new(usecase.RegistryClient)),
		),
	),
)
