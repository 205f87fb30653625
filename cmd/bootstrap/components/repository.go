package components

import (
	repo_impl "ticketgate/internal/infra/repository"
	"ticketgate/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewInventoryRepository,
			fx.As(new(usecase.InventoryRepository)),
		),
		fx.Annotate(
			repo_impl.NewPurchaseRepository,
			fx.As(new(usecase.PurchaseRepository)),
		),
		fx.Annotate(
			repo_impl.NewTicketRepository,
			fx.As(new(usecase.TicketRepository)),
		),
		fx.Annotate(
			repo_impl.NewAttemptRepository,
			fx.As(new(usecase.AttemptRepository)),
		),
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
	),
)
