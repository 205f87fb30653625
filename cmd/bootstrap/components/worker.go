package components

import (
	"context"

	"ticketgate/internal/pkg/config"
	"ticketgate/internal/usecase"
	"ticketgate/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewRegistrationWorker,
		NewExpirySweeper,
		fx.Annotate(
			func(w *worker.RegistrationWorker) *worker.RegistrationWorker { return w },
			fx.As(new(usecase.RegistrationDispatcher)),
		),
	),
	fx.Invoke(startWorkers),
)

func NewRegistrationWorker(registrations usecase.RegistrationUseCase, cfg config.Config) *worker.RegistrationWorker {
	return worker.NewRegistrationWorker(registrations, cfg.Registry.WorkerInterval)
}

func NewExpirySweeper(purchases usecase.PurchaseUseCase, cfg config.Config) *worker.ExpirySweeper {
	return worker.NewExpirySweeper(purchases, cfg.Sales.SweepInterval)
}

func startWorkers(lc fx.Lifecycle, registration *worker.RegistrationWorker, sweeper *worker.ExpirySweeper) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go registration.Start(ctx)
			go sweeper.Start(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}
