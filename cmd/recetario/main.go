package main

import (
	"context"
	"log/slog"
	"os"

	"recetario/config"
	"recetario/internal/delivery"
	deliveryhttp "recetario/internal/delivery/http"
	httpmiddleware "recetario/internal/delivery/http/middleware"
	"recetario/internal/delivery/http/router/handler"
	"recetario/internal/delivery/middleware"
	"recetario/internal/domain/repository"
	"recetario/internal/infra/auth"
	logs "recetario/internal/infra/log"
	"recetario/internal/infra/persistence/memory"
	"recetario/internal/infra/persistence/sqlite"
	"recetario/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			runSeed,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

// repositories bundles the backend-specific constructors behind the domain
// contracts so the rest of the graph stays backend-agnostic.
type repositories struct {
	fx.Out

	UserRepo   repository.UserRepository
	RecetaRepo repository.RecetaRepository
	TxManager  repository.TransactionManager
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newRepositories,
		),
	)
}

// newRepositories selects the store backend from config: "sqlite" keeps
// entities in a GORM-managed file, "memory" keeps them in-process.
func newRepositories(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (repositories, error) {
	switch cfg.Database.Driver {
	case "memory":
		store := memory.NewStore()

		return repositories{
			UserRepo:   memory.NewUserRepository(store),
			RecetaRepo: memory.NewRecetaRepository(store),
			TxManager:  memory.NewTransactionManager(store),
		}, nil

	case "sqlite":
		db, err := sqlite.New(lc, cfg, logger)
		if err != nil {
			return repositories{}, err
		}

		return repositories{
			UserRepo:   sqlite.NewUserRepository(db),
			RecetaRepo: sqlite.NewRecetaRepository(db),
			TxManager:  sqlite.NewTransactionManager(db),
		}, nil

	default:
		return repositories{}, errors.Errorf("unknown database driver %q", cfg.Database.Driver)
	}
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewRecetaService,
			impl.NewSeeder,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewRequestIDMiddleware,
			httpmiddleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewRecetaHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				deliveryhttp.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// runSeed populates default data before the server starts accepting
// requests. Listing it before startServer in fx.Invoke fixes the order.
func runSeed(ctx context.Context, seeder *impl.Seeder) {
	seeder.Seed(ctx)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
