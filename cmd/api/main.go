package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/karimbadr/mohasib-api/internal/application/auth"
	"github.com/karimbadr/mohasib-api/internal/application/inventory"
	"github.com/karimbadr/mohasib-api/internal/application/ledger"
	"github.com/karimbadr/mohasib-api/internal/application/project"
	"github.com/karimbadr/mohasib-api/internal/application/report"
	"github.com/karimbadr/mohasib-api/internal/application/usecase"
	"github.com/karimbadr/mohasib-api/internal/domain/repository"
	"github.com/karimbadr/mohasib-api/internal/infrastructure/memory"
	"github.com/karimbadr/mohasib-api/internal/infrastructure/notify"
	"github.com/karimbadr/mohasib-api/internal/infrastructure/postgres"
	httpRouter "github.com/karimbadr/mohasib-api/internal/interfaces/http"
	"github.com/karimbadr/mohasib-api/pkg/config"
	"github.com/karimbadr/mohasib-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("starting application")

	ctx := context.Background()

	var (
		repos     ledger.Repos
		userRepo  repository.UserRepository
		txRunner  ledger.TxRunner
		poolClose func()
	)
	switch cfg.Store.Driver {
	case config.StoreMemory:
		store := memory.NewStore()
		repos = store.Repos()
		userRepo = memory.NewUserRepository(store)
		txRunner = memory.NewTxRunner(store)
		poolClose = func() {}
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("PostgreSQL connection")
		}
		repos = ledger.Repos{
			Transactions: postgres.NewTransactionRepository(pool),
			Items:        postgres.NewInventoryItemRepository(pool),
			Movements:    postgres.NewMovementRepository(pool),
			Projects:     postgres.NewProjectRepository(pool),
			Costs:        postgres.NewProjectCostRepository(pool),
			Sales:        postgres.NewProjectSaleRepository(pool),
		}
		userRepo = postgres.NewUserRepository(pool)
		txRunner = postgres.NewTxRunner(pool)
		poolClose = pool.Close
	}
	defer poolClose()

	notifier := notify.NewLogNotifier(log)

	transactionUC := ledger.NewTransactionUseCase(repos.Transactions)
	inventoryUC := inventory.NewUseCase(txRunner, repos.Items, repos.Movements, notifier)
	projectUC := project.NewUseCase(txRunner, repos.Projects, repos.Costs, repos.Sales)
	reportUC := report.NewUseCase(repos.Transactions, repos.Items, repos.Projects, repos.Costs, repos.Sales)
	userUC := usecase.NewUserUseCase(userRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		TransactionUC: transactionUC,
		InventoryUC:   inventoryUC,
		ProjectUC:     projectUC,
		ReportUC:      reportUC,
		UserUC:        userUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
