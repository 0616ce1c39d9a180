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

	"github.com/quotehub/quote-api/internal/application/admin"
	"github.com/quotehub/quote-api/internal/application/auth"
	"github.com/quotehub/quote-api/internal/application/session"
	"github.com/quotehub/quote-api/internal/application/usecase"
	"github.com/quotehub/quote-api/internal/infrastructure/postgres"
	httpRouter "github.com/quotehub/quote-api/internal/interfaces/http"
	"github.com/quotehub/quote-api/pkg/config"
	"github.com/quotehub/quote-api/pkg/logger"
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
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	membershipRepo := postgres.NewCompanyUserRepository(pool)
	adminUserRepo := postgres.NewAdminUserRepository(pool)
	subscriptionRepo := postgres.NewSubscriptionRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	quoteRepo := postgres.NewQuoteRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	resolver := session.NewResolver(userRepo, membershipRepo, adminUserRepo, log)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	setupUC := usecase.NewSetupUseCase(txRunner)
	companyUC := usecase.NewCompanyUseCase(companyRepo, subscriptionRepo)
	memberUC := usecase.NewMemberUseCase(membershipRepo, userRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	quoteUC := usecase.NewQuoteUseCase(quoteRepo, customerRepo, userRepo)
	dashboardUC := admin.NewDashboardUseCase(statsRepo, subscriptionRepo, companyRepo)

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
		Title:    "QuoteHub API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		SetupUC:     setupUC,
		CompanyUC:   companyUC,
		MemberUC:    memberUC,
		CustomerUC:  customerUC,
		QuoteUC:     quoteUC,
		DashboardUC: dashboardUC,
		Resolver:    resolver,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
