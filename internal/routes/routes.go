// Package routes wires repositories, services and handlers onto the
// fiber app.
package routes

import (
	"strings"

	"pochi/internal/config"
	"pochi/internal/handlers"
	"pochi/internal/middleware"
	"pochi/internal/repositories"
	"pochi/internal/services/auth"
	"pochi/internal/services/fees"
	"pochi/internal/services/savings"
	"pochi/internal/services/subscription"
	"pochi/internal/services/user"
	"pochi/internal/services/wallet"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes, grouped by concern.
func SetupRoutes(app *fiber.App, db *gorm.DB, cfg config.App) {
	walletRepo := repositories.NewWalletRepository(db)
	userRepo := repositories.NewUserRepository(db)
	savingsRepo := repositories.NewSavingsRepository(db)

	feeCalculator := fees.NewCalculator()

	walletService := wallet.NewService(
		walletRepo,
		repositories.CacheService,
		feeCalculator,
		wallet.Config{Currency: cfg.Currency},
	)
	savingsService := savings.NewService(savingsRepo, walletService, nil)
	authService := auth.NewService(userRepo)
	userService := user.NewService(userRepo, walletService)
	subscriptionService := subscription.NewService(userRepo, strings.ToLower(cfg.Currency))

	authHandler := handlers.NewAuthHandler(authService, userService)
	userHandler := handlers.NewUserHandler(userService)
	walletHandler := handlers.NewWalletHandler(walletService)
	feeHandler := handlers.NewFeeHandler(feeCalculator)
	savingsHandler := handlers.NewSavingsHandler(savingsService)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionService)

	app.Get("/health", handlers.Health)

	api := app.Group("/api")

	// Public endpoints
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)
	api.Post("/refresh", authHandler.Refresh)

	// Authenticated endpoints
	authed := api.Group("", middleware.Auth())
	authed.Post("/logout", authHandler.Logout)
	authed.Get("/me", userHandler.Me)

	authed.Get("/wallet", walletHandler.GetWallet)
	authed.Post("/wallet/deposit", walletHandler.Deposit)
	authed.Post("/wallet/transfer", walletHandler.Transfer)
	authed.Post("/wallet/withdraw", walletHandler.Withdraw)
	authed.Post("/wallet/pay", walletHandler.Pay)
	authed.Get("/transactions", walletHandler.TransactionHistory)

	authed.Post("/fees/quote", feeHandler.Quote)
	authed.Get("/fees/schedule", feeHandler.Schedule)

	authed.Post("/savings", savingsHandler.Open)
	authed.Get("/savings", savingsHandler.List)
	authed.Post("/savings/:id/withdraw", savingsHandler.Withdraw)
	authed.Get("/savings/:id/loan-eligibility", savingsHandler.LoanEligibility)

	authed.Post("/subscription/upgrade", subscriptionHandler.Upgrade)
	authed.Post("/subscription/downgrade", subscriptionHandler.Downgrade)
}
