// Package routes defines the API routing configuration.
// It wires repositories into services and services into handlers.
package routes

import (
	"cardledger/internal/handlers"
	"cardledger/internal/repositories"
	"cardledger/internal/services/card"
	"cardledger/internal/services/statement"
	"cardledger/internal/services/transaction"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Repositories
	txnRepo := repositories.NewTransactionRepository(db)
	cardRepo := repositories.NewCardRepository(db)
	customerRepo := repositories.NewCustomerRepository(db)
	statementRepo := repositories.NewStatementRepository(db)

	// Services
	txnService := transaction.NewService(
		txnRepo,
		cardRepo,
		customerRepo,
		statementRepo,
		repositories.CacheService,
	)
	cardService := card.NewService(cardRepo)
	statementService := statement.NewService(statementRepo)

	// Handlers
	txnHandler := handlers.NewTransactionHandler(txnService)
	cardHandler := handlers.NewCardHandler(cardService, statementService)

	api := app.Group("/api")

	// Transaction lifecycle
	api.Post("/transactions", txnHandler.AddTransaction)
	api.Put("/transactions", txnHandler.SaveTransaction)
	api.Get("/transactions", txnHandler.ListTransactions)
	api.Get("/transactions/:id", txnHandler.GetTransaction)
	api.Get("/transactions/:id/exists", txnHandler.TransactionExists)
	api.Delete("/transactions/:id", txnHandler.DeleteTransaction)
	api.Post("/transactions/authorize", txnHandler.AuthorizeTransaction)

	// History
	api.Get("/cards/:cardNumber/transactions", txnHandler.CardHistory)
	api.Get("/customers/:userId/transactions", txnHandler.CustomerHistory)
	api.Get("/statements/:statementId/transactions", txnHandler.StatementHistory)

	// Cards and statements
	api.Get("/cards", cardHandler.ListCards)
	api.Get("/cards/:cardNumber", cardHandler.GetCard)
	api.Get("/cards/:cardNumber/credit", cardHandler.GetAvailableCredit)
	api.Get("/cards/:cardNumber/statements", cardHandler.GetCardStatements)
	api.Get("/customers/:userId/cards", cardHandler.GetCustomerCards)
	api.Get("/statements/:statementId", cardHandler.GetStatement)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Card ledger API",
			"version": "1.0.0",
			"docs":    "/api",
		})
	})
}
