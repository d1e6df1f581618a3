package handlers

import (
	"errors"

	"cardledger/internal/services/card"
	"cardledger/internal/services/statement"
	"cardledger/internal/services/transaction"

	"github.com/gofiber/fiber/v2"
)

// statusForError maps service errors onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, transaction.ErrInvalidInput):
		return fiber.StatusBadRequest
	case errors.Is(err, transaction.ErrDuplicateTransaction):
		return fiber.StatusConflict
	case errors.Is(err, transaction.ErrCardExpired):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, transaction.ErrTransactionNotFound),
		errors.Is(err, transaction.ErrCardNotFound),
		errors.Is(err, transaction.ErrCustomerNotFound),
		errors.Is(err, transaction.ErrStatementNotFound),
		errors.Is(err, transaction.ErrNoCards),
		errors.Is(err, card.ErrCardNotFound),
		errors.Is(err, card.ErrNoCards),
		errors.Is(err, statement.ErrStatementNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

func errorResponse(c *fiber.Ctx, err error) error {
	return c.Status(statusForError(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}
