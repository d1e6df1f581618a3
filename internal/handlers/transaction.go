package handlers

import (
	"strconv"

	"cardledger/internal/services/transaction"

	"github.com/gofiber/fiber/v2"
)

type TransactionHandler struct {
	svc transaction.Service
}

func NewTransactionHandler(svc transaction.Service) *TransactionHandler {
	return &TransactionHandler{svc: svc}
}

func (h *TransactionHandler) AddTransaction(c *fiber.Ctx) error {
	var input transaction.Transaction
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	added, err := h.svc.Add(c.Context(), &input)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(added)
}

func (h *TransactionHandler) SaveTransaction(c *fiber.Ctx) error {
	var input transaction.Transaction
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	saved, err := h.svc.Save(c.Context(), &input)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(saved)
}

func (h *TransactionHandler) ListTransactions(c *fiber.Ctx) error {
	txns, err := h.svc.FindAll(c.Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"transactions": txns,
		"total":        len(txns),
	})
}

func (h *TransactionHandler) GetTransaction(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid transaction id",
		})
	}

	txn, err := h.svc.FindByID(c.Context(), id)
	if err != nil {
		return errorResponse(c, err)
	}
	if txn == nil {
		// Existence check passed but the record vanished; report absence.
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Transaction not available",
		})
	}
	return c.JSON(txn)
}

func (h *TransactionHandler) TransactionExists(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid transaction id",
		})
	}

	exists, err := h.svc.ExistsByID(c.Context(), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"exists": exists})
}

func (h *TransactionHandler) DeleteTransaction(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid transaction id",
		})
	}

	if err := h.svc.DeleteByID(c.Context(), id); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *TransactionHandler) AuthorizeTransaction(c *fiber.Ctx) error {
	var input transaction.AuthorizeRequest
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	txn, err := h.svc.Authorize(c.Context(), input.CardNumber, input.Amount, input.Description)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(txn)
}

func (h *TransactionHandler) CardHistory(c *fiber.Ctx) error {
	history, err := h.svc.HistoryByCard(c.Context(), c.Params("cardNumber"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"transactions": history,
		"total":        len(history),
	})
}

func (h *TransactionHandler) CustomerHistory(c *fiber.Ctx) error {
	history, err := h.svc.HistoryByCustomer(c.Context(), c.Params("userId"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"transactions": history,
		"total":        len(history),
	})
}

func (h *TransactionHandler) StatementHistory(c *fiber.Ctx) error {
	id, err := parseID(c, "statementId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid statement id",
		})
	}

	history, err := h.svc.HistoryForStatement(c.Context(), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"transactions": history,
		"total":        len(history),
	})
}

func parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(param), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
