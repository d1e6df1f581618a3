package handlers

import (
	"cardledger/internal/services/card"
	"cardledger/internal/services/statement"

	"github.com/gofiber/fiber/v2"
)

type CardHandler struct {
	cards      card.Service
	statements statement.Service
}

func NewCardHandler(cards card.Service, statements statement.Service) *CardHandler {
	return &CardHandler{
		cards:      cards,
		statements: statements,
	}
}

func (h *CardHandler) ListCards(c *fiber.Ctx) error {
	cards, err := h.cards.ListCards(c.Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"cards": cards,
		"total": len(cards),
	})
}

func (h *CardHandler) GetCard(c *fiber.Ctx) error {
	found, err := h.cards.GetCard(c.Context(), c.Params("cardNumber"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(found)
}

func (h *CardHandler) GetCustomerCards(c *fiber.Ctx) error {
	cards, err := h.cards.GetCustomerCards(c.Context(), c.Params("userId"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"cards": cards,
		"total": len(cards),
	})
}

func (h *CardHandler) GetAvailableCredit(c *fiber.Ctx) error {
	available, err := h.cards.AvailableCredit(c.Context(), c.Params("cardNumber"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"card_number":      c.Params("cardNumber"),
		"available_credit": available,
	})
}

func (h *CardHandler) GetCardStatements(c *fiber.Ctx) error {
	statements, err := h.statements.GetCardStatements(c.Context(), c.Params("cardNumber"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"statements": statements,
		"total":      len(statements),
	})
}

func (h *CardHandler) GetStatement(c *fiber.Ctx) error {
	id, err := parseID(c, "statementId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid statement id",
		})
	}

	found, err := h.statements.GetStatement(c.Context(), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(found)
}
