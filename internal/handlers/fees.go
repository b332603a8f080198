package handlers

import (
	domainerrors "pochi/internal/errors"
	"pochi/internal/models"
	"pochi/internal/services/fees"
	"pochi/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type FeeHandler struct {
	calculator *fees.Calculator
}

func NewFeeHandler(calculator *fees.Calculator) *FeeHandler {
	return &FeeHandler{
		calculator: calculator,
	}
}

// Quote prices a prospective transaction without moving any money. The
// tier defaults to the caller's own tier from the token.
func (h *FeeHandler) Quote(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		Amount   float64 `json:"amount"`
		Category string  `json:"category"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}

	category, err := models.ParseCategory(input.Category)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	breakdown, err := h.calculator.Quote(input.Amount, category, claims.Tier)
	if err != nil {
		if domainErr := domainerrors.FromEngine(err); domainErr != nil {
			return utils.Error(c, fiber.StatusBadRequest, domainErr.Code, domainErr.Message)
		}
		return utils.InternalError(c, "failed to compute fee")
	}

	return utils.Success(c, fiber.Map{"quote": breakdown})
}

// Schedule returns the public pricing tables so clients can render fee
// schedules without hardcoding them.
func (h *FeeHandler) Schedule(c *fiber.Ctx) error {
	return utils.Success(c, fiber.Map{
		"peer_transfer_brackets": models.PeerTransferBrackets,
		"flat_rules":             models.FlatFeeRules,
		"discounts":              models.DiscountMatrix,
	})
}
