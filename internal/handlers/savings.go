package handlers

import (
	"errors"

	domainerrors "pochi/internal/errors"
	"pochi/internal/services/savings"
	"pochi/internal/services/wallet"
	"pochi/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type SavingsHandler struct {
	savingsService savings.Service
}

func NewSavingsHandler(savingsService savings.Service) *SavingsHandler {
	return &SavingsHandler{
		savingsService: savingsService,
	}
}

func savingsError(c *fiber.Ctx, err error) error {
	if domainErr := domainerrors.FromEngine(err); domainErr != nil {
		return utils.Error(c, fiber.StatusBadRequest, domainErr.Code, domainErr.Message)
	}
	switch {
	case errors.Is(err, savings.ErrAccountNotFound):
		return utils.NotFound(c, "savings account not found")
	case errors.Is(err, savings.ErrNotAccountOwner):
		return utils.Error(c, fiber.StatusForbidden, "FORBIDDEN", "savings account belongs to another user")
	case errors.Is(err, wallet.ErrInsufficientBalance):
		return utils.BadRequest(c, "insufficient balance to lock this principal")
	}
	return utils.InternalError(c, err.Error())
}

func (h *SavingsHandler) Open(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		Principal        float64 `json:"principal"`
		LockPeriodMonths int     `json:"lock_period_months"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}

	account, err := h.savingsService.Open(c.Context(), claims.UserID, input.Principal, input.LockPeriodMonths, claims.Tier)
	if err != nil {
		return savingsError(c, err)
	}

	return utils.Success(c, fiber.Map{"account": account})
}

func (h *SavingsHandler) List(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	views, err := h.savingsService.List(c.Context(), claims.UserID)
	if err != nil {
		return utils.InternalError(c, "failed to list savings accounts")
	}

	return utils.Success(c, fiber.Map{"accounts": views})
}

func (h *SavingsHandler) Withdraw(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	accountID, err := c.ParamsInt("id")
	if err != nil || accountID <= 0 {
		return utils.BadRequest(c, "invalid account id")
	}

	var input struct {
		Early bool `json:"early"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}

	settlement, err := h.savingsService.Withdraw(c.Context(), claims.UserID, uint(accountID), input.Early)
	if err != nil {
		return savingsError(c, err)
	}

	return utils.Success(c, fiber.Map{"settlement": settlement})
}

func (h *SavingsHandler) LoanEligibility(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	accountID, err := c.ParamsInt("id")
	if err != nil || accountID <= 0 {
		return utils.BadRequest(c, "invalid account id")
	}

	maxLoan, err := h.savingsService.LoanEligibility(c.Context(), claims.UserID, uint(accountID), claims.Tier)
	if err != nil {
		return savingsError(c, err)
	}

	return utils.Success(c, fiber.Map{
		"max_loan":  maxLoan,
		"loan_rate": claims.Tier.LoanRate(),
	})
}
