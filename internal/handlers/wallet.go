package handlers

import (
	"errors"

	"pochi/internal/models"
	"pochi/internal/services/wallet"
	"pochi/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type WalletHandler struct {
	walletService wallet.Service
}

func NewWalletHandler(walletService wallet.Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// extractUserClaims is a helper shared by all authenticated handlers.
func extractUserClaims(c *fiber.Ctx) (*models.UserClaims, error) {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok || claims == nil {
		return nil, fiber.ErrUnauthorized
	}
	return claims, nil
}

func walletError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, wallet.ErrInsufficientBalance):
		return utils.BadRequest(c, "insufficient balance")
	case errors.Is(err, wallet.ErrInvalidAmount):
		return utils.BadRequest(c, "amount must be greater than zero")
	case errors.Is(err, wallet.ErrSameWallet):
		return utils.BadRequest(c, "cannot transfer to your own wallet")
	case errors.Is(err, wallet.ErrWalletNotFound):
		return utils.NotFound(c, "wallet not found")
	case errors.Is(err, wallet.ErrWalletLocked):
		return utils.BadRequest(c, "wallet is locked")
	default:
		return utils.InternalError(c, err.Error())
	}
}

func (h *WalletHandler) GetWallet(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	w, err := h.walletService.GetWallet(c.Context(), claims.UserID)
	if err != nil {
		return walletError(c, err)
	}

	return utils.Success(c, fiber.Map{"wallet": w})
}

func (h *WalletHandler) Deposit(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		Amount float64 `json:"amount"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}

	tx, err := h.walletService.Deposit(c.Context(), claims.UserID, input.Amount, claims.Tier)
	if err != nil {
		return walletError(c, err)
	}

	return utils.Success(c, fiber.Map{"transaction": tx})
}

func (h *WalletHandler) Transfer(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		ToUserID uint    `json:"to_user_id"`
		Amount   float64 `json:"amount"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}

	tx, err := h.walletService.Transfer(c.Context(), claims.UserID, input.ToUserID, input.Amount, claims.Tier)
	if err != nil {
		return walletError(c, err)
	}

	return utils.Success(c, fiber.Map{"transaction": tx})
}

func (h *WalletHandler) Withdraw(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		Amount float64 `json:"amount"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}

	tx, err := h.walletService.Withdraw(c.Context(), claims.UserID, input.Amount, claims.Tier)
	if err != nil {
		return walletError(c, err)
	}

	return utils.Success(c, fiber.Map{"transaction": tx})
}

func (h *WalletHandler) Pay(c *fiber.Ctx) error {
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

	tx, err := h.walletService.Pay(c.Context(), claims.UserID, input.Amount, category, claims.Tier)
	if err != nil {
		return walletError(c, err)
	}

	return utils.Success(c, fiber.Map{"transaction": tx})
}

func (h *WalletHandler) TransactionHistory(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)

	history, err := h.walletService.GetTransactionHistory(c.Context(), claims.UserID, limit, offset)
	if err != nil {
		return utils.InternalError(c, "failed to load transaction history")
	}

	return utils.Success(c, fiber.Map{
		"transactions": history,
		"limit":        limit,
		"offset":       offset,
	})
}
