package handlers

import (
	"pochi/internal/models"
	"pochi/internal/services/subscription"
	"pochi/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type SubscriptionHandler struct {
	subscriptionService subscription.Service
}

func NewSubscriptionHandler(subscriptionService subscription.Service) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionService: subscriptionService,
	}
}

func (h *SubscriptionHandler) Upgrade(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		Tier      string `json:"tier"`
		CardToken string `json:"card_token"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}

	tier, err := models.ParseTier(input.Tier)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	user, err := h.subscriptionService.Upgrade(c.Context(), claims.UserID, tier, input.CardToken)
	if err != nil {
		switch err {
		case subscription.ErrInvalidTier, subscription.ErrAlreadyOnTier:
			return utils.BadRequest(c, err.Error())
		case subscription.ErrPaymentFailed:
			return utils.Error(c, fiber.StatusPaymentRequired, "PAYMENT_FAILED", "subscription payment failed")
		}
		return utils.InternalError(c, "failed to upgrade subscription")
	}

	return utils.Success(c, fiber.Map{
		"tier":    user.Tier,
		"message": "subscription upgraded; re-login to refresh your token tier",
	})
}

func (h *SubscriptionHandler) Downgrade(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	user, err := h.subscriptionService.Downgrade(c.Context(), claims.UserID)
	if err != nil {
		if err == subscription.ErrAlreadyOnTier {
			return utils.BadRequest(c, "already on the basic tier")
		}
		return utils.InternalError(c, "failed to downgrade subscription")
	}

	return utils.Success(c, fiber.Map{"tier": user.Tier})
}
