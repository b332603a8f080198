package handlers

import (
	"pochi/internal/services/user"
	"pochi/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService user.Service
}

func NewUserHandler(userService user.Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func (h *UserHandler) Me(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	profile, err := h.userService.GetProfile(c.Context(), claims.UserID)
	if err != nil {
		return utils.NotFound(c, "user not found")
	}

	return utils.Success(c, fiber.Map{
		"id":    profile.ID,
		"name":  profile.Name,
		"email": profile.Email,
		"phone": profile.Phone,
		"tier":  profile.Tier,
	})
}
