package handlers

import (
	"pochi/internal/repositories"

	"github.com/gofiber/fiber/v2"
)

func Health(c *fiber.Ctx) error {
	status := fiber.Map{"status": "ok"}

	if repositories.DB != nil {
		if sqlDB, err := repositories.DB.DB(); err != nil || sqlDB.Ping() != nil {
			status["database"] = "down"
			return c.Status(fiber.StatusServiceUnavailable).JSON(status)
		}
		status["database"] = "up"
	}

	if repositories.CacheService != nil {
		if err := repositories.CacheService.HealthCheck(c.Context()); err != nil {
			status["cache"] = "down"
		} else {
			status["cache"] = "up"
		}
	}

	return c.JSON(status)
}
