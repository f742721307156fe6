package handlers

import (
	"github.com/gofiber/fiber/v2"

	"app/database"
)

// HandleHealth reports liveness and store reachability.
// GET /api/v1/health
func HandleHealth(c *fiber.Ctx) error {
	dbOK := false
	if db := database.GetDB(); db != nil {
		dbOK = db.Ping(c.Context()) == nil
	}
	return c.JSON(fiber.Map{"status": "ok", "database": dbOK})
}
