package routes

import (
	"staff-planner/internal/database"
	"staff-planner/internal/delivery/http/handler"
	v1 "staff-planner/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

// Register wires every route group onto the app.
func Register(app *fiber.App, db database.DB) {
	healthHandler := handler.NewHealthHandler(db)
	app.Get("/health", healthHandler.HandleHealth)

	v1.Register(app.Group("/v1"), db)
}
