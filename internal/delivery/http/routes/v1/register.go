package v1

import (
	"staff-planner/internal/database"
	"staff-planner/internal/delivery/http/handler"
	"staff-planner/internal/repository"
	"staff-planner/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, db database.DB) {
	entryRepo := repository.NewPostgresEntryRepository(db)
	entrySkillRepo := repository.NewPostgresEntrySkillRepository(db)

	entriesUC := usecase.NewEntryUsecase(entryRepo, entrySkillRepo)

	entriesHandler := handler.NewEntriesHandler(entriesUC)
	entriesHandler.RegisterRoutes(r.Group("/entries"))
}
