package app

import (
	"fmt"
	"strings"

	"staff-planner/internal/config"
	"staff-planner/internal/delivery/http/middleware"
	"staff-planner/internal/delivery/http/routes"
	"staff-planner/internal/logging"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	logger, err := logging.New(cfg.App.Environment)
	if err != nil {
		return nil, nil, err
	}

	container, err := NewContainer(cfg, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.Name})

	f.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	f.Use(middleware.NewErrorMiddleware(logger).Middleware())

	routes.Register(f, container.DB)

	cleanup := func() error {
		err := container.Close()
		_ = logger.Sync()
		return err
	}
	return &App{Fiber: f, Container: container}, cleanup, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
