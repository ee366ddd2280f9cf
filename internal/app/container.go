package app

import (
	"context"
	"time"

	"staff-planner/internal/config"
	"staff-planner/internal/database"
	dbpostgres "staff-planner/internal/database/postgres"

	"go.uber.org/zap"
)

// Container holds the process-wide dependencies, constructed once at startup
// and injected downward.
type Container struct {
	Config config.Config
	Logger *zap.Logger
	DB     database.DB
}

func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	return &Container{Config: cfg, Logger: logger, DB: db}, nil
}

func (c *Container) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
