package logging

import (
	"go.uber.org/zap"
)

// New builds the process logger. Local environments get the development
// encoder, everything else logs production JSON.
func New(environment string) (*zap.Logger, error) {
	if environment == "local" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
