package logger

import (
	"go.uber.org/zap"
)

// New builds the application logger. Development mode gives human-readable
// output; anything else gets JSON suitable for log shipping.
func New(env string) (*zap.Logger, error) {
	if env == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
