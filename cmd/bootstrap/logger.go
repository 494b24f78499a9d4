package bootstrap

import (
	"log/slog"

	"ticketboss/internal/handler/middleware"
	"ticketboss/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger builds the process-wide slog logger from the log settings; the
// same construction drives the request-logging middleware.
func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log).GetSlogLogger()
}
