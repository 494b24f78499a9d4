package bootstrap

import (
	"ticketboss/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	InventoryModule,
	components.EngineModule,
	components.UseCaseModule,
	components.HandlerModule,
)
