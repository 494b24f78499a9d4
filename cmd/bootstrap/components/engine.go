package components

import (
	"ticketboss/internal/infra/inventory"
	"ticketboss/internal/usecase/commands"
	"ticketboss/internal/usecase/queries"

	"go.uber.org/fx"
)

// EngineModule binds the single inventory engine instance to the write and
// read ports of the usecase layer.
var EngineModule = fx.Module("engine",
	fx.Provide(
		func(e *inventory.Engine) commands.InventoryWriter { return e },
		func(e *inventory.Engine) queries.ReservationReadStore { return e },
		func(e *inventory.Engine) queries.EventReadStore { return e },
	),
)
