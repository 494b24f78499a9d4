package bootstrap

import (
	"context"

	"ticketboss/internal/infra/inventory"
	"ticketboss/internal/pkg/clock"
	"ticketboss/internal/pkg/config"
	"ticketboss/internal/pkg/idgen"

	"go.uber.org/fx"
)

var InventoryModule = fx.Module("inventory",
	fx.Provide(
		NewInventoryEngine,
	),
)

// NewInventoryEngine builds the engine and provisions the seed event while
// the fx graph is still being constructed, before the listener starts.
func NewInventoryEngine(cfg config.Config, clk clock.Clock, ids idgen.Generator) (*inventory.Engine, error) {
	engine := inventory.NewEngine(clk, ids)
	if err := engine.InitializeEvent(context.Background(), cfg.Seed.EventID, cfg.Seed.EventName, cfg.Seed.TotalSeats); err != nil {
		return nil, err
	}
	return engine, nil
}
