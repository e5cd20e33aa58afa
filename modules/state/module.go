package state

import (
	"context"
	"log"

	"github.com/go-monolith/mono"

	"github.com/example/storefront-demo/modules/eventbus"
)

// Module provides the AppState as a mono module.
type Module struct {
	bus   *eventbus.Bus
	state *AppState
}

// Compile-time interface check.
var _ mono.Module = (*Module)(nil)

// NewModule creates a new state module announcing on the bus.
func NewModule(bus *eventbus.Bus) *Module {
	return &Module{bus: bus, state: New(bus)}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "state"
}

// Init initializes the module.
func (m *Module) Init(_ mono.ServiceContainer) error {
	log.Println("[state] session state initialized")
	return nil
}

// Start starts the module.
func (m *Module) Start(_ context.Context) error {
	return nil
}

// Stop stops the module.
func (m *Module) Stop(_ context.Context) error {
	return nil
}

// State returns the AppState instance.
func (m *Module) State() *AppState {
	return m.state
}
