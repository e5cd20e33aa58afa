package eventbus

import (
	"context"
	"log"

	"github.com/go-monolith/mono"
)

// Module provides the session Bus as a mono module.
type Module struct {
	bus *Bus
}

// Compile-time interface check.
var _ mono.Module = (*Module)(nil)

// NewModule creates a new Bus module.
func NewModule() *Module {
	return &Module{bus: New()}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "eventbus"
}

// Init initializes the module.
func (m *Module) Init(_ mono.ServiceContainer) error {
	log.Println("[eventbus] bus initialized")
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

// Bus returns the bus instance.
func (m *Module) Bus() *Bus {
	return m.bus
}
