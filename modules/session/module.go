package session

import (
	"context"
	"log"

	"github.com/go-monolith/mono"

	"github.com/example/storefront-demo/modules/eventbus"
	"github.com/example/storefront-demo/modules/shopapi"
	"github.com/example/storefront-demo/modules/state"
)

// Module hosts the storefront session inside the mono application.
type Module struct {
	bus   *eventbus.Bus
	state *state.AppState
	api   shopapi.OrderAPI

	session *Session
	cancel  context.CancelFunc
}

var _ mono.Module = (*Module)(nil)

func NewModule(bus *eventbus.Bus, st *state.AppState, api shopapi.OrderAPI) *Module {
	return &Module{bus: bus, state: st, api: api}
}

func (m *Module) Name() string {
	return "session"
}

func (m *Module) Init(_ mono.ServiceContainer) error {
	s, err := NewSession(m.bus, m.state, m.api)
	if err != nil {
		return err
	}
	m.session = s
	log.Printf("[session] initialized")
	return nil
}

// Start loads the catalog in the background so a slow or briefly
// unavailable order API does not block application startup.
func (m *Module) Start(_ context.Context) error {
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	go func() {
		if err := m.session.LoadCatalog(ctx); err != nil {
			log.Printf("[session] catalog load failed: %v", err)
		}
	}()
	return nil
}

func (m *Module) Stop(_ context.Context) error {
	if m.cancel != nil {
		m.cancel()
	}
	return nil
}

// Session exposes the running session to the web surface.
func (m *Module) Session() *Session {
	return m.session
}
