// Package web is the storefront's HTTP surface: it serves the
// rendered document, accepts shopper intents, and streams bus events
// over WebSocket so a browser can know when to re-fetch.
package web

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-monolith/mono"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/example/storefront-demo/modules/eventbus"
	"github.com/example/storefront-demo/modules/session"
)

// SessionProvider hands out the running session. The session module
// satisfies it; the indirection exists because the session is built
// during Init, after registration.
type SessionProvider interface {
	Session() *session.Session
}

// Module hosts the fiber server and the WebSocket hub.
type Module struct {
	port     int
	provider SessionProvider
	sess     *session.Session
	bus      *eventbus.Bus
	app      *fiber.App
	hub      *Hub
	feedSub  eventbus.Subscription
	cancel   context.CancelFunc
}

var _ mono.Module = (*Module)(nil)

func NewModule(port int, provider SessionProvider, bus *eventbus.Bus) *Module {
	return &Module{port: port, provider: provider, bus: bus}
}

func (m *Module) Name() string {
	return "web"
}

func (m *Module) Init(_ mono.ServiceContainer) error {
	m.sess = m.provider.Session()
	if m.sess == nil {
		return fmt.Errorf("web: session not initialized")
	}
	m.hub = NewHub()
	m.feedSub = m.bus.SubscribeAll(func(event string, _ any) {
		m.hub.Broadcast(event)
	})

	m.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          60 * time.Second,
	})
	m.app.Use(recover.New())
	m.app.Use(loggerMiddleware())
	m.registerRoutes()
	return nil
}

func (m *Module) Start(_ context.Context) error {
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	go m.hub.Run(ctx)
	go func() {
		if err := m.app.Listen(fmt.Sprintf(":%d", m.port)); err != nil {
			log.Printf("[web] server error: %v", err)
		}
	}()
	log.Printf("[web] storefront listening on :%d", m.port)
	return nil
}

func (m *Module) Stop(_ context.Context) error {
	if m.feedSub != 0 {
		m.bus.Unsubscribe(m.feedSub)
	}
	if m.cancel != nil {
		m.cancel()
		m.hub.Wait()
	}
	if m.app == nil {
		return nil
	}
	log.Println("[web] shutting down")
	return m.app.Shutdown()
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}
	return c.Status(code).JSON(ErrorResponse{Error: "server_error", Message: message})
}

func loggerMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Get("Upgrade") == "websocket" {
			return c.Next()
		}
		err := c.Next()
		log.Printf("[web] %s %s %d", c.Method(), c.Path(), c.Response().StatusCode())
		return err
	}
}
