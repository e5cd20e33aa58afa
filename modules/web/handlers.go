package web

import (
	"log"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// IntentRequest carries a shopper action payload: product id or form
// field and value, depending on the intent.
type IntentRequest struct {
	ID    string `json:"id,omitempty"`
	Field string `json:"field,omitempty"`
	Value string `json:"value,omitempty"`
}

func (m *Module) registerRoutes() {
	m.app.Get("/health", m.health)
	m.app.Get("/", m.document)
	m.app.Get("/fragment/modal", m.modalFragment)
	m.app.Post("/intent/:name", m.intent)
	m.app.Post("/key/:key", m.key)

	m.app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	m.app.Get("/ws", websocket.New(m.handleWebSocket))
}

func (m *Module) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":            "healthy",
		"connected_clients": m.hub.ClientCount(),
	})
}

// document serves the whole rendered storefront. Browsers re-fetch it
// when the WebSocket feed reports a change.
func (m *Module) document(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(m.sess.RenderHTML())
}

// modalFragment serves only the dialog subtree, for clients that swap
// the modal in place instead of re-fetching the page.
func (m *Module) modalFragment(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(m.sess.RenderModalHTML())
}

func (m *Module) intent(c *fiber.Ctx) error {
	name := c.Params("name")
	var req IntentRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_request",
				Message: "Invalid request body",
			})
		}
	}

	payload := map[string]string{"id": req.ID, "field": req.Field, "value": req.Value}
	if err := m.sess.Intent(name, payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_intent",
			Message: err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (m *Module) key(c *fiber.Ctx) error {
	m.sess.PressKey(c.Params("key"))
	return c.SendStatus(fiber.StatusNoContent)
}

func (m *Module) handleWebSocket(c *websocket.Conn) {
	client := &Client{ID: uuid.New().String(), Conn: c}
	m.hub.Register(client)
	defer m.hub.Unregister(client)

	// The feed is one-way; reads only serve to detect the close.
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[web] read from %s: %v", client.ID, err)
			}
			return
		}
	}
}
