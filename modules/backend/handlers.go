package backend

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/storefront-demo/domain/shop"
)

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// CatalogResponse is the product-list envelope.
type CatalogResponse struct {
	Total int                  `json:"total"`
	Items []shop.ProductRecord `json:"items"`
}

// registerRoutes wires the API endpoints onto the fiber app.
func (m *Module) registerRoutes(app *fiber.App) {
	app.Get("/health", m.healthHandler)
	app.Get("/product", m.listProducts)
	app.Post("/order", m.placeOrder)
}

func (m *Module) healthHandler(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "healthy",
		"service": "order-api",
	})
}

// listProducts handles GET /product.
func (m *Module) listProducts(c *fiber.Ctx) error {
	records, err := m.service.Catalog(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "catalog_failed",
			Message: "Failed to load the catalog",
		})
	}
	return c.JSON(CatalogResponse{Total: len(records), Items: records})
}

// placeOrder handles POST /order.
func (m *Module) placeOrder(c *fiber.Ctx) error {
	var draft shop.OrderDraft
	if err := c.BodyParser(&draft); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	result, err := m.service.PlaceOrder(c.UserContext(), draft)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}
