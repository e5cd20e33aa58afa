package backend

import (
	"context"
	"fmt"
	"log"

	"github.com/go-monolith/mono"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/example/storefront-demo/modules/cache"
)

// Module runs the order API as a mono module.
type Module struct {
	app     *fiber.App
	db      *gorm.DB
	repo    *Repository
	service *Service
	cache   *cache.Cache
	dbPath  string
	port    int
}

// Compile-time interface check.
var _ mono.Module = (*Module)(nil)

// NewModule creates the order-API module. dbPath may be ":memory:".
func NewModule(port int, dbPath string) *Module {
	return &Module{port: port, dbPath: dbPath}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "backend"
}

// SetCache attaches the optional catalog cache. Must be called before
// Init to take effect.
func (m *Module) SetCache(c *cache.Cache) {
	m.cache = c
}

// Init opens the database, migrates, seeds an empty catalog, and
// builds the fiber app.
func (m *Module) Init(_ mono.ServiceContainer) error {
	db, err := gorm.Open(sqlite.Open(m.dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	m.db = db
	m.repo = NewRepository(db)

	if err := m.repo.Migrate(); err != nil {
		return err
	}
	if err := seedCatalog(m.repo); err != nil {
		return err
	}
	m.service = NewService(m.repo, m.cache)

	m.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
				Error:   "internal_error",
				Message: "An unexpected error occurred",
			})
		},
	})
	m.app.Use(recover.New())
	m.registerRoutes(m.app)

	log.Printf("[backend] database ready at %s", m.dbPath)
	return nil
}

// Start starts the HTTP server.
func (m *Module) Start(_ context.Context) error {
	go func() {
		addr := fmt.Sprintf(":%d", m.port)
		log.Printf("[backend] order API listening on %s", addr)
		if err := m.app.Listen(addr); err != nil {
			log.Printf("[backend] HTTP server error: %v", err)
		}
	}()
	return nil
}

// Stop shuts the HTTP server down gracefully.
func (m *Module) Stop(_ context.Context) error {
	if m.app != nil {
		if err := m.app.Shutdown(); err != nil {
			return err
		}
	}
	log.Println("[backend] module stopped")
	return nil
}

// BaseURL returns the address the storefront client should dial.
func (m *Module) BaseURL() string {
	return fmt.Sprintf("http://localhost:%d", m.port)
}
