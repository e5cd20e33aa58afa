package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"

	"github.com/example/storefront-demo/modules/backend"
	"github.com/example/storefront-demo/modules/cache"
	"github.com/example/storefront-demo/modules/eventbus"
	"github.com/example/storefront-demo/modules/session"
	"github.com/example/storefront-demo/modules/shopapi"
	"github.com/example/storefront-demo/modules/state"
	"github.com/example/storefront-demo/modules/web"
)

func main() {
	log.Println("Starting storefront-demo application...")

	webPort := envInt("WEB_PORT", 8080)
	apiPort := envInt("API_PORT", 8081)
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "storefront.db"
	}

	app, err := mono.NewMonoApplication(
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
		mono.WithShutdownTimeout(30*time.Second),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	busModule := eventbus.NewModule()
	if err := app.Register(busModule); err != nil {
		log.Fatalf("Failed to register eventbus module: %v", err)
	}

	stateModule := state.NewModule(busModule.Bus())
	if err := app.Register(stateModule); err != nil {
		log.Fatalf("Failed to register state module: %v", err)
	}

	// The embedded order API; the session talks to it over HTTP like
	// it would to a remote one.
	backendModule := backend.NewModule(apiPort, dbPath)
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		c, err := cache.Connect(context.Background(), addr, "storefront", 5*time.Minute)
		if err != nil {
			log.Printf("Warning: redis unavailable at %s, catalog cache disabled: %v", addr, err)
		} else {
			backendModule.SetCache(c)
		}
	}
	if err := app.Register(backendModule); err != nil {
		log.Fatalf("Failed to register backend module: %v", err)
	}

	orderAPI := shopapi.NewService(shopapi.NewClient(backendModule.BaseURL()))
	sessionModule := session.NewModule(busModule.Bus(), stateModule.State(), orderAPI)
	if err := app.Register(sessionModule); err != nil {
		log.Fatalf("Failed to register session module: %v", err)
	}

	webModule := web.NewModule(webPort, sessionModule, busModule.Bus())
	if err := app.Register(webModule); err != nil {
		log.Fatalf("Failed to register web module: %v", err)
	}

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	log.Println("Application started successfully")
	log.Printf("Storefront listening on :%d", webPort)
	log.Printf("Order API listening on :%d", apiPort)

	shutdownTimeout := 30 * time.Second
	shutdownCtx, forceShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer forceShutdown()

	shutdownChan := gfshutdown.GracefulShutdown(shutdownCtx, shutdownTimeout, map[string]gfshutdown.Operation{
		"application": func(ctx context.Context) error {
			return app.Stop(ctx)
		},
	})

	exitCode := <-shutdownChan
	if exitCode != 0 {
		log.Printf("Shutdown completed with exit code: %d", exitCode)
		os.Exit(exitCode)
	}

	log.Println("Shutdown completed successfully")
}

func envInt(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Warning: invalid %s '%s', using default %d: %v", name, raw, fallback, err)
		return fallback
	}
	return v
}
