package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"time"

	"product-catalog/internal/config"
	"product-catalog/internal/container"
	"product-catalog/internal/database"
	handler "product-catalog/internal/handler/http"
	"product-catalog/internal/logger"
	middleware_http "product-catalog/internal/middleware/http"
	"product-catalog/internal/repository"
	"product-catalog/internal/service"
	"product-catalog/internal/store"
	"product-catalog/internal/tracer"
	"product-catalog/internal/version"
)

const (
	storeBinding      = "product.store"
	databaseBinding   = "product.database"
	repositoryBinding = "product.repository"
)

func main() {
	globalCtx := context.Background()
	log := logger.Instance()
	cfg := config.Instance()

	log.Info(cfg.AppName,
		slog.String("version", version.Version),
		slog.String("commit", version.Commit),
		slog.String("buildTime", version.BuildTime),
	)

	// Initialize telemetry (OpenTelemetry + Pyroscope)
	shutdown, err := tracer.Instance(globalCtx)
	if err != nil {
		log.Error("Failed to initialize telemetry", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer shutdown()

	// Composition root: bind each abstraction to its implementation.
	// The store lives for the process; the repository and service are
	// rebuilt for every request that resolves them.
	c := container.New()

	var probe service.Pinger
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		st := store.Seed()
		probe = st
		c.Register(storeBinding, container.Singleton, nil, func(*container.Scope) (any, error) {
			return st, nil
		})
		c.Register(repositoryBinding, container.PerRequest, []string{storeBinding}, func(s *container.Scope) (any, error) {
			backing, err := container.Resolve[*store.Store](s, storeBinding)
			if err != nil {
				return nil, err
			}
			var repo repository.ProductRepository = repository.NewMemoryProductRepository(backing)
			return repo, nil
		})
	case config.StoreDriverMongo:
		db, err := database.Instance(globalCtx, cfg.MongoURI, cfg.MongoDBName)
		if err != nil {
			log.Error("Failed to connect to MongoDB", slog.String("error", err.Error()))
			os.Exit(1)
		}
		probe = db
		c.Register(databaseBinding, container.Singleton, nil, func(*container.Scope) (any, error) {
			return db, nil
		})
		c.Register(repositoryBinding, container.PerRequest, []string{databaseBinding}, func(s *container.Scope) (any, error) {
			mongoDB, err := container.Resolve[*database.Mongo](s, databaseBinding)
			if err != nil {
				return nil, err
			}
			var repo repository.ProductRepository = repository.NewMongoProductRepository(mongoDB.Database)
			return repo, nil
		})
	}

	c.Register(handler.ServiceBinding, container.PerRequest, []string{repositoryBinding}, func(s *container.Scope) (any, error) {
		repo, err := container.Resolve[repository.ProductRepository](s, repositoryBinding)
		if err != nil {
			return nil, err
		}
		return service.NewProductService(repo, cfg.StrictNotFound), nil
	})

	// A broken binding graph must stop the process before it serves.
	if err := c.Validate(); err != nil {
		log.Error("Invalid dependency bindings", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Wiring
	productHandler := handler.NewProductHandler(c)
	healthHandler := handler.NewHealthHandler(service.NewHealthService(cfg.StoreDriver, probe))

	// Routing
	mux := http.NewServeMux()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"data": "hello-world"})
	})

	mux.HandleFunc("GET /api/products", productHandler.GetAll)
	mux.HandleFunc("POST /api/products", productHandler.Create)
	mux.HandleFunc("GET /api/products/{id}", productHandler.GetByID)
	mux.HandleFunc("PUT /api/products/{id}", productHandler.Update)
	mux.HandleFunc("DELETE /api/products/{id}", productHandler.Delete)
	mux.HandleFunc("GET /healthz", healthHandler.Check)

	// HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.AppPort,
		Handler:      middleware_http.Trace(mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("HTTP server running", slog.String("addr", server.Addr))

	if err := server.ListenAndServe(); err != nil {
		log.Error("Server failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
