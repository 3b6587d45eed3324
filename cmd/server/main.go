package main // Entry point package

import (
	"context" // context for the startup load
	"log"     // Logging library

	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/campusjive/campus-events/internal/auth"    // credential policies
	"github.com/campusjive/campus-events/internal/config"  // internal config loader
	"github.com/campusjive/campus-events/internal/handler" // HTTP handlers
	"github.com/campusjive/campus-events/internal/queue"   // broadcast consumer
	"github.com/campusjive/campus-events/internal/router"  // internal router setup
	"github.com/campusjive/campus-events/internal/store"   // domain entity store
	"github.com/campusjive/campus-events/internal/suggest" // text-generation client
)

func main() {
	cfg := config.Load() // Load environment config

	// Select the persistence driver.  The store treats all three the same;
	// only the constructor differs.
	var kv store.KV
	switch cfg.StorageDriver {
	case "redis":
		rkv, err := store.NewRedisKV(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Fatalf("redis init failed: %v", err)
		}
		kv = rkv
	case "mysql":
		mkv, err := store.NewMySQLKV(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			log.Fatalf("mysql init failed: %v", err)
		}
		kv = mkv
	case "memory":
		kv = store.NewMemoryKV()
	default:
		log.Fatalf("unknown STORAGE_DRIVER: %q", cfg.StorageDriver)
	}

	// Load collections, seeding the built-in dataset on first run.
	st := store.Open(context.Background(), kv)

	gate := auth.NewGate(st, cfg.AdminUser, cfg.AdminPassHash)
	sgc := suggest.New(cfg.SuggestAPIURL, cfg.SuggestAPIKey, cfg.SuggestModel)

	// The decision consumer is optional infrastructure: it logs admin
	// decisions arriving on the broker and reconnects forever.
	if cfg.RabbitURL != "" {
		go func() {
			if err := queue.StartDecisionConsumer(); err != nil {
				log.Printf("decision consumer stopped: %v", err)
			}
		}()
	}

	e := echo.New() // Create Echo instance
	router.RegisterRoutes(e)
	router.RegisterPublic(e, handler.NewPublicHandler(st))
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, st, gate), cfg.JWTSecret)
	router.RegisterStudent(e, handler.NewBookingHandler(st), handler.NewSuggestHandler(st, sgc), cfg.JWTSecret)
	router.RegisterAdmin(e, handler.NewAdminHandler(st), cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, storage=%s)", addr, cfg.Env, cfg.StorageDriver)

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
