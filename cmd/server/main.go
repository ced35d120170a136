package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"missioncontrol/internal/config"
	"missioncontrol/internal/database"
	"missioncontrol/internal/gitscan"
	"missioncontrol/internal/handlers"
	"missioncontrol/internal/jobs"
	"missioncontrol/internal/logging"
	"missioncontrol/internal/resolve"
	"missioncontrol/internal/services"
	"missioncontrol/internal/syncer"
	"missioncontrol/internal/workspace"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	startTime := time.Now()

	// Initialize structured logging (JSON in production, text in dev)
	logging.Init()

	log.Println("🚀 Starting Mission Control Server...")

	// Load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️  No .env file found or error loading it: %v", err)
	} else {
		log.Println("✅ .env file loaded successfully")
	}

	// Load configuration
	cfg := config.Load()
	log.Printf("📋 Configuration loaded (Port: %s, Workspace: %s)", cfg.Port, cfg.WorkspacePath)

	ws := workspace.New(cfg.WorkspacePath)
	scanner := gitscan.NewScanner(cfg.ProjectsDir)
	scanner.Timeout = cfg.GitTimeout

	// Initialize MongoDB (optional - without it the dashboard serves
	// workspace data only and store-owned endpoints degrade)
	var db *database.MongoDB
	var remote resolve.Remote
	if cfg.MongoURI != "" {
		log.Println("🔗 Connecting to MongoDB...")
		var err error
		db, err = database.NewMongoDB(cfg.MongoURI)
		if err != nil {
			log.Printf("⚠️ Failed to connect to MongoDB: %v (mirror fallback disabled)", err)
			db = nil
		} else {
			defer db.Close(context.Background())
			log.Println("✅ MongoDB connected successfully")

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			if err := db.Initialize(ctx); err != nil {
				log.Printf("⚠️ Failed to initialize collections: %v", err)
			}
			cancel()

			remote = services.NewMirrorStore(db)
		}
	} else {
		log.Println("⚠️ MONGODB_URI not set - mirror fallback disabled")
	}

	resolver := resolve.New(ws, remote, scanner)

	// Watch the workspace so cached results never outlive a file edit
	watchCtx, stopWatch := context.WithCancel(context.Background())
	defer stopWatch()
	go func() {
		if err := resolver.Watch(watchCtx); err != nil && watchCtx.Err() == nil {
			log.Printf("⚠️ Workspace watcher stopped: %v", err)
		}
	}()

	// Store-owned collections (nil stores without a database)
	var taskStore *services.TaskStore
	var contactStore *services.ContactStore
	var draftStore *services.ContentDraftStore
	var calendarStore *services.CalendarStore
	var activityStore *services.ActivityStore
	var ecosystemStore *services.EcosystemStore
	if db != nil {
		taskStore = services.NewTaskStore(db)
		contactStore = services.NewContactStore(db)
		draftStore = services.NewContentDraftStore(db)
		calendarStore = services.NewCalendarStore(db)
		activityStore = services.NewActivityStore(db)
		ecosystemStore = services.NewEcosystemStore(db)
		log.Println("✅ Store services initialized")
	}

	// In-process sync scheduler (optional - cron driving cmd/sync works too)
	var syncScheduler *jobs.SyncScheduler
	if cfg.SyncInterval > 0 && db != nil {
		pipeline := syncer.New(services.NewMirrorStore(db), ws, scanner, cfg.GitTimeout)
		var err error
		syncScheduler, err = jobs.NewSyncScheduler(pipeline, cfg.SyncInterval)
		if err != nil {
			log.Printf("⚠️ Failed to create sync scheduler: %v", err)
		} else if err := syncScheduler.Start(); err != nil {
			log.Printf("⚠️ Failed to start sync scheduler: %v", err)
		}
	}

	// Initialize Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Mission Control v1.0",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())

	// Prometheus metrics middleware
	prometheus := fiberprometheus.New("missioncontrol")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)
	log.Println("📊 Prometheus metrics endpoint enabled at /metrics")

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	// Routes
	dash := handlers.NewDashboardHandler(resolver)
	store := handlers.NewStoreHandler(resolver, taskStore, contactStore, draftStore, calendarStore, activityStore, ecosystemStore)
	health := handlers.NewHealthHandler(db, startTime)
	handlers.Register(app, dash, store, health)
	log.Println("✅ Routes registered")

	// Handle graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("\n🛑 Shutting down server...")

		stopWatch()
		if syncScheduler != nil {
			syncScheduler.Stop()
		}

		if err := app.Shutdown(); err != nil {
			log.Printf("⚠️ Error shutting down server: %v", err)
		}
	}()

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
