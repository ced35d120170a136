package main

import (
	"context"
	"log"
	"time"

	"missioncontrol/internal/config"
	"missioncontrol/internal/database"
	"missioncontrol/internal/gitscan"
	"missioncontrol/internal/logging"
	"missioncontrol/internal/services"
	"missioncontrol/internal/syncer"
	"missioncontrol/internal/workspace"

	"github.com/joho/godotenv"
)

// One-shot sync: read live machine state and push it to the mirror. Meant to
// run from cron; exits 0 even when individual sources fail, since the next
// run retries everything anyway.
func main() {
	log.SetFlags(log.LstdFlags)
	logging.Init()

	if err := godotenv.Load(); err == nil {
		log.Println("✅ .env file loaded successfully")
	}

	cfg := config.Load()
	if cfg.MongoURI == "" {
		log.Fatal("❌ MONGODB_URI environment variable is required")
	}

	db, err := database.NewMongoDB(cfg.MongoURI)
	if err != nil {
		log.Fatalf("❌ Failed to connect to MongoDB: %v", err)
	}
	defer db.Close(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := db.Initialize(ctx); err != nil {
		log.Fatalf("❌ Failed to initialize collections: %v", err)
	}
	cancel()

	ws := workspace.New(cfg.WorkspacePath)
	scanner := gitscan.NewScanner(cfg.ProjectsDir)
	scanner.Timeout = cfg.GitTimeout

	pipeline := syncer.New(services.NewMirrorStore(db), ws, scanner, cfg.GitTimeout)

	runCtx, cancelRun := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancelRun()

	outcomes := pipeline.Run(runCtx)
	failed := 0
	for _, out := range outcomes {
		if out.Status == syncer.StatusFailed {
			failed++
		}
	}
	if failed > 0 {
		log.Printf("⚠️ Sync finished with %d/%d sources failed", failed, len(outcomes))
	} else {
		log.Println("✅ Sync finished")
	}
}
