package handlers

import (
	"fmt"
	"runtime"
	"time"

	"missioncontrol/internal/database"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler reports process health and database reachability
type HealthHandler struct {
	db        *database.MongoDB
	startTime time.Time
}

// NewHealthHandler creates a new health handler. db may be nil.
func NewHealthHandler(db *database.MongoDB, startTime time.Time) *HealthHandler {
	return &HealthHandler{db: db, startTime: startTime}
}

// Handle responds with server health status
func (h *HealthHandler) Handle(c *fiber.Ctx) error {
	uptime := int(time.Since(h.startTime).Seconds())

	dbStatus := "disconnected"
	if h.db != nil {
		if err := h.db.Ping(c.Context()); err == nil {
			dbStatus = "connected"
		}
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return c.JSON(fiber.Map{
		"status":          "ok",
		"uptime":          uptime,
		"uptimeFormatted": fmt.Sprintf("%dh %dm", uptime/3600, (uptime%3600)/60),
		"database":        dbStatus,
		"memory": fiber.Map{
			"alloc": mem.Alloc / 1024 / 1024,
			"sys":   mem.Sys / 1024 / 1024,
		},
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
