package handlers

import (
	"time"

	"missioncontrol/internal/resolve"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler serves the mirror-backed read endpoints. Every GET
// answers 200 with a populated or default shape; absence of data is never an
// error to the dashboard.
type DashboardHandler struct {
	resolver *resolve.Resolver
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(resolver *resolve.Resolver) *DashboardHandler {
	return &DashboardHandler{resolver: resolver}
}

// Agents returns all registered agents
func (h *DashboardHandler) Agents(c *fiber.Ctx) error {
	agents := h.resolver.Agents(c.Context())
	return c.JSON(fiber.Map{"agents": agents, "count": len(agents)})
}

// Agent returns the detail view for one agent
func (h *DashboardHandler) Agent(c *fiber.Ctx) error {
	return c.JSON(h.resolver.Agent(c.Context(), c.Params("id")))
}

// CronHealth returns the cron job registry
func (h *DashboardHandler) CronHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"crons":     h.resolver.Crons(c.Context()),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Revenue returns the revenue snapshot
func (h *DashboardHandler) Revenue(c *fiber.Ctx) error {
	return c.JSON(h.resolver.Revenue(c.Context()))
}

// Repos returns the project repository listing
func (h *DashboardHandler) Repos(c *fiber.Ctx) error {
	repos := h.resolver.Repos(c.Context())
	return c.JSON(fiber.Map{"repos": repos, "count": len(repos)})
}

// SystemState returns the server inventory and branch status
func (h *DashboardHandler) SystemState(c *fiber.Ctx) error {
	servers, branches := h.resolver.SystemStatus(c.Context())
	return c.JSON(fiber.Map{
		"servers":   servers,
		"branches":  branches,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Observations returns the parsed observations log
func (h *DashboardHandler) Observations(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"observations": h.resolver.Observations(c.Context())})
}

// Priorities returns the shared priorities document
func (h *DashboardHandler) Priorities(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"content":   h.resolver.Priorities(c.Context()),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Knowledge searches the workspace for a query string
func (h *DashboardHandler) Knowledge(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return c.JSON(fiber.Map{"results": []interface{}{}, "error": "No query provided"})
	}
	results := h.resolver.Search(query)
	return c.JSON(fiber.Map{"results": results, "count": len(results), "query": query})
}

// Clients returns the parsed client records
func (h *DashboardHandler) Clients(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"clients": h.resolver.Clients()})
}
