package handlers

import (
	"missioncontrol/internal/content"

	"github.com/gofiber/fiber/v2"
)

// ContentPipeline returns the parsed content queue with per-status counts
func (h *DashboardHandler) ContentPipeline(c *fiber.Ctx) error {
	items := h.resolver.ContentPipeline(c.Context())
	return c.JSON(fiber.Map{
		"items":  items,
		"counts": content.Counts(items),
		"total":  len(items),
	})
}

// SuggestedTasks returns agent-proposed tasks awaiting review
func (h *DashboardHandler) SuggestedTasks(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"tasks": h.resolver.SuggestedTasks(c.Context())})
}

// MutateSuggestedTasks approves or rejects an existing task, or appends a
// new one. The mutation targets the workspace file; the mirror catches up on
// the next sync.
func (h *DashboardHandler) MutateSuggestedTasks(c *fiber.Ctx) error {
	var body struct {
		Action string                 `json:"action"`
		ID     string                 `json:"id"`
		Task   map[string]interface{} `json:"task"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}

	switch {
	case body.Action == "approve" && body.ID != "":
		return c.JSON(fiber.Map{"tasks": h.resolver.SetSuggestedTaskStatus(body.ID, "approved"), "success": true})
	case body.Action == "reject" && body.ID != "":
		return c.JSON(fiber.Map{"tasks": h.resolver.SetSuggestedTaskStatus(body.ID, "rejected"), "success": true})
	case body.Task != nil:
		return c.JSON(fiber.Map{"tasks": h.resolver.CreateSuggestedTask(body.Task), "success": true})
	}
	return c.Status(400).JSON(fiber.Map{"error": "action or task required"})
}
