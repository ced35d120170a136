package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// ChatHistory lists transcript sessions, or one session's messages when
// ?session= is given. q searches message content; channel filters both
// views.
func (h *DashboardHandler) ChatHistory(c *fiber.Ctx) error {
	sessionID := c.Query("session")
	search := c.Query("q")
	channel := c.Query("channel")
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)

	if sessionID != "" {
		messages, total, session := h.resolver.ChatMessages(sessionID, search, channel, limit, offset)
		if session == nil {
			return c.JSON(fiber.Map{"messages": messages, "error": "Session not found"})
		}
		return c.JSON(fiber.Map{"messages": messages, "total": total, "session": session})
	}

	sessions := h.resolver.ChatSessions(channel)
	total := len(sessions)
	if offset > len(sessions) {
		offset = len(sessions)
	}
	end := offset + limit
	if end > len(sessions) {
		end = len(sessions)
	}
	return c.JSON(fiber.Map{"sessions": sessions[offset:end], "total": total})
}

// ChatSend queues an outbound message for the agent runtime
func (h *DashboardHandler) ChatSend(c *fiber.Ctx) error {
	var body struct {
		Message string `json:"message"`
		Channel string `json:"channel"`
	}
	if err := c.BodyParser(&body); err != nil || body.Message == "" {
		return c.Status(400).JSON(fiber.Map{"error": "No message"})
	}
	if body.Channel == "" {
		body.Channel = "web"
	}

	queued, ok := h.resolver.QueueChatMessage(body.Message, body.Channel)
	if !ok {
		return c.Status(500).JSON(fiber.Map{"error": "failed to queue message"})
	}
	return c.JSON(fiber.Map{"success": true, "queued": queued})
}
