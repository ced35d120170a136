package handlers

import (
	"missioncontrol/internal/models"
	"missioncontrol/internal/resolve"
	"missioncontrol/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StoreHandler serves the store-owned collections: data the dashboard itself
// creates and edits, with the database as the only source of truth. All
// stores are nil when the server runs without a database; reads then degrade
// to empty shapes and writes answer 503.
type StoreHandler struct {
	resolver  *resolve.Resolver
	tasks     *services.TaskStore
	contacts  *services.ContactStore
	drafts    *services.ContentDraftStore
	calendar  *services.CalendarStore
	activity  *services.ActivityStore
	ecosystem *services.EcosystemStore
}

// NewStoreHandler creates a new store handler. Every store may be nil.
func NewStoreHandler(
	resolver *resolve.Resolver,
	tasks *services.TaskStore,
	contacts *services.ContactStore,
	drafts *services.ContentDraftStore,
	calendar *services.CalendarStore,
	activity *services.ActivityStore,
	ecosystem *services.EcosystemStore,
) *StoreHandler {
	return &StoreHandler{
		resolver:  resolver,
		tasks:     tasks,
		contacts:  contacts,
		drafts:    drafts,
		calendar:  calendar,
		activity:  activity,
		ecosystem: ecosystem,
	}
}

func storeUnavailable(c *fiber.Ctx) error {
	return c.Status(503).JSON(fiber.Map{"error": "store unavailable"})
}

// ListTasks returns dashboard tasks, optionally filtered by ?status=
func (h *StoreHandler) ListTasks(c *fiber.Ctx) error {
	if h.tasks == nil {
		return c.JSON(fiber.Map{"tasks": []models.Task{}})
	}
	tasks, err := h.tasks.List(c.Context(), c.Query("status"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"tasks": tasks})
}

// CreateTask creates a dashboard task
func (h *StoreHandler) CreateTask(c *fiber.Ctx) error {
	if h.tasks == nil {
		return storeUnavailable(c)
	}
	var task models.Task
	if err := c.BodyParser(&task); err != nil || task.Title == "" {
		return c.Status(400).JSON(fiber.Map{"error": "title required"})
	}
	if task.Status == "" {
		task.Status = "todo"
	}
	if task.Priority == "" {
		task.Priority = "medium"
	}
	if err := h.tasks.Create(c.Context(), &task); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(task)
}

// UpdateTaskStatus patches one task's status
func (h *StoreHandler) UpdateTaskStatus(c *fiber.Ctx) error {
	if h.tasks == nil {
		return storeUnavailable(c)
	}
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid task ID"})
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil || body.Status == "" {
		return c.Status(400).JSON(fiber.Map{"error": "status required"})
	}
	if err := h.tasks.UpdateStatus(c.Context(), id, body.Status); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}

// ListContacts returns all contacts
func (h *StoreHandler) ListContacts(c *fiber.Ctx) error {
	if h.contacts == nil {
		return c.JSON(fiber.Map{"contacts": []models.Contact{}})
	}
	contacts, err := h.contacts.List(c.Context())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"contacts": contacts})
}

// CreateContact creates a contact
func (h *StoreHandler) CreateContact(c *fiber.Ctx) error {
	if h.contacts == nil {
		return storeUnavailable(c)
	}
	var contact models.Contact
	if err := c.BodyParser(&contact); err != nil || contact.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "name required"})
	}
	if err := h.contacts.Create(c.Context(), &contact); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(contact)
}

// ListContentDrafts returns drafts, optionally filtered by ?status=
func (h *StoreHandler) ListContentDrafts(c *fiber.Ctx) error {
	if h.drafts == nil {
		return c.JSON(fiber.Map{"drafts": []models.ContentDraft{}})
	}
	drafts, err := h.drafts.List(c.Context(), c.Query("status"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"drafts": drafts})
}

// CreateContentDraft creates a draft
func (h *StoreHandler) CreateContentDraft(c *fiber.Ctx) error {
	if h.drafts == nil {
		return storeUnavailable(c)
	}
	var draft models.ContentDraft
	if err := c.BodyParser(&draft); err != nil || draft.Title == "" {
		return c.Status(400).JSON(fiber.Map{"error": "title required"})
	}
	if draft.Platform == "" {
		draft.Platform = "general"
	}
	if draft.Status == "" {
		draft.Status = "draft"
	}
	if err := h.drafts.Create(c.Context(), &draft); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(draft)
}

// UpdateContentDraftStatus patches one draft's status
func (h *StoreHandler) UpdateContentDraftStatus(c *fiber.Ctx) error {
	if h.drafts == nil {
		return storeUnavailable(c)
	}
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid draft ID"})
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil || body.Status == "" {
		return c.Status(400).JSON(fiber.Map{"error": "status required"})
	}
	if err := h.drafts.UpdateStatus(c.Context(), id, body.Status); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}

// ListCalendarEvents returns events inside the optional ?after=/?before=
// window (Unix milliseconds)
func (h *StoreHandler) ListCalendarEvents(c *fiber.Ctx) error {
	if h.calendar == nil {
		return c.JSON(fiber.Map{"events": []models.CalendarEvent{}})
	}
	after := int64(c.QueryInt("after", 0))
	before := int64(c.QueryInt("before", 0))
	events, err := h.calendar.List(c.Context(), after, before)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"events": events})
}

// CreateCalendarEvent creates an event
func (h *StoreHandler) CreateCalendarEvent(c *fiber.Ctx) error {
	if h.calendar == nil {
		return storeUnavailable(c)
	}
	var event models.CalendarEvent
	if err := c.BodyParser(&event); err != nil || event.Title == "" {
		return c.Status(400).JSON(fiber.Map{"error": "title required"})
	}
	if event.Type == "" {
		event.Type = "general"
	}
	if err := h.calendar.Create(c.Context(), &event); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(event)
}

// DeleteCalendarEvent removes an event
func (h *StoreHandler) DeleteCalendarEvent(c *fiber.Ctx) error {
	if h.calendar == nil {
		return storeUnavailable(c)
	}
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid event ID"})
	}
	if err := h.calendar.Delete(c.Context(), id); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}

// ListActivities returns the latest activity entries (?limit=, default 50)
func (h *StoreHandler) ListActivities(c *fiber.Ctx) error {
	if h.activity == nil {
		return c.JSON(fiber.Map{"activities": []models.Activity{}})
	}
	activities, err := h.activity.List(c.Context(), c.QueryInt("limit", 50))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"activities": activities})
}

// CreateActivity appends to the activity feed
func (h *StoreHandler) CreateActivity(c *fiber.Ctx) error {
	if h.activity == nil {
		return storeUnavailable(c)
	}
	var activity models.Activity
	if err := c.BodyParser(&activity); err != nil || activity.Message == "" {
		return c.Status(400).JSON(fiber.Map{"error": "message required"})
	}
	if activity.Type == "" {
		activity.Type = "info"
	}
	if err := h.activity.Create(c.Context(), &activity); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(activity)
}

// ListEcosystemProducts returns all product cards
func (h *StoreHandler) ListEcosystemProducts(c *fiber.Ctx) error {
	if h.ecosystem == nil {
		return c.JSON(fiber.Map{"products": []models.EcosystemProduct{}})
	}
	products, err := h.ecosystem.List(c.Context())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"products": products})
}

// UpsertEcosystemProduct creates or replaces a product card by slug
func (h *StoreHandler) UpsertEcosystemProduct(c *fiber.Ctx) error {
	if h.ecosystem == nil {
		return storeUnavailable(c)
	}
	var product models.EcosystemProduct
	if err := c.BodyParser(&product); err != nil || product.Slug == "" {
		return c.Status(400).JSON(fiber.Map{"error": "slug required"})
	}
	if err := h.ecosystem.Upsert(c.Context(), &product); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(product)
}

// EcosystemDetail merges the workspace document for a product with its
// stored card, when either exists
func (h *StoreHandler) EcosystemDetail(c *fiber.Ctx) error {
	slug := c.Params("slug")
	doc := h.resolver.Ecosystem(slug)

	var product *models.EcosystemProduct
	if h.ecosystem != nil {
		product, _ = h.ecosystem.GetBySlug(c.Context(), slug)
	}
	return c.JSON(fiber.Map{
		"slug":    slug,
		"content": doc.Content,
		"data":    doc.Data,
		"product": product,
	})
}
