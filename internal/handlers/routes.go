package handlers

import "github.com/gofiber/fiber/v2"

// Register mounts every API route on the app.
func Register(app *fiber.App, dash *DashboardHandler, store *StoreHandler, health *HealthHandler) {
	api := app.Group("/api")

	api.Get("/health", health.Handle)

	// workspace-first reads
	api.Get("/agents", dash.Agents)
	api.Get("/agents/:id", dash.Agent)
	api.Get("/cron-health", dash.CronHealth)
	api.Get("/revenue", dash.Revenue)
	api.Get("/repos", dash.Repos)
	api.Get("/system-state", dash.SystemState)
	api.Get("/observations", dash.Observations)
	api.Get("/priorities", dash.Priorities)
	api.Get("/knowledge", dash.Knowledge)
	api.Get("/clients", dash.Clients)
	api.Get("/content-pipeline", dash.ContentPipeline)
	api.Get("/suggested-tasks", dash.SuggestedTasks)
	api.Post("/suggested-tasks", dash.MutateSuggestedTasks)
	api.Get("/chat-history", dash.ChatHistory)
	api.Post("/chat-send", dash.ChatSend)

	// store-owned collections
	api.Get("/tasks", store.ListTasks)
	api.Post("/tasks", store.CreateTask)
	api.Patch("/tasks/:id/status", store.UpdateTaskStatus)
	api.Get("/contacts", store.ListContacts)
	api.Post("/contacts", store.CreateContact)
	api.Get("/content-drafts", store.ListContentDrafts)
	api.Post("/content-drafts", store.CreateContentDraft)
	api.Patch("/content-drafts/:id/status", store.UpdateContentDraftStatus)
	api.Get("/calendar-events", store.ListCalendarEvents)
	api.Post("/calendar-events", store.CreateCalendarEvent)
	api.Delete("/calendar-events/:id", store.DeleteCalendarEvent)
	api.Get("/activities", store.ListActivities)
	api.Post("/activities", store.CreateActivity)
	api.Get("/ecosystem-products", store.ListEcosystemProducts)
	api.Post("/ecosystem-products", store.UpsertEcosystemProduct)
	api.Get("/ecosystem/:slug", store.EcosystemDetail)
}
