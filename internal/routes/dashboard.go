package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mwsasi/kandy-summer/internal/dashboard"
)

// RegisterDashboardRoutes wires the attendee management endpoints.
func RegisterDashboardRoutes(r fiber.Router, h *dashboard.Handler) {
	group := r.Group("/attendees")
	group.Get("", h.List)
	group.Get("/stats", h.Stats)
	group.Get("/export", h.Export)
	group.Post("/bulk/verified", h.BulkSetVerified)
	group.Post("/bulk/delete", h.BulkDelete)
	group.Get("/:id", h.Get)
	group.Patch("/:id/verified", h.SetVerified)
	group.Delete("/:id", h.Delete)
}
