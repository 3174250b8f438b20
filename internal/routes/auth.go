package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mwsasi/kandy-summer/internal/organizer"
)

// RegisterAuthRoutes wires account and session endpoints.
func RegisterAuthRoutes(r fiber.Router, h *organizer.Handler) {
	group := r.Group("/auth")
	group.Post("/signup", h.Signup)
	group.Post("/login", h.Login)
	group.Post("/logout", h.Logout)
	group.Get("/me", h.Me)
}
