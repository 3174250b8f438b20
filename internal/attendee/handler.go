package attendee

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the public registration endpoint.
type Handler struct {
	service *Service
}

// NewHandler constructs a registration HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type registerResponse struct {
	ID           string `json:"id"`
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	TicketCount  int    `json:"ticketCount"`
	RegisteredAt string `json:"registrationDate"`
}

// Register accepts a new attendee registration.
func (h *Handler) Register(c *fiber.Ctx) error {
	var input RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	a, err := h.service.Register(c.UserContext(), input)
	if err != nil {
		switch {
		case errors.Is(err, ErrDocumentTooLarge):
			return fiber.NewError(http.StatusRequestEntityTooLarge, err.Error())
		case errors.Is(err, ErrDuplicateEmail):
			return fiber.NewError(http.StatusConflict, err.Error())
		default:
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}
	}
	return c.Status(http.StatusCreated).JSON(registerResponse{
		ID:           a.ID,
		FullName:     a.FullName,
		Email:        a.Email,
		TicketCount:  a.TicketCount,
		RegisteredAt: a.RegisteredAt.Format(time.RFC3339),
	})
}
