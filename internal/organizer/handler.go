package organizer

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/mwsasi/kandy-summer/internal/session"
)

// Handler exposes account endpoints and drives the session lifecycle.
type Handler struct {
	service  *Service
	sessions *session.Manager
}

// NewHandler constructs an account HTTP handler.
func NewHandler(service *Service, sessions *session.Manager) *Handler {
	return &Handler{service: service, sessions: sessions}
}

type accountResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Signup creates an account and opens a session for it.
func (h *Handler) Signup(c *fiber.Ctx) error {
	var input SignupInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	o, err := h.service.Signup(c.UserContext(), input)
	if err != nil {
		if errors.Is(err, ErrDuplicateAccount) {
			return fiber.NewError(http.StatusConflict, err.Error())
		}
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := h.sessions.Open(c.UserContext(), session.Session{Email: o.Email, Name: o.Name}); err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusCreated).JSON(accountResponse{Email: o.Email, Name: o.Name})
}

// Login verifies credentials and opens a session.
func (h *Handler) Login(c *fiber.Ctx) error {
	var input LoginInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	o, err := h.service.Login(c.UserContext(), input)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return fiber.NewError(http.StatusUnauthorized, err.Error())
		}
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := h.sessions.Open(c.UserContext(), session.Session{Email: o.Email, Name: o.Name}); err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(accountResponse{Email: o.Email, Name: o.Name})
}

// Logout closes the active session.
func (h *Handler) Logout(c *fiber.Ctx) error {
	if err := h.sessions.Close(c.UserContext()); err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"status": "logged_out"})
}

// Me reports the signed-in organizer.
func (h *Handler) Me(c *fiber.Ctx) error {
	sess, ok := h.sessions.Current()
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "not signed in")
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"email":      sess.Email,
		"name":       sess.Name,
		"loggedInAt": sess.LoggedInAt,
	})
}
