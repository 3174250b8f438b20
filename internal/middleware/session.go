package middleware

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/mwsasi/kandy-summer/internal/session"
)

// RequireSession gates dashboard routes on a signed-in organizer. The
// application serves a single operator, so the check is against the one
// process-wide session rather than a per-request token.
func RequireSession(sessions *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, ok := sessions.Current()
		if !ok {
			return fiber.NewError(http.StatusUnauthorized, "sign in required")
		}
		c.Locals("organizer_email", sess.Email)
		return c.Next()
	}
}
