package routes

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/mwsasi/kandy-summer/internal/attendee"
	"github.com/mwsasi/kandy-summer/internal/config"
	"github.com/mwsasi/kandy-summer/internal/dashboard"
	"github.com/mwsasi/kandy-summer/internal/middleware"
	"github.com/mwsasi/kandy-summer/internal/notification"
	"github.com/mwsasi/kandy-summer/internal/organizer"
	"github.com/mwsasi/kandy-summer/internal/session"
	"github.com/mwsasi/kandy-summer/internal/store"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger

	// Sessions is optional; Setup builds one over the selected store when
	// absent and restores any persisted session.
	Sessions *session.Manager
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Audit(d.Logger))

	// Collection store backend: Postgres when configured, else Redis, else
	// in-process memory for local runs.
	var db store.Store
	switch {
	case d.DB != nil:
		pg := store.NewPostgres(d.DB)
		if err := pg.EnsureSchema(context.Background()); err != nil {
			return err
		}
		db = pg
	case d.Cache != nil:
		db = store.NewRedis(d.Cache)
	default:
		db = store.NewMemory()
	}

	attendeeRepo := attendee.NewRepository(db)
	organizerRepo := organizer.NewRepository(db)

	sessions := d.Sessions
	if sessions == nil {
		sessions = session.NewManager(db)
		if sess, ok, err := sessions.Restore(context.Background()); err != nil {
			return err
		} else if ok {
			d.Logger.Info("session restored", "email", sess.Email)
		}
	}

	notifier := notification.NewLoggerNotifier(d.Logger)
	registrationSvc := attendee.NewService(attendeeRepo, attendee.ServiceConfig{
		SubmitDelay:      d.Cfg.SubmitDelay,
		AllowRepeatEmail: d.Cfg.AllowRepeatEmail,
		MaxDocumentBytes: d.Cfg.MaxDocumentBytes,
	}, notifier)
	accountSvc := organizer.NewService(organizerRepo, d.Cfg.AuthDelay)
	controller := dashboard.NewController(attendeeRepo, d.Cfg.EventCapacity, d.Logger)

	registrationHandler := attendee.NewHandler(registrationSvc)
	accountHandler := organizer.NewHandler(accountSvc, sessions)
	dashboardHandler := dashboard.NewHandler(controller)

	RegisterHealthRoutes(app, d)

	api := app.Group("/api/v1")
	api.Get("/ping", func(c *fiber.Ctx) error {
		reqID, _ := c.Locals("X-Request-ID").(string)
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": reqID,
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	// Public routes
	api.Post("/register", registrationHandler.Register)
	RegisterAuthRoutes(api, accountHandler)

	// Organizer dashboard, gated on the active session
	protected := api.Group("", middleware.RequireSession(sessions))
	RegisterDashboardRoutes(protected, dashboardHandler)

	return nil
}
