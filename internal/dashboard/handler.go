package dashboard

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mwsasi/kandy-summer/internal/attendee"
)

// Handler exposes the dashboard endpoints. All of them sit behind the session
// gate.
type Handler struct {
	controller *Controller
}

// NewHandler builds a dashboard HTTP handler.
func NewHandler(controller *Controller) *Handler {
	return &Handler{controller: controller}
}

func filtersFromQuery(c *fiber.Ctx) attendee.Filters {
	return attendee.Filters{
		Search:  c.Query("search"),
		Tickets: c.Query("tickets", attendee.FilterAll),
		Status:  c.Query("status", attendee.FilterAll),
		Sort:    c.Query("sort", attendee.SortNewest),
	}
}

// List returns the filtered, sorted attendee view.
func (h *Handler) List(c *fiber.Ctx) error {
	list, err := h.controller.List(c.UserContext(), filtersFromQuery(c))
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"attendees": list,
		"count":     len(list),
	})
}

// Get returns one full record for the review modal.
func (h *Handler) Get(c *fiber.Ctx) error {
	a, err := h.controller.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, attendee.ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, err.Error())
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(a)
}

// Stats returns aggregates over the full collection.
func (h *Handler) Stats(c *fiber.Ctx) error {
	stats, err := h.controller.Stats(c.UserContext())
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(stats)
}

type verifyRequest struct {
	Verified bool `json:"verified"`
}

// SetVerified flips the verification flag on one record.
func (h *Handler) SetVerified(c *fiber.Ctx) error {
	var req verifyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := h.controller.SetVerified(c.UserContext(), c.Params("id"), req.Verified); err != nil {
		if errors.Is(err, attendee.ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, err.Error())
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"id": c.Params("id"), "verified": req.Verified})
}

// Delete removes one record. The confirm flag is the explicit confirmation
// step; deletes without it are refused.
func (h *Handler) Delete(c *fiber.Ctx) error {
	if !c.QueryBool("confirm") {
		return fiber.NewError(http.StatusBadRequest, "delete requires confirm=true")
	}
	if err := h.controller.Delete(c.UserContext(), SingleTarget(c.Params("id"))); err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.SendStatus(http.StatusNoContent)
}

type bulkVerifyRequest struct {
	IDs      []string `json:"ids"`
	Verified bool     `json:"verified"`
}

// BulkSetVerified overwrites the verification flag across a selection.
func (h *Handler) BulkSetVerified(c *fiber.Ctx) error {
	var req bulkVerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := h.controller.BulkSetVerified(c.UserContext(), req.IDs, req.Verified); err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"updated": len(req.IDs), "verified": req.Verified})
}

type bulkDeleteRequest struct {
	IDs     []string `json:"ids"`
	Confirm bool     `json:"confirm"`
}

// BulkDelete removes a selection after explicit confirmation.
func (h *Handler) BulkDelete(c *fiber.Ctx) error {
	var req bulkDeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if !req.Confirm {
		return fiber.NewError(http.StatusBadRequest, "bulk delete requires confirm")
	}
	if err := h.controller.Delete(c.UserContext(), BulkTarget(req.IDs)); err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.SendStatus(http.StatusNoContent)
}

// Export streams the currently filtered list as a CSV download. An empty
// filtered list yields 204 and no file.
func (h *Handler) Export(c *fiber.Ctx) error {
	list, err := h.controller.List(c.UserContext(), filtersFromQuery(c))
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	content, err := ExportCSV(list)
	if err != nil {
		if errors.Is(err, ErrNoRows) {
			return c.SendStatus(http.StatusNoContent)
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+ExportFilename(time.Now())+`"`)
	return c.Status(http.StatusOK).SendString(content)
}
