package handlers_fiber

import (
	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"

	"github.com/gofiber/fiber/v2"
)

// GetEvents lists events, filtered by status, organizerId and public.
func (h *Handler) GetEvents(c *fiber.Ctx) error {
	filter := entities.EventFilter{
		OrganizerID: c.Query("organizerId"),
		PublicOnly:  queryBool(c, "public"),
	}
	if s := c.Query("status"); s != "" {
		status := entities.EventStatus(s)
		filter.Status = &status
	}
	events, err := h.uc.Events(c.Context(), filter)
	if err != nil {
		return writeError(c, err)
	}
	return sendOK(c, events)
}

// PostEvent creates an event.
func (h *Handler) PostEvent(c *fiber.Ctx) error {
	var body entities.Event
	if err := parseBody(c, &body); err != nil {
		return writeError(c, err)
	}
	event, err := h.uc.CreateEvent(c.Context(), body)
	if err != nil {
		h.log.Infow("event create rejected", "error", err.Error())
		return writeError(c, err)
	}
	return created(c, event)
}

// GetEvent returns one event.
func (h *Handler) GetEvent(c *fiber.Ctx) error {
	event, err := h.uc.Event(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return sendOK(c, event)
}

// GetEventBySlug returns the event with the given slug.
func (h *Handler) GetEventBySlug(c *fiber.Ctx) error {
	event, err := h.uc.EventBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return writeError(c, err)
	}
	return sendOK(c, event)
}

// PatchEvent updates an event.
func (h *Handler) PatchEvent(c *fiber.Ctx) error {
	var body entities.EventPatch
	if err := parseBody(c, &body); err != nil {
		return writeError(c, err)
	}
	event, err := h.uc.UpdateEvent(c.Context(), c.Params("id"), body)
	if err != nil {
		return writeError(c, err)
	}
	return sendOK(c, event)
}

// DeleteEvent removes an event.
func (h *Handler) DeleteEvent(c *fiber.Ctx) error {
	if err := h.uc.DeleteEvent(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return noContent(c)
}
