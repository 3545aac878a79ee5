package handlers_fiber

import (
	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"

	"github.com/gofiber/fiber/v2"
)

// GetParticipants lists an event's registrations.
func (h *Handler) GetParticipants(c *fiber.Ctx) error {
	list, err := h.uc.Participants(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return sendOK(c, list)
}

// PostParticipant registers a user for an event.
func (h *Handler) PostParticipant(c *fiber.Ctx) error {
	var body entities.EventParticipant
	if err := parseBody(c, &body); err != nil {
		return writeError(c, err)
	}
	p, err := h.uc.RegisterParticipant(c.Context(), c.Params("id"), body)
	if err != nil {
		return writeError(c, err)
	}
	return created(c, p)
}

// PatchParticipant updates a registration.
func (h *Handler) PatchParticipant(c *fiber.Ctx) error {
	var body entities.ParticipantPatch
	if err := parseBody(c, &body); err != nil {
		return writeError(c, err)
	}
	p, err := h.uc.UpdateParticipant(c.Context(), c.Params("id"), c.Params("participantId"), body)
	if err != nil {
		return writeError(c, err)
	}
	return sendOK(c, p)
}

// DeleteParticipant cancels a registration.
func (h *Handler) DeleteParticipant(c *fiber.Ctx) error {
	if err := h.uc.RemoveParticipant(c.Context(), c.Params("id"), c.Params("participantId")); err != nil {
		return writeError(c, err)
	}
	return noContent(c)
}
