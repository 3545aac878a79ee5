package handlers_fiber

import (
	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"

	"github.com/gofiber/fiber/v2"
)

// GetSponsors lists an event's sponsors by tier.
func (h *Handler) GetSponsors(c *fiber.Ctx) error {
	sponsors, err := h.uc.Sponsors(c.Context(), c.Params("id"), queryBool(c, "includeInactive"))
	if err != nil {
		return writeError(c, err)
	}
	return sendOK(c, sponsors)
}

// PostSponsor attaches a sponsor to an event.
func (h *Handler) PostSponsor(c *fiber.Ctx) error {
	var body entities.EventSponsor
	if err := parseBody(c, &body); err != nil {
		return writeError(c, err)
	}
	sponsor, err := h.uc.CreateSponsor(c.Context(), c.Params("id"), body)
	if err != nil {
		return writeError(c, err)
	}
	return created(c, sponsor)
}

// PatchSponsor updates a sponsor.
func (h *Handler) PatchSponsor(c *fiber.Ctx) error {
	var body entities.SponsorPatch
	if err := parseBody(c, &body); err != nil {
		return writeError(c, err)
	}
	sponsor, err := h.uc.UpdateSponsor(c.Context(), c.Params("id"), body)
	if err != nil {
		return writeError(c, err)
	}
	return sendOK(c, sponsor)
}

// DeleteSponsor deactivates a sponsor.
func (h *Handler) DeleteSponsor(c *fiber.Ctx) error {
	if _, err := h.uc.DeactivateSponsor(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return noContent(c)
}
