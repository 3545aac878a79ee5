package handlers_fiber

import (
	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"

	"github.com/gofiber/fiber/v2"
)

// GetTeams lists platform teams.
func (h *Handler) GetTeams(c *fiber.Ctx) error {
	teams, err := h.uc.Teams(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return sendOK(c, teams)
}

// PostTeam creates a platform team.
func (h *Handler) PostTeam(c *fiber.Ctx) error {
	var body entities.Team
	if err := parseBody(c, &body); err != nil {
		return writeError(c, err)
	}
	team, err := h.uc.CreateTeam(c.Context(), body)
	if err != nil {
		h.log.Infow(err.Error())
		return writeError(c, err)
	}
	return created(c, team)
}

// GetTeam returns team with members by id.
func (h *Handler) GetTeam(c *fiber.Ctx) error {
	team, err := h.uc.Team(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return sendOK(c, team)
}

// PatchTeam updates a platform team.
func (h *Handler) PatchTeam(c *fiber.Ctx) error {
	var body entities.TeamPatch
	if err := parseBody(c, &body); err != nil {
		return writeError(c, err)
	}
	team, err := h.uc.UpdateTeam(c.Context(), c.Params("id"), body)
	if err != nil {
		return writeError(c, err)
	}
	return sendOK(c, team)
}

// DeleteTeam removes a platform team.
func (h *Handler) DeleteTeam(c *fiber.Ctx) error {
	if err := h.uc.DeleteTeam(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return noContent(c)
}
