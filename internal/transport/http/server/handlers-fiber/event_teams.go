package handlers_fiber

import (
	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"

	"github.com/gofiber/fiber/v2"
)

type memberRequest struct {
	UserID string `json:"userId"`
}

// GetEventTeams lists an event's teams.
func (h *Handler) GetEventTeams(c *fiber.Ctx) error {
	teams, err := h.uc.EventTeams(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return sendOK(c, teams)
}

// PostEventTeam forms a team inside an event.
func (h *Handler) PostEventTeam(c *fiber.Ctx) error {
	var body entities.EventTeam
	if err := parseBody(c, &body); err != nil {
		return writeError(c, err)
	}
	team, err := h.uc.CreateEventTeam(c.Context(), c.Params("id"), body)
	if err != nil {
		return writeError(c, err)
	}
	return created(c, team)
}

// GetEventTeam returns one event team.
func (h *Handler) GetEventTeam(c *fiber.Ctx) error {
	team, err := h.uc.EventTeam(c.Context(), c.Params("id"), c.Params("teamId"))
	if err != nil {
		return writeError(c, err)
	}
	return sendOK(c, team)
}

// PatchEventTeam updates an event team.
func (h *Handler) PatchEventTeam(c *fiber.Ctx) error {
	var body entities.EventTeamPatch
	if err := parseBody(c, &body); err != nil {
		return writeError(c, err)
	}
	team, err := h.uc.UpdateEventTeam(c.Context(), c.Params("id"), c.Params("teamId"), body)
	if err != nil {
		return writeError(c, err)
	}
	return sendOK(c, team)
}

// DeleteEventTeam disbands an event team.
func (h *Handler) DeleteEventTeam(c *fiber.Ctx) error {
	if err := h.uc.DeleteEventTeam(c.Context(), c.Params("id"), c.Params("teamId")); err != nil {
		return writeError(c, err)
	}
	return noContent(c)
}

// PostTeamMember adds a user to an event team.
func (h *Handler) PostTeamMember(c *fiber.Ctx) error {
	var body memberRequest
	if err := parseBody(c, &body); err != nil {
		return writeError(c, err)
	}
	team, err := h.uc.AddTeamMember(c.Context(), c.Params("id"), c.Params("teamId"), body.UserID)
	if err != nil {
		return writeError(c, err)
	}
	return created(c, team)
}

// DeleteTeamMember removes a user from an event team.
func (h *Handler) DeleteTeamMember(c *fiber.Ctx) error {
	if _, err := h.uc.RemoveTeamMember(c.Context(), c.Params("id"), c.Params("teamId"), c.Params("userId")); err != nil {
		return writeError(c, err)
	}
	return noContent(c)
}
