package handlers_fiber

import (
	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"

	"github.com/gofiber/fiber/v2"
)

// GetJudges lists active judges; includeInactive=true lists all.
func (h *Handler) GetJudges(c *fiber.Ctx) error {
	judges, err := h.uc.Judges(c.Context(), entities.JudgeFilter{
		EventID:         c.Query("eventId"),
		IncludeInactive: queryBool(c, "includeInactive"),
	})
	if err != nil {
		return writeError(c, err)
	}
	return sendOK(c, judges)
}

// GetEventJudges lists the judges who may score an event.
func (h *Handler) GetEventJudges(c *fiber.Ctx) error {
	judges, err := h.uc.Judges(c.Context(), entities.JudgeFilter{
		EventID:         c.Params("id"),
		IncludeInactive: queryBool(c, "includeInactive"),
	})
	if err != nil {
		return writeError(c, err)
	}
	return sendOK(c, judges)
}

// PostJudge creates a judge.
func (h *Handler) PostJudge(c *fiber.Ctx) error {
	var body entities.Judge
	if err := parseBody(c, &body); err != nil {
		return writeError(c, err)
	}
	judge, err := h.uc.CreateJudge(c.Context(), body)
	if err != nil {
		return writeError(c, err)
	}
	return created(c, judge)
}

// GetJudge returns one judge, active or not.
func (h *Handler) GetJudge(c *fiber.Ctx) error {
	judge, err := h.uc.Judge(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return sendOK(c, judge)
}

// PatchJudge updates a judge.
func (h *Handler) PatchJudge(c *fiber.Ctx) error {
	var body entities.JudgePatch
	if err := parseBody(c, &body); err != nil {
		return writeError(c, err)
	}
	judge, err := h.uc.UpdateJudge(c.Context(), c.Params("id"), body)
	if err != nil {
		return writeError(c, err)
	}
	return sendOK(c, judge)
}

// DeleteJudge deactivates a judge.
func (h *Handler) DeleteJudge(c *fiber.Ctx) error {
	if _, err := h.uc.DeactivateJudge(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return noContent(c)
}
