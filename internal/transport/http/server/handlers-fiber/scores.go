package handlers_fiber

import (
	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"

	"github.com/gofiber/fiber/v2"
)

// GetScores lists the scores of one submission.
func (h *Handler) GetScores(c *fiber.Ctx) error {
	scores, err := h.uc.Scores(c.Context(), c.Params("id"), c.Params("submissionId"))
	if err != nil {
		return writeError(c, err)
	}
	return sendOK(c, scores)
}

// PostScore records a judge's score for a submission.
func (h *Handler) PostScore(c *fiber.Ctx) error {
	var body entities.JudgingScore
	if err := parseBody(c, &body); err != nil {
		return writeError(c, err)
	}
	score, err := h.uc.ScoreSubmission(c.Context(), c.Params("id"), c.Params("submissionId"), body)
	if err != nil {
		return writeError(c, err)
	}
	return created(c, score)
}

// GetEventScores lists every score of an event.
func (h *Handler) GetEventScores(c *fiber.Ctx) error {
	scores, err := h.uc.EventScores(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return sendOK(c, scores)
}

// PatchScore updates a score.
func (h *Handler) PatchScore(c *fiber.Ctx) error {
	var body entities.ScorePatch
	if err := parseBody(c, &body); err != nil {
		return writeError(c, err)
	}
	score, err := h.uc.UpdateScore(c.Context(), c.Params("id"), body)
	if err != nil {
		return writeError(c, err)
	}
	return sendOK(c, score)
}

// DeleteScore removes a score.
func (h *Handler) DeleteScore(c *fiber.Ctx) error {
	if err := h.uc.DeleteScore(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return noContent(c)
}
