package handlers_fiber

import (
	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"

	"github.com/gofiber/fiber/v2"
)

// GetSubmissions lists platform projects.
func (h *Handler) GetSubmissions(c *fiber.Ctx) error {
	subs, err := h.uc.Submissions(c.Context(), submissionFilter(c))
	if err != nil {
		return writeError(c, err)
	}
	return sendOK(c, subs)
}

// PostSubmission creates a platform project.
func (h *Handler) PostSubmission(c *fiber.Ctx) error {
	var body entities.Submission
	if err := parseBody(c, &body); err != nil {
		return writeError(c, err)
	}
	sub, err := h.uc.CreateSubmission(c.Context(), body)
	if err != nil {
		return writeError(c, err)
	}
	return created(c, sub)
}

// GetSubmission returns one project.
func (h *Handler) GetSubmission(c *fiber.Ctx) error {
	sub, err := h.uc.Submission(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return sendOK(c, sub)
}

// PatchSubmission updates a project.
func (h *Handler) PatchSubmission(c *fiber.Ctx) error {
	var body entities.SubmissionPatch
	if err := parseBody(c, &body); err != nil {
		return writeError(c, err)
	}
	sub, err := h.uc.UpdateSubmission(c.Context(), c.Params("id"), body)
	if err != nil {
		return writeError(c, err)
	}
	return sendOK(c, sub)
}

// DeleteSubmission removes a project.
func (h *Handler) DeleteSubmission(c *fiber.Ctx) error {
	if err := h.uc.DeleteSubmission(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return noContent(c)
}
