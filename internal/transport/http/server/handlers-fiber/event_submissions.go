package handlers_fiber

import (
	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"

	"github.com/gofiber/fiber/v2"
)

func submissionFilter(c *fiber.Ctx) entities.SubmissionFilter {
	filter := entities.SubmissionFilter{
		EventID: c.Query("eventId"),
		TeamID:  c.Query("teamId"),
		Track:   c.Query("track"),
	}
	if s := c.Query("status"); s != "" {
		status := entities.SubmissionStatus(s)
		filter.Status = &status
	}
	return filter
}

// GetEventSubmissions lists an event's submissions.
func (h *Handler) GetEventSubmissions(c *fiber.Ctx) error {
	subs, err := h.uc.EventSubmissions(c.Context(), c.Params("id"), submissionFilter(c))
	if err != nil {
		return writeError(c, err)
	}
	return sendOK(c, subs)
}

// PostEventSubmission submits a project to an event.
func (h *Handler) PostEventSubmission(c *fiber.Ctx) error {
	var body entities.EventSubmission
	if err := parseBody(c, &body); err != nil {
		return writeError(c, err)
	}
	sub, err := h.uc.CreateEventSubmission(c.Context(), c.Params("id"), body)
	if err != nil {
		return writeError(c, err)
	}
	return created(c, sub)
}

// GetEventSubmission returns one event submission.
func (h *Handler) GetEventSubmission(c *fiber.Ctx) error {
	sub, err := h.uc.EventSubmission(c.Context(), c.Params("id"), c.Params("submissionId"))
	if err != nil {
		return writeError(c, err)
	}
	return sendOK(c, sub)
}

// PatchEventSubmission updates an event submission.
func (h *Handler) PatchEventSubmission(c *fiber.Ctx) error {
	var body entities.SubmissionPatch
	if err := parseBody(c, &body); err != nil {
		return writeError(c, err)
	}
	sub, err := h.uc.UpdateEventSubmission(c.Context(), c.Params("id"), c.Params("submissionId"), body)
	if err != nil {
		return writeError(c, err)
	}
	return sendOK(c, sub)
}

// DeleteEventSubmission withdraws an event submission.
func (h *Handler) DeleteEventSubmission(c *fiber.Ctx) error {
	if err := h.uc.DeleteEventSubmission(c.Context(), c.Params("id"), c.Params("submissionId")); err != nil {
		return writeError(c, err)
	}
	return noContent(c)
}
