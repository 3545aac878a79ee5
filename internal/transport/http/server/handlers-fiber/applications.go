package handlers_fiber

import (
	"fmt"
	"strconv"

	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"
	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

type startDraftRequest struct {
	UserID   string `json:"userId"`
	TestMode bool   `json:"testMode"`
}

// GetWizardSteps describes the judge application steps.
func (h *Handler) GetWizardSteps(c *fiber.Ctx) error {
	return sendOK(c, entities.WizardSteps)
}

// PostDraft starts a judge application. A signed-in caller owns the draft.
func (h *Handler) PostDraft(c *fiber.Ctx) error {
	var body startDraftRequest
	if len(c.Body()) > 0 {
		if err := parseBody(c, &body); err != nil {
			return writeError(c, err)
		}
	}
	if p, ok := middleware.PrincipalFrom(c); ok {
		body.UserID = p.UserID
	}
	draft, err := h.uc.StartDraft(c.Context(), body.UserID, body.TestMode)
	if err != nil {
		return writeError(c, err)
	}
	return created(c, draft)
}

// GetDraft returns an unexpired draft.
func (h *Handler) GetDraft(c *fiber.Ctx) error {
	draft, err := h.uc.Draft(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return sendOK(c, draft)
}

// PutDraftStep saves one step. The step is an index or a step key.
func (h *Handler) PutDraftStep(c *fiber.Ctx) error {
	step, err := stepParam(c.Params("step"))
	if err != nil {
		return writeError(c, err)
	}
	var body entities.ApplicationAnswers
	if err := parseBody(c, &body); err != nil {
		return writeError(c, err)
	}
	draft, err := h.uc.SaveStep(c.Context(), c.Params("id"), step, body)
	if err != nil {
		return writeError(c, err)
	}
	return sendOK(c, draft)
}

// PostDraftBack moves a draft one step back.
func (h *Handler) PostDraftBack(c *fiber.Ctx) error {
	draft, err := h.uc.BackStep(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return sendOK(c, draft)
}

// PostDraftSubmit turns a draft into an application.
func (h *Handler) PostDraftSubmit(c *fiber.Ctx) error {
	app, err := h.uc.SubmitDraft(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return created(c, app)
}

// GetApplications lists applications, optionally by status.
func (h *Handler) GetApplications(c *fiber.Ctx) error {
	var status *entities.ApplicationStatus
	if s := c.Query("status"); s != "" {
		st := entities.ApplicationStatus(s)
		status = &st
	}
	apps, err := h.uc.Applications(c.Context(), status)
	if err != nil {
		return writeError(c, err)
	}
	return sendOK(c, apps)
}

// GetApplication returns one application.
func (h *Handler) GetApplication(c *fiber.Ctx) error {
	app, err := h.uc.Application(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return sendOK(c, app)
}

// PostApprove approves an application and creates its judge.
func (h *Handler) PostApprove(c *fiber.Ctx) error {
	var body entities.ReviewInput
	if len(c.Body()) > 0 {
		if err := parseBody(c, &body); err != nil {
			return writeError(c, err)
		}
	}
	app, err := h.uc.ApproveApplication(c.Context(), c.Params("id"), body)
	if err != nil {
		return writeError(c, err)
	}
	return sendOK(c, app)
}

// PostReject rejects an application.
func (h *Handler) PostReject(c *fiber.Ctx) error {
	var body entities.ReviewInput
	if len(c.Body()) > 0 {
		if err := parseBody(c, &body); err != nil {
			return writeError(c, err)
		}
	}
	app, err := h.uc.RejectApplication(c.Context(), c.Params("id"), body)
	if err != nil {
		return writeError(c, err)
	}
	return sendOK(c, app)
}

func stepParam(raw string) (int, error) {
	if n, err := strconv.Atoi(raw); err == nil {
		return n, nil
	}
	if i := entities.StepIndex(raw); i >= 0 {
		return i, nil
	}
	return 0, fmt.Errorf("%w: unknown step %q", entities.ErrInvalidArgument, raw)
}
