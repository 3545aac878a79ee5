package handlers_fiber

import (
	"github.com/gofiber/fiber/v2"
)

// GetPlatformAnalytics returns platform totals; top bounds the event ranking.
func (h *Handler) GetPlatformAnalytics(c *fiber.Ctx) error {
	top, err := queryInt(c, "top")
	if err != nil {
		return writeError(c, err)
	}
	res, err := h.uc.PlatformAnalytics(c.Context(), top)
	if err != nil {
		h.log.Errorw("failed to get platform analytics", "error", err.Error())
		return writeError(c, err)
	}
	return sendOK(c, res)
}

// GetEventAnalytics returns one event's aggregates.
func (h *Handler) GetEventAnalytics(c *fiber.Ctx) error {
	res, err := h.uc.EventAnalytics(c.Context(), c.Params("id"))
	if err != nil {
		h.log.Errorw("failed to get event analytics", "error", err.Error())
		return writeError(c, err)
	}
	return sendOK(c, res)
}

// GetLeaderboard ranks an event's scored submissions.
func (h *Handler) GetLeaderboard(c *fiber.Ctx) error {
	limit, err := queryInt(c, "limit")
	if err != nil {
		return writeError(c, err)
	}
	res, err := h.uc.Leaderboard(c.Context(), c.Params("id"), limit)
	if err != nil {
		h.log.Errorw("failed to get leaderboard", "error", err.Error())
		return writeError(c, err)
	}
	return sendOK(c, res)
}
