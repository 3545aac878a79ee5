package handlers_fiber

import (
	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"

	"github.com/gofiber/fiber/v2"
)

// GetLFGPosts lists matchmaking posts by eventId, kind and open.
func (h *Handler) GetLFGPosts(c *fiber.Ctx) error {
	filter := entities.LFGFilter{
		EventID:  c.Query("eventId"),
		OpenOnly: queryBool(c, "open"),
	}
	if k := c.Query("kind"); k != "" {
		kind := entities.LFGKind(k)
		filter.Kind = &kind
	}
	posts, err := h.uc.LFGPosts(c.Context(), filter)
	if err != nil {
		return writeError(c, err)
	}
	return sendOK(c, posts)
}

// PostLFGPost opens a matchmaking post.
func (h *Handler) PostLFGPost(c *fiber.Ctx) error {
	var body entities.LFGPost
	if err := parseBody(c, &body); err != nil {
		return writeError(c, err)
	}
	post, err := h.uc.CreateLFGPost(c.Context(), body)
	if err != nil {
		return writeError(c, err)
	}
	return created(c, post)
}

// GetLFGPost returns one post.
func (h *Handler) GetLFGPost(c *fiber.Ctx) error {
	post, err := h.uc.LFGPost(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return sendOK(c, post)
}

// PatchLFGPost updates a post.
func (h *Handler) PatchLFGPost(c *fiber.Ctx) error {
	var body entities.LFGPatch
	if err := parseBody(c, &body); err != nil {
		return writeError(c, err)
	}
	post, err := h.uc.UpdateLFGPost(c.Context(), c.Params("id"), body)
	if err != nil {
		return writeError(c, err)
	}
	return sendOK(c, post)
}

// DeleteLFGPost removes a post.
func (h *Handler) DeleteLFGPost(c *fiber.Ctx) error {
	if err := h.uc.DeleteLFGPost(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return noContent(c)
}
