package handlers_fiber

import (
	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"

	"github.com/gofiber/fiber/v2"
)

// GetContent lists an event page; drafts=true includes unpublished blocks.
func (h *Handler) GetContent(c *fiber.Ctx) error {
	items, err := h.uc.Contents(c.Context(), c.Params("id"), queryBool(c, "drafts"))
	if err != nil {
		return writeError(c, err)
	}
	return sendOK(c, items)
}

// PostContent adds a block to an event page.
func (h *Handler) PostContent(c *fiber.Ctx) error {
	var body entities.EventContent
	if err := parseBody(c, &body); err != nil {
		return writeError(c, err)
	}
	item, err := h.uc.CreateContent(c.Context(), c.Params("id"), body)
	if err != nil {
		return writeError(c, err)
	}
	return created(c, item)
}

// PatchContent updates a block.
func (h *Handler) PatchContent(c *fiber.Ctx) error {
	var body entities.ContentPatch
	if err := parseBody(c, &body); err != nil {
		return writeError(c, err)
	}
	item, err := h.uc.UpdateContent(c.Context(), c.Params("id"), body)
	if err != nil {
		return writeError(c, err)
	}
	return sendOK(c, item)
}

// DeleteContent removes a block.
func (h *Handler) DeleteContent(c *fiber.Ctx) error {
	if err := h.uc.DeleteContent(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return noContent(c)
}
