package handlers_fiber

import (
	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"

	"github.com/gofiber/fiber/v2"
)

// GetUsers lists users.
func (h *Handler) GetUsers(c *fiber.Ctx) error {
	users, err := h.uc.Users(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return sendOK(c, users)
}

// PostUser creates a profile.
func (h *Handler) PostUser(c *fiber.Ctx) error {
	var body entities.User
	if err := parseBody(c, &body); err != nil {
		return writeError(c, err)
	}
	user, err := h.uc.CreateUser(c.Context(), body)
	if err != nil {
		return writeError(c, err)
	}
	return created(c, user)
}

// GetUser returns one user.
func (h *Handler) GetUser(c *fiber.Ctx) error {
	user, err := h.uc.User(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return sendOK(c, user)
}

// PatchUser updates a profile.
func (h *Handler) PatchUser(c *fiber.Ctx) error {
	var body entities.UserPatch
	if err := parseBody(c, &body); err != nil {
		return writeError(c, err)
	}
	user, err := h.uc.UpdateUser(c.Context(), c.Params("id"), body)
	if err != nil {
		return writeError(c, err)
	}
	return sendOK(c, user)
}

// DeleteUser removes a user.
func (h *Handler) DeleteUser(c *fiber.Ctx) error {
	if err := h.uc.DeleteUser(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return noContent(c)
}
