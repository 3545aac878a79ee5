package handlers_fiber

import (
	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"
	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// PostRegister creates an account and returns an access token.
func (h *Handler) PostRegister(c *fiber.Ctx) error {
	var body entities.RegisterInput
	if err := parseBody(c, &body); err != nil {
		return writeError(c, err)
	}
	res, err := h.uc.Register(c.Context(), body)
	if err != nil {
		return writeError(c, err)
	}
	return created(c, res)
}

// PostLogin exchanges credentials for an access token.
func (h *Handler) PostLogin(c *fiber.Ctx) error {
	var body entities.LoginInput
	if err := parseBody(c, &body); err != nil {
		return writeError(c, err)
	}
	res, err := h.uc.Login(c.Context(), body)
	if err != nil {
		return writeError(c, err)
	}
	return sendOK(c, res)
}

// GetMe returns the caller's profile.
func (h *Handler) GetMe(c *fiber.Ctx) error {
	p, _ := middleware.PrincipalFrom(c)
	user, err := h.uc.Me(c.Context(), *p)
	if err != nil {
		return writeError(c, err)
	}
	return sendOK(c, user)
}
