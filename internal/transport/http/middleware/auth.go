package middleware

import (
	"context"
	"fmt"
	"strings"

	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"

	"github.com/gofiber/fiber/v2"
)

const principalKey = "principal"

// TokenParser verifies access tokens.
type TokenParser interface {
	ParseToken(ctx context.Context, token string) (*entities.Principal, error)
}

// Authenticate resolves a bearer token into a principal when one is sent.
// Requests without an Authorization header pass through anonymously.
func Authenticate(tp TokenParser) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return c.Next()
		}
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			return fmt.Errorf("%w: expected a bearer token", entities.ErrUnauthorized)
		}
		p, err := tp.ParseToken(c.UserContext(), strings.TrimSpace(token))
		if err != nil {
			return err
		}
		c.Locals(principalKey, p)
		return c.Next()
	}
}

// RequireAuth rejects anonymous requests.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFrom(c); !ok {
			return fmt.Errorf("%w: sign in required", entities.ErrUnauthorized)
		}
		return c.Next()
	}
}

// RequireAdmin lets only admins through.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, ok := PrincipalFrom(c)
		if !ok {
			return fmt.Errorf("%w: sign in required", entities.ErrUnauthorized)
		}
		if !p.IsAdmin() {
			return fmt.Errorf("%w: admin role required", entities.ErrForbidden)
		}
		return c.Next()
	}
}

// PrincipalFrom returns the authenticated caller, if any.
func PrincipalFrom(c *fiber.Ctx) (*entities.Principal, bool) {
	p, ok := c.Locals(principalKey).(*entities.Principal)
	return p, ok && p != nil
}
