package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"pawfectfind/internal/auth"
)

// UserIDLocalKey is the key used to store the authenticated user ID in
// Fiber's context locals.
const UserIDLocalKey = "user_id"

// RequireAuth guards routes behind a Bearer token. On success the verified
// user ID is stored in context locals under UserIDLocalKey; otherwise the
// request is rejected with 401 and the standard error envelope.
func RequireAuth(tokens *auth.TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return unauthorized(c, "missing authorization header")
		}

		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
			return unauthorized(c, "authorization header must be a Bearer token")
		}

		userID, err := tokens.Verify(token)
		if err != nil {
			return unauthorized(c, "invalid or expired token")
		}

		c.Locals(UserIDLocalKey, userID)

		return c.Next()
	}
}

// UserID extracts the authenticated user ID stored by RequireAuth. The
// second return is false when the route was not guarded.
func UserID(c *fiber.Ctx) (int, bool) {
	id, ok := c.Locals(UserIDLocalKey).(int)
	return id, ok
}

// unauthorized writes the error envelope inline; the handler package depends
// on this one, so the envelope cannot come from there.
func unauthorized(c *fiber.Ctx, message string) error {
	rid, _ := c.Locals(RequestIDLocalKey).(string)

	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"request_id": rid,
		"error": fiber.Map{
			"code":    "UNAUTHORIZED",
			"message": message,
		},
	})
}
