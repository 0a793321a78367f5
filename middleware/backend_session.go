package middleware

import (
	"recruitment-dashboard/lib/backend"

	"github.com/gofiber/fiber/v2"
)

// BackendSession пробрасывает cookie пользователя в запросы к backend. Авторизацию проверяет сам backend.
func BackendSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cookie := c.Get(fiber.HeaderCookie); cookie != "" {
			c.SetUserContext(backend.WithSession(c.UserContext(), cookie))
		}
		return c.Next()
	}
}
