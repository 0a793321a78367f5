package middleware

import (
	"recruitment-dashboard/fiberlog"
	"recruitment-dashboard/lib/backend"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-ID"

// RequestID берет id запроса из заголовка или генерирует новый; id уходит в лог, в ответ и в запросы к backend
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(fiberlog.RequestIDLocal, id)
		c.Set(HeaderRequestID, id)
		c.SetUserContext(backend.WithRequestID(c.UserContext(), id))
		return c.Next()
	}
}
