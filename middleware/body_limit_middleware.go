package middleware

import (
	"fmt"
	apimodels "recruitment-dashboard/models/api"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// WithBodyLimit формы админки и переключатели колонок маленькие, крупное тело отклоняем до разбора
func WithBodyLimit(limit int64) fiber.Handler {
	return func(c *fiber.Ctx) error {
		contentLength := c.Get(fiber.HeaderContentLength)
		if contentLength == "" || contentLength == "0" {
			return c.Next()
		}
		size, err := strconv.ParseInt(contentLength, 10, 64)
		if err == nil && size > limit {
			return c.Status(fiber.StatusRequestEntityTooLarge).
				JSON(apimodels.NewError(fmt.Sprintf("Request body too large. Maximum allowed: %d bytes", limit)))
		}
		return c.Next()
	}
}
