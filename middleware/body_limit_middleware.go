package middleware

import (
	"fmt"
	"strconv"

	apimodels "recruitment-desk-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

// WithBodyLimit ограничение размера тела для маршрутов загрузки файлов
func WithBodyLimit(limit int64) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if limit <= 0 {
			return c.Next()
		}
		contentLength := c.Get(fiber.HeaderContentLength)
		if contentLength == "" || contentLength == "0" {
			return c.Next()
		}
		size, err := strconv.ParseInt(contentLength, 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("некорректный заголовок Content-Length"))
		}
		if size > limit {
			return c.Status(fiber.StatusRequestEntityTooLarge).JSON(
				apimodels.NewError(fmt.Sprintf("файл слишком большой, максимум %d байт", limit)))
		}
		return c.Next()
	}
}
