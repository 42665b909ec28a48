package inventory

import (
	"github.com/gofiber/fiber/v2"

	"fabrika-backend/internal/repository"
)

// parsePagination offset/limit query parametrelerini okur ve sınırları doğrular.
func parsePagination(c *fiber.Ctx) (offset, limit int, err error) {
	offset = c.QueryInt("offset", 0)
	limit = c.QueryInt("limit", repository.DefaultLimit)

	if offset < 0 {
		return 0, 0, fiber.NewError(fiber.StatusUnprocessableEntity, "offset 0'dan küçük olamaz")
	}
	if limit < 0 || limit > repository.MaxLimit {
		return 0, 0, fiber.NewError(fiber.StatusUnprocessableEntity, "limit 0 ile 1000 arasında olmalı")
	}
	return offset, limit, nil
}
