package inventory

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"fabrika-backend/internal/database"
	"fabrika-backend/internal/models"
	"fabrika-backend/internal/repository"
	"fabrika-backend/internal/validation"
)

type CreateProductRequest struct {
	Name string `json:"name" validate:"required,min=2"`
}

// PatchProductRequest: isim oluşturulduktan sonra değiştirilemediği için
// ürünün güncellenebilir alanı yok; gövde uyumluluk için kabul edilir.
type PatchProductRequest struct{}

// POST /api/products
func CreateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		body.Name = strings.TrimSpace(body.Name)
		if err := validation.Struct(body); err != nil {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(validation.Format(err))
		}

		repo := repository.NewProductRepository()
		tx := database.DB.Begin()
		repo.UseSession(tx)

		record := &models.Product{
			NamedModel: models.NamedModel{Name: body.Name},
		}
		if err := repo.Create(record); err != nil {
			tx.Rollback()
			return mapCreateError(err, "Ürün")
		}
		if err := tx.Commit().Error; err != nil {
			tx.Rollback()
			return mapCreateError(repository.Translate(err), "Ürün")
		}

		return c.Status(fiber.StatusCreated).JSON(NewProductResponse(record))
	}
}

// GET /api/products
func ListProductsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		offset, limit, err := parsePagination(c)
		if err != nil {
			return err
		}

		repo := repository.NewProductRepository()
		repo.UseSession(database.DB)

		products, err := repo.ListPaginated(offset, limit)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürünler listelenemedi")
		}

		resp := make([]ProductResponse, 0, len(products))
		for i := range products {
			resp = append(resp, NewProductResponse(&products[i]))
		}
		return c.JSON(resp)
	}
}

// GET /api/products/:slug
func GetProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		repo := repository.NewProductRepository()
		repo.UseSession(database.DB)

		product, err := repo.FindDetailedBySlug(c.Params("slug"))
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün okunamadı")
		}
		return c.JSON(NewProductResponse(product))
	}
}

// PATCH /api/products/:slug
func UpdateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		repo := repository.NewProductRepository()
		repo.UseSession(database.DB)

		product, err := repo.FindBySlug(c.Params("slug"))
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün okunamadı")
		}

		// Güncellenebilir alan yok; kayıt olduğu gibi döner.
		return c.JSON(NewProductResponse(product))
	}
}

// DELETE /api/products/:slug
func DeleteProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		repo := repository.NewProductRepository()
		tx := database.DB.Begin()
		repo.UseSession(tx)

		product, err := repo.FindBySlug(c.Params("slug"))
		if err != nil {
			tx.Rollback()
			if errors.Is(err, repository.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün okunamadı")
		}

		if err := repo.Delete(product); err != nil {
			tx.Rollback()
			if errors.Is(err, repository.ErrForeignKey) {
				return fiber.NewError(fiber.StatusConflict, "Ürün BOM satırları tarafından kullanılıyor")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün silinemedi")
		}
		if err := tx.Commit().Error; err != nil {
			tx.Rollback()
			if errors.Is(repository.Translate(err), repository.ErrForeignKey) {
				return fiber.NewError(fiber.StatusConflict, "Ürün BOM satırları tarafından kullanılıyor")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün silinemedi")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
