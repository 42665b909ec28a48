package inventory

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"fabrika-backend/internal/database"
	"fabrika-backend/internal/models"
	"fabrika-backend/internal/repository"
	"fabrika-backend/internal/validation"
)

type CreateBOMRequest struct {
	MaterialID uuid.UUID `json:"material_id" validate:"required"`
	Quantity   *int64    `json:"quantity" validate:"omitempty,gte=0"`
}

// POST /api/products/:slug/bom
func CreateBOMHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateBOMRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if err := validation.Struct(body); err != nil {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(validation.Format(err))
		}

		products := repository.NewProductRepository()
		boms := repository.NewBOMRepository()
		tx := database.DB.Begin()
		products.UseSession(tx)
		boms.UseSession(tx)

		product, err := products.FindBySlug(c.Params("slug"))
		if err != nil {
			tx.Rollback()
			if errors.Is(err, repository.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün okunamadı")
		}

		quantity := int64(1)
		if body.Quantity != nil {
			quantity = *body.Quantity
		}

		record := &models.BOM{
			ProductID:  product.ID,
			MaterialID: body.MaterialID,
			Quantity:   quantity,
		}
		if err := boms.Create(record); err != nil {
			tx.Rollback()
			if errors.Is(err, repository.ErrForeignKey) {
				return fiber.NewError(fiber.StatusNotFound, "Malzeme bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "BOM satırı oluşturulamadı")
		}
		if err := tx.Commit().Error; err != nil {
			tx.Rollback()
			if errors.Is(repository.Translate(err), repository.ErrForeignKey) {
				return fiber.NewError(fiber.StatusNotFound, "Malzeme bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "BOM satırı oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(NewBOMResponse(record))
	}
}

// GET /api/products/:slug/bom
func ListBOMsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		products := repository.NewProductRepository()
		boms := repository.NewBOMRepository()
		products.UseSession(database.DB)
		boms.UseSession(database.DB)

		product, err := products.FindBySlug(c.Params("slug"))
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün okunamadı")
		}

		records, err := boms.ListByProduct(product.ID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "BOM satırları listelenemedi")
		}

		resp := make([]BOMResponse, 0, len(records))
		for i := range records {
			resp = append(resp, NewBOMResponse(&records[i]))
		}
		return c.JSON(resp)
	}
}

// DELETE /api/bom/:id
func DeleteBOMHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz BOM kimliği")
		}

		repo := repository.NewBOMRepository()
		tx := database.DB.Begin()
		repo.UseSession(tx)

		record, err := repo.FindByID(id)
		if err != nil {
			tx.Rollback()
			if errors.Is(err, repository.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "BOM satırı bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "BOM satırı okunamadı")
		}

		if err := repo.Delete(record); err != nil {
			tx.Rollback()
			return fiber.NewError(fiber.StatusInternalServerError, "BOM satırı silinemedi")
		}
		if err := tx.Commit().Error; err != nil {
			tx.Rollback()
			return fiber.NewError(fiber.StatusInternalServerError, "BOM satırı silinemedi")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
