package inventory

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"fabrika-backend/internal/config"
	"fabrika-backend/internal/database"
	"fabrika-backend/internal/models"
	"fabrika-backend/internal/repository"
	"fabrika-backend/internal/validation"
)

type CreateMaterialRequest struct {
	Name         string `json:"name" validate:"required,min=2"`
	QuantityUnit string `json:"quantity_unit" validate:"required,min=1,max=40"`
}

// PatchMaterialRequest: isim ve slug oluşturulduktan sonra değiştirilemez,
// yalnızca birim güncellenebilir.
type PatchMaterialRequest struct {
	QuantityUnit *string `json:"quantity_unit" validate:"omitempty,min=1,max=40"`
}

// POST /api/materials
func CreateMaterialHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateMaterialRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		body.Name = strings.TrimSpace(body.Name)
		if err := validation.Struct(body); err != nil {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(validation.Format(err))
		}

		repo := repository.NewMaterialRepository()
		tx := database.DB.Begin()
		repo.UseSession(tx)

		record := &models.Material{
			NamedModel:   models.NamedModel{Name: body.Name},
			QuantityUnit: body.QuantityUnit,
		}
		if err := repo.Create(record); err != nil {
			tx.Rollback()
			return mapCreateError(err, "Malzeme")
		}
		if err := tx.Commit().Error; err != nil {
			tx.Rollback()
			return mapCreateError(repository.Translate(err), "Malzeme")
		}

		return c.Status(fiber.StatusCreated).JSON(NewMaterialResponse(record))
	}
}

// GET /api/materials
func ListMaterialsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		offset, limit, err := parsePagination(c)
		if err != nil {
			return err
		}

		repo := repository.NewMaterialRepository()
		repo.UseSession(database.DB)

		materials, err := repo.ListPaginated(offset, limit)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Malzemeler listelenemedi")
		}

		resp := make([]MaterialResponse, 0, len(materials))
		for i := range materials {
			resp = append(resp, NewMaterialResponse(&materials[i]))
		}
		return c.JSON(resp)
	}
}

// GET /api/materials/:slug
func GetMaterialHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		repo := repository.NewMaterialRepository()
		repo.UseSession(database.DB)

		material, err := repo.FindDetailedBySlug(c.Params("slug"))
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Malzeme bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Malzeme okunamadı")
		}
		return c.JSON(NewMaterialResponse(material))
	}
}

// PATCH /api/materials/:slug
func UpdateMaterialHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body PatchMaterialRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if err := validation.Struct(body); err != nil {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(validation.Format(err))
		}

		repo := repository.NewMaterialRepository()
		tx := database.DB.Begin()
		repo.UseSession(tx)

		material, err := repo.FindBySlug(c.Params("slug"))
		if err != nil {
			tx.Rollback()
			if errors.Is(err, repository.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Malzeme bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Malzeme okunamadı")
		}

		doUpdate := false
		if body.QuantityUnit != nil {
			material.QuantityUnit = *body.QuantityUnit
			doUpdate = true
		}

		if doUpdate {
			if err := repo.Update(material); err != nil {
				tx.Rollback()
				return fiber.NewError(fiber.StatusInternalServerError, "Malzeme güncellenemedi")
			}
			if err := tx.Commit().Error; err != nil {
				tx.Rollback()
				return fiber.NewError(fiber.StatusInternalServerError, "Malzeme güncellenemedi")
			}
		} else {
			tx.Rollback()
		}

		return c.JSON(NewMaterialResponse(material))
	}
}

// DELETE /api/materials/:slug
// Malzeme silinince stok pozisyonları da silinir (cascade); BOM satırları
// varsa foreign key silmeyi engeller.
func DeleteMaterialHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		repo := repository.NewMaterialRepository()
		tx := database.DB.Begin()
		repo.UseSession(tx)

		material, err := repo.FindBySlug(c.Params("slug"))
		if err != nil {
			tx.Rollback()
			if errors.Is(err, repository.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Malzeme bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Malzeme okunamadı")
		}

		if err := repo.Delete(material); err != nil {
			tx.Rollback()
			if errors.Is(err, repository.ErrForeignKey) {
				return fiber.NewError(fiber.StatusConflict, "Malzeme BOM satırları tarafından kullanılıyor")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Malzeme silinemedi")
		}
		if err := tx.Commit().Error; err != nil {
			tx.Rollback()
			if errors.Is(repository.Translate(err), repository.ErrForeignKey) {
				return fiber.NewError(fiber.StatusConflict, "Malzeme BOM satırları tarafından kullanılıyor")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Malzeme silinemedi")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}

// mapCreateError oluşturma hatalarını HTTP yanıtlarına çevirir.
func mapCreateError(err error, entity string) error {
	switch {
	case errors.Is(err, models.ErrUnsluggable):
		return fiber.NewError(fiber.StatusUnprocessableEntity, "İsimden geçerli bir slug türetilemedi")
	case errors.Is(err, repository.ErrDuplicate):
		return fiber.NewError(fiber.StatusConflict, entity+" için benzersizlik kısıtı ihlali")
	case errors.Is(err, repository.ErrForeignKey):
		return fiber.NewError(fiber.StatusConflict, entity+" için ilişkisel bütünlük ihlali")
	default:
		config.GetLogger().WithField("entity", entity).Error(err.Error())
		return fiber.NewError(fiber.StatusInternalServerError, entity+" oluşturulamadı")
	}
}
