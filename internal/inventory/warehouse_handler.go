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

type CreateWarehouseRequest struct {
	Name        string `json:"name" validate:"required,min=2"`
	Location    string `json:"location" validate:"required,min=2"`
	MaxCapacity *int64 `json:"max_capacity" validate:"omitempty,gte=1"`
}

type PatchWarehouseRequest struct {
	Location    *string `json:"location" validate:"omitempty,min=2"`
	MaxCapacity *int64  `json:"max_capacity" validate:"omitempty,gte=1"`
}

// POST /api/warehouses
func CreateWarehouseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateWarehouseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		body.Name = strings.TrimSpace(body.Name)
		body.Location = strings.TrimSpace(body.Location)
		if err := validation.Struct(body); err != nil {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(validation.Format(err))
		}

		repo := repository.NewWarehouseRepository()
		tx := database.DB.Begin()
		repo.UseSession(tx)

		record := &models.Warehouse{
			NamedModel:  models.NamedModel{Name: body.Name},
			Location:    body.Location,
			MaxCapacity: models.DefaultMaxCapacity,
		}
		if body.MaxCapacity != nil {
			record.MaxCapacity = *body.MaxCapacity
		}

		if err := repo.Create(record); err != nil {
			tx.Rollback()
			return mapCreateError(err, "Depo")
		}
		if err := tx.Commit().Error; err != nil {
			tx.Rollback()
			return mapCreateError(repository.Translate(err), "Depo")
		}

		return c.Status(fiber.StatusCreated).JSON(NewWarehouseResponse(record))
	}
}

// GET /api/warehouses
func ListWarehousesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		offset, limit, err := parsePagination(c)
		if err != nil {
			return err
		}

		repo := repository.NewWarehouseRepository()
		repo.UseSession(database.DB)

		warehouses, err := repo.ListPaginated(offset, limit)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Depolar listelenemedi")
		}

		resp := make([]WarehouseResponse, 0, len(warehouses))
		for i := range warehouses {
			resp = append(resp, NewWarehouseResponse(&warehouses[i]))
		}
		return c.JSON(resp)
	}
}

// GET /api/warehouses/:slug
func GetWarehouseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		repo := repository.NewWarehouseRepository()
		repo.UseSession(database.DB)

		warehouse, err := repo.FindDetailedBySlug(c.Params("slug"))
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Depo bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Depo okunamadı")
		}
		return c.JSON(NewWarehouseResponse(warehouse))
	}
}

// PATCH /api/warehouses/:slug
// Yalnızca konum ve azami kapasite güncellenebilir; isim ve slug sabittir.
func UpdateWarehouseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body PatchWarehouseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if err := validation.Struct(body); err != nil {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(validation.Format(err))
		}

		repo := repository.NewWarehouseRepository()
		tx := database.DB.Begin()
		repo.UseSession(tx)

		warehouse, err := repo.FindBySlug(c.Params("slug"))
		if err != nil {
			tx.Rollback()
			if errors.Is(err, repository.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Depo bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Depo okunamadı")
		}

		doUpdate := false
		if body.Location != nil {
			warehouse.Location = strings.TrimSpace(*body.Location)
			doUpdate = true
		}
		if body.MaxCapacity != nil {
			warehouse.MaxCapacity = *body.MaxCapacity
			doUpdate = true
		}

		if doUpdate {
			if err := repo.Update(warehouse); err != nil {
				tx.Rollback()
				if errors.Is(err, repository.ErrDuplicate) {
					return fiber.NewError(fiber.StatusConflict, "Depo için benzersizlik kısıtı ihlali")
				}
				return fiber.NewError(fiber.StatusInternalServerError, "Depo güncellenemedi")
			}
			if err := tx.Commit().Error; err != nil {
				tx.Rollback()
				if errors.Is(repository.Translate(err), repository.ErrDuplicate) {
					return fiber.NewError(fiber.StatusConflict, "Depo için benzersizlik kısıtı ihlali")
				}
				return fiber.NewError(fiber.StatusInternalServerError, "Depo güncellenemedi")
			}
		} else {
			tx.Rollback()
		}

		return c.JSON(NewWarehouseResponse(warehouse))
	}
}

// DELETE /api/warehouses/:slug
// Depo silinince stok pozisyonları da silinir (cascade).
func DeleteWarehouseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		repo := repository.NewWarehouseRepository()
		tx := database.DB.Begin()
		repo.UseSession(tx)

		warehouse, err := repo.FindBySlug(c.Params("slug"))
		if err != nil {
			tx.Rollback()
			if errors.Is(err, repository.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Depo bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Depo okunamadı")
		}

		if err := repo.Delete(warehouse); err != nil {
			tx.Rollback()
			return fiber.NewError(fiber.StatusInternalServerError, "Depo silinemedi")
		}
		if err := tx.Commit().Error; err != nil {
			tx.Rollback()
			return fiber.NewError(fiber.StatusInternalServerError, "Depo silinemedi")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
