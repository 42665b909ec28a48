package delivery

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"fabrika-backend/internal/config"
	"fabrika-backend/internal/database"
	"fabrika-backend/internal/inventory"
	"fabrika-backend/internal/repository"
	"fabrika-backend/internal/validation"
)

type PositionRequest struct {
	MaterialID uuid.UUID `json:"material_id" validate:"required"`
	Quantity   int64     `json:"quantity" validate:"gte=0"`
}

type DeliveryRequest struct {
	WarehouseID uuid.UUID         `json:"warehouse_id" validate:"required"`
	Positions   []PositionRequest `json:"positions" validate:"dive"`
}

// POST /api/delivery
// Teslimat tek bir transaction olarak işlenir: tüm kalemler uygulanır ya da
// hiçbiri uygulanmaz. Başarıda güncel kapasiteli depo anlık görüntüsü döner.
func CreateDeliveryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body DeliveryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if err := validation.Struct(body); err != nil {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(validation.Format(err))
		}

		positions := make([]Position, 0, len(body.Positions))
		for _, p := range body.Positions {
			positions = append(positions, Position{
				MaterialID: p.MaterialID,
				Quantity:   p.Quantity,
			})
		}

		engine := NewEngine(
			repository.NewWarehouseRepository(),
			repository.NewStockPositionRepository(),
		)

		warehouse, err := engine.Process(database.DB, body.WarehouseID, positions)
		if err != nil {
			var capErr *CapacityExceededError
			switch {
			case errors.As(err, &capErr):
				return fiber.NewError(fiber.StatusBadRequest, capErr.Error())
			case errors.Is(err, ErrWarehouseNotFound), errors.Is(err, ErrMaterialNotFound):
				return fiber.NewError(fiber.StatusNotFound, err.Error())
			case errors.Is(err, ErrConflict):
				return fiber.NewError(fiber.StatusConflict, err.Error())
			case errors.Is(err, repository.ErrNoSession):
				// Kablolama hatası; veri durumu değil.
				config.GetLogger().Error(err.Error())
				return fiber.NewError(fiber.StatusInternalServerError, "Teslimat işlenemedi")
			default:
				config.GetLogger().WithField("warehouse_id", body.WarehouseID).Error(err.Error())
				return fiber.NewError(fiber.StatusInternalServerError, "Teslimat işlenemedi")
			}
		}

		return c.Status(fiber.StatusCreated).JSON(inventory.NewWarehouseResponse(warehouse))
	}
}
