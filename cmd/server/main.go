package main

import (
	"strings"

	"fabrika-backend/internal/auth"
	"fabrika-backend/internal/config"
	"fabrika-backend/internal/database"
	"fabrika-backend/internal/delivery"
	"fabrika-backend/internal/inventory"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	logger := config.GetLogger()
	database.Init(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			logger.Error("Beklenmeyen hata: " + err.Error())
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Beklenmeyen sunucu hatası",
			})
		},
	})

	// CORS origins'i virgülle ayrılmış string'den array'e çevir
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register-super-admin", auth.RegisterSuperAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Malzemeler
	protected.Post("/materials", inventory.CreateMaterialHandler())
	protected.Get("/materials", inventory.ListMaterialsHandler())
	protected.Get("/materials/:slug", inventory.GetMaterialHandler())
	protected.Patch("/materials/:slug", inventory.UpdateMaterialHandler())
	protected.Delete("/materials/:slug", inventory.DeleteMaterialHandler())

	// Ürünler ve BOM
	protected.Post("/products", inventory.CreateProductHandler())
	protected.Get("/products", inventory.ListProductsHandler())
	protected.Get("/products/:slug", inventory.GetProductHandler())
	protected.Patch("/products/:slug", inventory.UpdateProductHandler())
	protected.Delete("/products/:slug", inventory.DeleteProductHandler())
	protected.Post("/products/:slug/bom", inventory.CreateBOMHandler())
	protected.Get("/products/:slug/bom", inventory.ListBOMsHandler())
	protected.Delete("/bom/:id", inventory.DeleteBOMHandler())

	// Depolar
	protected.Post("/warehouses", inventory.CreateWarehouseHandler())
	protected.Get("/warehouses", inventory.ListWarehousesHandler())
	protected.Get("/warehouses/:slug", inventory.GetWarehouseHandler())
	protected.Patch("/warehouses/:slug", inventory.UpdateWarehouseHandler())
	protected.Delete("/warehouses/:slug", inventory.DeleteWarehouseHandler())

	// Teslimat
	protected.Post("/delivery", delivery.CreateDeliveryHandler())

	logger.Fatal(app.Listen(":" + cfg.HTTPPort))
}
