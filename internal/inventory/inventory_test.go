package inventory

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"fabrika-backend/internal/database"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") +
		"?mode=memory&cache=shared&_pragma=foreign_keys(1)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("test veritabanı açılamadı: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migration başarısız: %v", err)
	}
	return db
}

// newTestApp envanter rotalarını auth katmanı olmadan kurar; kimlik doğrulama
// kendi paketinde test edilir.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	database.DB = newTestDB(t)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{"error": e.Message})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Beklenmeyen sunucu hatası"})
		},
	})

	app.Post("/api/materials", CreateMaterialHandler())
	app.Get("/api/materials", ListMaterialsHandler())
	app.Get("/api/materials/:slug", GetMaterialHandler())
	app.Patch("/api/materials/:slug", UpdateMaterialHandler())
	app.Delete("/api/materials/:slug", DeleteMaterialHandler())

	app.Post("/api/products", CreateProductHandler())
	app.Get("/api/products", ListProductsHandler())
	app.Get("/api/products/:slug", GetProductHandler())
	app.Patch("/api/products/:slug", UpdateProductHandler())
	app.Delete("/api/products/:slug", DeleteProductHandler())
	app.Post("/api/products/:slug/bom", CreateBOMHandler())
	app.Get("/api/products/:slug/bom", ListBOMsHandler())
	app.Delete("/api/bom/:id", DeleteBOMHandler())

	app.Post("/api/warehouses", CreateWarehouseHandler())
	app.Get("/api/warehouses", ListWarehousesHandler())
	app.Get("/api/warehouses/:slug", GetWarehouseHandler())
	app.Patch("/api/warehouses/:slug", UpdateWarehouseHandler())
	app.Delete("/api/warehouses/:slug", DeleteWarehouseHandler())

	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("istek gövdesi kodlanamadı: %v", err)
		}
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s başarısız: %v", method, path, err)
	}
	return resp
}

func decodeInto(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("yanıt okunamadı: %v", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		t.Fatalf("yanıt çözümlenemedi: %v (%s)", err, raw)
	}
}
