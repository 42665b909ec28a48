package auth

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

	"fabrika-backend/internal/config"
	"fabrika-backend/internal/database"
)

func newTestApp(t *testing.T) *fiber.App {
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
	database.DB = db

	cfg := &config.Config{JWTSecret: strings.Repeat("s", 32)}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{"error": e.Message})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Beklenmeyen sunucu hatası"})
		},
	})
	app.Post("/api/auth/register-super-admin", RegisterSuperAdminHandler(cfg))
	app.Post("/api/auth/login", LoginHandler(cfg))

	protected := app.Group("", JWTMiddleware(cfg))
	protected.Get("/api/auth/me", MeHandler())

	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
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
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s başarısız: %v", method, path, err)
	}
	return resp
}

func TestRegisterLoginMe(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/auth/register-super-admin", "", fiber.Map{
		"name":     "Yönetici",
		"email":    "admin@fabrika.dev",
		"password": "gizli-sifre",
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("kayıt: durum kodu = %d, beklenen 201", resp.StatusCode)
	}

	// İkinci super admin reddedilir
	resp = doJSON(t, app, fiber.MethodPost, "/api/auth/register-super-admin", "", fiber.Map{
		"name":     "İkinci",
		"email":    "ikinci@fabrika.dev",
		"password": "baska-sifre",
	})
	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("ikinci kayıt: durum kodu = %d, beklenen 403", resp.StatusCode)
	}

	// Yanlış şifre
	resp = doJSON(t, app, fiber.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    "admin@fabrika.dev",
		"password": "yanlis",
	})
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("yanlış şifre: durum kodu = %d, beklenen 401", resp.StatusCode)
	}

	// Doğru giriş
	resp = doJSON(t, app, fiber.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    "admin@fabrika.dev",
		"password": "gizli-sifre",
	})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("giriş: durum kodu = %d, beklenen 200", resp.StatusCode)
	}
	var login struct {
		Token string `json:"token"`
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("yanıt okunamadı: %v", err)
	}
	if err := json.Unmarshal(raw, &login); err != nil || login.Token == "" {
		t.Fatalf("token alınamadı: %v (%s)", err, raw)
	}

	// Token ile profil
	resp = doJSON(t, app, fiber.MethodGet, "/api/auth/me", login.Token, nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("me: durum kodu = %d, beklenen 200", resp.StatusCode)
	}
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodGet, "/api/auth/me", "", nil)
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("token'sız istek: durum kodu = %d, beklenen 401", resp.StatusCode)
	}

	resp = doJSON(t, app, fiber.MethodGet, "/api/auth/me", "bozuk-token", nil)
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("bozuk token: durum kodu = %d, beklenen 401", resp.StatusCode)
	}
}
