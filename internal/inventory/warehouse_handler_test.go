package inventory

import (
	"testing"

	"github.com/gofiber/fiber/v2"

	"fabrika-backend/internal/models"
)

func TestWarehouseDefaultsToMaxCapacity(t *testing.T) {
	app := newTestApp(t)

	resp := doRequest(t, app, fiber.MethodPost, "/api/warehouses", fiber.Map{
		"name":     "Merkez Depo",
		"location": "Ankara",
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("durum kodu = %d, beklenen 201", resp.StatusCode)
	}

	var created WarehouseResponse
	decodeInto(t, resp, &created)
	if created.MaxCapacity != models.DefaultMaxCapacity {
		t.Errorf("azami kapasite = %d, beklenen %d", created.MaxCapacity, models.DefaultMaxCapacity)
	}
	if created.Capacity != models.DefaultMaxCapacity {
		t.Errorf("boş deponun kapasitesi = %d, beklenen %d", created.Capacity, models.DefaultMaxCapacity)
	}
	if created.Stock == nil || len(created.Stock) != 0 {
		t.Errorf("boş deponun stok listesi boş dizi olmalı: %+v", created.Stock)
	}
}

func TestWarehouseExplicitCapacityAndPatch(t *testing.T) {
	app := newTestApp(t)

	resp := doRequest(t, app, fiber.MethodPost, "/api/warehouses", fiber.Map{
		"name":         "Yedek Depo",
		"location":     "İzmir",
		"max_capacity": 100,
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("durum kodu = %d, beklenen 201", resp.StatusCode)
	}
	var created WarehouseResponse
	decodeInto(t, resp, &created)
	if created.MaxCapacity != 100 {
		t.Errorf("azami kapasite = %d, beklenen 100", created.MaxCapacity)
	}

	// Konum ve kapasite güncellenebilir, isim ve slug sabit
	resp = doRequest(t, app, fiber.MethodPatch, "/api/warehouses/"+created.Slug, fiber.Map{
		"location":     "Manisa",
		"max_capacity": 250,
	})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("güncelleme: durum kodu = %d, beklenen 200", resp.StatusCode)
	}
	var patched WarehouseResponse
	decodeInto(t, resp, &patched)
	if patched.Location != "Manisa" || patched.MaxCapacity != 250 {
		t.Errorf("güncelleme uygulanmadı: %+v", patched)
	}
	if patched.Slug != created.Slug {
		t.Errorf("slug değişti: %q -> %q", created.Slug, patched.Slug)
	}

	// Sıfır kapasite geçersiz
	resp = doRequest(t, app, fiber.MethodPatch, "/api/warehouses/"+created.Slug, fiber.Map{
		"max_capacity": 0,
	})
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Errorf("sıfır kapasite: durum kodu = %d, beklenen 422", resp.StatusCode)
	}
}

func TestWarehouseDuplicateName(t *testing.T) {
	app := newTestApp(t)

	resp := doRequest(t, app, fiber.MethodPost, "/api/warehouses", fiber.Map{
		"name":     "Merkez Depo",
		"location": "Ankara",
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("ilk oluşturma: durum kodu = %d", resp.StatusCode)
	}

	resp = doRequest(t, app, fiber.MethodPost, "/api/warehouses", fiber.Map{
		"name":     "Merkez Depo",
		"location": "İstanbul",
	})
	if resp.StatusCode != fiber.StatusConflict {
		t.Errorf("aynı isim: durum kodu = %d, beklenen 409", resp.StatusCode)
	}
}

func TestWarehouseDelete(t *testing.T) {
	app := newTestApp(t)

	resp := doRequest(t, app, fiber.MethodPost, "/api/warehouses", fiber.Map{
		"name":     "Geçici Depo",
		"location": "Bursa",
	})
	var created WarehouseResponse
	decodeInto(t, resp, &created)

	resp = doRequest(t, app, fiber.MethodDelete, "/api/warehouses/"+created.Slug, nil)
	if resp.StatusCode != fiber.StatusNoContent {
		t.Fatalf("silme: durum kodu = %d, beklenen 204", resp.StatusCode)
	}
	resp = doRequest(t, app, fiber.MethodGet, "/api/warehouses/"+created.Slug, nil)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("silinen depo: durum kodu = %d, beklenen 404", resp.StatusCode)
	}
}
