package inventory

import (
	"time"

	"github.com/google/uuid"

	"fabrika-backend/internal/models"
)

type MaterialResponse struct {
	ID           uuid.UUID               `json:"id"`
	CreatedAt    time.Time               `json:"created_at"`
	Name         string                  `json:"name"`
	Slug         string                  `json:"slug"`
	QuantityUnit string                  `json:"quantity_unit"`
	BOMs         []BOMResponse           `json:"boms,omitempty"`
	Stock        []StockPositionResponse `json:"stock,omitempty"`
}

type ProductResponse struct {
	ID        uuid.UUID     `json:"id"`
	CreatedAt time.Time     `json:"created_at"`
	Name      string        `json:"name"`
	Slug      string        `json:"slug"`
	BOMs      []BOMResponse `json:"boms,omitempty"`
}

type BOMResponse struct {
	ID           uuid.UUID `json:"id"`
	ProductID    uuid.UUID `json:"product_id"`
	MaterialID   uuid.UUID `json:"material_id"`
	Quantity     int64     `json:"quantity"`
	ProductName  string    `json:"product_name,omitempty"`
	ProductSlug  string    `json:"product_slug,omitempty"`
	MaterialName string    `json:"material_name,omitempty"`
	MaterialSlug string    `json:"material_slug,omitempty"`
}

type WarehouseResponse struct {
	ID          uuid.UUID               `json:"id"`
	CreatedAt   time.Time               `json:"created_at"`
	Name        string                  `json:"name"`
	Slug        string                  `json:"slug"`
	Location    string                  `json:"location"`
	MaxCapacity int64                   `json:"max_capacity"`
	Capacity    int64                   `json:"capacity"`
	Stock       []StockPositionResponse `json:"stock"`
}

type StockPositionResponse struct {
	ID            uuid.UUID `json:"id"`
	WarehouseID   uuid.UUID `json:"warehouse_id"`
	MaterialID    uuid.UUID `json:"material_id"`
	Quantity      int64     `json:"quantity"`
	MaterialName  string    `json:"material_name,omitempty"`
	MaterialSlug  string    `json:"material_slug,omitempty"`
	WarehouseName string    `json:"warehouse_name,omitempty"`
	WarehouseSlug string    `json:"warehouse_slug,omitempty"`
}

func NewMaterialResponse(m *models.Material) MaterialResponse {
	resp := MaterialResponse{
		ID:           m.ID,
		CreatedAt:    m.CreatedAt,
		Name:         m.Name,
		Slug:         m.Slug,
		QuantityUnit: m.QuantityUnit,
	}
	for _, b := range m.BOMs {
		resp.BOMs = append(resp.BOMs, NewBOMResponse(&b))
	}
	for _, s := range m.Stock {
		resp.Stock = append(resp.Stock, NewStockPositionResponse(&s))
	}
	return resp
}

func NewProductResponse(p *models.Product) ProductResponse {
	resp := ProductResponse{
		ID:        p.ID,
		CreatedAt: p.CreatedAt,
		Name:      p.Name,
		Slug:      p.Slug,
	}
	for _, b := range p.BOMs {
		resp.BOMs = append(resp.BOMs, NewBOMResponse(&b))
	}
	return resp
}

func NewBOMResponse(b *models.BOM) BOMResponse {
	resp := BOMResponse{
		ID:         b.ID,
		ProductID:  b.ProductID,
		MaterialID: b.MaterialID,
		Quantity:   b.Quantity,
	}
	if b.Product != nil {
		resp.ProductName = b.Product.Name
		resp.ProductSlug = b.Product.Slug
	}
	if b.Material != nil {
		resp.MaterialName = b.Material.Name
		resp.MaterialSlug = b.Material.Slug
	}
	return resp
}

// NewWarehouseResponse: kapasite her yanıt için yüklü stok kümesinden
// yeniden hesaplanır, hiçbir zaman saklanmaz.
func NewWarehouseResponse(w *models.Warehouse) WarehouseResponse {
	resp := WarehouseResponse{
		ID:          w.ID,
		CreatedAt:   w.CreatedAt,
		Name:        w.Name,
		Slug:        w.Slug,
		Location:    w.Location,
		MaxCapacity: w.MaxCapacity,
		Capacity:    w.Capacity(),
		Stock:       make([]StockPositionResponse, 0, len(w.Stock)),
	}
	for _, s := range w.Stock {
		resp.Stock = append(resp.Stock, NewStockPositionResponse(&s))
	}
	return resp
}

func NewStockPositionResponse(s *models.StockPosition) StockPositionResponse {
	resp := StockPositionResponse{
		ID:          s.ID,
		WarehouseID: s.WarehouseID,
		MaterialID:  s.MaterialID,
		Quantity:    s.Quantity,
	}
	if s.Material != nil {
		resp.MaterialName = s.Material.Name
		resp.MaterialSlug = s.Material.Slug
	}
	if s.Warehouse != nil {
		resp.WarehouseName = s.Warehouse.Name
		resp.WarehouseSlug = s.Warehouse.Slug
	}
	return resp
}
