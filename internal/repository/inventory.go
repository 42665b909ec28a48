package repository

import (
	"github.com/google/uuid"

	"fabrika-backend/internal/models"
)

// MaterialRepository ...
type MaterialRepository struct {
	Repository[models.Material]
}

func NewMaterialRepository() *MaterialRepository {
	return &MaterialRepository{}
}

// FindDetailedBySlug malzemeyi BOM ve stok ilişkileriyle birlikte yükler.
func (r *MaterialRepository) FindDetailedBySlug(slug string) (*models.Material, error) {
	db, err := r.Session()
	if err != nil {
		return nil, err
	}
	var record models.Material
	if err := db.
		Preload("BOMs.Product").
		Preload("Stock.Warehouse").
		First(&record, "slug = ?", slug).Error; err != nil {
		return nil, Translate(err)
	}
	return &record, nil
}

// ProductRepository ...
type ProductRepository struct {
	Repository[models.Product]
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// FindDetailedBySlug ürünü BOM satırları ve malzemeleriyle birlikte yükler.
func (r *ProductRepository) FindDetailedBySlug(slug string) (*models.Product, error) {
	db, err := r.Session()
	if err != nil {
		return nil, err
	}
	var record models.Product
	if err := db.
		Preload("BOMs.Material").
		First(&record, "slug = ?", slug).Error; err != nil {
		return nil, Translate(err)
	}
	return &record, nil
}

// BOMRepository ...
type BOMRepository struct {
	Repository[models.BOM]
}

func NewBOMRepository() *BOMRepository {
	return &BOMRepository{}
}

// ListByProduct bir ürünün BOM satırlarını malzemeleriyle birlikte döner.
func (r *BOMRepository) ListByProduct(productID uuid.UUID) ([]models.BOM, error) {
	db, err := r.Session()
	if err != nil {
		return nil, err
	}
	var records []models.BOM
	if err := db.
		Preload("Material").
		Where("product_id = ?", productID).
		Order("created_at ASC").
		Find(&records).Error; err != nil {
		return nil, Translate(err)
	}
	return records, nil
}

// WarehouseRepository ...
type WarehouseRepository struct {
	Repository[models.Warehouse]
}

func NewWarehouseRepository() *WarehouseRepository {
	return &WarehouseRepository{}
}

// FindDetailedByID depoyu stok pozisyonları ve malzemeleriyle yükler.
// Kapasite hesabı yüklü stok kümesi üzerinden yapılır.
func (r *WarehouseRepository) FindDetailedByID(id uuid.UUID) (*models.Warehouse, error) {
	db, err := r.Session()
	if err != nil {
		return nil, err
	}
	var record models.Warehouse
	if err := db.
		Preload("Stock.Material").
		First(&record, "id = ?", id).Error; err != nil {
		return nil, Translate(err)
	}
	return &record, nil
}

// FindDetailedBySlug ...
func (r *WarehouseRepository) FindDetailedBySlug(slug string) (*models.Warehouse, error) {
	db, err := r.Session()
	if err != nil {
		return nil, err
	}
	var record models.Warehouse
	if err := db.
		Preload("Stock.Material").
		First(&record, "slug = ?", slug).Error; err != nil {
		return nil, Translate(err)
	}
	return &record, nil
}

// StockPositionRepository ...
type StockPositionRepository struct {
	Repository[models.StockPosition]
}

func NewStockPositionRepository() *StockPositionRepository {
	return &StockPositionRepository{}
}

// FindByWarehouseAndMaterial (depo, malzeme) çifti için stok pozisyonunu
// arar. Mutabakat motoru "yeni satır mı, artır mı" kararını bu operasyonun
// ErrNotFound ayrımıyla verir.
func (r *StockPositionRepository) FindByWarehouseAndMaterial(warehouseID, materialID uuid.UUID) (*models.StockPosition, error) {
	db, err := r.Session()
	if err != nil {
		return nil, err
	}
	var record models.StockPosition
	if err := db.
		Where("warehouse_id = ? AND material_id = ?", warehouseID, materialID).
		First(&record).Error; err != nil {
		return nil, Translate(err)
	}
	return &record, nil
}
