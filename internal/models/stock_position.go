package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StockPosition: bir malzemenin bir depodaki miktarı.
// (warehouse_id, material_id) çifti doğal anahtardır; bileşik benzersiz
// indeks sayesinde eşzamanlı iki teslimatın aynı çift için ikinci bir satır
// yaratması sessiz kopya yerine bütünlük ihlali olarak yakalanır.
type StockPosition struct {
	DefaultModel
	WarehouseID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_stock_warehouse_material"`
	MaterialID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_stock_warehouse_material"`
	Quantity    int64     `gorm:"not null"`

	Warehouse *Warehouse
	Material  *Material
}

func (s *StockPosition) BeforeCreate(_ *gorm.DB) error {
	s.ensureID()
	return nil
}
