package models

import "gorm.io/gorm"

// DefaultMaxCapacity: istekte kapasite verilmezse uygulanan varsayılan.
const DefaultMaxCapacity int64 = 1_000_000

// Warehouse: malzeme stoklarının tutulduğu depo.
// Silindiğinde stok pozisyonları da silinir.
type Warehouse struct {
	DefaultModel
	NamedModel
	Location    string `gorm:"size:255;not null;unique"`
	MaxCapacity int64  `gorm:"not null;default:1000000"`

	Stock []StockPosition `gorm:"foreignKey:WarehouseID;constraint:OnDelete:CASCADE"`
}

func (w *Warehouse) BeforeCreate(_ *gorm.DB) error {
	w.ensureID()
	return w.ensureSlug()
}

// Capacity: deponun kalan boş kapasitesi. Hiçbir zaman saklanmaz, her
// okumada yeniden hesaplanır. Stok ilişkisi yüklenmemişse depo boş kabul
// edilir ve tam kapasite döner.
func (w *Warehouse) Capacity() int64 {
	capacity := w.MaxCapacity
	for _, s := range w.Stock {
		capacity -= s.Quantity
	}
	return capacity
}
