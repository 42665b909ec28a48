package models

import "gorm.io/gorm"

// Material: üretimde tüketilen hammadde.
// Silindiğinde stok pozisyonları da silinir; BOM satırları silmeyi engeller.
type Material struct {
	DefaultModel
	NamedModel
	QuantityUnit string `gorm:"size:40;not null"` // mol, kg, litre vs.

	BOMs  []BOM           `gorm:"foreignKey:MaterialID"`
	Stock []StockPosition `gorm:"foreignKey:MaterialID;constraint:OnDelete:CASCADE"`
}

func (m *Material) BeforeCreate(_ *gorm.DB) error {
	m.ensureID()
	return m.ensureSlug()
}
