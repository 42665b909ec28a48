package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BOM: bir ürünün bir birimini üretmek için gereken malzeme miktarı.
type BOM struct {
	DefaultModel
	ProductID  uuid.UUID `gorm:"type:uuid;not null;index"`
	MaterialID uuid.UUID `gorm:"type:uuid;not null;index"`
	// Varsayılan miktar (1) istek katmanında uygulanır; default etiketi
	// kullanılmaz çünkü GORM sıfır değerleri atlayıp açık 0'ı 1'e çevirirdi.
	Quantity int64 `gorm:"not null"`

	Product  *Product
	Material *Material
}

func (b *BOM) BeforeCreate(_ *gorm.DB) error {
	b.ensureID()
	return nil
}
