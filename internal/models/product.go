package models

import "gorm.io/gorm"

// Product: üretilen ürün. Hangi malzemelerden üretildiği BOM satırlarında tutulur.
type Product struct {
	DefaultModel
	NamedModel

	BOMs []BOM `gorm:"foreignKey:ProductID"`
}

func (p *Product) BeforeCreate(_ *gorm.DB) error {
	p.ensureID()
	return p.ensureSlug()
}
