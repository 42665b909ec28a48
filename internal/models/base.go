package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultModel: tüm tablolar için ortak benzersiz kimlik ve oluşturulma zamanı.
// ID, kayıt oluşturulurken BeforeCreate kancasında atanır; CreatedAt'i GORM doldurur.
type DefaultModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"index"`
}

func (m *DefaultModel) ensureID() {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
}

// NamedModel: isimli varlıklar (malzeme, ürün, depo) için ortak alanlar.
// Name oluşturulduktan sonra değiştirilemez; slug bir kez türetilir ve
// dışarıya verilen kalıcı referans olarak sabit kalır.
type NamedModel struct {
	Name string `gorm:"size:255;not null;unique"`
	Slug string `gorm:"size:255;not null;uniqueIndex"`
}

// ensureSlug: slug açıkça verilmemişse isimden türetir.
func (n *NamedModel) ensureSlug() error {
	if n.Slug != "" {
		return nil
	}
	s, err := DeriveSlug(n.Name)
	if err != nil {
		return err
	}
	n.Slug = s
	return nil
}
