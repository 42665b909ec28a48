package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrNotFound: aranan kayıt veritabanında yok.
	ErrNotFound = errors.New("kayıt bulunamadı")
	// ErrNoSession: repository bir oturuma bağlanmadan kullanıldı.
	// Bu bir veri durumu değil, çağıran taraftaki bir kablolama hatasıdır.
	ErrNoSession = errors.New("veritabanı oturumu bağlanmadı")
	// ErrDuplicate: benzersizlik kısıtı ihlali (aynı isim/slug/çift).
	ErrDuplicate = errors.New("benzersizlik kısıtı ihlali")
	// ErrForeignKey: var olmayan bir kayda referans verildi.
	ErrForeignKey = errors.New("ilişkisel bütünlük ihlali")
)

// Sayfalama sınırları; istek katmanı da aynı sınırları doğrular.
const (
	DefaultLimit = 1000
	MaxLimit     = 1000
)

// Translate sürücü hatalarını repository hata türlerine çevirir.
// GORM'un TranslateError çevirisi esas alınır; çevirinin kapsamadığı
// sürücü mesajları için metin eşleştirmesi son çaredir.
func Translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", ErrForeignKey, err)
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"),
		strings.Contains(msg, "duplicate key value"):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	case strings.Contains(msg, "FOREIGN KEY constraint failed"),
		strings.Contains(msg, "violates foreign key constraint"):
		return fmt.Errorf("%w: %v", ErrForeignKey, err)
	}
	return err
}

// Repository: tek bir varlık tipi için genel veri erişim katmanı.
// Tüm operasyonlar UseSession ile bağlanan oturum üzerinde çalışır;
// commit/rollback kararı çağırana aittir, böylece birden fazla repository
// çağrısı tek bir transaction içinde birleştirilebilir.
type Repository[M any] struct {
	session *gorm.DB
}

// UseSession repository'yi bir oturuma (veya transaction'a) bağlar.
func (r *Repository[M]) UseSession(session *gorm.DB) {
	r.session = session
}

// Session bağlı oturumu döner; bağlanmamışsa ErrNoSession.
func (r *Repository[M]) Session() (*gorm.DB, error) {
	if r.session == nil {
		return nil, ErrNoSession
	}
	return r.session, nil
}

func (r *Repository[M]) FindByID(id uuid.UUID) (*M, error) {
	db, err := r.Session()
	if err != nil {
		return nil, err
	}
	var record M
	if err := db.First(&record, "id = ?", id).Error; err != nil {
		return nil, Translate(err)
	}
	return &record, nil
}

func (r *Repository[M]) FindBySlug(slug string) (*M, error) {
	db, err := r.Session()
	if err != nil {
		return nil, err
	}
	var record M
	if err := db.First(&record, "slug = ?", slug).Error; err != nil {
		return nil, Translate(err)
	}
	return &record, nil
}

// ListPaginated kayıtları oluşturulma sırasına göre döner. Salt okunurdur;
// commit edilmeden çalıştırılması her zaman güvenlidir.
func (r *Repository[M]) ListPaginated(offset, limit int) ([]M, error) {
	db, err := r.Session()
	if err != nil {
		return nil, err
	}
	var records []M
	if err := db.Order("created_at ASC").Offset(offset).Limit(limit).Find(&records).Error; err != nil {
		return nil, Translate(err)
	}
	return records, nil
}

// Create kaydı bağlı oturumda ekler; transaction içindeyse commit'e kadar
// kalıcı olmaz. ID ve CreatedAt bu çağrıdan sonra doludur.
func (r *Repository[M]) Create(record *M) error {
	db, err := r.Session()
	if err != nil {
		return err
	}
	return Translate(db.Create(record).Error)
}

func (r *Repository[M]) Update(record *M) error {
	db, err := r.Session()
	if err != nil {
		return err
	}
	return Translate(db.Save(record).Error)
}

func (r *Repository[M]) Delete(record *M) error {
	db, err := r.Session()
	if err != nil {
		return err
	}
	return Translate(db.Delete(record).Error)
}
