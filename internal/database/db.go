package database

import (
	"fabrika-backend/internal/config"
	"fabrika-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	log := config.GetLogger()

	var err error
	// TranslateError: benzersizlik ve foreign key ihlalleri sürücüden
	// bağımsız olarak gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated
	// olarak yüzeye çıkar.
	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Veritabanına bağlanılamadı: %v", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatalf("AutoMigrate hatası: %v", err)
	}

	log.Info("Veritabanı bağlantısı başarılı. Migration tamamlandı.")
}

// Migrate şemayı kurar. Testler aynı şemayı in-memory SQLite üzerinde kurar.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Material{},
		&models.Product{},
		&models.BOM{},
		&models.Warehouse{},
		&models.StockPosition{},
	)
}
