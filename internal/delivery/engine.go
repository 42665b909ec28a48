package delivery

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fabrika-backend/internal/models"
	"fabrika-backend/internal/repository"
)

var (
	// ErrWarehouseNotFound: hedef depo yok; hiçbir değişiklik yapılmadan iptal edilir.
	ErrWarehouseNotFound = errors.New("depo bulunamadı")
	// ErrMaterialNotFound: kalemlerden biri var olmayan bir malzemeye referans veriyor.
	ErrMaterialNotFound = errors.New("malzeme bulunamadı")
	// ErrConflict: commit sırasında mağaza seviyesinde bütünlük ihlali
	// (örn. aynı çift için eşzamanlı iki oluşturma). Teslimatın tamamı
	// yeniden denenebilir.
	ErrConflict = errors.New("veritabanı bütünlük ihlali")
)

// CapacityExceededError: kalemlerden biri deponun kalan kapasitesini aşıyor.
// Hangi kalemin taşmaya yol açtığı hata bağlamında taşınır.
type CapacityExceededError struct {
	MaterialID uuid.UUID
	Requested  int64
	Remaining  int64
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf(
		"teslimat depo kapasitesini aşıyor: %s malzemesi için %d istendi, %d yer kaldı",
		e.MaterialID, e.Requested, e.Remaining,
	)
}

// Position: teslimat belgesindeki tek kalem.
type Position struct {
	MaterialID uuid.UUID
	Quantity   int64
}

// Engine bir teslimatı tek bir transaction içinde depo stoğuna işler.
// Kalemler sırayla uygulanır; ilk ihlalde teslimatın tamamı geri alınır,
// kısmi uygulama olmaz. Motor kendi kilitleme mekanizması kurmaz; eşzamanlı
// teslimatların doğruluğu mağazanın satır kilitlerine ve (warehouse_id,
// material_id) benzersiz indeksine dayanır.
type Engine struct {
	warehouses *repository.WarehouseRepository
	stock      *repository.StockPositionRepository
}

func NewEngine(warehouses *repository.WarehouseRepository, stock *repository.StockPositionRepository) *Engine {
	return &Engine{warehouses: warehouses, stock: stock}
}

// Process teslimatı uygular ve commit sonrası güncel stok ve kapasiteyle
// depoyu yeniden okuyup döner. Boş kalem listesi geçerli bir no-op'tur.
func (e *Engine) Process(db *gorm.DB, warehouseID uuid.UUID, positions []Position) (*models.Warehouse, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	e.warehouses.UseSession(tx)
	e.stock.UseSession(tx)

	if err := e.apply(warehouseID, positions); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return nil, classify(repository.Translate(err))
	}

	e.warehouses.UseSession(db)
	return e.warehouses.FindDetailedByID(warehouseID)
}

func (e *Engine) apply(warehouseID uuid.UUID, positions []Position) error {
	warehouse, err := e.warehouses.FindDetailedByID(warehouseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWarehouseNotFound
		}
		return err
	}

	// Kalan kapasite aynı teslimatın önceki kalemlerinin düşüşünü de
	// görmelidir: kalemleri tek tek kabul edip toplamda taşan bir teslimat
	// bu sayede reddedilir.
	remaining := warehouse.Capacity()

	for _, position := range positions {
		if remaining < position.Quantity {
			return &CapacityExceededError{
				MaterialID: position.MaterialID,
				Requested:  position.Quantity,
				Remaining:  remaining,
			}
		}

		stock, err := e.stock.FindByWarehouseAndMaterial(warehouse.ID, position.MaterialID)
		switch {
		case err == nil:
			stock.Quantity += position.Quantity
			if err := e.stock.Update(stock); err != nil {
				return classify(err)
			}
		case errors.Is(err, repository.ErrNotFound):
			stock = &models.StockPosition{
				WarehouseID: warehouse.ID,
				MaterialID:  position.MaterialID,
				Quantity:    position.Quantity,
			}
			if err := e.stock.Create(stock); err != nil {
				if errors.Is(err, repository.ErrForeignKey) {
					return fmt.Errorf("%w: %s", ErrMaterialNotFound, position.MaterialID)
				}
				return classify(err)
			}
		default:
			return err
		}

		remaining -= position.Quantity
	}

	return nil
}

func classify(err error) error {
	if errors.Is(err, repository.ErrDuplicate) || errors.Is(err, repository.ErrForeignKey) {
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}
	return err
}
