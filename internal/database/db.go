package database

import (
	"fmt"

	"salon-backend/internal/config"
	"salon-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Init: Postgres bağlantısını kurar ve tabloları migrate eder.
// Hata durumunda uygulama sonlanmaz; çağıran taraf bellek-içi modda
// devam etmeye karar verir (DB nil kalır).
func Init(cfg *config.Config) error {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("veritabanına bağlanılamadı: %w", err)
	}

	if err := db.AutoMigrate(
		&models.KVBlob{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("AutoMigrate hatası: %w", err)
	}

	DB = db
	return nil
}
