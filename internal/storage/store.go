package storage

import (
	"encoding/json"
	"log"

	"salon-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Depodaki anahtarlar. Her anahtar, ilgili bellek-içi yapının bütün
// halinin JSON anlık görüntüsünü tutar.
const (
	KeyTables       = "tables"
	KeySalesHistory = "salesHistory"
	KeyDarkMode     = "darkMode"
)

// Store: Anahtar-değer anlık görüntü deposu. db nil ise (Postgres'e
// ulaşılamadıysa) bütün işlemler sessizce atlanır ve uygulama yalnızca
// bellek-içi çalışır.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	if db == nil {
		return nil
	}
	return &Store{db: db}
}

// Get: Anahtarın son anlık görüntüsünü dest'e çözer. Kayıt yoksa veya
// bozuksa dest'e dokunmaz ve false döner; bozuk kayıt asla ölümcül değildir.
func (s *Store) Get(key string, dest any) bool {
	if s == nil {
		return false
	}

	var blob models.KVBlob
	if err := s.db.First(&blob, "key = ?", key).Error; err != nil {
		return false
	}

	if err := json.Unmarshal([]byte(blob.Value), dest); err != nil {
		log.Printf("[WARN] %q anahtarı çözümlenemedi, varsayılan kullanılacak: %v", key, err)
		return false
	}
	return true
}

// Put: Yapının güncel halini anahtarın altına yazar. Yazma hatası
// uygulamayı durdurmaz, yalnızca loglanır (son değişiklik kaybolabilir).
func (s *Store) Put(key string, v any) {
	if s == nil {
		return
	}

	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("[WARN] %q anahtarı serileştirilemedi: %v", key, err)
		return
	}

	blob := models.KVBlob{Key: key, Value: string(data)}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&blob).Error
	if err != nil {
		log.Printf("[WARN] %q anahtarı kaydedilemedi: %v", key, err)
	}
}
