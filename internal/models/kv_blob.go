package models

import "time"

// KVBlob: Anahtar-değer deposundaki tek kayıt. Değer, ilgili bellek-içi
// yapının bütün halinin JSON anlık görüntüsüdür (şema versiyonu yok).
// Bilinen anahtarlar: tables, salesHistory, darkMode.
type KVBlob struct {
	Key       string `gorm:"primaryKey;size:50" json:"key"`
	Value     string `gorm:"type:jsonb" json:"value"`
	UpdatedAt time.Time
}
