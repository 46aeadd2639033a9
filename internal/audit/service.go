package audit

import (
	"encoding/json"
	"fmt"

	"salon-backend/internal/database"
	"salon-backend/internal/models"
)

type LogOptions struct {
	EntityType  string
	EntityID    int
	Action      models.AuditAction
	Description string
	Data        any
}

// WriteLog: Yıkıcı işlemlerin (silme, hesap kapama, geçmiş temizleme) izini
// bırakır. Veritabanı yoksa sessizce atlanır; audit kaydı hiçbir işlemi
// başarısız kılmaz.
func WriteLog(opts LogOptions) error {
	if database.DB == nil {
		return nil
	}

	// PostgreSQL jsonb için boş string yerine "null" JSON string'i kullanmalıyız
	dataStr := "null"
	if opts.Data != nil {
		if b, err := json.Marshal(opts.Data); err == nil {
			dataStr = string(b)
		}
	}

	entry := models.AuditLog{
		EntityType:  opts.EntityType,
		EntityID:    opts.EntityID,
		Action:      opts.Action,
		Description: opts.Description,
		Data:        dataStr,
	}

	if err := database.DB.Create(&entry).Error; err != nil {
		return fmt.Errorf("audit log kaydedilemedi: %w", err)
	}

	return nil
}
