package models

import "time"

type AuditAction string

const (
	AuditActionCreate   AuditAction = "create"
	AuditActionDelete   AuditAction = "delete"
	AuditActionCheckout AuditAction = "checkout"
	AuditActionClear    AuditAction = "clear"
)

type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	// Hangi entity? (ör: "table", "sales_history")
	EntityType string `gorm:"size:50;index" json:"entity_type"`
	EntityID   int    `gorm:"index" json:"entity_id"`

	// İşlem tipi: create/delete/checkout/clear
	Action AuditAction `gorm:"size:20" json:"action"`

	// Opsiyonel açıklama (küçük bir özet)
	Description string `gorm:"size:255" json:"description"`

	// İşleme konu olan verinin anlık görüntüsü (JSON)
	Data string `gorm:"type:jsonb" json:"data"`
}
