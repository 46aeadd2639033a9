package models

import "time"

// Table: Takip edilen tek bir masa. Faturalama birimi budur.
// Sayaç alanları (TotalOrders/PendingOrders/FilledOrders) OrderLines
// listesinden türetilir; her mutasyondan sonra RecountOrders çağrılır.
type Table struct {
	ID              int         `json:"id"` // benzersiz, atandıktan sonra değişmez
	GuestCount      int         `json:"guest_count"`
	TotalOrders     int         `json:"total_orders"`
	PendingOrders   int         `json:"pending_orders"`
	FilledOrders    int         `json:"filled_orders"`
	OrderLines      []OrderLine `json:"order_lines"`
	LastOrderAt     *time.Time  `json:"last_order_at"`
	DiscountPercent float64     `json:"discount_percent"` // 0-100 arası
}

// RecountOrders: Sayaçları satır listesinden yeniden hesaplar.
// Artımlı sayaç güncellemesi kayabildiği için tek doğruluk kaynağı listedir.
func (t *Table) RecountOrders() {
	filled := 0
	for _, line := range t.OrderLines {
		if line.Served {
			filled++
		}
	}
	t.TotalOrders = len(t.OrderLines)
	t.FilledOrders = filled
	t.PendingOrders = t.TotalOrders - filled
}

// Reset: Masayı hesap kapandıktan sonraki boş haline döndürür.
func (t *Table) Reset() {
	t.GuestCount = 0
	t.TotalOrders = 0
	t.PendingOrders = 0
	t.FilledOrders = 0
	t.OrderLines = nil
	t.LastOrderAt = nil
	t.DiscountPercent = 0
}
