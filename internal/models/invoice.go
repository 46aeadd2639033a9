package models

import "time"

// Invoice: Hesap kapanışında üretilen anlık görüntü. Oluşturulduktan sonra
// değişmez; bir kez PDF çıktısına, bir kez satış geçmişine verilir.
// Satırlar yalnızca servis edilmiş kalemleri içerir.
type Invoice struct {
	BillID          int64       `json:"bill_id"` // kapanış anı, Unix milisaniye
	TableID         int         `json:"table_id"`
	GuestCount      int         `json:"guest_count"`
	ItemCount       int         `json:"item_count"` // kapanış anındaki toplam satır sayısı
	Lines           []OrderLine `json:"lines"`
	Subtotal        float64     `json:"subtotal"`
	DiscountPercent float64     `json:"discount_percent"`
	DiscountAmount  float64     `json:"discount_amount"`
	Tax             float64     `json:"tax"`
	GrandTotal      float64     `json:"grand_total"`
	IssuedAt        time.Time   `json:"issued_at"`
}

// SalesRecord: Satış geçmişindeki değişmez kayıt. Bir Invoice'tan birebir
// türetilir; (TableID, BillID) ikilisi ile anılır.
type SalesRecord Invoice
