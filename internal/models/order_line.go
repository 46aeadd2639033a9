package models

// OrderLine: Bir masanın adisyonundaki tek satır.
// Aynı menü ürünü için asla ikinci satır açılmaz, miktar artırılır.
type OrderLine struct {
	Name     string  `json:"name"`     // menü ürün adı (katalogda benzersiz)
	Price    float64 `json:"price"`    // birim fiyat (menüden kopyalanır)
	Quantity int     `json:"quantity"` // adet, en az 1
	Total    float64 `json:"total"`    // price * quantity (türetilmiş alan)
	Served   bool    `json:"served"`   // servis edildi mi
}
