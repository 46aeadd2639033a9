package models

// MenuItem: Sabit menüdeki tek ürün. Uygulama açılışında bir kez yüklenir,
// çalışma sırasında değişmez.
type MenuItem struct {
	Name  string  `json:"name"`  // katalogda benzersiz
	Price float64 `json:"price"` // birim fiyat, >= 0
}
