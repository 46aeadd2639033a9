package order

import (
	"errors"
	"time"

	"salon-backend/internal/models"
)

var (
	ErrGuestsRequired  = errors.New("önce masaya misafir ekleyin")
	ErrInvalidQuantity = errors.New("adet en az 1 olmalı")
	ErrLineNotFound    = errors.New("adisyon satırı bulunamadı")
)

// Adisyon motoru: Bir masanın sipariş satırları üzerindeki tüm mutasyonlar
// buradan geçer. Her işlem misafir sayısı 0 ise reddedilir ve başarısız
// işlem masada hiçbir iz bırakmaz. Yan etkiler hedef masayla sınırlıdır.

// AddItem: Menü ürününü adisyona ekler. Aynı ürün zaten varsa yeni satır
// açılmaz, miktar artırılır; yeni eklenen porsiyonlar henüz hazırlanmadığı
// için satır tekrar "servis edilmedi" durumuna döner.
func AddItem(t *models.Table, item models.MenuItem, quantity int, now time.Time) error {
	if t.GuestCount <= 0 {
		return ErrGuestsRequired
	}
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	merged := false
	for i := range t.OrderLines {
		line := &t.OrderLines[i]
		if line.Name != item.Name {
			continue
		}
		line.Quantity += quantity
		line.Total = line.Price * float64(line.Quantity)
		line.Served = false
		merged = true
		break
	}

	if !merged {
		t.OrderLines = append(t.OrderLines, models.OrderLine{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: quantity,
			Total:    item.Price * float64(quantity),
		})
	}

	t.RecountOrders()
	t.LastOrderAt = &now
	return nil
}

// UpdateQuantity: Satırın adedini değiştirir. 1'den küçük değerler sessizce
// yok sayılır; servis durumu değişmez.
func UpdateQuantity(t *models.Table, index, quantity int) error {
	if t.GuestCount <= 0 {
		return ErrGuestsRequired
	}
	if index < 0 || index >= len(t.OrderLines) {
		return ErrLineNotFound
	}
	if quantity < 1 {
		return nil
	}

	line := &t.OrderLines[index]
	line.Quantity = quantity
	line.Total = line.Price * float64(line.Quantity)
	return nil
}

// ToggleServed: Satırın servis durumunu tersine çevirir.
func ToggleServed(t *models.Table, index int) error {
	if t.GuestCount <= 0 {
		return ErrGuestsRequired
	}
	if index < 0 || index >= len(t.OrderLines) {
		return ErrLineNotFound
	}

	t.OrderLines[index].Served = !t.OrderLines[index].Served
	t.RecountOrders()
	return nil
}

// RemoveItem: Satırı adisyondan çıkarır.
func RemoveItem(t *models.Table, index int) error {
	if t.GuestCount <= 0 {
		return ErrGuestsRequired
	}
	if index < 0 || index >= len(t.OrderLines) {
		return ErrLineNotFound
	}

	t.OrderLines = append(t.OrderLines[:index], t.OrderLines[index+1:]...)
	t.RecountOrders()
	return nil
}
