package tables

import (
	"errors"
	"fmt"
	"time"

	"salon-backend/internal/auth"
	"salon-backend/internal/billing"
	"salon-backend/internal/ledger"
	"salon-backend/internal/menu"
	"salon-backend/internal/models"
	"salon-backend/internal/order"
	"salon-backend/internal/state"
)

var (
	ErrInvalidCount    = errors.New("masa sayısı pozitif bir tam sayı olmalı")
	ErrTableNotFound   = errors.New("masa bulunamadı")
	ErrUnauthorized    = errors.New("parola hatalı")
	ErrInvalidGuests   = errors.New("misafir sayısı negatif olamaz")
	ErrInvalidDiscount = errors.New("indirim oranı 0 ile 100 arasında olmalı")
)

// Masa yaşam döngüsü: oluşturma, misafir/indirim güncelleme, parola korumalı
// silme ve hesap kapama. Bütün fonksiyonlar app kilidi tutulurken çağrılır;
// reddedilen işlem durumu değiştirmez.

// CreateTables: count yeni masa ekler; id'ler mevcut en büyükten devam eder.
func CreateTables(app *state.App, count int) ([]*models.Table, error) {
	if count <= 0 {
		return nil, ErrInvalidCount
	}

	nextID := app.NextTableID()
	created := make([]*models.Table, 0, count)
	for i := 0; i < count; i++ {
		t := &models.Table{ID: nextID + i}
		app.Tables = append(app.Tables, t)
		created = append(created, t)
	}

	app.SaveTables()
	return created, nil
}

// DeleteTable: Masayı aktif kümeden çıkarır. Paylaşımlı parola tutmazsa
// küme olduğu gibi kalır. Silinen masa audit kaydı için geri döndürülür.
func DeleteTable(app *state.App, id int, password string, az auth.Authorizer) (*models.Table, error) {
	if !az.Authorize(password) {
		return nil, ErrUnauthorized
	}

	for i, t := range app.Tables {
		if t.ID == id {
			app.Tables = append(app.Tables[:i], app.Tables[i+1:]...)
			app.SaveTables()
			return t, nil
		}
	}
	return nil, ErrTableNotFound
}

func SetGuestCount(app *state.App, id, guests int) (*models.Table, error) {
	if guests < 0 {
		return nil, ErrInvalidGuests
	}
	t := app.FindTable(id)
	if t == nil {
		return nil, ErrTableNotFound
	}

	t.GuestCount = guests
	app.SaveTables()
	return t, nil
}

// SetDiscount: İndirim oranı mutasyon sınırında doğrulanır; fatura motoru
// hiçbir zaman kırpma yapmaz.
func SetDiscount(app *state.App, id int, percent float64) (*models.Table, error) {
	if percent < 0 || percent > 100 {
		return nil, ErrInvalidDiscount
	}
	t := app.FindTable(id)
	if t == nil {
		return nil, ErrTableNotFound
	}

	t.DiscountPercent = percent
	app.SaveTables()
	return t, nil
}

// AddOrderLine: Ürünü katalogdan çözer ve adisyon motoruna verir.
func AddOrderLine(app *state.App, catalog *menu.Catalog, id int, name string, quantity int, now time.Time) (*models.Table, error) {
	t := app.FindTable(id)
	if t == nil {
		return nil, ErrTableNotFound
	}
	item, ok := catalog.Find(name)
	if !ok {
		return nil, menu.ErrUnknownItem
	}

	if err := order.AddItem(t, item, quantity, now); err != nil {
		return nil, err
	}
	app.SaveTables()
	return t, nil
}

func UpdateOrderLine(app *state.App, id, index, quantity int) (*models.Table, error) {
	t := app.FindTable(id)
	if t == nil {
		return nil, ErrTableNotFound
	}
	if err := order.UpdateQuantity(t, index, quantity); err != nil {
		return nil, err
	}
	app.SaveTables()
	return t, nil
}

func ToggleOrderLine(app *state.App, id, index int) (*models.Table, error) {
	t := app.FindTable(id)
	if t == nil {
		return nil, ErrTableNotFound
	}
	if err := order.ToggleServed(t, index); err != nil {
		return nil, err
	}
	app.SaveTables()
	return t, nil
}

func RemoveOrderLine(app *state.App, id, index int) (*models.Table, error) {
	t := app.FindTable(id)
	if t == nil {
		return nil, ErrTableNotFound
	}
	if err := order.RemoveItem(t, index); err != nil {
		return nil, err
	}
	app.SaveTables()
	return t, nil
}

// BillSink: Kapanan hesabı belgeye çeviren dış bağımlılık (PDF).
type BillSink interface {
	Render(inv models.Invoice) ([]byte, error)
}

// Checkout: Servis edilmiş satırlardan faturayı hesaplar, belgeyi üretir,
// defteri günceller ve masayı sıfırlar. Ya hep ya hiç: belge üretilemezse
// masa sıfırlanmaz ve deftere kayıt düşmez. Mutasyon sonrası kalıcılaştırma
// yazmaları fire-and-forget'tir.
func Checkout(app *state.App, id int, taxRate float64, sink BillSink, now time.Time) (models.Invoice, []byte, error) {
	t := app.FindTable(id)
	if t == nil {
		return models.Invoice{}, nil, ErrTableNotFound
	}

	bill := billing.Calculate(t, taxRate)

	var served []models.OrderLine
	for _, line := range t.OrderLines {
		if line.Served {
			served = append(served, line)
		}
	}

	inv := models.Invoice{
		BillID:          now.UnixMilli(),
		TableID:         t.ID,
		GuestCount:      t.GuestCount,
		ItemCount:       len(t.OrderLines),
		Lines:           served,
		Subtotal:        bill.Subtotal,
		DiscountPercent: bill.DiscountPercent,
		DiscountAmount:  bill.DiscountAmount,
		Tax:             bill.Tax,
		GrandTotal:      bill.GrandTotal,
		IssuedAt:        now,
	}

	var doc []byte
	if sink != nil {
		var err error
		doc, err = sink.Render(inv)
		if err != nil {
			return models.Invoice{}, nil, fmt.Errorf("adisyon belgesi üretilemedi: %w", err)
		}
	}

	ledger.Record(app, inv)
	t.Reset()
	app.SaveTables()

	return inv, doc, nil
}
