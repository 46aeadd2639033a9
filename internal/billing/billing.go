package billing

import (
	"math"

	"salon-backend/internal/models"
)

// Bill: Bir masanın o anki parasal özeti. Masada saklanmaz, her istekte
// servis edilmiş satırlardan yeniden hesaplanır.
type Bill struct {
	Subtotal        float64 `json:"subtotal"`
	DiscountPercent float64 `json:"discount_percent"`
	DiscountAmount  float64 `json:"discount_amount"`
	TaxRate         float64 `json:"tax_rate"`
	Tax             float64 `json:"tax"`
	GrandTotal      float64 `json:"grand_total"`
}

// Calculate: Servis edilmiş satırların toplamından indirim ve vergiyi türetir.
// Servis edilmemiş satırlar hiçbir parasal kaleme girmez; yalnızca teslim
// edilen yemek ücretlendirilir. İndirim vergiden önce uygulanır.
//
// Hesap tam hassasiyetle yapılır; yuvarlama yalnızca sunum anındadır
// (Round2). DiscountPercent burada sınırlanmaz, doğrulama mutasyon
// sınırındadır.
func Calculate(t *models.Table, taxRate float64) Bill {
	var subtotal float64
	for _, line := range t.OrderLines {
		if line.Served {
			subtotal += line.Total
		}
	}

	discount := subtotal * t.DiscountPercent / 100
	taxable := subtotal - discount
	tax := taxable * taxRate / 100

	return Bill{
		Subtotal:        subtotal,
		DiscountPercent: t.DiscountPercent,
		DiscountAmount:  discount,
		TaxRate:         taxRate,
		Tax:             tax,
		GrandTotal:      taxable + tax,
	}
}

// Round2: Sunum için 2 ondalık basamağa yuvarlar.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Rounded: Faturanın sunuma hazır, yuvarlanmış kopyası.
func (b Bill) Rounded() Bill {
	return Bill{
		Subtotal:        Round2(b.Subtotal),
		DiscountPercent: b.DiscountPercent,
		DiscountAmount:  Round2(b.DiscountAmount),
		TaxRate:         b.TaxRate,
		Tax:             Round2(b.Tax),
		GrandTotal:      Round2(b.GrandTotal),
	}
}
