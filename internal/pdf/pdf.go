package pdf

import (
	"bytes"
	"fmt"

	"salon-backend/internal/models"

	"github.com/jung-kurt/gofpdf"
)

// Renderer: Kapanan hesabı indirilebilir PDF adisyona çevirir. Yalnızca
// servis edilmiş satırlar basılır; parasal satırlar sağa hizalı ve 2
// ondalık basamağa yuvarlanmıştır.
type Renderer struct {
	TaxRate  float64
	Currency string
}

func (r Renderer) Render(inv models.Invoice) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 18)
	doc.CellFormat(0, 10, fmt.Sprintf("RESTAURANT BILL - TABLE %d", inv.TableID), "", 1, "L", false, 0, "")

	doc.SetFont("Helvetica", "", 11)
	doc.SetTextColor(100, 100, 100)
	doc.CellFormat(0, 5, fmt.Sprintf("Date: %s", inv.IssuedAt.Format("02 Jan 2006")), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 5, fmt.Sprintf("Guests: %d", inv.GuestCount), "", 1, "L", false, 0, "")
	doc.Ln(4)

	// Kalem tablosu
	colWidths := []float64{92, 20, 35, 35}
	headers := []string{"Item", "Qty", "Price", "Total"}
	aligns := []string{"L", "C", "R", "R"}

	doc.SetFont("Helvetica", "B", 10)
	doc.SetFillColor(22, 160, 133)
	doc.SetTextColor(255, 255, 255)
	for i, h := range headers {
		doc.CellFormat(colWidths[i], 8, h, "", 0, aligns[i], true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(0, 0, 0)
	for n, line := range inv.Lines {
		// Çizgili tablo görünümü: satırlar dönüşümlü renklenir
		fill := n%2 == 1
		doc.SetFillColor(240, 240, 240)
		cells := []string{
			line.Name,
			fmt.Sprintf("%d", line.Quantity),
			fmt.Sprintf("%s%.2f", r.Currency, line.Price),
			fmt.Sprintf("%s%.2f", r.Currency, line.Total),
		}
		for i, cell := range cells {
			doc.CellFormat(colWidths[i], 7, cell, "", 0, aligns[i], fill, 0, "")
		}
		doc.Ln(-1)
	}
	doc.Ln(6)

	// Toplamlar sağa hizalı; indirim satırı yalnızca indirim varsa basılır
	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(0, 6, fmt.Sprintf("Subtotal: %s%.2f", r.Currency, inv.Subtotal), "", 1, "R", false, 0, "")
	if inv.DiscountPercent > 0 {
		doc.CellFormat(0, 6, fmt.Sprintf("Discount (%g%%): -%s%.2f", inv.DiscountPercent, r.Currency, inv.DiscountAmount), "", 1, "R", false, 0, "")
	}
	doc.CellFormat(0, 6, fmt.Sprintf("Tax (%g%%): %s%.2f", r.TaxRate, r.Currency, inv.Tax), "", 1, "R", false, 0, "")

	doc.SetFont("Helvetica", "B", 12)
	doc.CellFormat(0, 10, fmt.Sprintf("Grand Total: %s%.2f", r.Currency, inv.GrandTotal), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF oluşturulamadı: %w", err)
	}
	return buf.Bytes(), nil
}
