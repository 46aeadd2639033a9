package ledger

import (
	"sort"

	"salon-backend/internal/models"
	"salon-backend/internal/state"
)

// Satış defteri: Kapanan hesapların yalnızca eklenen, asla değişmeyen
// kaydı. Raporlama dışında hiçbir şey okumaz. Çağıran app kilidini tutar.

// TableStat: Tek masanın satış geçmişi özeti.
type TableStat struct {
	TableID     int     `json:"table_id"`
	TotalOrders int     `json:"total_orders"` // kesilen fatura sayısı
	TotalSales  float64 `json:"total_sales"`  // genel toplamların toplamı
	LastBillID  int64   `json:"last_bill_id"` // en son kapanışın zaman damgası
}

// Record: Faturayı deftere ekler ve anlık görüntüyü kalıcılaştırır.
// Tekilleştirme yapılmaz; defter yalnızca büyür.
func Record(app *state.App, inv models.Invoice) models.SalesRecord {
	rec := models.SalesRecord(inv)
	app.History = append(app.History, rec)
	app.SaveHistory()
	return rec
}

// AggregateByTable: Görülen her masa için fatura sayısı, toplam satış ve en
// son kapanış zamanını çıkarır; masa id'sine göre artan sıralıdır.
func AggregateByTable(history []models.SalesRecord) []TableStat {
	byTable := make(map[int]*TableStat)
	for _, rec := range history {
		stat, ok := byTable[rec.TableID]
		if !ok {
			stat = &TableStat{TableID: rec.TableID}
			byTable[rec.TableID] = stat
		}
		stat.TotalOrders++
		stat.TotalSales += rec.GrandTotal
		if rec.BillID > stat.LastBillID {
			stat.LastBillID = rec.BillID
		}
	}

	stats := make([]TableStat, 0, len(byTable))
	for _, stat := range byTable {
		stats = append(stats, *stat)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].TableID < stats[j].TableID })
	return stats
}

// TotalRevenue: Defterdeki bütün genel toplamların toplamı.
func TotalRevenue(history []models.SalesRecord) float64 {
	var total float64
	for _, rec := range history {
		total += rec.GrandTotal
	}
	return total
}

// Clear: Defteri geri dönüşsüz boşaltır (kullanıcı onayı UI tarafındadır).
func Clear(app *state.App) int {
	cleared := len(app.History)
	app.History = nil
	app.SaveHistory()
	return cleared
}
