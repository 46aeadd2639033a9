package ledger

import (
	"testing"
	"time"

	"salon-backend/internal/models"
	"salon-backend/internal/state"
)

func record(tableID int, billID int64, total float64) models.SalesRecord {
	return models.SalesRecord{
		BillID:     billID,
		TableID:    tableID,
		GrandTotal: total,
		IssuedAt:   time.UnixMilli(billID),
	}
}

func TestRecordAppends(t *testing.T) {
	app := state.New(nil)
	inv := models.Invoice{BillID: 100, TableID: 1, GrandTotal: 354}

	Record(app, inv)
	Record(app, inv) // tekilleştirme yok, defter yalnızca büyür

	if len(app.History) != 2 {
		t.Fatalf("history length = %d, want 2", len(app.History))
	}
	if app.History[0].GrandTotal != 354 {
		t.Errorf("GrandTotal = %v, want 354", app.History[0].GrandTotal)
	}
}

func TestAggregateByTable(t *testing.T) {
	history := []models.SalesRecord{
		record(1, 10, 100),
		record(1, 30, 150),
		record(2, 20, 75),
	}

	stats := AggregateByTable(history)
	if len(stats) != 2 {
		t.Fatalf("stats length = %d, want 2", len(stats))
	}

	if stats[0].TableID != 1 || stats[0].TotalOrders != 2 || stats[0].TotalSales != 250 {
		t.Errorf("table 1 stat = %+v, want {1 2 250 ...}", stats[0])
	}
	if stats[0].LastBillID != 30 {
		t.Errorf("LastBillID = %d, want 30", stats[0].LastBillID)
	}
	if stats[1].TableID != 2 || stats[1].TotalOrders != 1 || stats[1].TotalSales != 75 {
		t.Errorf("table 2 stat = %+v, want {2 1 75 ...}", stats[1])
	}
}

func TestAggregateByTableSortedAscending(t *testing.T) {
	history := []models.SalesRecord{
		record(7, 1, 10),
		record(2, 2, 10),
		record(5, 3, 10),
	}

	stats := AggregateByTable(history)
	want := []int{2, 5, 7}
	for i, stat := range stats {
		if stat.TableID != want[i] {
			t.Errorf("stats[%d].TableID = %d, want %d", i, stat.TableID, want[i])
		}
	}
}

func TestAggregateByTableEmpty(t *testing.T) {
	if stats := AggregateByTable(nil); len(stats) != 0 {
		t.Errorf("expected empty stats, got %+v", stats)
	}
}

func TestTotalRevenue(t *testing.T) {
	history := []models.SalesRecord{
		record(1, 1, 100.5),
		record(2, 2, 49.5),
	}
	if got := TotalRevenue(history); got != 150 {
		t.Errorf("TotalRevenue = %v, want 150", got)
	}
}

func TestClear(t *testing.T) {
	app := state.New(nil)
	app.History = []models.SalesRecord{record(1, 1, 10), record(2, 2, 20)}

	if got := Clear(app); got != 2 {
		t.Errorf("Clear = %d, want 2", got)
	}
	if len(app.History) != 0 {
		t.Errorf("history should be empty, got %d", len(app.History))
	}
}
