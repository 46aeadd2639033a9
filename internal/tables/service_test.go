package tables

import (
	"errors"
	"testing"
	"time"

	"salon-backend/internal/auth"
	"salon-backend/internal/menu"
	"salon-backend/internal/models"
	"salon-backend/internal/order"
	"salon-backend/internal/state"
)

var testAuthorizer = auth.StaticPassword{Plain: "Hello@123"}

func newApp() *state.App {
	// store nil: test sırasında kalıcılaştırma atlanır
	return state.New(nil)
}

type stubSink struct {
	doc []byte
	err error
}

func (s stubSink) Render(inv models.Invoice) ([]byte, error) {
	return s.doc, s.err
}

func TestCreateTablesAssignsSequentialIDs(t *testing.T) {
	app := newApp()

	created, err := CreateTables(app, 2)
	if err != nil {
		t.Fatalf("CreateTables: %v", err)
	}
	if len(created) != 2 || created[0].ID != 1 || created[1].ID != 2 {
		t.Fatalf("ids = %d, %d, want 1, 2", created[0].ID, created[1].ID)
	}

	// id'ler mevcut en büyükten devam eder, boşluklar geri doldurulmaz
	if _, err := DeleteTable(app, 1, "Hello@123", testAuthorizer); err != nil {
		t.Fatalf("DeleteTable: %v", err)
	}
	created, err = CreateTables(app, 1)
	if err != nil {
		t.Fatalf("CreateTables: %v", err)
	}
	if created[0].ID != 3 {
		t.Errorf("id = %d, want 3", created[0].ID)
	}
}

func TestCreateTablesInvalidCount(t *testing.T) {
	app := newApp()
	for _, count := range []int{0, -3} {
		if _, err := CreateTables(app, count); !errors.Is(err, ErrInvalidCount) {
			t.Errorf("CreateTables(%d): err = %v, want ErrInvalidCount", count, err)
		}
	}
	if len(app.Tables) != 0 {
		t.Errorf("rejected creates must add no tables, got %d", len(app.Tables))
	}
}

func TestDeleteTableWrongPassword(t *testing.T) {
	app := newApp()
	if _, err := CreateTables(app, 3); err != nil {
		t.Fatalf("CreateTables: %v", err)
	}

	if _, err := DeleteTable(app, 2, "yanlis", testAuthorizer); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
	if len(app.Tables) != 3 {
		t.Errorf("table set must be unchanged, got %d tables", len(app.Tables))
	}

	if _, err := DeleteTable(app, 2, "Hello@123", testAuthorizer); err != nil {
		t.Fatalf("DeleteTable: %v", err)
	}
	if len(app.Tables) != 2 || app.FindTable(2) != nil {
		t.Error("table 2 should be gone")
	}
}

func TestDeleteTableNotFound(t *testing.T) {
	app := newApp()
	if _, err := DeleteTable(app, 9, "Hello@123", testAuthorizer); !errors.Is(err, ErrTableNotFound) {
		t.Errorf("err = %v, want ErrTableNotFound", err)
	}
}

func TestSetGuestCount(t *testing.T) {
	app := newApp()
	if _, err := CreateTables(app, 1); err != nil {
		t.Fatalf("CreateTables: %v", err)
	}

	if _, err := SetGuestCount(app, 1, -1); !errors.Is(err, ErrInvalidGuests) {
		t.Errorf("err = %v, want ErrInvalidGuests", err)
	}
	tbl, err := SetGuestCount(app, 1, 4)
	if err != nil {
		t.Fatalf("SetGuestCount: %v", err)
	}
	if tbl.GuestCount != 4 {
		t.Errorf("GuestCount = %d, want 4", tbl.GuestCount)
	}
}

func TestSetDiscountBounds(t *testing.T) {
	app := newApp()
	if _, err := CreateTables(app, 1); err != nil {
		t.Fatalf("CreateTables: %v", err)
	}

	for _, pct := range []float64{-1, 100.5} {
		if _, err := SetDiscount(app, 1, pct); !errors.Is(err, ErrInvalidDiscount) {
			t.Errorf("SetDiscount(%v): err = %v, want ErrInvalidDiscount", pct, err)
		}
	}
	if app.Tables[0].DiscountPercent != 0 {
		t.Error("rejected discount must not stick")
	}

	for _, pct := range []float64{0, 15, 100} {
		if _, err := SetDiscount(app, 1, pct); err != nil {
			t.Errorf("SetDiscount(%v): %v", pct, err)
		}
	}
}

func TestAddOrderLineUnknownItem(t *testing.T) {
	app := newApp()
	catalog := menu.Default()
	if _, err := CreateTables(app, 1); err != nil {
		t.Fatalf("CreateTables: %v", err)
	}
	if _, err := SetGuestCount(app, 1, 2); err != nil {
		t.Fatalf("SetGuestCount: %v", err)
	}

	if _, err := AddOrderLine(app, catalog, 1, "Sushi", 1, time.Now()); !errors.Is(err, menu.ErrUnknownItem) {
		t.Errorf("err = %v, want menu.ErrUnknownItem", err)
	}
	if len(app.Tables[0].OrderLines) != 0 {
		t.Error("unknown item must not leave a line behind")
	}
}

func TestAddOrderLineRequiresGuests(t *testing.T) {
	app := newApp()
	catalog := menu.Default()
	if _, err := CreateTables(app, 1); err != nil {
		t.Fatalf("CreateTables: %v", err)
	}

	if _, err := AddOrderLine(app, catalog, 1, "Pasta", 1, time.Now()); !errors.Is(err, order.ErrGuestsRequired) {
		t.Errorf("err = %v, want order.ErrGuestsRequired", err)
	}
}

func checkoutFixture(t *testing.T) (*state.App, *models.Table) {
	t.Helper()
	app := newApp()
	catalog := menu.Default()
	if _, err := CreateTables(app, 1); err != nil {
		t.Fatalf("CreateTables: %v", err)
	}
	if _, err := SetGuestCount(app, 1, 3); err != nil {
		t.Fatalf("SetGuestCount: %v", err)
	}
	if _, err := AddOrderLine(app, catalog, 1, "Pasta", 1, time.Now()); err != nil {
		t.Fatalf("AddOrderLine: %v", err)
	}
	if _, err := AddOrderLine(app, catalog, 1, "Soda", 2, time.Now()); err != nil {
		t.Fatalf("AddOrderLine: %v", err)
	}
	if _, err := ToggleOrderLine(app, 1, 0); err != nil {
		t.Fatalf("ToggleOrderLine: %v", err)
	}
	return app, app.Tables[0]
}

func TestCheckoutResetsTableAndRecordsSale(t *testing.T) {
	app, tbl := checkoutFixture(t)
	now := time.Date(2026, 8, 28, 21, 30, 0, 0, time.UTC)

	inv, doc, err := Checkout(app, 1, 18, stubSink{doc: []byte("pdf")}, now)
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	if string(doc) != "pdf" {
		t.Errorf("doc = %q", doc)
	}

	// Fatura yalnızca servis edilmiş satırları içerir
	if len(inv.Lines) != 1 || inv.Lines[0].Name != "Pasta" {
		t.Fatalf("invoice lines = %+v, want only served Pasta", inv.Lines)
	}
	if inv.ItemCount != 2 {
		t.Errorf("ItemCount = %d, want 2", inv.ItemCount)
	}
	if inv.Subtotal != 300 || inv.Tax != 54 || inv.GrandTotal != 354 {
		t.Errorf("totals = %v/%v/%v, want 300/54/354", inv.Subtotal, inv.Tax, inv.GrandTotal)
	}
	if inv.BillID != now.UnixMilli() {
		t.Errorf("BillID = %d, want %d", inv.BillID, now.UnixMilli())
	}

	// Masa sıfır haline döner
	if tbl.GuestCount != 0 || tbl.TotalOrders != 0 || tbl.PendingOrders != 0 ||
		tbl.FilledOrders != 0 || len(tbl.OrderLines) != 0 ||
		tbl.LastOrderAt != nil || tbl.DiscountPercent != 0 {
		t.Errorf("table not reset: %+v", tbl)
	}
	if tbl.ID != 1 {
		t.Errorf("reset must not change the id, got %d", tbl.ID)
	}

	// Deftere tam olarak bir kayıt düşer ve tutarlar faturayla aynıdır
	if len(app.History) != 1 {
		t.Fatalf("history length = %d, want 1", len(app.History))
	}
	rec := app.History[0]
	if rec.TableID != 1 || rec.GrandTotal != inv.GrandTotal || rec.BillID != inv.BillID {
		t.Errorf("record = %+v, want invoice values", rec)
	}
}

func TestCheckoutSinkFailureLeavesStateUntouched(t *testing.T) {
	app, tbl := checkoutFixture(t)

	_, _, err := Checkout(app, 1, 18, stubSink{err: errors.New("printer on fire")}, time.Now())
	if err == nil {
		t.Fatal("expected error from failing sink")
	}

	if len(app.History) != 0 {
		t.Errorf("failed checkout must not record a sale, history = %d", len(app.History))
	}
	if tbl.GuestCount != 3 || len(tbl.OrderLines) != 2 || tbl.FilledOrders != 1 {
		t.Errorf("failed checkout must not reset the table: %+v", tbl)
	}
}

func TestCheckoutTableNotFound(t *testing.T) {
	app := newApp()
	if _, _, err := Checkout(app, 42, 18, stubSink{}, time.Now()); !errors.Is(err, ErrTableNotFound) {
		t.Errorf("err = %v, want ErrTableNotFound", err)
	}
}
