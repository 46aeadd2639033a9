package menu

import "testing"

func TestDefaultCatalogLookup(t *testing.T) {
	catalog := Default()

	tests := []struct {
		name  string
		price float64
		ok    bool
	}{
		{"Pasta", 300, true},
		{"Soda", 50, true},
		{"Kheer", 90, true},
		{"Sushi", 0, false},
		{"pasta", 0, false}, // arama büyük/küçük harfe duyarlı
	}
	for _, tt := range tests {
		item, ok := catalog.Find(tt.name)
		if ok != tt.ok {
			t.Errorf("Find(%q) ok = %v, want %v", tt.name, ok, tt.ok)
			continue
		}
		if ok && item.Price != tt.price {
			t.Errorf("Find(%q) price = %v, want %v", tt.name, item.Price, tt.price)
		}
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	catalog := Default()
	items := catalog.Items()
	if len(items) != 28 {
		t.Fatalf("len = %d, want 28", len(items))
	}

	items[0].Price = 9999
	if item, _ := catalog.Find("Pasta"); item.Price != 300 {
		t.Error("mutating the returned slice must not affect the catalog")
	}
}
