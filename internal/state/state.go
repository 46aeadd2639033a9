package state

import (
	"sync"

	"salon-backend/internal/models"
	"salon-backend/internal/storage"
)

// App: Uygulamanın tüm değişken durumu tek bir yapıda toplanır; paket
// seviyesinde gezen global yoktur. Fiber istekleri eşzamanlı geldiği için
// her handler işlemi boyunca kilidi tutar; hiçbir mutasyon yarım halde
// görünmez.
type App struct {
	mu sync.Mutex

	Tables   []*models.Table
	History  []models.SalesRecord
	DarkMode bool

	store *storage.Store
}

func New(store *storage.Store) *App {
	return &App{store: store}
}

func (a *App) Lock()   { a.mu.Lock() }
func (a *App) Unlock() { a.mu.Unlock() }

// Load: Açılışta depodaki anlık görüntüleri okur. Eksik veya bozuk anahtar
// boş varsayılan demektir, hata değildir.
func (a *App) Load() {
	a.store.Get(storage.KeyTables, &a.Tables)
	a.store.Get(storage.KeySalesHistory, &a.History)
	a.store.Get(storage.KeyDarkMode, &a.DarkMode)
}

// Her mutasyondan sonra ilgili yapının bütünü yazılır (fire-and-forget).

func (a *App) SaveTables()   { a.store.Put(storage.KeyTables, a.Tables) }
func (a *App) SaveHistory()  { a.store.Put(storage.KeySalesHistory, a.History) }
func (a *App) SaveDarkMode() { a.store.Put(storage.KeyDarkMode, a.DarkMode) }

// FindTable: id ile masa arar, yoksa nil döner.
func (a *App) FindTable(id int) *models.Table {
	for _, t := range a.Tables {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// NextTableID: Mevcut en büyük id'nin bir fazlası. Silinen id'ler geri
// kullanılmaz; numaralar en büyükten devam eder.
func (a *App) NextTableID() int {
	max := 0
	for _, t := range a.Tables {
		if t.ID > max {
			max = t.ID
		}
	}
	return max + 1
}
