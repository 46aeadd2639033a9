package menu

import (
	"errors"

	"salon-backend/internal/models"
)

var ErrUnknownItem = errors.New("menüde böyle bir ürün yok")

// Catalog: Sabit menü. Açılışta bir kez kurulur, sonrasında salt okunurdur.
type Catalog struct {
	items  []models.MenuItem
	byName map[string]models.MenuItem
}

func NewCatalog(items []models.MenuItem) *Catalog {
	byName := make(map[string]models.MenuItem, len(items))
	for _, item := range items {
		byName[item.Name] = item
	}
	return &Catalog{items: items, byName: byName}
}

// Default: Uygulamanın standart menüsü.
func Default() *Catalog {
	return NewCatalog([]models.MenuItem{
		{Name: "Pasta", Price: 300},
		{Name: "Salad", Price: 200},
		{Name: "Soda", Price: 50},
		{Name: "Pizza", Price: 350},
		{Name: "Biryani", Price: 400},
		{Name: "Masala Dosa", Price: 150},
		{Name: "Chole Bhature", Price: 200},
		{Name: "Gulab Jamun", Price: 80},
		{Name: "Samosa", Price: 50},
		{Name: "Butter Chicken", Price: 350},
		{Name: "Rogan Josh", Price: 380},
		{Name: "Tandoori Chicken", Price: 320},
		{Name: "Palak Paneer", Price: 280},
		{Name: "Aloo Gobi", Price: 220},
		{Name: "Dal Makhani", Price: 250},
		{Name: "Fish Curry", Price: 350},
		{Name: "Lamb Vindaloo", Price: 400},
		{Name: "Prawn Curry", Price: 380},
		{Name: "Kofta", Price: 270},
		{Name: "Bhindi Masala", Price: 230},
		{Name: "Paneer Tikka", Price: 300},
		{Name: "Mutton Curry", Price: 420},
		{Name: "Chicken Korma", Price: 360},
		{Name: "Rajma", Price: 250},
		{Name: "Pav Bhaji", Price: 180},
		{Name: "Dhokla", Price: 120},
		{Name: "Rasam", Price: 100},
		{Name: "Kheer", Price: 90},
	})
}

// Items: Menünün tanım sırasındaki kopyası.
func (c *Catalog) Items() []models.MenuItem {
	out := make([]models.MenuItem, len(c.items))
	copy(out, c.items)
	return out
}

// Find: Ürünü adıyla arar.
func (c *Catalog) Find(name string) (models.MenuItem, bool) {
	item, ok := c.byName[name]
	return item, ok
}
