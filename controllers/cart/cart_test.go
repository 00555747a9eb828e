package cartControllers

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"github.com/Saketh-S5/mobile-store/models"
	"github.com/Saketh-S5/mobile-store/store"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "cart.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	products := []models.Product{
		{Name: "Asus ROG Phone 7", Price: 80000, Image: "asusrog7.jpg"},
		{Name: "iPhone 15 Pro", Price: 120000, Image: "ipn15pro.png"},
	}
	if err := db.Create(&products).Error; err != nil {
		t.Fatalf("Create products failed: %v", err)
	}
	return db
}

func TestResolveCart(t *testing.T) {
	db := openTestDB(t)

	t.Run("duplicate ids count twice", func(t *testing.T) {
		items, total := resolveCart(db, []uint{1, 1})
		if len(items) != 2 {
			t.Fatalf("Expected 2 items, got %d", len(items))
		}
		if total != 160000 {
			t.Errorf("Expected total 160000, got %v", total)
		}
	})

	t.Run("stale ids are dropped silently", func(t *testing.T) {
		items, total := resolveCart(db, []uint{1, 99})
		if len(items) != 1 {
			t.Fatalf("Expected 1 item, got %d", len(items))
		}
		if total != 80000 {
			t.Errorf("Expected total 80000, got %v", total)
		}
	})

	t.Run("cart order is preserved", func(t *testing.T) {
		items, _ := resolveCart(db, []uint{2, 1})
		if items[0].Name != "iPhone 15 Pro" || items[1].Name != "Asus ROG Phone 7" {
			t.Errorf("Cart order not preserved: %+v", items)
		}
	})

	t.Run("deleted product vanishes from total", func(t *testing.T) {
		if err := db.Delete(&models.Product{}, 2).Error; err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		items, total := resolveCart(db, []uint{2})
		if len(items) != 0 || total != 0 {
			t.Errorf("Expected empty resolution, got %d items, total %v", len(items), total)
		}
	})

	t.Run("empty cart resolves to zero", func(t *testing.T) {
		items, total := resolveCart(db, nil)
		if len(items) != 0 || total != 0 {
			t.Errorf("Expected nothing, got %d items, total %v", len(items), total)
		}
	})
}
