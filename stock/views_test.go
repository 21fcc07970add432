package stock

import (
	"testing"
	"time"

	"pharmadesk/models"
)

func TestLowStockProducts(t *testing.T) {
	products := []models.Product{
		{ID: "p1", Name: "Below", Stock: 5, MinStock: 10},
		{ID: "p2", Name: "AtMinimum", Stock: 10, MinStock: 10},
		{ID: "p3", Name: "Above", Stock: 11, MinStock: 10},
	}

	low := LowStockProducts(products)
	if len(low) != 1 {
		t.Fatalf("expected 1 low stock product, got %d", len(low))
	}
	if low[0].ID != "p1" {
		t.Errorf("expected p1, got %s", low[0].ID)
	}
}

func TestExpiringProductsWindow(t *testing.T) {
	today := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	products := []models.Product{
		{ID: "edge", ExpiryDate: "2026-08-31"},  // exactly 30 days out
		{ID: "late", ExpiryDate: "2026-09-01"},  // 31 days out
		{ID: "gone", ExpiryDate: "2026-07-20"},  // already expired
		{ID: "none"},                            // no expiry recorded
		{ID: "junk", ExpiryDate: "not-a-date"},  // unparseable
	}

	expiring := ExpiringProducts(products, today, 30)
	if len(expiring) != 2 {
		t.Fatalf("expected 2 expiring products, got %d", len(expiring))
	}

	// sorted ascending by remaining days, expired first
	if expiring[0].ID != "gone" || expiring[0].DaysUntilExpiry != -12 {
		t.Errorf("expected gone at -12 days, got %s at %d", expiring[0].ID, expiring[0].DaysUntilExpiry)
	}
	if expiring[1].ID != "edge" || expiring[1].DaysUntilExpiry != 30 {
		t.Errorf("expected edge at 30 days, got %s at %d", expiring[1].ID, expiring[1].DaysUntilExpiry)
	}
}

func TestFilterProducts(t *testing.T) {
	products := []models.Product{
		{ID: "p1", Name: "Napa Extra", Manufacturer: "Beximco"},
		{ID: "p2", Name: "Seclo", Manufacturer: "Square"},
		{ID: "p3", Name: "Napa Syrup", Manufacturer: "Square"},
	}

	if got := FilterProducts(products, "napa", ""); len(got) != 2 {
		t.Errorf("expected 2 napa matches, got %d", len(got))
	}
	if got := FilterProducts(products, "", "Square"); len(got) != 2 {
		t.Errorf("expected 2 Square products, got %d", len(got))
	}
	if got := FilterProducts(products, "napa", "Square"); len(got) != 1 || got[0].ID != "p3" {
		t.Errorf("expected only p3, got %v", got)
	}
}
