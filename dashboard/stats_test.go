package dashboard

import (
	"testing"

	"pharmadesk/models"
)

func TestStatsForDay(t *testing.T) {
	sales := []models.Sale{
		{Date: "2026-08-28", TotalAmount: 100, Profit: 30},
		{Date: "2026-08-28", TotalAmount: 50, Profit: 10},
		{Date: "2026-08-27", TotalAmount: 999, Profit: 99},
	}

	stats := StatsForDay(sales, "2026-08-28")
	if stats.Revenue != 150 {
		t.Errorf("expected revenue 150, got %v", stats.Revenue)
	}
	if stats.Profit != 40 {
		t.Errorf("expected profit 40, got %v", stats.Profit)
	}
	if stats.SaleCount != 2 {
		t.Errorf("expected 2 sales, got %d", stats.SaleCount)
	}
}

func TestTotalAssets(t *testing.T) {
	products := []models.Product{
		{PurchasePrice: 10, Stock: 5},
		{PurchasePrice: 2.5, Stock: 4},
		{PurchasePrice: 100, Stock: 0},
	}
	if got := TotalAssets(products); got != 60 {
		t.Errorf("expected assets 60, got %v", got)
	}
}

func TestMonthlyStats(t *testing.T) {
	sales := []models.Sale{
		{Date: "2026-07-10", TotalAmount: 100, Profit: 20},
		{Date: "2026-08-01", TotalAmount: 300, Profit: 90},
		{Date: "2026-08-15", TotalAmount: 200, Profit: 60},
	}
	expenses := []models.Expense{
		{Date: "2026-08-05", Amount: 50},
		{Date: "2026-06-01", Amount: 500}, // month with no sales
	}

	months := MonthlyStats(sales, expenses)
	if len(months) != 3 {
		t.Fatalf("expected 3 months, got %d", len(months))
	}
	if months[0].Month != "2026-06" || months[0].Expenses != 500 {
		t.Errorf("unexpected first month: %+v", months[0])
	}
	aug := months[2]
	if aug.Month != "2026-08" || aug.Revenue != 500 || aug.Profit != 150 || aug.Expenses != 50 {
		t.Errorf("unexpected august stats: %+v", aug)
	}
}
