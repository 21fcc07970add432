package calendar

import (
	"testing"

	"pharmadesk/models"
)

func TestBuildMonth(t *testing.T) {
	events := []models.CalendarEvent{
		{Date: "2026-02-10"},
		{Date: "2026-02-10"},
		{Date: "2026-03-01"}, // different month, ignored
	}
	reminders := []models.Reminder{{Date: "2026-02-10"}}
	sales := []models.Sale{
		{Date: "2026-02-10", TotalAmount: 500},
		{Date: "2026-02-11", TotalAmount: 200},
	}
	expenses := []models.Expense{{Date: "2026-02-10", Amount: 120}}

	cells := BuildMonth("2026-02", events, reminders, sales, expenses)
	if len(cells) != 28 {
		t.Fatalf("expected 28 days in 2026-02, got %d", len(cells))
	}

	day := cells[9] // 2026-02-10
	if day.Date != "2026-02-10" {
		t.Fatalf("expected cell for 2026-02-10, got %s", day.Date)
	}
	if day.EventCount != 2 || day.ReminderCount != 1 {
		t.Errorf("expected 2 events and 1 reminder, got %d/%d", day.EventCount, day.ReminderCount)
	}
	if day.Profit != 380 {
		t.Errorf("expected profit 380 (500-120), got %v", day.Profit)
	}

	next := cells[10]
	if next.SalesTotal != 200 || next.Profit != 200 {
		t.Errorf("expected 200 sales and profit on 2026-02-11, got %v/%v", next.SalesTotal, next.Profit)
	}
}

func TestBuildMonthInvalidMonth(t *testing.T) {
	if cells := BuildMonth("garbage", nil, nil, nil, nil); cells != nil {
		t.Errorf("expected nil for invalid month, got %v", cells)
	}
}

func TestSummarize(t *testing.T) {
	cells := []DayCell{
		{EventCount: 1, SalesTotal: 100, ExpenseTotal: 40},
		{EventCount: 2, SalesTotal: 50, ExpenseTotal: 200},
	}

	s := Summarize("2026-02", cells)
	if s.EventCount != 3 {
		t.Errorf("expected 3 events, got %d", s.EventCount)
	}
	if s.SalesTotal != 150 || s.ExpenseTotal != 240 {
		t.Errorf("unexpected totals: %v/%v", s.SalesTotal, s.ExpenseTotal)
	}
	if s.Profit != -90 {
		t.Errorf("expected profit -90, got %v", s.Profit)
	}
}

func TestInMonth(t *testing.T) {
	if !InMonth("2026-02-10", "2026-02") {
		t.Error("expected 2026-02-10 to be in 2026-02")
	}
	if InMonth("2026-12-01", "2026-1") {
		t.Error("expected 2026-12-01 not to match month 2026-1")
	}
}
