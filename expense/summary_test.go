package expense

import (
	"testing"
	"time"

	"pharmadesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	now := time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)
	expenses := []models.Expense{
		{Date: "2026-08-10", Amount: 50},
		{Date: "2026-08-02", Amount: 150},
		{Date: "2026-07-15", Amount: 400},
		{Date: "2026-01-01", Amount: 999},
	}

	s := Summarize(expenses, now)
	assert.Equal(t, 50.0, s.Today)
	assert.Equal(t, 200.0, s.ThisMonth)
	assert.Equal(t, 400.0, s.LastMonth)
	assert.Equal(t, 20.0, s.AvgDaily) // 200 over 10 elapsed days
}

func TestFilterExpenses(t *testing.T) {
	expenses := []models.Expense{
		{ID: "e1", CategoryID: "rent", Date: "2026-08-01", Amount: 100},
		{ID: "e2", CategoryID: "rent", Date: "2026-07-01", Amount: 100},
		{ID: "e3", CategoryID: "salary", Date: "2026-08-05", Amount: 100},
	}

	assert.Len(t, FilterExpenses(expenses, "", ""), 3)
	assert.Len(t, FilterExpenses(expenses, "rent", ""), 2)
	assert.Len(t, FilterExpenses(expenses, "", "2026-08"), 2)

	both := FilterExpenses(expenses, "rent", "2026-08")
	require.Len(t, both, 1)
	assert.Equal(t, "e1", both[0].ID)
}

func TestBreakdownSkipsEmptyCategories(t *testing.T) {
	categories := []models.ExpenseCategory{
		{ID: "rent", Name: "Rent"},
		{ID: "salary", Name: "Salary"},
	}
	expenses := []models.Expense{
		{CategoryID: "rent", Date: "2026-08-01", Amount: 100},
		{CategoryID: "rent", Date: "2026-08-20", Amount: 60},
		{CategoryID: "salary", Date: "2026-07-01", Amount: 500}, // wrong month
	}

	rows := Breakdown(expenses, categories, "2026-08")
	require.Len(t, rows, 1)
	assert.Equal(t, "Rent", rows[0].Name)
	assert.Equal(t, 160.0, rows[0].Amount)
	assert.Equal(t, 2, rows[0].Count)
}
