// Package expense tracks shop expenses against user-managed categories.
package expense

import (
	"time"

	"pharmadesk/models"
)

// Summary is the expense page's stat cards.
type Summary struct {
	Today     float64 `json:"today"`
	ThisMonth float64 `json:"thisMonth"`
	LastMonth float64 `json:"lastMonth"`
	AvgDaily  float64 `json:"avgDaily"`
}

// Summarize reduces a full expense snapshot to the stat cards. AvgDaily
// spreads the current month's total over the days elapsed so far.
func Summarize(expenses []models.Expense, now time.Time) Summary {
	today := now.Format("2006-01-02")
	thisMonth := now.Format("2006-01")
	lastMonth := now.AddDate(0, -1, 0).Format("2006-01")

	var s Summary
	for _, e := range expenses {
		if e.Date == today {
			s.Today += e.Amount
		}
		if monthOf(e.Date) == thisMonth {
			s.ThisMonth += e.Amount
		}
		if monthOf(e.Date) == lastMonth {
			s.LastMonth += e.Amount
		}
	}

	if day := now.Day(); day > 0 {
		s.AvgDaily = s.ThisMonth / float64(day)
	}
	return s
}

// FilterExpenses narrows by category id and month (YYYY-MM), both optional.
func FilterExpenses(expenses []models.Expense, categoryID, month string) []models.Expense {
	if categoryID == "" && month == "" {
		return expenses
	}
	var out []models.Expense
	for _, e := range expenses {
		if categoryID != "" && e.CategoryID != categoryID {
			continue
		}
		if month != "" && monthOf(e.Date) != month {
			continue
		}
		out = append(out, e)
	}
	return out
}

// CategoryTotal is one row of the monthly per-category breakdown.
type CategoryTotal struct {
	CategoryID string  `json:"categoryId"`
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
	Count      int     `json:"count"`
}

// Breakdown totals one month's expenses per category, skipping categories
// without spend.
func Breakdown(expenses []models.Expense, categories []models.ExpenseCategory, month string) []CategoryTotal {
	var out []CategoryTotal
	for _, cat := range categories {
		row := CategoryTotal{CategoryID: cat.ID, Name: cat.Name}
		for _, e := range expenses {
			if e.CategoryID == cat.ID && monthOf(e.Date) == month {
				row.Amount += e.Amount
				row.Count++
			}
		}
		if row.Count > 0 {
			out = append(out, row)
		}
	}
	return out
}

func monthOf(date string) string {
	if len(date) < 7 {
		return ""
	}
	return date[:7]
}
