package calendar

import (
	"strings"
	"time"

	"pharmadesk/models"
)

// DayCell summarizes one calendar day for the month grid.
type DayCell struct {
	Date          string  `json:"date"`
	EventCount    int     `json:"eventCount"`
	ReminderCount int     `json:"reminderCount"`
	SalesTotal    float64 `json:"salesTotal"`
	ExpenseTotal  float64 `json:"expenseTotal"`
	Profit        float64 `json:"profit"`
}

// MonthSummary totals the month across all day cells.
type MonthSummary struct {
	Month        string  `json:"month"`
	EventCount   int     `json:"eventCount"`
	SalesTotal   float64 `json:"salesTotal"`
	ExpenseTotal float64 `json:"expenseTotal"`
	Profit       float64 `json:"profit"`
}

// BuildMonth lays out one cell per day of the given "YYYY-MM" month and
// folds events, reminders, sales and expenses into their day. Profit for
// a day is that day's sales minus its expenses.
func BuildMonth(month string, events []models.CalendarEvent, reminders []models.Reminder, sales []models.Sale, expenses []models.Expense) []DayCell {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return nil
	}
	days := start.AddDate(0, 1, -1).Day()

	cells := make([]DayCell, days)
	index := make(map[string]*DayCell, days)
	for i := range cells {
		date := start.AddDate(0, 0, i).Format("2006-01-02")
		cells[i].Date = date
		index[date] = &cells[i]
	}

	for _, ev := range events {
		if cell, ok := index[ev.Date]; ok {
			cell.EventCount++
		}
	}
	for _, rem := range reminders {
		if cell, ok := index[rem.Date]; ok {
			cell.ReminderCount++
		}
	}
	for _, sale := range sales {
		if cell, ok := index[sale.Date]; ok {
			cell.SalesTotal += sale.TotalAmount
		}
	}
	for _, exp := range expenses {
		if cell, ok := index[exp.Date]; ok {
			cell.ExpenseTotal += exp.Amount
		}
	}
	for i := range cells {
		cells[i].Profit = cells[i].SalesTotal - cells[i].ExpenseTotal
	}
	return cells
}

// Summarize rolls the day cells up into month totals.
func Summarize(month string, cells []DayCell) MonthSummary {
	summary := MonthSummary{Month: month}
	for _, cell := range cells {
		summary.EventCount += cell.EventCount
		summary.SalesTotal += cell.SalesTotal
		summary.ExpenseTotal += cell.ExpenseTotal
	}
	summary.Profit = summary.SalesTotal - summary.ExpenseTotal
	return summary
}

// InMonth reports whether a "YYYY-MM-DD" date falls in a "YYYY-MM" month.
func InMonth(date, month string) bool {
	return strings.HasPrefix(date, month+"-")
}
