package dashboard

import (
	"sort"

	"pharmadesk/models"
)

// DayStats holds the figures for a single date.
type DayStats struct {
	Date      string  `json:"date"`
	Revenue   float64 `json:"revenue"`
	Profit    float64 `json:"profit"`
	SaleCount int     `json:"saleCount"`
}

// MonthStats aggregates one "YYYY-MM" month.
type MonthStats struct {
	Month    string  `json:"month"`
	Revenue  float64 `json:"revenue"`
	Profit   float64 `json:"profit"`
	Expenses float64 `json:"expenses"`
}

// StatsForDay totals the sales matching one date.
func StatsForDay(sales []models.Sale, date string) DayStats {
	stats := DayStats{Date: date}
	for _, sale := range sales {
		if sale.Date != date {
			continue
		}
		stats.Revenue += sale.TotalAmount
		stats.Profit += sale.Profit
		stats.SaleCount++
	}
	return stats
}

// TotalAssets values the stock on hand at purchase price.
func TotalAssets(products []models.Product) float64 {
	var total float64
	for _, p := range products {
		total += p.PurchasePrice * float64(p.Stock)
	}
	return total
}

// MonthlyStats buckets sales and expenses by month, sorted ascending.
func MonthlyStats(sales []models.Sale, expenses []models.Expense) []MonthStats {
	byMonth := map[string]*MonthStats{}
	bucket := func(month string) *MonthStats {
		if stats, ok := byMonth[month]; ok {
			return stats
		}
		stats := &MonthStats{Month: month}
		byMonth[month] = stats
		return stats
	}

	for _, sale := range sales {
		if len(sale.Date) < 7 {
			continue
		}
		stats := bucket(sale.Date[:7])
		stats.Revenue += sale.TotalAmount
		stats.Profit += sale.Profit
	}
	for _, exp := range expenses {
		if len(exp.Date) < 7 {
			continue
		}
		bucket(exp.Date[:7]).Expenses += exp.Amount
	}

	months := make([]MonthStats, 0, len(byMonth))
	for _, stats := range byMonth {
		months = append(months, *stats)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Month < months[j].Month })
	return months
}
