// Package crm covers the customer book: profiles, purchase history, credit
// dues, and the bulk SMS groups.
package crm

import (
	"time"

	"pharmadesk/models"
)

// TotalPurchase sums sale amounts.
func TotalPurchase(sales []models.Sale) float64 {
	var sum float64
	for _, s := range sales {
		sum += s.TotalAmount
	}
	return sum
}

// PendingDue sums outstanding amounts across pending credit records.
func PendingDue(credits []models.CreditSale) float64 {
	var sum float64
	for _, c := range credits {
		if c.Status == "pending" {
			sum += c.DueAmount
		}
	}
	return sum
}

// LastVisit returns the most recent sale date, or "" with no sales.
func LastVisit(sales []models.Sale) string {
	var last string
	for _, s := range sales {
		if s.Date > last {
			last = s.Date
		}
	}
	return last
}

func salesFor(sales []models.Sale, customerID string) []models.Sale {
	var out []models.Sale
	for _, s := range sales {
		if s.CustomerID == customerID {
			out = append(out, s)
		}
	}
	return out
}

func creditsFor(credits []models.CreditSale, customerID string) []models.CreditSale {
	var out []models.CreditSale
	for _, c := range credits {
		if c.CustomerID == customerID {
			out = append(out, c)
		}
	}
	return out
}

// Analytics is the CRM page's headline numbers.
type Analytics struct {
	TotalCustomers  int     `json:"totalCustomers"`
	ActiveCustomers int     `json:"activeCustomers"`
	TotalDue        float64 `json:"totalDue"`
	AvgPurchase     float64 `json:"avgPurchase"`
}

// ComputeAnalytics derives the CRM headline numbers from full collection
// snapshots. Active means at least one sale in the 30 days before now.
func ComputeAnalytics(customers []models.Customer, sales []models.Sale, credits []models.CreditSale, now time.Time) Analytics {
	since := now.AddDate(0, 0, -30).Format("2006-01-02")

	active := 0
	for _, customer := range customers {
		for _, s := range sales {
			if s.CustomerID == customer.ID && s.Date >= since {
				active++
				break
			}
		}
	}

	a := Analytics{
		TotalCustomers:  len(customers),
		ActiveCustomers: active,
		TotalDue:        PendingDue(credits),
	}
	if len(customers) > 0 {
		a.AvgPurchase = TotalPurchase(sales) / float64(len(customers))
	}
	return a
}

// SelectSMSGroup resolves a bulk SMS audience: "all", "due" (pending credit),
// or "recent" (a sale within 30 days of now).
func SelectSMSGroup(group string, customers []models.Customer, sales []models.Sale, credits []models.CreditSale, now time.Time) []models.Customer {
	switch group {
	case "due":
		var out []models.Customer
		for _, customer := range customers {
			if PendingDue(creditsFor(credits, customer.ID)) > 0 {
				out = append(out, customer)
			}
		}
		return out
	case "recent":
		since := now.AddDate(0, 0, -30).Format("2006-01-02")
		var out []models.Customer
		for _, customer := range customers {
			for _, s := range sales {
				if s.CustomerID == customer.ID && s.Date >= since {
					out = append(out, customer)
					break
				}
			}
		}
		return out
	default:
		return customers
	}
}
