package crm

import (
	"testing"
	"time"

	"pharmadesk/models"
)

var analyticsNow = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

func TestPendingDue(t *testing.T) {
	credits := []models.CreditSale{
		{CustomerID: "c1", Status: "pending", DueAmount: 120},
		{CustomerID: "c1", Status: "paid", DueAmount: 0},
		{CustomerID: "c2", Status: "pending", DueAmount: 80},
	}
	if got := PendingDue(credits); got != 200 {
		t.Errorf("expected 200 due, got %v", got)
	}
}

func TestLastVisit(t *testing.T) {
	sales := []models.Sale{
		{Date: "2026-08-01"},
		{Date: "2026-08-15"},
		{Date: "2026-07-30"},
	}
	if got := LastVisit(sales); got != "2026-08-15" {
		t.Errorf("expected 2026-08-15, got %s", got)
	}
	if got := LastVisit(nil); got != "" {
		t.Errorf("expected empty last visit, got %s", got)
	}
}

func TestComputeAnalytics(t *testing.T) {
	customers := []models.Customer{{ID: "c1"}, {ID: "c2"}, {ID: "c3"}}
	sales := []models.Sale{
		{CustomerID: "c1", Date: "2026-08-20", TotalAmount: 100},
		{CustomerID: "c2", Date: "2026-06-01", TotalAmount: 200}, // outside 30 days
	}
	credits := []models.CreditSale{
		{CustomerID: "c2", Status: "pending", DueAmount: 50},
	}

	a := ComputeAnalytics(customers, sales, credits, analyticsNow)
	if a.TotalCustomers != 3 {
		t.Errorf("expected 3 customers, got %d", a.TotalCustomers)
	}
	if a.ActiveCustomers != 1 {
		t.Errorf("expected 1 active customer, got %d", a.ActiveCustomers)
	}
	if a.TotalDue != 50 {
		t.Errorf("expected 50 due, got %v", a.TotalDue)
	}
	if a.AvgPurchase != 100 {
		t.Errorf("expected avg purchase 100, got %v", a.AvgPurchase)
	}
}

func TestSelectSMSGroup(t *testing.T) {
	customers := []models.Customer{{ID: "c1"}, {ID: "c2"}, {ID: "c3"}}
	sales := []models.Sale{
		{CustomerID: "c1", Date: "2026-08-25"},
		{CustomerID: "c3", Date: "2026-01-01"},
	}
	credits := []models.CreditSale{
		{CustomerID: "c2", Status: "pending", DueAmount: 10},
		{CustomerID: "c3", Status: "paid", DueAmount: 0},
	}

	if got := SelectSMSGroup("all", customers, sales, credits, analyticsNow); len(got) != 3 {
		t.Errorf("expected all 3 customers, got %d", len(got))
	}

	due := SelectSMSGroup("due", customers, sales, credits, analyticsNow)
	if len(due) != 1 || due[0].ID != "c2" {
		t.Errorf("expected only c2 in due group, got %v", due)
	}

	recent := SelectSMSGroup("recent", customers, sales, credits, analyticsNow)
	if len(recent) != 1 || recent[0].ID != "c1" {
		t.Errorf("expected only c1 in recent group, got %v", recent)
	}
}
