package stock

import (
	"net/http"
	"sort"
	"strconv"
	"time"

	"pharmadesk/db"
	"pharmadesk/models"
	"pharmadesk/store"
	"pharmadesk/utils"

	"github.com/julienschmidt/httprouter"
)

// ExpiringProduct is a product annotated with its remaining shelf days.
type ExpiringProduct struct {
	models.Product
	DaysUntilExpiry int `json:"daysUntilExpiry"`
}

// FilterProducts narrows by case-insensitive name/manufacturer search and an
// exact manufacturer match.
func FilterProducts(products []models.Product, search, manufacturer string) []models.Product {
	if search == "" && manufacturer == "" {
		return products
	}
	var out []models.Product
	for _, p := range products {
		if manufacturer != "" && p.Manufacturer != manufacturer {
			continue
		}
		if search != "" &&
			!utils.ContainsIgnoreCase(p.Name, search) &&
			!utils.ContainsIgnoreCase(p.Manufacturer, search) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// LowStockProducts returns products strictly below their minimum stock level.
// A product sitting exactly at minStock is not low.
func LowStockProducts(products []models.Product) []models.Product {
	var out []models.Product
	for _, p := range products {
		if p.Stock < p.MinStock {
			out = append(out, p)
		}
	}
	return out
}

// ExpiringProducts returns products whose expiry date falls within the next
// `days` days of today (inclusive on the last day), sorted by remaining days.
// Already-expired products are included with a negative remainder.
func ExpiringProducts(products []models.Product, today time.Time, days int) []ExpiringProduct {
	cutoff := today.AddDate(0, 0, days)
	var out []ExpiringProduct
	for _, p := range products {
		if p.ExpiryDate == "" {
			continue
		}
		expiry, err := time.Parse("2006-01-02", p.ExpiryDate)
		if err != nil {
			continue
		}
		if expiry.After(cutoff) {
			continue
		}
		remaining := int(expiry.Sub(today).Hours() / 24)
		out = append(out, ExpiringProduct{Product: p, DaysUntilExpiry: remaining})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].DaysUntilExpiry < out[j].DaysUntilExpiry
	})
	return out
}

// GetLowStock serves the low stock view.
func GetLowStock(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var products []models.Product
	if err := store.List(r.Context(), db.ProductsCollection, "name", &products); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Failed to load products", err)
		return
	}

	low := LowStockProducts(products)
	if low == nil {
		low = []models.Product{}
	}
	utils.SendJSONResponse(w, http.StatusOK, low)
}

// GetExpiring serves the expiry view; ?days= overrides the 30 day window.
func GetExpiring(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var products []models.Product
	if err := store.List(r.Context(), db.ProductsCollection, "name", &products); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Failed to load products", err)
		return
	}

	days := 30
	if d := r.URL.Query().Get("days"); d != "" {
		if parsed, err := strconv.Atoi(d); err == nil && parsed > 0 {
			days = parsed
		}
	}

	today, _ := time.Parse("2006-01-02", utils.DateString(time.Now()))
	expiring := ExpiringProducts(products, today, days)
	if expiring == nil {
		expiring = []ExpiringProduct{}
	}
	utils.SendJSONResponse(w, http.StatusOK, expiring)
}
