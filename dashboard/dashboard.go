package dashboard

import (
	"net/http"
	"time"

	"pharmadesk/db"
	"pharmadesk/models"
	"pharmadesk/store"
	"pharmadesk/utils"

	"github.com/julienschmidt/httprouter"
)

// GetOverview returns today's trading figures plus stock valuation.
func GetOverview(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	today := utils.DateString(time.Now())

	var sales []models.Sale
	if err := store.Query(ctx, db.SalesCollection, "date", today, &sales); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Failed to load dashboard", err)
		return
	}
	var products []models.Product
	if err := store.List(ctx, db.ProductsCollection, "name", &products); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Failed to load dashboard", err)
		return
	}

	stats := StatsForDay(sales, today)
	utils.SendJSONResponse(w, http.StatusOK, map[string]any{
		"date":          today,
		"todayRevenue":  stats.Revenue,
		"todayProfit":   stats.Profit,
		"todaySales":    stats.SaleCount,
		"totalAssets":   TotalAssets(products),
		"totalProducts": len(products),
	})
}

// GetDailyStats reports revenue, profit and sale count for one date.
func GetDailyStats(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	date := ps.ByName("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		http.Error(w, "Invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	var sales []models.Sale
	if err := store.Query(r.Context(), db.SalesCollection, "date", date, &sales); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Failed to load stats", err)
		return
	}
	utils.SendJSONResponse(w, http.StatusOK, StatsForDay(sales, date))
}

// GetMonthlyStats reports per-month revenue, profit and expenses across
// the whole history.
func GetMonthlyStats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var sales []models.Sale
	if err := store.List(ctx, db.SalesCollection, "date", &sales); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Failed to load stats", err)
		return
	}
	var expenses []models.Expense
	if err := store.List(ctx, db.ExpensesCollection, "date", &expenses); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Failed to load stats", err)
		return
	}

	months := MonthlyStats(sales, expenses)
	if months == nil {
		months = []MonthStats{}
	}
	utils.SendJSONResponse(w, http.StatusOK, months)
}
