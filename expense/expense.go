package expense

import (
	"encoding/json"
	"net/http"
	"time"

	"pharmadesk/db"
	"pharmadesk/globals"
	"pharmadesk/models"
	"pharmadesk/store"
	"pharmadesk/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func requestingUser(r *http.Request) string {
	userID, _ := r.Context().Value(globals.UserIDKey).(string)
	return userID
}

// GetExpenses lists expenses, optionally filtered by ?category= and ?month=.
func GetExpenses(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var expenses []models.Expense
	if err := store.List(r.Context(), db.ExpensesCollection, "date", &expenses); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Failed to load expenses", err)
		return
	}

	expenses = FilterExpenses(expenses, r.URL.Query().Get("category"), r.URL.Query().Get("month"))
	if expenses == nil {
		expenses = []models.Expense{}
	}
	utils.SendJSONResponse(w, http.StatusOK, expenses)
}

func CreateExpense(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var exp models.Expense
	if err := json.NewDecoder(r.Body).Decode(&exp); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	id, err := store.Create(r.Context(), db.ExpensesCollection, exp, requestingUser(r))
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, nil, "Error saving expense", err)
		return
	}
	utils.SendResponse(w, http.StatusCreated, map[string]string{"id": id}, "Expense added successfully", nil)
}

func EditExpense(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var exp models.Expense
	if err := json.NewDecoder(r.Body).Decode(&exp); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if err := exp.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err := store.Update(r.Context(), db.ExpensesCollection, ps.ByName("expenseid"), bson.M{
		"date":          exp.Date,
		"categoryId":    exp.CategoryID,
		"amount":        exp.Amount,
		"description":   exp.Description,
		"paymentMethod": exp.PaymentMethod,
		"referenceNo":   exp.ReferenceNo,
	})
	if err == mongo.ErrNoDocuments {
		http.Error(w, "Expense not found", http.StatusNotFound)
		return
	}
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Error updating expense", err)
		return
	}
	utils.SendResponse(w, http.StatusOK, nil, "Expense updated successfully", nil)
}

func DeleteExpense(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	err := store.Delete(r.Context(), db.ExpensesCollection, ps.ByName("expenseid"))
	if err == mongo.ErrNoDocuments {
		http.Error(w, "Expense not found", http.StatusNotFound)
		return
	}
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Error deleting expense", err)
		return
	}
	utils.SendResponse(w, http.StatusOK, nil, "Expense deleted successfully", nil)
}

// GetSummary serves the stat cards and the current month's category
// breakdown; ?month= overrides the breakdown month.
func GetSummary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var expenses []models.Expense
	if err := store.List(ctx, db.ExpensesCollection, "date", &expenses); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Failed to load expenses", err)
		return
	}
	var categories []models.ExpenseCategory
	if err := store.List(ctx, db.ExpenseCategoriesCollection, "name", &categories); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Failed to load categories", err)
		return
	}

	now := time.Now()
	month := r.URL.Query().Get("month")
	if month == "" {
		month = utils.MonthString(now)
	}

	utils.SendJSONResponse(w, http.StatusOK, map[string]any{
		"summary":   Summarize(expenses, now),
		"breakdown": Breakdown(expenses, categories, month),
	})
}
