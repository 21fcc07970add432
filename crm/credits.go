package crm

import (
	"net/http"
	"time"

	"pharmadesk/db"
	"pharmadesk/models"
	"pharmadesk/store"
	"pharmadesk/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func GetCreditSales(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var credits []models.CreditSale
	if err := store.List(r.Context(), db.CreditSalesCollection, "date", &credits); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Failed to load credit sales", err)
		return
	}

	if status := r.URL.Query().Get("status"); status != "" {
		var filtered []models.CreditSale
		for _, c := range credits {
			if c.Status == status {
				filtered = append(filtered, c)
			}
		}
		credits = filtered
	}

	if credits == nil {
		credits = []models.CreditSale{}
	}
	utils.SendJSONResponse(w, http.StatusOK, credits)
}

// MarkCreditPaid settles a pending credit in full.
func MarkCreditPaid(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	creditID := ps.ByName("creditid")

	var credit models.CreditSale
	err := store.Get(r.Context(), db.CreditSalesCollection, creditID, &credit)
	if err == mongo.ErrNoDocuments {
		http.Error(w, "Credit record not found", http.StatusNotFound)
		return
	}
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Error updating credit status", err)
		return
	}

	err = store.Update(r.Context(), db.CreditSalesCollection, creditID, bson.M{
		"status":      "paid",
		"paidAmount":  credit.TotalAmount,
		"dueAmount":   0.0,
		"paymentDate": time.Now().Format(time.RFC3339),
	})
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Error updating credit status", err)
		return
	}

	utils.SendResponse(w, http.StatusOK, nil, "Credit marked as paid successfully", nil)
}
