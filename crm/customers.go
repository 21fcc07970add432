package crm

import (
	"encoding/json"
	"log"
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

func GetCustomers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var customers []models.Customer
	if err := store.List(r.Context(), db.CustomersCollection, "name", &customers); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Failed to load customers", err)
		return
	}

	if search := r.URL.Query().Get("search"); search != "" {
		var filtered []models.Customer
		for _, c := range customers {
			if utils.ContainsIgnoreCase(c.Name, search) ||
				utils.ContainsIgnoreCase(c.Mobile, search) ||
				utils.ContainsIgnoreCase(c.Email, search) ||
				utils.ContainsIgnoreCase(c.Address, search) {
				filtered = append(filtered, c)
			}
		}
		customers = filtered
	}

	if customers == nil {
		customers = []models.Customer{}
	}
	utils.SendJSONResponse(w, http.StatusOK, customers)
}

func CreateCustomer(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var customer models.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if err := customer.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Reject duplicate mobile numbers on create
	var existing []models.Customer
	if err := store.Query(r.Context(), db.CustomersCollection, "mobile", customer.Mobile, &existing); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Error saving customer", err)
		return
	}
	if len(existing) > 0 {
		http.Error(w, "Customer with this mobile number already exists", http.StatusConflict)
		return
	}

	id, err := store.Create(r.Context(), db.CustomersCollection, customer, requestingUser(r))
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Error saving customer", err)
		return
	}

	log.Printf("Customer added: %s (%s)", customer.Name, id)
	utils.SendResponse(w, http.StatusCreated, map[string]string{"id": id}, "Customer added successfully", nil)
}

func EditCustomer(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var customer models.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if err := customer.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err := store.Update(r.Context(), db.CustomersCollection, ps.ByName("customerid"), bson.M{
		"name":           customer.Name,
		"mobile":         customer.Mobile,
		"email":          customer.Email,
		"dateOfBirth":    customer.DateOfBirth,
		"address":        customer.Address,
		"gender":         customer.Gender,
		"bloodGroup":     customer.BloodGroup,
		"medicalHistory": customer.MedicalHistory,
	})
	if err == mongo.ErrNoDocuments {
		http.Error(w, "Customer not found", http.StatusNotFound)
		return
	}
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Error updating customer", err)
		return
	}

	utils.SendResponse(w, http.StatusOK, nil, "Customer updated successfully", nil)
}

// DeleteCustomer refuses while any sale or credit record references the
// customer.
func DeleteCustomer(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	customerID := ps.ByName("customerid")
	ctx := r.Context()

	var sales []models.Sale
	if err := store.Query(ctx, db.SalesCollection, "customerId", customerID, &sales); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Error deleting customer", err)
		return
	}
	var credits []models.CreditSale
	if err := store.Query(ctx, db.CreditSalesCollection, "customerId", customerID, &credits); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Error deleting customer", err)
		return
	}
	if len(sales) > 0 || len(credits) > 0 {
		http.Error(w, "Cannot delete customer with existing sales or credit records", http.StatusConflict)
		return
	}

	err := store.Delete(ctx, db.CustomersCollection, customerID)
	if err == mongo.ErrNoDocuments {
		http.Error(w, "Customer not found", http.StatusNotFound)
		return
	}
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Error deleting customer", err)
		return
	}
	utils.SendResponse(w, http.StatusOK, nil, "Customer deleted successfully", nil)
}

// GetCustomerDetails returns the profile together with its business summary.
func GetCustomerDetails(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	customerID := ps.ByName("customerid")
	ctx := r.Context()

	var customer models.Customer
	err := store.Get(ctx, db.CustomersCollection, customerID, &customer)
	if err == mongo.ErrNoDocuments {
		http.Error(w, "Customer not found", http.StatusNotFound)
		return
	}
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Error loading customer details", err)
		return
	}

	var sales []models.Sale
	if err := store.Query(ctx, db.SalesCollection, "customerId", customerID, &sales); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Error loading customer details", err)
		return
	}
	var credits []models.CreditSale
	if err := store.Query(ctx, db.CreditSalesCollection, "customerId", customerID, &credits); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Error loading customer details", err)
		return
	}

	var totalProfit float64
	for _, s := range sales {
		totalProfit += s.Profit
	}

	utils.SendJSONResponse(w, http.StatusOK, map[string]any{
		"customer":      customer,
		"sales":         sales,
		"credits":       credits,
		"totalPurchase": TotalPurchase(sales),
		"totalProfit":   totalProfit,
		"totalDue":      PendingDue(credits),
		"lastVisit":     LastVisit(sales),
	})
}

// GetAnalytics serves the CRM headline numbers.
func GetAnalytics(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var customers []models.Customer
	if err := store.List(ctx, db.CustomersCollection, "", &customers); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Error loading analytics", err)
		return
	}
	var sales []models.Sale
	if err := store.List(ctx, db.SalesCollection, "", &sales); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Error loading analytics", err)
		return
	}
	var credits []models.CreditSale
	if err := store.List(ctx, db.CreditSalesCollection, "", &credits); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Error loading analytics", err)
		return
	}

	utils.SendJSONResponse(w, http.StatusOK, ComputeAnalytics(customers, sales, credits, time.Now()))
}
