package expense

import (
	"encoding/json"
	"log"
	"net/http"

	"pharmadesk/db"
	"pharmadesk/models"
	"pharmadesk/store"
	"pharmadesk/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var defaultCategories = []models.ExpenseCategory{
	{Name: "Rent", Description: "Shop rent and utilities"},
	{Name: "Salary", Description: "Staff salaries"},
	{Name: "Purchase", Description: "Stock purchases"},
	{Name: "Transport", Description: "Delivery and transport"},
	{Name: "Miscellaneous", Description: "Everything else"},
}

// GetCategories lists categories, seeding the defaults on an empty
// collection.
func GetCategories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var categories []models.ExpenseCategory
	if err := store.List(ctx, db.ExpenseCategoriesCollection, "name", &categories); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Failed to load categories", err)
		return
	}

	if len(categories) == 0 {
		for _, cat := range defaultCategories {
			if _, err := store.Create(ctx, db.ExpenseCategoriesCollection, cat, requestingUser(r)); err != nil {
				log.Printf("Failed to seed expense category %s: %v", cat.Name, err)
			}
		}
		if err := store.List(ctx, db.ExpenseCategoriesCollection, "name", &categories); err != nil {
			utils.SendResponse(w, http.StatusInternalServerError, nil, "Failed to load categories", err)
			return
		}
	}

	utils.SendJSONResponse(w, http.StatusOK, categories)
}

func CreateCategory(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var cat models.ExpenseCategory
	if err := json.NewDecoder(r.Body).Decode(&cat); err != nil || cat.Name == "" {
		http.Error(w, "Category name is required", http.StatusBadRequest)
		return
	}

	id, err := store.Create(r.Context(), db.ExpenseCategoriesCollection, cat, requestingUser(r))
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Error saving category", err)
		return
	}
	utils.SendResponse(w, http.StatusCreated, map[string]string{"id": id}, "Category added successfully", nil)
}

func EditCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var cat models.ExpenseCategory
	if err := json.NewDecoder(r.Body).Decode(&cat); err != nil || cat.Name == "" {
		http.Error(w, "Category name is required", http.StatusBadRequest)
		return
	}

	err := store.Update(r.Context(), db.ExpenseCategoriesCollection, ps.ByName("categoryid"), bson.M{
		"name":        cat.Name,
		"description": cat.Description,
	})
	if err == mongo.ErrNoDocuments {
		http.Error(w, "Category not found", http.StatusNotFound)
		return
	}
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Error updating category", err)
		return
	}
	utils.SendResponse(w, http.StatusOK, nil, "Category updated successfully", nil)
}

// DeleteCategory refuses while any expense still references the category.
func DeleteCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	categoryID := ps.ByName("categoryid")

	var referencing []models.Expense
	if err := store.Query(r.Context(), db.ExpensesCollection, "categoryId", categoryID, &referencing); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Error deleting category", err)
		return
	}
	if len(referencing) > 0 {
		http.Error(w, "Cannot delete category with existing expenses", http.StatusConflict)
		return
	}

	err := store.Delete(r.Context(), db.ExpenseCategoriesCollection, categoryID)
	if err == mongo.ErrNoDocuments {
		http.Error(w, "Category not found", http.StatusNotFound)
		return
	}
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Error deleting category", err)
		return
	}
	utils.SendResponse(w, http.StatusOK, nil, "Category deleted successfully", nil)
}
