package stock

import (
	"encoding/json"
	"log"
	"net/http"

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

// GetProducts lists products, optionally narrowed by ?search= and
// ?manufacturer= the way the stock page filter boxes did.
func GetProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var products []models.Product
	if err := store.List(r.Context(), db.ProductsCollection, "name", &products); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Failed to load products", err)
		return
	}

	search := r.URL.Query().Get("search")
	manufacturer := r.URL.Query().Get("manufacturer")
	products = FilterProducts(products, search, manufacturer)

	if products == nil {
		products = []models.Product{}
	}
	utils.SendJSONResponse(w, http.StatusOK, products)
}

func GetProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var product models.Product
	err := store.Get(r.Context(), db.ProductsCollection, ps.ByName("productid"), &product)
	if err == mongo.ErrNoDocuments {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Failed to load product", err)
		return
	}
	utils.SendJSONResponse(w, http.StatusOK, product)
}

func CreateProduct(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	id, err := store.Create(r.Context(), db.ProductsCollection, product, requestingUser(r))
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, nil, "Error saving product", err)
		return
	}

	log.Printf("Product added: %s (%s)", product.Name, id)
	utils.SendResponse(w, http.StatusCreated, map[string]string{"id": id}, "Product added successfully", nil)
}

func EditProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if err := product.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err := store.Update(r.Context(), db.ProductsCollection, ps.ByName("productid"), bson.M{
		"name":          product.Name,
		"manufacturer":  product.Manufacturer,
		"batchNo":       product.BatchNo,
		"purchasePrice": product.PurchasePrice,
		"mrp":           product.MRP,
		"stock":         product.Stock,
		"minStock":      product.MinStock,
		"expiryDate":    product.ExpiryDate,
		"description":   product.Description,
	})
	if err == mongo.ErrNoDocuments {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Error updating product", err)
		return
	}

	utils.SendResponse(w, http.StatusOK, nil, "Product updated successfully", nil)
}

func DeleteProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	err := store.Delete(r.Context(), db.ProductsCollection, ps.ByName("productid"))
	if err == mongo.ErrNoDocuments {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Error deleting product", err)
		return
	}
	utils.SendResponse(w, http.StatusOK, nil, "Product deleted successfully", nil)
}

func GetManufacturers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var manufacturers []models.Manufacturer
	if err := store.List(r.Context(), db.ManufacturersCollection, "name", &manufacturers); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Failed to load manufacturers", err)
		return
	}
	if manufacturers == nil {
		manufacturers = []models.Manufacturer{}
	}
	utils.SendJSONResponse(w, http.StatusOK, manufacturers)
}

func CreateManufacturer(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var m models.Manufacturer
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil || m.Name == "" {
		http.Error(w, "Manufacturer name is required", http.StatusBadRequest)
		return
	}

	id, err := store.Create(r.Context(), db.ManufacturersCollection, m, requestingUser(r))
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Error saving manufacturer", err)
		return
	}
	utils.SendResponse(w, http.StatusCreated, map[string]string{"id": id}, "Manufacturer added successfully", nil)
}
