package pos

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"pharmadesk/db"
	"pharmadesk/globals"
	"pharmadesk/live"
	"pharmadesk/models"
	"pharmadesk/mq"
	"pharmadesk/store"
	"pharmadesk/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

type CheckoutRequest struct {
	CustomerID     string            `json:"customerId"`
	Items          []models.CartItem `json:"items"`
	ReceivedAmount float64           `json:"receivedAmount"`
	PaymentMethod  string            `json:"paymentMethod"`
}

// Checkout processes a sale: one Sale write, then a guarded stock decrement
// per line item, then a CreditSale when the method is credit. Steps after the
// Sale write are not rolled back on failure; each is reported individually.
func Checkout(hub *live.Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		var req CheckoutRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		ctx := r.Context()
		userID, _ := ctx.Value(globals.UserIDKey).(string)

		products, err := loadCartProducts(ctx, req.Items)
		if err != nil {
			utils.SendResponse(w, http.StatusInternalServerError, nil, "Failed to load products", err)
			return
		}

		items, err := ValidateCart(req.Items, products)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		customerName := "Anonymous"
		if req.CustomerID != "" {
			var customer models.Customer
			if err := store.Get(ctx, db.CustomersCollection, req.CustomerID, &customer); err != nil {
				http.Error(w, "Customer not found", http.StatusBadRequest)
				return
			}
			customerName = customer.Name
		}

		now := time.Now()
		sale := models.Sale{
			ID:             utils.GenerateID(14),
			CustomerID:     req.CustomerID,
			CustomerName:   customerName,
			Items:          items,
			Subtotal:       Subtotal(items),
			TotalDiscount:  TotalDiscount(items),
			TotalAmount:    TotalAmount(items),
			ReceivedAmount: req.ReceivedAmount,
			PaymentMethod:  req.PaymentMethod,
			Profit:         Profit(items),
			Date:           utils.DateString(now),
			Timestamp:      now.Format(time.RFC3339),
		}

		if _, err := store.Create(ctx, db.SalesCollection, sale, userID); err != nil {
			utils.SendResponse(w, http.StatusInternalServerError, nil, "Error processing payment", err)
			return
		}

		decrementStock(ctx, hub, items)

		if req.PaymentMethod == "credit" && req.CustomerID != "" {
			due := sale.TotalAmount - sale.ReceivedAmount
			if due > 0 {
				credit := models.CreditSale{
					SaleID:         sale.ID,
					CustomerID:     sale.CustomerID,
					CustomerName:   sale.CustomerName,
					Items:          sale.Items,
					TotalAmount:    sale.TotalAmount,
					ReceivedAmount: sale.ReceivedAmount,
					PaidAmount:     sale.ReceivedAmount,
					DueAmount:      due,
					Status:         "pending",
					Date:           sale.Date,
				}
				if _, err := store.Create(ctx, db.CreditSalesCollection, credit, userID); err != nil {
					// The sale itself went through; report, don't undo.
					log.Printf("Warning: credit sale write failed for sale %s: %v", sale.ID, err)
				}
			}
		}

		mq.Emit("sale-completed", mq.Event{EntityID: sale.ID})
		hub.Broadcast("sale_completed", map[string]any{
			"saleId":      sale.ID,
			"totalAmount": sale.TotalAmount,
		})

		change := sale.ReceivedAmount - sale.TotalAmount
		if change < 0 {
			change = 0
		}
		utils.SendResponse(w, http.StatusCreated, map[string]any{
			"saleId":       sale.ID,
			"subtotal":     sale.Subtotal,
			"discount":     sale.TotalDiscount,
			"totalAmount":  sale.TotalAmount,
			"changeAmount": change,
			"profit":       sale.Profit,
		}, "Sale completed successfully", nil)
	}
}

func loadCartProducts(ctx context.Context, items []models.CartItem) (map[string]models.Product, error) {
	products := make(map[string]models.Product, len(items))
	for _, item := range items {
		if _, seen := products[item.ProductID]; seen {
			continue
		}
		var product models.Product
		if err := store.Get(ctx, db.ProductsCollection, item.ProductID, &product); err != nil {
			// Missing products surface later as a validation error.
			continue
		}
		products[item.ProductID] = product
	}
	return products, nil
}

// decrementStock applies one guarded $inc per line item. The stock filter
// stops a concurrent checkout from driving a count negative; a miss means the
// sale stands but the shelf count no longer covers it, which is logged and
// left for the operator.
func decrementStock(ctx context.Context, hub *live.Hub, items []models.CartItem) {
	for _, item := range items {
		res, err := db.ProductsCollection.UpdateOne(ctx,
			bson.M{"id": item.ProductID, "stock": bson.M{"$gte": item.Quantity}},
			bson.M{
				"$inc": bson.M{"stock": -item.Quantity},
				"$set": bson.M{"updatedAt": time.Now().Format(time.RFC3339)},
			},
		)
		if err != nil {
			log.Printf("Warning: stock decrement failed for %s: %v", item.ProductID, err)
			continue
		}
		if res.MatchedCount == 0 {
			log.Printf("Warning: stock for %s changed under us; decrement skipped", item.ProductID)
			continue
		}

		var product models.Product
		if err := store.Get(ctx, db.ProductsCollection, item.ProductID, &product); err != nil {
			continue
		}
		hub.Broadcast("stock_update", map[string]any{
			"productId": product.ID,
			"stock":     product.Stock,
		})
		if product.Stock < product.MinStock {
			mq.Emit("stock-low", mq.Event{EntityID: product.ID, Detail: product.Name})
		}
	}
}

// GetSales lists completed sales ordered by date.
func GetSales(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var sales []models.Sale
	if err := store.List(r.Context(), db.SalesCollection, "date", &sales); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Failed to load sales", err)
		return
	}
	if sales == nil {
		sales = []models.Sale{}
	}
	utils.SendJSONResponse(w, http.StatusOK, sales)
}
