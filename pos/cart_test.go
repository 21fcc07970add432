package pos

import (
	"testing"

	"pharmadesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartTotals(t *testing.T) {
	items := []models.CartItem{
		{ProductID: "p1", Name: "Paracetamol", MRP: 100, CostPrice: 60, Quantity: 3, Discount: 50},
	}

	assert.Equal(t, 300.0, Subtotal(items))
	assert.Equal(t, 50.0, TotalDiscount(items))
	assert.Equal(t, 250.0, TotalAmount(items))
	// 3×(100−60) − 50
	assert.Equal(t, 70.0, Profit(items))
}

func TestClampDiscount(t *testing.T) {
	assert.Equal(t, 0.0, ClampDiscount(100, 2, -10))
	assert.Equal(t, 200.0, ClampDiscount(100, 2, 999))
	assert.Equal(t, 35.0, ClampDiscount(100, 2, 35))
}

func TestTotalAmountNeverNegative(t *testing.T) {
	items := []models.CartItem{
		{ProductID: "p1", MRP: 10, Quantity: 1, Discount: 500},
		{ProductID: "p2", MRP: 20, Quantity: 2, Discount: 500},
	}
	assert.Equal(t, 0.0, TotalAmount(items))
	assert.Equal(t, Subtotal(items)-TotalDiscount(items), TotalAmount(items))
}

func TestAddToCartMergesLines(t *testing.T) {
	product := models.Product{ID: "p1", Name: "Napa", MRP: 8, PurchasePrice: 5, Stock: 10}

	items, err := AddToCart(nil, product, 4)
	require.NoError(t, err)
	items, err = AddToCart(items, product, 6)
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, 10, items[0].Quantity)

	// the next unit would exceed stock
	_, err = AddToCart(items, product, 1)
	assert.Error(t, err)
}

func TestAddToCartRejectsBadInput(t *testing.T) {
	inStock := models.Product{ID: "p1", Name: "Napa", Stock: 5}
	outOfStock := models.Product{ID: "p2", Name: "Seclo", Stock: 0}

	_, err := AddToCart(nil, inStock, 0)
	assert.Error(t, err)
	_, err = AddToCart(nil, outOfStock, 1)
	assert.Error(t, err)
	_, err = AddToCart(nil, inStock, 6)
	assert.Error(t, err)
}

func TestValidateCartRewritesPrices(t *testing.T) {
	products := map[string]models.Product{
		"p1": {ID: "p1", Name: "Napa", MRP: 8, PurchasePrice: 5, Stock: 100},
	}
	items := []models.CartItem{
		// client-supplied prices must not survive validation
		{ProductID: "p1", MRP: 1, CostPrice: 0, Quantity: 2, Discount: 100},
	}

	normalized, err := ValidateCart(items, products)
	require.NoError(t, err)
	require.Len(t, normalized, 1)
	assert.Equal(t, 8.0, normalized[0].MRP)
	assert.Equal(t, 5.0, normalized[0].CostPrice)
	assert.Equal(t, 16.0, normalized[0].Discount) // clamped to mrp×qty
}

func TestValidateCartRejections(t *testing.T) {
	products := map[string]models.Product{
		"p1": {ID: "p1", Name: "Napa", MRP: 8, Stock: 3},
	}

	_, err := ValidateCart(nil, products)
	assert.Error(t, err, "empty cart")

	_, err = ValidateCart([]models.CartItem{{ProductID: "ghost", Quantity: 1}}, products)
	assert.Error(t, err, "unknown product")

	_, err = ValidateCart([]models.CartItem{{ProductID: "p1", Quantity: 0}}, products)
	assert.Error(t, err, "zero quantity")

	_, err = ValidateCart([]models.CartItem{{ProductID: "p1", Quantity: 4}}, products)
	assert.Error(t, err, "over stock")
}
