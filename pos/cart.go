// Package pos implements the checkout workflow: cart arithmetic, stock
// checks, and the sale / stock-decrement / credit-sale write sequence.
package pos

import (
	"fmt"

	"pharmadesk/models"
)

// ClampDiscount bounds a line discount to [0, mrp*quantity].
func ClampDiscount(mrp float64, quantity int, discount float64) float64 {
	max := mrp * float64(quantity)
	if discount < 0 {
		return 0
	}
	if discount > max {
		return max
	}
	return discount
}

// Subtotal is Σ mrp×quantity before any discount.
func Subtotal(items []models.CartItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.MRP * float64(item.Quantity)
	}
	return sum
}

// TotalDiscount is Σ discount with each line clamped.
func TotalDiscount(items []models.CartItem) float64 {
	var sum float64
	for _, item := range items {
		sum += ClampDiscount(item.MRP, item.Quantity, item.Discount)
	}
	return sum
}

// TotalAmount is subtotal minus total discount. Clamping keeps it ≥ 0.
func TotalAmount(items []models.CartItem) float64 {
	return Subtotal(items) - TotalDiscount(items)
}

// Profit is Σ quantity×(mrp−cost) minus the total discount.
func Profit(items []models.CartItem) float64 {
	var sum float64
	for _, item := range items {
		sum += float64(item.Quantity) * (item.MRP - item.CostPrice)
		sum -= ClampDiscount(item.MRP, item.Quantity, item.Discount)
	}
	return sum
}

// AddToCart appends quantity of product to the cart, merging with an existing
// line. The combined quantity may not exceed the product's recorded stock.
func AddToCart(items []models.CartItem, product models.Product, quantity int) ([]models.CartItem, error) {
	if quantity < 1 {
		return items, fmt.Errorf("quantity must be at least 1")
	}
	if product.Stock <= 0 {
		return items, fmt.Errorf("%s is out of stock", product.Name)
	}

	for i := range items {
		if items[i].ProductID == product.ID {
			if items[i].Quantity+quantity > product.Stock {
				return items, fmt.Errorf("not enough stock for %s", product.Name)
			}
			items[i].Quantity += quantity
			return items, nil
		}
	}

	if quantity > product.Stock {
		return items, fmt.Errorf("not enough stock for %s", product.Name)
	}
	return append(items, models.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		MRP:       product.MRP,
		CostPrice: product.PurchasePrice,
		Quantity:  quantity,
		Discount:  0,
	}), nil
}

// ValidateCart checks every line against live product records and rewrites
// prices from the store so a stale client cannot set its own amounts.
// Returns the normalized items.
func ValidateCart(items []models.CartItem, products map[string]models.Product) ([]models.CartItem, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("cart is empty")
	}

	normalized := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		product, ok := products[item.ProductID]
		if !ok {
			return nil, fmt.Errorf("product %s not found", item.ProductID)
		}
		if item.Quantity < 1 {
			return nil, fmt.Errorf("invalid quantity for %s", product.Name)
		}
		if item.Quantity > product.Stock {
			return nil, fmt.Errorf("not enough stock for %s", product.Name)
		}
		normalized = append(normalized, models.CartItem{
			ProductID: product.ID,
			Name:      product.Name,
			MRP:       product.MRP,
			CostPrice: product.PurchasePrice,
			Quantity:  item.Quantity,
			Discount:  ClampDiscount(product.MRP, item.Quantity, item.Discount),
		})
	}
	return normalized, nil
}
