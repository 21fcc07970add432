package models

// CartItem is one product entry within a cart or completed sale.
type CartItem struct {
	ProductID string  `json:"productId" bson:"productId"`
	Name      string  `json:"name" bson:"name"`
	MRP       float64 `json:"mrp" bson:"mrp"`
	CostPrice float64 `json:"purchasePrice" bson:"purchasePrice"`
	Quantity  int     `json:"quantity" bson:"quantity"`
	Discount  float64 `json:"discount" bson:"discount"`
}

// Sale stores a completed checkout with an inline copy of its line items.
type Sale struct {
	ID             string     `json:"id" bson:"id"`
	CustomerID     string     `json:"customerId,omitempty" bson:"customerId,omitempty"`
	CustomerName   string     `json:"customerName" bson:"customerName"`
	Items          []CartItem `json:"items" bson:"items"`
	Subtotal       float64    `json:"subtotal" bson:"subtotal"`
	TotalDiscount  float64    `json:"totalDiscount" bson:"totalDiscount"`
	TotalAmount    float64    `json:"totalAmount" bson:"totalAmount"`
	ReceivedAmount float64    `json:"receivedAmount" bson:"receivedAmount"`
	PaymentMethod  string     `json:"paymentMethod" bson:"paymentMethod"`
	Profit         float64    `json:"profit" bson:"profit"`
	Date           string     `json:"date" bson:"date"`
	Timestamp      string     `json:"timestamp" bson:"timestamp"`
	CreatedAt      string     `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	CreatedBy      string     `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
}

// CreditSale duplicates the sale fields plus due tracking, kept until paid.
type CreditSale struct {
	ID             string     `json:"id" bson:"id"`
	SaleID         string     `json:"saleId" bson:"saleId"`
	CustomerID     string     `json:"customerId" bson:"customerId"`
	CustomerName   string     `json:"customerName" bson:"customerName"`
	Items          []CartItem `json:"items" bson:"items"`
	TotalAmount    float64    `json:"totalAmount" bson:"totalAmount"`
	ReceivedAmount float64    `json:"receivedAmount" bson:"receivedAmount"`
	PaidAmount     float64    `json:"paidAmount" bson:"paidAmount"`
	DueAmount      float64    `json:"dueAmount" bson:"dueAmount"`
	Status         string     `json:"status" bson:"status"` // pending | paid
	PaymentDate    string     `json:"paymentDate,omitempty" bson:"paymentDate,omitempty"`
	Date           string     `json:"date" bson:"date"`
	CreatedAt      string     `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	CreatedBy      string     `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
}
