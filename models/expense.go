package models

type Expense struct {
	ID            string  `json:"id" bson:"id"`
	Date          string  `json:"date" bson:"date"`
	CategoryID    string  `json:"categoryId" bson:"categoryId"`
	Amount        float64 `json:"amount" bson:"amount"`
	Description   string  `json:"description,omitempty" bson:"description,omitempty"`
	PaymentMethod string  `json:"paymentMethod,omitempty" bson:"paymentMethod,omitempty"`
	ReferenceNo   string  `json:"referenceNo,omitempty" bson:"referenceNo,omitempty"`
	CreatedAt     string  `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	CreatedBy     string  `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	UpdatedAt     string  `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

type ExpenseCategory struct {
	ID          string `json:"id" bson:"id"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	CreatedBy   string `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
}
