package models

// Product is one stocked pharmacy item.
type Product struct {
	ID            string  `json:"id" bson:"id"`
	Name          string  `json:"name" bson:"name"`
	Manufacturer  string  `json:"manufacturer" bson:"manufacturer"`
	BatchNo       string  `json:"batchNo,omitempty" bson:"batchNo,omitempty"`
	PurchasePrice float64 `json:"purchasePrice" bson:"purchasePrice"`
	MRP           float64 `json:"mrp" bson:"mrp"`
	Stock         int     `json:"stock" bson:"stock"`
	MinStock      int     `json:"minStock" bson:"minStock"`
	ExpiryDate    string  `json:"expiryDate,omitempty" bson:"expiryDate,omitempty"`
	Description   string  `json:"description,omitempty" bson:"description,omitempty"`
	ImageURL      string  `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	CreatedAt     string  `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	CreatedBy     string  `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	UpdatedAt     string  `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

type Manufacturer struct {
	ID        string `json:"id" bson:"id"`
	Name      string `json:"name" bson:"name"`
	CreatedAt string `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	CreatedBy string `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
}
