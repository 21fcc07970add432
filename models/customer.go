package models

type Customer struct {
	ID             string `json:"id" bson:"id"`
	Name           string `json:"name" bson:"name"`
	Mobile         string `json:"mobile" bson:"mobile"`
	Email          string `json:"email,omitempty" bson:"email,omitempty"`
	DateOfBirth    string `json:"dateOfBirth,omitempty" bson:"dateOfBirth,omitempty"`
	Address        string `json:"address,omitempty" bson:"address,omitempty"`
	Gender         string `json:"gender,omitempty" bson:"gender,omitempty"`
	BloodGroup     string `json:"bloodGroup,omitempty" bson:"bloodGroup,omitempty"`
	MedicalHistory string `json:"medicalHistory,omitempty" bson:"medicalHistory,omitempty"`
	CreatedAt      string `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	CreatedBy      string `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	UpdatedAt      string `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

type SMSLog struct {
	ID            string `json:"id" bson:"id"`
	Message       string `json:"message" bson:"message"`
	CustomerGroup string `json:"customerGroup" bson:"customerGroup"`
	CustomerCount int    `json:"customerCount" bson:"customerCount"`
	SentAt        string `json:"sentAt" bson:"sentAt"`
	SentBy        string `json:"sentBy" bson:"sentBy"`
	CreatedAt     string `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	CreatedBy     string `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
}
