package models

type CalendarEvent struct {
	ID           string `json:"id" bson:"id"`
	Title        string `json:"title" bson:"title"`
	Date         string `json:"date" bson:"date"`
	Time         string `json:"time,omitempty" bson:"time,omitempty"`
	EventType    string `json:"eventType,omitempty" bson:"eventType,omitempty"`
	Priority     string `json:"priority,omitempty" bson:"priority,omitempty"`
	Description  string `json:"description,omitempty" bson:"description,omitempty"`
	IsAllDay     bool   `json:"isAllDay" bson:"isAllDay"`
	SendReminder bool   `json:"sendReminder" bson:"sendReminder"`
	CreatedAt    string `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	CreatedBy    string `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	UpdatedAt    string `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

type Reminder struct {
	ID          string `json:"id" bson:"id"`
	Title       string `json:"title" bson:"title"`
	Date        string `json:"date" bson:"date"`
	Time        string `json:"time,omitempty" bson:"time,omitempty"`
	Priority    string `json:"priority,omitempty" bson:"priority,omitempty"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	CreatedBy   string `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
