package models

type Note struct {
	ID         string   `json:"id" bson:"id"`
	Title      string   `json:"title" bson:"title"`
	Content    string   `json:"content" bson:"content"`
	CategoryID string   `json:"categoryId,omitempty" bson:"categoryId,omitempty"`
	Tags       []string `json:"tags,omitempty" bson:"tags,omitempty"`
	Priority   string   `json:"priority,omitempty" bson:"priority,omitempty"`
	IsPinned   bool     `json:"isPinned" bson:"isPinned"`
	IsPublic   bool     `json:"isPublic" bson:"isPublic"`
	CreatedAt  string   `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	CreatedBy  string   `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	UpdatedAt  string   `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

type NoteCategory struct {
	ID          string `json:"id" bson:"id"`
	Name        string `json:"name" bson:"name"`
	Color       string `json:"color,omitempty" bson:"color,omitempty"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	CreatedBy   string `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
}
