package models

// Movie is one entry of the movie catalog admin panel.
type Movie struct {
	ID         string `json:"id" bson:"id"`
	Name       string `json:"name" bson:"name"`
	Year       int    `json:"year" bson:"year"`
	Language   string `json:"language" bson:"language"`
	Views      int    `json:"views" bson:"views"`
	Duration   int    `json:"duration" bson:"duration"`
	M3U8URL    string `json:"m3u8_url" bson:"m3u8_url"`
	CoverURL   string `json:"cover_url" bson:"cover_url"`
	UploadedBy string `json:"uploaded_by" bson:"uploaded_by"`
	CreatedAt  string `json:"created_at,omitempty" bson:"created_at,omitempty"`
	CreatedBy  string `json:"created_by,omitempty" bson:"created_by,omitempty"`
	UpdatedAt  string `json:"last_updated,omitempty" bson:"last_updated,omitempty"`
}

// AdminPassword is the single document guarding the movie admin panel.
type AdminPassword struct {
	ID        string `json:"id" bson:"id"`
	Password  string `json:"-" bson:"password"`
	UpdatedAt string `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
