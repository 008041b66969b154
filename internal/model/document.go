package model

import "time"

// Document is a downloadable resource (brochure, manual, export guide).
type Document struct {
	ID        string    `json:"id"`
	Title     I18nText  `json:"title_i18n"`
	Category  *string   `json:"category,omitempty"`
	FileURL   string    `json:"file_url"`
	FileSize  *int64    `json:"file_size,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
