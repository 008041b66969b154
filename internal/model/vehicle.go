package model

import "time"

// Vehicle statuses.
const (
	VehicleStatusActive   = "active"
	VehicleStatusNew      = "new"
	VehicleStatusArchived = "archived"
)

// Vehicle represents an exportable vehicle listing.
type Vehicle struct {
	ID             string    `json:"id"`
	Name           I18nText  `json:"name_i18n"`
	Description    I18nText  `json:"description_i18n,omitempty"`
	Category       *string   `json:"category,omitempty"`
	Specifications I18nText  `json:"specifications,omitempty"`
	PriceRangeMin  *float64  `json:"price_range_min,omitempty"`
	PriceRangeMax  *float64  `json:"price_range_max,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// VehicleImage is a gallery image attached to a vehicle.
type VehicleImage struct {
	ID           string `json:"id"`
	VehicleID    string `json:"vehicle_id"`
	URL          string `json:"url"`
	DisplayOrder int    `json:"display_order"`
	IsCover      bool   `json:"is_cover"`
}

// Certificate is an export/quality certificate attached to a vehicle.
type Certificate struct {
	ID                string     `json:"id"`
	VehicleID         string     `json:"vehicle_id"`
	Title             I18nText   `json:"title_i18n"`
	CertificateNumber *string    `json:"certificate_number,omitempty"`
	PDFURL            *string    `json:"pdf_url,omitempty"`
	IssueDate         *time.Time `json:"issue_date,omitempty"`
	ExpiryDate        *time.Time `json:"expiry_date,omitempty"`
}
