package model

import "time"

// Inquiry statuses.
const (
	InquiryStatusNew      = "new"
	InquiryStatusPending  = "pending"
	InquiryStatusReplied  = "replied"
	InquiryStatusClosed   = "closed"
	InquiryStatusArchived = "archived"
)

// Inquiry is a B2B purchase inquiry submitted from the public site.
type Inquiry struct {
	ID          string    `json:"id"`
	VehicleID   *string   `json:"vehicle_id,omitempty"`
	CompanyName *string   `json:"company_name,omitempty"`
	ContactName string    `json:"contact_name"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone,omitempty"`
	Country     *string   `json:"country,omitempty"`
	Message     I18nText  `json:"message_i18n,omitempty"`
	Quantity    *int      `json:"quantity,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
