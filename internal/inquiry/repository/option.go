package repository

import (
	"autoexport-srv/internal/model"
	"autoexport-srv/pkg/paginator"
)

// Filter contains filtering options for inquiry queries.
type Filter struct {
	VehicleID string
	Status    string
	Country   string
}

// GetOptions contains options for paginated inquiry listing.
type GetOptions struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

// CreateOptions contains options for creating an inquiry.
type CreateOptions struct {
	Inquiry model.Inquiry
}

// CountOptions contains options for counting inquiries.
type CountOptions struct {
	Filter Filter
}
