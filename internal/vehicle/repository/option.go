package repository

import (
	"autoexport-srv/internal/model"
	"autoexport-srv/pkg/paginator"
)

// Filter contains filtering options for vehicle queries.
type Filter struct {
	IDs      []string
	Category string
	Status   string
	Search   string // Matches against the name translations

	// PublicOnly hides archived vehicles from anonymous visitors.
	PublicOnly bool
}

// GetOptions contains options for paginated vehicle listing.
type GetOptions struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

// ListOptions contains options for listing vehicles.
type ListOptions struct {
	Filter Filter
}

// CreateOptions contains options for creating a vehicle.
type CreateOptions struct {
	Vehicle model.Vehicle
}

// UpdateOptions contains options for updating a vehicle.
type UpdateOptions struct {
	Vehicle model.Vehicle
}

// CreateImageOptions contains options for attaching a gallery image.
type CreateImageOptions struct {
	Image model.VehicleImage
}

// CreateCertificateOptions contains options for attaching a certificate.
type CreateCertificateOptions struct {
	Certificate model.Certificate
}

// CountOptions contains options for counting vehicles.
type CountOptions struct {
	Filter Filter
}
