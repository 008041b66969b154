package repository

import (
	"autoexport-srv/internal/model"
	"autoexport-srv/pkg/paginator"
)

// Filter contains filtering options for document queries.
type Filter struct {
	Category string
	Search   string // Matches against the title translations
}

// GetOptions contains options for paginated document listing.
type GetOptions struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

// CreateOptions contains options for creating a document.
type CreateOptions struct {
	Document model.Document
}

// UpdateOptions contains options for updating a document.
type UpdateOptions struct {
	Document model.Document
}

// CountOptions contains options for counting documents.
type CountOptions struct {
	Filter Filter
}
