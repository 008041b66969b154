package repository

import (
	"autoexport-srv/internal/model"
	"autoexport-srv/pkg/paginator"
)

// Filter contains filtering options for job queries.
type Filter struct {
	Status   string
	Location string
	Search   string // Matches against the title translations

	// PublicOnly hides closed positions from anonymous visitors.
	PublicOnly bool
}

// GetOptions contains options for paginated job listing.
type GetOptions struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

// CreateOptions contains options for creating a job.
type CreateOptions struct {
	Job model.Job
}

// UpdateOptions contains options for updating a job.
type UpdateOptions struct {
	Job model.Job
}

// CountOptions contains options for counting jobs.
type CountOptions struct {
	Filter Filter
}

// ApplicationFilter contains filtering options for application queries.
type ApplicationFilter struct {
	JobID  string
	Status string
}

// CreateApplicationOptions contains options for filing an application.
type CreateApplicationOptions struct {
	Application model.JobApplication
}

// GetApplicationsOptions contains options for paginated application listing.
type GetApplicationsOptions struct {
	Filter        ApplicationFilter
	PaginateQuery paginator.PaginateQuery
}

// CountApplicationsOptions contains options for counting applications.
type CountApplicationsOptions struct {
	Filter ApplicationFilter
}
