package job

import (
	"context"

	"autoexport-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Get(ctx context.Context, sc model.Scope, ip GetInput) (GetOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Job, error)
	Create(ctx context.Context, sc model.Scope, ip CreateInput) (model.Job, error)
	Update(ctx context.Context, sc model.Scope, ip UpdateInput) (model.Job, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// Apply files a public job application; no session required.
	Apply(ctx context.Context, sc model.Scope, ip ApplyInput) (model.JobApplication, error)
	GetApplications(ctx context.Context, sc model.Scope, ip GetApplicationsInput) (GetApplicationsOutput, error)
	UpdateApplicationStatus(ctx context.Context, sc model.Scope, ip UpdateApplicationStatusInput) (model.JobApplication, error)
	DeleteApplication(ctx context.Context, sc model.Scope, id string) error
}
