package repository

import (
	"context"
	"errors"

	"autoexport-srv/internal/model"
	"autoexport-srv/pkg/paginator"
)

var ErrNotFound = errors.New("record not found")

//go:generate mockery --name Repository
type Repository interface {
	Get(ctx context.Context, sc model.Scope, opts GetOptions) ([]model.Job, paginator.Paginator, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Job, error)
	Create(ctx context.Context, sc model.Scope, opts CreateOptions) (model.Job, error)
	Update(ctx context.Context, sc model.Scope, opts UpdateOptions) (model.Job, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
	Count(ctx context.Context, sc model.Scope, opts CountOptions) (int64, error)

	CreateApplication(ctx context.Context, sc model.Scope, opts CreateApplicationOptions) (model.JobApplication, error)
	GetApplications(ctx context.Context, sc model.Scope, opts GetApplicationsOptions) ([]model.JobApplication, paginator.Paginator, error)
	DetailApplication(ctx context.Context, sc model.Scope, id string) (model.JobApplication, error)
	UpdateApplicationStatus(ctx context.Context, sc model.Scope, id, status string) (model.JobApplication, error)
	DeleteApplication(ctx context.Context, sc model.Scope, id string) error
	CountApplications(ctx context.Context, sc model.Scope, opts CountApplicationsOptions) (int64, error)
}
