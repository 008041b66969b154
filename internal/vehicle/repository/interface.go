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
	Get(ctx context.Context, sc model.Scope, opts GetOptions) ([]model.Vehicle, paginator.Paginator, error)
	List(ctx context.Context, sc model.Scope, opts ListOptions) ([]model.Vehicle, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Vehicle, error)
	Create(ctx context.Context, sc model.Scope, opts CreateOptions) (model.Vehicle, error)
	Update(ctx context.Context, sc model.Scope, opts UpdateOptions) (model.Vehicle, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	ListImages(ctx context.Context, sc model.Scope, vehicleID string) ([]model.VehicleImage, error)
	CreateImage(ctx context.Context, sc model.Scope, opts CreateImageOptions) (model.VehicleImage, error)
	DeleteImage(ctx context.Context, sc model.Scope, id string) error

	ListCertificates(ctx context.Context, sc model.Scope, vehicleID string) ([]model.Certificate, error)
	CreateCertificate(ctx context.Context, sc model.Scope, opts CreateCertificateOptions) (model.Certificate, error)
	DeleteCertificate(ctx context.Context, sc model.Scope, id string) error

	Count(ctx context.Context, sc model.Scope, opts CountOptions) (int64, error)
}
