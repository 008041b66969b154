package vehicle

import (
	"context"

	"autoexport-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Get(ctx context.Context, sc model.Scope, ip GetInput) (GetOutput, error)
	List(ctx context.Context, sc model.Scope, ip ListInput) ([]model.Vehicle, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)
	Create(ctx context.Context, sc model.Scope, ip CreateInput) (model.Vehicle, error)
	Update(ctx context.Context, sc model.Scope, ip UpdateInput) (model.Vehicle, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	AddImage(ctx context.Context, sc model.Scope, ip AddImageInput) (model.VehicleImage, error)
	DeleteImage(ctx context.Context, sc model.Scope, id string) error

	AddCertificate(ctx context.Context, sc model.Scope, ip AddCertificateInput) (model.Certificate, error)
	DeleteCertificate(ctx context.Context, sc model.Scope, id string) error
}
