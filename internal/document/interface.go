package document

import (
	"context"

	"autoexport-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Get(ctx context.Context, sc model.Scope, ip GetInput) (GetOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Document, error)
	Create(ctx context.Context, sc model.Scope, ip CreateInput) (model.Document, error)
	Update(ctx context.Context, sc model.Scope, ip UpdateInput) (model.Document, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
}
