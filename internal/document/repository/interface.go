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
	Get(ctx context.Context, sc model.Scope, opts GetOptions) ([]model.Document, paginator.Paginator, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Document, error)
	Create(ctx context.Context, sc model.Scope, opts CreateOptions) (model.Document, error)
	Update(ctx context.Context, sc model.Scope, opts UpdateOptions) (model.Document, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
	Count(ctx context.Context, sc model.Scope, opts CountOptions) (int64, error)
}
