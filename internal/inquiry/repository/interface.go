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
	Get(ctx context.Context, sc model.Scope, opts GetOptions) ([]model.Inquiry, paginator.Paginator, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Inquiry, error)
	Create(ctx context.Context, sc model.Scope, opts CreateOptions) (model.Inquiry, error)
	UpdateStatus(ctx context.Context, sc model.Scope, id, status string) (model.Inquiry, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
	Count(ctx context.Context, sc model.Scope, opts CountOptions) (int64, error)
}
