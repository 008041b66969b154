package inquiry

import (
	"context"

	"autoexport-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Submit records a public purchase inquiry and sends the
	// confirmation and sales notification emails.
	Submit(ctx context.Context, sc model.Scope, ip SubmitInput) (model.Inquiry, error)
	Get(ctx context.Context, sc model.Scope, ip GetInput) (GetOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Inquiry, error)
	UpdateStatus(ctx context.Context, sc model.Scope, ip UpdateStatusInput) (model.Inquiry, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
}
