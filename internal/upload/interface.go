package upload

import (
	"context"

	"autoexport-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Presign issues a short-lived direct upload URL for a media object.
	Presign(ctx context.Context, sc model.Scope, ip PresignInput) (PresignOutput, error)
	// Delete removes a stored media object.
	Delete(ctx context.Context, sc model.Scope, objectKey string) error
}
