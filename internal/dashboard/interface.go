package dashboard

import (
	"context"

	"autoexport-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Stats aggregates back-office counters across all content domains.
	Stats(ctx context.Context, sc model.Scope) (StatsOutput, error)
}
