package auth

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Login validates a submitted password and mints a session token for
	// the resolved role.
	Login(ctx context.Context, ip LoginInput) (LoginOutput, error)
}
