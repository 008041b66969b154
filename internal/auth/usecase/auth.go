package usecase

import (
	"context"

	"autoexport-srv/internal/auth"
	"autoexport-srv/pkg/session"
)

func (uc *usecase) Login(ctx context.Context, ip auth.LoginInput) (auth.LoginOutput, error) {
	if uc.creds.Empty() {
		uc.l.Error(ctx, "internal.auth.usecase.Login: no admin passwords configured")
		return auth.LoginOutput{}, auth.ErrNoPasswordsConfigured
	}

	role := uc.creds.Resolve(ip.Password)
	if role == session.RoleNone {
		uc.l.Warn(ctx, "internal.auth.usecase.Login: password rejected")
		return auth.LoginOutput{}, auth.ErrInvalidPassword
	}

	token, err := uc.codec.Encode(role)
	if err != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.Login.Encode: %v", err)
		return auth.LoginOutput{}, err
	}

	return auth.LoginOutput{
		Token: token,
		Role:  role,
	}, nil
}
