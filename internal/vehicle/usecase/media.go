package usecase

import (
	"context"
	"errors"

	"autoexport-srv/internal/model"
	"autoexport-srv/internal/vehicle"
	"autoexport-srv/internal/vehicle/repository"
	"autoexport-srv/pkg/session"
)

func (uc *usecase) AddImage(ctx context.Context, sc model.Scope, ip vehicle.AddImageInput) (model.VehicleImage, error) {
	if err := session.Require(sc.Role, session.RoleEditor); err != nil {
		return model.VehicleImage{}, err
	}

	if _, err := uc.repo.Detail(ctx, sc, ip.VehicleID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.VehicleImage{}, vehicle.ErrVehicleNotFound
		}
		uc.l.Errorf(ctx, "internal.vehicle.usecase.AddImage.repo.Detail: %v", err)
		return model.VehicleImage{}, err
	}

	img, err := uc.repo.CreateImage(ctx, sc, repository.CreateImageOptions{
		Image: model.VehicleImage{
			VehicleID:    ip.VehicleID,
			URL:          ip.URL,
			DisplayOrder: ip.DisplayOrder,
			IsCover:      ip.IsCover,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.vehicle.usecase.AddImage.repo.CreateImage: %v", err)
		return model.VehicleImage{}, err
	}

	return img, nil
}

func (uc *usecase) DeleteImage(ctx context.Context, sc model.Scope, id string) error {
	if err := session.Require(sc.Role, session.RoleAdmin); err != nil {
		return err
	}

	if err := uc.repo.DeleteImage(ctx, sc, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return vehicle.ErrImageNotFound
		}
		uc.l.Errorf(ctx, "internal.vehicle.usecase.DeleteImage.repo.DeleteImage: %v", err)
		return err
	}

	return nil
}

func (uc *usecase) AddCertificate(ctx context.Context, sc model.Scope, ip vehicle.AddCertificateInput) (model.Certificate, error) {
	if err := session.Require(sc.Role, session.RoleEditor); err != nil {
		return model.Certificate{}, err
	}

	if _, err := uc.repo.Detail(ctx, sc, ip.VehicleID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Certificate{}, vehicle.ErrVehicleNotFound
		}
		uc.l.Errorf(ctx, "internal.vehicle.usecase.AddCertificate.repo.Detail: %v", err)
		return model.Certificate{}, err
	}

	cert, err := uc.repo.CreateCertificate(ctx, sc, repository.CreateCertificateOptions{
		Certificate: model.Certificate{
			VehicleID:         ip.VehicleID,
			Title:             ip.Title,
			CertificateNumber: ip.CertificateNumber,
			PDFURL:            ip.PDFURL,
			IssueDate:         ip.IssueDate,
			ExpiryDate:        ip.ExpiryDate,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.vehicle.usecase.AddCertificate.repo.CreateCertificate: %v", err)
		return model.Certificate{}, err
	}

	return cert, nil
}

func (uc *usecase) DeleteCertificate(ctx context.Context, sc model.Scope, id string) error {
	if err := session.Require(sc.Role, session.RoleAdmin); err != nil {
		return err
	}

	if err := uc.repo.DeleteCertificate(ctx, sc, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return vehicle.ErrCertificateNotFound
		}
		uc.l.Errorf(ctx, "internal.vehicle.usecase.DeleteCertificate.repo.DeleteCertificate: %v", err)
		return err
	}

	return nil
}
