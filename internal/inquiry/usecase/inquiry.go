package usecase

import (
	"context"
	"errors"

	"autoexport-srv/internal/inquiry"
	"autoexport-srv/internal/inquiry/repository"
	"autoexport-srv/internal/model"
	vehicleRepo "autoexport-srv/internal/vehicle/repository"
	"autoexport-srv/pkg/session"
)

func validInquiryStatus(status string) bool {
	switch status {
	case model.InquiryStatusNew, model.InquiryStatusPending, model.InquiryStatusReplied,
		model.InquiryStatusClosed, model.InquiryStatusArchived:
		return true
	}
	return false
}

func (uc *usecase) Submit(ctx context.Context, sc model.Scope, ip inquiry.SubmitInput) (model.Inquiry, error) {
	if ip.ContactName == "" || ip.Email == "" {
		return model.Inquiry{}, inquiry.ErrContactRequired
	}

	var vehicle *model.Vehicle
	if ip.VehicleID != nil && *ip.VehicleID != "" {
		v, err := uc.vehicles.Detail(ctx, sc, *ip.VehicleID)
		if err != nil {
			if errors.Is(err, vehicleRepo.ErrNotFound) {
				return model.Inquiry{}, inquiry.ErrVehicleNotFound
			}
			uc.l.Errorf(ctx, "internal.inquiry.usecase.Submit.vehicles.Detail: %v", err)
			return model.Inquiry{}, err
		}
		vehicle = &v
	}

	inq, err := uc.repo.Create(ctx, sc, repository.CreateOptions{
		Inquiry: model.Inquiry{
			VehicleID:   ip.VehicleID,
			CompanyName: ip.CompanyName,
			ContactName: ip.ContactName,
			Email:       ip.Email,
			Phone:       ip.Phone,
			Country:     ip.Country,
			Message:     ip.Message,
			Quantity:    ip.Quantity,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.inquiry.usecase.Submit.repo.Create: %v", err)
		return model.Inquiry{}, err
	}

	// Email delivery is best effort, a broken SMTP relay must not
	// reject the inquiry itself.
	uc.sendConfirmation(ctx, inq, vehicle)
	uc.notifySales(ctx, inq, vehicle)

	return inq, nil
}

func (uc *usecase) Get(ctx context.Context, sc model.Scope, ip inquiry.GetInput) (inquiry.GetOutput, error) {
	if err := session.Require(sc.Role, session.RoleViewer); err != nil {
		return inquiry.GetOutput{}, err
	}

	inquiries, pag, err := uc.repo.Get(ctx, sc, repository.GetOptions{
		Filter: repository.Filter{
			VehicleID: ip.Filter.VehicleID,
			Status:    ip.Filter.Status,
			Country:   ip.Filter.Country,
		},
		PaginateQuery: ip.PaginateQuery,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.inquiry.usecase.Get.repo.Get: %v", err)
		return inquiry.GetOutput{}, err
	}

	return inquiry.GetOutput{
		Inquiries: inquiries,
		Paginator: pag,
	}, nil
}

func (uc *usecase) Detail(ctx context.Context, sc model.Scope, id string) (model.Inquiry, error) {
	if err := session.Require(sc.Role, session.RoleViewer); err != nil {
		return model.Inquiry{}, err
	}

	inq, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Inquiry{}, inquiry.ErrInquiryNotFound
		}
		uc.l.Errorf(ctx, "internal.inquiry.usecase.Detail.repo.Detail: %v", err)
		return model.Inquiry{}, err
	}

	return inq, nil
}

func (uc *usecase) UpdateStatus(ctx context.Context, sc model.Scope, ip inquiry.UpdateStatusInput) (model.Inquiry, error) {
	if err := session.Require(sc.Role, session.RoleEditor); err != nil {
		return model.Inquiry{}, err
	}

	if !validInquiryStatus(ip.Status) {
		return model.Inquiry{}, inquiry.ErrInvalidStatus
	}

	inq, err := uc.repo.UpdateStatus(ctx, sc, ip.ID, ip.Status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Inquiry{}, inquiry.ErrInquiryNotFound
		}
		uc.l.Errorf(ctx, "internal.inquiry.usecase.UpdateStatus.repo.UpdateStatus: %v", err)
		return model.Inquiry{}, err
	}

	return inq, nil
}

func (uc *usecase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := session.Require(sc.Role, session.RoleAdmin); err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, sc, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return inquiry.ErrInquiryNotFound
		}
		uc.l.Errorf(ctx, "internal.inquiry.usecase.Delete.repo.Delete: %v", err)
		return err
	}

	return nil
}
