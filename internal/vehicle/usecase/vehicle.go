package usecase

import (
	"context"
	"errors"

	"autoexport-srv/internal/model"
	"autoexport-srv/internal/vehicle"
	"autoexport-srv/internal/vehicle/repository"
	"autoexport-srv/pkg/session"
)

func validStatus(status string) bool {
	switch status {
	case model.VehicleStatusActive, model.VehicleStatusNew, model.VehicleStatusArchived:
		return true
	}
	return false
}

// toRepoFilter translates the public filter and hides archived listings
// from callers without an admin session.
func toRepoFilter(sc model.Scope, f vehicle.Filter) repository.Filter {
	return repository.Filter{
		IDs:        f.IDs,
		Category:   f.Category,
		Status:     f.Status,
		Search:     f.Search,
		PublicOnly: !sc.CanView(),
	}
}

func (uc *usecase) Get(ctx context.Context, sc model.Scope, ip vehicle.GetInput) (vehicle.GetOutput, error) {
	vehicles, pag, err := uc.repo.Get(ctx, sc, repository.GetOptions{
		Filter:        toRepoFilter(sc, ip.Filter),
		PaginateQuery: ip.PaginateQuery,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.vehicle.usecase.Get.repo.Get: %v", err)
		return vehicle.GetOutput{}, err
	}

	return vehicle.GetOutput{
		Vehicles:  vehicles,
		Paginator: pag,
	}, nil
}

func (uc *usecase) List(ctx context.Context, sc model.Scope, ip vehicle.ListInput) ([]model.Vehicle, error) {
	vehicles, err := uc.repo.List(ctx, sc, repository.ListOptions{
		Filter: toRepoFilter(sc, ip.Filter),
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.vehicle.usecase.List.repo.List: %v", err)
		return nil, err
	}

	return vehicles, nil
}

func (uc *usecase) Detail(ctx context.Context, sc model.Scope, id string) (vehicle.DetailOutput, error) {
	v, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return vehicle.DetailOutput{}, vehicle.ErrVehicleNotFound
		}
		uc.l.Errorf(ctx, "internal.vehicle.usecase.Detail.repo.Detail: %v", err)
		return vehicle.DetailOutput{}, err
	}

	// Archived listings are only visible to admin sessions.
	if v.Status == model.VehicleStatusArchived && !sc.CanView() {
		return vehicle.DetailOutput{}, vehicle.ErrVehicleNotFound
	}

	images, err := uc.repo.ListImages(ctx, sc, id)
	if err != nil {
		uc.l.Errorf(ctx, "internal.vehicle.usecase.Detail.repo.ListImages: %v", err)
		return vehicle.DetailOutput{}, err
	}

	certs, err := uc.repo.ListCertificates(ctx, sc, id)
	if err != nil {
		uc.l.Errorf(ctx, "internal.vehicle.usecase.Detail.repo.ListCertificates: %v", err)
		return vehicle.DetailOutput{}, err
	}

	return vehicle.DetailOutput{
		Vehicle:      v,
		Images:       images,
		Certificates: certs,
	}, nil
}

func (uc *usecase) Create(ctx context.Context, sc model.Scope, ip vehicle.CreateInput) (model.Vehicle, error) {
	if err := session.Require(sc.Role, session.RoleEditor); err != nil {
		return model.Vehicle{}, err
	}

	if len(ip.Name) == 0 {
		return model.Vehicle{}, vehicle.ErrNameRequired
	}
	if ip.Status != "" && !validStatus(ip.Status) {
		return model.Vehicle{}, vehicle.ErrInvalidStatus
	}
	if ip.PriceRangeMin != nil && ip.PriceRangeMax != nil && *ip.PriceRangeMin > *ip.PriceRangeMax {
		return model.Vehicle{}, vehicle.ErrInvalidPriceRange
	}

	v, err := uc.repo.Create(ctx, sc, repository.CreateOptions{
		Vehicle: model.Vehicle{
			Name:           ip.Name,
			Description:    ip.Description,
			Category:       ip.Category,
			Specifications: ip.Specifications,
			PriceRangeMin:  ip.PriceRangeMin,
			PriceRangeMax:  ip.PriceRangeMax,
			Status:         ip.Status,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.vehicle.usecase.Create.repo.Create: %v", err)
		return model.Vehicle{}, err
	}

	return v, nil
}

func (uc *usecase) Update(ctx context.Context, sc model.Scope, ip vehicle.UpdateInput) (model.Vehicle, error) {
	if err := session.Require(sc.Role, session.RoleEditor); err != nil {
		return model.Vehicle{}, err
	}

	cur, err := uc.repo.Detail(ctx, sc, ip.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Vehicle{}, vehicle.ErrVehicleNotFound
		}
		uc.l.Errorf(ctx, "internal.vehicle.usecase.Update.repo.Detail: %v", err)
		return model.Vehicle{}, err
	}

	if ip.Name != nil {
		cur.Name = ip.Name
	}
	if ip.Description != nil {
		cur.Description = ip.Description
	}
	if ip.Category != nil {
		cur.Category = ip.Category
	}
	if ip.Specifications != nil {
		cur.Specifications = ip.Specifications
	}
	if ip.PriceRangeMin != nil {
		cur.PriceRangeMin = ip.PriceRangeMin
	}
	if ip.PriceRangeMax != nil {
		cur.PriceRangeMax = ip.PriceRangeMax
	}
	if ip.Status != nil {
		if !validStatus(*ip.Status) {
			return model.Vehicle{}, vehicle.ErrInvalidStatus
		}
		cur.Status = *ip.Status
	}

	if cur.PriceRangeMin != nil && cur.PriceRangeMax != nil && *cur.PriceRangeMin > *cur.PriceRangeMax {
		return model.Vehicle{}, vehicle.ErrInvalidPriceRange
	}

	v, err := uc.repo.Update(ctx, sc, repository.UpdateOptions{Vehicle: cur})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Vehicle{}, vehicle.ErrVehicleNotFound
		}
		uc.l.Errorf(ctx, "internal.vehicle.usecase.Update.repo.Update: %v", err)
		return model.Vehicle{}, err
	}

	return v, nil
}

func (uc *usecase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := session.Require(sc.Role, session.RoleAdmin); err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, sc, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return vehicle.ErrVehicleNotFound
		}
		uc.l.Errorf(ctx, "internal.vehicle.usecase.Delete.repo.Delete: %v", err)
		return err
	}

	return nil
}
