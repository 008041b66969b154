package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"autoexport-srv/internal/dashboard"
	documentRepo "autoexport-srv/internal/document/repository"
	inquiryRepo "autoexport-srv/internal/inquiry/repository"
	jobRepo "autoexport-srv/internal/job/repository"
	"autoexport-srv/internal/model"
	vehicleRepo "autoexport-srv/internal/vehicle/repository"
	"autoexport-srv/pkg/session"
)

func (uc *usecase) Stats(ctx context.Context, sc model.Scope) (dashboard.StatsOutput, error) {
	if err := session.Require(sc.Role, session.RoleViewer); err != nil {
		return dashboard.StatsOutput{}, err
	}

	var out dashboard.StatsOutput

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		n, err := uc.vehicles.Count(egCtx, sc, vehicleRepo.CountOptions{})
		out.Vehicles = n
		return err
	})
	eg.Go(func() error {
		n, err := uc.vehicles.Count(egCtx, sc, vehicleRepo.CountOptions{
			Filter: vehicleRepo.Filter{Status: model.VehicleStatusActive},
		})
		out.ActiveVehicles = n
		return err
	})
	eg.Go(func() error {
		n, err := uc.documents.Count(egCtx, sc, documentRepo.CountOptions{})
		out.Documents = n
		return err
	})
	eg.Go(func() error {
		n, err := uc.jobs.Count(egCtx, sc, jobRepo.CountOptions{})
		out.Jobs = n
		return err
	})
	eg.Go(func() error {
		n, err := uc.jobs.Count(egCtx, sc, jobRepo.CountOptions{
			Filter: jobRepo.Filter{Status: model.JobStatusActive},
		})
		out.OpenJobs = n
		return err
	})
	eg.Go(func() error {
		n, err := uc.jobs.CountApplications(egCtx, sc, jobRepo.CountApplicationsOptions{})
		out.Applications = n
		return err
	})
	eg.Go(func() error {
		n, err := uc.jobs.CountApplications(egCtx, sc, jobRepo.CountApplicationsOptions{
			Filter: jobRepo.ApplicationFilter{Status: model.ApplicationStatusNew},
		})
		out.NewApplications = n
		return err
	})
	eg.Go(func() error {
		n, err := uc.inquiries.Count(egCtx, sc, inquiryRepo.CountOptions{})
		out.Inquiries = n
		return err
	})
	eg.Go(func() error {
		n, err := uc.inquiries.Count(egCtx, sc, inquiryRepo.CountOptions{
			Filter: inquiryRepo.Filter{Status: model.InquiryStatusNew},
		})
		out.NewInquiries = n
		return err
	})

	if err := eg.Wait(); err != nil {
		uc.l.Errorf(ctx, "internal.dashboard.usecase.Stats.Wait: %v", err)
		return dashboard.StatsOutput{}, err
	}

	return out, nil
}
