package usecase

import (
	"context"
	"errors"

	"autoexport-srv/internal/job"
	"autoexport-srv/internal/job/repository"
	"autoexport-srv/internal/model"
	"autoexport-srv/pkg/session"
)

func validApplicationStatus(status string) bool {
	switch status {
	case model.ApplicationStatusNew, model.ApplicationStatusReviewed,
		model.ApplicationStatusRejected, model.ApplicationStatusHired:
		return true
	}
	return false
}

func (uc *usecase) Apply(ctx context.Context, sc model.Scope, ip job.ApplyInput) (model.JobApplication, error) {
	if ip.ApplicantName == "" || ip.Email == "" {
		return model.JobApplication{}, job.ErrApplicantRequired
	}

	j, err := uc.repo.Detail(ctx, sc, ip.JobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.JobApplication{}, job.ErrJobNotFound
		}
		uc.l.Errorf(ctx, "internal.job.usecase.Apply.repo.Detail: %v", err)
		return model.JobApplication{}, err
	}
	if j.Status != model.JobStatusActive {
		return model.JobApplication{}, job.ErrJobClosed
	}

	app, err := uc.repo.CreateApplication(ctx, sc, repository.CreateApplicationOptions{
		Application: model.JobApplication{
			JobID:         &ip.JobID,
			ApplicantName: ip.ApplicantName,
			Email:         ip.Email,
			Phone:         ip.Phone,
			ResumeURL:     ip.ResumeURL,
			CoverLetter:   ip.CoverLetter,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.job.usecase.Apply.repo.CreateApplication: %v", err)
		return model.JobApplication{}, err
	}

	return app, nil
}

func (uc *usecase) GetApplications(ctx context.Context, sc model.Scope, ip job.GetApplicationsInput) (job.GetApplicationsOutput, error) {
	if err := session.Require(sc.Role, session.RoleViewer); err != nil {
		return job.GetApplicationsOutput{}, err
	}

	apps, pag, err := uc.repo.GetApplications(ctx, sc, repository.GetApplicationsOptions{
		Filter: repository.ApplicationFilter{
			JobID:  ip.Filter.JobID,
			Status: ip.Filter.Status,
		},
		PaginateQuery: ip.PaginateQuery,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.job.usecase.GetApplications.repo.GetApplications: %v", err)
		return job.GetApplicationsOutput{}, err
	}

	return job.GetApplicationsOutput{
		Applications: apps,
		Paginator:    pag,
	}, nil
}

func (uc *usecase) UpdateApplicationStatus(ctx context.Context, sc model.Scope, ip job.UpdateApplicationStatusInput) (model.JobApplication, error) {
	if err := session.Require(sc.Role, session.RoleEditor); err != nil {
		return model.JobApplication{}, err
	}

	if !validApplicationStatus(ip.Status) {
		return model.JobApplication{}, job.ErrInvalidAppStatus
	}

	app, err := uc.repo.UpdateApplicationStatus(ctx, sc, ip.ID, ip.Status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.JobApplication{}, job.ErrApplicationNotFound
		}
		uc.l.Errorf(ctx, "internal.job.usecase.UpdateApplicationStatus.repo.UpdateApplicationStatus: %v", err)
		return model.JobApplication{}, err
	}

	return app, nil
}

func (uc *usecase) DeleteApplication(ctx context.Context, sc model.Scope, id string) error {
	if err := session.Require(sc.Role, session.RoleAdmin); err != nil {
		return err
	}

	if err := uc.repo.DeleteApplication(ctx, sc, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return job.ErrApplicationNotFound
		}
		uc.l.Errorf(ctx, "internal.job.usecase.DeleteApplication.repo.DeleteApplication: %v", err)
		return err
	}

	return nil
}
