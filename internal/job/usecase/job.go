package usecase

import (
	"context"
	"errors"

	"autoexport-srv/internal/job"
	"autoexport-srv/internal/job/repository"
	"autoexport-srv/internal/model"
	"autoexport-srv/pkg/session"
)

func validJobStatus(status string) bool {
	return status == model.JobStatusActive || status == model.JobStatusClosed
}

func (uc *usecase) Get(ctx context.Context, sc model.Scope, ip job.GetInput) (job.GetOutput, error) {
	jobs, pag, err := uc.repo.Get(ctx, sc, repository.GetOptions{
		Filter: repository.Filter{
			Status:     ip.Filter.Status,
			Location:   ip.Filter.Location,
			Search:     ip.Filter.Search,
			PublicOnly: !sc.CanView(),
		},
		PaginateQuery: ip.PaginateQuery,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.job.usecase.Get.repo.Get: %v", err)
		return job.GetOutput{}, err
	}

	return job.GetOutput{
		Jobs:      jobs,
		Paginator: pag,
	}, nil
}

func (uc *usecase) Detail(ctx context.Context, sc model.Scope, id string) (model.Job, error) {
	j, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Job{}, job.ErrJobNotFound
		}
		uc.l.Errorf(ctx, "internal.job.usecase.Detail.repo.Detail: %v", err)
		return model.Job{}, err
	}

	if j.Status != model.JobStatusActive && !sc.CanView() {
		return model.Job{}, job.ErrJobNotFound
	}

	return j, nil
}

func (uc *usecase) Create(ctx context.Context, sc model.Scope, ip job.CreateInput) (model.Job, error) {
	if err := session.Require(sc.Role, session.RoleEditor); err != nil {
		return model.Job{}, err
	}

	if len(ip.Title) == 0 {
		return model.Job{}, job.ErrTitleRequired
	}
	if ip.Status != "" && !validJobStatus(ip.Status) {
		return model.Job{}, job.ErrInvalidStatus
	}

	j, err := uc.repo.Create(ctx, sc, repository.CreateOptions{
		Job: model.Job{
			Title:          ip.Title,
			Description:    ip.Description,
			Location:       ip.Location,
			EmploymentType: ip.EmploymentType,
			Requirements:   ip.Requirements,
			Status:         ip.Status,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.job.usecase.Create.repo.Create: %v", err)
		return model.Job{}, err
	}

	return j, nil
}

func (uc *usecase) Update(ctx context.Context, sc model.Scope, ip job.UpdateInput) (model.Job, error) {
	if err := session.Require(sc.Role, session.RoleEditor); err != nil {
		return model.Job{}, err
	}

	cur, err := uc.repo.Detail(ctx, sc, ip.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Job{}, job.ErrJobNotFound
		}
		uc.l.Errorf(ctx, "internal.job.usecase.Update.repo.Detail: %v", err)
		return model.Job{}, err
	}

	if ip.Title != nil {
		cur.Title = ip.Title
	}
	if ip.Description != nil {
		cur.Description = ip.Description
	}
	if ip.Location != nil {
		cur.Location = ip.Location
	}
	if ip.EmploymentType != nil {
		cur.EmploymentType = ip.EmploymentType
	}
	if ip.Requirements != nil {
		cur.Requirements = ip.Requirements
	}
	if ip.Status != nil {
		if !validJobStatus(*ip.Status) {
			return model.Job{}, job.ErrInvalidStatus
		}
		cur.Status = *ip.Status
	}

	j, err := uc.repo.Update(ctx, sc, repository.UpdateOptions{Job: cur})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Job{}, job.ErrJobNotFound
		}
		uc.l.Errorf(ctx, "internal.job.usecase.Update.repo.Update: %v", err)
		return model.Job{}, err
	}

	return j, nil
}

func (uc *usecase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := session.Require(sc.Role, session.RoleAdmin); err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, sc, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return job.ErrJobNotFound
		}
		uc.l.Errorf(ctx, "internal.job.usecase.Delete.repo.Delete: %v", err)
		return err
	}

	return nil
}
