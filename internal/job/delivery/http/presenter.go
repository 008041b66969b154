package http

import (
	"autoexport-srv/internal/job"
	"autoexport-srv/internal/model"
	"autoexport-srv/pkg/paginator"
)

type getJobsRequest struct {
	Status   string `form:"status"`
	Location string `form:"location"`
	Search   string `form:"search"`
	Page     int    `form:"page"`
	Limit    int64  `form:"limit"`
}

func (req getJobsRequest) toInput() job.GetInput {
	return job.GetInput{
		Filter: job.Filter{
			Status:   req.Status,
			Location: req.Location,
			Search:   req.Search,
		},
		PaginateQuery: paginator.PaginateQuery{
			Page:  req.Page,
			Limit: req.Limit,
		},
	}
}

type createJobRequest struct {
	Title          map[string]string `json:"title_i18n" binding:"required"`
	Description    map[string]string `json:"description_i18n"`
	Location       *string           `json:"location"`
	EmploymentType *string           `json:"employment_type"`
	Requirements   map[string]string `json:"requirements_i18n"`
	Status         string            `json:"status"`
}

func (req createJobRequest) toInput() job.CreateInput {
	return job.CreateInput{
		Title:          model.I18nText(req.Title),
		Description:    model.I18nText(req.Description),
		Location:       req.Location,
		EmploymentType: req.EmploymentType,
		Requirements:   model.I18nText(req.Requirements),
		Status:         req.Status,
	}
}

type updateJobRequest struct {
	Title          map[string]string `json:"title_i18n"`
	Description    map[string]string `json:"description_i18n"`
	Location       *string           `json:"location"`
	EmploymentType *string           `json:"employment_type"`
	Requirements   map[string]string `json:"requirements_i18n"`
	Status         *string           `json:"status"`
}

func (req updateJobRequest) toInput(id string) job.UpdateInput {
	return job.UpdateInput{
		ID:             id,
		Title:          model.I18nText(req.Title),
		Description:    model.I18nText(req.Description),
		Location:       req.Location,
		EmploymentType: req.EmploymentType,
		Requirements:   model.I18nText(req.Requirements),
		Status:         req.Status,
	}
}

type applyRequest struct {
	ApplicantName string            `json:"applicant_name" binding:"required"`
	Email         string            `json:"email" binding:"required,email"`
	Phone         *string           `json:"phone"`
	ResumeURL     *string           `json:"resume_url"`
	CoverLetter   map[string]string `json:"cover_letter_i18n"`
}

func (req applyRequest) toInput(jobID string) job.ApplyInput {
	return job.ApplyInput{
		JobID:         jobID,
		ApplicantName: req.ApplicantName,
		Email:         req.Email,
		Phone:         req.Phone,
		ResumeURL:     req.ResumeURL,
		CoverLetter:   model.I18nText(req.CoverLetter),
	}
}

type getApplicationsRequest struct {
	JobID  string `form:"job_id"`
	Status string `form:"status"`
	Page   int    `form:"page"`
	Limit  int64  `form:"limit"`
}

func (req getApplicationsRequest) toInput() job.GetApplicationsInput {
	return job.GetApplicationsInput{
		Filter: job.ApplicationFilter{
			JobID:  req.JobID,
			Status: req.Status,
		},
		PaginateQuery: paginator.PaginateQuery{
			Page:  req.Page,
			Limit: req.Limit,
		},
	}
}

type updateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type getJobsResponse struct {
	Items []model.Job                 `json:"items"`
	Meta  paginator.PaginatorResponse `json:"meta"`
}

type getApplicationsResponse struct {
	Items []model.JobApplication      `json:"items"`
	Meta  paginator.PaginatorResponse `json:"meta"`
}
