package job

import (
	"autoexport-srv/internal/model"
	"autoexport-srv/pkg/paginator"
)

type Filter struct {
	Status   string
	Location string
	Search   string
}

type GetInput struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

type GetOutput struct {
	Jobs      []model.Job
	Paginator paginator.Paginator
}

type CreateInput struct {
	Title          model.I18nText
	Description    model.I18nText
	Location       *string
	EmploymentType *string
	Requirements   model.I18nText
	Status         string
}

type UpdateInput struct {
	ID             string
	Title          model.I18nText
	Description    model.I18nText
	Location       *string
	EmploymentType *string
	Requirements   model.I18nText
	Status         *string
}

type ApplyInput struct {
	JobID         string
	ApplicantName string
	Email         string
	Phone         *string
	ResumeURL     *string
	CoverLetter   model.I18nText
}

type ApplicationFilter struct {
	JobID  string
	Status string
}

type GetApplicationsInput struct {
	Filter        ApplicationFilter
	PaginateQuery paginator.PaginateQuery
}

type GetApplicationsOutput struct {
	Applications []model.JobApplication
	Paginator    paginator.Paginator
}

type UpdateApplicationStatusInput struct {
	ID     string
	Status string
}
