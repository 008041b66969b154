package postgres

import (
	"time"

	"github.com/aarondl/null/v8"

	"autoexport-srv/internal/model"
)

type jobRow struct {
	ID               string         `boil:"id"`
	TitleI18n        model.I18nText `boil:"title_i18n"`
	DescriptionI18n  model.I18nText `boil:"description_i18n"`
	Location         null.String    `boil:"location"`
	EmploymentType   null.String    `boil:"employment_type"`
	RequirementsI18n model.I18nText `boil:"requirements_i18n"`
	Status           string         `boil:"status"`
	CreatedAt        time.Time      `boil:"created_at"`
}

func (r jobRow) toModel() model.Job {
	return model.Job{
		ID:             r.ID,
		Title:          r.TitleI18n,
		Description:    r.DescriptionI18n,
		Location:       r.Location.Ptr(),
		EmploymentType: r.EmploymentType.Ptr(),
		Requirements:   r.RequirementsI18n,
		Status:         r.Status,
		CreatedAt:      r.CreatedAt,
	}
}

type applicationRow struct {
	ID              string         `boil:"id"`
	JobID           null.String    `boil:"job_id"`
	ApplicantName   string         `boil:"applicant_name"`
	Email           string         `boil:"email"`
	Phone           null.String    `boil:"phone"`
	ResumeURL       null.String    `boil:"resume_url"`
	CoverLetterI18n model.I18nText `boil:"cover_letter_i18n"`
	Status          string         `boil:"status"`
	AppliedAt       time.Time      `boil:"applied_at"`
}

func (r applicationRow) toModel() model.JobApplication {
	return model.JobApplication{
		ID:            r.ID,
		JobID:         r.JobID.Ptr(),
		ApplicantName: r.ApplicantName,
		Email:         r.Email,
		Phone:         r.Phone.Ptr(),
		ResumeURL:     r.ResumeURL.Ptr(),
		CoverLetter:   r.CoverLetterI18n,
		Status:        r.Status,
		AppliedAt:     r.AppliedAt,
	}
}
