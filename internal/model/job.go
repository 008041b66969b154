package model

import "time"

// Job statuses.
const (
	JobStatusActive = "active"
	JobStatusClosed = "closed"
)

// Job application statuses.
const (
	ApplicationStatusNew      = "new"
	ApplicationStatusReviewed = "reviewed"
	ApplicationStatusRejected = "rejected"
	ApplicationStatusHired    = "hired"
)

// Job is an open position listing.
type Job struct {
	ID             string    `json:"id"`
	Title          I18nText  `json:"title_i18n"`
	Description    I18nText  `json:"description_i18n,omitempty"`
	Location       *string   `json:"location,omitempty"`
	EmploymentType *string   `json:"employment_type,omitempty"`
	Requirements   I18nText  `json:"requirements_i18n,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// JobApplication is a candidate submission for a job.
type JobApplication struct {
	ID            string    `json:"id"`
	JobID         *string   `json:"job_id,omitempty"`
	ApplicantName string    `json:"applicant_name"`
	Email         string    `json:"email"`
	Phone         *string   `json:"phone,omitempty"`
	ResumeURL     *string   `json:"resume_url,omitempty"`
	CoverLetter   I18nText  `json:"cover_letter_i18n,omitempty"`
	Status        string    `json:"status"`
	AppliedAt     time.Time `json:"applied_at"`
}
