package vehicle

import (
	"time"

	"autoexport-srv/internal/model"
	"autoexport-srv/pkg/paginator"
)

type Filter struct {
	IDs      []string
	Category string
	Status   string
	Search   string
}

type GetInput struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

type GetOutput struct {
	Vehicles  []model.Vehicle
	Paginator paginator.Paginator
}

type ListInput struct {
	Filter Filter
}

type DetailOutput struct {
	Vehicle      model.Vehicle
	Images       []model.VehicleImage
	Certificates []model.Certificate
}

type CreateInput struct {
	Name           model.I18nText
	Description    model.I18nText
	Category       *string
	Specifications model.I18nText
	PriceRangeMin  *float64
	PriceRangeMax  *float64
	Status         string
}

type UpdateInput struct {
	ID             string
	Name           model.I18nText
	Description    model.I18nText
	Category       *string
	Specifications model.I18nText
	PriceRangeMin  *float64
	PriceRangeMax  *float64
	Status         *string
}

type AddImageInput struct {
	VehicleID    string
	URL          string
	DisplayOrder int
	IsCover      bool
}

type AddCertificateInput struct {
	VehicleID         string
	Title             model.I18nText
	CertificateNumber *string
	PDFURL            *string
	IssueDate         *time.Time
	ExpiryDate        *time.Time
}
