package inquiry

import (
	"autoexport-srv/internal/model"
	"autoexport-srv/pkg/paginator"
)

type Filter struct {
	VehicleID string
	Status    string
	Country   string
}

type GetInput struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

type GetOutput struct {
	Inquiries []model.Inquiry
	Paginator paginator.Paginator
}

type SubmitInput struct {
	VehicleID   *string
	CompanyName *string
	ContactName string
	Email       string
	Phone       *string
	Country     *string
	Message     model.I18nText
	Quantity    *int
}

type UpdateStatusInput struct {
	ID     string
	Status string
}
