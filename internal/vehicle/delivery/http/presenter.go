package http

import (
	"time"

	"autoexport-srv/internal/model"
	"autoexport-srv/internal/vehicle"
	"autoexport-srv/pkg/paginator"
)

type getVehiclesRequest struct {
	IDs      []string `form:"ids"`
	Category string   `form:"category"`
	Status   string   `form:"status"`
	Search   string   `form:"search"`
	Page     int      `form:"page"`
	Limit    int64    `form:"limit"`
}

func (req getVehiclesRequest) toInput() vehicle.GetInput {
	return vehicle.GetInput{
		Filter: vehicle.Filter{
			IDs:      req.IDs,
			Category: req.Category,
			Status:   req.Status,
			Search:   req.Search,
		},
		PaginateQuery: paginator.PaginateQuery{
			Page:  req.Page,
			Limit: req.Limit,
		},
	}
}

type createVehicleRequest struct {
	Name           map[string]string `json:"name_i18n" binding:"required"`
	Description    map[string]string `json:"description_i18n"`
	Category       *string           `json:"category"`
	Specifications map[string]string `json:"specifications"`
	PriceRangeMin  *float64          `json:"price_range_min"`
	PriceRangeMax  *float64          `json:"price_range_max"`
	Status         string            `json:"status"`
}

func (req createVehicleRequest) toInput() vehicle.CreateInput {
	return vehicle.CreateInput{
		Name:           model.I18nText(req.Name),
		Description:    model.I18nText(req.Description),
		Category:       req.Category,
		Specifications: model.I18nText(req.Specifications),
		PriceRangeMin:  req.PriceRangeMin,
		PriceRangeMax:  req.PriceRangeMax,
		Status:         req.Status,
	}
}

type updateVehicleRequest struct {
	Name           map[string]string `json:"name_i18n"`
	Description    map[string]string `json:"description_i18n"`
	Category       *string           `json:"category"`
	Specifications map[string]string `json:"specifications"`
	PriceRangeMin  *float64          `json:"price_range_min"`
	PriceRangeMax  *float64          `json:"price_range_max"`
	Status         *string           `json:"status"`
}

func (req updateVehicleRequest) toInput(id string) vehicle.UpdateInput {
	return vehicle.UpdateInput{
		ID:             id,
		Name:           model.I18nText(req.Name),
		Description:    model.I18nText(req.Description),
		Category:       req.Category,
		Specifications: model.I18nText(req.Specifications),
		PriceRangeMin:  req.PriceRangeMin,
		PriceRangeMax:  req.PriceRangeMax,
		Status:         req.Status,
	}
}

type addImageRequest struct {
	URL          string `json:"url" binding:"required"`
	DisplayOrder int    `json:"display_order"`
	IsCover      bool   `json:"is_cover"`
}

func (req addImageRequest) toInput(vehicleID string) vehicle.AddImageInput {
	return vehicle.AddImageInput{
		VehicleID:    vehicleID,
		URL:          req.URL,
		DisplayOrder: req.DisplayOrder,
		IsCover:      req.IsCover,
	}
}

type addCertificateRequest struct {
	Title             map[string]string `json:"title_i18n" binding:"required"`
	CertificateNumber *string           `json:"certificate_number"`
	PDFURL            *string           `json:"pdf_url"`
	IssueDate         *time.Time        `json:"issue_date"`
	ExpiryDate        *time.Time        `json:"expiry_date"`
}

func (req addCertificateRequest) toInput(vehicleID string) vehicle.AddCertificateInput {
	return vehicle.AddCertificateInput{
		VehicleID:         vehicleID,
		Title:             model.I18nText(req.Title),
		CertificateNumber: req.CertificateNumber,
		PDFURL:            req.PDFURL,
		IssueDate:         req.IssueDate,
		ExpiryDate:        req.ExpiryDate,
	}
}

type getVehiclesResponse struct {
	Items []model.Vehicle             `json:"items"`
	Meta  paginator.PaginatorResponse `json:"meta"`
}

type vehicleDetailResponse struct {
	Vehicle      model.Vehicle        `json:"vehicle"`
	Images       []model.VehicleImage `json:"images"`
	Certificates []model.Certificate  `json:"certificates"`
}
