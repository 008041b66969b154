package http

import (
	"autoexport-srv/internal/inquiry"
	"autoexport-srv/internal/model"
	"autoexport-srv/pkg/paginator"
)

type submitInquiryRequest struct {
	VehicleID   *string           `json:"vehicle_id"`
	CompanyName *string           `json:"company_name"`
	ContactName string            `json:"contact_name" binding:"required"`
	Email       string            `json:"email" binding:"required,email"`
	Phone       *string           `json:"phone"`
	Country     *string           `json:"country"`
	Message     map[string]string `json:"message_i18n"`
	Quantity    *int              `json:"quantity"`
}

func (req submitInquiryRequest) toInput() inquiry.SubmitInput {
	return inquiry.SubmitInput{
		VehicleID:   req.VehicleID,
		CompanyName: req.CompanyName,
		ContactName: req.ContactName,
		Email:       req.Email,
		Phone:       req.Phone,
		Country:     req.Country,
		Message:     model.I18nText(req.Message),
		Quantity:    req.Quantity,
	}
}

type getInquiriesRequest struct {
	VehicleID string `form:"vehicle_id"`
	Status    string `form:"status"`
	Country   string `form:"country"`
	Page      int    `form:"page"`
	Limit     int64  `form:"limit"`
}

func (req getInquiriesRequest) toInput() inquiry.GetInput {
	return inquiry.GetInput{
		Filter: inquiry.Filter{
			VehicleID: req.VehicleID,
			Status:    req.Status,
			Country:   req.Country,
		},
		PaginateQuery: paginator.PaginateQuery{
			Page:  req.Page,
			Limit: req.Limit,
		},
	}
}

type updateInquiryStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type getInquiriesResponse struct {
	Items []model.Inquiry             `json:"items"`
	Meta  paginator.PaginatorResponse `json:"meta"`
}
