package http

import (
	"autoexport-srv/internal/document"
	"autoexport-srv/internal/model"
	"autoexport-srv/pkg/paginator"
)

type getDocumentsRequest struct {
	Category string `form:"category"`
	Search   string `form:"search"`
	Page     int    `form:"page"`
	Limit    int64  `form:"limit"`
}

func (req getDocumentsRequest) toInput() document.GetInput {
	return document.GetInput{
		Filter: document.Filter{
			Category: req.Category,
			Search:   req.Search,
		},
		PaginateQuery: paginator.PaginateQuery{
			Page:  req.Page,
			Limit: req.Limit,
		},
	}
}

type createDocumentRequest struct {
	Title    map[string]string `json:"title_i18n" binding:"required"`
	Category *string           `json:"category"`
	FileURL  string            `json:"file_url" binding:"required"`
	FileSize *int64            `json:"file_size"`
}

func (req createDocumentRequest) toInput() document.CreateInput {
	return document.CreateInput{
		Title:    model.I18nText(req.Title),
		Category: req.Category,
		FileURL:  req.FileURL,
		FileSize: req.FileSize,
	}
}

type updateDocumentRequest struct {
	Title    map[string]string `json:"title_i18n"`
	Category *string           `json:"category"`
	FileURL  *string           `json:"file_url"`
	FileSize *int64            `json:"file_size"`
}

func (req updateDocumentRequest) toInput(id string) document.UpdateInput {
	return document.UpdateInput{
		ID:       id,
		Title:    model.I18nText(req.Title),
		Category: req.Category,
		FileURL:  req.FileURL,
		FileSize: req.FileSize,
	}
}

type getDocumentsResponse struct {
	Items []model.Document            `json:"items"`
	Meta  paginator.PaginatorResponse `json:"meta"`
}
