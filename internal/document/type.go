package document

import (
	"autoexport-srv/internal/model"
	"autoexport-srv/pkg/paginator"
)

type Filter struct {
	Category string
	Search   string
}

type GetInput struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

type GetOutput struct {
	Documents []model.Document
	Paginator paginator.Paginator
}

type CreateInput struct {
	Title    model.I18nText
	Category *string
	FileURL  string
	FileSize *int64
}

type UpdateInput struct {
	ID       string
	Title    model.I18nText
	Category *string
	FileURL  *string
	FileSize *int64
}
