package usecase

import (
	"context"
	"errors"

	"autoexport-srv/internal/document"
	"autoexport-srv/internal/document/repository"
	"autoexport-srv/internal/model"
	"autoexport-srv/pkg/session"
)

func (uc *usecase) Get(ctx context.Context, sc model.Scope, ip document.GetInput) (document.GetOutput, error) {
	docs, pag, err := uc.repo.Get(ctx, sc, repository.GetOptions{
		Filter: repository.Filter{
			Category: ip.Filter.Category,
			Search:   ip.Filter.Search,
		},
		PaginateQuery: ip.PaginateQuery,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.document.usecase.Get.repo.Get: %v", err)
		return document.GetOutput{}, err
	}

	return document.GetOutput{
		Documents: docs,
		Paginator: pag,
	}, nil
}

func (uc *usecase) Detail(ctx context.Context, sc model.Scope, id string) (model.Document, error) {
	doc, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Document{}, document.ErrDocumentNotFound
		}
		uc.l.Errorf(ctx, "internal.document.usecase.Detail.repo.Detail: %v", err)
		return model.Document{}, err
	}

	return doc, nil
}

func (uc *usecase) Create(ctx context.Context, sc model.Scope, ip document.CreateInput) (model.Document, error) {
	if err := session.Require(sc.Role, session.RoleEditor); err != nil {
		return model.Document{}, err
	}

	if len(ip.Title) == 0 {
		return model.Document{}, document.ErrTitleRequired
	}
	if ip.FileURL == "" {
		return model.Document{}, document.ErrFileURLRequired
	}

	doc, err := uc.repo.Create(ctx, sc, repository.CreateOptions{
		Document: model.Document{
			Title:    ip.Title,
			Category: ip.Category,
			FileURL:  ip.FileURL,
			FileSize: ip.FileSize,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.document.usecase.Create.repo.Create: %v", err)
		return model.Document{}, err
	}

	return doc, nil
}

func (uc *usecase) Update(ctx context.Context, sc model.Scope, ip document.UpdateInput) (model.Document, error) {
	if err := session.Require(sc.Role, session.RoleEditor); err != nil {
		return model.Document{}, err
	}

	cur, err := uc.repo.Detail(ctx, sc, ip.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Document{}, document.ErrDocumentNotFound
		}
		uc.l.Errorf(ctx, "internal.document.usecase.Update.repo.Detail: %v", err)
		return model.Document{}, err
	}

	if ip.Title != nil {
		cur.Title = ip.Title
	}
	if ip.Category != nil {
		cur.Category = ip.Category
	}
	if ip.FileURL != nil {
		cur.FileURL = *ip.FileURL
	}
	if ip.FileSize != nil {
		cur.FileSize = ip.FileSize
	}

	doc, err := uc.repo.Update(ctx, sc, repository.UpdateOptions{Document: cur})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Document{}, document.ErrDocumentNotFound
		}
		uc.l.Errorf(ctx, "internal.document.usecase.Update.repo.Update: %v", err)
		return model.Document{}, err
	}

	return doc, nil
}

func (uc *usecase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := session.Require(sc.Role, session.RoleAdmin); err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, sc, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return document.ErrDocumentNotFound
		}
		uc.l.Errorf(ctx, "internal.document.usecase.Delete.repo.Delete: %v", err)
		return err
	}

	return nil
}
