package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/queries"

	"autoexport-srv/internal/document/repository"
	"autoexport-srv/internal/model"
	"autoexport-srv/pkg/paginator"
	postgresPkg "autoexport-srv/pkg/postgre"
)

const documentColumns = `id, title_i18n, category, file_url, file_size, created_at`

type documentRow struct {
	ID        string         `boil:"id"`
	TitleI18n model.I18nText `boil:"title_i18n"`
	Category  null.String    `boil:"category"`
	FileURL   string         `boil:"file_url"`
	FileSize  null.Int64     `boil:"file_size"`
	CreatedAt time.Time      `boil:"created_at"`
}

func (r documentRow) toModel() model.Document {
	return model.Document{
		ID:        r.ID,
		Title:     r.TitleI18n,
		Category:  r.Category.Ptr(),
		FileURL:   r.FileURL,
		FileSize:  r.FileSize.Ptr(),
		CreatedAt: r.CreatedAt,
	}
}

func (r *implRepository) buildFilterWhere(f repository.Filter) (string, []any, int) {
	conds := []string{"TRUE"}
	args := []any{}
	idx := 1

	if f.Category != "" {
		conds = append(conds, fmt.Sprintf("category = $%d", idx))
		args = append(args, f.Category)
		idx++
	}

	if f.Search != "" {
		conds = append(conds, fmt.Sprintf("title_i18n::text ILIKE $%d", idx))
		args = append(args, "%"+f.Search+"%")
		idx++
	}

	return strings.Join(conds, " AND "), args, idx
}

func (r *implRepository) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.Document, paginator.Paginator, error) {
	where, args, idx := r.buildFilterWhere(opts.Filter)

	total, err := r.Count(ctx, sc, repository.CountOptions{Filter: opts.Filter})
	if err != nil {
		r.l.Errorf(ctx, "internal.document.repository.postgres.Get.Count: %v", err)
		return nil, paginator.Paginator{}, err
	}

	pq := opts.PaginateQuery
	pq.Adjust()

	query := fmt.Sprintf(
		`SELECT %s FROM documents WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		documentColumns, where, idx, idx+1,
	)
	args = append(args, pq.Limit, pq.Offset())

	var rows []documentRow
	if err := queries.Raw(query, args...).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.document.repository.postgres.Get.Bind: %v", err)
		return nil, paginator.Paginator{}, err
	}

	docs := make([]model.Document, len(rows))
	for i, row := range rows {
		docs[i] = row.toModel()
	}

	return docs, paginator.Paginator{
		Total:       total,
		Count:       int64(len(docs)),
		PerPage:     pq.Limit,
		CurrentPage: pq.Page,
	}, nil
}

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.Document, error) {
	if err := postgresPkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.document.repository.postgres.Detail.IsUUID: %v", err)
		return model.Document{}, err
	}

	var row documentRow
	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`
	if err := queries.Raw(query, id).Bind(ctx, r.db, &row); err != nil {
		if err == sql.ErrNoRows {
			return model.Document{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.document.repository.postgres.Detail.Bind: %v", err)
		return model.Document{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.Document, error) {
	doc := opts.Document
	if doc.ID == "" {
		doc.ID = postgresPkg.NewUUID()
	}

	var row documentRow
	query := `
		INSERT INTO documents (id, title_i18n, category, file_url, file_size, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + documentColumns
	err := queries.Raw(query,
		doc.ID,
		doc.Title,
		null.StringFromPtr(doc.Category),
		doc.FileURL,
		null.Int64FromPtr(doc.FileSize),
		r.clock(),
	).Bind(ctx, r.db, &row)
	if err != nil {
		r.l.Errorf(ctx, "internal.document.repository.postgres.Create.Bind: %v", err)
		return model.Document{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) Update(ctx context.Context, sc model.Scope, opts repository.UpdateOptions) (model.Document, error) {
	doc := opts.Document
	if err := postgresPkg.IsUUID(doc.ID); err != nil {
		r.l.Errorf(ctx, "internal.document.repository.postgres.Update.IsUUID: %v", err)
		return model.Document{}, err
	}

	var row documentRow
	query := `
		UPDATE documents
		SET title_i18n = $2, category = $3, file_url = $4, file_size = $5
		WHERE id = $1
		RETURNING ` + documentColumns
	err := queries.Raw(query,
		doc.ID,
		doc.Title,
		null.StringFromPtr(doc.Category),
		doc.FileURL,
		null.Int64FromPtr(doc.FileSize),
	).Bind(ctx, r.db, &row)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Document{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.document.repository.postgres.Update.Bind: %v", err)
		return model.Document{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := postgresPkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.document.repository.postgres.Delete.IsUUID: %v", err)
		return err
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		r.l.Errorf(ctx, "internal.document.repository.postgres.Delete.Exec: %v", err)
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "internal.document.repository.postgres.Delete.RowsAffected: %v", err)
		return err
	}
	if rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *implRepository) Count(ctx context.Context, sc model.Scope, opts repository.CountOptions) (int64, error) {
	where, args, _ := r.buildFilterWhere(opts.Filter)

	var total int64
	query := fmt.Sprintf(`SELECT COUNT(*) FROM documents WHERE %s`, where)
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "internal.document.repository.postgres.Count.Scan: %v", err)
		return 0, err
	}

	return total, nil
}
