package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/queries"

	"autoexport-srv/internal/job/repository"
	"autoexport-srv/internal/model"
	"autoexport-srv/pkg/paginator"
	postgresPkg "autoexport-srv/pkg/postgre"
)

const jobColumns = `id, title_i18n, description_i18n, location, employment_type, requirements_i18n, status, created_at`

func (r *implRepository) buildFilterWhere(f repository.Filter) (string, []any, int) {
	conds := []string{"TRUE"}
	args := []any{}
	idx := 1

	if f.Status != "" {
		conds = append(conds, fmt.Sprintf("status = $%d", idx))
		args = append(args, f.Status)
		idx++
	}

	if f.PublicOnly {
		conds = append(conds, fmt.Sprintf("status = $%d", idx))
		args = append(args, model.JobStatusActive)
		idx++
	}

	if f.Location != "" {
		conds = append(conds, fmt.Sprintf("location = $%d", idx))
		args = append(args, f.Location)
		idx++
	}

	if f.Search != "" {
		conds = append(conds, fmt.Sprintf("title_i18n::text ILIKE $%d", idx))
		args = append(args, "%"+f.Search+"%")
		idx++
	}

	return strings.Join(conds, " AND "), args, idx
}

func (r *implRepository) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.Job, paginator.Paginator, error) {
	where, args, idx := r.buildFilterWhere(opts.Filter)

	total, err := r.Count(ctx, sc, repository.CountOptions{Filter: opts.Filter})
	if err != nil {
		r.l.Errorf(ctx, "internal.job.repository.postgres.Get.Count: %v", err)
		return nil, paginator.Paginator{}, err
	}

	pq := opts.PaginateQuery
	pq.Adjust()

	query := fmt.Sprintf(
		`SELECT %s FROM jobs WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		jobColumns, where, idx, idx+1,
	)
	args = append(args, pq.Limit, pq.Offset())

	var rows []jobRow
	if err := queries.Raw(query, args...).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.job.repository.postgres.Get.Bind: %v", err)
		return nil, paginator.Paginator{}, err
	}

	jobs := make([]model.Job, len(rows))
	for i, row := range rows {
		jobs[i] = row.toModel()
	}

	return jobs, paginator.Paginator{
		Total:       total,
		Count:       int64(len(jobs)),
		PerPage:     pq.Limit,
		CurrentPage: pq.Page,
	}, nil
}

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.Job, error) {
	if err := postgresPkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.job.repository.postgres.Detail.IsUUID: %v", err)
		return model.Job{}, err
	}

	var row jobRow
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	if err := queries.Raw(query, id).Bind(ctx, r.db, &row); err != nil {
		if err == sql.ErrNoRows {
			return model.Job{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.job.repository.postgres.Detail.Bind: %v", err)
		return model.Job{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.Job, error) {
	j := opts.Job
	if j.ID == "" {
		j.ID = postgresPkg.NewUUID()
	}
	if j.Status == "" {
		j.Status = model.JobStatusActive
	}

	var row jobRow
	query := `
		INSERT INTO jobs (id, title_i18n, description_i18n, location, employment_type, requirements_i18n, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + jobColumns
	err := queries.Raw(query,
		j.ID,
		j.Title,
		j.Description,
		null.StringFromPtr(j.Location),
		null.StringFromPtr(j.EmploymentType),
		j.Requirements,
		j.Status,
		r.clock(),
	).Bind(ctx, r.db, &row)
	if err != nil {
		r.l.Errorf(ctx, "internal.job.repository.postgres.Create.Bind: %v", err)
		return model.Job{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) Update(ctx context.Context, sc model.Scope, opts repository.UpdateOptions) (model.Job, error) {
	j := opts.Job
	if err := postgresPkg.IsUUID(j.ID); err != nil {
		r.l.Errorf(ctx, "internal.job.repository.postgres.Update.IsUUID: %v", err)
		return model.Job{}, err
	}

	var row jobRow
	query := `
		UPDATE jobs
		SET title_i18n = $2, description_i18n = $3, location = $4, employment_type = $5, requirements_i18n = $6, status = $7
		WHERE id = $1
		RETURNING ` + jobColumns
	err := queries.Raw(query,
		j.ID,
		j.Title,
		j.Description,
		null.StringFromPtr(j.Location),
		null.StringFromPtr(j.EmploymentType),
		j.Requirements,
		j.Status,
	).Bind(ctx, r.db, &row)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Job{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.job.repository.postgres.Update.Bind: %v", err)
		return model.Job{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := postgresPkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.job.repository.postgres.Delete.IsUUID: %v", err)
		return err
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		r.l.Errorf(ctx, "internal.job.repository.postgres.Delete.Exec: %v", err)
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "internal.job.repository.postgres.Delete.RowsAffected: %v", err)
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
	query := fmt.Sprintf(`SELECT COUNT(*) FROM jobs WHERE %s`, where)
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "internal.job.repository.postgres.Count.Scan: %v", err)
		return 0, err
	}

	return total, nil
}
