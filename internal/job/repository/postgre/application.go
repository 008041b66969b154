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

const applicationColumns = `id, job_id, applicant_name, email, phone, resume_url, cover_letter_i18n, status, applied_at`

func (r *implRepository) buildApplicationWhere(ctx context.Context, f repository.ApplicationFilter) (string, []any, int, error) {
	conds := []string{"TRUE"}
	args := []any{}
	idx := 1

	if f.JobID != "" {
		if err := postgresPkg.IsUUID(f.JobID); err != nil {
			r.l.Errorf(ctx, "internal.job.repository.postgres.buildApplicationWhere.IsUUID: %v", err)
			return "", nil, 0, err
		}
		conds = append(conds, fmt.Sprintf("job_id = $%d", idx))
		args = append(args, f.JobID)
		idx++
	}

	if f.Status != "" {
		conds = append(conds, fmt.Sprintf("status = $%d", idx))
		args = append(args, f.Status)
		idx++
	}

	return strings.Join(conds, " AND "), args, idx, nil
}

func (r *implRepository) CreateApplication(ctx context.Context, sc model.Scope, opts repository.CreateApplicationOptions) (model.JobApplication, error) {
	app := opts.Application
	if app.ID == "" {
		app.ID = postgresPkg.NewUUID()
	}
	if app.Status == "" {
		app.Status = model.ApplicationStatusNew
	}

	var row applicationRow
	query := `
		INSERT INTO job_applications (id, job_id, applicant_name, email, phone, resume_url, cover_letter_i18n, status, applied_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + applicationColumns
	err := queries.Raw(query,
		app.ID,
		null.StringFromPtr(app.JobID),
		app.ApplicantName,
		app.Email,
		null.StringFromPtr(app.Phone),
		null.StringFromPtr(app.ResumeURL),
		app.CoverLetter,
		app.Status,
		r.clock(),
	).Bind(ctx, r.db, &row)
	if err != nil {
		r.l.Errorf(ctx, "internal.job.repository.postgres.CreateApplication.Bind: %v", err)
		return model.JobApplication{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) GetApplications(ctx context.Context, sc model.Scope, opts repository.GetApplicationsOptions) ([]model.JobApplication, paginator.Paginator, error) {
	where, args, idx, err := r.buildApplicationWhere(ctx, opts.Filter)
	if err != nil {
		return nil, paginator.Paginator{}, err
	}

	total, err := r.CountApplications(ctx, sc, repository.CountApplicationsOptions{Filter: opts.Filter})
	if err != nil {
		r.l.Errorf(ctx, "internal.job.repository.postgres.GetApplications.Count: %v", err)
		return nil, paginator.Paginator{}, err
	}

	pq := opts.PaginateQuery
	pq.Adjust()

	query := fmt.Sprintf(
		`SELECT %s FROM job_applications WHERE %s ORDER BY applied_at DESC LIMIT $%d OFFSET $%d`,
		applicationColumns, where, idx, idx+1,
	)
	args = append(args, pq.Limit, pq.Offset())

	var rows []applicationRow
	if err := queries.Raw(query, args...).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.job.repository.postgres.GetApplications.Bind: %v", err)
		return nil, paginator.Paginator{}, err
	}

	apps := make([]model.JobApplication, len(rows))
	for i, row := range rows {
		apps[i] = row.toModel()
	}

	return apps, paginator.Paginator{
		Total:       total,
		Count:       int64(len(apps)),
		PerPage:     pq.Limit,
		CurrentPage: pq.Page,
	}, nil
}

func (r *implRepository) DetailApplication(ctx context.Context, sc model.Scope, id string) (model.JobApplication, error) {
	if err := postgresPkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.job.repository.postgres.DetailApplication.IsUUID: %v", err)
		return model.JobApplication{}, err
	}

	var row applicationRow
	query := `SELECT ` + applicationColumns + ` FROM job_applications WHERE id = $1`
	if err := queries.Raw(query, id).Bind(ctx, r.db, &row); err != nil {
		if err == sql.ErrNoRows {
			return model.JobApplication{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.job.repository.postgres.DetailApplication.Bind: %v", err)
		return model.JobApplication{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) UpdateApplicationStatus(ctx context.Context, sc model.Scope, id, status string) (model.JobApplication, error) {
	if err := postgresPkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.job.repository.postgres.UpdateApplicationStatus.IsUUID: %v", err)
		return model.JobApplication{}, err
	}

	var row applicationRow
	query := `UPDATE job_applications SET status = $2 WHERE id = $1 RETURNING ` + applicationColumns
	if err := queries.Raw(query, id, status).Bind(ctx, r.db, &row); err != nil {
		if err == sql.ErrNoRows {
			return model.JobApplication{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.job.repository.postgres.UpdateApplicationStatus.Bind: %v", err)
		return model.JobApplication{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) DeleteApplication(ctx context.Context, sc model.Scope, id string) error {
	if err := postgresPkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.job.repository.postgres.DeleteApplication.IsUUID: %v", err)
		return err
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM job_applications WHERE id = $1`, id)
	if err != nil {
		r.l.Errorf(ctx, "internal.job.repository.postgres.DeleteApplication.Exec: %v", err)
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "internal.job.repository.postgres.DeleteApplication.RowsAffected: %v", err)
		return err
	}
	if rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *implRepository) CountApplications(ctx context.Context, sc model.Scope, opts repository.CountApplicationsOptions) (int64, error) {
	where, args, _, err := r.buildApplicationWhere(ctx, opts.Filter)
	if err != nil {
		return 0, err
	}

	var total int64
	query := fmt.Sprintf(`SELECT COUNT(*) FROM job_applications WHERE %s`, where)
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "internal.job.repository.postgres.CountApplications.Scan: %v", err)
		return 0, err
	}

	return total, nil
}
