package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/queries"

	"autoexport-srv/internal/inquiry/repository"
	"autoexport-srv/internal/model"
	"autoexport-srv/pkg/paginator"
	postgresPkg "autoexport-srv/pkg/postgre"
)

const inquiryColumns = `id, vehicle_id, company_name, contact_name, email, phone, country, message_i18n, quantity, status, created_at`

type inquiryRow struct {
	ID          string         `boil:"id"`
	VehicleID   null.String    `boil:"vehicle_id"`
	CompanyName null.String    `boil:"company_name"`
	ContactName string         `boil:"contact_name"`
	Email       string         `boil:"email"`
	Phone       null.String    `boil:"phone"`
	Country     null.String    `boil:"country"`
	MessageI18n model.I18nText `boil:"message_i18n"`
	Quantity    null.Int       `boil:"quantity"`
	Status      string         `boil:"status"`
	CreatedAt   time.Time      `boil:"created_at"`
}

func (r inquiryRow) toModel() model.Inquiry {
	return model.Inquiry{
		ID:          r.ID,
		VehicleID:   r.VehicleID.Ptr(),
		CompanyName: r.CompanyName.Ptr(),
		ContactName: r.ContactName,
		Email:       r.Email,
		Phone:       r.Phone.Ptr(),
		Country:     r.Country.Ptr(),
		Message:     r.MessageI18n,
		Quantity:    r.Quantity.Ptr(),
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
	}
}

func (r *implRepository) buildFilterWhere(ctx context.Context, f repository.Filter) (string, []any, int, error) {
	conds := []string{"TRUE"}
	args := []any{}
	idx := 1

	if f.VehicleID != "" {
		if err := postgresPkg.IsUUID(f.VehicleID); err != nil {
			r.l.Errorf(ctx, "internal.inquiry.repository.postgres.buildFilterWhere.IsUUID: %v", err)
			return "", nil, 0, err
		}
		conds = append(conds, fmt.Sprintf("vehicle_id = $%d", idx))
		args = append(args, f.VehicleID)
		idx++
	}

	if f.Status != "" {
		conds = append(conds, fmt.Sprintf("status = $%d", idx))
		args = append(args, f.Status)
		idx++
	}

	if f.Country != "" {
		conds = append(conds, fmt.Sprintf("country = $%d", idx))
		args = append(args, f.Country)
		idx++
	}

	return strings.Join(conds, " AND "), args, idx, nil
}

func (r *implRepository) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.Inquiry, paginator.Paginator, error) {
	where, args, idx, err := r.buildFilterWhere(ctx, opts.Filter)
	if err != nil {
		return nil, paginator.Paginator{}, err
	}

	total, err := r.Count(ctx, sc, repository.CountOptions{Filter: opts.Filter})
	if err != nil {
		r.l.Errorf(ctx, "internal.inquiry.repository.postgres.Get.Count: %v", err)
		return nil, paginator.Paginator{}, err
	}

	pq := opts.PaginateQuery
	pq.Adjust()

	query := fmt.Sprintf(
		`SELECT %s FROM inquiries WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		inquiryColumns, where, idx, idx+1,
	)
	args = append(args, pq.Limit, pq.Offset())

	var rows []inquiryRow
	if err := queries.Raw(query, args...).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.inquiry.repository.postgres.Get.Bind: %v", err)
		return nil, paginator.Paginator{}, err
	}

	inquiries := make([]model.Inquiry, len(rows))
	for i, row := range rows {
		inquiries[i] = row.toModel()
	}

	return inquiries, paginator.Paginator{
		Total:       total,
		Count:       int64(len(inquiries)),
		PerPage:     pq.Limit,
		CurrentPage: pq.Page,
	}, nil
}

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.Inquiry, error) {
	if err := postgresPkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.inquiry.repository.postgres.Detail.IsUUID: %v", err)
		return model.Inquiry{}, err
	}

	var row inquiryRow
	query := `SELECT ` + inquiryColumns + ` FROM inquiries WHERE id = $1`
	if err := queries.Raw(query, id).Bind(ctx, r.db, &row); err != nil {
		if err == sql.ErrNoRows {
			return model.Inquiry{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.inquiry.repository.postgres.Detail.Bind: %v", err)
		return model.Inquiry{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.Inquiry, error) {
	inq := opts.Inquiry
	if inq.ID == "" {
		inq.ID = postgresPkg.NewUUID()
	}
	if inq.Status == "" {
		inq.Status = model.InquiryStatusNew
	}

	var row inquiryRow
	query := `
		INSERT INTO inquiries (id, vehicle_id, company_name, contact_name, email, phone, country, message_i18n, quantity, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + inquiryColumns
	err := queries.Raw(query,
		inq.ID,
		null.StringFromPtr(inq.VehicleID),
		null.StringFromPtr(inq.CompanyName),
		inq.ContactName,
		inq.Email,
		null.StringFromPtr(inq.Phone),
		null.StringFromPtr(inq.Country),
		inq.Message,
		null.IntFromPtr(inq.Quantity),
		inq.Status,
		r.clock(),
	).Bind(ctx, r.db, &row)
	if err != nil {
		r.l.Errorf(ctx, "internal.inquiry.repository.postgres.Create.Bind: %v", err)
		return model.Inquiry{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) UpdateStatus(ctx context.Context, sc model.Scope, id, status string) (model.Inquiry, error) {
	if err := postgresPkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.inquiry.repository.postgres.UpdateStatus.IsUUID: %v", err)
		return model.Inquiry{}, err
	}

	var row inquiryRow
	query := `UPDATE inquiries SET status = $2 WHERE id = $1 RETURNING ` + inquiryColumns
	if err := queries.Raw(query, id, status).Bind(ctx, r.db, &row); err != nil {
		if err == sql.ErrNoRows {
			return model.Inquiry{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.inquiry.repository.postgres.UpdateStatus.Bind: %v", err)
		return model.Inquiry{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := postgresPkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.inquiry.repository.postgres.Delete.IsUUID: %v", err)
		return err
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM inquiries WHERE id = $1`, id)
	if err != nil {
		r.l.Errorf(ctx, "internal.inquiry.repository.postgres.Delete.Exec: %v", err)
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "internal.inquiry.repository.postgres.Delete.RowsAffected: %v", err)
		return err
	}
	if rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *implRepository) Count(ctx context.Context, sc model.Scope, opts repository.CountOptions) (int64, error) {
	where, args, _, err := r.buildFilterWhere(ctx, opts.Filter)
	if err != nil {
		return 0, err
	}

	var total int64
	query := fmt.Sprintf(`SELECT COUNT(*) FROM inquiries WHERE %s`, where)
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "internal.inquiry.repository.postgres.Count.Scan: %v", err)
		return 0, err
	}

	return total, nil
}
