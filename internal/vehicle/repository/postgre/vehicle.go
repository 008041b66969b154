package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/queries"

	"autoexport-srv/internal/model"
	"autoexport-srv/internal/vehicle/repository"
	"autoexport-srv/pkg/paginator"
	postgresPkg "autoexport-srv/pkg/postgre"
)

func (r *implRepository) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.Vehicle, paginator.Paginator, error) {
	where, args, idx, err := r.buildFilterWhere(ctx, opts.Filter)
	if err != nil {
		r.l.Errorf(ctx, "internal.vehicle.repository.postgres.Get.buildFilterWhere: %v", err)
		return nil, paginator.Paginator{}, err
	}

	total, err := r.Count(ctx, sc, repository.CountOptions{Filter: opts.Filter})
	if err != nil {
		r.l.Errorf(ctx, "internal.vehicle.repository.postgres.Get.Count: %v", err)
		return nil, paginator.Paginator{}, err
	}

	pq := opts.PaginateQuery
	pq.Adjust()

	query := fmt.Sprintf(
		`SELECT %s FROM vehicles WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		vehicleColumns, where, idx, idx+1,
	)
	args = append(args, pq.Limit, pq.Offset())

	var rows []vehicleRow
	if err := queries.Raw(query, args...).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.vehicle.repository.postgres.Get.Bind: %v", err)
		return nil, paginator.Paginator{}, err
	}

	vehicles := make([]model.Vehicle, len(rows))
	for i, row := range rows {
		vehicles[i] = row.toModel()
	}

	return vehicles, paginator.Paginator{
		Total:       total,
		Count:       int64(len(vehicles)),
		PerPage:     pq.Limit,
		CurrentPage: pq.Page,
	}, nil
}

func (r *implRepository) List(ctx context.Context, sc model.Scope, opts repository.ListOptions) ([]model.Vehicle, error) {
	where, args, _, err := r.buildFilterWhere(ctx, opts.Filter)
	if err != nil {
		r.l.Errorf(ctx, "internal.vehicle.repository.postgres.List.buildFilterWhere: %v", err)
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %s FROM vehicles WHERE %s ORDER BY created_at DESC`, vehicleColumns, where)

	var rows []vehicleRow
	if err := queries.Raw(query, args...).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.vehicle.repository.postgres.List.Bind: %v", err)
		return nil, err
	}

	vehicles := make([]model.Vehicle, len(rows))
	for i, row := range rows {
		vehicles[i] = row.toModel()
	}

	return vehicles, nil
}

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.Vehicle, error) {
	if err := postgresPkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.vehicle.repository.postgres.Detail.IsUUID: %v", err)
		return model.Vehicle{}, err
	}

	query := fmt.Sprintf(`SELECT %s FROM vehicles WHERE id = $1`, vehicleColumns)

	var row vehicleRow
	if err := queries.Raw(query, id).Bind(ctx, r.db, &row); err != nil {
		if err == sql.ErrNoRows {
			return model.Vehicle{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.vehicle.repository.postgres.Detail.Bind: %v", err)
		return model.Vehicle{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.Vehicle, error) {
	v := opts.Vehicle
	if v.ID == "" {
		v.ID = postgresPkg.NewUUID()
	}
	if v.Status == "" {
		v.Status = model.VehicleStatusActive
	}

	query := fmt.Sprintf(`
		INSERT INTO vehicles (id, name_i18n, description_i18n, category, specifications, price_range_min, price_range_max, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING %s`, vehicleColumns)

	var row vehicleRow
	err := queries.Raw(query,
		v.ID,
		v.Name,
		v.Description,
		null.StringFromPtr(v.Category),
		v.Specifications,
		null.Float64FromPtr(v.PriceRangeMin),
		null.Float64FromPtr(v.PriceRangeMax),
		v.Status,
		r.clock(),
	).Bind(ctx, r.db, &row)
	if err != nil {
		r.l.Errorf(ctx, "internal.vehicle.repository.postgres.Create.Bind: %v", err)
		return model.Vehicle{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) Update(ctx context.Context, sc model.Scope, opts repository.UpdateOptions) (model.Vehicle, error) {
	v := opts.Vehicle
	if err := postgresPkg.IsUUID(v.ID); err != nil {
		r.l.Errorf(ctx, "internal.vehicle.repository.postgres.Update.IsUUID: %v", err)
		return model.Vehicle{}, err
	}

	query := fmt.Sprintf(`
		UPDATE vehicles
		SET name_i18n = $2, description_i18n = $3, category = $4, specifications = $5,
		    price_range_min = $6, price_range_max = $7, status = $8
		WHERE id = $1
		RETURNING %s`, vehicleColumns)

	var row vehicleRow
	err := queries.Raw(query,
		v.ID,
		v.Name,
		v.Description,
		null.StringFromPtr(v.Category),
		v.Specifications,
		null.Float64FromPtr(v.PriceRangeMin),
		null.Float64FromPtr(v.PriceRangeMax),
		v.Status,
	).Bind(ctx, r.db, &row)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Vehicle{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.vehicle.repository.postgres.Update.Bind: %v", err)
		return model.Vehicle{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := postgresPkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.vehicle.repository.postgres.Delete.IsUUID: %v", err)
		return err
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		r.l.Errorf(ctx, "internal.vehicle.repository.postgres.Delete.Exec: %v", err)
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "internal.vehicle.repository.postgres.Delete.RowsAffected: %v", err)
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
		r.l.Errorf(ctx, "internal.vehicle.repository.postgres.Count.buildFilterWhere: %v", err)
		return 0, err
	}

	var total int64
	query := fmt.Sprintf(`SELECT COUNT(*) FROM vehicles WHERE %s`, where)
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "internal.vehicle.repository.postgres.Count.Scan: %v", err)
		return 0, err
	}

	return total, nil
}
