package postgres

import (
	"context"

	"github.com/aarondl/sqlboiler/v4/queries"

	"autoexport-srv/internal/model"
	"autoexport-srv/internal/vehicle/repository"
	postgresPkg "autoexport-srv/pkg/postgre"
)

const imageColumns = `id, vehicle_id, url, display_order, is_cover`

func (r *implRepository) ListImages(ctx context.Context, sc model.Scope, vehicleID string) ([]model.VehicleImage, error) {
	if err := postgresPkg.IsUUID(vehicleID); err != nil {
		r.l.Errorf(ctx, "internal.vehicle.repository.postgres.ListImages.IsUUID: %v", err)
		return nil, err
	}

	var rows []vehicleImageRow
	query := `SELECT ` + imageColumns + ` FROM vehicle_images WHERE vehicle_id = $1 ORDER BY display_order ASC, id ASC`
	if err := queries.Raw(query, vehicleID).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.vehicle.repository.postgres.ListImages.Bind: %v", err)
		return nil, err
	}

	images := make([]model.VehicleImage, len(rows))
	for i, row := range rows {
		images[i] = row.toModel()
	}

	return images, nil
}

func (r *implRepository) CreateImage(ctx context.Context, sc model.Scope, opts repository.CreateImageOptions) (model.VehicleImage, error) {
	img := opts.Image
	if err := postgresPkg.IsUUID(img.VehicleID); err != nil {
		r.l.Errorf(ctx, "internal.vehicle.repository.postgres.CreateImage.IsUUID: %v", err)
		return model.VehicleImage{}, err
	}
	if img.ID == "" {
		img.ID = postgresPkg.NewUUID()
	}

	// A cover image displaces the previous cover within the same gallery.
	if img.IsCover {
		if _, err := r.db.ExecContext(ctx,
			`UPDATE vehicle_images SET is_cover = FALSE WHERE vehicle_id = $1 AND is_cover`, img.VehicleID); err != nil {
			r.l.Errorf(ctx, "internal.vehicle.repository.postgres.CreateImage.ClearCover: %v", err)
			return model.VehicleImage{}, err
		}
	}

	var row vehicleImageRow
	query := `
		INSERT INTO vehicle_images (id, vehicle_id, url, display_order, is_cover)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + imageColumns
	err := queries.Raw(query, img.ID, img.VehicleID, img.URL, img.DisplayOrder, img.IsCover).Bind(ctx, r.db, &row)
	if err != nil {
		r.l.Errorf(ctx, "internal.vehicle.repository.postgres.CreateImage.Bind: %v", err)
		return model.VehicleImage{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) DeleteImage(ctx context.Context, sc model.Scope, id string) error {
	if err := postgresPkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.vehicle.repository.postgres.DeleteImage.IsUUID: %v", err)
		return err
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM vehicle_images WHERE id = $1`, id)
	if err != nil {
		r.l.Errorf(ctx, "internal.vehicle.repository.postgres.DeleteImage.Exec: %v", err)
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "internal.vehicle.repository.postgres.DeleteImage.RowsAffected: %v", err)
		return err
	}
	if rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}
