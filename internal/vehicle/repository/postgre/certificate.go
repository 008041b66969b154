package postgres

import (
	"context"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/queries"

	"autoexport-srv/internal/model"
	"autoexport-srv/internal/vehicle/repository"
	postgresPkg "autoexport-srv/pkg/postgre"
)

const certificateColumns = `id, vehicle_id, title_i18n, certificate_number, pdf_url, issue_date, expiry_date`

func (r *implRepository) ListCertificates(ctx context.Context, sc model.Scope, vehicleID string) ([]model.Certificate, error) {
	if err := postgresPkg.IsUUID(vehicleID); err != nil {
		r.l.Errorf(ctx, "internal.vehicle.repository.postgres.ListCertificates.IsUUID: %v", err)
		return nil, err
	}

	var rows []certificateRow
	query := `SELECT ` + certificateColumns + ` FROM certificates WHERE vehicle_id = $1 ORDER BY issue_date DESC NULLS LAST, id ASC`
	if err := queries.Raw(query, vehicleID).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.vehicle.repository.postgres.ListCertificates.Bind: %v", err)
		return nil, err
	}

	certs := make([]model.Certificate, len(rows))
	for i, row := range rows {
		certs[i] = row.toModel()
	}

	return certs, nil
}

func (r *implRepository) CreateCertificate(ctx context.Context, sc model.Scope, opts repository.CreateCertificateOptions) (model.Certificate, error) {
	cert := opts.Certificate
	if err := postgresPkg.IsUUID(cert.VehicleID); err != nil {
		r.l.Errorf(ctx, "internal.vehicle.repository.postgres.CreateCertificate.IsUUID: %v", err)
		return model.Certificate{}, err
	}
	if cert.ID == "" {
		cert.ID = postgresPkg.NewUUID()
	}

	var row certificateRow
	query := `
		INSERT INTO certificates (id, vehicle_id, title_i18n, certificate_number, pdf_url, issue_date, expiry_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + certificateColumns
	err := queries.Raw(query,
		cert.ID,
		cert.VehicleID,
		cert.Title,
		null.StringFromPtr(cert.CertificateNumber),
		null.StringFromPtr(cert.PDFURL),
		null.TimeFromPtr(cert.IssueDate),
		null.TimeFromPtr(cert.ExpiryDate),
	).Bind(ctx, r.db, &row)
	if err != nil {
		r.l.Errorf(ctx, "internal.vehicle.repository.postgres.CreateCertificate.Bind: %v", err)
		return model.Certificate{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) DeleteCertificate(ctx context.Context, sc model.Scope, id string) error {
	if err := postgresPkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.vehicle.repository.postgres.DeleteCertificate.IsUUID: %v", err)
		return err
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM certificates WHERE id = $1`, id)
	if err != nil {
		r.l.Errorf(ctx, "internal.vehicle.repository.postgres.DeleteCertificate.Exec: %v", err)
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "internal.vehicle.repository.postgres.DeleteCertificate.RowsAffected: %v", err)
		return err
	}
	if rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}
