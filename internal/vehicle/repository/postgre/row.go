package postgres

import (
	"time"

	"github.com/aarondl/null/v8"

	"autoexport-srv/internal/model"
)

type vehicleRow struct {
	ID              string         `boil:"id"`
	NameI18n        model.I18nText `boil:"name_i18n"`
	DescriptionI18n model.I18nText `boil:"description_i18n"`
	Category        null.String    `boil:"category"`
	Specifications  model.I18nText `boil:"specifications"`
	PriceRangeMin   null.Float64   `boil:"price_range_min"`
	PriceRangeMax   null.Float64   `boil:"price_range_max"`
	Status          string         `boil:"status"`
	CreatedAt       time.Time      `boil:"created_at"`
}

func (r vehicleRow) toModel() model.Vehicle {
	return model.Vehicle{
		ID:             r.ID,
		Name:           r.NameI18n,
		Description:    r.DescriptionI18n,
		Category:       r.Category.Ptr(),
		Specifications: r.Specifications,
		PriceRangeMin:  r.PriceRangeMin.Ptr(),
		PriceRangeMax:  r.PriceRangeMax.Ptr(),
		Status:         r.Status,
		CreatedAt:      r.CreatedAt,
	}
}

type vehicleImageRow struct {
	ID           string `boil:"id"`
	VehicleID    string `boil:"vehicle_id"`
	URL          string `boil:"url"`
	DisplayOrder int    `boil:"display_order"`
	IsCover      bool   `boil:"is_cover"`
}

func (r vehicleImageRow) toModel() model.VehicleImage {
	return model.VehicleImage{
		ID:           r.ID,
		VehicleID:    r.VehicleID,
		URL:          r.URL,
		DisplayOrder: r.DisplayOrder,
		IsCover:      r.IsCover,
	}
}

type certificateRow struct {
	ID                string         `boil:"id"`
	VehicleID         string         `boil:"vehicle_id"`
	TitleI18n         model.I18nText `boil:"title_i18n"`
	CertificateNumber null.String    `boil:"certificate_number"`
	PDFURL            null.String    `boil:"pdf_url"`
	IssueDate         null.Time      `boil:"issue_date"`
	ExpiryDate        null.Time      `boil:"expiry_date"`
}

func (r certificateRow) toModel() model.Certificate {
	return model.Certificate{
		ID:                r.ID,
		VehicleID:         r.VehicleID,
		Title:             r.TitleI18n,
		CertificateNumber: r.CertificateNumber.Ptr(),
		PDFURL:            r.PDFURL.Ptr(),
		IssueDate:         r.IssueDate.Ptr(),
		ExpiryDate:        r.ExpiryDate.Ptr(),
	}
}
