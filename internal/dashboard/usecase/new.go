package usecase

import (
	"autoexport-srv/internal/dashboard"
	documentRepo "autoexport-srv/internal/document/repository"
	inquiryRepo "autoexport-srv/internal/inquiry/repository"
	jobRepo "autoexport-srv/internal/job/repository"
	vehicleRepo "autoexport-srv/internal/vehicle/repository"
	pkgLog "autoexport-srv/pkg/log"
)

type usecase struct {
	l         pkgLog.Logger
	vehicles  vehicleRepo.Repository
	documents documentRepo.Repository
	jobs      jobRepo.Repository
	inquiries inquiryRepo.Repository
}

func New(
	l pkgLog.Logger,
	vehicles vehicleRepo.Repository,
	documents documentRepo.Repository,
	jobs jobRepo.Repository,
	inquiries inquiryRepo.Repository,
) dashboard.UseCase {
	return &usecase{
		l:         l,
		vehicles:  vehicles,
		documents: documents,
		jobs:      jobs,
		inquiries: inquiries,
	}
}
