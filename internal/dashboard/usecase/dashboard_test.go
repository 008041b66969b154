package usecase

import (
	"context"
	"errors"
	"testing"

	documentRepo "autoexport-srv/internal/document/repository"
	inquiryRepo "autoexport-srv/internal/inquiry/repository"
	jobRepo "autoexport-srv/internal/job/repository"
	"autoexport-srv/internal/model"
	vehicleRepo "autoexport-srv/internal/vehicle/repository"
	pkgLog "autoexport-srv/pkg/log"
	"autoexport-srv/pkg/session"
)

type fakeVehicleRepo struct {
	vehicleRepo.Repository
	total, active int64
}

func (f *fakeVehicleRepo) Count(ctx context.Context, sc model.Scope, opts vehicleRepo.CountOptions) (int64, error) {
	if opts.Filter.Status == model.VehicleStatusActive {
		return f.active, nil
	}
	return f.total, nil
}

type fakeDocumentRepo struct {
	documentRepo.Repository
	total int64
	err   error
}

func (f *fakeDocumentRepo) Count(ctx context.Context, sc model.Scope, opts documentRepo.CountOptions) (int64, error) {
	return f.total, f.err
}

type fakeJobRepo struct {
	jobRepo.Repository
	total, open, apps, newApps int64
}

func (f *fakeJobRepo) Count(ctx context.Context, sc model.Scope, opts jobRepo.CountOptions) (int64, error) {
	if opts.Filter.Status == model.JobStatusActive {
		return f.open, nil
	}
	return f.total, nil
}

func (f *fakeJobRepo) CountApplications(ctx context.Context, sc model.Scope, opts jobRepo.CountApplicationsOptions) (int64, error) {
	if opts.Filter.Status == model.ApplicationStatusNew {
		return f.newApps, nil
	}
	return f.apps, nil
}

type fakeInquiryRepo struct {
	inquiryRepo.Repository
	total, fresh int64
}

func (f *fakeInquiryRepo) Count(ctx context.Context, sc model.Scope, opts inquiryRepo.CountOptions) (int64, error) {
	if opts.Filter.Status == model.InquiryStatusNew {
		return f.fresh, nil
	}
	return f.total, nil
}

func TestStats(t *testing.T) {
	uc := New(
		pkgLog.NewNopLogger(),
		&fakeVehicleRepo{total: 12, active: 9},
		&fakeDocumentRepo{total: 4},
		&fakeJobRepo{total: 3, open: 2, apps: 17, newApps: 5},
		&fakeInquiryRepo{total: 40, fresh: 7},
	)

	out, err := uc.Stats(context.Background(), model.Scope{Role: session.RoleViewer})
	if err != nil {
		t.Fatalf("Stats err = %v", err)
	}

	if out.Vehicles != 12 || out.ActiveVehicles != 9 {
		t.Errorf("vehicles = %d/%d, want 12/9", out.Vehicles, out.ActiveVehicles)
	}
	if out.Documents != 4 {
		t.Errorf("documents = %d, want 4", out.Documents)
	}
	if out.Jobs != 3 || out.OpenJobs != 2 {
		t.Errorf("jobs = %d/%d, want 3/2", out.Jobs, out.OpenJobs)
	}
	if out.Applications != 17 || out.NewApplications != 5 {
		t.Errorf("applications = %d/%d, want 17/5", out.Applications, out.NewApplications)
	}
	if out.Inquiries != 40 || out.NewInquiries != 7 {
		t.Errorf("inquiries = %d/%d, want 40/7", out.Inquiries, out.NewInquiries)
	}
}

func TestStats_RequiresSession(t *testing.T) {
	uc := New(pkgLog.NewNopLogger(), &fakeVehicleRepo{}, &fakeDocumentRepo{}, &fakeJobRepo{}, &fakeInquiryRepo{})

	if _, err := uc.Stats(context.Background(), model.Scope{}); !errors.Is(err, session.ErrForbidden) {
		t.Fatalf("anonymous Stats err = %v, want %v", err, session.ErrForbidden)
	}
}

func TestStats_PropagatesRepositoryError(t *testing.T) {
	wantErr := errors.New("count failed")
	uc := New(
		pkgLog.NewNopLogger(),
		&fakeVehicleRepo{},
		&fakeDocumentRepo{err: wantErr},
		&fakeJobRepo{},
		&fakeInquiryRepo{},
	)

	if _, err := uc.Stats(context.Background(), model.Scope{Role: session.RoleAdmin}); !errors.Is(err, wantErr) {
		t.Fatalf("Stats err = %v, want %v", err, wantErr)
	}
}
